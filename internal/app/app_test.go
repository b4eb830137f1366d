package app_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"blog-admin-service/internal/app"
	model "blog-admin-service/internal/domain/models"
	"blog-admin-service/internal/infrastructure/config"
	"blog-admin-service/internal/infrastructure/logger"
	"blog-admin-service/internal/infrastructure/outbound/metrics/prometheus"
)

func memoryConfig(cacheDriver string) *config.Config {
	return &config.Config{
		Env:       "test",
		Storage:   config.Storage{Driver: config.StorageDriverMemory},
		Cache:     config.Cache{Driver: cacheDriver, TTL: time.Minute, Size: 16},
		OpsServer: config.OpsServer{Address: "127.0.0.1", Port: 0},
		Posts:     config.Posts{DefaultPageSize: 10, MaxPageSize: 100},
	}
}

func TestNew_MemoryStorage(t *testing.T) {
	for _, driver := range []string{config.CacheDriverLRU, config.CacheDriverNone} {
		t.Run(driver, func(t *testing.T) {
			a, err := app.New(context.Background(), memoryConfig(driver), logger.New("test"), prometheus.NewPrometheusMetricsProvider())
			require.NoError(t, err)
			t.Cleanup(a.Close)
			require.NotNil(t, a.Ops)

			ctx := context.Background()
			created, err := a.Posts.CreatePost(ctx, &model.PostDTO{Title: "first", TagIDs: []int64{4}})
			require.NoError(t, err)

			got, err := a.Posts.Query(ctx, &model.QueryParam{ID: &created.ID})
			require.NoError(t, err)
			require.Len(t, got.Data, 1)
			assert.Equal(t, "first", got.Data[0].Title)

			_, err = a.Posts.UpdatePost(ctx, &model.UpdatePostDTO{ID: created.ID, PostDTO: model.PostDTO{Title: "second"}})
			require.NoError(t, err)

			got, err = a.Posts.Query(ctx, &model.QueryParam{ID: &created.ID})
			require.NoError(t, err)
			assert.Equal(t, "second", got.Data[0].Title, "cached copy must be invalidated on update")
			assert.Empty(t, got.Data[0].TagIDs)
		})
	}
}
