package redis_test

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"blog-admin-service/internal/custom_errors"
	model "blog-admin-service/internal/domain/models"
	"blog-admin-service/internal/infrastructure/config"
	"blog-admin-service/internal/infrastructure/logger"
	redis_cache "blog-admin-service/internal/infrastructure/outbound/cache/redis"
)

func setupRedis(t *testing.T) *redis_cache.Client {
	t.Helper()

	if os.Getenv("TEST_INTEGRATION") == "" {
		t.Skip("skipping integration test: TEST_INTEGRATION is not set")
	}

	ctx := context.Background()
	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        "docker.io/redis:7-alpine",
			ExposedPorts: []string{"6379/tcp"},
			WaitingFor:   wait.ForListeningPort("6379/tcp").WithStartupTimeout(30 * time.Second),
		},
		Started: true,
	})
	require.NoError(t, err)
	t.Cleanup(func() {
		if err := container.Terminate(ctx); err != nil {
			t.Logf("failed to terminate container: %v", err)
		}
	})

	host, err := container.Host(ctx)
	require.NoError(t, err)
	port, err := container.MappedPort(ctx, "6379/tcp")
	require.NoError(t, err)

	client, err := redis_cache.NewClient(config.Redis{Address: host, Port: port.Int(), PoolSize: 2}, logger.New("test"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Close() })
	return client
}

func TestPostCache_RoundTrip(t *testing.T) {
	client := setupRedis(t)
	cache := redis_cache.NewPostCache(client, logger.New("test"), time.Minute)
	ctx := context.Background()

	_, err := cache.GetPost(ctx, 1)
	assert.ErrorIs(t, err, custom_errors.ErrCacheMiss)

	post := &model.Post{ID: 1, Title: "cached", TagIDs: []int64{2, 3}, Images: []*model.Image{{ID: 4, URL: "https://cdn/4.png"}}}
	require.NoError(t, cache.SetPost(ctx, post))

	got, err := cache.GetPost(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "cached", got.Title)
	assert.Equal(t, []int64{2, 3}, got.TagIDs)
	require.Len(t, got.Images, 1)
	assert.Equal(t, int64(4), got.Images[0].ID)

	require.NoError(t, cache.DeletePost(ctx, 1))
	_, err = cache.GetPost(ctx, 1)
	assert.ErrorIs(t, err, custom_errors.ErrCacheMiss)

	assert.NoError(t, client.Ping(ctx))
}
