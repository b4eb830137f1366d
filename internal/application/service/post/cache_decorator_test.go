package post_service

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"blog-admin-service/internal/custom_errors"
	model "blog-admin-service/internal/domain/models"
	input "blog-admin-service/internal/domain/ports/input/post"
	"blog-admin-service/internal/infrastructure/logger"
	"blog-admin-service/internal/infrastructure/outbound/cache/lru"
	"blog-admin-service/internal/infrastructure/outbound/metrics/prometheus"
	"blog-admin-service/internal/infrastructure/outbound/repository/memory"
	cache_mock "blog-admin-service/mocks/cache"
	service_mock "blog-admin-service/mocks/service"
)

func newDecorator(t *testing.T) (*PostServiceCacheDecorator, *service_mock.Service, *cache_mock.PostCache) {
	svc := service_mock.NewService(t)
	postCache := cache_mock.NewPostCache(t)
	d := NewPostServiceCacheDecorator(svc, postCache, logger.New("test"), prometheus.NewPrometheusMetricsProvider())
	return d.(*PostServiceCacheDecorator), svc, postCache
}

func TestPostServiceCacheDecorator_Query(t *testing.T) {
	cached := &model.Post{ID: 5, Title: "cached"}

	tests := []struct {
		name   string
		params *model.QueryParam
		mocks  func(svc *service_mock.Service, postCache *cache_mock.PostCache)
		want   *model.QueryResult
	}{
		{
			name:   "Cache hit skips the service",
			params: &model.QueryParam{ID: int64Ptr(5)},
			mocks: func(svc *service_mock.Service, postCache *cache_mock.PostCache) {
				postCache.On("GetPost", mock.Anything, int64(5)).Return(cached, nil).Once()
			},
			want: &model.QueryResult{Data: []*model.Post{cached}},
		},
		{
			name:   "Cache miss reads through and stores",
			params: &model.QueryParam{ID: int64Ptr(5)},
			mocks: func(svc *service_mock.Service, postCache *cache_mock.PostCache) {
				postCache.On("GetPost", mock.Anything, int64(5)).Return(nil, custom_errors.ErrCacheMiss).Once()
				svc.On("Query", mock.Anything, mock.Anything).Return(&model.QueryResult{Data: []*model.Post{cached}}, nil).Once()
				postCache.On("SetPost", mock.Anything, cached).Return(nil).Once()
			},
			want: &model.QueryResult{Data: []*model.Post{cached}},
		},
		{
			name:   "Cache failures never fail the query",
			params: &model.QueryParam{ID: int64Ptr(5)},
			mocks: func(svc *service_mock.Service, postCache *cache_mock.PostCache) {
				postCache.On("GetPost", mock.Anything, int64(5)).Return(nil, errors.New("connection refused")).Once()
				svc.On("Query", mock.Anything, mock.Anything).Return(&model.QueryResult{Data: []*model.Post{cached}}, nil).Once()
				postCache.On("SetPost", mock.Anything, cached).Return(errors.New("connection refused")).Once()
			},
			want: &model.QueryResult{Data: []*model.Post{cached}},
		},
		{
			name:   "Unknown post is not cached",
			params: &model.QueryParam{ID: int64Ptr(404)},
			mocks: func(svc *service_mock.Service, postCache *cache_mock.PostCache) {
				postCache.On("GetPost", mock.Anything, int64(404)).Return(nil, custom_errors.ErrCacheMiss).Once()
				svc.On("Query", mock.Anything, mock.Anything).Return(&model.QueryResult{Data: []*model.Post{}}, nil).Once()
			},
			want: &model.QueryResult{Data: []*model.Post{}},
		},
		{
			name:   "List mode bypasses the cache",
			params: &model.QueryParam{Current: 1, PageSize: 10},
			mocks: func(svc *service_mock.Service, postCache *cache_mock.PostCache) {
				svc.On("Query", mock.Anything, mock.Anything).Return(&model.QueryResult{
					Data:     []*model.Post{},
					PageInfo: &model.PageInfo{Current: 1, PageSize: 10},
				}, nil).Once()
			},
			want: &model.QueryResult{Data: []*model.Post{}, PageInfo: &model.PageInfo{Current: 1, PageSize: 10}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, svc, postCache := newDecorator(t)
			tt.mocks(svc, postCache)

			got, err := d.Query(context.Background(), tt.params)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestPostServiceCacheDecorator_FailedUpdate(t *testing.T) {
	partial := fmt.Errorf("%w: replace tags of post 5: %w", custom_errors.ErrDependentStepFailed, custom_errors.ErrTagNotFound)

	tests := []struct {
		name           string
		dto            *model.UpdatePostDTO
		serviceErr     error
		wantInvalidate bool
	}{
		{
			name:           "Dependent step failure drops the cached post",
			dto:            &model.UpdatePostDTO{ID: 5, PostDTO: model.PostDTO{Title: "B", TagIDs: []int64{99}}},
			serviceErr:     partial,
			wantInvalidate: true,
		},
		{
			name:           "Missing post drops the cached post",
			dto:            &model.UpdatePostDTO{ID: 5, PostDTO: model.PostDTO{Title: "B"}},
			serviceErr:     custom_errors.ErrPostNotFound,
			wantInvalidate: true,
		},
		{
			name:           "Invalid input leaves the cache alone",
			dto:            &model.UpdatePostDTO{ID: 5},
			serviceErr:     custom_errors.ErrInvalidInput,
			wantInvalidate: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, svc, postCache := newDecorator(t)
			svc.On("UpdatePost", mock.Anything, tt.dto).Return(nil, tt.serviceErr).Once()
			if tt.wantInvalidate {
				postCache.On("DeletePost", mock.Anything, int64(5)).Return(nil).Once()
			}

			got, err := d.UpdatePost(context.Background(), tt.dto)
			assert.Nil(t, got)
			assert.ErrorIs(t, err, tt.serviceErr)
			if !tt.wantInvalidate {
				postCache.AssertNotCalled(t, "DeletePost", mock.Anything, mock.Anything)
			}
		})
	}
}

func TestPostServiceCacheDecorator_Invalidation(t *testing.T) {
	ctx := context.Background()

	t.Run("Update invalidates even when the cache is down", func(t *testing.T) {
		d, svc, postCache := newDecorator(t)
		dto := &model.UpdatePostDTO{ID: 5, PostDTO: model.PostDTO{Title: "t"}}
		svc.On("UpdatePost", mock.Anything, dto).Return(&model.MutationResult{ID: 5}, nil).Once()
		postCache.On("DeletePost", mock.Anything, int64(5)).Return(errors.New("connection refused")).Once()

		got, err := d.UpdatePost(ctx, dto)
		require.NoError(t, err)
		assert.Equal(t, int64(5), got.ID)
	})

	t.Run("Moved images invalidate their previous posts", func(t *testing.T) {
		d, svc, postCache := newDecorator(t)
		create := &model.PostDTO{Title: "t"}
		svc.On("CreatePost", mock.Anything, create).Return(&model.MutationResult{ID: 9, AffectedPostIDs: []int64{3, 4}}, nil).Once()
		for _, id := range []int64{9, 3, 4} {
			postCache.On("DeletePost", mock.Anything, id).Return(nil).Once()
		}

		got, err := d.CreatePost(ctx, create)
		require.NoError(t, err)
		assert.Equal(t, int64(9), got.ID)
	})

	t.Run("Create and release invalidate their id", func(t *testing.T) {
		d, svc, postCache := newDecorator(t)
		create := &model.PostDTO{Title: "t"}
		release := &model.PostReleaseDTO{ID: 9, IsRelease: true}
		svc.On("CreatePost", mock.Anything, create).Return(&model.MutationResult{ID: 9}, nil).Once()
		svc.On("ReleasePost", mock.Anything, release).Return(&model.MutationResult{ID: 9}, nil).Once()
		postCache.On("DeletePost", mock.Anything, int64(9)).Return(nil).Twice()

		_, err := d.CreatePost(ctx, create)
		require.NoError(t, err)
		_, err = d.ReleasePost(ctx, release)
		require.NoError(t, err)
	})

	t.Run("Delete invalidates every id", func(t *testing.T) {
		d, svc, postCache := newDecorator(t)
		batch := &model.BatchDeleteDTO{IDs: []int64{1, 2, 3}}
		svc.On("DeletePosts", mock.Anything, batch).Return(nil).Once()
		for _, id := range batch.IDs {
			postCache.On("DeletePost", mock.Anything, id).Return(nil).Once()
		}

		require.NoError(t, d.DeletePosts(ctx, batch))
	})
}

func newCachedMemoryService(t *testing.T) (input.Service, *memory.Store) {
	t.Helper()
	s, store := newMemoryService(t, Options{})
	d := NewPostServiceCacheDecorator(s, lru.NewPostCache(16, time.Minute), logger.New("test"), prometheus.NewPrometheusMetricsProvider())
	return d, store
}

func queryOne(t *testing.T, svc input.Service, id int64) *model.Post {
	t.Helper()
	got, err := svc.Query(context.Background(), &model.QueryParam{ID: &id})
	require.NoError(t, err)
	require.Len(t, got.Data, 1)
	return got.Data[0]
}

func TestPostServiceCacheDecorator_PartialUpdateIsNotServedStale(t *testing.T) {
	svc, store := newCachedMemoryService(t)
	store.SeedTags(1)
	ctx := context.Background()

	created, err := svc.CreatePost(ctx, &model.PostDTO{Title: "A", TagIDs: []int64{1}})
	require.NoError(t, err)
	assert.Equal(t, "A", queryOne(t, svc, created.ID).Title)

	_, err = svc.UpdatePost(ctx, &model.UpdatePostDTO{
		ID:      created.ID,
		PostDTO: model.PostDTO{Title: "B", TagIDs: []int64{99}},
	})
	require.ErrorIs(t, err, custom_errors.ErrDependentStepFailed)

	got := queryOne(t, svc, created.ID)
	assert.Equal(t, "B", got.Title, "base fields were committed before the tag step failed")
	assert.Empty(t, got.TagIDs)
}

func TestPostServiceCacheDecorator_MovedImageLeavesPreviousPost(t *testing.T) {
	svc, store := newCachedMemoryService(t)
	img := store.SeedImage(model.Image{Name: "x", URL: "https://cdn/x.png"})
	ctx := context.Background()

	first, err := svc.CreatePost(ctx, &model.PostDTO{Title: "A", Images: []*model.Image{img}})
	require.NoError(t, err)
	require.Len(t, queryOne(t, svc, first.ID).Images, 1)

	second, err := svc.CreatePost(ctx, &model.PostDTO{Title: "B", Images: []*model.Image{img}})
	require.NoError(t, err)

	assert.Empty(t, queryOne(t, svc, first.ID).Images)
	moved := queryOne(t, svc, second.ID).Images
	require.Len(t, moved, 1)
	assert.Equal(t, img.ID, moved[0].ID)

	other, err := svc.CreatePost(ctx, &model.PostDTO{Title: "C"})
	require.NoError(t, err)
	require.Len(t, queryOne(t, svc, second.ID).Images, 1)

	_, err = svc.UpdatePost(ctx, &model.UpdatePostDTO{
		ID:      other.ID,
		PostDTO: model.PostDTO{Title: "C", Images: []*model.Image{img}},
	})
	require.NoError(t, err)
	assert.Empty(t, queryOne(t, svc, second.ID).Images)
}
