package post_service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"blog-admin-service/internal/custom_errors"
	model "blog-admin-service/internal/domain/models"
	input "blog-admin-service/internal/domain/ports/input/post"
	ports "blog-admin-service/internal/domain/ports/output"
	"blog-admin-service/internal/domain/ports/output/cache"
)

type PostServiceCacheDecorator struct {
	service   input.Service
	postCache cache.PostCache
	log       ports.Logger
	metrics   ports.MetricsProvider
}

func NewPostServiceCacheDecorator(
	service input.Service,
	postCache cache.PostCache,
	log ports.Logger,
	metrics ports.MetricsProvider,
) input.Service {
	return &PostServiceCacheDecorator{
		service:   service,
		postCache: postCache,
		log:       log,
		metrics:   metrics,
	}
}

func (d *PostServiceCacheDecorator) CreatePost(ctx context.Context, post *model.PostDTO) (*model.MutationResult, error) {
	result, err := d.service.CreatePost(ctx, post)
	if err != nil {
		return nil, err
	}
	d.invalidate(ctx, result.ID)
	d.invalidateAll(ctx, result.AffectedPostIDs)
	return result, nil
}

// UpdatePost drops the cached post even when the pipeline fails: without
// atomic writes an earlier step may already be committed.
func (d *PostServiceCacheDecorator) UpdatePost(ctx context.Context, post *model.UpdatePostDTO) (*model.MutationResult, error) {
	result, err := d.service.UpdatePost(ctx, post)
	if err != nil {
		if post != nil && !errors.Is(err, custom_errors.ErrInvalidInput) {
			d.invalidate(ctx, post.ID)
		}
		return nil, err
	}
	d.invalidate(ctx, result.ID)
	d.invalidateAll(ctx, result.AffectedPostIDs)
	return result, nil
}

func (d *PostServiceCacheDecorator) ReleasePost(ctx context.Context, release *model.PostReleaseDTO) (*model.MutationResult, error) {
	result, err := d.service.ReleasePost(ctx, release)
	if err != nil {
		return nil, err
	}
	d.invalidate(ctx, result.ID)
	return result, nil
}

func (d *PostServiceCacheDecorator) DeletePosts(ctx context.Context, batch *model.BatchDeleteDTO) error {
	if err := d.service.DeletePosts(ctx, batch); err != nil {
		return err
	}
	d.invalidateAll(ctx, batch.IDs)
	return nil
}

// Query reads single-post lookups through the cache. Page queries always go
// to the service.
func (d *PostServiceCacheDecorator) Query(ctx context.Context, params *model.QueryParam) (*model.QueryResult, error) {
	if params == nil || params.ID == nil {
		return d.service.Query(ctx, params)
	}
	id := *params.ID

	cacheStart := time.Now()
	cachedPost, err := d.postCache.GetPost(ctx, id)
	d.metrics.RecordCacheOperationDuration("post_get", time.Since(cacheStart))
	if err == nil {
		d.log.Debug("Post found in cache", slog.Int64("post_id", id))
		d.metrics.IncrementCacheHits()
		return &model.QueryResult{Data: []*model.Post{cachedPost}}, nil
	}

	if errors.Is(err, custom_errors.ErrCacheMiss) {
		d.metrics.IncrementCacheMisses()
	} else {
		d.log.Warn("Failed to get post from cache",
			slog.Int64("post_id", id),
			slog.String("error", err.Error()))
	}

	result, err := d.service.Query(ctx, params)
	if err != nil {
		return nil, err
	}
	if len(result.Data) == 0 {
		return result, nil
	}

	setStart := time.Now()
	if err := d.postCache.SetPost(ctx, result.Data[0]); err != nil {
		d.log.Warn("Failed to cache post",
			slog.Int64("post_id", id),
			slog.String("error", err.Error()))
	}
	d.metrics.RecordCacheOperationDuration("post_set", time.Since(setStart))

	return result, nil
}

func (d *PostServiceCacheDecorator) invalidate(ctx context.Context, id int64) {
	start := time.Now()
	if err := d.postCache.DeletePost(ctx, id); err != nil {
		d.log.Warn("Failed to invalidate post cache",
			slog.Int64("post_id", id),
			slog.String("error", err.Error()))
	}
	d.metrics.RecordCacheOperationDuration("post_delete", time.Since(start))
}

func (d *PostServiceCacheDecorator) invalidateAll(ctx context.Context, ids []int64) {
	for _, id := range ids {
		d.invalidate(ctx, id)
	}
}
