package redis

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"blog-admin-service/internal/custom_errors"
	model "blog-admin-service/internal/domain/models"
	ports "blog-admin-service/internal/domain/ports/output"
)

const postCacheKeyPrefix = "admin:post:"

type PostCache struct {
	client *Client
	log    ports.Logger
	ttl    time.Duration
}

func NewPostCache(client *Client, log ports.Logger, ttl time.Duration) *PostCache {
	return &PostCache{
		client: client,
		log:    log,
		ttl:    ttl,
	}
}

func (p *PostCache) GetPost(ctx context.Context, postID int64) (*model.Post, error) {
	var post model.Post
	err := p.client.Get(ctx, postKey(postID), &post)
	if err != nil {
		if errors.Is(err, custom_errors.ErrCacheMiss) {
			p.log.Debug("Post cache miss", slog.Int64("post_id", postID))
			return nil, custom_errors.ErrCacheMiss
		}
		p.log.Error("Failed to get post from cache",
			slog.Int64("post_id", postID),
			slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to get post from cache: %w", err)
	}

	p.log.Debug("Post cache hit", slog.Int64("post_id", postID))
	return &post, nil
}

func (p *PostCache) SetPost(ctx context.Context, post *model.Post) error {
	if post == nil || post.ID == 0 {
		return fmt.Errorf("post must carry an identifier")
	}

	if err := p.client.Set(ctx, postKey(post.ID), post, p.ttl); err != nil {
		p.log.Error("Failed to set post cache",
			slog.Int64("post_id", post.ID),
			slog.String("error", err.Error()))
		return fmt.Errorf("failed to set post cache: %w", err)
	}

	p.log.Debug("Post cached successfully",
		slog.Int64("post_id", post.ID),
		slog.Duration("ttl", p.ttl))
	return nil
}

func (p *PostCache) DeletePost(ctx context.Context, postID int64) error {
	if err := p.client.Delete(ctx, postKey(postID)); err != nil {
		p.log.Error("Failed to delete post from cache",
			slog.Int64("post_id", postID),
			slog.String("error", err.Error()))
		return fmt.Errorf("failed to delete post from cache: %w", err)
	}

	p.log.Debug("Post deleted from cache", slog.Int64("post_id", postID))
	return nil
}

func postKey(postID int64) string {
	return postCacheKeyPrefix + strconv.FormatInt(postID, 10)
}
