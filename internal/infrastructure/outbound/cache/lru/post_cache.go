package lru

import (
	"context"
	"fmt"
	"slices"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"blog-admin-service/internal/custom_errors"
	model "blog-admin-service/internal/domain/models"
)

// PostCache is a per-instance expirable LRU used when no Redis is deployed.
type PostCache struct {
	cache *expirable.LRU[int64, model.Post]
}

func NewPostCache(size int, ttl time.Duration) *PostCache {
	return &PostCache{cache: expirable.NewLRU[int64, model.Post](size, nil, ttl)}
}

func (c *PostCache) GetPost(ctx context.Context, postID int64) (*model.Post, error) {
	post, ok := c.cache.Get(postID)
	if !ok {
		return nil, custom_errors.ErrCacheMiss
	}
	return clonePost(&post), nil
}

// SetPost stores a deep copy; GetPost hands out another, so neither side
// shares tag or image slices with the cache.
func (c *PostCache) SetPost(ctx context.Context, post *model.Post) error {
	if post == nil || post.ID == 0 {
		return fmt.Errorf("post must carry an identifier")
	}
	c.cache.Add(post.ID, *clonePost(post))
	return nil
}

func (c *PostCache) DeletePost(ctx context.Context, postID int64) error {
	c.cache.Remove(postID)
	return nil
}

func clonePost(post *model.Post) *model.Post {
	result := *post
	result.TagIDs = slices.Clone(post.TagIDs)
	if post.Images != nil {
		result.Images = make([]*model.Image, len(post.Images))
		for i, img := range post.Images {
			if img == nil {
				continue
			}
			imgCopy := *img
			if img.PostID != nil {
				linked := *img.PostID
				imgCopy.PostID = &linked
			}
			result.Images[i] = &imgCopy
		}
	}
	return &result
}
