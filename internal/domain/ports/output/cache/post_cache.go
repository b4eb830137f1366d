package cache

import (
	"context"

	model "blog-admin-service/internal/domain/models"
)

//go:generate mockery --name PostCache --dir . --output ../../../../../mocks/cache --outpkg mocks --filename PostCache.go
type PostCache interface {
	GetPost(ctx context.Context, postID int64) (*model.Post, error)
	SetPost(ctx context.Context, post *model.Post) error
	DeletePost(ctx context.Context, postID int64) error
}
