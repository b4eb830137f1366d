package post_service

import (
	"context"

	model "blog-admin-service/internal/domain/models"
)

//go:generate mockery --name Service --dir . --output ../../../../../mocks/service --outpkg mocks --filename PostService.go
type Service interface {
	CreatePost(ctx context.Context, post *model.PostDTO) (*model.MutationResult, error)
	UpdatePost(ctx context.Context, post *model.UpdatePostDTO) (*model.MutationResult, error)
	ReleasePost(ctx context.Context, release *model.PostReleaseDTO) (*model.MutationResult, error)
	DeletePosts(ctx context.Context, batch *model.BatchDeleteDTO) error
	Query(ctx context.Context, params *model.QueryParam) (*model.QueryResult, error)
}
