package post_repository

import (
	"context"

	model "blog-admin-service/internal/domain/models"
)

//go:generate mockery --name Repository --dir . --output ../../../../../mocks/post --outpkg mocks --filename PostRepository.go
type Repository interface {
	// Create stores the base fields and returns the row with its new identifier.
	Create(ctx context.Context, post *model.Post) (*model.Post, error)
	// Update overwrites the base fields of post.ID.
	Update(ctx context.Context, post *model.Post) error
	SetRelease(ctx context.Context, id int64, isRelease bool) error
	// GetByID returns the post with its tag ids, or ErrPostNotFound.
	GetByID(ctx context.Context, id int64) (*model.Post, error)
	// List returns one page of posts and the total number of matches.
	List(ctx context.Context, filters model.PostFilters) ([]*model.Post, int, error)
	DeleteByIDs(ctx context.Context, ids []int64) error
}
