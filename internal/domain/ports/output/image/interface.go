package image_repository

import (
	"context"

	model "blog-admin-service/internal/domain/models"
)

//go:generate mockery --name Repository --dir . --output ../../../../../mocks/image --outpkg mocks --filename ImageRepository.go
type Repository interface {
	// UpdateLinks points every image at postID. All images must already exist.
	// It returns the distinct ids of other posts that lost an image.
	UpdateLinks(ctx context.Context, postID int64, images []*model.Image) ([]int64, error)
	GetByPost(ctx context.Context, postID int64) ([]*model.Image, error)
	GetByPosts(ctx context.Context, postIDs []int64) (map[int64][]*model.Image, error)
}
