package tag_repository

import "context"

//go:generate mockery --name Repository --dir . --output ../../../../../mocks/tag --outpkg mocks --filename TagRepository.go
type Repository interface {
	DeleteByPost(ctx context.Context, postID int64) error
	Insert(ctx context.Context, postID int64, tagIDs []int64) error
}
