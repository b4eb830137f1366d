package ports

import (
	"context"

	image_repository "blog-admin-service/internal/domain/ports/output/image"
	post_repository "blog-admin-service/internal/domain/ports/output/post"
	tag_repository "blog-admin-service/internal/domain/ports/output/tag"
)

//go:generate mockery --name UnitOfWork --dir . --output ../../../../mocks/postgres --outpkg mocks --filename UnitOfWork.go
type UnitOfWork interface {
	Begin(ctx context.Context) (Transaction, error)
}

//go:generate mockery --name Transaction --dir . --output ../../../../mocks/postgres --outpkg mocks --filename Transaction.go
type Transaction interface {
	PostRepository() post_repository.Repository
	TagRepository() tag_repository.Repository
	ImageRepository() image_repository.Repository
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error
}
