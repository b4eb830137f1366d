package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	ports "blog-admin-service/internal/domain/ports/output"
	image_repository "blog-admin-service/internal/domain/ports/output/image"
	post_repository "blog-admin-service/internal/domain/ports/output/post"
	tag_repository "blog-admin-service/internal/domain/ports/output/tag"
	image_repository_postgres "blog-admin-service/internal/infrastructure/outbound/repository/image/postgres"
	post_repository_postgres "blog-admin-service/internal/infrastructure/outbound/repository/post/postgres"
	tag_repository_postgres "blog-admin-service/internal/infrastructure/outbound/repository/tag/postgres"
)

type PostgresUnitOfWork struct {
	pool    *pgxpool.Pool
	log     ports.Logger
	metrics ports.MetricsProvider
}

func NewPostgresUOW(pool *pgxpool.Pool, log ports.Logger, metrics ports.MetricsProvider) ports.UnitOfWork {
	return &PostgresUnitOfWork{pool: pool, log: log, metrics: metrics}
}

func (uow *PostgresUnitOfWork) Begin(ctx context.Context) (ports.Transaction, error) {
	tx, err := uow.pool.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("error beginning transaction: %w", err)
	}
	return &PostgresTransaction{tx: tx, log: uow.log, metrics: uow.metrics}, nil
}

type PostgresTransaction struct {
	tx      pgx.Tx
	log     ports.Logger
	metrics ports.MetricsProvider
}

func (t *PostgresTransaction) Commit(ctx context.Context) error {
	return t.tx.Commit(ctx)
}

func (t *PostgresTransaction) Rollback(ctx context.Context) error {
	return t.tx.Rollback(ctx)
}

func (t *PostgresTransaction) PostRepository() post_repository.Repository {
	return post_repository_postgres.NewPostRepository(t.tx, t.log, t.metrics)
}

func (t *PostgresTransaction) TagRepository() tag_repository.Repository {
	return tag_repository_postgres.NewTagRepository(t.tx, t.log, t.metrics)
}

func (t *PostgresTransaction) ImageRepository() image_repository.Repository {
	return image_repository_postgres.NewImageRepository(t.tx, t.log, t.metrics)
}
