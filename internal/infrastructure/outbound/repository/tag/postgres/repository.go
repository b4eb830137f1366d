package tag_repository_postgres

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"blog-admin-service/internal/custom_errors"
	ports "blog-admin-service/internal/domain/ports/output"
	"blog-admin-service/internal/infrastructure/outbound/repository/postgres/db"
)

const (
	pgForeignKeyViolation = "23503"
	pgUniqueViolation     = "23505"
)

type TagRepository struct {
	log     ports.Logger
	db      db.PgDB
	metrics ports.MetricsProvider
}

func NewTagRepository(db db.PgDB, log ports.Logger, metrics ports.MetricsProvider) *TagRepository {
	return &TagRepository{db: db, log: log, metrics: metrics}
}

func (t *TagRepository) DeleteByPost(ctx context.Context, postID int64) error {
	start := time.Now()
	tag, err := t.db.Exec(ctx, `DELETE FROM posts_tags WHERE post_id = @post_id`, pgx.NamedArgs{"post_id": postID})
	if err != nil {
		t.metrics.IncrementDatabaseQueries("tag_delete_by_post", false)
		t.metrics.RecordDatabaseQueryDuration("tag_delete_by_post", time.Since(start))
		t.log.Error("Error deleting post tags", slog.Int64("post_id", postID), slog.String("error", err.Error()))
		return custom_errors.ErrTagDelete
	}
	t.metrics.IncrementDatabaseQueries("tag_delete_by_post", true)
	t.metrics.RecordDatabaseQueryDuration("tag_delete_by_post", time.Since(start))
	t.log.Debug("Deleted post tags", slog.Int64("post_id", postID), slog.Int64("rows", tag.RowsAffected()))
	return nil
}

// Insert links every tag id to the post. Unknown posts or tags surface as
// ErrPostNotFound / ErrTagNotFound through the foreign keys.
func (t *TagRepository) Insert(ctx context.Context, postID int64, tagIDs []int64) error {
	start := time.Now()
	if len(tagIDs) == 0 {
		return nil
	}

	batch := &pgx.Batch{}
	query := `INSERT INTO posts_tags (post_id, tag_id) VALUES (@post_id, @tag_id)`
	for _, tagID := range tagIDs {
		batch.Queue(query, pgx.NamedArgs{"post_id": postID, "tag_id": tagID})
	}

	br := t.db.SendBatch(ctx, batch)
	defer func(br pgx.BatchResults) {
		err := br.Close()
		if err != nil {
			t.log.Error("Failed to close batch result in Insert", slog.String("error", err.Error()), slog.Int64("post_id", postID))
		}
	}(br)

	for _, tagID := range tagIDs {
		if _, err := br.Exec(); err != nil {
			t.metrics.IncrementDatabaseQueries("tag_insert", false)
			t.metrics.RecordDatabaseQueryDuration("tag_insert", time.Since(start))
			var pgerr *pgconn.PgError
			if errors.As(err, &pgerr) {
				switch {
				case pgerr.Code == pgUniqueViolation:
					t.log.Warn("Tag already linked to post", slog.Int64("post_id", postID), slog.Int64("tag_id", tagID))
					return custom_errors.ErrTagPost
				case pgerr.Code == pgForeignKeyViolation && pgerr.ConstraintName == "posts_tags_post_id_fkey":
					return custom_errors.ErrPostNotFound
				case pgerr.Code == pgForeignKeyViolation:
					t.log.Debug("Tag not found while linking", slog.Int64("post_id", postID), slog.Int64("tag_id", tagID))
					return custom_errors.ErrTagNotFound
				}
			}
			t.log.Error("Error linking tag to post", slog.Int64("post_id", postID), slog.Int64("tag_id", tagID), slog.String("error", err.Error()))
			return custom_errors.ErrTagPost
		}
	}

	t.metrics.IncrementDatabaseQueries("tag_insert", true)
	t.metrics.RecordDatabaseQueryDuration("tag_insert", time.Since(start))
	return nil
}
