package image_repository_postgres

import (
	"context"
	"errors"
	"log/slog"
	"slices"
	"time"

	"github.com/jackc/pgx/v5"

	"blog-admin-service/internal/custom_errors"
	model "blog-admin-service/internal/domain/models"
	ports "blog-admin-service/internal/domain/ports/output"
	"blog-admin-service/internal/infrastructure/outbound/repository/postgres/db"
)

type ImageRepository struct {
	log     ports.Logger
	db      db.PgDB
	metrics ports.MetricsProvider
}

func NewImageRepository(db db.PgDB, log ports.Logger, metrics ports.MetricsProvider) *ImageRepository {
	return &ImageRepository{db: db, log: log, metrics: metrics}
}

// UpdateLinks relinks every image inside one transaction (a savepoint when
// db is already a transaction). The first image that matches no row rolls
// the whole call back.
func (m *ImageRepository) UpdateLinks(ctx context.Context, postID int64, images []*model.Image) ([]int64, error) {
	start := time.Now()
	if len(images) == 0 {
		return nil, nil
	}

	tx, err := m.db.Begin(ctx)
	if err != nil {
		m.log.Error("Failed to begin image link transaction", slog.String("error", err.Error()), slog.Int64("post_id", postID))
		m.metrics.IncrementDatabaseQueries("image_update_links", false)
		return nil, custom_errors.ErrImageLink
	}
	defer func() {
		if err := tx.Rollback(ctx); err != nil && !errors.Is(err, pgx.ErrTxClosed) {
			m.log.Error("Failed to rollback image link transaction", slog.String("error", err.Error()), slog.Int64("post_id", postID))
		}
	}()

	previousOwners, err := m.relink(ctx, tx, postID, images)
	if err == nil {
		if commitErr := tx.Commit(ctx); commitErr != nil {
			m.log.Error("Failed to commit image links", slog.String("error", commitErr.Error()), slog.Int64("post_id", postID))
			err = custom_errors.ErrImageLink
		}
	}

	m.metrics.IncrementDatabaseQueries("image_update_links", err == nil)
	m.metrics.RecordDatabaseQueryDuration("image_update_links", time.Since(start))
	if err != nil {
		return nil, err
	}
	return previousOwners, nil
}

// relink returns the distinct posts other than postID that owned an image.
func (m *ImageRepository) relink(ctx context.Context, tx pgx.Tx, postID int64, images []*model.Image) ([]int64, error) {
	batch := &pgx.Batch{}
	for _, img := range images {
		batch.Queue(
			`WITH prev AS (SELECT id, post_id FROM images WHERE id = @id FOR UPDATE)
			UPDATE images i SET post_id = @post_id, updated_at = now()
			FROM prev WHERE i.id = prev.id
			RETURNING prev.post_id`,
			pgx.NamedArgs{"post_id": postID, "id": img.ID},
		)
	}

	result := tx.SendBatch(ctx, batch)
	defer func(result pgx.BatchResults) {
		err := result.Close()
		if err != nil {
			m.log.Error("Failed to close batch result in UpdateLinks", slog.String("error", err.Error()), slog.Int64("post_id", postID))
		}
	}(result)

	var previousOwners []int64
	for _, img := range images {
		var previous *int64
		if err := result.QueryRow().Scan(&previous); err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				m.log.Warn("Image not found during link", slog.Int64("post_id", postID), slog.Int64("image_id", img.ID))
				return nil, custom_errors.ErrImageNotFound
			}
			m.log.Error("Image link failed", slog.String("error", err.Error()), slog.Int64("post_id", postID), slog.Int64("image_id", img.ID))
			return nil, custom_errors.ErrImageLink
		}
		if previous != nil && *previous != postID && !slices.Contains(previousOwners, *previous) {
			previousOwners = append(previousOwners, *previous)
		}
	}
	return previousOwners, nil
}

func (m *ImageRepository) GetByPost(ctx context.Context, postID int64) ([]*model.Image, error) {
	start := time.Now()
	rows, err := m.db.Query(ctx,
		`SELECT id, post_id, name, url, size, created_at FROM images WHERE post_id = @post_id ORDER BY id`,
		pgx.NamedArgs{"post_id": postID})
	if err != nil {
		m.log.Error("Image query failed", slog.String("error", err.Error()), slog.Int64("post_id", postID))
		m.metrics.IncrementDatabaseQueries("image_get_by_post", false)
		m.metrics.RecordDatabaseQueryDuration("image_get_by_post", time.Since(start))
		return nil, custom_errors.ErrImageQuery
	}
	defer rows.Close()

	images := make([]*model.Image, 0)
	for rows.Next() {
		var img model.Image
		if err := rows.Scan(&img.ID, &img.PostID, &img.Name, &img.URL, &img.Size, &img.CreatedAt); err != nil {
			m.metrics.IncrementDatabaseQueries("image_get_by_post", false)
			m.metrics.RecordDatabaseQueryDuration("image_get_by_post", time.Since(start))
			return nil, custom_errors.ErrImageQuery
		}
		images = append(images, &img)
	}
	if err := rows.Err(); err != nil {
		m.metrics.IncrementDatabaseQueries("image_get_by_post", false)
		m.metrics.RecordDatabaseQueryDuration("image_get_by_post", time.Since(start))
		return nil, custom_errors.ErrImageQuery
	}

	m.log.Debug("Retrieved images for post", slog.Int64("post_id", postID), slog.Int("count", len(images)))
	m.metrics.IncrementDatabaseQueries("image_get_by_post", true)
	m.metrics.RecordDatabaseQueryDuration("image_get_by_post", time.Since(start))
	return images, nil
}

func (m *ImageRepository) GetByPosts(ctx context.Context, postIDs []int64) (map[int64][]*model.Image, error) {
	start := time.Now()
	result := make(map[int64][]*model.Image, len(postIDs))
	if len(postIDs) == 0 {
		return result, nil
	}

	rows, err := m.db.Query(ctx,
		`SELECT id, post_id, name, url, size, created_at FROM images WHERE post_id = ANY(@post_ids) ORDER BY post_id, id`,
		pgx.NamedArgs{"post_ids": postIDs})
	if err != nil {
		m.log.Error("Batch image query failed", slog.String("error", err.Error()), slog.Any("post_ids", postIDs))
		m.metrics.IncrementDatabaseQueries("image_get_by_posts", false)
		m.metrics.RecordDatabaseQueryDuration("image_get_by_posts", time.Since(start))
		return nil, custom_errors.ErrImageQuery
	}
	defer rows.Close()

	for rows.Next() {
		var img model.Image
		if err := rows.Scan(&img.ID, &img.PostID, &img.Name, &img.URL, &img.Size, &img.CreatedAt); err != nil {
			m.metrics.IncrementDatabaseQueries("image_get_by_posts", false)
			m.metrics.RecordDatabaseQueryDuration("image_get_by_posts", time.Since(start))
			return nil, custom_errors.ErrImageQuery
		}
		postID := *img.PostID
		result[postID] = append(result[postID], &img)
	}
	if err := rows.Err(); err != nil {
		m.metrics.IncrementDatabaseQueries("image_get_by_posts", false)
		m.metrics.RecordDatabaseQueryDuration("image_get_by_posts", time.Since(start))
		return nil, custom_errors.ErrImageQuery
	}

	m.log.Debug("Retrieved images for batch posts", slog.Int("post_count", len(result)))
	m.metrics.IncrementDatabaseQueries("image_get_by_posts", true)
	m.metrics.RecordDatabaseQueryDuration("image_get_by_posts", time.Since(start))
	return result, nil
}
