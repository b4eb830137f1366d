package post_repository_postgres

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"

	"blog-admin-service/internal/custom_errors"
	model "blog-admin-service/internal/domain/models"
	ports "blog-admin-service/internal/domain/ports/output"
	"blog-admin-service/internal/infrastructure/outbound/repository/postgres/db"
)

const postColumns = `p.id, p.title, p.summary, p.content, p.cover, p.is_release, p.created_at, p.updated_at,
	COALESCE(ARRAY(SELECT pt.tag_id FROM posts_tags pt WHERE pt.post_id = p.id ORDER BY pt.ordinal), '{}')`

type PostRepository struct {
	log     ports.Logger
	db      db.PgDB
	metrics ports.MetricsProvider
}

func NewPostRepository(db db.PgDB, log ports.Logger, metrics ports.MetricsProvider) *PostRepository {
	return &PostRepository{db: db, log: log, metrics: metrics}
}

func (p *PostRepository) observe(queryType string, start time.Time, success bool) {
	p.metrics.IncrementDatabaseQueries(queryType, success)
	p.metrics.RecordDatabaseQueryDuration(queryType, time.Since(start))
}

func scanPost(row pgx.Row) (*model.Post, error) {
	var post model.Post
	err := row.Scan(
		&post.ID,
		&post.Title,
		&post.Summary,
		&post.Content,
		&post.Cover,
		&post.IsRelease,
		&post.CreatedAt,
		&post.UpdatedAt,
		&post.TagIDs,
	)
	if err != nil {
		return nil, err
	}
	return &post, nil
}

func (p *PostRepository) Create(ctx context.Context, post *model.Post) (*model.Post, error) {
	start := time.Now()
	p.log.Debug("Creating new post", slog.String("title", post.Title))

	args := pgx.NamedArgs{
		"title":      post.Title,
		"summary":    post.Summary,
		"content":    post.Content,
		"cover":      post.Cover,
		"is_release": post.IsRelease,
	}

	query := `
		INSERT INTO posts (title, summary, content, cover, is_release, created_at, updated_at)
		VALUES (@title, @summary, @content, @cover, @is_release, now(), now())
		RETURNING id, title, summary, content, cover, is_release, created_at, updated_at`

	var created model.Post
	err := p.db.QueryRow(ctx, query, args).Scan(
		&created.ID,
		&created.Title,
		&created.Summary,
		&created.Content,
		&created.Cover,
		&created.IsRelease,
		&created.CreatedAt,
		&created.UpdatedAt,
	)
	if err != nil {
		p.observe("post_create", start, false)
		p.log.Error("Error creating post", slog.String("error", err.Error()))
		return nil, custom_errors.ErrDatabaseQuery
	}

	p.observe("post_create", start, true)
	p.log.Debug("Successfully created post", slog.Int64("id", created.ID))
	return &created, nil
}

func (p *PostRepository) Update(ctx context.Context, post *model.Post) error {
	start := time.Now()
	p.log.Debug("Updating post base fields", slog.Int64("id", post.ID))

	args := pgx.NamedArgs{
		"id":         post.ID,
		"title":      post.Title,
		"summary":    post.Summary,
		"content":    post.Content,
		"cover":      post.Cover,
		"is_release": post.IsRelease,
	}
	query := `
		UPDATE posts
		SET title = @title, summary = @summary, content = @content, cover = @cover,
			is_release = @is_release, updated_at = now()
		WHERE id = @id`

	tag, err := p.db.Exec(ctx, query, args)
	if err != nil {
		p.observe("post_update", start, false)
		p.log.Error("Error updating post", slog.Int64("id", post.ID), slog.String("error", err.Error()))
		return custom_errors.ErrDatabaseQuery
	}
	if tag.RowsAffected() == 0 {
		p.observe("post_update", start, false)
		p.log.Debug("Post not found during update", slog.Int64("id", post.ID))
		return custom_errors.ErrPostNotFound
	}

	p.observe("post_update", start, true)
	return nil
}

func (p *PostRepository) SetRelease(ctx context.Context, id int64, isRelease bool) error {
	start := time.Now()
	args := pgx.NamedArgs{"id": id, "is_release": isRelease}
	tag, err := p.db.Exec(ctx, `UPDATE posts SET is_release = @is_release, updated_at = now() WHERE id = @id`, args)
	if err != nil {
		p.observe("post_set_release", start, false)
		p.log.Error("Error updating release flag", slog.Int64("id", id), slog.String("error", err.Error()))
		return custom_errors.ErrDatabaseQuery
	}
	if tag.RowsAffected() == 0 {
		p.observe("post_set_release", start, false)
		return custom_errors.ErrPostNotFound
	}
	p.observe("post_set_release", start, true)
	return nil
}

func (p *PostRepository) GetByID(ctx context.Context, id int64) (*model.Post, error) {
	start := time.Now()
	p.log.Debug("Getting post by ID", slog.Int64("id", id))

	query := `SELECT ` + postColumns + ` FROM posts p WHERE p.id = @id`
	post, err := scanPost(p.db.QueryRow(ctx, query, pgx.NamedArgs{"id": id}))
	if err != nil {
		p.observe("post_get_by_id", start, false)
		if errors.Is(err, pgx.ErrNoRows) {
			p.log.Debug("Post not found by id", slog.Int64("id", id))
			return nil, custom_errors.ErrPostNotFound
		}
		p.log.Error("Error getting post by id", slog.Int64("id", id), slog.String("error", err.Error()))
		return nil, custom_errors.ErrDatabaseQuery
	}

	p.observe("post_get_by_id", start, true)
	return post, nil
}

func (p *PostRepository) List(ctx context.Context, filters model.PostFilters) ([]*model.Post, int, error) {
	start := time.Now()
	p.log.Debug("Listing posts",
		slog.String("keyword", filters.Keyword),
		slog.Int("limit", filters.Limit),
		slog.Int("offset", filters.Offset))

	args := pgx.NamedArgs{}
	var where string
	if keyword := strings.TrimSpace(filters.Keyword); keyword != "" {
		where = ` WHERE p.title ILIKE @keyword`
		args["keyword"] = "%" + escapeLike(keyword) + "%"
	}

	var total int
	if err := p.db.QueryRow(ctx, `SELECT COUNT(*) FROM posts p`+where, args).Scan(&total); err != nil {
		p.observe("post_list", start, false)
		p.log.Error("Error counting posts", slog.String("error", err.Error()))
		return nil, 0, custom_errors.ErrDatabaseQuery
	}

	query := `SELECT ` + postColumns + ` FROM posts p` + where +
		` ORDER BY p.created_at DESC, p.id DESC LIMIT @limit OFFSET @offset`
	args["limit"] = filters.Limit
	args["offset"] = filters.Offset

	rows, err := p.db.Query(ctx, query, args)
	if err != nil {
		p.observe("post_list", start, false)
		p.log.Error("Error listing posts", slog.String("error", err.Error()))
		return nil, 0, custom_errors.ErrDatabaseQuery
	}
	defer rows.Close()

	posts := make([]*model.Post, 0, filters.Limit)
	for rows.Next() {
		post, err := scanPost(rows)
		if err != nil {
			p.observe("post_list", start, false)
			p.log.Error("Error scanning post during List", slog.String("error", err.Error()))
			return nil, 0, custom_errors.ErrDatabaseQuery
		}
		posts = append(posts, post)
	}
	if err := rows.Err(); err != nil {
		p.observe("post_list", start, false)
		p.log.Error("Error iterating rows during List", slog.String("error", err.Error()))
		return nil, 0, custom_errors.ErrDatabaseQuery
	}

	p.observe("post_list", start, true)
	p.log.Debug("Listed posts", slog.Int("count", len(posts)), slog.Int("total", total))
	return posts, total, nil
}

func (p *PostRepository) DeleteByIDs(ctx context.Context, ids []int64) error {
	start := time.Now()
	tag, err := p.db.Exec(ctx, `DELETE FROM posts WHERE id = ANY(@ids)`, pgx.NamedArgs{"ids": ids})
	if err != nil {
		p.observe("post_delete", start, false)
		p.log.Error("Error deleting posts", slog.Any("ids", ids), slog.String("error", err.Error()))
		return custom_errors.ErrDatabaseQuery
	}
	p.observe("post_delete", start, true)
	p.log.Debug("Deleted posts", slog.Int("requested", len(ids)), slog.Int64("deleted", tag.RowsAffected()))
	return nil
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}
