package memory

import (
	"context"
	"log/slog"
	"slices"
	"sort"
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgtype"

	"blog-admin-service/internal/custom_errors"
	model "blog-admin-service/internal/domain/models"
)

type PostRepository struct {
	store *Store
}

func (p *PostRepository) Create(ctx context.Context, post *model.Post) (*model.Post, error) {
	s := p.store
	s.log.Debug("Creating new post (memory impl)", slog.String("title", post.Title))

	s.mu.Lock()
	defer s.mu.Unlock()

	now := pgtype.Timestamptz{Time: time.Now(), Valid: true}
	created := &model.Post{
		ID:        s.nextPostID,
		Title:     post.Title,
		Summary:   post.Summary,
		Content:   post.Content,
		Cover:     post.Cover,
		IsRelease: post.IsRelease,
		CreatedAt: now,
		UpdatedAt: now,
	}
	s.nextPostID++
	s.posts[created.ID] = created

	result := *created
	return &result, nil
}

func (p *PostRepository) Update(ctx context.Context, post *model.Post) error {
	s := p.store
	s.mu.Lock()
	defer s.mu.Unlock()

	existing, ok := s.posts[post.ID]
	if !ok {
		s.log.Debug("Post not found during update (memory impl)", slog.Int64("id", post.ID))
		return custom_errors.ErrPostNotFound
	}
	existing.Title = post.Title
	existing.Summary = post.Summary
	existing.Content = post.Content
	existing.Cover = post.Cover
	existing.IsRelease = post.IsRelease
	existing.UpdatedAt = pgtype.Timestamptz{Time: time.Now(), Valid: true}
	return nil
}

func (p *PostRepository) SetRelease(ctx context.Context, id int64, isRelease bool) error {
	s := p.store
	s.mu.Lock()
	defer s.mu.Unlock()

	existing, ok := s.posts[id]
	if !ok {
		return custom_errors.ErrPostNotFound
	}
	existing.IsRelease = isRelease
	existing.UpdatedAt = pgtype.Timestamptz{Time: time.Now(), Valid: true}
	return nil
}

func (p *PostRepository) GetByID(ctx context.Context, id int64) (*model.Post, error) {
	s := p.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	post, ok := s.posts[id]
	if !ok {
		s.log.Debug("Post not found by id (memory impl)", slog.Int64("id", id))
		return nil, custom_errors.ErrPostNotFound
	}
	return s.snapshot(post), nil
}

func (p *PostRepository) List(ctx context.Context, filters model.PostFilters) ([]*model.Post, int, error) {
	s := p.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	keyword := strings.ToLower(strings.TrimSpace(filters.Keyword))
	matched := make([]*model.Post, 0, len(s.posts))
	for _, post := range s.posts {
		if keyword != "" && !strings.Contains(strings.ToLower(post.Title), keyword) {
			continue
		}
		matched = append(matched, post)
	}

	sort.Slice(matched, func(i, j int) bool {
		ti, tj := matched[i].CreatedAt.Time, matched[j].CreatedAt.Time
		if !ti.Equal(tj) {
			return ti.After(tj)
		}
		return matched[i].ID > matched[j].ID
	})

	total := len(matched)
	if filters.Offset >= total {
		return []*model.Post{}, total, nil
	}
	end := total
	if filters.Limit > 0 && filters.Offset+filters.Limit < total {
		end = filters.Offset + filters.Limit
	}

	page := make([]*model.Post, 0, end-filters.Offset)
	for _, post := range matched[filters.Offset:end] {
		page = append(page, s.snapshot(post))
	}
	return page, total, nil
}

func (p *PostRepository) DeleteByIDs(ctx context.Context, ids []int64) error {
	s := p.store
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, id := range ids {
		delete(s.posts, id)
		delete(s.postTags, id)
		for _, img := range s.images {
			if img.PostID != nil && *img.PostID == id {
				img.PostID = nil
			}
		}
	}
	return nil
}

// snapshot copies a post together with its tag links in insertion order.
// Callers hold s.mu.
func (s *Store) snapshot(post *model.Post) *model.Post {
	result := *post
	result.TagIDs = slices.Clone(s.postTags[post.ID])
	if result.TagIDs == nil {
		result.TagIDs = []int64{}
	}
	return &result
}
