package memory

import (
	"context"
	"log/slog"
	"slices"

	"blog-admin-service/internal/custom_errors"
)

type TagRepository struct {
	store *Store
}

func (t *TagRepository) DeleteByPost(ctx context.Context, postID int64) error {
	s := t.store
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.postTags, postID)
	return nil
}

func (t *TagRepository) Insert(ctx context.Context, postID int64, tagIDs []int64) error {
	if len(tagIDs) == 0 {
		return nil
	}

	s := t.store
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.posts[postID]; !ok {
		return custom_errors.ErrPostNotFound
	}

	linked := s.postTags[postID]
	for _, tagID := range tagIDs {
		if len(s.knownTags) > 0 {
			if _, ok := s.knownTags[tagID]; !ok {
				s.log.Debug("Tag not found while linking (memory impl)", slog.Int64("post_id", postID), slog.Int64("tag_id", tagID))
				return custom_errors.ErrTagNotFound
			}
		}
		if slices.Contains(linked, tagID) {
			return custom_errors.ErrTagPost
		}
	}
	s.postTags[postID] = append(linked, tagIDs...)
	return nil
}
