package post_service

import (
	"context"
	"log/slog"

	ports "blog-admin-service/internal/domain/ports/output"
	tag_repository "blog-admin-service/internal/domain/ports/output/tag"
)

type tagManager struct {
	repo    tag_repository.Repository
	log     ports.Logger
	metrics ports.MetricsProvider
}

// ReplaceTags drops every association of postID and then links tagIDs.
// The delete always runs first so re-used ids never collide.
func (m tagManager) ReplaceTags(ctx context.Context, postID int64, tagIDs []int64) error {
	if err := m.repo.DeleteByPost(ctx, postID); err != nil {
		m.log.Error("Failed to delete tag associations",
			slog.Int64("post_id", postID),
			slog.String("error", err.Error()))
		m.metrics.IncrementTagOperations("replace", false)
		return err
	}

	if err := m.insert(ctx, postID, tagIDs); err != nil {
		m.metrics.IncrementTagOperations("replace", false)
		return err
	}
	m.metrics.IncrementTagOperations("replace", true)
	return nil
}

// AttachTags links tagIDs to a post that has no associations yet.
func (m tagManager) AttachTags(ctx context.Context, postID int64, tagIDs []int64) error {
	if err := m.insert(ctx, postID, tagIDs); err != nil {
		m.metrics.IncrementTagOperations("attach", false)
		return err
	}
	m.metrics.IncrementTagOperations("attach", true)
	return nil
}

func (m tagManager) insert(ctx context.Context, postID int64, tagIDs []int64) error {
	tagIDs = uniqueIDs(tagIDs)
	if len(tagIDs) == 0 {
		m.log.Debug("No tags to link", slog.Int64("post_id", postID))
		return nil
	}

	if err := m.repo.Insert(ctx, postID, tagIDs); err != nil {
		m.log.Error("Failed to link tags to post",
			slog.Int64("post_id", postID),
			slog.Any("tag_ids", tagIDs),
			slog.String("error", err.Error()))
		return err
	}
	m.log.Debug("Tags linked to post", slog.Int64("post_id", postID), slog.Int("count", len(tagIDs)))
	return nil
}

// uniqueIDs collapses duplicates keeping the first occurrence order.
func uniqueIDs(ids []int64) []int64 {
	if len(ids) < 2 {
		return ids
	}
	seen := make(map[int64]struct{}, len(ids))
	result := make([]int64, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		result = append(result, id)
	}
	return result
}
