package memory

import (
	"context"
	"log/slog"
	"slices"
	"sort"

	"blog-admin-service/internal/custom_errors"
	model "blog-admin-service/internal/domain/models"
)

type ImageRepository struct {
	store *Store
}

func (m *ImageRepository) UpdateLinks(ctx context.Context, postID int64, images []*model.Image) ([]int64, error) {
	s := m.store
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, img := range images {
		if _, ok := s.images[img.ID]; !ok {
			s.log.Warn("Image not found during link (memory impl)", slog.Int64("post_id", postID), slog.Int64("image_id", img.ID))
			return nil, custom_errors.ErrImageNotFound
		}
	}
	var previousOwners []int64
	for _, img := range images {
		stored := s.images[img.ID]
		if stored.PostID != nil && *stored.PostID != postID && !slices.Contains(previousOwners, *stored.PostID) {
			previousOwners = append(previousOwners, *stored.PostID)
		}
		id := postID
		stored.PostID = &id
	}
	return previousOwners, nil
}

func (m *ImageRepository) GetByPost(ctx context.Context, postID int64) ([]*model.Image, error) {
	s := m.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.imagesOf(postID), nil
}

func (m *ImageRepository) GetByPosts(ctx context.Context, postIDs []int64) (map[int64][]*model.Image, error) {
	s := m.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make(map[int64][]*model.Image, len(postIDs))
	for _, postID := range postIDs {
		if images := s.imagesOf(postID); len(images) > 0 {
			result[postID] = images
		}
	}
	return result, nil
}

func (s *Store) imagesOf(postID int64) []*model.Image {
	images := make([]*model.Image, 0)
	for _, img := range s.images {
		if img.PostID != nil && *img.PostID == postID {
			imgCopy := *img
			linked := *img.PostID
			imgCopy.PostID = &linked
			images = append(images, &imgCopy)
		}
	}
	sort.Slice(images, func(i, j int) bool { return images[i].ID < images[j].ID })
	return images
}
