package post_service

import (
	"context"
	"log/slog"

	model "blog-admin-service/internal/domain/models"
	ports "blog-admin-service/internal/domain/ports/output"
	image_repository "blog-admin-service/internal/domain/ports/output/image"
)

type imageManager struct {
	repo    image_repository.Repository
	log     ports.Logger
	metrics ports.MetricsProvider
}

// SyncImages points every descriptor at postID. Callers pass only persisted
// images; an empty slice makes no gateway call. The returned ids are the
// other posts that lost an image to postID.
func (m imageManager) SyncImages(ctx context.Context, postID int64, images []*model.Image) ([]int64, error) {
	if len(images) == 0 {
		return nil, nil
	}

	previousOwners, err := m.repo.UpdateLinks(ctx, postID, images)
	if err != nil {
		m.metrics.IncrementMediaOperations("sync", false)
		return nil, err
	}

	m.metrics.IncrementMediaOperations("sync", true)
	m.log.Debug("Images linked to post",
		slog.Int64("post_id", postID),
		slog.Int("count", len(images)),
		slog.Any("previous_owners", previousOwners),
	)
	return previousOwners, nil
}
