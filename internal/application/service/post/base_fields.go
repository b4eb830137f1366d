package post_service

import (
	"context"
	"fmt"
	"log/slog"

	"blog-admin-service/internal/custom_errors"
	model "blog-admin-service/internal/domain/models"
	ports "blog-admin-service/internal/domain/ports/output"
	post_repository "blog-admin-service/internal/domain/ports/output/post"
)

type baseFieldUpdater struct {
	repo post_repository.Repository
	log  ports.Logger
}

// Create stores the scalar fields and returns the new identifier.
func (u baseFieldUpdater) Create(ctx context.Context, fields *model.Post) (int64, error) {
	created, err := u.repo.Create(ctx, fields)
	if err != nil {
		u.log.Error("Failed to create post base fields", slog.String("error", err.Error()))
		return 0, fmt.Errorf("%w: %w", custom_errors.ErrCreateFailed, err)
	}
	if created == nil || created.ID == 0 {
		u.log.Error("Post create returned no identifier")
		return 0, custom_errors.ErrCreateFailed
	}
	u.log.Debug("Post base fields created", slog.Int64("post_id", created.ID))
	return created.ID, nil
}

func (u baseFieldUpdater) Update(ctx context.Context, fields *model.Post) error {
	if err := u.repo.Update(ctx, fields); err != nil {
		u.log.Error("Failed to update post base fields",
			slog.Int64("post_id", fields.ID),
			slog.String("error", err.Error()))
		return err
	}
	u.log.Debug("Post base fields updated", slog.Int64("post_id", fields.ID))
	return nil
}
