package post_service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"blog-admin-service/internal/custom_errors"
	model "blog-admin-service/internal/domain/models"
	input "blog-admin-service/internal/domain/ports/input/post"
	ports "blog-admin-service/internal/domain/ports/output"
	image_repository "blog-admin-service/internal/domain/ports/output/image"
	post_repository "blog-admin-service/internal/domain/ports/output/post"
	tag_repository "blog-admin-service/internal/domain/ports/output/tag"
)

const (
	defaultPageSize = 10
	defaultMaxPage  = 100
)

// Options tunes the write and read paths of the service.
type Options struct {
	// AtomicWrites runs the base field and tag steps in one transaction.
	AtomicWrites    bool
	DefaultPageSize int
	MaxPageSize     int
}

type PostService struct {
	postRepo  post_repository.Repository
	tagRepo   tag_repository.Repository
	imageRepo image_repository.Repository
	uow       ports.UnitOfWork
	log       ports.Logger
	metrics   ports.MetricsProvider
	validate  *validator.Validate
	locks     *postLocks

	atomicWrites    bool
	defaultPageSize int
	maxPageSize     int
}

func NewPostService(
	postRepo post_repository.Repository,
	tagRepo tag_repository.Repository,
	imageRepo image_repository.Repository,
	uow ports.UnitOfWork,
	log ports.Logger,
	metrics ports.MetricsProvider,
	opts Options,
) input.Service {
	if opts.DefaultPageSize <= 0 {
		opts.DefaultPageSize = defaultPageSize
	}
	if opts.MaxPageSize <= 0 {
		opts.MaxPageSize = defaultMaxPage
	}
	if opts.DefaultPageSize > opts.MaxPageSize {
		opts.DefaultPageSize = opts.MaxPageSize
	}

	return &PostService{
		postRepo:        postRepo,
		tagRepo:         tagRepo,
		imageRepo:       imageRepo,
		uow:             uow,
		log:             log,
		metrics:         metrics,
		validate:        validator.New(),
		locks:           newPostLocks(),
		atomicWrites:    opts.AtomicWrites,
		defaultPageSize: opts.DefaultPageSize,
		maxPageSize:     opts.MaxPageSize,
	}
}

// writeSteps are the steps that share one transaction when atomic writes
// are enabled.
type writeSteps struct {
	base baseFieldUpdater
	tags tagManager
}

func (s *PostService) steps(postRepo post_repository.Repository, tagRepo tag_repository.Repository, log ports.Logger) writeSteps {
	return writeSteps{
		base: baseFieldUpdater{repo: postRepo, log: log},
		tags: tagManager{repo: tagRepo, log: log, metrics: s.metrics},
	}
}

func (s *PostService) images(log ports.Logger) imageManager {
	return imageManager{repo: s.imageRepo, log: log, metrics: s.metrics}
}

// withWriteSteps runs fn against the plain repositories, or inside a unit of
// work when atomic writes are on. Errors from fn are returned unchanged.
func (s *PostService) withWriteSteps(ctx context.Context, log ports.Logger, fn func(writeSteps) error) (err error) {
	if !s.atomicWrites {
		return fn(s.steps(s.postRepo, s.tagRepo, log))
	}

	tx, err := s.uow.Begin(ctx)
	if err != nil {
		log.Error("Failed to start transaction", slog.String("error", err.Error()))
		return fmt.Errorf("%w: begin transaction: %w", custom_errors.ErrDatabaseQuery, err)
	}

	committed := false
	defer func() {
		if committed {
			return
		}
		if rollbackErr := tx.Rollback(ctx); rollbackErr != nil {
			log.Error("Failed to rollback transaction", slog.String("error", rollbackErr.Error()))
		}
	}()

	if err := fn(s.steps(tx.PostRepository(), tx.TagRepository(), log)); err != nil {
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		log.Error("Failed to commit transaction", slog.String("error", err.Error()))
		return fmt.Errorf("%w: commit transaction: %w", custom_errors.ErrDatabaseQuery, err)
	}
	committed = true
	return nil
}

func (s *PostService) pipelineLogger(pipeline string) ports.Logger {
	return s.log.With(slog.String("pipeline", pipeline), slog.String("op_id", uuid.NewString()))
}

func (s *PostService) CreatePost(ctx context.Context, post *model.PostDTO) (*model.MutationResult, error) {
	if err := s.validateInput(post); err != nil {
		return nil, err
	}

	start := time.Now()
	defer func() { s.metrics.RecordPipelineDuration("create", time.Since(start)) }()

	log := s.pipelineLogger("create")
	log.Debug("Creating post", slog.String("title", post.Title), slog.Int("tags", len(post.TagIDs)))

	var id int64
	err := s.withWriteSteps(ctx, log, func(w writeSteps) error {
		var err error
		id, err = w.base.Create(ctx, post.BaseFields())
		if err != nil {
			return err
		}

		if err := w.tags.AttachTags(ctx, id, post.TagIDs); err != nil {
			return fmt.Errorf("%w: attach tags to post %d: %w", custom_errors.ErrDependentStepFailed, id, err)
		}
		return nil
	})
	if err != nil {
		s.metrics.IncrementPostOperations("create", false)
		return nil, err
	}

	images := model.PersistedImages(post.Images)
	if len(images) == 0 {
		log.Debug("No persisted images to link, skipping image step", slog.Int64("post_id", id))
		s.metrics.IncrementPostOperations("create", true)
		return &model.MutationResult{ID: id}, nil
	}

	previousOwners, err := s.images(log).SyncImages(ctx, id, images)
	if err != nil {
		log.Error("Failed to link images to created post",
			slog.Int64("post_id", id),
			slog.String("error", err.Error()))
		s.metrics.IncrementPostOperations("create", false)
		return nil, fmt.Errorf("%w: link images to post %d: %w", custom_errors.ErrDependentStepFailed, id, err)
	}

	log.Info("Post created", slog.Int64("post_id", id))
	s.metrics.IncrementPostOperations("create", true)
	return &model.MutationResult{ID: id, AffectedPostIDs: previousOwners}, nil
}

func (s *PostService) UpdatePost(ctx context.Context, post *model.UpdatePostDTO) (*model.MutationResult, error) {
	if err := s.validateInput(post); err != nil {
		return nil, err
	}

	unlock := s.locks.Lock(post.ID)
	defer unlock()

	start := time.Now()
	defer func() { s.metrics.RecordPipelineDuration("update", time.Since(start)) }()

	log := s.pipelineLogger("update").With(slog.Int64("post_id", post.ID))
	log.Debug("Updating post", slog.Int("tags", len(post.TagIDs)), slog.Int("images", len(post.Images)))

	err := s.withWriteSteps(ctx, log, func(w writeSteps) error {
		if err := w.base.Update(ctx, post.BaseFields()); err != nil {
			return err
		}

		if err := w.tags.ReplaceTags(ctx, post.ID, post.TagIDs); err != nil {
			return fmt.Errorf("%w: replace tags of post %d: %w", custom_errors.ErrDependentStepFailed, post.ID, err)
		}
		return nil
	})
	if err != nil {
		s.metrics.IncrementPostOperations("update", false)
		return nil, err
	}

	previousOwners, err := s.images(log).SyncImages(ctx, post.ID, model.PersistedImages(post.Images))
	if err != nil {
		log.Error("Image sync failed, update kept",
			slog.String("error", fmt.Errorf("%w: %w", custom_errors.ErrImageSyncFailed, err).Error()))
	}

	log.Info("Post updated")
	s.metrics.IncrementPostOperations("update", true)
	return &model.MutationResult{ID: post.ID, AffectedPostIDs: previousOwners}, nil
}

func (s *PostService) ReleasePost(ctx context.Context, release *model.PostReleaseDTO) (*model.MutationResult, error) {
	if err := s.validateInput(release); err != nil {
		return nil, err
	}

	if err := s.postRepo.SetRelease(ctx, release.ID, release.IsRelease); err != nil {
		s.metrics.IncrementPostOperations("release", false)
		if errors.Is(err, custom_errors.ErrPostNotFound) {
			s.log.Debug("Post not found for release", slog.Int64("post_id", release.ID))
			return nil, custom_errors.ErrPostNotFound
		}
		s.log.Error("Failed to set release flag",
			slog.Int64("post_id", release.ID),
			slog.String("error", err.Error()))
		return nil, err
	}

	s.metrics.IncrementPostOperations("release", true)
	return &model.MutationResult{ID: release.ID}, nil
}

func (s *PostService) DeletePosts(ctx context.Context, batch *model.BatchDeleteDTO) error {
	if err := s.validateInput(batch); err != nil {
		return err
	}

	if err := s.postRepo.DeleteByIDs(ctx, batch.IDs); err != nil {
		s.log.Error("Failed to delete posts",
			slog.Any("post_ids", batch.IDs),
			slog.String("error", err.Error()))
		s.metrics.IncrementPostOperations("delete", false)
		return err
	}

	s.log.Info("Posts deleted", slog.Int("count", len(batch.IDs)))
	s.metrics.IncrementPostOperations("delete", true)
	return nil
}

func (s *PostService) validateInput(dto any) error {
	if dto == nil {
		return fmt.Errorf("%w: empty request", custom_errors.ErrInvalidInput)
	}
	if err := s.validate.Struct(dto); err != nil {
		s.log.Debug("Request rejected", slog.String("error", err.Error()))
		return fmt.Errorf("%w: %w", custom_errors.ErrInvalidInput, err)
	}
	return nil
}
