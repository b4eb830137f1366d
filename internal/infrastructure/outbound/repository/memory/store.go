package memory

import (
	"context"
	"fmt"
	"sync"

	ports "blog-admin-service/internal/domain/ports/output"
	image_repository "blog-admin-service/internal/domain/ports/output/image"
	post_repository "blog-admin-service/internal/domain/ports/output/post"
	tag_repository "blog-admin-service/internal/domain/ports/output/tag"

	model "blog-admin-service/internal/domain/models"
)

// Store keeps posts, tag links and images in one place so the three
// repositories see a consistent aggregate. Each call commits on its own.
type Store struct {
	log ports.Logger

	mu          sync.RWMutex
	posts       map[int64]*model.Post
	postTags    map[int64][]int64
	knownTags   map[int64]struct{}
	images      map[int64]*model.Image
	nextPostID  int64
	nextImageID int64
}

func NewStore(log ports.Logger) *Store {
	return &Store{
		log:         log,
		posts:       make(map[int64]*model.Post),
		postTags:    make(map[int64][]int64),
		knownTags:   make(map[int64]struct{}),
		images:      make(map[int64]*model.Image),
		nextPostID:  1,
		nextImageID: 1,
	}
}

// SeedTags registers tag ids that posts may be linked to. An empty store
// accepts any tag id.
func (s *Store) SeedTags(ids ...int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, id := range ids {
		s.knownTags[id] = struct{}{}
	}
}

// SeedImage stores an unlinked upload and returns it with its identifier.
func (s *Store) SeedImage(img model.Image) *model.Image {
	s.mu.Lock()
	defer s.mu.Unlock()
	img.ID = s.nextImageID
	img.PostID = nil
	s.nextImageID++
	s.images[img.ID] = &img
	result := img
	return &result
}

func (s *Store) PostRepository() post_repository.Repository {
	return &PostRepository{store: s}
}

func (s *Store) TagRepository() tag_repository.Repository {
	return &TagRepository{store: s}
}

func (s *Store) ImageRepository() image_repository.Repository {
	return &ImageRepository{store: s}
}

// UnitOfWork returns a unit of work whose transactions write straight
// through. Rollback cannot undo earlier writes.
func (s *Store) UnitOfWork() ports.UnitOfWork {
	return &unitOfWork{store: s}
}

type unitOfWork struct {
	store *Store
}

func (u *unitOfWork) Begin(ctx context.Context) (ports.Transaction, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("error beginning transaction: %w", err)
	}
	return &transaction{store: u.store}, nil
}

type transaction struct {
	store *Store
}

func (t *transaction) PostRepository() post_repository.Repository {
	return t.store.PostRepository()
}

func (t *transaction) TagRepository() tag_repository.Repository {
	return t.store.TagRepository()
}

func (t *transaction) ImageRepository() image_repository.Repository {
	return t.store.ImageRepository()
}

func (t *transaction) Commit(ctx context.Context) error {
	return nil
}

func (t *transaction) Rollback(ctx context.Context) error {
	t.store.log.Warn("Rollback requested on in-memory store, writes are already visible")
	return nil
}
