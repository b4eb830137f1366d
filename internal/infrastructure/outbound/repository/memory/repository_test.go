package memory_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"blog-admin-service/internal/custom_errors"
	model "blog-admin-service/internal/domain/models"
	"blog-admin-service/internal/infrastructure/logger"
	"blog-admin-service/internal/infrastructure/outbound/repository/memory"
)

func setupStore(t *testing.T) *memory.Store {
	t.Helper()
	return memory.NewStore(logger.New("test"))
}

func TestPostRepository_CreateAndGet(t *testing.T) {
	store := setupStore(t)
	repo := store.PostRepository()
	ctx := context.Background()

	created, err := repo.Create(ctx, &model.Post{Title: "First", Content: "body"})
	require.NoError(t, err)
	assert.NotZero(t, created.ID)
	assert.True(t, created.CreatedAt.Valid)

	got, err := repo.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "First", got.Title)
	assert.Equal(t, []int64{}, got.TagIDs)

	_, err = repo.GetByID(ctx, created.ID+100)
	assert.ErrorIs(t, err, custom_errors.ErrPostNotFound)
}

func TestPostRepository_UpdateAndRelease(t *testing.T) {
	store := setupStore(t)
	repo := store.PostRepository()
	ctx := context.Background()

	created, err := repo.Create(ctx, &model.Post{Title: "Draft"})
	require.NoError(t, err)

	require.NoError(t, repo.Update(ctx, &model.Post{ID: created.ID, Title: "Final", Summary: "s"}))
	require.NoError(t, repo.SetRelease(ctx, created.ID, true))

	got, err := repo.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Final", got.Title)
	assert.Equal(t, "s", got.Summary)
	assert.True(t, got.IsRelease)

	assert.ErrorIs(t, repo.Update(ctx, &model.Post{ID: 999}), custom_errors.ErrPostNotFound)
	assert.ErrorIs(t, repo.SetRelease(ctx, 999, true), custom_errors.ErrPostNotFound)
}

func TestPostRepository_List(t *testing.T) {
	store := setupStore(t)
	repo := store.PostRepository()
	ctx := context.Background()

	titles := []string{"go tips", "rust notes", "Go generics", "cooking", "go modules"}
	for _, title := range titles {
		_, err := repo.Create(ctx, &model.Post{Title: title})
		require.NoError(t, err)
	}

	tests := []struct {
		name      string
		filters   model.PostFilters
		wantTotal int
		wantIDs   []int64
	}{
		{
			name:      "keyword is case insensitive, newest first",
			filters:   model.PostFilters{Keyword: "go", Limit: 10},
			wantTotal: 3,
			wantIDs:   []int64{5, 3, 1},
		},
		{
			name:      "second page keeps full total",
			filters:   model.PostFilters{Keyword: "go", Limit: 2, Offset: 2},
			wantTotal: 3,
			wantIDs:   []int64{1},
		},
		{
			name:      "offset past the end",
			filters:   model.PostFilters{Limit: 10, Offset: 10},
			wantTotal: 5,
			wantIDs:   []int64{},
		},
		{
			name:      "no keyword",
			filters:   model.PostFilters{Limit: 2},
			wantTotal: 5,
			wantIDs:   []int64{5, 4},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			posts, total, err := repo.List(ctx, tt.filters)
			require.NoError(t, err)
			assert.Equal(t, tt.wantTotal, total)

			ids := make([]int64, 0, len(posts))
			for _, p := range posts {
				ids = append(ids, p.ID)
			}
			assert.Equal(t, tt.wantIDs, ids)
		})
	}
}

func TestTagRepository_ReplaceCycle(t *testing.T) {
	store := setupStore(t)
	store.SeedTags(1, 2, 3)
	posts := store.PostRepository()
	tags := store.TagRepository()
	ctx := context.Background()

	post, err := posts.Create(ctx, &model.Post{Title: "tagged"})
	require.NoError(t, err)

	require.NoError(t, tags.Insert(ctx, post.ID, []int64{2, 1}))
	assert.ErrorIs(t, tags.Insert(ctx, post.ID, []int64{1}), custom_errors.ErrTagPost)
	assert.ErrorIs(t, tags.Insert(ctx, post.ID, []int64{42}), custom_errors.ErrTagNotFound)
	assert.ErrorIs(t, tags.Insert(ctx, 999, []int64{1}), custom_errors.ErrPostNotFound)

	got, err := posts.GetByID(ctx, post.ID)
	require.NoError(t, err)
	assert.Equal(t, []int64{2, 1}, got.TagIDs, "tags keep insertion order")

	require.NoError(t, tags.DeleteByPost(ctx, post.ID))
	require.NoError(t, tags.Insert(ctx, post.ID, []int64{3, 1}))

	got, err = posts.GetByID(ctx, post.ID)
	require.NoError(t, err)
	assert.Equal(t, []int64{3, 1}, got.TagIDs)
}

func TestImageRepository_UpdateLinks(t *testing.T) {
	store := setupStore(t)
	posts := store.PostRepository()
	images := store.ImageRepository()
	ctx := context.Background()

	post, err := posts.Create(ctx, &model.Post{Title: "with images"})
	require.NoError(t, err)
	first := store.SeedImage(model.Image{Name: "a.png", URL: "https://cdn/a.png"})
	second := store.SeedImage(model.Image{Name: "b.png", URL: "https://cdn/b.png"})

	owners, err := images.UpdateLinks(ctx, post.ID, []*model.Image{first, {ID: 404}})
	assert.ErrorIs(t, err, custom_errors.ErrImageNotFound)
	assert.Nil(t, owners)

	linked, err := images.GetByPost(ctx, post.ID)
	require.NoError(t, err)
	assert.Empty(t, linked, "a failed call must not link any image")

	owners, err = images.UpdateLinks(ctx, post.ID, []*model.Image{second, first})
	require.NoError(t, err)
	assert.Empty(t, owners, "unlinked images have no previous owner")

	linked, err = images.GetByPost(ctx, post.ID)
	require.NoError(t, err)
	require.Len(t, linked, 2)
	assert.Equal(t, first.ID, linked[0].ID)
	assert.Equal(t, post.ID, *linked[0].PostID)

	byPost, err := images.GetByPosts(ctx, []int64{post.ID, 999})
	require.NoError(t, err)
	assert.Len(t, byPost[post.ID], 2)
	assert.NotContains(t, byPost, int64(999))

	owners, err = images.UpdateLinks(ctx, post.ID, []*model.Image{first})
	require.NoError(t, err)
	assert.Empty(t, owners, "relinking to the same post reports no owner")

	other, err := posts.Create(ctx, &model.Post{Title: "takes an image"})
	require.NoError(t, err)
	owners, err = images.UpdateLinks(ctx, other.ID, []*model.Image{first, second})
	require.NoError(t, err)
	assert.Equal(t, []int64{post.ID}, owners)

	linked, err = images.GetByPost(ctx, post.ID)
	require.NoError(t, err)
	assert.Empty(t, linked)

	require.NoError(t, posts.DeleteByIDs(ctx, []int64{post.ID}))
	linked, err = images.GetByPost(ctx, post.ID)
	require.NoError(t, err)
	assert.Empty(t, linked)
}
