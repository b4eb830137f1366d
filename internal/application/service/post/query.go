package post_service

import (
	"context"
	"errors"
	"log/slog"

	"blog-admin-service/internal/custom_errors"
	model "blog-admin-service/internal/domain/models"
)

// Query returns either the single post named by params.ID or one page of
// posts matching params.Keyword. Pagination is ignored in the first case.
func (s *PostService) Query(ctx context.Context, params *model.QueryParam) (*model.QueryResult, error) {
	if params == nil {
		params = &model.QueryParam{}
	}

	if params.ID != nil {
		return s.queryByID(ctx, *params.ID)
	}

	if err := s.validateInput(params); err != nil {
		return nil, err
	}
	return s.queryPage(ctx, params)
}

func (s *PostService) queryByID(ctx context.Context, id int64) (*model.QueryResult, error) {
	post, err := s.postRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, custom_errors.ErrPostNotFound) {
			s.log.Debug("Post not found", slog.Int64("id", id))
			return &model.QueryResult{Data: []*model.Post{}}, nil
		}
		s.log.Error("Failed to get post by id",
			slog.Int64("id", id),
			slog.String("error", err.Error()))
		return nil, err
	}

	images, err := s.imageRepo.GetByPost(ctx, id)
	if err != nil {
		s.log.Error("Failed to get images by post",
			slog.Int64("id", id),
			slog.String("error", err.Error()))
		return nil, err
	}
	post.Images = images

	return &model.QueryResult{Data: []*model.Post{post}}, nil
}

func (s *PostService) queryPage(ctx context.Context, params *model.QueryParam) (*model.QueryResult, error) {
	current := params.Current
	if current <= 0 {
		current = 1
	}
	pageSize := params.PageSize
	if pageSize <= 0 {
		pageSize = s.defaultPageSize
	}
	if pageSize > s.maxPageSize {
		pageSize = s.maxPageSize
	}

	posts, total, err := s.postRepo.List(ctx, model.PostFilters{
		Keyword: params.Keyword,
		Limit:   pageSize,
		Offset:  (current - 1) * pageSize,
	})
	if err != nil {
		s.log.Error("Failed to list posts",
			slog.String("keyword", params.Keyword),
			slog.String("error", err.Error()))
		return nil, err
	}

	if len(posts) > 0 {
		ids := make([]int64, 0, len(posts))
		for _, post := range posts {
			ids = append(ids, post.ID)
		}
		images, err := s.imageRepo.GetByPosts(ctx, ids)
		if err != nil {
			s.log.Error("Failed to get images for page", slog.String("error", err.Error()))
			return nil, err
		}
		for _, post := range posts {
			post.Images = images[post.ID]
			if post.Images == nil {
				post.Images = []*model.Image{}
			}
		}
	}
	if posts == nil {
		posts = []*model.Post{}
	}

	return &model.QueryResult{
		Data: posts,
		PageInfo: &model.PageInfo{
			Total:    total,
			Current:  current,
			PageSize: pageSize,
		},
	}, nil
}
