package model

type PostDTO struct {
	Title     string   `json:"title" validate:"required,max=255"`
	Summary   string   `json:"summary" validate:"max=1024"`
	Content   string   `json:"content"`
	Cover     string   `json:"cover" validate:"omitempty,max=1024"`
	IsRelease bool     `json:"is_release"`
	TagIDs    []int64  `json:"tag_ids" validate:"omitempty,dive,gt=0"`
	Images    []*Image `json:"images" validate:"omitempty,dive,required"`
}

type UpdatePostDTO struct {
	ID int64 `json:"id" validate:"required,gt=0"`
	PostDTO
}

type PostReleaseDTO struct {
	ID        int64 `json:"id" validate:"required,gt=0"`
	IsRelease bool  `json:"is_release"`
}

type BatchDeleteDTO struct {
	IDs []int64 `json:"ids" validate:"required,min=1,dive,gt=0"`
}

// QueryParam selects either a single post (ID set) or a page of posts.
type QueryParam struct {
	ID       *int64 `json:"id,omitempty"`
	Keyword  string `json:"keyword,omitempty"`
	Current  int    `json:"current" validate:"gte=0"`
	PageSize int    `json:"page_size" validate:"gte=0"`
}

// BaseFields returns the scalar part of the aggregate.
func (d *PostDTO) BaseFields() *Post {
	return &Post{
		Title:     d.Title,
		Summary:   d.Summary,
		Content:   d.Content,
		Cover:     d.Cover,
		IsRelease: d.IsRelease,
	}
}

func (d *UpdatePostDTO) BaseFields() *Post {
	post := d.PostDTO.BaseFields()
	post.ID = d.ID
	return post
}
