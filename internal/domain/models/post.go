package model

import "github.com/jackc/pgx/v5/pgtype"

type Post struct {
	ID        int64              `json:"id"`
	Title     string             `json:"title"`
	Summary   string             `json:"summary"`
	Content   string             `json:"content"`
	Cover     string             `json:"cover"`
	IsRelease bool               `json:"is_release"`
	TagIDs    []int64            `json:"tag_ids"`
	Images    []*Image           `json:"images"`
	CreatedAt pgtype.Timestamptz `json:"created_at"`
	UpdatedAt pgtype.Timestamptz `json:"updated_at"`
}

// PostFilters is the gateway-side view of a list query.
type PostFilters struct {
	Keyword string
	Limit   int
	Offset  int
}
