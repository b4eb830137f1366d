package model

// MutationResult carries the affected post id. AffectedPostIDs lists other
// posts whose images were moved to it and stays out of the response body.
type MutationResult struct {
	ID              int64   `json:"id"`
	AffectedPostIDs []int64 `json:"-"`
}

type PageInfo struct {
	Total    int `json:"total"`
	Current  int `json:"current"`
	PageSize int `json:"pageSize"`
}

// QueryResult carries pagination keys only in list mode; a nil PageInfo
// drops them from the JSON envelope.
type QueryResult struct {
	Data []*Post `json:"data"`
	*PageInfo
}
