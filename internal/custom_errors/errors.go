package custom_errors

import "errors"

// Pipeline error kinds.
var (
	ErrCreateFailed        = errors.New("post create failed: no identifier produced")
	ErrDependentStepFailed = errors.New("dependent step failed")
	ErrImageSyncFailed     = errors.New("image sync failed")
)

// Gateway errors.
var (
	ErrDatabaseQuery = errors.New("database query failed")
	ErrPostNotFound  = errors.New("post not found")
	ErrNoUpdateRows  = errors.New("no rows updated")
	ErrTagNotFound   = errors.New("tag not found")
	ErrTagPost       = errors.New("failed to link tags to post")
	ErrTagDelete     = errors.New("failed to unlink tags from post")
	ErrImageNotFound = errors.New("image not found")
	ErrImageLink     = errors.New("failed to link images to post")
	ErrImageQuery    = errors.New("image query failed")
)

// Service errors.
var (
	ErrInvalidInput = errors.New("invalid input")
	ErrCacheMiss    = errors.New("cache miss")
)
