package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrUnknownProfile indicates a rendering profile name is not recognised.
	ErrUnknownProfile = errors.New("unknown rendering profile")

	// ErrUnknownDocument indicates a legal document name is not recognised.
	ErrUnknownDocument = errors.New("unknown document")

	// ErrUnknownSetting indicates a settings key is not recognised.
	ErrUnknownSetting = errors.New("unknown setting")

	// ErrUnavailable indicates a collaborator could not be reached.
	ErrUnavailable = errors.New("service unavailable")

	// ErrCacheMiss indicates a cache has no fresh entry for a key.
	ErrCacheMiss = errors.New("cache miss")

	// ErrRateLimited indicates the API rate limit was exceeded.
	ErrRateLimited = errors.New("rate limited")
)
