package store

import "errors"

var (
	// ErrSessionNotFound is returned by [SessionStore.Load] when no session
	// has been persisted yet, or after a Clear.
	ErrSessionNotFound = errors.New("local session not found")

	// ErrCacheMiss is returned by cache reads when the requested portfolio
	// or quote has never been mirrored locally.
	ErrCacheMiss = errors.New("not found in local cache")
)
