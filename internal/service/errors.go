package service

import "errors"

var (
	// ErrNotAuthenticated is returned by Restore when no usable session is
	// persisted (never logged in, logged out, or the token expired).
	ErrNotAuthenticated = errors.New("not authenticated")

	// ErrLoginFailed wraps any failure during the credential exchange.
	ErrLoginFailed = errors.New("login failed")
)
