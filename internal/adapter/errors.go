// SPDX-License-Identifier: Apache-2.0

package adapter

import "errors"

// Sentinel errors returned by ServerAdapter implementations. Each maps to a
// class of transport failure; inspect with errors.Is.
var (
	// ErrBadRequest is returned for HTTP 400 (malformed or invalid input).
	ErrBadRequest = errors.New("bad request")

	// ErrUnauthorized is returned for HTTP 401. By the time the caller sees
	// it the session store has already been cleared and the redirect hook
	// fired.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrForbidden is returned for HTTP 403 (authenticated but not allowed,
	// e.g. another user's portfolio).
	ErrForbidden = errors.New("forbidden")

	// ErrNotFound is returned for HTTP 404.
	ErrNotFound = errors.New("not found")

	// ErrConflict is returned for HTTP 409 (e.g. registering an email twice).
	ErrConflict = errors.New("conflict")

	// ErrInternalServerError is returned for HTTP 5xx other than 502.
	ErrInternalServerError = errors.New("internal server error")

	// ErrBadGateway is returned for HTTP 502, typically an upstream market
	// data provider being down.
	ErrBadGateway = errors.New("bad gateway")

	// ErrNetwork is returned when no HTTP response was obtained at all
	// (connection refused, DNS failure, timeout). Distinct from the status
	// sentinels so callers can decide to fall back to cached data.
	ErrNetwork = errors.New("network failure")
)
