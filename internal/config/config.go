// SPDX-License-Identifier: Apache-2.0

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for the copilot
// client. It aggregates all sub-configurations and is populated by merging
// values from environment variables, command-line flags, and an optional
// JSON file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env:       direct environment variable name for scalar fields.
type StructuredConfig struct {
	// Adapter holds addresses and timeouts for the outbound transport layer.
	Adapter Adapter `envPrefix:"COPILOT_"`

	// Storage holds paths for the client-local persistence (session file and
	// cache database).
	Storage Storage `envPrefix:"COPILOT_"`

	// Stream holds reconnect and keepalive settings for the event-stream
	// client.
	Stream Stream `envPrefix:"COPILOT_STREAM_"`

	// Workers holds background job settings.
	Workers Workers `envPrefix:"COPILOT_"`

	// JSONFilePath is the optional path to a JSON configuration file. When
	// non-empty, the file is parsed and merged behind the values already
	// loaded from environment variables and flags.
	// Populated via the COPILOT_CONFIG environment variable or the
	// -c / -config flag.
	JSONFilePath string `env:"COPILOT_CONFIG"`
}

// Adapter holds network settings for the request client.
type Adapter struct {
	// BaseURL is the backend base address, e.g. "http://localhost:8000".
	// Env: COPILOT_BASE_URL
	BaseURL string `env:"BASE_URL"`

	// WSURL is the event-stream base address, e.g. "ws://localhost:8000".
	// When empty it is derived from BaseURL.
	// Env: COPILOT_WS_URL
	WSURL string `env:"WS_URL"`

	// RequestTimeout bounds every outbound request. A request that produces
	// no response within this window is reported as a network failure.
	// Env: COPILOT_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Storage holds client-local persistence paths.
type Storage struct {
	// SessionPath is the JSON file the session store persists to.
	// Env: COPILOT_SESSION_PATH
	SessionPath string `env:"SESSION_PATH"`

	// CacheDSN is the SQLite DSN for the local snapshot cache.
	// ":memory:" selects an in-memory database.
	// Env: COPILOT_CACHE_DSN
	CacheDSN string `env:"CACHE_DSN"`
}

// Stream holds settings for the per-topic reconnect state machine.
type Stream struct {
	// BackoffBase is the delay before the first reconnect attempt. Each
	// consecutive failure grows the delay linearly from this base.
	// Env: COPILOT_STREAM_BACKOFF_BASE
	BackoffBase time.Duration `env:"BACKOFF_BASE"`

	// BackoffCap bounds the computed reconnect delay.
	// Env: COPILOT_STREAM_BACKOFF_CAP
	BackoffCap time.Duration `env:"BACKOFF_CAP"`

	// MaxAttempts is the number of consecutive failed reconnects after
	// which a channel is marked failed and stops retrying.
	// Env: COPILOT_STREAM_MAX_ATTEMPTS
	MaxAttempts int `env:"MAX_ATTEMPTS"`

	// PingInterval is the keepalive ping period for open channels.
	// Env: COPILOT_STREAM_PING_INTERVAL
	PingInterval time.Duration `env:"PING_INTERVAL"`
}

// Workers holds background job settings.
type Workers struct {
	// RefreshInterval defines how often the portfolio refresh job re-fetches
	// the portfolio list.
	// Env: COPILOT_REFRESH_INTERVAL
	RefreshInterval time.Duration `env:"REFRESH_INTERVAL"`
}

// GetStructuredConfig assembles the merged configuration from environment
// variables, command-line flags, and the optional JSON file.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		build()
}
