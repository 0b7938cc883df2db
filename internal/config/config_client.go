package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// Defaults applied when no source sets a value. The base address matches the
// backend's local-development listener.
const (
	DefaultBaseURL         = "http://localhost:8000"
	DefaultRequestTimeout  = 15 * time.Second
	DefaultBackoffBase     = time.Second
	DefaultBackoffCap      = 30 * time.Second
	DefaultMaxAttempts     = 5
	DefaultPingInterval    = 30 * time.Second
	DefaultRefreshInterval = 5 * time.Minute
)

// ClientAdapter holds network settings used by the request client.
type ClientAdapter struct {
	// BaseURL is the backend base address.
	BaseURL string
	// WSURL is the event-stream base address.
	WSURL string
	// RequestTimeout is the deadline for outbound requests.
	RequestTimeout time.Duration
}

// ClientStorage holds client-local persistence locations.
type ClientStorage struct {
	// SessionPath is the session JSON file path.
	SessionPath string
	// CacheDSN is the SQLite DSN of the local cache.
	CacheDSN string
}

// ClientStream holds reconnect and keepalive settings.
type ClientStream struct {
	BackoffBase  time.Duration
	BackoffCap   time.Duration
	MaxAttempts  int
	PingInterval time.Duration
}

// ClientWorkers holds background job settings.
type ClientWorkers struct {
	// RefreshInterval defines how often the refresh job re-fetches data.
	RefreshInterval time.Duration
}

// ClientConfig is the top-level client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	Adapter ClientAdapter
	Storage ClientStorage
	Stream  ClientStream
	Workers ClientWorkers
}

// GetClientConfig builds and validates the client config view from the
// merged structured configuration. Unset fields receive local-development
// defaults; WSURL is derived from BaseURL when absent.
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	return clientConfigFrom(cfg)
}

func clientConfigFrom(cfg *StructuredConfig) (*ClientConfig, error) {
	clientCfg := &ClientConfig{
		Adapter: ClientAdapter{
			BaseURL:        cfg.Adapter.BaseURL,
			WSURL:          cfg.Adapter.WSURL,
			RequestTimeout: cfg.Adapter.RequestTimeout,
		},
		Storage: ClientStorage{
			SessionPath: cfg.Storage.SessionPath,
			CacheDSN:    cfg.Storage.CacheDSN,
		},
		Stream: ClientStream{
			BackoffBase:  cfg.Stream.BackoffBase,
			BackoffCap:   cfg.Stream.BackoffCap,
			MaxAttempts:  cfg.Stream.MaxAttempts,
			PingInterval: cfg.Stream.PingInterval,
		},
		Workers: ClientWorkers{RefreshInterval: cfg.Workers.RefreshInterval},
	}

	clientCfg.applyDefaults()
	return clientCfg, clientCfg.validate()
}

func (cfg *ClientConfig) applyDefaults() {
	if cfg.Adapter.BaseURL == "" {
		cfg.Adapter.BaseURL = DefaultBaseURL
	}
	if cfg.Adapter.WSURL == "" {
		cfg.Adapter.WSURL = deriveWSURL(cfg.Adapter.BaseURL)
	}
	if cfg.Adapter.RequestTimeout <= 0 {
		cfg.Adapter.RequestTimeout = DefaultRequestTimeout
	}

	if cfg.Storage.SessionPath == "" {
		cfg.Storage.SessionPath = defaultStatePath("session.json")
	}
	if cfg.Storage.CacheDSN == "" {
		cfg.Storage.CacheDSN = defaultStatePath("cache.db")
	}

	if cfg.Stream.BackoffBase <= 0 {
		cfg.Stream.BackoffBase = DefaultBackoffBase
	}
	if cfg.Stream.BackoffCap <= 0 {
		cfg.Stream.BackoffCap = DefaultBackoffCap
	}
	if cfg.Stream.MaxAttempts <= 0 {
		cfg.Stream.MaxAttempts = DefaultMaxAttempts
	}
	if cfg.Stream.PingInterval <= 0 {
		cfg.Stream.PingInterval = DefaultPingInterval
	}

	if cfg.Workers.RefreshInterval <= 0 {
		cfg.Workers.RefreshInterval = DefaultRefreshInterval
	}
}

// deriveWSURL rewrites an http(s) base address into its ws(s) counterpart.
func deriveWSURL(baseURL string) string {
	switch {
	case strings.HasPrefix(baseURL, "https://"):
		return "wss://" + strings.TrimPrefix(baseURL, "https://")
	case strings.HasPrefix(baseURL, "http://"):
		return "ws://" + strings.TrimPrefix(baseURL, "http://")
	default:
		return "ws://" + baseURL
	}
}

func defaultStatePath(name string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".copilot", name)
	}
	return filepath.Join(home, ".copilot", name)
}
