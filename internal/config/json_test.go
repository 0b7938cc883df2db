package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTestJSON(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestParseJSON_FullConfig(t *testing.T) {
	path := writeTestJSON(t, `{
		"adapter": {
			"base_url": "http://backend:8000",
			"ws_url": "ws://backend:8000",
			"request_timeout": "30s"
		},
		"storage": {
			"session_path": "/tmp/s.json",
			"cache_dsn": "/tmp/c.db"
		},
		"stream": {
			"backoff_base": "2s",
			"backoff_cap": "40s",
			"max_attempts": 8,
			"ping_interval": "20s"
		},
		"workers": {"refresh_interval": "3m"}
	}`)

	cfg, err := parseJSON(path)
	require.NoError(t, err)

	assert.Equal(t, "http://backend:8000", cfg.Adapter.BaseURL)
	assert.Equal(t, 30*time.Second, cfg.Adapter.RequestTimeout)
	assert.Equal(t, "/tmp/s.json", cfg.Storage.SessionPath)
	assert.Equal(t, 2*time.Second, cfg.Stream.BackoffBase)
	assert.Equal(t, 40*time.Second, cfg.Stream.BackoffCap)
	assert.Equal(t, 8, cfg.Stream.MaxAttempts)
	assert.Equal(t, 3*time.Minute, cfg.Workers.RefreshInterval)
}

func TestParseJSON_NumericDuration(t *testing.T) {
	// durations may also be raw nanosecond numbers
	path := writeTestJSON(t, `{"adapter": {"request_timeout": 1000000000}}`)

	cfg, err := parseJSON(path)
	require.NoError(t, err)
	assert.Equal(t, time.Second, cfg.Adapter.RequestTimeout)
}

func TestParseJSON_MissingFile(t *testing.T) {
	_, err := parseJSON("/does/not/exist.json")
	require.Error(t, err)
}

func TestParseJSON_MalformedJSON(t *testing.T) {
	path := writeTestJSON(t, `{"adapter": `)

	_, err := parseJSON(path)
	require.Error(t, err)
}
