package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEnv_AllFields(t *testing.T) {
	t.Setenv("COPILOT_BASE_URL", "http://backend:8000")
	t.Setenv("COPILOT_WS_URL", "ws://backend:8000")
	t.Setenv("COPILOT_REQUEST_TIMEOUT", "20s")
	t.Setenv("COPILOT_SESSION_PATH", "/tmp/session.json")
	t.Setenv("COPILOT_CACHE_DSN", "/tmp/cache.db")
	t.Setenv("COPILOT_STREAM_BACKOFF_BASE", "2s")
	t.Setenv("COPILOT_STREAM_BACKOFF_CAP", "1m")
	t.Setenv("COPILOT_STREAM_MAX_ATTEMPTS", "7")
	t.Setenv("COPILOT_STREAM_PING_INTERVAL", "45s")
	t.Setenv("COPILOT_REFRESH_INTERVAL", "10m")
	t.Setenv("COPILOT_CONFIG", "/etc/copilot.json")

	var cfg StructuredConfig
	require.NoError(t, parseEnv(&cfg))

	assert.Equal(t, "http://backend:8000", cfg.Adapter.BaseURL)
	assert.Equal(t, "ws://backend:8000", cfg.Adapter.WSURL)
	assert.Equal(t, 20*time.Second, cfg.Adapter.RequestTimeout)
	assert.Equal(t, "/tmp/session.json", cfg.Storage.SessionPath)
	assert.Equal(t, "/tmp/cache.db", cfg.Storage.CacheDSN)
	assert.Equal(t, 2*time.Second, cfg.Stream.BackoffBase)
	assert.Equal(t, time.Minute, cfg.Stream.BackoffCap)
	assert.Equal(t, 7, cfg.Stream.MaxAttempts)
	assert.Equal(t, 45*time.Second, cfg.Stream.PingInterval)
	assert.Equal(t, 10*time.Minute, cfg.Workers.RefreshInterval)
	assert.Equal(t, "/etc/copilot.json", cfg.JSONFilePath)
}

func TestParseEnv_EmptyEnvironmentLeavesZeroValues(t *testing.T) {
	var cfg StructuredConfig
	require.NoError(t, parseEnv(&cfg))

	assert.Empty(t, cfg.Adapter.BaseURL)
	assert.Zero(t, cfg.Adapter.RequestTimeout)
	assert.Zero(t, cfg.Stream.MaxAttempts)
}

func TestParseEnv_InvalidDuration(t *testing.T) {
	t.Setenv("COPILOT_REQUEST_TIMEOUT", "not-a-duration")

	var cfg StructuredConfig
	require.Error(t, parseEnv(&cfg))
}
