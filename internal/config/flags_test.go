package config

import (
	"flag"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func newTestFlagSet() *flag.FlagSet {
	return flag.NewFlagSet("copilot-test", flag.ContinueOnError)
}

func TestParseFlags_AllFlags(t *testing.T) {
	cfg := parseFlags(newTestFlagSet(), []string{
		"-a", "http://backend:8000",
		"-ws", "ws://backend:8000",
		"-t", "25s",
		"-session", "/tmp/s.json",
		"-cache", "/tmp/c.db",
		"-refresh", "2m",
		"-c", "/tmp/cfg.json",
	})

	assert.Equal(t, "http://backend:8000", cfg.Adapter.BaseURL)
	assert.Equal(t, "ws://backend:8000", cfg.Adapter.WSURL)
	assert.Equal(t, 25*time.Second, cfg.Adapter.RequestTimeout)
	assert.Equal(t, "/tmp/s.json", cfg.Storage.SessionPath)
	assert.Equal(t, "/tmp/c.db", cfg.Storage.CacheDSN)
	assert.Equal(t, 2*time.Minute, cfg.Workers.RefreshInterval)
	assert.Equal(t, "/tmp/cfg.json", cfg.JSONFilePath)
}

func TestParseFlags_ConfigAlias(t *testing.T) {
	cfg := parseFlags(newTestFlagSet(), []string{"-config", "/etc/copilot.json"})

	assert.Equal(t, "/etc/copilot.json", cfg.JSONFilePath)
}

func TestParseFlags_StopsAtSubcommand(t *testing.T) {
	cfg := parseFlags(newTestFlagSet(), []string{
		"-a", "http://backend:8000",
		"login", "-email", "demo@example.com",
	})

	assert.Equal(t, "http://backend:8000", cfg.Adapter.BaseURL)
	// flags after the subcommand name belong to the subcommand
	assert.Empty(t, cfg.Storage.SessionPath)
}

func TestParseFlags_NoFlags(t *testing.T) {
	cfg := parseFlags(newTestFlagSet(), nil)

	assert.Empty(t, cfg.Adapter.BaseURL)
	assert.Zero(t, cfg.Adapter.RequestTimeout)
}
