// SPDX-License-Identifier: Apache-2.0

package client

import (
	"context"
	"encoding/json"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fincopilot/go-copilot-client/internal/adapter"
	"github.com/fincopilot/go-copilot-client/internal/config"
	"github.com/fincopilot/go-copilot-client/internal/copilotest"
	"github.com/fincopilot/go-copilot-client/internal/logger"
	"github.com/fincopilot/go-copilot-client/models"
)

func testConfig(backend *copilotest.Server, dir string) config.ClientConfig {
	cfg := config.ClientConfig{}
	cfg.Adapter.BaseURL = backend.URL()
	cfg.Adapter.WSURL = backend.WSURL()
	cfg.Adapter.RequestTimeout = 5 * time.Second
	cfg.Stream.BackoffBase = 10 * time.Millisecond
	cfg.Stream.BackoffCap = 80 * time.Millisecond
	cfg.Stream.MaxAttempts = 5
	cfg.Stream.PingInterval = time.Second
	cfg.Workers.RefreshInterval = time.Hour

	if dir == "" {
		cfg.Storage.SessionPath = ":memory:"
		cfg.Storage.CacheDSN = ":memory:"
	} else {
		cfg.Storage.SessionPath = filepath.Join(dir, "session.json")
		cfg.Storage.CacheDSN = filepath.Join(dir, "cache.db")
	}
	return cfg
}

func newTestApp(t *testing.T, backend *copilotest.Server, opts ...Option) *App {
	t.Helper()
	app, err := NewApp(testConfig(backend, ""), logger.Nop(), opts...)
	require.NoError(t, err)
	t.Cleanup(func() { _ = app.Close() })
	return app
}

func seedRetirement(backend *copilotest.Server) {
	backend.SeedPortfolio(models.Portfolio{
		ID:         "p-1",
		Name:       "Retirement",
		TotalValue: decimal.RequireFromString("10500.25"),
		Holdings: []models.Holding{{
			Symbol:      "AAPL",
			AssetType:   models.AssetStock,
			Quantity:    decimal.NewFromInt(10),
			AverageCost: decimal.RequireFromString("150.0"),
		}},
	})
}

func TestApp_LoginThenAuthenticatedFetch(t *testing.T) {
	backend := copilotest.NewServer()
	defer backend.Close()
	seedRetirement(backend)

	app := newTestApp(t, backend)
	ctx := context.Background()

	session, err := app.Services.Auth.Login(ctx, "demo@example.com", "demo123")
	require.NoError(t, err)
	assert.NotEmpty(t, session.Token)
	assert.Equal(t, "Demo User", session.User.FullName)
	assert.NotEmpty(t, app.Sessions().Token())

	// the stored token is attached as a bearer credential on the next call
	summaries, err := app.Services.Portfolios.List(ctx)
	require.NoError(t, err)
	require.Len(t, summaries, 1)
	assert.Equal(t, "Retirement", summaries[0].Name)

	// fetching mirrors into the offline cache
	_, err = app.Services.Portfolios.Get(ctx, "p-1")
	require.NoError(t, err)
	cached, err := app.Services.Portfolios.Cached(ctx, "p-1")
	require.NoError(t, err)
	assert.Equal(t, "Retirement", cached.Name)
}

func TestApp_UnauthenticatedFetchRejected(t *testing.T) {
	backend := copilotest.NewServer()
	defer backend.Close()

	app := newTestApp(t, backend)

	_, err := app.Services.Portfolios.List(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, adapter.ErrUnauthorized)
}

func TestApp_AuthRejectionClearsSessionAndRedirectsOnce(t *testing.T) {
	backend := copilotest.NewServer()
	defer backend.Close()

	var redirects atomic.Int32
	app := newTestApp(t, backend, WithAuthRedirect(func(string) { redirects.Add(1) }))
	ctx := context.Background()

	_, err := app.Services.Auth.Login(ctx, "demo@example.com", "demo123")
	require.NoError(t, err)

	backend.RejectAuth = true
	_, err = app.Services.Portfolios.List(ctx)

	require.Error(t, err)
	assert.ErrorIs(t, err, adapter.ErrUnauthorized)
	assert.Equal(t, int32(1), redirects.Load())
	assert.Empty(t, app.Sessions().Token())
}

func TestApp_ExpiredTokenRejectedByServer(t *testing.T) {
	backend := copilotest.NewServer()
	defer backend.Close()

	app := newTestApp(t, backend)
	ctx := context.Background()

	stale := backend.IssueToken("demo@example.com", time.Now().Add(-time.Minute))
	require.NoError(t, app.Sessions().Save(models.Session{Token: stale}))

	_, err := app.Services.Portfolios.List(ctx)
	assert.ErrorIs(t, err, adapter.ErrUnauthorized)
}

func TestApp_WatchMirrorsPriceUpdates(t *testing.T) {
	backend := copilotest.NewServer()
	defer backend.Close()
	seedRetirement(backend)
	backend.Script("p-1", models.Envelope{
		Type:    models.EventPriceUpdate,
		Payload: json.RawMessage(`{"symbol":"AAPL","price":"187.5"}`),
	})

	app := newTestApp(t, backend)
	ctx := context.Background()

	_, err := app.Services.Auth.Login(ctx, "demo@example.com", "demo123")
	require.NoError(t, err)

	app.Services.Watch.Watch("p-1")

	require.Eventually(t, func() bool {
		quote, err := app.Services.Market.LastQuote(ctx, "AAPL")
		return err == nil && quote.Price.Equal(decimal.RequireFromString("187.5"))
	}, 3*time.Second, 10*time.Millisecond)
}

func TestApp_StreamReconnectKeepsListeners(t *testing.T) {
	backend := copilotest.NewServer()
	defer backend.Close()
	seedRetirement(backend)
	backend.Script("p-1", models.Envelope{
		Type:    models.EventNews,
		Payload: json.RawMessage(`{"title":"flash"}`),
	})

	app := newTestApp(t, backend)
	ctx := context.Background()

	_, err := app.Services.Auth.Login(ctx, "demo@example.com", "demo123")
	require.NoError(t, err)

	events := make(chan []byte, 8)
	remove := app.Services.Watch.Events(models.EventNews, func(payload []byte) { events <- payload })
	defer remove()

	app.Services.Watch.Watch("p-1")

	select {
	case <-events:
	case <-time.After(3 * time.Second):
		t.Fatal("scripted event never arrived")
	}

	// server drops the channel; the reconnected channel replays the script
	// to the same listener
	backend.DropStreams("p-1")

	select {
	case <-events:
	case <-time.After(3 * time.Second):
		t.Fatal("listener did not survive the reconnect")
	}
}

func TestApp_SessionSurvivesRestart(t *testing.T) {
	backend := copilotest.NewServer()
	defer backend.Close()
	dir := t.TempDir()

	first, err := NewApp(testConfig(backend, dir), logger.Nop())
	require.NoError(t, err)

	_, err = first.Services.Auth.Login(context.Background(), "demo@example.com", "demo123")
	require.NoError(t, err)
	require.NoError(t, first.Close())

	second, err := NewApp(testConfig(backend, dir), logger.Nop())
	require.NoError(t, err)
	defer func() { _ = second.Close() }()

	require.NoError(t, second.Run(context.Background()))
	assert.NotEmpty(t, second.Sessions().Token())

	// restored credential works against the backend straight away
	_, err = second.Services.Auth.Restore()
	require.NoError(t, err)
}
