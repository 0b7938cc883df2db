// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"context"
	"flag"
	"testing"
	"time"

	"github.com/google/subcommands"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fincopilot/go-copilot-client/internal/client"
	"github.com/fincopilot/go-copilot-client/internal/config"
	"github.com/fincopilot/go-copilot-client/internal/copilotest"
	"github.com/fincopilot/go-copilot-client/internal/logger"
)

func newCLIApp(t *testing.T) (*client.App, *copilotest.Server) {
	t.Helper()

	backend := copilotest.NewServer()
	t.Cleanup(backend.Close)

	cfg := config.ClientConfig{}
	cfg.Adapter.BaseURL = backend.URL()
	cfg.Adapter.WSURL = backend.WSURL()
	cfg.Adapter.RequestTimeout = 5 * time.Second
	cfg.Stream.BackoffBase = 10 * time.Millisecond
	cfg.Stream.BackoffCap = 80 * time.Millisecond
	cfg.Stream.MaxAttempts = 3
	cfg.Stream.PingInterval = time.Second
	cfg.Storage.SessionPath = ":memory:"
	cfg.Storage.CacheDSN = ":memory:"

	app, err := client.NewApp(cfg, logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = app.Close() })

	return app, backend
}

func login(t *testing.T, app *client.App) {
	t.Helper()
	cmd := &loginCmd{app: app, email: "demo@example.com", password: "demo123"}
	require.Equal(t, subcommands.ExitSuccess, cmd.Execute(context.Background(), nil))
}

// ── Flag validation ──

func TestLogin_MissingFlagsIsUsageError(t *testing.T) {
	app, _ := newCLIApp(t)

	cmd := &loginCmd{app: app}
	assert.Equal(t, subcommands.ExitUsageError, cmd.Execute(context.Background(), nil))
}

func TestTx_InvalidDecimalIsUsageError(t *testing.T) {
	app, _ := newCLIApp(t)
	login(t, app)

	cmd := &txCmd{app: app, id: "p-1", symbol: "AAPL", quantity: "lots", price: "187.5"}
	assert.Equal(t, subcommands.ExitUsageError, cmd.Execute(context.Background(), nil))
}

func TestAnalyze_BothTargetsIsUsageError(t *testing.T) {
	app, _ := newCLIApp(t)

	cmd := &analyzeCmd{app: app, symbol: "AAPL", portfolio: "p-1"}
	assert.Equal(t, subcommands.ExitUsageError, cmd.Execute(context.Background(), nil))
}

// ── Against the fake backend ──

func TestLogin_PersistsSession(t *testing.T) {
	app, _ := newCLIApp(t)

	login(t, app)
	assert.NotEmpty(t, app.Sessions().Token())
}

func TestLogin_BadPasswordFails(t *testing.T) {
	app, _ := newCLIApp(t)

	cmd := &loginCmd{app: app, email: "demo@example.com", password: "nope"}
	assert.Equal(t, subcommands.ExitFailure, cmd.Execute(context.Background(), nil))
	assert.Empty(t, app.Sessions().Token())
}

func TestCreateThenPortfolios(t *testing.T) {
	app, _ := newCLIApp(t)
	login(t, app)

	create := &createCmd{app: app, name: "Growth"}
	require.Equal(t, subcommands.ExitSuccess, create.Execute(context.Background(), nil))

	list := &portfoliosCmd{app: app}
	assert.Equal(t, subcommands.ExitSuccess, list.Execute(context.Background(), nil))
}

func TestShow_OfflineMissFails(t *testing.T) {
	app, _ := newCLIApp(t)
	login(t, app)

	cmd := &showCmd{app: app, id: "never-fetched", offline: true}
	assert.Equal(t, subcommands.ExitFailure, cmd.Execute(context.Background(), nil))
}

func TestMarketCommands_Succeed(t *testing.T) {
	app, _ := newCLIApp(t)
	login(t, app)

	assert.Equal(t, subcommands.ExitSuccess, (&overviewCmd{app: app}).Execute(context.Background(), nil))
	assert.Equal(t, subcommands.ExitSuccess, (&sectorsCmd{app: app}).Execute(context.Background(), nil))
	assert.Equal(t, subcommands.ExitSuccess,
		(&peersCmd{app: app, symbol: "AAPL"}).Execute(context.Background(), nil))
}

func TestHealth_Succeeds(t *testing.T) {
	app, _ := newCLIApp(t)

	cmd := &healthCmd{app: app}
	assert.Equal(t, subcommands.ExitSuccess, cmd.Execute(context.Background(), nil))
}

func TestRegister_RegistersEveryCommand(t *testing.T) {
	app, _ := newCLIApp(t)

	commander := subcommands.NewCommander(flag.NewFlagSet("copilot", flag.ContinueOnError), "copilot")
	Register(commander, app)
}
