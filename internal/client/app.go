// SPDX-License-Identifier: Apache-2.0

// Package client wires configuration, storage, transport, stream and
// services into a single application runtime with an explicit lifecycle.
// Nothing here is global: tests build as many App values as they like.
package client

import (
	"context"
	"fmt"

	"github.com/fincopilot/go-copilot-client/internal/adapter"
	"github.com/fincopilot/go-copilot-client/internal/config"
	"github.com/fincopilot/go-copilot-client/internal/logger"
	"github.com/fincopilot/go-copilot-client/internal/service"
	"github.com/fincopilot/go-copilot-client/internal/store"
	"github.com/fincopilot/go-copilot-client/internal/stream"
)

// App owns every client-side component and their teardown order.
type App struct {
	Config   config.ClientConfig
	Services *service.Services
	Stream   *stream.Client

	storages *store.ClientStorages
	logger   *logger.Logger

	// onAuthRedirect fires when any request is rejected for bad
	// credentials, after the session store has been cleared.
	onAuthRedirect func(reason string)
}

// Option adjusts App construction.
type Option func(*App)

// WithAuthRedirect installs the handler invoked on authentication
// rejection. The CLI uses it to tell the user to log in again; a UI host
// would navigate to its login surface.
func WithAuthRedirect(fn func(reason string)) Option {
	return func(a *App) { a.onAuthRedirect = fn }
}

// NewApp assembles the full client stack from cfg. Teardown happens in
// Close, in reverse construction order.
func NewApp(cfg config.ClientConfig, log *logger.Logger, opts ...Option) (*App, error) {
	app := &App{Config: cfg, logger: log}
	for _, opt := range opts {
		opt(app)
	}
	if app.onAuthRedirect == nil {
		app.onAuthRedirect = func(reason string) {
			log.Warn().Str("reason", reason).Msg("authentication rejected, log in again")
		}
	}

	storages, err := store.NewClientStorages(cfg.Storage, log.Component("store"))
	if err != nil {
		return nil, fmt.Errorf("create local storage: %w", err)
	}
	app.storages = storages

	serverAdapter, err := adapter.NewHTTPServerAdapter(cfg.Adapter, storages.Sessions, app.redirect, log.Component("adapter"))
	if err != nil {
		_ = storages.Close()
		return nil, fmt.Errorf("create server adapter: %w", err)
	}

	app.Stream = stream.NewClient(cfg.Adapter.WSURL, cfg.Stream, storages.Sessions, log.Component("stream"))
	app.Services = service.NewServices(storages, serverAdapter, app.Stream, log)

	return app, nil
}

// Run restores the persisted session (if any) and starts the background
// refresh job. It does not block; the caller drives the actual work.
func (a *App) Run(ctx context.Context) error {
	session, err := a.Services.Auth.Restore()
	switch {
	case err == nil:
		a.logger.Info().Str("email", session.User.Email).Msg("session restored")
		a.Services.Refresh.Start(ctx, a.Config.Workers.RefreshInterval)
	default:
		a.logger.Debug().Err(err).Msg("no session to restore")
	}
	return nil
}

// Close releases every component: the refresh job first so nothing fetches
// into a closing cache, then the stream channels, then storage.
func (a *App) Close() error {
	if a.Services != nil {
		a.Services.Refresh.Stop()
		a.Services.Watch.Close()
	}
	if a.storages != nil {
		return a.storages.Close()
	}
	return nil
}

// Sessions exposes the session store for callers that render auth state.
func (a *App) Sessions() store.SessionStore {
	return a.storages.Sessions
}

func (a *App) redirect(reason string) {
	if a.onAuthRedirect != nil {
		a.onAuthRedirect(reason)
	}
}
