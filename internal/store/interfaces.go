// SPDX-License-Identifier: Apache-2.0

// Package store provides the client-local persistence layer: the session
// store that keeps the current credential across restarts, and the SQLite
// cache that mirrors portfolio snapshots and quotes received over the event
// stream so the CLI can render data while offline.
package store

import (
	"context"

	"github.com/fincopilot/go-copilot-client/models"
	"github.com/shopspring/decimal"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// SessionStore is the single source of truth for "am I authenticated" and
// "what is my token". Implementations read their backing storage once at
// construction; there is no cross-process synchronisation.
type SessionStore interface {
	// Save persists the session, replacing any previous one.
	Save(session models.Session) error

	// Load returns the current session, or [ErrSessionNotFound] when no
	// session is stored.
	Load() (models.Session, error)

	// Token returns the current bearer token, or an empty string when
	// unauthenticated. Never blocks.
	Token() string

	// Clear removes the session. Idempotent: clearing an empty store is a
	// no-op.
	Clear() error
}

// CacheRepository is the local mirror of server-side portfolio state. It is
// written by the watch service on inbound stream events and by the portfolio
// service after successful fetches, and read by the CLI when the backend is
// unreachable.
type CacheRepository interface {
	UpsertPortfolio(ctx context.Context, portfolio models.Portfolio) error
	GetPortfolio(ctx context.Context, portfolioID string) (models.Portfolio, error)
	ListPortfolios(ctx context.Context) ([]models.PortfolioSummary, error)
	UpsertQuote(ctx context.Context, quote models.StockPrice) error
	GetQuote(ctx context.Context, symbol string) (symbolPrice decimal.Decimal, err error)
}
