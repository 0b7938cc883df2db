// SPDX-License-Identifier: Apache-2.0

// Package service composes the transport, storage and stream layers into the
// operations the CLI calls. Services own no protocol detail: payload shapes
// live in the adapter, persistence in the store.
package service

import (
	"context"
	"encoding/json"
	"io"
	"time"

	"github.com/fincopilot/go-copilot-client/models"
)

// AuthService owns the session lifecycle on the client side.
type AuthService interface {
	// Register creates an account. It does not log the user in.
	Register(ctx context.Context, req models.RegisterRequest) (models.UserProfile, error)

	// Login exchanges credentials for a session, persists it, and enriches
	// it with the user profile. The token is durable: a later process
	// restart restores it via Restore.
	Login(ctx context.Context, email, password string) (models.Session, error)

	// Restore returns the persisted session. Sessions whose token has
	// expired are cleared and reported as ErrNotAuthenticated.
	Restore() (models.Session, error)

	// Logout clears the persisted session. Idempotent.
	Logout() error

	// SetRiskProfile updates the risk questionnaire answers on the server
	// and mirrors them into the stored session profile.
	SetRiskProfile(ctx context.Context, profile models.RiskProfile) error
}

// PortfolioService wraps portfolio operations with cache write-through:
// every successful fetch refreshes the local SQLite mirror so the CLI can
// fall back to it when the backend is unreachable.
type PortfolioService interface {
	Create(ctx context.Context, req models.CreatePortfolioRequest) (models.Portfolio, error)
	List(ctx context.Context) ([]models.PortfolioSummary, error)
	Get(ctx context.Context, portfolioID string) (models.Portfolio, error)
	AddTransaction(ctx context.Context, portfolioID string, tx models.Transaction) (models.MessageResponse, error)
	ImportCSV(ctx context.Context, portfolioID, filename string, csv io.Reader) (models.MessageResponse, error)
	ExportCSV(ctx context.Context, portfolioID string) ([]byte, error)
	Delete(ctx context.Context, portfolioID string) error

	// Cached returns the last locally mirrored snapshot of a portfolio,
	// with [store.ErrCacheMiss] when nothing was mirrored yet.
	Cached(ctx context.Context, portfolioID string) (models.Portfolio, error)

	// CachedList returns the locally mirrored summaries.
	CachedList(ctx context.Context) ([]models.PortfolioSummary, error)
}

// MarketService exposes analysis and market-data operations, plus the local
// quote mirror fed by the event stream.
type MarketService interface {
	AnalyzeStock(ctx context.Context, symbol string) (models.StockAnalysis, error)
	StockPeers(ctx context.Context, symbol string) (models.PeerComparison, error)
	StockNews(ctx context.Context, symbol string, limit int) ([]models.NewsItem, error)
	MarketTrend(ctx context.Context, symbol, timeframe string) (models.MarketTrend, error)
	MarketOverview(ctx context.Context) (models.MarketOverview, error)
	MarketSectors(ctx context.Context) (models.SectorPerformance, error)
	AnalyzePortfolio(ctx context.Context, portfolioID string) (models.PortfolioAnalysis, error)

	// Recommendations returns the raw recommendation document for a
	// portfolio. The shape is backend-defined and rendered as-is.
	Recommendations(ctx context.Context, portfolioID string) (json.RawMessage, error)

	// LastQuote returns the most recent locally mirrored price for symbol.
	LastQuote(ctx context.Context, symbol string) (models.StockPrice, error)

	// Health probes backend reachability.
	Health(ctx context.Context) error
}

// WatchService bridges the event stream into the local cache and keeps the
// per-portfolio subscriptions alive.
type WatchService interface {
	// Watch opens (or re-opens) the live channel for a portfolio topic.
	Watch(portfolioID string)

	// Unwatch releases the portfolio's channel. Listeners stay registered.
	Unwatch(portfolioID string)

	// Events registers fn for a stream event type and returns a removal
	// function. Removing twice is a no-op.
	Events(eventType string, fn func(payload []byte)) (remove func())

	// Close tears down every open channel.
	Close()
}

// RefreshJob periodically re-fetches portfolio state so the local cache
// stays warm even without stream traffic.
type RefreshJob interface {
	// Start launches the background refresh loop. A non-positive interval
	// falls back to a default. Calling Start twice restarts the job.
	Start(ctx context.Context, interval time.Duration)

	// Stop cancels the loop and waits for it to exit. Safe when idle.
	Stop()
}
