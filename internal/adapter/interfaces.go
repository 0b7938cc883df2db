// SPDX-License-Identifier: Apache-2.0

// Package adapter provides the transport layer for communicating with the
// Finance Portfolio Copilot backend.
//
// The primary abstraction is [ServerAdapter], which decouples the service
// layer from the underlying protocol. The package ships an HTTP/REST
// implementation ([NewHTTPServerAdapter]) built on resty.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic
// error handling (e.g. [ErrUnauthorized] for 401, [ErrNetwork] when no
// response was obtained at all). No retries happen at this layer: callers
// that need retry or "stale data" rendering decide for themselves.
package adapter

import (
	"context"
	"encoding/json"
	"io"

	"github.com/fincopilot/go-copilot-client/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter defines transport-agnostic communication with the copilot
// backend. Implementations are responsible for serialisation, bearer-token
// injection, and mapping transport-level errors to the sentinel values
// defined in this package.
//
// Authentication rejections have a side effect: the implementation clears
// the session store and fires the configured redirect hook before returning
// [ErrUnauthorized] to the caller.
type ServerAdapter interface {
	// Register creates a new account. The call is unauthenticated.
	Register(ctx context.Context, req models.RegisterRequest) (models.UserProfile, error)

	// Login exchanges credentials for a bearer token. The backend expects an
	// OAuth2 password form (fields username/password), so the request is
	// form-encoded rather than JSON.
	Login(ctx context.Context, email, password string) (models.LoginResponse, error)

	// Me returns the profile of the authenticated user.
	Me(ctx context.Context) (models.UserProfile, error)

	// SetRiskProfile updates the user's risk tolerance and horizon.
	SetRiskProfile(ctx context.Context, profile models.RiskProfile) error

	// CreatePortfolio creates a portfolio with optional seed holdings.
	CreatePortfolio(ctx context.Context, req models.CreatePortfolioRequest) (models.Portfolio, error)

	// ListPortfolios returns summaries of the user's portfolios.
	ListPortfolios(ctx context.Context) ([]models.PortfolioSummary, error)

	// GetPortfolio returns one portfolio with live prices.
	GetPortfolio(ctx context.Context, portfolioID string) (models.Portfolio, error)

	// AddTransaction records a buy/sell against a portfolio. Validation of
	// the transaction (sufficient quantity etc.) is the backend's job; the
	// client only shapes the request.
	AddTransaction(ctx context.Context, portfolioID string, tx models.Transaction) (models.MessageResponse, error)

	// ImportCSV replaces a portfolio's holdings from a CSV file sent as a
	// multipart upload (columns: symbol, quantity, average_cost).
	ImportCSV(ctx context.Context, portfolioID, filename string, csv io.Reader) (models.MessageResponse, error)

	// ExportCSV downloads a portfolio's holdings as raw CSV bytes.
	ExportCSV(ctx context.Context, portfolioID string) ([]byte, error)

	// DeletePortfolio removes a portfolio.
	DeletePortfolio(ctx context.Context, portfolioID string) error

	// AnalyzeStock returns the AI analysis report for a symbol.
	AnalyzeStock(ctx context.Context, symbol string) (models.StockAnalysis, error)

	// StockPeers compares a symbol against its sector peers.
	StockPeers(ctx context.Context, symbol string) (models.PeerComparison, error)

	// StockNews returns up to limit news items for a symbol.
	StockNews(ctx context.Context, symbol string, limit int) ([]models.NewsItem, error)

	// MarketTrend returns the technical trend for a symbol over a timeframe
	// (1d, 1w, 1m, 3m, 1y).
	MarketTrend(ctx context.Context, symbol, timeframe string) (models.MarketTrend, error)

	// MarketOverview returns the market-wide snapshot of major indices.
	MarketOverview(ctx context.Context) (models.MarketOverview, error)

	// MarketSectors returns the ranked sector performance view.
	MarketSectors(ctx context.Context) (models.SectorPerformance, error)

	// AnalyzePortfolio runs the multi-agent analysis for a portfolio.
	AnalyzePortfolio(ctx context.Context, portfolioID string) (models.PortfolioAnalysis, error)

	// Recommendations returns the raw recommendation document for a
	// portfolio. The agent output shape is not stable, so it stays opaque.
	Recommendations(ctx context.Context, portfolioID string) (json.RawMessage, error)

	// Health probes backend reachability. Unauthenticated.
	Health(ctx context.Context) error
}
