package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// AssetType classifies a holding.
type AssetType string

const (
	AssetStock      AssetType = "stock"
	AssetMutualFund AssetType = "mutual_fund"
	AssetETF        AssetType = "etf"
	AssetBond       AssetType = "bond"
	AssetCrypto     AssetType = "crypto"
	AssetCash       AssetType = "cash"
)

// TransactionType is the direction of a portfolio transaction.
type TransactionType string

const (
	TransactionBuy      TransactionType = "buy"
	TransactionSell     TransactionType = "sell"
	TransactionDividend TransactionType = "dividend"
)

// Holding is a single position inside a portfolio. Monetary and quantity
// fields are decimals to avoid float drift when the CLI re-aggregates them.
type Holding struct {
	Symbol          string          `json:"symbol"`
	Name            string          `json:"name"`
	AssetType       AssetType       `json:"asset_type"`
	Quantity        decimal.Decimal `json:"quantity"`
	AverageCost     decimal.Decimal `json:"average_cost"`
	CurrentPrice    decimal.Decimal `json:"current_price"`
	CurrentValue    decimal.Decimal `json:"current_value"`
	GainLoss        decimal.Decimal `json:"gain_loss"`
	GainLossPercent decimal.Decimal `json:"gain_loss_percent"`
	Weight          decimal.Decimal `json:"weight"`
}

// Transaction is the payload for POST /api/portfolio/{id}/transaction.
type Transaction struct {
	Symbol   string          `json:"symbol"`
	Type     TransactionType `json:"transaction_type"`
	Quantity decimal.Decimal `json:"quantity"`
	Price    decimal.Decimal `json:"price"`
}

// CreatePortfolioRequest is the payload for POST /api/portfolio/create.
// InitialHoldings entries carry symbol, quantity and average_cost; the server
// resolves live prices and derives the rest.
type CreatePortfolioRequest struct {
	Name            string           `json:"name"`
	Description     string           `json:"description,omitempty"`
	InitialHoldings []InitialHolding `json:"initial_holdings,omitempty"`
}

// InitialHolding seeds one position at portfolio creation time.
type InitialHolding struct {
	Symbol      string          `json:"symbol"`
	Name        string          `json:"name,omitempty"`
	AssetType   AssetType       `json:"asset_type,omitempty"`
	Quantity    decimal.Decimal `json:"quantity"`
	AverageCost decimal.Decimal `json:"average_cost"`
}

// Portfolio is the detailed view returned by GET /api/portfolio/{id}.
type Portfolio struct {
	ID                   string                     `json:"id"`
	Name                 string                     `json:"name"`
	Description          string                     `json:"description,omitempty"`
	Holdings             []Holding                  `json:"holdings"`
	TotalValue           decimal.Decimal            `json:"total_value"`
	TotalInvested        decimal.Decimal            `json:"total_invested"`
	TotalGainLoss        decimal.Decimal            `json:"total_gain_loss"`
	TotalGainLossPercent decimal.Decimal            `json:"total_gain_loss_percent"`
	Allocation           map[string]decimal.Decimal `json:"allocation,omitempty"`
	UpdatedAt            time.Time                  `json:"updated_at,omitzero"`
}

// PortfolioSummary is the list view returned by GET /api/portfolio/list.
type PortfolioSummary struct {
	ID                 string          `json:"id"`
	Name               string          `json:"name"`
	TotalValue         decimal.Decimal `json:"total_value"`
	DailyChange        decimal.Decimal `json:"daily_change"`
	DailyChangePercent decimal.Decimal `json:"daily_change_percent"`
	HoldingsCount      int             `json:"holdings_count"`
}
