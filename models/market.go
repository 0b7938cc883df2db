package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// StockPrice is a live quote as carried by price_update stream events and
// market endpoints.
type StockPrice struct {
	Symbol        string          `json:"symbol"`
	Price         decimal.Decimal `json:"price"`
	Change        decimal.Decimal `json:"change"`
	ChangePercent decimal.Decimal `json:"change_percent"`
	Volume        int64           `json:"volume"`
	Timestamp     time.Time       `json:"timestamp"`
}

// NewsItem is one article from the news intelligence endpoints.
type NewsItem struct {
	Title          string    `json:"title"`
	Source         string    `json:"source"`
	URL            string    `json:"url"`
	PublishedAt    time.Time `json:"published_at"`
	Summary        string    `json:"summary,omitempty"`
	Sentiment      string    `json:"sentiment,omitempty"`
	RelevanceScore float64   `json:"relevance_score,omitempty"`
	RelatedSymbols []string  `json:"related_symbols,omitempty"`
}

// IndexQuote is one major-index entry of the market overview.
type IndexQuote struct {
	Symbol        string          `json:"symbol"`
	Price         decimal.Decimal `json:"price"`
	Change        decimal.Decimal `json:"change"`
	ChangePercent decimal.Decimal `json:"change_percent"`
}

// MarketOverview is the dashboard's market-wide snapshot: major indices
// keyed by display name plus agent commentary.
type MarketOverview struct {
	Indices    map[string]IndexQuote `json:"indices"`
	Commentary string                `json:"commentary,omitempty"`
	Timestamp  time.Time             `json:"timestamp,omitzero"`
}

// SectorQuote is one sector-ETF entry of the sector performance view.
type SectorQuote struct {
	Symbol        string          `json:"symbol"`
	ChangePercent decimal.Decimal `json:"change_percent"`
}

// SectorPerformance ranks sector ETFs by daily change, keyed by sector
// name.
type SectorPerformance struct {
	Sectors   map[string]SectorQuote `json:"sectors"`
	Leaders   []string               `json:"leaders,omitempty"`
	Laggards  []string               `json:"laggards,omitempty"`
	Analysis  string                 `json:"analysis,omitempty"`
	Timestamp time.Time              `json:"timestamp,omitzero"`
}

// MarketTrend is the technical-analysis view for a symbol over a timeframe
// (1d, 1w, 1m, 3m, 1y).
type MarketTrend struct {
	Symbol           string            `json:"symbol"`
	Timeframe        string            `json:"timeframe"`
	Trend            string            `json:"trend"`
	SupportLevels    []decimal.Decimal `json:"support_levels,omitempty"`
	ResistanceLevels []decimal.Decimal `json:"resistance_levels,omitempty"`
	RSI              float64           `json:"rsi,omitempty"`
	VolumeTrend      string            `json:"volume_trend,omitempty"`
	Analysis         string            `json:"analysis,omitempty"`
}
