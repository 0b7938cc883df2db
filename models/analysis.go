package models

import (
	"encoding/json"
	"time"
)

// StockAnalysis is the AI-generated report for a single symbol. The agent
// sections (peer comparison, technical indicators) are free-form and kept
// raw; the client never interprets them.
type StockAnalysis struct {
	Symbol          string          `json:"symbol"`
	AnalysisDate    time.Time       `json:"analysis_date"`
	Recommendation  string          `json:"recommendation"`
	ConfidenceScore float64         `json:"confidence_score"`
	Summary         string          `json:"summary"`
	Strengths       []string        `json:"strengths,omitempty"`
	Weaknesses      []string        `json:"weaknesses,omitempty"`
	Opportunities   []string        `json:"opportunities,omitempty"`
	Threats         []string        `json:"threats,omitempty"`
	PeerComparison  json.RawMessage `json:"peer_comparison,omitempty"`
	Technical       json.RawMessage `json:"technical_indicators,omitempty"`
	SentimentScore  float64         `json:"sentiment_score,omitempty"`
}

// PeerComparison ranks a symbol against its sector peers. The per-metric
// comparison and ranking tables are agent output and stay raw.
type PeerComparison struct {
	Symbol   string          `json:"symbol"`
	Peers    []string        `json:"peers"`
	Metrics  json.RawMessage `json:"metrics_comparison,omitempty"`
	Ranking  json.RawMessage `json:"ranking,omitempty"`
	Analysis string          `json:"analysis,omitempty"`
}

// PortfolioAnalysis is the multi-agent report for a whole portfolio. Metric
// maps are agent output and stay raw.
type PortfolioAnalysis struct {
	PortfolioID        string          `json:"portfolio_id"`
	AnalysisDate       time.Time       `json:"analysis_date"`
	RiskMetrics        json.RawMessage `json:"risk_metrics,omitempty"`
	PerformanceMetrics json.RawMessage `json:"performance_metrics,omitempty"`
	SectorAllocation   json.RawMessage `json:"sector_allocation,omitempty"`
	Recommendations    []string        `json:"recommendations,omitempty"`
	Insights           []string        `json:"insights,omitempty"`
}
