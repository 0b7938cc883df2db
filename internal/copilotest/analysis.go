package copilotest

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"github.com/fincopilot/go-copilot-client/models"
)

// Canned analysis responses. The real backend produces these with a
// multi-agent pipeline; tests only need stable, plausible shapes.

func (s *Server) handleAnalyzeStock(w http.ResponseWriter, r *http.Request) {
	symbol := chi.URLParam(r, "symbol")
	writeJSON(w, http.StatusOK, models.StockAnalysis{
		Symbol:          symbol,
		AnalysisDate:    time.Now().UTC(),
		Recommendation:  "hold",
		ConfidenceScore: 0.72,
		Summary:         "Stable fundamentals with fairly valued price levels.",
		Strengths:       []string{"consistent revenue growth"},
		Weaknesses:      []string{"margin pressure"},
		Technical:       json.RawMessage(`{"sma_50":"above","macd":"neutral"}`),
	})
}

func (s *Server) handleStockPeers(w http.ResponseWriter, r *http.Request) {
	symbol := chi.URLParam(r, "symbol")
	writeJSON(w, http.StatusOK, models.PeerComparison{
		Symbol:   symbol,
		Peers:    []string{"MSFT", "GOOGL", "AMZN"},
		Metrics:  json.RawMessage(`{"pe_ratio":{"` + symbol + `":28.5,"MSFT":32.1}}`),
		Ranking:  json.RawMessage(`{"pe_ratio":2}`),
		Analysis: "Trades at a discount to the peer median.",
	})
}

func (s *Server) handleMarketOverview(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, models.MarketOverview{
		Indices: map[string]models.IndexQuote{
			"S&P 500": {
				Symbol:        "SPY",
				Price:         mustDecimal("512.3"),
				Change:        mustDecimal("2.1"),
				ChangePercent: mustDecimal("0.41"),
			},
			"Volatility Index": {
				Symbol:        "VIX",
				Price:         mustDecimal("14.2"),
				Change:        mustDecimal("-0.3"),
				ChangePercent: mustDecimal("-2.07"),
			},
		},
		Commentary: "Risk-on tone with volatility subdued.",
		Timestamp:  time.Now().UTC(),
	})
}

func (s *Server) handleMarketSectors(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, models.SectorPerformance{
		Sectors: map[string]models.SectorQuote{
			"Technology": {Symbol: "XLK", ChangePercent: mustDecimal("1.2")},
			"Financials": {Symbol: "XLF", ChangePercent: mustDecimal("0.4")},
			"Energy":     {Symbol: "XLE", ChangePercent: mustDecimal("-0.8")},
		},
		Leaders:   []string{"Technology", "Financials"},
		Laggards:  []string{"Energy"},
		Analysis:  "Growth sectors leading, energy lagging on crude weakness.",
		Timestamp: time.Now().UTC(),
	})
}

func (s *Server) handleStockNews(w http.ResponseWriter, r *http.Request) {
	symbol := chi.URLParam(r, "symbol")
	limit := 5
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			writeDetail(w, http.StatusBadRequest, "limit must be a positive integer")
			return
		}
		limit = n
	}

	news := make([]models.NewsItem, 0, limit)
	for i := 0; i < limit; i++ {
		news = append(news, models.NewsItem{
			Title:          symbol + " coverage item " + strconv.Itoa(i+1),
			Source:         "copilotest wire",
			PublishedAt:    time.Now().UTC().Add(-time.Duration(i) * time.Hour),
			Sentiment:      "neutral",
			RelatedSymbols: []string{symbol},
		})
	}
	writeJSON(w, http.StatusOK, news)
}

var validTimeframes = map[string]bool{"1d": true, "1w": true, "1m": true, "3m": true, "1y": true}

func (s *Server) handleMarketTrend(w http.ResponseWriter, r *http.Request) {
	symbol := chi.URLParam(r, "symbol")
	timeframe := r.URL.Query().Get("timeframe")
	if timeframe == "" {
		timeframe = "1m"
	}
	if !validTimeframes[timeframe] {
		writeDetail(w, http.StatusBadRequest, "invalid timeframe")
		return
	}

	writeJSON(w, http.StatusOK, models.MarketTrend{
		Symbol:        symbol,
		Timeframe:     timeframe,
		Trend:         "bullish",
		SupportLevels: []decimal.Decimal{mustDecimal("170.0"), mustDecimal("162.5")},
		RSI:           58.3,
		VolumeTrend:   "rising",
	})
}

func (s *Server) handleAnalyzePortfolio(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "portfolioID")
	if _, ok := s.portfolio(id); !ok {
		writeDetail(w, http.StatusNotFound, "Portfolio not found")
		return
	}

	writeJSON(w, http.StatusOK, models.PortfolioAnalysis{
		PortfolioID:  id,
		AnalysisDate: time.Now().UTC(),
		RiskMetrics:  json.RawMessage(`{"sharpe_ratio":1.1,"volatility":"moderate"}`),
		Insights:     []string{"concentration in large-cap tech"},
	})
}

func (s *Server) handleRecommendations(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "portfolioID")
	if _, ok := s.portfolio(id); !ok {
		writeDetail(w, http.StatusNotFound, "Portfolio not found")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"portfolio_id": id,
		"recommendations": []string{
			"diversify into fixed income",
			"rebalance quarterly",
		},
	})
}
