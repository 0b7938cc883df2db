package service

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/fincopilot/go-copilot-client/internal/adapter"
	"github.com/fincopilot/go-copilot-client/internal/logger"
	"github.com/fincopilot/go-copilot-client/internal/store"
	"github.com/fincopilot/go-copilot-client/models"
)

type marketService struct {
	localStore *store.ClientStorages
	adapter    adapter.ServerAdapter
	logger     *logger.Logger
}

func NewMarketService(localStore *store.ClientStorages, serverAdapter adapter.ServerAdapter, logger *logger.Logger) MarketService {
	return &marketService{localStore: localStore, adapter: serverAdapter, logger: logger}
}

func (m *marketService) AnalyzeStock(ctx context.Context, symbol string) (models.StockAnalysis, error) {
	analysis, err := m.adapter.AnalyzeStock(ctx, symbol)
	if err != nil {
		return models.StockAnalysis{}, fmt.Errorf("analyze stock: %w", err)
	}
	return analysis, nil
}

func (m *marketService) StockPeers(ctx context.Context, symbol string) (models.PeerComparison, error) {
	comparison, err := m.adapter.StockPeers(ctx, symbol)
	if err != nil {
		return models.PeerComparison{}, fmt.Errorf("stock peers: %w", err)
	}
	return comparison, nil
}

func (m *marketService) StockNews(ctx context.Context, symbol string, limit int) ([]models.NewsItem, error) {
	news, err := m.adapter.StockNews(ctx, symbol, limit)
	if err != nil {
		return nil, fmt.Errorf("stock news: %w", err)
	}
	return news, nil
}

func (m *marketService) MarketTrend(ctx context.Context, symbol, timeframe string) (models.MarketTrend, error) {
	trend, err := m.adapter.MarketTrend(ctx, symbol, timeframe)
	if err != nil {
		return models.MarketTrend{}, fmt.Errorf("market trend: %w", err)
	}
	return trend, nil
}

func (m *marketService) MarketOverview(ctx context.Context) (models.MarketOverview, error) {
	overview, err := m.adapter.MarketOverview(ctx)
	if err != nil {
		return models.MarketOverview{}, fmt.Errorf("market overview: %w", err)
	}
	return overview, nil
}

func (m *marketService) MarketSectors(ctx context.Context) (models.SectorPerformance, error) {
	sectors, err := m.adapter.MarketSectors(ctx)
	if err != nil {
		return models.SectorPerformance{}, fmt.Errorf("market sectors: %w", err)
	}
	return sectors, nil
}

func (m *marketService) AnalyzePortfolio(ctx context.Context, portfolioID string) (models.PortfolioAnalysis, error) {
	analysis, err := m.adapter.AnalyzePortfolio(ctx, portfolioID)
	if err != nil {
		return models.PortfolioAnalysis{}, fmt.Errorf("analyze portfolio: %w", err)
	}
	return analysis, nil
}

func (m *marketService) Recommendations(ctx context.Context, portfolioID string) (json.RawMessage, error) {
	doc, err := m.adapter.Recommendations(ctx, portfolioID)
	if err != nil {
		return nil, fmt.Errorf("recommendations: %w", err)
	}
	return doc, nil
}

// LastQuote serves from the local mirror only; live prices arrive through
// the event stream, not on demand.
func (m *marketService) LastQuote(ctx context.Context, symbol string) (models.StockPrice, error) {
	price, err := m.localStore.Cache.GetQuote(ctx, symbol)
	if err != nil {
		return models.StockPrice{}, err
	}
	return models.StockPrice{Symbol: symbol, Price: price}, nil
}

func (m *marketService) Health(ctx context.Context) error {
	return m.adapter.Health(ctx)
}
