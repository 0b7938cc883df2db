// SPDX-License-Identifier: Apache-2.0

package service

import (
	"context"
	"fmt"
	"io"

	"github.com/fincopilot/go-copilot-client/internal/adapter"
	"github.com/fincopilot/go-copilot-client/internal/logger"
	"github.com/fincopilot/go-copilot-client/internal/store"
	"github.com/fincopilot/go-copilot-client/models"
)

type portfolioService struct {
	localStore *store.ClientStorages
	adapter    adapter.ServerAdapter
	logger     *logger.Logger
}

func NewPortfolioService(localStore *store.ClientStorages, serverAdapter adapter.ServerAdapter, logger *logger.Logger) PortfolioService {
	return &portfolioService{localStore: localStore, adapter: serverAdapter, logger: logger}
}

func (p *portfolioService) Create(ctx context.Context, req models.CreatePortfolioRequest) (models.Portfolio, error) {
	portfolio, err := p.adapter.CreatePortfolio(ctx, req)
	if err != nil {
		return models.Portfolio{}, fmt.Errorf("create portfolio: %w", err)
	}
	p.mirror(ctx, portfolio)
	return portfolio, nil
}

func (p *portfolioService) List(ctx context.Context) ([]models.PortfolioSummary, error) {
	summaries, err := p.adapter.ListPortfolios(ctx)
	if err != nil {
		return nil, fmt.Errorf("list portfolios: %w", err)
	}
	return summaries, nil
}

func (p *portfolioService) Get(ctx context.Context, portfolioID string) (models.Portfolio, error) {
	portfolio, err := p.adapter.GetPortfolio(ctx, portfolioID)
	if err != nil {
		return models.Portfolio{}, fmt.Errorf("get portfolio: %w", err)
	}
	p.mirror(ctx, portfolio)
	return portfolio, nil
}

// AddTransaction records the transaction, then re-fetches the portfolio so
// the local mirror reflects the post-transaction holdings. The re-fetch is
// best effort: a failure leaves a stale mirror, not a failed transaction.
func (p *portfolioService) AddTransaction(ctx context.Context, portfolioID string, tx models.Transaction) (models.MessageResponse, error) {
	msg, err := p.adapter.AddTransaction(ctx, portfolioID, tx)
	if err != nil {
		return models.MessageResponse{}, fmt.Errorf("add transaction: %w", err)
	}

	if refreshed, err := p.adapter.GetPortfolio(ctx, portfolioID); err == nil {
		p.mirror(ctx, refreshed)
	}
	return msg, nil
}

func (p *portfolioService) ImportCSV(ctx context.Context, portfolioID, filename string, csv io.Reader) (models.MessageResponse, error) {
	msg, err := p.adapter.ImportCSV(ctx, portfolioID, filename, csv)
	if err != nil {
		return models.MessageResponse{}, fmt.Errorf("import csv: %w", err)
	}

	if refreshed, err := p.adapter.GetPortfolio(ctx, portfolioID); err == nil {
		p.mirror(ctx, refreshed)
	}
	return msg, nil
}

func (p *portfolioService) ExportCSV(ctx context.Context, portfolioID string) ([]byte, error) {
	data, err := p.adapter.ExportCSV(ctx, portfolioID)
	if err != nil {
		return nil, fmt.Errorf("export csv: %w", err)
	}
	return data, nil
}

func (p *portfolioService) Delete(ctx context.Context, portfolioID string) error {
	if err := p.adapter.DeletePortfolio(ctx, portfolioID); err != nil {
		return fmt.Errorf("delete portfolio: %w", err)
	}
	return nil
}

func (p *portfolioService) Cached(ctx context.Context, portfolioID string) (models.Portfolio, error) {
	return p.localStore.Cache.GetPortfolio(ctx, portfolioID)
}

func (p *portfolioService) CachedList(ctx context.Context) ([]models.PortfolioSummary, error) {
	return p.localStore.Cache.ListPortfolios(ctx)
}

// mirror writes a snapshot into the local cache. Cache failures are logged
// and swallowed: a broken mirror must never fail a live operation.
func (p *portfolioService) mirror(ctx context.Context, portfolio models.Portfolio) {
	if err := p.localStore.Cache.UpsertPortfolio(ctx, portfolio); err != nil {
		p.logger.Warn().Err(err).Str("portfolio_id", portfolio.ID).Msg("cache mirror write failed")
	}
}
