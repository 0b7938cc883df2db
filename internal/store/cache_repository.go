package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/fincopilot/go-copilot-client/internal/logger"
	"github.com/fincopilot/go-copilot-client/models"
)

type cacheRepository struct {
	*DB
	logger *logger.Logger
}

// NewCacheRepository returns the SQLite-backed [CacheRepository]. Portfolio
// snapshots are stored as JSON blobs keyed by id; quotes as decimal strings
// keyed by symbol.
func NewCacheRepository(db *DB, logger *logger.Logger) CacheRepository {
	return &cacheRepository{DB: db, logger: logger}
}

func (c *cacheRepository) UpsertPortfolio(ctx context.Context, portfolio models.Portfolio) error {
	snapshot, err := json.Marshal(portfolio)
	if err != nil {
		return fmt.Errorf("encode portfolio snapshot: %w", err)
	}

	_, err = c.DB.ExecContext(ctx, upsertPortfolioSnapshot,
		portfolio.ID,
		portfolio.Name,
		string(snapshot),
		time.Now().UTC(),
	)
	if err != nil {
		c.logger.Err(err).
			Str("portfolio_id", portfolio.ID).
			Msg("failed to upsert portfolio snapshot")
		return fmt.Errorf("failed to cache portfolio (id=%s): %w", portfolio.ID, err)
	}

	return nil
}

func (c *cacheRepository) GetPortfolio(ctx context.Context, portfolioID string) (models.Portfolio, error) {
	var snapshot string
	err := c.DB.QueryRowContext(ctx, getPortfolioSnapshot, portfolioID).Scan(&snapshot)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Portfolio{}, ErrCacheMiss
	}
	if err != nil {
		c.logger.Err(err).
			Str("portfolio_id", portfolioID).
			Msg("failed to query portfolio snapshot")
		return models.Portfolio{}, fmt.Errorf("failed to query cached portfolio: %w", err)
	}

	var portfolio models.Portfolio
	if err = json.Unmarshal([]byte(snapshot), &portfolio); err != nil {
		return models.Portfolio{}, fmt.Errorf("decode cached portfolio: %w", err)
	}
	return portfolio, nil
}

func (c *cacheRepository) ListPortfolios(ctx context.Context) ([]models.PortfolioSummary, error) {
	rows, err := c.DB.QueryContext(ctx, listPortfolioSnapshots)
	if err != nil {
		c.logger.Err(err).Msg("failed to query portfolio snapshots")
		return nil, fmt.Errorf("failed to list cached portfolios: %w", err)
	}
	defer rows.Close()

	var summaries []models.PortfolioSummary
	for rows.Next() {
		var snapshot string
		if err = rows.Scan(&snapshot); err != nil {
			return nil, fmt.Errorf("scan cached portfolio: %w", err)
		}

		var portfolio models.Portfolio
		if err = json.Unmarshal([]byte(snapshot), &portfolio); err != nil {
			continue
		}
		summaries = append(summaries, models.PortfolioSummary{
			ID:            portfolio.ID,
			Name:          portfolio.Name,
			TotalValue:    portfolio.TotalValue,
			HoldingsCount: len(portfolio.Holdings),
		})
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate cached portfolios: %w", err)
	}

	return summaries, nil
}

func (c *cacheRepository) UpsertQuote(ctx context.Context, quote models.StockPrice) error {
	at := quote.Timestamp
	if at.IsZero() {
		at = time.Now().UTC()
	}

	_, err := c.DB.ExecContext(ctx, upsertQuote, quote.Symbol, quote.Price.String(), at)
	if err != nil {
		c.logger.Err(err).
			Str("symbol", quote.Symbol).
			Msg("failed to upsert quote")
		return fmt.Errorf("failed to cache quote (symbol=%s): %w", quote.Symbol, err)
	}

	return nil
}

func (c *cacheRepository) GetQuote(ctx context.Context, symbol string) (decimal.Decimal, error) {
	var raw string
	err := c.DB.QueryRowContext(ctx, getQuote, symbol).Scan(&raw)
	if errors.Is(err, sql.ErrNoRows) {
		return decimal.Zero, ErrCacheMiss
	}
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to query cached quote: %w", err)
	}

	price, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero, fmt.Errorf("decode cached quote: %w", err)
	}
	return price, nil
}
