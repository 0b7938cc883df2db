// SPDX-License-Identifier: Apache-2.0

package service

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/fincopilot/go-copilot-client/internal/logger"
	"github.com/fincopilot/go-copilot-client/internal/store"
	"github.com/fincopilot/go-copilot-client/internal/stream"
	"github.com/fincopilot/go-copilot-client/models"
)

type watchService struct {
	localStore *store.ClientStorages
	stream     *stream.Client
	logger     *logger.Logger
}

// NewWatchService wires the event stream into the local cache: price_update
// events refresh the quote mirror and portfolio_update events refresh the
// portfolio mirror. The mirror listeners are registered once here and live
// for the process lifetime, surviving any channel reconnect.
func NewWatchService(localStore *store.ClientStorages, streamClient *stream.Client, logger *logger.Logger) WatchService {
	w := &watchService{localStore: localStore, stream: streamClient, logger: logger}

	streamClient.Subscribe(models.EventPriceUpdate, w.onPriceUpdate)
	streamClient.Subscribe(models.EventPortfolioUpdate, w.onPortfolioUpdate)

	return w
}

func (w *watchService) Watch(portfolioID string) {
	w.stream.Connect(portfolioID)
}

func (w *watchService) Unwatch(portfolioID string) {
	w.stream.Disconnect(portfolioID)
}

func (w *watchService) Events(eventType string, fn func(payload []byte)) func() {
	sub := w.stream.Subscribe(eventType, func(payload json.RawMessage) {
		fn(payload)
	})

	var once sync.Once
	return func() {
		once.Do(func() { w.stream.Unsubscribe(sub) })
	}
}

func (w *watchService) Close() {
	w.stream.Close()
}

func (w *watchService) onPriceUpdate(payload json.RawMessage) {
	var quote models.StockPrice
	if err := json.Unmarshal(payload, &quote); err != nil || quote.Symbol == "" {
		w.logger.Warn().Err(err).Msg("unusable price_update payload")
		return
	}
	if err := w.localStore.Cache.UpsertQuote(context.Background(), quote); err != nil {
		w.logger.Warn().Err(err).Str("symbol", quote.Symbol).Msg("quote mirror write failed")
	}
}

func (w *watchService) onPortfolioUpdate(payload json.RawMessage) {
	var update models.PortfolioUpdatePayload
	if err := json.Unmarshal(payload, &update); err != nil || update.Portfolio.ID == "" {
		w.logger.Warn().Err(err).Msg("unusable portfolio_update payload")
		return
	}
	if err := w.localStore.Cache.UpsertPortfolio(context.Background(), update.Portfolio); err != nil {
		w.logger.Warn().Err(err).Str("portfolio_id", update.Portfolio.ID).Msg("portfolio mirror write failed")
	}
}
