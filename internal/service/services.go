package service

import (
	"github.com/fincopilot/go-copilot-client/internal/adapter"
	"github.com/fincopilot/go-copilot-client/internal/logger"
	"github.com/fincopilot/go-copilot-client/internal/store"
	"github.com/fincopilot/go-copilot-client/internal/stream"
)

// Services groups every client-side service behind one value.
type Services struct {
	Auth       AuthService
	Portfolios PortfolioService
	Market     MarketService
	Watch      WatchService
	Refresh    RefreshJob
}

func NewServices(localStore *store.ClientStorages, serverAdapter adapter.ServerAdapter, streamClient *stream.Client, log *logger.Logger) *Services {
	portfolioSvc := NewPortfolioService(localStore, serverAdapter, log.Component("service.portfolio"))

	return &Services{
		Auth:       NewAuthService(localStore, serverAdapter, log.Component("service.auth")),
		Portfolios: portfolioSvc,
		Market:     NewMarketService(localStore, serverAdapter, log.Component("service.market")),
		Watch:      NewWatchService(localStore, streamClient, log.Component("service.watch")),
		Refresh:    NewRefreshJob(portfolioSvc, log.Component("service.refresh")),
	}
}
