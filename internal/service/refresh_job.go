package service

import (
	"context"
	"sync"
	"time"

	"github.com/fincopilot/go-copilot-client/internal/logger"
)

const defaultRefreshInterval = 5 * time.Minute

type refreshJob struct {
	portfolios PortfolioService
	logger     *logger.Logger

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewRefreshJob creates a job that re-fetches every portfolio on a ticker,
// keeping the local cache warm between stream events. Idle until Start.
func NewRefreshJob(portfolios PortfolioService, logger *logger.Logger) RefreshJob {
	return &refreshJob{portfolios: portfolios, logger: logger}
}

// Start implements RefreshJob. It stops any previously running job, then
// launches a goroutine that refreshes on every tick until ctx is cancelled
// or Stop is called.
func (j *refreshJob) Start(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = defaultRefreshInterval
	}

	j.Stop()

	j.mu.Lock()
	jobCtx, cancel := context.WithCancel(ctx)
	j.cancel = cancel
	j.wg.Add(1)
	j.mu.Unlock()

	go func() {
		defer j.wg.Done()
		t := time.NewTicker(interval)
		defer t.Stop()

		for {
			select {
			case <-jobCtx.Done():
				return
			case <-t.C:
				j.refresh(jobCtx)
			}
		}
	}()
}

// Stop implements RefreshJob. It cancels the loop and blocks until the
// goroutine exits. No-op when the job is not running.
func (j *refreshJob) Stop() {
	j.mu.Lock()
	cancel := j.cancel
	j.cancel = nil
	j.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	j.wg.Wait()
}

// refresh lists the portfolios and fetches each one; Get mirrors into the
// cache as a side effect. Failures are logged and skipped so one bad
// portfolio doesn't starve the rest.
func (j *refreshJob) refresh(ctx context.Context) {
	summaries, err := j.portfolios.List(ctx)
	if err != nil {
		j.logger.Warn().Err(err).Msg("refresh: list portfolios failed")
		return
	}

	for _, s := range summaries {
		if ctx.Err() != nil {
			return
		}
		if _, err := j.portfolios.Get(ctx, s.ID); err != nil {
			j.logger.Warn().Err(err).Str("portfolio_id", s.ID).Msg("refresh: fetch failed")
		}
	}
}
