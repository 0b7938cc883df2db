// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"github.com/fincopilot/go-copilot-client/internal/client"
)

type analyzeCmd struct {
	app       *client.App
	symbol    string
	portfolio string
}

func (*analyzeCmd) Name() string     { return "analyze" }
func (*analyzeCmd) Synopsis() string { return "run stock or portfolio analysis" }
func (*analyzeCmd) Usage() string {
	return `copilot analyze -symbol <symbol>
copilot analyze -portfolio <portfolio-id>

  Requests an analysis from the backend, for a single stock or for a whole
  portfolio. Exactly one of the two flags must be given.
`
}

func (p *analyzeCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.symbol, "symbol", "", "Ticker symbol to analyze.")
	f.StringVar(&p.portfolio, "portfolio", "", "Portfolio identifier to analyze.")
}

func (p *analyzeCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	switch {
	case p.symbol != "" && p.portfolio != "":
		return usageError("-symbol and -portfolio cannot be used together")
	case p.symbol != "":
		analysis, err := p.app.Services.Market.AnalyzeStock(ctx, p.symbol)
		if err != nil {
			return fail(err)
		}
		return printJSON(os.Stdout, analysis)
	case p.portfolio != "":
		analysis, err := p.app.Services.Market.AnalyzePortfolio(ctx, p.portfolio)
		if err != nil {
			return fail(err)
		}
		return printJSON(os.Stdout, analysis)
	default:
		return usageError("one of -symbol or -portfolio is required")
	}
}

type peersCmd struct {
	app    *client.App
	symbol string
}

func (*peersCmd) Name() string     { return "peers" }
func (*peersCmd) Synopsis() string { return "compare a stock against its sector peers" }
func (*peersCmd) Usage() string {
	return `copilot peers -symbol <symbol>
`
}

func (p *peersCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.symbol, "symbol", "", "Ticker symbol.")
}

func (p *peersCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if p.symbol == "" {
		return usageError("-symbol is required")
	}

	comparison, err := p.app.Services.Market.StockPeers(ctx, p.symbol)
	if err != nil {
		return fail(err)
	}
	return printJSON(os.Stdout, comparison)
}

type overviewCmd struct{ app *client.App }

func (*overviewCmd) Name() string     { return "overview" }
func (*overviewCmd) Synopsis() string { return "show the market-wide index snapshot" }
func (*overviewCmd) Usage() string {
	return `copilot overview

  Prints major index quotes and the market commentary.
`
}
func (*overviewCmd) SetFlags(_ *flag.FlagSet) {}

func (p *overviewCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	overview, err := p.app.Services.Market.MarketOverview(ctx)
	if err != nil {
		return fail(err)
	}
	return printJSON(os.Stdout, overview)
}

type sectorsCmd struct{ app *client.App }

func (*sectorsCmd) Name() string     { return "sectors" }
func (*sectorsCmd) Synopsis() string { return "show ranked sector performance" }
func (*sectorsCmd) Usage() string {
	return `copilot sectors
`
}
func (*sectorsCmd) SetFlags(_ *flag.FlagSet) {}

func (p *sectorsCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	sectors, err := p.app.Services.Market.MarketSectors(ctx)
	if err != nil {
		return fail(err)
	}
	return printJSON(os.Stdout, sectors)
}

type newsCmd struct {
	app    *client.App
	symbol string
	limit  int
}

func (*newsCmd) Name() string     { return "news" }
func (*newsCmd) Synopsis() string { return "show recent news for a symbol" }
func (*newsCmd) Usage() string {
	return `copilot news -symbol <symbol> [-limit <n>]
`
}

func (p *newsCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.symbol, "symbol", "", "Ticker symbol.")
	f.IntVar(&p.limit, "limit", 5, "Maximum number of items.")
}

func (p *newsCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if p.symbol == "" {
		return usageError("-symbol is required")
	}

	items, err := p.app.Services.Market.StockNews(ctx, p.symbol, p.limit)
	if err != nil {
		return fail(err)
	}
	return printJSON(os.Stdout, items)
}

type trendCmd struct {
	app       *client.App
	symbol    string
	timeframe string
}

func (*trendCmd) Name() string     { return "trend" }
func (*trendCmd) Synopsis() string { return "show the market trend for a symbol" }
func (*trendCmd) Usage() string {
	return `copilot trend -symbol <symbol> [-timeframe <1d|1w|1m|3m|1y>]
`
}

func (p *trendCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.symbol, "symbol", "", "Ticker symbol.")
	f.StringVar(&p.timeframe, "timeframe", "1m", "Trend window.")
}

func (p *trendCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if p.symbol == "" {
		return usageError("-symbol is required")
	}

	trend, err := p.app.Services.Market.MarketTrend(ctx, p.symbol, p.timeframe)
	if err != nil {
		return fail(err)
	}
	return printJSON(os.Stdout, trend)
}

type recommendationsCmd struct {
	app *client.App
	id  string
}

func (*recommendationsCmd) Name() string     { return "recommendations" }
func (*recommendationsCmd) Synopsis() string { return "show portfolio recommendations" }
func (*recommendationsCmd) Usage() string {
	return `copilot recommendations -id <portfolio-id>
`
}

func (p *recommendationsCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.id, "id", "", "Portfolio identifier.")
}

func (p *recommendationsCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if p.id == "" {
		return usageError("-id is required")
	}

	doc, err := p.app.Services.Market.Recommendations(ctx, p.id)
	if err != nil {
		return fail(err)
	}

	// re-indent the backend-defined document instead of decoding it
	var pretty json.RawMessage = doc
	return printJSON(os.Stdout, pretty)
}

type healthCmd struct{ app *client.App }

func (*healthCmd) Name() string             { return "health" }
func (*healthCmd) Synopsis() string         { return "check backend reachability" }
func (*healthCmd) Usage() string            { return "copilot health\n" }
func (*healthCmd) SetFlags(_ *flag.FlagSet) {}

func (p *healthCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if err := p.app.Services.Market.Health(ctx); err != nil {
		return fail(err)
	}
	fmt.Println("Backend is healthy.")
	return subcommands.ExitSuccess
}
