// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/subcommands"
	"github.com/shopspring/decimal"

	"github.com/fincopilot/go-copilot-client/internal/client"
	"github.com/fincopilot/go-copilot-client/internal/store"
	"github.com/fincopilot/go-copilot-client/models"
)

type createCmd struct {
	app         *client.App
	name        string
	description string
}

func (*createCmd) Name() string     { return "create" }
func (*createCmd) Synopsis() string { return "create a portfolio" }
func (*createCmd) Usage() string {
	return `copilot create -name <name> [-desc <description>]

  Creates an empty portfolio. Positions are added with "copilot tx" or
  "copilot import".
`
}

func (p *createCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.name, "name", "", "Portfolio name.")
	f.StringVar(&p.description, "desc", "", "Optional description.")
}

func (p *createCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if p.name == "" {
		return usageError("-name is required")
	}

	portfolio, err := p.app.Services.Portfolios.Create(ctx, models.CreatePortfolioRequest{
		Name:        p.name,
		Description: p.description,
	})
	if err != nil {
		return fail(err)
	}

	fmt.Printf("Created portfolio %s (%s).\n", portfolio.Name, portfolio.ID)
	return subcommands.ExitSuccess
}

type portfoliosCmd struct {
	app     *client.App
	offline bool
}

func (*portfoliosCmd) Name() string     { return "portfolios" }
func (*portfoliosCmd) Synopsis() string { return "list portfolios" }
func (*portfoliosCmd) Usage() string {
	return `copilot portfolios [-offline]

  Lists portfolio summaries. With -offline the list is served from the local
  cache without touching the backend.
`
}

func (p *portfoliosCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&p.offline, "offline", false, "Serve from the local cache only.")
}

func (p *portfoliosCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	list := p.app.Services.Portfolios.List
	if p.offline {
		list = p.app.Services.Portfolios.CachedList
	}

	summaries, err := list(ctx)
	if err != nil {
		return fail(err)
	}
	if len(summaries) == 0 {
		fmt.Println("No portfolios.")
		return subcommands.ExitSuccess
	}
	return printJSON(os.Stdout, summaries)
}

type showCmd struct {
	app     *client.App
	id      string
	offline bool
}

func (*showCmd) Name() string     { return "show" }
func (*showCmd) Synopsis() string { return "show one portfolio with holdings" }
func (*showCmd) Usage() string {
	return `copilot show -id <portfolio-id> [-offline]

  Prints the full portfolio. With -offline the last locally cached snapshot
  is shown; without it a live fetch refreshes the cache.
`
}

func (p *showCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.id, "id", "", "Portfolio identifier.")
	f.BoolVar(&p.offline, "offline", false, "Serve from the local cache only.")
}

func (p *showCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if p.id == "" {
		return usageError("-id is required")
	}

	get := p.app.Services.Portfolios.Get
	if p.offline {
		get = p.app.Services.Portfolios.Cached
	}

	portfolio, err := get(ctx, p.id)
	if errors.Is(err, store.ErrCacheMiss) {
		return fail(fmt.Errorf("portfolio %s has never been fetched; run without -offline first", p.id))
	}
	if err != nil {
		return fail(err)
	}
	return printJSON(os.Stdout, portfolio)
}

type txCmd struct {
	app      *client.App
	id       string
	txType   string
	symbol   string
	quantity string
	price    string
}

func (*txCmd) Name() string     { return "tx" }
func (*txCmd) Synopsis() string { return "record a buy or sell transaction" }
func (*txCmd) Usage() string {
	return `copilot tx -id <portfolio-id> -type <buy|sell> -symbol <symbol> -qty <quantity> -price <price>

  Records one transaction. The updated portfolio is re-fetched into the local
  cache on success.
`
}

func (p *txCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.id, "id", "", "Portfolio identifier.")
	f.StringVar(&p.txType, "type", "buy", "Transaction direction: buy or sell.")
	f.StringVar(&p.symbol, "symbol", "", "Ticker symbol.")
	f.StringVar(&p.quantity, "qty", "", "Quantity, decimal.")
	f.StringVar(&p.price, "price", "", "Price per unit, decimal.")
}

func (p *txCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if p.id == "" || p.symbol == "" || p.quantity == "" || p.price == "" {
		return usageError("-id, -symbol, -qty and -price are required")
	}

	qty, err := decimal.NewFromString(p.quantity)
	if err != nil {
		return usageError(fmt.Sprintf("invalid -qty %q", p.quantity))
	}
	price, err := decimal.NewFromString(p.price)
	if err != nil {
		return usageError(fmt.Sprintf("invalid -price %q", p.price))
	}

	resp, err := p.app.Services.Portfolios.AddTransaction(ctx, p.id, models.Transaction{
		Symbol:   p.symbol,
		Type:     models.TransactionType(p.txType),
		Quantity: qty,
		Price:    price,
	})
	if err != nil {
		return fail(err)
	}

	fmt.Println(resp.Message)
	return subcommands.ExitSuccess
}

type importCmd struct {
	app  *client.App
	id   string
	file string
}

func (*importCmd) Name() string     { return "import" }
func (*importCmd) Synopsis() string { return "import holdings from a CSV file" }
func (*importCmd) Usage() string {
	return `copilot import -id <portfolio-id> -file <holdings.csv>

  Uploads the CSV to the backend, replacing the portfolio's holdings.
`
}

func (p *importCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.id, "id", "", "Portfolio identifier.")
	f.StringVar(&p.file, "file", "", "CSV file to upload.")
}

func (p *importCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if p.id == "" || p.file == "" {
		return usageError("-id and -file are required")
	}

	f, err := os.Open(p.file)
	if err != nil {
		return fail(err)
	}
	defer f.Close()

	resp, err := p.app.Services.Portfolios.ImportCSV(ctx, p.id, filepath.Base(p.file), f)
	if err != nil {
		return fail(err)
	}

	fmt.Println(resp.Message)
	return subcommands.ExitSuccess
}

type exportCmd struct {
	app *client.App
	id  string
	out string
}

func (*exportCmd) Name() string     { return "export" }
func (*exportCmd) Synopsis() string { return "export holdings as CSV" }
func (*exportCmd) Usage() string {
	return `copilot export -id <portfolio-id> [-o <file>]

  Writes the portfolio's holdings as CSV to the file, or to stdout when -o
  is omitted.
`
}

func (p *exportCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.id, "id", "", "Portfolio identifier.")
	f.StringVar(&p.out, "o", "", "Destination file. Defaults to stdout.")
}

func (p *exportCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if p.id == "" {
		return usageError("-id is required")
	}

	csv, err := p.app.Services.Portfolios.ExportCSV(ctx, p.id)
	if err != nil {
		return fail(err)
	}

	if p.out == "" {
		os.Stdout.Write(csv)
		return subcommands.ExitSuccess
	}
	if err := os.WriteFile(p.out, csv, 0o600); err != nil {
		return fail(err)
	}
	fmt.Printf("Wrote %s.\n", p.out)
	return subcommands.ExitSuccess
}

type deleteCmd struct {
	app *client.App
	id  string
}

func (*deleteCmd) Name() string     { return "delete" }
func (*deleteCmd) Synopsis() string { return "delete a portfolio" }
func (*deleteCmd) Usage() string {
	return `copilot delete -id <portfolio-id>

  Deletes the portfolio on the backend. The local cached snapshot is kept.
`
}

func (p *deleteCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.id, "id", "", "Portfolio identifier.")
}

func (p *deleteCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if p.id == "" {
		return usageError("-id is required")
	}

	if err := p.app.Services.Portfolios.Delete(ctx, p.id); err != nil {
		return fail(err)
	}
	fmt.Println("Deleted.")
	return subcommands.ExitSuccess
}
