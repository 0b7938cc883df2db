// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/google/subcommands"

	"github.com/fincopilot/go-copilot-client/internal/client"
	"github.com/fincopilot/go-copilot-client/models"
)

// liveEventTypes are the stream events the watch command prints, including
// the locally synthesised connection-status ones.
var liveEventTypes = []string{
	models.EventPriceUpdate,
	models.EventPortfolioUpdate,
	models.EventNews,
	models.EventAnalysisComplete,
	models.EventConnected,
	models.EventDisconnected,
	models.EventReconnecting,
	models.EventFailed,
}

type watchCmd struct {
	app *client.App
	ids string
}

func (*watchCmd) Name() string     { return "watch" }
func (*watchCmd) Synopsis() string { return "stream live events for portfolios" }
func (*watchCmd) Usage() string {
	return `copilot watch -id <portfolio-id>[,<portfolio-id>...]

  Opens the live event channel for each portfolio and prints every event
  until interrupted. Price and portfolio updates also refresh the local
  cache while the command runs.
`
}

func (p *watchCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.ids, "id", "", "Comma-separated portfolio identifiers.")
}

func (p *watchCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if p.ids == "" {
		return usageError("-id is required")
	}

	for _, eventType := range liveEventTypes {
		remove := p.app.Services.Watch.Events(eventType, printEvent(eventType))
		defer remove()
	}

	topics := strings.Split(p.ids, ",")
	for _, topic := range topics {
		if topic = strings.TrimSpace(topic); topic != "" {
			p.app.Services.Watch.Watch(topic)
		}
	}

	fmt.Fprintln(os.Stderr, "Watching. Press Ctrl-C to stop.")
	<-ctx.Done()

	for _, topic := range topics {
		if topic = strings.TrimSpace(topic); topic != "" {
			p.app.Services.Watch.Unwatch(topic)
		}
	}
	return subcommands.ExitSuccess
}

func printEvent(eventType string) func(payload []byte) {
	return func(payload []byte) {
		fmt.Printf("%s  %-24s %s\n", time.Now().Format(time.TimeOnly), eventType, payload)
	}
}
