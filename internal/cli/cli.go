// SPDX-License-Identifier: Apache-2.0

// Package cli implements the copilot command set on top of
// [subcommands]. Every command holds a reference to the assembled
// [client.App] and talks to the backend exclusively through its services.
package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/google/subcommands"

	"github.com/fincopilot/go-copilot-client/internal/client"
)

// Register installs every copilot command on the commander, grouped the way
// the help output presents them.
func Register(c *subcommands.Commander, app *client.App) {
	c.Register(c.HelpCommand(), "")
	c.Register(c.CommandsCommand(), "")

	c.Register(&registerCmd{app: app}, "account")
	c.Register(&loginCmd{app: app}, "account")
	c.Register(&logoutCmd{app: app}, "account")
	c.Register(&meCmd{app: app}, "account")
	c.Register(&riskCmd{app: app}, "account")

	c.Register(&createCmd{app: app}, "portfolios")
	c.Register(&portfoliosCmd{app: app}, "portfolios")
	c.Register(&showCmd{app: app}, "portfolios")
	c.Register(&txCmd{app: app}, "portfolios")
	c.Register(&importCmd{app: app}, "portfolios")
	c.Register(&exportCmd{app: app}, "portfolios")
	c.Register(&deleteCmd{app: app}, "portfolios")

	c.Register(&analyzeCmd{app: app}, "analysis")
	c.Register(&peersCmd{app: app}, "analysis")
	c.Register(&newsCmd{app: app}, "analysis")
	c.Register(&trendCmd{app: app}, "analysis")
	c.Register(&overviewCmd{app: app}, "analysis")
	c.Register(&sectorsCmd{app: app}, "analysis")
	c.Register(&recommendationsCmd{app: app}, "analysis")

	c.Register(&watchCmd{app: app}, "live")
	c.Register(&healthCmd{app: app}, "live")
}

// fail prints err the way every command reports problems and maps it to an
// exit status.
func fail(err error) subcommands.ExitStatus {
	fmt.Fprintln(os.Stderr, "Error:", err)
	return subcommands.ExitFailure
}

func usageError(msg string) subcommands.ExitStatus {
	fmt.Fprintln(os.Stderr, "Error:", msg)
	return subcommands.ExitUsageError
}

// printJSON renders v as indented JSON on stdout. All structured command
// output goes through here so it stays pipeable.
func printJSON(w io.Writer, v any) subcommands.ExitStatus {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fail(err)
	}
	return subcommands.ExitSuccess
}
