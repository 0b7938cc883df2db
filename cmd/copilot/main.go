// SPDX-License-Identifier: Apache-2.0

package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"path"
	"syscall"

	"github.com/google/subcommands"

	"github.com/fincopilot/go-copilot-client/internal/cli"
	"github.com/fincopilot/go-copilot-client/internal/client"
	"github.com/fincopilot/go-copilot-client/internal/config"
	"github.com/fincopilot/go-copilot-client/internal/logger"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	log := logger.NewLogger("copilot")

	cfg, err := config.GetClientConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	app, err := client.NewApp(*cfg, log, client.WithAuthRedirect(func(reason string) {
		fmt.Fprintf(os.Stderr, "Session rejected (%s). Run \"copilot login\" again.\n", reason)
	}))
	if err != nil {
		log.Fatal().Err(err).Msg("init client app error")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err = app.Run(ctx); err != nil {
		log.Fatal().Err(err).Msg("client run error")
	}

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	cli.Register(commander, app)
	commander.Register(&versionCmd{}, "")

	flag.Parse()
	status := commander.Execute(ctx)
	stop()
	if err := app.Close(); err != nil {
		log.Error().Err(err).Msg("close client app error")
	}
	os.Exit(int(status))
}

type versionCmd struct{}

func (*versionCmd) Name() string             { return "version" }
func (*versionCmd) Synopsis() string         { return "print build information" }
func (*versionCmd) Usage() string            { return "copilot version\n" }
func (*versionCmd) SetFlags(_ *flag.FlagSet) {}

func (*versionCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	fmt.Printf("Build version: %s\n", orNA(buildVersion))
	fmt.Printf("Build date: %s\n", orNA(buildDate))
	fmt.Printf("Build commit: %s\n", orNA(buildCommit))
	return subcommands.ExitSuccess
}

func orNA(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}
