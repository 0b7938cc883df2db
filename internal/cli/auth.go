// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"github.com/fincopilot/go-copilot-client/internal/client"
	"github.com/fincopilot/go-copilot-client/models"
)

type registerCmd struct {
	app      *client.App
	email    string
	password string
	fullName string
}

func (*registerCmd) Name() string     { return "register" }
func (*registerCmd) Synopsis() string { return "create a new account" }
func (*registerCmd) Usage() string {
	return `copilot register -email <email> -password <password> [-name <full name>]

  Creates an account on the backend. Registration does not log you in; run
  "copilot login" afterwards.
`
}

func (p *registerCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.email, "email", "", "Account email.")
	f.StringVar(&p.password, "password", "", "Account password.")
	f.StringVar(&p.fullName, "name", "", "Full name shown on the profile.")
}

func (p *registerCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if p.email == "" || p.password == "" {
		return usageError("-email and -password are required")
	}

	profile, err := p.app.Services.Auth.Register(ctx, models.RegisterRequest{
		Email:    p.email,
		Password: p.password,
		FullName: p.fullName,
	})
	if err != nil {
		return fail(err)
	}

	fmt.Printf("Registered %s. Run \"copilot login\" to start a session.\n", profile.Email)
	return subcommands.ExitSuccess
}

type loginCmd struct {
	app      *client.App
	email    string
	password string
}

func (*loginCmd) Name() string     { return "login" }
func (*loginCmd) Synopsis() string { return "log in and persist the session" }
func (*loginCmd) Usage() string {
	return `copilot login -email <email> -password <password>

  Exchanges credentials for a session token and stores it locally, so later
  commands run authenticated until "copilot logout".
`
}

func (p *loginCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.email, "email", "", "Account email.")
	f.StringVar(&p.password, "password", "", "Account password.")
}

func (p *loginCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if p.email == "" || p.password == "" {
		return usageError("-email and -password are required")
	}

	session, err := p.app.Services.Auth.Login(ctx, p.email, p.password)
	if err != nil {
		return fail(err)
	}

	name := session.User.FullName
	if name == "" {
		name = p.email
	}
	fmt.Printf("Logged in as %s.\n", name)
	return subcommands.ExitSuccess
}

type logoutCmd struct{ app *client.App }

func (*logoutCmd) Name() string             { return "logout" }
func (*logoutCmd) Synopsis() string         { return "discard the stored session" }
func (*logoutCmd) Usage() string            { return "copilot logout\n" }
func (*logoutCmd) SetFlags(_ *flag.FlagSet) {}

func (p *logoutCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if err := p.app.Services.Auth.Logout(); err != nil {
		return fail(err)
	}
	fmt.Println("Logged out.")
	return subcommands.ExitSuccess
}

type meCmd struct{ app *client.App }

func (*meCmd) Name() string             { return "me" }
func (*meCmd) Synopsis() string         { return "show the current user profile" }
func (*meCmd) Usage() string            { return "copilot me\n" }
func (*meCmd) SetFlags(_ *flag.FlagSet) {}

func (p *meCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	session, err := p.app.Services.Auth.Restore()
	if err != nil {
		return fail(err)
	}
	return printJSON(os.Stdout, session.User)
}

type riskCmd struct {
	app       *client.App
	tolerance string
	horizon   string
}

func (*riskCmd) Name() string     { return "risk" }
func (*riskCmd) Synopsis() string { return "update the risk questionnaire" }
func (*riskCmd) Usage() string {
	return `copilot risk -tolerance <conservative|moderate|aggressive> [-horizon <short|medium|long>]

  Stores the answers on the server and mirrors them into the local session.
`
}

func (p *riskCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.tolerance, "tolerance", "", "Risk tolerance level.")
	f.StringVar(&p.horizon, "horizon", "", "Investment horizon.")
}

func (p *riskCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if p.tolerance == "" {
		return usageError("-tolerance is required")
	}

	err := p.app.Services.Auth.SetRiskProfile(ctx, models.RiskProfile{
		RiskTolerance:     p.tolerance,
		InvestmentHorizon: p.horizon,
	})
	if err != nil {
		return fail(err)
	}

	fmt.Println("Risk profile updated.")
	return subcommands.ExitSuccess
}
