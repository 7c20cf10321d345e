package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/radarfin/radar"
	"github.com/radarfin/radar/radarapi"
	"github.com/radarfin/radar/renderer"
)

// portfolioCmd fetches and displays the portfolio.
type portfolioCmd struct {
	details bool
}

func (*portfolioCmd) Name() string     { return "portfolio" }
func (*portfolioCmd) Synopsis() string { return "display the portfolio with its holdings and totals" }
func (*portfolioCmd) Usage() string {
	return `radar portfolio [-details]

  Fetches the portfolio for the configured account and displays the
  holdings with the total value. With -details, shows the valuation
  breakdown by security type instead.
`
}

func (c *portfolioCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.details, "details", false, "show the valuation breakdown by security type")
}

func (c *portfolioCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	client, err := newClient()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitUsageError
	}

	pf, err := client.Portfolio(ctx)
	if errors.Is(err, radarapi.ErrUserNotFound) {
		fmt.Fprintf(os.Stderr, "No account is registered for %s.\n", radar.MaskPhone(client.Phone()))
		return subcommands.ExitFailure
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading portfolio: %v\n", err)
		return subcommands.ExitFailure
	}

	account := pf.Account()
	if c.details {
		printMarkdown(renderer.DetailsMarkdown(account))
	} else {
		printMarkdown(renderer.PortfolioMarkdown(account, radar.MaskPhone(client.Phone())))
	}
	return subcommands.ExitSuccess
}
