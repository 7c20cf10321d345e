package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/radarfin/radar"
	"github.com/radarfin/radar/renderer"
)

// addCmd creates a position, then refetches and displays the portfolio.
type addCmd struct {
	name     string
	ticker   string
	isin     string
	secType  string
	quantity float64
	provider string
}

func (*addCmd) Name() string     { return "add" }
func (*addCmd) Synopsis() string { return "add a security to the portfolio" }
func (*addCmd) Usage() string {
	return `radar add -name <name> [-ticker <ticker>] [-isin <isin>] [-type bond|share|etf] [-quantity <n>] [-provider <source>]

  Creates a position on the backend and refetches the portfolio. Use
  'radar search' to find the security reference data first.

Usage Examples:
# Add 25 bonds.
$ radar add -name "КЛС-ТРЕЙД БО-03" -isin RU000A10ATB6 -type bond -quantity 25
`
}

func (c *addCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.name, "name", "", "security name (required)")
	f.StringVar(&c.ticker, "ticker", "", "ticker symbol")
	f.StringVar(&c.isin, "isin", "", "ISIN code")
	f.StringVar(&c.secType, "type", "bond", "security type: bond, share or etf")
	f.Float64Var(&c.quantity, "quantity", 1, "number of papers")
	f.StringVar(&c.provider, "provider", "manual", "data source label")
}

func (c *addCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.name == "" {
		fmt.Fprintln(os.Stderr, "Error: -name is required.")
		return subcommands.ExitUsageError
	}

	client, err := newClient()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitUsageError
	}

	position := radar.NewPosition{
		Name:     c.name,
		Ticker:   c.ticker,
		ISIN:     c.isin,
		Type:     c.secType,
		Quantity: c.quantity,
		Provider: c.provider,
	}

	created, err := client.AddPosition(ctx, position)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error adding position: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Fprintf(os.Stderr, "✅ Position %s added.\n", created.Name)

	// one mutation, one full refetch: the portfolio view is always
	// rebuilt from the backend, never patched locally
	pf, err := client.Portfolio(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not refresh portfolio: %v\n", err)
		return subcommands.ExitSuccess
	}
	printMarkdown(renderer.PortfolioMarkdown(pf.Account(), radar.MaskPhone(client.Phone())))
	return subcommands.ExitSuccess
}
