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

// updateCmd applies a partial update to one position. Only the flags
// the user actually passed end up in the PATCH body.
type updateCmd struct {
	id       string
	name     string
	ticker   string
	isin     string
	secType  string
	quantity float64
}

func (*updateCmd) Name() string     { return "update" }
func (*updateCmd) Synopsis() string { return "update fields of an existing position" }
func (*updateCmd) Usage() string {
	return `radar update -id <id> [-name <name>] [-ticker <ticker>] [-isin <isin>] [-type <type>] [-quantity <n>]

  Sends a partial update for the position; fields not passed on the
  command line are left untouched. The portfolio is refetched after.
`
}

func (c *updateCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.id, "id", "", "position id (required)")
	f.StringVar(&c.name, "name", "", "new security name")
	f.StringVar(&c.ticker, "ticker", "", "new ticker symbol")
	f.StringVar(&c.isin, "isin", "", "new ISIN code")
	f.StringVar(&c.secType, "type", "", "new security type")
	f.Float64Var(&c.quantity, "quantity", 0, "new number of papers")
}

func (c *updateCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.id == "" {
		fmt.Fprintln(os.Stderr, "Error: -id is required.")
		return subcommands.ExitUsageError
	}

	// only explicitly passed flags become part of the patch
	var patch radar.PositionPatch
	f.Visit(func(fl *flag.Flag) {
		switch fl.Name {
		case "name":
			patch.Name = &c.name
		case "ticker":
			patch.Ticker = &c.ticker
		case "isin":
			patch.ISIN = &c.isin
		case "type":
			patch.Type = &c.secType
		case "quantity":
			patch.Quantity = &c.quantity
		}
	})
	if patch.IsZero() {
		fmt.Fprintln(os.Stderr, "Error: nothing to update, pass at least one field flag.")
		return subcommands.ExitUsageError
	}

	client, err := newClient()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitUsageError
	}

	updated, err := client.UpdatePosition(ctx, c.id, patch)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error updating position: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Fprintf(os.Stderr, "✅ Position %s updated.\n", updated.Name)

	pf, err := client.Portfolio(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not refresh portfolio: %v\n", err)
		return subcommands.ExitSuccess
	}
	printMarkdown(renderer.PortfolioMarkdown(pf.Account(), radar.MaskPhone(client.Phone())))
	return subcommands.ExitSuccess
}
