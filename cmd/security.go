package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/radarfin/radar/renderer"
)

// securityCmd prints the reference card of a single security.
type securityCmd struct{}

func (*securityCmd) Name() string     { return "security" }
func (*securityCmd) Synopsis() string { return "show reference details for a security" }
func (*securityCmd) Usage() string {
	return `radar security <isin>

  Fetches reference data for the security identified by ISIN and
  prints price, bond, share, rating and trading sections when the
  backend provides them.
`
}
func (*securityCmd) SetFlags(f *flag.FlagSet) {}

func (c *securityCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: exactly one ISIN is required.")
		return subcommands.ExitUsageError
	}
	isin := f.Arg(0)

	client, err := newClient()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitUsageError
	}

	details, err := client.SecurityDetails(ctx, isin)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error fetching security %s: %v\n", isin, err)
		return subcommands.ExitFailure
	}
	printMarkdown(renderer.SecurityMarkdown(details))
	return subcommands.ExitSuccess
}
