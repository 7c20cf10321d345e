package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/google/subcommands"
	"github.com/radarfin/radar/renderer"
)

// searchCmd looks up securities by name, ticker or ISIN.
type searchCmd struct{}

func (*searchCmd) Name() string     { return "search" }
func (*searchCmd) Synopsis() string { return "search securities by name, ticker or ISIN" }
func (*searchCmd) Usage() string {
	return `radar search <query>

  Prints matching securities with ready-to-run add commands.
`
}
func (*searchCmd) SetFlags(f *flag.FlagSet) {}

func (c *searchCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "Error: a search query is required.")
		return subcommands.ExitUsageError
	}
	query := strings.Join(f.Args(), " ")

	client, err := newClient()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitUsageError
	}

	results, err := client.Search(ctx, query)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error searching %q: %v\n", query, err)
		return subcommands.ExitFailure
	}
	printMarkdown(renderer.SearchMarkdown(query, results))
	return subcommands.ExitSuccess
}
