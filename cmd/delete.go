package cmd

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/google/subcommands"
	"github.com/radarfin/radar"
	"github.com/radarfin/radar/renderer"
)

// deleteCmd removes one position after a confirmation prompt.
type deleteCmd struct {
	yes bool
}

func (*deleteCmd) Name() string     { return "delete" }
func (*deleteCmd) Synopsis() string { return "delete a position from the portfolio" }
func (*deleteCmd) Usage() string {
	return `radar delete [-y] <position-id>

  Deletes the position and refetches the portfolio. Asks for
  confirmation unless -y is passed.
`
}

func (c *deleteCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.yes, "y", false, "do not ask for confirmation")
}

func (c *deleteCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: exactly one position id is required.")
		return subcommands.ExitUsageError
	}
	id := f.Arg(0)

	if !c.yes && !confirm(fmt.Sprintf("Delete position %s?", id)) {
		fmt.Fprintln(os.Stderr, "Aborted.")
		return subcommands.ExitSuccess
	}

	client, err := newClient()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitUsageError
	}

	if err := client.DeletePosition(ctx, id); err != nil {
		fmt.Fprintf(os.Stderr, "Error deleting position: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Fprintf(os.Stderr, "✅ Position %s deleted.\n", id)

	pf, err := client.Portfolio(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not refresh portfolio: %v\n", err)
		return subcommands.ExitSuccess
	}
	printMarkdown(renderer.PortfolioMarkdown(pf.Account(), radar.MaskPhone(client.Phone())))
	return subcommands.ExitSuccess
}

// confirm asks a yes/no question on the terminal.
func confirm(question string) bool {
	fmt.Fprintf(os.Stderr, "%s [y/N] ", question)
	line, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil {
		return false
	}
	answer := strings.ToLower(strings.TrimSpace(line))
	return answer == "y" || answer == "yes"
}
