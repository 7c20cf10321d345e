package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/radarfin/radar"
	"github.com/radarfin/radar/agent"
	"github.com/radarfin/radar/renderer"
	"google.golang.org/genai"
)

// assistCmd sends the current portfolio to the AI analyst for a
// one-shot review.
type assistCmd struct{}

func (*assistCmd) Name() string     { return "assist" }
func (*assistCmd) Synopsis() string { return "ask the AI analyst to review the portfolio" }
func (*assistCmd) Usage() string {
	return `radar assist

  Fetches the portfolio, renders it and asks the Gemini analyst for
  a short written review. Requires GEMINI_API_KEY in the environment.
`
}
func (*assistCmd) SetFlags(_ *flag.FlagSet) {}

func (c *assistCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	client, err := newClient()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitUsageError
	}

	pf, err := client.Portfolio(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error fetching portfolio: %v\n", err)
		return subcommands.ExitFailure
	}
	account := pf.Account()
	report := renderer.PortfolioMarkdown(account, radar.MaskPhone(client.Phone())) +
		"\n" + renderer.DetailsMarkdown(account)

	ai, err := genai.NewClient(ctx, nil)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error initializing Gemini's client:", err)
		return subcommands.ExitFailure
	}

	if err := agent.Review(ctx, ai, os.Stdout, report); err != nil {
		fmt.Fprintf(os.Stderr, "Analyst failed: %v\n", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
