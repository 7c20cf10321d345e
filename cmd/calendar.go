package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/google/subcommands"
	"github.com/radarfin/radar"
	"github.com/radarfin/radar/renderer"
)

// calendarCmd prints the payment calendar for one month.
type calendarCmd struct {
	month  int
	year   int
	period string
	kind   string
}

func (*calendarCmd) Name() string     { return "calendar" }
func (*calendarCmd) Synopsis() string { return "show the payment calendar" }
func (*calendarCmd) Usage() string {
	return `radar calendar [-m month] [-y year] [-period p] [-kind k]

  Shows coupons, redemptions and offers grouped by day. Defaults
  to the current month. -kind filters to coupon, redemption or
  offer.
`
}

func (c *calendarCmd) SetFlags(f *flag.FlagSet) {
	now := time.Now()
	f.IntVar(&c.month, "m", int(now.Month()), "calendar month (1-12)")
	f.IntVar(&c.year, "y", now.Year(), "calendar year")
	f.StringVar(&c.period, "period", "", "backend period keyword, overrides -m/-y")
	f.StringVar(&c.kind, "kind", "", "only events of this kind (coupon, redemption, offer)")
}

func (c *calendarCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.month < 1 || c.month > 12 {
		fmt.Fprintf(os.Stderr, "Error: invalid month %d.\n", c.month)
		return subcommands.ExitUsageError
	}

	client, err := newClient()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitUsageError
	}

	var events []radar.CalendarEvent
	if c.period != "" {
		events, err = client.CalendarPeriod(ctx, c.period)
	} else {
		events, err = client.Calendar(ctx, time.Month(c.month), c.year)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error fetching calendar: %v\n", err)
		return subcommands.ExitFailure
	}

	if c.kind != "" {
		kind := radar.ParseEventKind(c.kind)
		if kind == radar.GenericEvent && c.kind != "generic" {
			fmt.Fprintf(os.Stderr, "Error: unknown event kind %q.\n", c.kind)
			return subcommands.ExitUsageError
		}
		events = radar.FilterEvents(events, kind)
	}

	groups := radar.GroupByDay(events)
	printMarkdown(renderer.CalendarMarkdown(groups, time.Month(c.month), c.year))
	return subcommands.ExitSuccess
}
