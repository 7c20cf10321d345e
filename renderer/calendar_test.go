package renderer

import (
	"strings"
	"testing"
	"time"

	"github.com/radarfin/radar"
	"github.com/shopspring/decimal"
)

func TestCalendarMarkdownEmpty(t *testing.T) {
	got := CalendarMarkdown(nil, time.October, 2026)
	if !strings.Contains(got, "No payments scheduled") {
		t.Errorf("missing empty message:\n%s", got)
	}
	if !strings.Contains(got, "October 2026") {
		t.Errorf("missing month title:\n%s", got)
	}
}

func TestCalendarMarkdownGroups(t *testing.T) {
	groups := []radar.DayGroup{{
		Date: radar.NewDate(2026, 10, 15),
		Events: []radar.CalendarEvent{{
			Date:     radar.NewDate(2026, 10, 15),
			Name:     "OFZ 26207",
			ISIN:     "RU000A0JS3W6",
			Market:   "MOEX",
			Kind:     radar.Coupon,
			Amount:   decimal.RequireFromString("15.50"),
			Currency: "USD",
			Note:     "per bond",
		}},
	}}
	got := CalendarMarkdown(groups, time.October, 2026)
	for _, want := range []string{"15.10.2026", "Thursday", "OFZ 26207", "RU000A0JS3W6 · coupon", "$15.50", "per bond"} {
		if !strings.Contains(got, want) {
			t.Errorf("missing %q in:\n%s", want, got)
		}
	}
}
