package renderer

import (
	"strings"
	"testing"

	"github.com/radarfin/radar"
)

func account(holdings ...radar.Holding) *radar.Account {
	return &radar.Account{Currency: "RUB", Holdings: holdings}
}

func TestPortfolioMarkdownNotFound(t *testing.T) {
	got := PortfolioMarkdown(nil, "+7 915 173 15 45")
	if !strings.Contains(got, "Portfolio not found") {
		t.Errorf("missing not-found section:\n%s", got)
	}
	if !strings.Contains(got, "+7 915 173 15 45") {
		t.Errorf("missing account line:\n%s", got)
	}
}

func TestPortfolioMarkdownEmpty(t *testing.T) {
	got := PortfolioMarkdown(account(), "+7 915 173 15 45")
	if !strings.Contains(got, "Portfolio is empty") {
		t.Errorf("missing empty section:\n%s", got)
	}
	if strings.Contains(got, "Portfolio not found") {
		t.Error("an empty portfolio must not read as not found")
	}
}

func TestPortfolioMarkdownHoldings(t *testing.T) {
	got := PortfolioMarkdown(account(
		radar.Holding{Name: "OFZ 26207", Ticker: "SU26207", ISIN: "RU000A0JS3W6", Kind: radar.Bond, Quantity: 30, Price: 1000, HasPrice: true, Provider: "MOEX"},
	), "+7 915 173 15 45")

	for _, want := range []string{"OFZ 26207 (SU26207)", "RU000A0JS3W6", "MOEX", "Holdings"} {
		if !strings.Contains(got, want) {
			t.Errorf("missing %q in:\n%s", want, got)
		}
	}
	if strings.Contains(got, "fallback") {
		t.Error("no fallback chip expected")
	}
}

func TestPortfolioMarkdownFallbackChip(t *testing.T) {
	got := PortfolioMarkdown(account(
		radar.Holding{Name: "X", Kind: radar.Bond, Quantity: 1, Provider: "BondReference", Fallback: true},
	), "+7 915 173 15 45")
	if !strings.Contains(got, "⚠ fallback") {
		t.Errorf("missing fallback chip:\n%s", got)
	}
}

func TestDetailsMarkdownBreakdown(t *testing.T) {
	got := DetailsMarkdown(account(
		radar.Holding{Name: "b", Kind: radar.Bond, Quantity: 30, Price: 250, HasPrice: true},
		radar.Holding{Name: "s", Kind: radar.Share, Quantity: 10, Price: 250, HasPrice: true},
	))
	for _, want := range []string{"Breakdown by Type", "75%", "25%", "Bond", "Share"} {
		if !strings.Contains(got, want) {
			t.Errorf("missing %q in:\n%s", want, got)
		}
	}
}

func TestDetailsMarkdownNil(t *testing.T) {
	if got := DetailsMarkdown(nil); !strings.Contains(got, "Portfolio not found") {
		t.Errorf("missing not-found text:\n%s", got)
	}
}
