package renderer

import (
	"strings"
	"testing"

	"github.com/radarfin/radar"
	"github.com/shopspring/decimal"
)

func TestSecurityMarkdownBond(t *testing.T) {
	d := &radar.SecurityDetails{
		ISIN: "RU000A0JS3W6",
		Name: "OFZ 26207",
		Type: "bond",
		Price: &radar.PriceInfo{
			Last:     decimal.RequireFromString("98.5"),
			Currency: "USD",
		},
		Bond: &radar.BondInfo{
			CouponRate: decimal.RequireFromString("8.15"),
			Nominal:    decimal.RequireFromString("1000"),
			Maturity:   radar.NewDate(2027, 2, 3),
		},
	}
	got := SecurityMarkdown(d)
	for _, want := range []string{"OFZ 26207", "Last Price", "$98.50", "8.15%", "2027-02-03"} {
		if !strings.Contains(got, want) {
			t.Errorf("missing %q in:\n%s", want, got)
		}
	}
	if strings.Contains(got, "fallback source") {
		t.Error("typed price must not carry the fallback label")
	}
	if strings.Contains(got, "## Share") {
		t.Error("absent sections must not render")
	}
}

func TestSecurityMarkdownFallbackLabel(t *testing.T) {
	d := &radar.SecurityDetails{
		ISIN:     "RU000A10ATB6",
		Type:     "bond",
		Fallback: true,
		Price: &radar.PriceInfo{
			Last:     decimal.RequireFromString("1012.4"),
			Currency: "RUB",
		},
	}
	got := SecurityMarkdown(d)
	if !strings.Contains(got, "Last Price (fallback source)") {
		t.Errorf("missing fallback label:\n%s", got)
	}
	// no name, the title falls back to the ISIN
	if !strings.Contains(got, "RU000A10ATB6") {
		t.Errorf("missing ISIN title:\n%s", got)
	}
}

func TestSecurityMarkdownShareAndRating(t *testing.T) {
	d := &radar.SecurityDetails{
		ISIN: "RU0009029540",
		Name: "Sberbank",
		Type: "stock",
		Share: &radar.ShareInfo{
			DividendYield: decimal.RequireFromString("10.5"),
			LotSize:       10,
			Sector:        "Banks",
		},
		Rating:  &radar.RatingInfo{Agency: "AKRA", Value: "AAA(RU)"},
		Trading: &radar.TradingInfo{Board: "TQBR", IsTraded: true},
	}
	got := SecurityMarkdown(d)
	for _, want := range []string{"10.5%", "Banks", "AKRA: AAA(RU)", "Board TQBR"} {
		if !strings.Contains(got, want) {
			t.Errorf("missing %q in:\n%s", want, got)
		}
	}
}
