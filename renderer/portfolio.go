// Package renderer turns radar domain values into markdown reports for
// the terminal.
package renderer

import (
	"bytes"
	"fmt"

	md "github.com/nao1215/markdown"
	"github.com/radarfin/radar"
)

// kindPill is the textual stand-in for the kind icons of the UI.
func kindPill(k radar.SecurityKind) string {
	switch k {
	case radar.Bond:
		return "🪙"
	case radar.Share:
		return "⭐"
	case radar.ETF:
		return "💠"
	default:
		return "·"
	}
}

// PortfolioMarkdown renders the account hero and the holdings list for
// the given masked phone. A nil account is the "portfolio not found"
// state; an account with no holdings is "portfolio empty". The two
// must read differently.
func PortfolioMarkdown(account *radar.Account, maskedPhone string) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Radar Portfolio")
	doc.PlainText(fmt.Sprintf("Account: %s", maskedPhone))

	if account == nil {
		doc.H2("Portfolio not found")
		doc.PlainText("Could not load portfolio data for this account. Try again, or check the phone number.")
		return doc.String()
	}

	v := radar.Valuate(account)

	doc.Table(md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight},
		Header:    []string{md.Bold("Total Value"), md.Bold(v.DisplayMoney().Rounded())},
		Rows: [][]string{
			{"Currency", v.Currency},
			{"Securities", fmt.Sprintf("%d", v.Positions)},
			{"Papers", fmt.Sprintf("%.0f", v.TotalQuantity)},
		},
	})

	if len(account.Holdings) == 0 {
		doc.H2("Portfolio is empty")
		doc.PlainText("Add a security to get started.")
		return doc.String()
	}

	doc.H2("Holdings")
	table := md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft, md.AlignLeft, md.AlignLeft, md.AlignRight, md.AlignRight, md.AlignLeft,
		},
		Header: []string{"", "Name", "ISIN", "Qty", "Value", "Source"},
	}
	for _, h := range account.Holdings {
		name := h.Name
		if h.Ticker != "" {
			name = fmt.Sprintf("%s (%s)", h.Name, h.Ticker)
		}
		source := h.Provider
		if h.Fallback {
			source += " ⚠ fallback"
		}
		table.Rows = append(table.Rows, []string{
			kindPill(h.Kind),
			name,
			h.ISIN,
			fmt.Sprintf("%.0f", h.Quantity),
			radar.M(h.LineValue(), account.Currency).String(),
			source,
		})
	}
	doc.Table(table)

	return doc.String()
}

// DetailsMarkdown renders the valuation details view: headline total
// with two fraction digits and the breakdown by security type.
func DetailsMarkdown(account *radar.Account) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Portfolio Details")
	if account == nil {
		doc.PlainText("Portfolio not found.")
		return doc.String()
	}

	v := radar.Valuate(account)
	doc.Table(md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight},
		Header:    []string{md.Bold("Total Value"), md.Bold(v.DisplayMoney().String())},
		Rows: [][]string{
			{"Securities", fmt.Sprintf("%d", v.Positions)},
			{"Currency", v.Currency},
		},
	})

	breakdown := radar.Breakdown(account)
	if len(breakdown) == 0 {
		return doc.String()
	}

	doc.H2("Breakdown by Type")
	table := md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight, md.AlignRight},
		Header:    []string{"Type", "Share", "Value"},
	}
	for _, item := range breakdown {
		table.Rows = append(table.Rows, []string{
			fmt.Sprintf("%s %s", kindPill(item.Kind), item.Kind.Label()),
			fmt.Sprintf("%.0f%%", item.Share*100),
			radar.M(item.Value, account.Currency).String(),
		})
	}
	doc.Table(table)

	return doc.String()
}
