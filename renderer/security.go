package renderer

import (
	"bytes"
	"fmt"

	md "github.com/nao1215/markdown"
	"github.com/radarfin/radar"
)

// SecurityMarkdown renders the reference card of one security. Absent
// sub-objects are simply skipped: the backend includes only what its
// providers covered.
func SecurityMarkdown(d *radar.SecurityDetails) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	title := d.Name
	if title == "" {
		title = d.ISIN
	}
	doc.H1(title)
	doc.PlainText(fmt.Sprintf("%s %s · %s", kindPill(radar.ParseSecurityKind(d.Type)), d.ISIN, radar.ParseSecurityKind(d.Type).Label()))

	if d.Price != nil {
		label := "Last Price"
		if d.Fallback {
			label = "Last Price (fallback source)"
		}
		row := []string{md.Bold(label), md.Bold(d.Price.Money().String())}
		table := md.TableSet{
			Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight},
			Header:    row,
		}
		if !d.Price.AsOf.IsZero() {
			table.Rows = append(table.Rows, []string{"As of", d.Price.AsOf.String()})
		}
		doc.Table(table)
	}

	if d.Bond != nil {
		doc.H2("Bond")
		doc.Table(md.TableSet{
			Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight},
			Header:    []string{"Coupon Rate", fmt.Sprintf("%s%%", d.Bond.CouponRate)},
			Rows: [][]string{
				{"Coupon Value", radar.DecimalMoney(d.Bond.CouponValue, "").String()},
				{"Nominal", radar.DecimalMoney(d.Bond.Nominal, "").String()},
				{"Maturity", d.Bond.Maturity.String()},
			},
		})
	}

	if d.Share != nil {
		doc.H2("Share")
		doc.Table(md.TableSet{
			Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight},
			Header:    []string{"Dividend Yield", fmt.Sprintf("%s%%", d.Share.DividendYield)},
			Rows: [][]string{
				{"Lot Size", fmt.Sprintf("%d", d.Share.LotSize)},
				{"Sector", d.Share.Sector},
			},
		})
	}

	if d.Rating != nil {
		doc.H2("Rating")
		doc.PlainText(fmt.Sprintf("%s: %s", d.Rating.Agency, d.Rating.Value))
	}

	if d.Trading != nil {
		traded := "not traded"
		if d.Trading.IsTraded {
			traded = "traded"
		}
		doc.H2("Trading")
		doc.PlainText(fmt.Sprintf("Board %s, volume %s, %s", d.Trading.Board, d.Trading.Volume, traded))
	}

	return doc.String()
}
