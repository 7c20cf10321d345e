package renderer

import (
	"bytes"
	"fmt"
	"time"

	md "github.com/nao1215/markdown"
	"github.com/radarfin/radar"
)

// CalendarMarkdown renders a month of payment events grouped by day.
func CalendarMarkdown(groups []radar.DayGroup, month time.Month, year int) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("Payment Calendar — %s %d", month, year))

	if len(groups) == 0 {
		doc.PlainText("No payments scheduled this month.")
		return doc.String()
	}

	for _, g := range groups {
		doc.H2(fmt.Sprintf("%02d.%02d.%d · %s", g.Date.Day(), g.Date.Month(), g.Date.Year(), g.Date.Time().Weekday()))
		table := md.TableSet{
			Alignment: []md.TableAlignment{md.AlignLeft, md.AlignLeft, md.AlignLeft, md.AlignRight, md.AlignLeft},
			Header:    []string{"Market", "Security", "Event", "Amount", ""},
		}
		for _, e := range g.Events {
			event := e.Kind.Label()
			if e.ISIN != "" {
				event = fmt.Sprintf("%s · %s", e.ISIN, event)
			}
			table.Rows = append(table.Rows, []string{
				e.Market,
				e.Name,
				event,
				e.Money().String(),
				e.Note,
			})
		}
		doc.Table(table)
	}

	return doc.String()
}
