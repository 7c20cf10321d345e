package renderer

import (
	"bytes"
	"fmt"

	md "github.com/nao1215/markdown"
	"github.com/radarfin/radar"
)

// SearchMarkdown renders search results as ready-to-use `radar add`
// commands, so a result can be pasted straight back into the shell.
func SearchMarkdown(query string, results []radar.SecurityCandidate) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("Search: %q", query))

	if len(results) == 0 {
		doc.PlainText("No securities matched.")
		return doc.String()
	}

	var commands bytes.Buffer
	for _, c := range results {
		fmt.Fprintf(&commands, "radar add -name %q -type %s", c.Name, c.Kind())
		if c.ISIN != "" {
			fmt.Fprintf(&commands, " -isin %s", c.ISIN)
		}
		if c.Ticker != "" {
			fmt.Fprintf(&commands, " -ticker %s", c.Ticker)
		}
		fmt.Fprintf(&commands, " -quantity 1\n")
	}

	table := md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignLeft, md.AlignLeft, md.AlignLeft},
		Header:    []string{"Name", "Ticker", "ISIN", "Source"},
	}
	for _, c := range results {
		table.Rows = append(table.Rows, []string{c.Name, c.Ticker, c.ISIN, c.Source})
	}
	doc.Table(table)

	doc.H2("Add one of these")
	doc.CodeBlocks(md.SyntaxHighlightShell, commands.String())

	return doc.String()
}
