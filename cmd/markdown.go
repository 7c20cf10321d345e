package cmd

import (
	"fmt"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/glamour/styles"
)

// printMarkdown renders a markdown report to the terminal. When the
// terminal renderer fails (unknown TERM, no tty) the raw markdown is
// still perfectly readable, so print it instead.
func printMarkdown(md string) {
	out, err := glamour.Render(md, styles.AutoStyle)
	if err != nil {
		fmt.Println(md)
		return
	}
	fmt.Print(out)
}
