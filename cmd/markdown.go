package cmd

import (
	"fmt"
	"io"

	"github.com/charmbracelet/glamour"
)

// printMarkdown renders markdown for the terminal and writes it to w.
// If rendering fails the raw markdown is printed instead: the content
// matters more than the styling.
func printMarkdown(w io.Writer, md string) {
	out, err := glamour.Render(md, "auto")
	if err != nil {
		fmt.Fprintln(w, md)
		return
	}
	fmt.Fprint(w, out)
}
