package chart

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/dgallion1/termviz/internal/termdoc"
	"golang.org/x/text/width"
)

const (
	bannerWidth = 40
	labelWidth  = 15
)

// DefaultNote is printed under the header in text mode.
const DefaultNote = "Note: graphical charts need a desktop display and a cgo-enabled build."

// TextOptions controls the text-mode renderer.
type TextOptions struct {
	BarWidth int    // Widest bar in characters (DefaultBarWidth if <= 0)
	Note     string // Line printed under the header (DefaultNote if empty)
}

// RenderText writes the text-mode chart for doc to w:
//
//	----------------------------------------
//	VISUALIZATION: <term>
//	----------------------------------------
//	<note>
//
//	A               | ####### (2 chars)
//	B               | ############################## (8 chars)
//	----------------------------------------
func RenderText(w io.Writer, doc *termdoc.Document, opts TextOptions) error {
	if opts.BarWidth <= 0 {
		opts.BarWidth = DefaultBarWidth
	}
	if opts.Note == "" {
		opts.Note = DefaultNote
	}

	bw := bufio.NewWriter(w)
	banner := strings.Repeat("-", bannerWidth)

	fmt.Fprintln(bw, banner)
	fmt.Fprintf(bw, "VISUALIZATION: %s\n", doc.Term)
	fmt.Fprintln(bw, banner)
	fmt.Fprintf(bw, "%s\n\n", opts.Note)

	if len(doc.Terms) > 0 {
		c := FromDocument(doc)
		longest := c.Max()
		for _, b := range c.Bars {
			n := BarLength(b.Value, longest, opts.BarWidth)
			fmt.Fprintf(bw, "%s | %s (%d chars)\n", padRight(b.Label, labelWidth), strings.Repeat("#", n), b.Value)
		}
	} else {
		fmt.Fprintln(bw, "No child terms found.")
	}
	fmt.Fprintln(bw, banner)

	return bw.Flush()
}

// padRight left-aligns s in a field of n terminal columns. Longer values are
// not truncated.
func padRight(s string, n int) string {
	if w := displayWidth(s); w < n {
		return s + strings.Repeat(" ", n-w)
	}
	return s
}

// displayWidth counts terminal columns; wide and fullwidth East Asian runes
// take two.
func displayWidth(s string) int {
	w := 0
	for _, r := range s {
		switch width.LookupRune(r).Kind() {
		case width.EastAsianWide, width.EastAsianFullwidth:
			w += 2
		default:
			w++
		}
	}
	return w
}
