// Package chart turns term documents into bar charts of explanation length.
package chart

import "github.com/dgallion1/termviz/internal/termdoc"

// DefaultBarWidth is the widest text-mode bar, in characters.
const DefaultBarWidth = 30

// Chart is a renderer-independent bar chart.
type Chart struct {
	Title  string
	XLabel string
	YLabel string
	Bars   []Bar
}

// Bar is one labelled value.
type Bar struct {
	Label string
	Value int
}

// FromDocument builds the explanation-length chart for doc's child terms.
func FromDocument(doc *termdoc.Document) Chart {
	c := Chart{
		Title:  "Complexity analysis for: " + doc.Term,
		XLabel: "Sub-Term",
		YLabel: "Explanation Length (chars)",
	}
	for _, t := range doc.Terms {
		c.Bars = append(c.Bars, Bar{Label: t.Term, Value: t.Length()})
	}
	return c
}

// Max returns the largest bar value, or 0 for a chart without bars.
func (c Chart) Max() int {
	m := 0
	for _, b := range c.Bars {
		if b.Value > m {
			m = b.Value
		}
	}
	return m
}

// BarLength scales length against longest onto width cells, rounding down.
// It returns 0 when longest is 0.
func BarLength(length, longest, width int) int {
	if longest <= 0 || length <= 0 || width <= 0 {
		return 0
	}
	return length * width / longest
}
