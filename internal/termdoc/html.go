package termdoc

import (
	"fmt"
	"io"
	"strings"

	"golang.org/x/net/html"
)

// HTMLLoader handles HTML files. Child terms come from <details> elements
// (the <summary> names the term) and from <dl> definition lists. A <details>
// nested inside another becomes a child of that term.
type HTMLLoader struct{}

func (l *HTMLLoader) Load(r io.Reader, filename string) (*Document, error) {
	root, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("%w: parse html: %w", ErrParse, err)
	}

	doc := &Document{
		Term:  titleFromFilename(filename, ".html", ".htm"),
		Terms: []Term{},
	}
	if title := findElementText(root, "title"); title != "" {
		doc.Term = title
	} else if h1 := findElementText(root, "h1"); h1 != "" {
		doc.Term = h1
	}

	doc.Terms = append(doc.Terms, collectTerms(root)...)
	return doc, nil
}

// collectTerms walks n and returns the terms of every top-most <details> and
// <dl> element below it.
func collectTerms(n *html.Node) []Term {
	var terms []Term
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode {
			switch n.Data {
			case "script", "style":
				return
			case "details":
				terms = append(terms, detailsTerm(n))
				return
			case "dl":
				terms = append(terms, definitionTerms(n)...)
				return
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return terms
}

func detailsTerm(n *html.Node) Term {
	var t Term
	var body strings.Builder
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode && c.Data == "summary" && t.Term == "" {
			t.Term = summaryName(textContent(c), "")
			continue
		}
		if c.Type == html.ElementNode && c.Data == "details" {
			t.Terms = append(t.Terms, detailsTerm(c))
			continue
		}
		body.WriteString(textContentSkipping(c, "details"))
	}
	t.Explanation = strings.TrimSpace(body.String())
	return t
}

// definitionTerms pairs each <dt> with the <dd> elements that follow it.
func definitionTerms(dl *html.Node) []Term {
	var terms []Term
	var parts []string
	flush := func() {
		if len(terms) > 0 {
			terms[len(terms)-1].Explanation = strings.Join(parts, "\n\n")
		}
		parts = nil
	}
	for c := dl.FirstChild; c != nil; c = c.NextSibling {
		if c.Type != html.ElementNode {
			continue
		}
		switch c.Data {
		case "dt":
			flush()
			terms = append(terms, Term{Term: textContent(c)})
		case "dd":
			if t := textContent(c); t != "" && len(terms) > 0 {
				parts = append(parts, t)
			}
		}
	}
	flush()
	return terms
}

func textContent(n *html.Node) string {
	return strings.TrimSpace(textContentSkipping(n, ""))
}

// textContentSkipping concatenates text below n, ignoring subtrees rooted at
// elements named skip.
func textContentSkipping(n *html.Node, skip string) string {
	var buf strings.Builder
	var extract func(*html.Node)
	extract = func(n *html.Node) {
		if n.Type == html.ElementNode && skip != "" && n.Data == skip {
			return
		}
		if n.Type == html.TextNode {
			buf.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			extract(c)
		}
	}
	extract(n)
	return buf.String()
}

func findElementText(n *html.Node, tag string) string {
	if n.Type == html.ElementNode && n.Data == tag {
		return textContent(n)
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if t := findElementText(c, tag); t != "" {
			return t
		}
	}
	return ""
}
