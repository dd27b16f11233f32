package termdoc

import (
	"bytes"
	"io"
	"regexp"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

var (
	summaryPattern   = regexp.MustCompile(`(?is)<summary>\s*(.*?)\s*</summary>`)
	looseTermPattern = regexp.MustCompile(`^\*\*Term:\*\*\s*(.+)$`)
	tagPattern       = regexp.MustCompile(`<[^>]*>`)

	detailsOpenPattern  = regexp.MustCompile(`(?i)<details[\s>]`)
	detailsClosePattern = regexp.MustCompile(`(?i)</details\s*>`)
)

// MarkdownLoader handles knowledge-map Markdown files using goldmark.
//
// Child terms are the collapsible explanation blocks of the map:
//
//	<details>
//	<summary>Use: NAME</summary>
//
//	explanation
//	</details>
//
// A block summarised as "Explanation" takes its name from the preceding
// "**Term:** NAME" line.
type MarkdownLoader struct{}

func (l *MarkdownLoader) Load(r io.Reader, filename string) (*Document, error) {
	src, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	md := goldmark.New()
	doc := md.Parser().Parse(text.NewReader(src))

	out := &Document{
		Term:  titleFromFilename(filename, ".md", ".markdown"),
		Terms: []Term{},
	}

	var (
		rootSet     bool
		inDetails   bool
		pendingName string
		current     Term
		body        []string
	)

	finish := func() {
		current.Explanation = strings.Join(body, "\n\n")
		out.Terms = append(out.Terms, current)
		current = Term{}
		body = nil
		inDetails = false
	}
	appendBody := func(s string) {
		if s = strings.TrimSpace(s); s != "" {
			body = append(body, s)
		}
	}

	for n := doc.FirstChild(); n != nil; n = n.NextSibling() {
		switch node := n.(type) {
		case *ast.Heading:
			if !rootSet && node.Level == 1 {
				out.Term = string(node.Text(src))
				rootSet = true
			}

		case *ast.HTMLBlock:
			raw := rawLines(node, src)
			if !inDetails {
				loc := detailsOpenPattern.FindStringIndex(raw)
				if loc == nil {
					continue
				}
				inDetails = true
				raw = raw[loc[0]:]
				name := ""
				if m := summaryPattern.FindStringSubmatchIndex(raw); m != nil {
					name = stripTags(raw[m[2]:m[3]])
					raw = raw[m[1]:]
				}
				current.Term = summaryName(name, pendingName)
				pendingName = ""
			}
			if loc := detailsClosePattern.FindStringIndex(raw); loc != nil {
				appendBody(stripTags(raw[:loc[0]]))
				finish()
			} else {
				appendBody(stripTags(raw))
			}

		case *ast.Paragraph:
			if inDetails {
				appendBody(extractText(n, src))
				continue
			}
			if m := looseTermPattern.FindStringSubmatch(strings.TrimSpace(rawLines(n, src))); m != nil {
				pendingName = strings.TrimSpace(m[1])
			}

		default:
			if inDetails {
				appendBody(extractText(n, src))
			}
		}
	}
	if inDetails {
		finish()
	}

	return out, nil
}

// summaryName resolves the term name from a <summary> label.
func summaryName(summary, pending string) string {
	if name, ok := strings.CutPrefix(summary, "Use:"); ok {
		return strings.TrimSpace(name)
	}
	if strings.EqualFold(summary, "Explanation") && pending != "" {
		return pending
	}
	return summary
}

// rawLines returns the source text of a block node.
func rawLines(n ast.Node, src []byte) string {
	var buf bytes.Buffer
	lines := n.Lines()
	for i := 0; i < lines.Len(); i++ {
		line := lines.At(i)
		buf.Write(line.Value(src))
	}
	if hb, ok := n.(*ast.HTMLBlock); ok && hb.HasClosure() {
		buf.Write(hb.ClosureLine.Value(src))
	}
	return buf.String()
}

// extractText gets the text content of a goldmark AST node. Blocks with
// inline children contribute only their inline text; leaf blocks such as code
// blocks contribute their raw lines.
func extractText(n ast.Node, src []byte) string {
	var buf bytes.Buffer
	if n.Type() == ast.TypeBlock && !n.HasChildren() {
		lines := n.Lines()
		for i := 0; i < lines.Len(); i++ {
			line := lines.At(i)
			buf.Write(line.Value(src))
		}
	}
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		if t, ok := c.(*ast.Text); ok {
			buf.Write(t.Value(src))
			if t.HardLineBreak() || t.SoftLineBreak() {
				buf.WriteByte('\n')
			}
		} else {
			if c.Type() == ast.TypeBlock && buf.Len() > 0 {
				buf.WriteByte('\n')
			}
			buf.WriteString(extractText(c, src))
		}
	}
	return strings.TrimSpace(buf.String())
}

func stripTags(s string) string {
	return strings.TrimSpace(tagPattern.ReplaceAllString(s, ""))
}
