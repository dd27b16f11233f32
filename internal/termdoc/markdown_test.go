package termdoc

import (
	"strings"
	"testing"
)

const knowledgeMap = `# Knowledge Map

> **Context Set:** 3/14/2026, 10:00:00 AM

The scheduler hands work to a goroutine pool.

**Terms:**  [goroutine]

<details>
<summary>Use: goroutine</summary>

A lightweight thread managed by the Go runtime.
</details>

---

**Term:** channel
<details>
<summary>Explanation</summary>

A typed conduit.

Used to synchronise goroutines.
</details>

---
`

func TestMarkdownLoader_KnowledgeMap(t *testing.T) {
	doc, err := (&MarkdownLoader{}).Load(strings.NewReader(knowledgeMap), "knowledge-map.md")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if doc.Term != "Knowledge Map" {
		t.Errorf("expected root %q, got %q", "Knowledge Map", doc.Term)
	}
	if len(doc.Terms) != 2 {
		t.Fatalf("expected 2 terms, got %d: %+v", len(doc.Terms), doc.Terms)
	}

	if doc.Terms[0].Term != "goroutine" {
		t.Errorf("expected %q, got %q", "goroutine", doc.Terms[0].Term)
	}
	if want := "A lightweight thread managed by the Go runtime."; doc.Terms[0].Explanation != want {
		t.Errorf("expected %q, got %q", want, doc.Terms[0].Explanation)
	}

	if doc.Terms[1].Term != "channel" {
		t.Errorf("expected loose term %q, got %q", "channel", doc.Terms[1].Term)
	}
	if want := "A typed conduit.\n\nUsed to synchronise goroutines."; doc.Terms[1].Explanation != want {
		t.Errorf("expected %q, got %q", want, doc.Terms[1].Explanation)
	}
}

func TestMarkdownLoader_InlineDetails(t *testing.T) {
	input := "# Root\n\n<details><summary>Use: inline</summary>Short text.</details>\n"
	doc, err := (&MarkdownLoader{}).Load(strings.NewReader(input), "inline.md")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(doc.Terms) != 1 {
		t.Fatalf("expected 1 term, got %d", len(doc.Terms))
	}
	if doc.Terms[0].Term != "inline" || doc.Terms[0].Explanation != "Short text." {
		t.Errorf("unexpected term: %+v", doc.Terms[0])
	}
}

func TestMarkdownLoader_NoTerms(t *testing.T) {
	input := "Just some notes.\n\nNothing collapsible here.\n"
	doc, err := (&MarkdownLoader{}).Load(strings.NewReader(input), "notes.md")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if doc.Term != "notes" {
		t.Errorf("expected title from filename %q, got %q", "notes", doc.Term)
	}
	if !doc.HasTerms() || len(doc.Terms) != 0 {
		t.Errorf("expected empty terms section, got %+v", doc.Terms)
	}
}

func TestMarkdownLoader_TitleStripping(t *testing.T) {
	tests := []struct {
		filename string
		want     string
	}{
		{"readme.md", "readme"},
		{"notes.markdown", "notes"},
	}
	l := &MarkdownLoader{}
	for _, tt := range tests {
		doc, err := l.Load(strings.NewReader("text"), tt.filename)
		if err != nil {
			t.Fatalf("unexpected error for %s: %v", tt.filename, err)
		}
		if doc.Term != tt.want {
			t.Errorf("filename=%q: expected title %q, got %q", tt.filename, tt.want, doc.Term)
		}
	}
}

func TestMarkdownLoader_UnterminatedDetails(t *testing.T) {
	input := "<details>\n<summary>Use: dangling</summary>\n\nNever closed.\n"
	doc, err := (&MarkdownLoader{}).Load(strings.NewReader(input), "open.md")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(doc.Terms) != 1 || doc.Terms[0].Explanation != "Never closed." {
		t.Fatalf("expected dangling term to be kept, got %+v", doc.Terms)
	}
}

func TestSummaryName(t *testing.T) {
	tests := []struct {
		summary, pending, want string
	}{
		{"Use: goroutine", "", "goroutine"},
		{"Use:channel", "", "channel"},
		{"Explanation", "select", "select"},
		{"Explanation", "", "Explanation"},
		{"Plain", "ignored", "Plain"},
	}
	for _, tt := range tests {
		if got := summaryName(tt.summary, tt.pending); got != tt.want {
			t.Errorf("summaryName(%q, %q) = %q, want %q", tt.summary, tt.pending, got, tt.want)
		}
	}
}
