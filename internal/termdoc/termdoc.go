// Package termdoc loads term documents: a root term and its child terms,
// each carrying an explanation.
package termdoc

import "unicode/utf8"

// UnknownTerm is the root term name used when a document does not name one.
const UnknownTerm = "Unknown"

// Document is the root of a loaded term document.
type Document struct {
	Term  string // Root term (UnknownTerm if the source has none)
	Terms []Term // Child terms; nil when the source has no terms section
}

// Term is a named concept with an explanation and optional nested terms.
type Term struct {
	Term        string
	Explanation string
	Terms       []Term
}

// HasTerms reports whether the document has a terms section, even an empty one.
func (d *Document) HasTerms() bool {
	return d.Terms != nil
}

// Length is the explanation's length in characters (code points).
func (t Term) Length() int {
	return utf8.RuneCountInString(t.Explanation)
}
