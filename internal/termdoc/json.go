package termdoc

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
)

// JSONLoader handles the native term document format:
//
//	{"term": "...", "terms": [{"term": "...", "explanation": "..."}, ...]}
type JSONLoader struct{}

type jsonTerm struct {
	Term        *string    `json:"term"`
	Explanation string     `json:"explanation"`
	Terms       []jsonTerm `json:"terms"`
}

func (l *JSONLoader) Load(r io.Reader, filename string) (*Document, error) {
	src, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	if trimmed := bytes.TrimSpace(src); len(trimmed) == 0 || trimmed[0] != '{' {
		return nil, fmt.Errorf("%w: top level must be a JSON object", ErrParse)
	}

	var raw jsonTerm
	if err := json.Unmarshal(src, &raw); err != nil {
		return nil, fmt.Errorf("%w: decode json: %w", ErrParse, err)
	}

	doc := &Document{
		Term:  UnknownTerm,
		Terms: convertJSONTerms(raw.Terms),
	}
	if raw.Term != nil {
		doc.Term = *raw.Term
	}
	return doc, nil
}

// convertJSONTerms keeps the nil/empty distinction of the source slice.
func convertJSONTerms(in []jsonTerm) []Term {
	if in == nil {
		return nil
	}
	out := make([]Term, 0, len(in))
	for _, t := range in {
		term := Term{
			Explanation: t.Explanation,
			Terms:       convertJSONTerms(t.Terms),
		}
		if t.Term != nil {
			term.Term = *t.Term
		}
		out = append(out, term)
	}
	return out
}
