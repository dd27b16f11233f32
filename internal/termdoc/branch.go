package termdoc

import (
	"errors"
	"fmt"
	"strings"
)

// ErrBranchNotFound is returned when a branch path names a missing term.
var ErrBranchNotFound = errors.New("branch not found")

// ParseBranch splits a slash-separated branch path into term names.
// Empty segments are dropped.
func ParseBranch(s string) []string {
	var path []string
	for _, seg := range strings.Split(s, "/") {
		if seg = strings.TrimSpace(seg); seg != "" {
			path = append(path, seg)
		}
	}
	return path
}

// Branch descends from the document root through child terms named by path
// and returns the reached term as a document of its own. An empty path
// returns doc unchanged. Names match case-insensitively; the first match wins.
func Branch(doc *Document, path []string) (*Document, error) {
	cur := doc
	for i, name := range path {
		next := findTerm(cur.Terms, name)
		if next == nil {
			return nil, fmt.Errorf("%w: %q", ErrBranchNotFound, strings.Join(path[:i+1], "/"))
		}
		cur = &Document{Term: next.Term, Terms: next.Terms}
	}
	return cur, nil
}

func findTerm(terms []Term, name string) *Term {
	for i := range terms {
		if strings.EqualFold(terms[i].Term, name) {
			return &terms[i]
		}
	}
	return nil
}
