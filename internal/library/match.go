package library

import (
	"strings"

	"golang.org/x/text/cases"
)

// matcher tests case-insensitive containment of a literal term. Both sides
// are compared after Unicode case folding.
type matcher struct {
	fold cases.Caser
	term string
}

func newMatcher(term string) *matcher {
	fold := cases.Fold()
	return &matcher{fold: fold, term: fold.String(term)}
}

// contains reports whether s contains the term, ignoring case.
func (m *matcher) contains(s string) bool {
	if m.term == "" {
		return true
	}
	return strings.Contains(m.fold.String(s), m.term)
}

// containsAny reports whether any of values contains the term.
func (m *matcher) containsAny(values ...string) bool {
	for _, s := range values {
		if m.contains(s) {
			return true
		}
	}
	return false
}

// equalFold reports whether a and b are equal under Unicode case folding.
func equalFold(a, b string) bool {
	fold := cases.Fold()
	return fold.String(a) == fold.String(b)
}
