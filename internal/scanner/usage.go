package scanner

import (
	"strings"

	"github.com/jenian/varlint/internal/source"
)

// Matcher decides whether a name occurs on a line
type Matcher interface {
	Occurs(lineNum int, line, name string) bool
}

// SubstringMatcher treats any substring occurrence as an occurrence of the name.
// Identifiers that merely contain the name, comments and string literals all count.
type SubstringMatcher struct{}

// Occurs implements Matcher
func (SubstringMatcher) Occurs(_ int, line, name string) bool {
	return strings.Contains(line, name)
}

// TokenMatcher only accepts identifier tokens equal to the name
type TokenMatcher struct {
	Index TokenIndex
}

// Occurs implements Matcher
func (m TokenMatcher) Occurs(lineNum int, _ string, name string) bool {
	return m.Index.Has(lineNum, name)
}

// ScanUsages runs the usage pass: every declared name is checked against every line.
// A line counts once for a name when the name occurs on it and the line does not look like
// a declaration of that same name.
func ScanUsages(lines source.Lines, decls Declarations, matcher Matcher) UsageCounts {
	if matcher == nil {
		matcher = SubstringMatcher{}
	}

	counts := make(UsageCounts)
	for n := 1; n <= lines.Len(); n++ {
		line := lines.Line(n)
		for name := range decls {
			if !matcher.Occurs(n, line, name) {
				continue
			}
			if DeclaresName(line, name) {
				continue
			}
			counts[name]++
		}
	}
	return counts
}
