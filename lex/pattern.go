package lex

import "regexp"

// Pattern is a named regular expression supplied to Lex in addition to
// the grammar's literal terminals. Patterns are not required to anchor
// to the start of the current position; Lex anchors them internally.
type Pattern struct {
	Name   string
	Regexp *regexp.Regexp
}

// anchored returns a copy of p.Regexp that only matches at the start
// of the string it is applied to, so Lex can test "does this pattern
// match right here" without a leftmost-match search skipping ahead.
func (p Pattern) anchored() *regexp.Regexp {
	return regexp.MustCompile(`\A(?:` + p.Regexp.String() + `)`)
}
