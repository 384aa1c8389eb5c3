package lex

import "fmt"

// Token is a (name, raw) pair: name identifies a grammar terminal (or
// a lexer pattern's name), raw is the matched surface text. A token
// produced after a lex failure carries an empty Name.
type Token struct {
	Name     string
	Raw      string
	Position Position
}

func (t Token) String() string {
	return fmt.Sprintf("%s(%q)@%d", t.Name, t.Raw, t.Position.Offset)
}

// IsError reports whether t was synthesized to stand in for an
// unmatched character.
func (t Token) IsError() bool {
	return t.Name == ""
}
