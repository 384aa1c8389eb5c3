// Package lex implements the longest-match tokenizer contract that
// feeds the earley package: literal grammar terminals plus optional
// regex patterns, patterns tried in the order given, literal matches
// winning ties over pattern matches, and an unmatched byte producing a
// synthetic error token rather than aborting the scan.
package lex

import (
	"strings"
	"unicode"
)

// Lex tokenizes input using terminals (the literal grammar terminals
// that are not themselves produced by one of patterns) and the
// supplied patterns, in priority order (literals, then patterns in the
// order given; longest match wins within a priority tier).
//
// Input is split on whitespace into words first; no match is ever
// allowed to span a whitespace boundary. A position that matches
// nothing emits a single-character token with an empty name and
// advances past it; Lex keeps scanning afterwards, but returns a
// *LexFailureError wrapping the full (partial) token list once it has
// reached the end of input.
func Lex(input string, terminals []string, patterns []Pattern) ([]Token, error) {
	l := newLexer(input, terminals, patterns)
	return l.run()
}

type lexer struct {
	input    string
	literals []string
	patterns []Pattern
	pos      int
	line     int
	column   int
}

func newLexer(input string, terminals []string, patterns []Pattern) *lexer {
	byName := make(map[string]bool, len(patterns))
	for _, p := range patterns {
		byName[p.Name] = true
	}
	literals := make([]string, 0, len(terminals))
	for _, t := range terminals {
		if !byName[t] {
			literals = append(literals, t)
		}
	}
	return &lexer{
		input:    input,
		literals: literals,
		patterns: patterns,
		line:     1,
		column:   1,
	}
}

func (l *lexer) position() Position {
	return Position{Offset: l.pos, Line: l.line, Column: l.column}
}

func (l *lexer) advance() byte {
	ch := l.input[l.pos]
	l.pos++
	if ch == '\n' {
		l.line++
		l.column = 1
	} else {
		l.column++
	}
	return ch
}

func (l *lexer) run() ([]Token, error) {
	var tokens []Token
	firstFailure := -1

	n := len(l.input)
	for l.pos < n {
		if isSpace(l.input[l.pos]) {
			l.advance()
			continue
		}

		wordEnd := l.wordEnd()
		for l.pos < wordEnd {
			name, length := l.matchAt(wordEnd)
			start := l.position()
			if length == 0 {
				if firstFailure < 0 {
					firstFailure = start.Offset
				}
				raw := string(l.advance())
				tokens = append(tokens, Token{Name: "", Raw: raw, Position: start})
				continue
			}
			raw := l.input[l.pos : l.pos+length]
			for i := 0; i < length; i++ {
				l.advance()
			}
			tokens = append(tokens, Token{Name: name, Raw: raw, Position: start})
		}
	}

	if firstFailure >= 0 {
		return tokens, lexFailure(firstFailure, tokens)
	}
	return tokens, nil
}

// wordEnd returns the offset of the next whitespace byte (or end of
// input), establishing the boundary no match may cross.
func (l *lexer) wordEnd() int {
	i := l.pos
	for i < len(l.input) && !isSpace(l.input[i]) {
		i++
	}
	return i
}

// matchAt finds the winning candidate at the current position within
// the current word, applying the literal-priority and longest-match
// rules from the package doc. Returns a zero length when nothing
// matches.
func (l *lexer) matchAt(wordEnd int) (name string, length int) {
	window := l.input[l.pos:wordEnd]

	litLen, litName := 0, ""
	for _, lit := range l.literals {
		if len(lit) > litLen && strings.HasPrefix(window, lit) {
			litLen = len(lit)
			litName = lit
		}
	}

	patLen, patName := 0, ""
	for _, p := range l.patterns {
		loc := p.anchored().FindStringIndex(window)
		if loc == nil {
			continue
		}
		if loc[1] > patLen {
			patLen = loc[1]
			patName = p.Name
		}
	}

	if litLen > 0 && litLen >= patLen {
		return litName, litLen
	}
	if patLen > 0 {
		return patName, patLen
	}
	return "", 0
}

func isSpace(b byte) bool {
	return unicode.IsSpace(rune(b))
}
