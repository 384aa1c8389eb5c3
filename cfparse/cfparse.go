// Package cfparse ties the grammar, lex, and earley packages together
// into the single call most callers want: parse this input against
// this grammar text and pattern set, and hand back a tree or a typed
// error.
package cfparse

import (
	"github.com/earley-go/cfparse/earley"
	"github.com/earley-go/cfparse/grammar"
	"github.com/earley-go/cfparse/lex"
)

// Language bundles a validated Grammar with the lexer patterns used to
// tokenize source text for it. It is immutable and safe for concurrent
// use by multiple Parse calls.
type Language struct {
	Grammar  *grammar.Grammar
	Patterns []lex.Pattern
}

// Compile parses rules into a Grammar and pairs it with patterns,
// returning a Language ready to parse source text.
func Compile(rules []string, patterns []lex.Pattern) (*Language, error) {
	g, err := grammar.Parse(rules)
	if err != nil {
		return nil, err
	}
	return &Language{Grammar: g, Patterns: patterns}, nil
}

// Parse tokenizes input with l's patterns and l.Grammar's terminals,
// then parses the resulting token stream, returning the reconstructed
// tree. Errors are one of *lex.LexFailureError, *earley.ParseRejectedError,
// or *earley.InternalErrorError.
func (l *Language) Parse(input string) (*earley.Node, error) {
	tokens, err := lex.Lex(input, symbolStrings(l.Grammar.Terminals()), l.Patterns)
	if err != nil {
		return nil, err
	}
	return l.ParseTokens(toEarleyTokens(tokens))
}

// ParseTokens parses an already-tokenized stream, skipping the lexer
// entirely. Consumers that synthesize tokens directly should use this.
func (l *Language) ParseTokens(tokens []earley.Token) (*earley.Node, error) {
	rec := earley.New(l.Grammar)
	chart, err := rec.Parse(tokens)
	if err != nil {
		return nil, err
	}
	return earley.Reconstruct(l.Grammar, rec, chart, tokens)
}

func symbolStrings(syms []grammar.Symbol) []string {
	out := make([]string, len(syms))
	for i, s := range syms {
		out[i] = string(s)
	}
	return out
}

func toEarleyTokens(tokens []lex.Token) []earley.Token {
	out := make([]earley.Token, len(tokens))
	for i, t := range tokens {
		out[i] = earley.Token{Name: t.Name, Raw: t.Raw}
	}
	return out
}
