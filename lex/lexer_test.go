package lex

import (
	"errors"
	"regexp"
	"testing"
)

func TestLexLiteralsOnly(t *testing.T) {
	tokens, err := Lex("if x while", []string{"if", "while"}, nil)
	var lfe *LexFailureError
	if !errors.As(err, &lfe) {
		t.Fatalf("expected LexFailureError for unmatched 'x', got %v", err)
	}
	if len(tokens) != 3 {
		t.Fatalf("got %d tokens, want 3: %v", len(tokens), tokens)
	}
	if tokens[0].Name != "if" || tokens[2].Name != "while" {
		t.Errorf("unexpected token names: %v", tokens)
	}
	if !tokens[1].IsError() {
		t.Errorf("expected token for 'x' to fail since no pattern covers it: %v", tokens[1])
	}
}

func TestLexLiteralPriorityOverPattern(t *testing.T) {
	// "while" is both a literal terminal and matched by an identifier
	// pattern; the literal must win even though both match the same
	// length, per the priority rule.
	ident := Pattern{Name: "IDENT", Regexp: regexp.MustCompile(`[a-z]+`)}
	tokens, err := Lex("while", []string{"while"}, []Pattern{ident})
	if err != nil {
		t.Fatalf("Lex: %v", err)
	}
	if len(tokens) != 1 || tokens[0].Name != "while" {
		t.Fatalf("expected literal 'while' to win, got %v", tokens)
	}
}

func TestLexLongestMatchWins(t *testing.T) {
	ident := Pattern{Name: "IDENT", Regexp: regexp.MustCompile(`[a-z]+`)}
	tokens, err := Lex("whiletrue", []string{"while"}, []Pattern{ident})
	if err != nil {
		t.Fatalf("Lex: %v", err)
	}
	if len(tokens) != 1 {
		t.Fatalf("expected one token (longest match), got %v", tokens)
	}
	if tokens[0].Name != "IDENT" || tokens[0].Raw != "whiletrue" {
		t.Fatalf("expected longest IDENT match, got %v", tokens[0])
	}
}

func TestLexFailureCarriesPartialTokens(t *testing.T) {
	num := Pattern{Name: "num", Regexp: regexp.MustCompile(`[0-9]+`)}
	id := Pattern{Name: "id", Regexp: regexp.MustCompile(`[a-z]+`)}
	_, err := Lex("4 #", []string{"abc"}, []Pattern{num, id})
	if err == nil {
		t.Fatal("expected LexFailureError")
	}
	var lfe *LexFailureError
	if !errors.As(err, &lfe) {
		t.Fatalf("expected LexFailureError, got %v", err)
	}
	if lfe.Offset != 2 {
		t.Errorf("offset = %d, want 2", lfe.Offset)
	}
	if len(lfe.Tokens) != 2 {
		t.Fatalf("tokens = %v, want 2 entries", lfe.Tokens)
	}
	if lfe.Tokens[0].Name != "num" || lfe.Tokens[0].Raw != "4" {
		t.Errorf("first token = %v", lfe.Tokens[0])
	}
	if !lfe.Tokens[1].IsError() || lfe.Tokens[1].Raw != "#" {
		t.Errorf("second token = %v", lfe.Tokens[1])
	}
}

func TestLexRoundTrip(t *testing.T) {
	input := "a bc def"
	ident := Pattern{Name: "IDENT", Regexp: regexp.MustCompile(`[a-z]+`)}
	tokens, err := Lex(input, nil, []Pattern{ident})
	if err != nil {
		t.Fatalf("Lex: %v", err)
	}
	var rebuilt string
	for i, tok := range tokens {
		if i > 0 {
			rebuilt += " "
		}
		rebuilt += tok.Raw
	}
	if rebuilt != input {
		t.Errorf("round trip = %q, want %q", rebuilt, input)
	}
}

func TestLexNoSpanningWhitespace(t *testing.T) {
	// A pattern that could match across a space boundary must not.
	greedy := Pattern{Name: "ANY", Regexp: regexp.MustCompile(`[a-z ]+`)}
	tokens, err := Lex("ab cd", nil, []Pattern{greedy})
	if err != nil {
		t.Fatalf("Lex: %v", err)
	}
	if len(tokens) != 2 {
		t.Fatalf("expected matches confined to each word, got %v", tokens)
	}
	if tokens[0].Raw != "ab" || tokens[1].Raw != "cd" {
		t.Fatalf("unexpected tokens: %v", tokens)
	}
}
