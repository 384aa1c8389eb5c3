package grammar

import (
	"errors"
	"testing"
)

func TestParseValidGrammars(t *testing.T) {
	cases := [][]string{
		{"S -> a"},
		{" S -> a "},
		{"S->a"},
	}
	for _, rules := range cases {
		g, err := Parse(rules)
		if err != nil {
			t.Errorf("Parse(%v) returned error: %v", rules, err)
			continue
		}
		if g.Start() != "S" {
			t.Errorf("Parse(%v): start = %q, want S", rules, g.Start())
		}
	}
}

func TestParseInvalidGrammars(t *testing.T) {
	cases := [][]string{
		{},
		{"S -> $"},
		{"S -> a |"},
		{"S -> # a"},
		{"S ->->"},
		{"S ->"},
		{" -> a"},
		{"S"},
	}
	for _, rules := range cases {
		_, err := Parse(rules)
		if err == nil {
			t.Errorf("Parse(%v) expected InvalidGrammarError, got nil", rules)
			continue
		}
		var ige *InvalidGrammarError
		if !errors.As(err, &ige) {
			t.Errorf("Parse(%v): error %v is not an InvalidGrammarError", rules, err)
		}
	}
}

func symSet(syms []Symbol) map[Symbol]bool {
	m := make(map[Symbol]bool, len(syms))
	for _, s := range syms {
		m[s] = true
	}
	return m
}

func equalSymSet(t *testing.T, label string, got []Symbol, want []Symbol) {
	t.Helper()
	gs, ws := symSet(got), symSet(want)
	if len(gs) != len(ws) {
		t.Errorf("%s: got %v, want %v", label, got, want)
		return
	}
	for s := range ws {
		if !gs[s] {
			t.Errorf("%s: got %v, want %v", label, got, want)
			return
		}
	}
}

func TestFirstFollow(t *testing.T) {
	g, err := Parse([]string{
		"S -> A B C | s",
		"A -> # | a",
		"B -> A A | b",
		"C -> C B | c S d",
	})
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	equalSymSet(t, "FIRST(S)", g.First("S"), []Symbol{"a", "b", "c", "s"})
	equalSymSet(t, "FIRST(A)", g.First("A"), []Symbol{"a", Epsilon})
	equalSymSet(t, "FIRST(B)", g.First("B"), []Symbol{"a", "b", Epsilon})
	equalSymSet(t, "FIRST(C)", g.First("C"), []Symbol{"c"})

	equalSymSet(t, "FOLLOW(S)", g.Follow("S"), []Symbol{End, "d"})
	equalSymSet(t, "FOLLOW(A)", g.Follow("A"), []Symbol{"a", "c", "b", End, "d"})
	equalSymSet(t, "FOLLOW(B)", g.Follow("B"), []Symbol{"c", "a", "b", End, "d"})
	equalSymSet(t, "FOLLOW(C)", g.Follow("C"), []Symbol{End, "b", "a", "d"})
}

func TestNullableEquivalence(t *testing.T) {
	g, err := Parse([]string{
		"S -> A B C | s",
		"A -> # | a",
		"B -> A A | b",
		"C -> C B | c S d",
	})
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	for _, n := range g.Nonterminals() {
		first := symSet(g.First(n))
		if g.Nullable(n) != first[Epsilon] {
			t.Errorf("nullable(%s)=%v but Epsilon-in-FIRST=%v", n, g.Nullable(n), first[Epsilon])
		}
	}
}

func TestTerminalsAndNonterminals(t *testing.T) {
	g, err := Parse([]string{
		"S -> A S | #",
		"A -> a B",
		"B -> b C b",
		"C -> c C | #",
	})
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	equalSymSet(t, "nonterminals", g.Nonterminals(), []Symbol{"S", "A", "B", "C"})
	equalSymSet(t, "terminals", g.Terminals(), []Symbol{"a", "b", "c"})
}

func TestDumpRoundTrip(t *testing.T) {
	g, err := Parse([]string{"S -> A B | #", "A -> a", "B -> b"})
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	dumped := g.Dump()
	g2, err := Parse(splitLines(dumped))
	if err != nil {
		t.Fatalf("Parse(dump): %v", err)
	}
	equalSymSet(t, "re-parsed nonterminals", g2.Nonterminals(), g.Nonterminals())
	equalSymSet(t, "re-parsed terminals", g2.Terminals(), g.Terminals())
}

func splitLines(s string) []string {
	var out []string
	start := 0
	for i := 0; i <= len(s); i++ {
		if i == len(s) || s[i] == '\n' {
			out = append(out, s[start:i])
			start = i + 1
		}
	}
	return out
}
