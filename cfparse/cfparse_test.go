package cfparse

import (
	"errors"
	"regexp"
	"strings"
	"testing"

	"github.com/earley-go/cfparse/earley"
	"github.com/earley-go/cfparse/lex"
)

func numIDPatterns() []lex.Pattern {
	return []lex.Pattern{
		{Name: "num", Regexp: regexp.MustCompile(`[0-9]+`)},
		{Name: "id", Regexp: regexp.MustCompile(`[a-z]+`)},
	}
}

func TestParseRejectsOutsideLanguage(t *testing.T) {
	lang, err := Compile([]string{
		"S -> A B | #",
		"A -> A num | num",
		"B -> abc | id | #",
	}, numIDPatterns())
	if err != nil {
		t.Fatalf("Compile: %v", err)
	}

	_, err = lang.Parse("4 foo 4")
	if err == nil {
		t.Fatal("expected ParseRejectedError")
	}
	var pre *earley.ParseRejectedError
	if !errors.As(err, &pre) {
		t.Fatalf("expected ParseRejectedError, got %v", err)
	}
}

func TestParseSurfacesLexFailure(t *testing.T) {
	lang, err := Compile([]string{
		"S -> A B | #",
		"A -> A num | num",
		"B -> abc | id | #",
	}, numIDPatterns())
	if err != nil {
		t.Fatalf("Compile: %v", err)
	}

	_, err = lang.Parse("4 #")
	if err == nil {
		t.Fatal("expected LexFailureError")
	}
	var lfe *lex.LexFailureError
	if !errors.As(err, &lfe) {
		t.Fatalf("expected LexFailureError, got %v", err)
	}
}

func TestParseAcceptsAndYieldsMatchingInput(t *testing.T) {
	lang, err := Compile([]string{
		"S -> A B | #",
		"A -> A num | num",
		"B -> abc | id | #",
	}, numIDPatterns())
	if err != nil {
		t.Fatalf("Compile: %v", err)
	}

	tree, err := lang.Parse("4 5 foo")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	got := strings.Join(tree.Yield(), " ")
	if got != "4 5 foo" {
		t.Errorf("yield = %q, want %q", got, "4 5 foo")
	}
}

func TestParseTokensSkipsLexer(t *testing.T) {
	lang, err := Compile([]string{"S -> a S | #"}, nil)
	if err != nil {
		t.Fatalf("Compile: %v", err)
	}
	tokens := []earley.Token{{Name: "a", Raw: "a"}, {Name: "a", Raw: "a"}}
	tree, err := lang.ParseTokens(tokens)
	if err != nil {
		t.Fatalf("ParseTokens: %v", err)
	}
	if got := strings.Join(tree.Yield(), ""); got != "aa" {
		t.Errorf("yield = %q, want %q", got, "aa")
	}
}
