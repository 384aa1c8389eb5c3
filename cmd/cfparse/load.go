package main

import (
	"bufio"
	"fmt"
	"os"
	"regexp"
	"strings"

	"github.com/earley-go/cfparse/cfparse"
	"github.com/earley-go/cfparse/lex"
)

// loadLanguage reads rules from grammarFile (one rule per non-blank
// line) and, if patternsFile is non-empty, lexer patterns from it
// (lines of the form "name = regex"), then compiles both into a
// cfparse.Language.
func loadLanguage(grammarFile, patternsFile string) (*cfparse.Language, error) {
	rules, err := readLines(grammarFile)
	if err != nil {
		return nil, fmt.Errorf("read grammar file: %w", err)
	}

	var patterns []lex.Pattern
	if patternsFile != "" {
		patterns, err = readPatterns(patternsFile)
		if err != nil {
			return nil, fmt.Errorf("read patterns file: %w", err)
		}
	}

	lang, err := cfparse.Compile(rules, patterns)
	if err != nil {
		return nil, fmt.Errorf("compile grammar: %w", err)
	}
	return lang, nil
}

func readLines(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var lines []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		lines = append(lines, line)
	}
	return lines, scanner.Err()
}

func readPatterns(path string) ([]lex.Pattern, error) {
	lines, err := readLines(path)
	if err != nil {
		return nil, err
	}

	patterns := make([]lex.Pattern, 0, len(lines))
	for _, line := range lines {
		name, expr, ok := strings.Cut(line, "=")
		if !ok {
			return nil, fmt.Errorf("malformed pattern line: %q (want \"name = regex\")", line)
		}
		re, err := regexp.Compile(strings.TrimSpace(expr))
		if err != nil {
			return nil, fmt.Errorf("pattern %q: %w", strings.TrimSpace(name), err)
		}
		patterns = append(patterns, lex.Pattern{Name: strings.TrimSpace(name), Regexp: re})
	}
	return patterns, nil
}
