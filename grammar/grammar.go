// Package grammar parses a textual context-free grammar, validates it,
// and computes the analyses (nullable set, FIRST, FOLLOW) the earley
// package needs to build a chart: a declarative rule language of the
// form "LHS -> ALT1 | ALT2", fixed-point set computations, and
// insertion-ordered containers throughout so two runs over the same
// text yield byte-identical iteration order.
package grammar

import (
	"strings"

	"github.com/earley-go/cfparse/internal/ordered"
)

// Grammar is an immutable, validated context-free grammar.
type Grammar struct {
	start       Symbol
	productions []*Production
	rulesFor    map[Symbol][]*Production

	symbols   *ordered.Set[Symbol]
	nonterms  *ordered.Set[Symbol]
	terms     *ordered.Set[Symbol]

	nullable *ordered.Set[Symbol]
	first    map[Symbol]*ordered.Set[Symbol]
	follow   map[Symbol]*ordered.Set[Symbol]
}

// Parse parses a sequence of rule strings, each of the form
// "LHS -> ALT1 | ALT2 | ...", and returns a validated, analyzed
// Grammar. See the package doc for the format rules.
func Parse(rules []string) (*Grammar, error) {
	g := &Grammar{
		rulesFor: make(map[Symbol][]*Production),
		symbols:  ordered.New[Symbol](),
		nonterms: ordered.New[Symbol](),
		terms:    ordered.New[Symbol](),
	}

	serial := 0
	for _, rule := range rules {
		lhs, alts, err := splitRule(rule)
		if err != nil {
			return nil, err
		}
		if g.start == "" {
			g.start = lhs
		}
		g.nonterms.Add(lhs)
		g.symbols.Add(lhs)
		for _, rhs := range alts {
			p := &Production{LHS: lhs, RHS: rhs, Serial: serial}
			serial++
			g.productions = append(g.productions, p)
			g.rulesFor[lhs] = append(g.rulesFor[lhs], p)
		}
	}

	if len(g.productions) == 0 {
		return nil, invalidGrammar("", "grammar has no productions")
	}

	// Second pass: any rhs symbol not already known to be a nonterm is a
	// terminal. Insertion order follows first appearance in the text.
	for _, p := range g.productions {
		if p.IsEpsilon() {
			continue
		}
		for _, sym := range p.RHS {
			g.symbols.Add(sym)
			if !g.nonterms.Contains(sym) {
				g.terms.Add(sym)
			}
		}
	}

	g.computeNullable()
	g.computeFirst()
	g.computeFollow()

	return g, nil
}

// splitRule parses one "LHS -> ALT1 | ALT2" rule into its LHS symbol
// and its alternatives (each a sequence of symbols), applying every
// validation rule from the grammar format.
func splitRule(rule string) (Symbol, [][]Symbol, error) {
	if strings.Count(rule, ruleArrow) != 1 {
		return "", nil, invalidGrammar(rule, "rule must contain exactly one %q", ruleArrow)
	}
	parts := strings.SplitN(rule, ruleArrow, 2)
	lhsText := strings.TrimSpace(parts[0])
	rhsText := parts[1]

	if lhsText == "" {
		return "", nil, invalidGrammar(rule, "left-hand side is empty")
	}
	if lhsText == string(End) || lhsText == altSep {
		return "", nil, invalidGrammar(rule, "left-hand side cannot be %q", lhsText)
	}
	if strings.ContainsAny(lhsText, " \t") {
		return "", nil, invalidGrammar(rule, "left-hand side must be a single symbol")
	}
	lhs := Symbol(lhsText)

	var alts [][]Symbol
	for _, altText := range strings.Split(rhsText, altSep) {
		syms := strings.Fields(altText)
		if len(syms) == 0 {
			return "", nil, invalidGrammar(rule, "alternative is empty")
		}
		hasEpsilon := false
		for _, tok := range syms {
			if isReservedToken(tok) {
				return "", nil, invalidGrammar(rule, "%q is reserved and cannot be used as a symbol", tok)
			}
			if tok == string(End) {
				return "", nil, invalidGrammar(rule, "%q cannot appear in a production", End)
			}
			if tok == string(Epsilon) {
				hasEpsilon = true
			}
		}
		if hasEpsilon && len(syms) > 1 {
			return "", nil, invalidGrammar(rule, "%q must be the sole symbol of its alternative", Epsilon)
		}
		alt := make([]Symbol, len(syms))
		for i, tok := range syms {
			alt[i] = Symbol(tok)
		}
		alts = append(alts, alt)
	}

	return lhs, alts, nil
}

// Start returns the grammar's start symbol: the LHS of the first
// production in the input.
func (g *Grammar) Start() Symbol { return g.start }

// Productions returns every production in input order.
func (g *Grammar) Productions() []*Production { return g.productions }

// RulesFor returns the alternatives for nonterm in original input order.
func (g *Grammar) RulesFor(nonterm Symbol) []*Production { return g.rulesFor[nonterm] }

// IsNonterminal reports whether sym appears on the LHS of some production.
func (g *Grammar) IsNonterminal(sym Symbol) bool { return g.nonterms.Contains(sym) }

// IsTerminal reports whether sym is a terminal.
func (g *Grammar) IsTerminal(sym Symbol) bool { return g.terms.Contains(sym) }

// Terminals returns every terminal, in order of first appearance.
func (g *Grammar) Terminals() []Symbol { return g.terms.Slice() }

// Nonterminals returns every nonterminal, in order of first appearance.
func (g *Grammar) Nonterminals() []Symbol { return g.nonterms.Slice() }

// Symbols returns every symbol: the nonterminals in the order of their
// first rule, followed by the terminals in order of first appearance.
func (g *Grammar) Symbols() []Symbol { return g.symbols.Slice() }

// Nullable reports whether sym is a nonterminal that derives the empty
// string.
func (g *Grammar) Nullable(sym Symbol) bool { return g.nullable.Contains(sym) }

// NullableSet returns the nullable nonterminals, in the order the
// fixed-point passes found them to be nullable.
func (g *Grammar) NullableSet() []Symbol { return g.nullable.Slice() }

// First returns FIRST(sym): the terminals (plus Epsilon iff sym is
// nullable) that can start some string sym derives. For a terminal,
// First returns {sym}.
func (g *Grammar) First(sym Symbol) []Symbol {
	set, ok := g.first[sym]
	if !ok {
		return nil
	}
	return set.Slice()
}

// Follow returns FOLLOW(nonterm): the terminals that can immediately
// follow nonterm in some sentential form derivable from the start
// symbol, plus End iff nonterm can end the form.
func (g *Grammar) Follow(nonterm Symbol) []Symbol {
	set, ok := g.follow[nonterm]
	if !ok {
		return nil
	}
	return set.Slice()
}
