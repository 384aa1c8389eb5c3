// Package earley implements an Earley recognizer and a backward-walk
// tree reconstructor over a grammar.Grammar and a stream of
// (name, raw) tokens.
package earley

import "github.com/earley-go/cfparse/grammar"

// Recognizer builds an Earley chart for a fixed grammar across
// repeated calls to Parse, one chart per call.
type Recognizer struct {
	g       *grammar.Grammar
	augProd *grammar.Production
}

// New returns a Recognizer for g. g is not copied or modified; it may
// be shared across many Recognizers and goroutines.
func New(g *grammar.Grammar) *Recognizer {
	return &Recognizer{g: g, augProd: augment(g)}
}

// augment builds the implicit S' -> S production, picking an LHS
// symbol guaranteed not to collide with any symbol already in g.
func augment(g *grammar.Grammar) *grammar.Production {
	seen := make(map[grammar.Symbol]bool)
	for _, sym := range g.Symbols() {
		seen[sym] = true
	}
	lhs := g.Start() + "'"
	for seen[lhs] {
		lhs += "'"
	}
	return &grammar.Production{LHS: lhs, RHS: []grammar.Symbol{g.Start()}, Serial: -1}
}

// Parse builds the chart for tokens and reports whether it is
// accepting. The returned chart is always populated, even on
// *ParseRejectedError, so callers can inspect partial progress.
func (r *Recognizer) Parse(tokens []Token) (*Chart, error) {
	n := len(tokens)
	chart := &Chart{columns: make([]*Column, n+1)}
	for i := range chart.columns {
		chart.columns[i] = newColumn()
	}

	start := Item{Prod: r.augProd, Dot: 0}
	chart.columns[0].insert(start, 0, 0, nil)

	for k := 0; k <= n; k++ {
		col := chart.columns[k]
		col.entries.EachMutable(func(e *Entry) {
			r.step(chart, tokens, n, k, e)
		})
	}

	if !r.accepts(chart, n) {
		return chart, parseRejected(n)
	}
	return chart, nil
}

// step applies nullable-shortcut/predict/scan/complete to entry e,
// which lives in column k.
func (r *Recognizer) step(chart *Chart, tokens []Token, n, k int, e *Entry) {
	item := e.Item

	if !item.IsReduce() {
		cur := item.Current()
		switch {
		case cur == grammar.Epsilon:
			// Nullable shortcut: the epsilon production completes in
			// the same column it was predicted in.
			chart.columns[k].insert(item.Advance(), k, k, e)
		case r.g.IsNonterminal(cur):
			for _, p := range r.g.RulesFor(cur) {
				chart.columns[k].insert(Item{Prod: p, Dot: 0}, k, k, e)
			}
		default:
			if k < n && grammar.Symbol(tokens[k].Name) == cur {
				chart.columns[k+1].insert(item.Advance(), e.Origin, k+1, e)
			}
		}
		return
	}

	// Complete: e is a reduce item for item.Prod.LHS. Re-scan its
	// origin column for entries expecting that symbol next.
	lhs := item.Prod.LHS
	origin := chart.columns[e.Origin]
	origin.entries.EachMutable(func(pe *Entry) {
		if pe.Item.IsReduce() || pe.Item.Current() != lhs {
			return
		}
		advanced, _ := chart.columns[k].insert(pe.Item.Advance(), pe.Origin, k, pe)
		advanced.addPredecessor(e)
	})
}

func (r *Recognizer) accepts(chart *Chart, n int) bool {
	want := Item{Prod: r.augProd, Dot: 1}
	for _, e := range chart.columns[n].Entries() {
		if e.Item == want && e.Origin == 0 {
			return true
		}
	}
	return false
}

// Accepts reports whether chart's last column contains the accepting
// entry S' -> S . at origin 0, for callers that built the chart
// themselves (e.g. after catching *ParseRejectedError) and only need
// the yes/no answer.
func (r *Recognizer) Accepts(chart *Chart) bool {
	return r.accepts(chart, chart.Len()-1)
}
