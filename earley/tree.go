package earley

import "github.com/earley-go/cfparse/grammar"

// Reconstruct walks chart backwards from the accepting entry in its
// last column and builds the single parse tree that the chart-
// construction order prefers: insertion order
// breaks every tie, so earlier grammar alternatives and earlier
// predecessors always win.
//
// Reconstruct requires a chart produced by a successful Parse; passing
// a chart whose last column has no S' -> S . entry at origin 0 is a
// programmer error and returns *ParseRejectedError.
func Reconstruct(g *grammar.Grammar, r *Recognizer, chart *Chart, tokens []Token) (*Node, error) {
	n := chart.Len() - 1
	accepting := findAccepting(chart, r.augProd, n)
	if accepting == nil {
		return nil, parseRejected(n)
	}

	rec := &reconstructor{g: g, tokens: tokens, pos: len(tokens)}
	root, ok := rec.buildReduceNode(accepting)
	if !ok {
		return nil, internalError("no predecessor chain reconstructs the accepted derivation")
	}
	if rec.pos != 0 {
		return nil, internalError("reconstruction left %d unconsumed tokens", rec.pos)
	}
	if len(root.Children) != 1 {
		return nil, internalError("augmented root has %d children, want 1", len(root.Children))
	}
	return root.Children[0], nil
}

func findAccepting(chart *Chart, augProd *grammar.Production, n int) *Entry {
	want := Item{Prod: augProd, Dot: 1}
	for _, e := range chart.Column(n).Entries() {
		if e.Item == want && e.Origin == 0 {
			return e
		}
	}
	return nil
}

// reconstructor walks the chart's predecessor links backwards over the
// input, consuming tokens from the end. pos is the index of the next
// (rightmost unconsumed) token.
type reconstructor struct {
	g      *grammar.Grammar
	tokens []Token
	pos    int
}

// buildReduceNode builds the node for the production that produced
// reduce entry e, trying alternate predecessors on failure per the
// chart's insertion order (earlier candidates are preferred; later
// ones are only tried if every earlier choice fails to extend to a
// full derivation).
func (r *reconstructor) buildReduceNode(e *Entry) (*Node, bool) {
	prod := e.Item.Prod
	if e.Item.IsEpsilon() {
		return &Node{Symbol: prod.LHS, Rule: prod, Children: []*Node{leafEpsilon()}}, true
	}
	rhs := prod.RHS
	children, ok := r.unwind(rhs, len(rhs)-1, e)
	if !ok {
		return nil, false
	}
	return &Node{Symbol: prod.LHS, Rule: prod, Children: children}, true
}

// unwind reconstructs children[0:idx+1] of cur's production, where cur
// is the entry standing just after rhs[idx] has been matched. It
// returns those children in left-to-right order.
func (r *reconstructor) unwind(rhs []grammar.Symbol, idx int, cur *Entry) ([]*Node, bool) {
	if idx < 0 {
		return nil, true
	}
	sym := rhs[idx]

	if r.g.IsTerminal(sym) {
		for _, pe := range cur.Predecessors() {
			if !isPreAdvance(pe, cur) {
				continue
			}
			save := r.pos
			leaf := r.consumeTerminal(sym)
			rest, ok := r.unwind(rhs, idx-1, pe)
			if ok {
				return append(rest, leaf), true
			}
			r.pos = save
		}
		return nil, false
	}

	for _, yred := range cur.Predecessors() {
		if !yred.Item.IsReduce() || yred.Item.Prod.LHS != sym {
			continue
		}
		save := r.pos
		child, ok := r.buildReduceNode(yred)
		if !ok {
			r.pos = save
			continue
		}
		for _, pe := range cur.Predecessors() {
			if !isPreAdvance(pe, cur) {
				continue
			}
			save2 := r.pos
			rest, ok2 := r.unwind(rhs, idx-1, pe)
			if ok2 {
				return append(rest, child), true
			}
			r.pos = save2
		}
		r.pos = save
	}
	return nil, false
}

func isPreAdvance(pe, cur *Entry) bool {
	return pe.Item.Prod == cur.Item.Prod && pe.Item.Dot == cur.Item.Dot-1 && pe.Origin == cur.Origin
}

func (r *reconstructor) consumeTerminal(sym grammar.Symbol) *Node {
	r.pos--
	return &Node{Symbol: sym, Raw: r.tokens[r.pos].Raw}
}

func leafEpsilon() *Node {
	return &Node{Symbol: grammar.Epsilon}
}
