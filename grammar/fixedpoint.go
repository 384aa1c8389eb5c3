package grammar

import "github.com/earley-go/cfparse/internal/ordered"

// computeNullable computes the set of nonterminals that derive the
// empty string by repeated passes until no pass adds anything: a
// production's LHS becomes nullable once every symbol of some
// alternative is itself nullable (the epsilon alternative trivially
// qualifies).
func (g *Grammar) computeNullable() {
	nullable := ordered.New[Symbol]()
	for {
		changed := false
		for _, p := range g.productions {
			if nullable.Contains(p.LHS) {
				continue
			}
			if p.IsEpsilon() {
				if nullable.Add(p.LHS) {
					changed = true
				}
				continue
			}
			allNullable := true
			for _, sym := range p.RHS {
				if !nullable.Contains(sym) {
					allNullable = false
					break
				}
			}
			if allNullable {
				if nullable.Add(p.LHS) {
					changed = true
				}
			}
		}
		if !changed {
			break
		}
	}
	g.nullable = nullable
}

// computeFirst computes FIRST(X) for every symbol X by fixed-point
// iteration: FIRST(terminal) = {terminal}; FIRST(nonterm) converges by
// walking each of its productions left to right, absorbing FIRST of
// each symbol (minus Epsilon) until a non-nullable symbol is hit, and
// adding Epsilon itself when the whole alternative is nullable.
func (g *Grammar) computeFirst() {
	first := make(map[Symbol]*ordered.Set[Symbol])
	for _, t := range g.terms.Slice() {
		s := ordered.New[Symbol]()
		s.Add(t)
		first[t] = s
	}
	for _, n := range g.nonterms.Slice() {
		first[n] = ordered.New[Symbol]()
	}

	for {
		changed := false
		for _, p := range g.productions {
			dst := first[p.LHS]
			if p.IsEpsilon() {
				if dst.Add(Epsilon) {
					changed = true
				}
				continue
			}
			brokeEarly := false
			for _, sym := range p.RHS {
				src := first[sym]
				if src == nil {
					continue
				}
				src.Each(func(s Symbol) {
					if s == Epsilon {
						return
					}
					if dst.Add(s) {
						changed = true
					}
				})
				if !g.nullable.Contains(sym) {
					brokeEarly = true
					break
				}
			}
			if !brokeEarly {
				if dst.Add(Epsilon) {
					changed = true
				}
			}
		}
		if !changed {
			break
		}
	}

	g.first = first
}

// computeFollow computes FOLLOW(N) for every nonterminal N by
// fixed-point iteration: FOLLOW(start) always contains End; for every
// production, a trailer set initialized to FOLLOW(LHS) is carried
// right to left across the RHS, feeding each nonterminal it passes and
// absorbing FIRST of whatever comes next (replacing the trailer
// outright once a non-nullable symbol is crossed).
func (g *Grammar) computeFollow() {
	follow := make(map[Symbol]*ordered.Set[Symbol])
	for _, n := range g.nonterms.Slice() {
		follow[n] = ordered.New[Symbol]()
	}
	follow[g.start].Add(End)

	for {
		changed := false
		for _, p := range g.productions {
			if p.IsEpsilon() {
				continue
			}
			trailer := ordered.New[Symbol]()
			follow[p.LHS].Each(func(s Symbol) { trailer.Add(s) })

			for i := len(p.RHS) - 1; i >= 0; i-- {
				sym := p.RHS[i]
				if g.nonterms.Contains(sym) {
					trailer.Each(func(s Symbol) {
						if follow[sym].Add(s) {
							changed = true
						}
					})
				}
				if g.nullable.Contains(sym) {
					if first := g.first[sym]; first != nil {
						first.Each(func(s Symbol) {
							if s != Epsilon {
								trailer.Add(s)
							}
						})
					}
				} else {
					next := ordered.New[Symbol]()
					if first := g.first[sym]; first != nil {
						first.Each(func(s Symbol) { next.Add(s) })
					}
					trailer = next
				}
			}
		}
		if !changed {
			break
		}
	}

	g.follow = follow
}
