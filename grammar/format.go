package grammar

import "strings"

// Dump renders g back to its canonical "LHS -> ALT1 | ALT2" textual
// form, one line per nonterminal, alternatives in declaration order.
func (g *Grammar) Dump() string {
	var b strings.Builder
	for i, nonterm := range g.nonterms.Slice() {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(string(nonterm))
		b.WriteString(" -> ")
		rules := g.rulesFor[nonterm]
		for j, p := range rules {
			if j > 0 {
				b.WriteString(" | ")
			}
			for k, sym := range p.RHS {
				if k > 0 {
					b.WriteByte(' ')
				}
				b.WriteString(string(sym))
			}
		}
	}
	return b.String()
}

func (g *Grammar) String() string {
	return g.Dump()
}
