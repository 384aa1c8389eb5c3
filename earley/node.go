package earley

import "github.com/earley-go/cfparse/grammar"

// Node is one node of a reconstructed parse tree. Leaf nodes (no
// Children) carry either a terminal's raw lexeme or the epsilon
// symbol; internal nodes carry the production that produced them.
type Node struct {
	Symbol   grammar.Symbol
	Rule     *grammar.Production
	Raw      string
	Children []*Node
}

// IsLeaf reports whether n has no children.
func (n *Node) IsLeaf() bool {
	return len(n.Children) == 0
}

// Yield returns the raw lexemes of n's leaves, left to right, skipping
// epsilon leaves.
func (n *Node) Yield() []string {
	var out []string
	n.collectYield(&out)
	return out
}

func (n *Node) collectYield(out *[]string) {
	if n.IsLeaf() {
		if n.Symbol != grammar.Epsilon {
			*out = append(*out, n.Raw)
		}
		return
	}
	for _, c := range n.Children {
		c.collectYield(out)
	}
}
