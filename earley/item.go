package earley

import (
	"fmt"

	"github.com/earley-go/cfparse/grammar"
)

// Item is a dotted item: a production together with a position marker
// showing how much of its RHS has been matched so far.
type Item struct {
	Prod *grammar.Production
	Dot  int
}

// IsReduce reports whether the dot sits at the end of the RHS.
func (it Item) IsReduce() bool {
	return it.Dot >= len(it.Prod.RHS)
}

// Current returns the symbol immediately after the dot. Callers must
// not call Current on a reduce item.
func (it Item) Current() grammar.Symbol {
	return it.Prod.RHS[it.Dot]
}

// Advance returns the item with the dot moved one symbol to the right.
func (it Item) Advance() Item {
	return Item{Prod: it.Prod, Dot: it.Dot + 1}
}

// IsEpsilon reports whether this item represents the (already complete)
// epsilon production of its LHS.
func (it Item) IsEpsilon() bool {
	return it.Prod.IsEpsilon() && it.Dot == 1
}

func (it Item) String() string {
	out := string(it.Prod.LHS) + " ->"
	for i, sym := range it.Prod.RHS {
		if i == it.Dot {
			out += " •"
		}
		out += " " + string(sym)
	}
	if it.Dot == len(it.Prod.RHS) {
		out += " •"
	}
	return out
}

func (it Item) key() itemKey {
	return itemKey{prod: it.Prod, dot: it.Dot}
}

type itemKey struct {
	prod *grammar.Production
	dot  int
}

var _ fmt.Stringer = Item{}
