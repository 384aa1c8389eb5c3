// Package format renders earley.Node trees for consumption outside the
// library: a JSON encoder for tooling, and a plain-text dump for humans.
package format

import "github.com/earley-go/cfparse/earley"

// Encoder renders a parse tree to some external representation.
type Encoder interface {
	MarshalText(node *earley.Node) ([]byte, error)
	Encode(node *earley.Node) error
}
