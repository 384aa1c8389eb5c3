package format

import (
	"fmt"
	"io"
	"strings"

	"github.com/earley-go/cfparse/earley"
)

// TextEncoder writes a tree as an indented s-expression-flavoured dump,
// one line per node, for humans reading a terminal.
type TextEncoder struct {
	w io.Writer
}

// NewTextEncoder returns an Encoder that writes to w.
func NewTextEncoder(w io.Writer) *TextEncoder {
	return &TextEncoder{w: w}
}

func (e *TextEncoder) Encode(node *earley.Node) error {
	text, err := e.MarshalText(node)
	if err != nil {
		return err
	}
	_, err = e.w.Write(text)
	return err
}

func (e *TextEncoder) MarshalText(node *earley.Node) ([]byte, error) {
	var b strings.Builder
	writeNode(&b, node, 0)
	return []byte(b.String()), nil
}

func writeNode(b *strings.Builder, n *earley.Node, depth int) {
	b.WriteString(strings.Repeat("  ", depth))
	if n.IsLeaf() {
		if n.Raw != "" {
			fmt.Fprintf(b, "%s %q\n", n.Symbol, n.Raw)
		} else {
			fmt.Fprintf(b, "%s\n", n.Symbol)
		}
		return
	}
	fmt.Fprintf(b, "%s\n", n.Symbol)
	for _, c := range n.Children {
		writeNode(b, c, depth+1)
	}
}

var _ Encoder = &TextEncoder{}
