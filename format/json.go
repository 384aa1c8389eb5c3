package format

import (
	"encoding/json"
	"io"

	"github.com/earley-go/cfparse/earley"
)

// JSONEncoder writes a tree as indented JSON.
type JSONEncoder struct {
	w io.Writer
}

// NewJSONEncoder returns an Encoder that writes to w.
func NewJSONEncoder(w io.Writer) *JSONEncoder {
	return &JSONEncoder{w: w}
}

func (e *JSONEncoder) Encode(node *earley.Node) error {
	text, err := e.MarshalText(node)
	if err != nil {
		return err
	}
	_, err = e.w.Write(text)
	return err
}

func (e *JSONEncoder) MarshalText(node *earley.Node) ([]byte, error) {
	return json.MarshalIndent(nodeToJSON(node), "", "  ")
}

type jsonNode struct {
	Symbol   string      `json:"symbol"`
	Rule     string      `json:"rule,omitempty"`
	Raw      string      `json:"raw,omitempty"`
	Children []*jsonNode `json:"children,omitempty"`
}

func nodeToJSON(n *earley.Node) *jsonNode {
	jn := &jsonNode{Symbol: string(n.Symbol)}

	if n.Rule != nil {
		jn.Rule = n.Rule.String()
	}
	if n.IsLeaf() {
		jn.Raw = n.Raw
		return jn
	}

	jn.Children = make([]*jsonNode, len(n.Children))
	for i, child := range n.Children {
		jn.Children[i] = nodeToJSON(child)
	}
	return jn
}

var _ Encoder = &JSONEncoder{}
