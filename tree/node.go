package tree

import (
	"bytes"

	"github.com/npillmayer/gocyk"
	"github.com/npillmayer/gocyk/grammar"
)

// Node is a node of a derivation tree. Nodes own their children.
type Node struct {
	Symbol   grammar.Symbol // terminal or non-terminal
	Rule     int            // index of the rule applied, -1 for leafs and elided non-terminals
	Token    gocyk.Token    // input token for terminal leafs
	Children []*Node        // ordered children
	Extent   gocyk.Span     // input positions covered
}

// NewLeaf creates a terminal node for an input token at position pos.
func NewLeaf(sym grammar.Symbol, token gocyk.Token, pos uint64) *Node {
	return &Node{
		Symbol: sym,
		Rule:   -1,
		Token:  token,
		Extent: gocyk.Span{pos, pos + 1},
	}
}

// NewInner creates a non-terminal node for a rule application. The extent
// of the node is set from the children, if any.
func NewInner(sym grammar.Symbol, rule int, children ...*Node) *Node {
	n := &Node{Symbol: sym, Rule: rule, Children: children}
	for i, ch := range children {
		if i == 0 {
			n.Extent = ch.Extent
		} else {
			n.Extent = n.Extent.Extend(ch.Extent)
		}
	}
	return n
}

// IsLeaf is true for nodes without children.
func (n *Node) IsLeaf() bool {
	return len(n.Children) == 0
}

// Size returns the number of nodes of the tree rooted at n.
func (n *Node) Size() int {
	if n == nil {
		return 0
	}
	size := 1
	for _, ch := range n.Children {
		size += ch.Size()
	}
	return size
}

// Equals compares two trees structurally: symbols, rules, extents and the
// token types of leafs.
func (n *Node) Equals(other *Node) bool {
	if n == nil || other == nil {
		return n == other
	}
	if n.Symbol != other.Symbol || n.Rule != other.Rule || n.Extent != other.Extent {
		return false
	}
	if (n.Token == nil) != (other.Token == nil) {
		return false
	}
	if n.Token != nil && n.Token.TokType() != other.Token.TokType() {
		return false
	}
	if len(n.Children) != len(other.Children) {
		return false
	}
	for i, ch := range n.Children {
		if !ch.Equals(other.Children[i]) {
			return false
		}
	}
	return true
}

// String renders a tree as an s-expression, e.g.
//
//     (sum (product (value 2)) + (sum (product (value 3))))
//
// Terminals are rendered by their lexeme.
func (n *Node) String() string {
	var b bytes.Buffer
	n.render(&b)
	return b.String()
}

func (n *Node) render(b *bytes.Buffer) {
	if n == nil {
		b.WriteString("<nil>")
		return
	}
	if n.Symbol.IsTerminal() {
		if n.Token != nil {
			b.WriteString(n.Token.Lexeme())
		} else {
			b.WriteString(n.Symbol.Name)
		}
		return
	}
	b.WriteString("(")
	b.WriteString(n.Symbol.Name)
	for _, ch := range n.Children {
		b.WriteString(" ")
		ch.render(b)
	}
	b.WriteString(")")
}
