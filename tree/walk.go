package tree

import (
	"github.com/npillmayer/gocyk"
	"github.com/npillmayer/gocyk/grammar"
)

// Listener is a type for walking a derivation tree.
type Listener interface {
	Reduce(sym grammar.Symbol, rule int, rhs []*RuleNode, span gocyk.Span, level int) interface{}
	Terminal(token gocyk.Token, level int) interface{}
}

// RuleNode represents a node occuring during a tree walk.
type RuleNode struct {
	sym    grammar.Symbol
	Extent gocyk.Span  // span of input symbols this rule reduced
	Value  interface{} // user defined value
}

// Symbol returns the grammar symbol a RuleNode refers to.
// It is either a terminal or the LHS of a reduced rule.
func (rnode *RuleNode) Symbol() grammar.Symbol {
	return rnode.sym
}

// Walk walks a derivation tree depth-first, left to right. It calls the
// listener for every terminal and, after its children, for every
// non-terminal. Values returned by the listener are stored in the RuleNodes
// handed to the parent's Reduce.
func Walk(root *Node, listener Listener) *RuleNode {
	if root == nil {
		return nil
	}
	return walk(root, listener, 0)
}

func walk(n *Node, listener Listener, level int) *RuleNode {
	rnode := &RuleNode{sym: n.Symbol, Extent: n.Extent}
	if n.Symbol.IsTerminal() {
		rnode.Value = listener.Terminal(n.Token, level)
		return rnode
	}
	rhs := make([]*RuleNode, len(n.Children))
	for i, ch := range n.Children {
		rhs[i] = walk(ch, listener, level+1)
	}
	rnode.Value = listener.Reduce(n.Symbol, n.Rule, rhs, n.Extent, level)
	return rnode
}
