package tree

import (
	"github.com/npillmayer/gocyk/grammar"
)

// Unfold translates a derivation tree for a CNF grammar g back into the shape
// of the grammar g has been normalized from:
//
// - nodes for terminal wrappers and binarization continuations are replaced
// by their children,
//
// - non-terminals elided by unit elimination are re-inserted as a chain of
// single-child nodes (with Rule = -1),
//
// - a root for the synthesized start symbol is removed if it has a single
// child.
//
// Nullable symbols dropped by empty-rule elimination are not restored.
// Unfold creates a new tree; cnfTree is left untouched.
func Unfold(cnfTree *Node, g *grammar.Grammar) *Node {
	if cnfTree == nil {
		return nil
	}
	nodes := unfold(cnfTree, g)
	if len(nodes) != 1 { // root has been spliced
		return NewInner(cnfTree.Symbol, cnfTree.Rule, nodes...)
	}
	root := nodes[0]
	if g.Origin(root.Symbol.Name) == grammar.StartSymbol && len(root.Children) == 1 {
		root = root.Children[0]
	}
	tracer().Debugf("unfolded tree = %v", root)
	return root
}

func unfold(n *Node, g *grammar.Grammar) []*Node {
	if n.Symbol.IsTerminal() || n.IsLeaf() && n.Rule < 0 {
		leaf := *n
		return []*Node{&leaf}
	}
	var children []*Node
	for _, ch := range n.Children {
		children = append(children, unfold(ch, g)...)
	}
	// wrap children into the chain of elided non-terminals, outermost first
	var via []grammar.Symbol
	if r := g.Rule(n.Rule); r != nil {
		via = r.Via()
	}
	for i := len(via) - 1; i >= 0; i-- {
		if isSplice(via[i], g) {
			continue
		}
		inner := &Node{Symbol: via[i], Rule: -1, Children: children, Extent: n.Extent}
		children = []*Node{inner}
	}
	if isSplice(n.Symbol, g) {
		return children
	}
	return []*Node{{
		Symbol:   n.Symbol,
		Rule:     n.Rule,
		Children: children,
		Extent:   n.Extent,
	}}
}

func isSplice(sym grammar.Symbol, g *grammar.Grammar) bool {
	o := g.Origin(sym.Name)
	return o == grammar.TerminalWrapper || o == grammar.Binarized
}
