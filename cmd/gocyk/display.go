package main

import (
	"fmt"

	"github.com/npillmayer/gocyk/grammar"
	"github.com/npillmayer/gocyk/tree"
	"github.com/pterm/pterm"
)

// We use pterm for moderately fancy output.
func initDisplay() {
	pterm.EnableDebugMessages()
	pterm.Info.Prefix = pterm.Prefix{
		Text:  "  >>",
		Style: pterm.NewStyle(pterm.BgCyan, pterm.FgBlack),
	}
	pterm.Error.Prefix = pterm.Prefix{
		Text:  "  Error",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}
}

func printError(err error) {
	pterm.Error.Println(err.Error())
}

func printRules(label string, g *grammar.Grammar) {
	pterm.Println(fmt.Sprintf("%s (start symbol %s)", label, g.Start()))
	for i, r := range g.Rules() {
		if g.IsSynthetic(r.LHS.Name) {
			pterm.Println(fmt.Sprintf("%4d  %s    %s", i, r, g.Origin(r.LHS.Name)))
			continue
		}
		pterm.Println(fmt.Sprintf("%4d  %s", i, r))
	}
}

func printTree(label string, root *tree.Node) {
	pterm.Println(label)
	if root == nil {
		pterm.Println("<no derivation>")
		return
	}
	ll := leveledNodes(root, pterm.LeveledList{}, 0)
	tracer().Debugf("|ll| = %d", len(ll))
	pterm.DefaultTree.WithRoot(pterm.NewTreeFromLeveledList(ll)).Render()
}

// leveledNodes flattens a derivation tree in pre-order, as pterm wants it.
func leveledNodes(n *tree.Node, ll pterm.LeveledList, level int) pterm.LeveledList {
	ll = append(ll, pterm.LeveledListItem{
		Level: level,
		Text:  nodeLabel(n),
	})
	for _, ch := range n.Children {
		ll = leveledNodes(ch, ll, level+1)
	}
	return ll
}

func nodeLabel(n *tree.Node) string {
	if n.Symbol.IsTerminal() && n.Token != nil {
		if lexeme := n.Token.Lexeme(); lexeme != n.Symbol.Name {
			return fmt.Sprintf("%s %q", n.Symbol.Name, lexeme)
		}
		return n.Symbol.Name
	}
	if n.Rule < 0 {
		return fmt.Sprintf("%s %v", n.Symbol.Name, n.Extent)
	}
	return fmt.Sprintf("%s %v  #%d", n.Symbol.Name, n.Extent, n.Rule)
}
