/*
Package tree implements derivation trees, as produced by the CYK recognizer.

A derivation tree for a grammar in Chomsky Normal Form is a binary tree: inner
nodes carry a non-terminal and the index of the rule applied, and have either
two non-terminal children or a single terminal child. Leafs carry the input
token they matched.

CNF trees are hard to read, as normalization introduced a lot of helper
non-terminals. Unfold translates a CNF tree back into the shape of the source
grammar:

    cnfTree := recognizer.Recognize(tokens)
    tree := tree.Unfold(cnfTree, cnfGrammar)

Clients may walk trees bottom-up with a Listener, similar to a parser
performing reductions:

    value := tree.Walk(tree, myListener).Value

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package tree

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'gocyk.tree'.
func tracer() tracing.Trace {
	return tracing.Select("gocyk.tree")
}
