/*
Package arith is a small language of arithmetic expressions, built with the
packages of gocyk. It serves as an example of the whole pipeline: a lexmachine
scanner, a grammar, normalization to CNF, CYK recognition, unfolding of the
derivation tree and evaluation by a tree listener.

	v, err := arith.Eval("(2+3)*4")   // v = 20

There are two grammars for the language, Rules1 and Rules2. Rules1 uses
right recursion:

	sum ➞ product | product + sum | product - sum

Rules2 uses tail rules with empty alternatives:

	sum  ➞ product sum*
	sum* ➞ + product sum* | - product sum* | empty

Both evaluate operators of equal precedence from left to right, i.e.
1-2-3 = -4 with either grammar.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package arith

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'gocyk.arith'.
func tracer() tracing.Trace {
	return tracing.Select("gocyk.arith")
}
