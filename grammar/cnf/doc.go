/*
Package cnf transforms context-free grammars into Chomsky Normal Form (CNF).

A grammar in CNF has rules of two shapes only:

    A ➞ a       (a single terminal)
    A ➞ B C     (exactly two non-terminals)

The CYK recognizer of package cyk depends on this property. Normalization runs
five passes, in this order:

    START   introduce a new start symbol S' ➞ S
    TERM    isolate terminals within longer right hand sides
    BIN     split right hand sides longer than 2 into chains of binary rules
    DEL     eliminate rules deriving the empty string
    UNIT    eliminate rules A ➞ B

Each pass is a function from a grammar to a new grammar. Grammars are
immutable, so every pass may be tested in isolation:

    g1 := cnf.EliminateStart(g)
    g2 := cnf.IsolateTerminals(g1)
    …

Clients usually just call Normalize:

    cnfG, err := cnf.Normalize(g)

Non-terminals introduced by the passes get fresh names, derived from a base name
by appending or incrementing a numeric suffix (sum ⇒ sum0 ⇒ sum1 …). Fresh names
never collide with terminals, non-terminals or the empty marker.

Empty Rules

There are two ways of dealing with empty rules, selected by EpsilonMode.
DropEmpty discards all rules A ➞ empty once the nullable variants of every
rule have been created. RetainEmpty removes non-terminals which derive nothing
but the empty string transitively, and keeps a rule S' ➞ empty for the start
symbol, if the language contains the empty string. The default is taken from
configuration key "cnf-epsilon-mode" ("drop" or "retain") and is DropEmpty if
unset.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package cnf

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'gocyk.cnf'.
func tracer() tracing.Trace {
	return tracing.Select("gocyk.cnf")
}
