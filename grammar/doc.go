/*
Package grammar implements the vocabulary shared by the CNF normalizer and the
CYK recognizer: symbols, rules and grammars.

Symbols

A symbol is either a terminal, the reserved empty marker, or a non-terminal.
Terminal-ness is not a property of a grammar, but of the scanner which
produces the tokens. Terminals are therefore collected in a Vocabulary,
which is shared between scanner and grammar. Every identifier found in the
vocabulary is a terminal, "empty" denotes the empty string, everything else is
a non-terminal.

Building a Grammar

Grammars are specified either as a list of (head, body) pairs, or by using a
grammar builder object. Order of rules matters: rules sharing a head are
tried in sequence order during recognition.

Example:

    voc := grammar.NewVocabulary().Define("a", 1).Define("b", 2)
    b := grammar.NewBuilder("G", voc)
    b.LHS("S").N("A").T("a").End()  // S  ->  A a
    b.LHS("A").T("b").End()         // A  ->  b
    b.LHS("A").Epsilon()            // A  ->  empty
    g, err := b.Grammar()

This results in the following trivial grammar:

   g.Dump()

   0: [S] ::= [A a]
   1: [A] ::= [b]
   2: [A] ::= [empty]

Grammars are immutable. Transformations (see package cnf) create new grammars
by calling Rewrite on an existing one. Rewritten grammars remember which
non-terminals have been synthesized, and from which kind of transformation.

Grammars may also be loaded from EBNF files, see FromEBNF.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package grammar

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'gocyk.grammar'.
func tracer() tracing.Trace {
	return tracing.Select("gocyk.grammar")
}
