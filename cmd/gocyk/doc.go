/*
Command gocyk is a command line tool for experiments with the CYK
recognizer. It normalizes grammars into Chomsky Normal Form, parses
arithmetic expressions and prints derivation trees, and offers an
interactive mode.

	gocyk normalize --rules 2
	gocyk parse --epsilon retain "(2+3)*4"
	gocyk repl --trace Debug

Grammars are either one of the built-in arithmetic grammars (--rules 1,
--rules 2) or an EBNF file using the terminals of the arithmetic lexer
(--rules testdata/arith.ebnf).

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package main

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'gocyk.cli'.
func tracer() tracing.Trace {
	return tracing.Select("gocyk.cli")
}

// trace keys of all the packages, for adjusting trace levels in one go
var traceKeys = []string{
	"gocyk.cli",
	"gocyk.grammar",
	"gocyk.cnf",
	"gocyk.cyk",
	"gocyk.tree",
	"gocyk.scanner",
	"gocyk.arith",
}
