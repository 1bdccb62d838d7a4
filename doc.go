/*
Package gocyk is a toolbox for recognizing context-free languages with
a memoized CYK recognizer.

The Cocke–Younger–Kasami algorithm requires grammars in Chomsky Normal Form,
so the heavy lifting is done in two places: a grammar normalizer, rewriting
arbitrary grammars into CNF, and the recognizer itself. Package structure is
as follows:

■ grammar: Package grammar holds symbols, rules, vocabularies of terminals and
grammars, together with builders and an EBNF loader.

■ grammar/cnf: Package cnf transforms grammars into Chomsky Normal Form.

■ cyk: Package cyk implements the top-down memoized CYK recognizer.

■ tree: Package tree implements derivation trees, tree walking and the
back-translation of CNF derivations into source grammar derivations.

■ scanner: Package scanner defines the tokenizer interface the recognizer
consumes, with an adapter for lexmachine in sub-package lexmach.

■ sparse: Package sparse implements a sparse integer matrix, used as the memo
table of the recognizer.

■ arith: Package arith is a small arithmetic language, used for demos and tests.

■ cmd/gocyk: A command line tool to normalize grammars and print derivations.

The base package contains data types which are used throughout all the other packages.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package gocyk
