/*
Package cyk implements a recognizer for grammars in Chomsky Normal Form,
using a top-down, memoizing variant of the Cocke–Younger–Kasami algorithm.

The classical CYK algorithm fills a table bottom-up, holding for every span
of the input the set of non-terminals deriving it. This package instead
searches top-down: recognizing a span of length L at offset O with a rule
A ➞ B C tries every split of the span into a left and right part, longest
left part first, and recursively tries the rules for B on the left part and
the rules for C on the right part. Rules are tried in grammar order and the
first success wins, i.e. the recognizer returns a single derivation and is
not ambiguity-aware.

Results are memoized per (span length, span offset, rule index), failures
included. Every such triple is computed at most once per recognition.

	g, _ := cnf.Normalize(myGrammar)
	R := cyk.NewRecognizer(g)
	derivation := R.Recognize(tokens)   // nil for no-match

Recognizers do not hold state between recognitions and may be shared between
goroutines.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package cyk

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'gocyk.cyk'.
func tracer() tracing.Trace {
	return tracing.Select("gocyk.cyk")
}
