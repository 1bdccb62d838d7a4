/*
Package lexmach provides an adapter to use the lexmachine scanner generator with
the CYK recognizer of gocyk.

For more information on lexmachine, see e.g.
https://hackthology.com/how-to-tokenize-complex-strings-with-lexmachine.html

Lexmachine has to be initialized by providing regular expressions. Package
lexmach is very opinionated on how to do the setup of lexmachine: clients
provide an ordered list of named patterns. Every pattern not marked as Skip
becomes a terminal of the language, and token types are assigned in order,
starting with 1. The resulting terminal set is available as a
grammar.Vocabulary, to be used for grammar construction:

	patterns := []lexmach.Pattern{
		{Name: "number", Regex: `[0-9]+`},
		{Name: "+", Regex: lexmach.Literal("+")},
		{Name: "ws", Regex: `( |\t)+`, Skip: true},
	}
	LM, err := lexmach.NewLMAdapter(patterns)
	if err != nil {
		// do error handling
	}
	voc := LM.Vocabulary()   // number=1, +=2

A scanner is instantiated for each concrete input sequence.
The scanner implements the scanner.Tokenizer interface.

	scan, err := LM.Scanner("input string to tokenize")
	if err != nil {
		// do error handling
	}
	tokens, err := scanner.Collect(scan)

Input which does not match any pattern is reported to the scanner's error
handler as a *machines.UnconsumedInput.

________________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package lexmach
