/*
Package scanner defines an interface for scanners to be used with the CYK
recognizer of package cyk.

A default scanner implementation is provided as an adapter for lexmachine,
living in sub-package `lexmach`.

The recognizer needs random access to the input tokens, so the lazy token
stream of a Tokenizer is drained into a slice first, using Collect.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package scanner

import (
	"fmt"

	"github.com/npillmayer/gocyk"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'gocyk.scanner'.
func tracer() tracing.Trace {
	return tracing.Select("gocyk.scanner")
}

// EOF is the token type signalling the end of input.
const EOF gocyk.TokType = -1

// Tokenizer is a scanner interface.
type Tokenizer interface {
	NextToken() gocyk.Token
	SetErrorHandler(func(error))
}

// Collect reads tokens from t until EOF. It installs an error handler on t;
// on the first error reported by t, reading stops and the error is returned
// (wrapped), together with the tokens read so far.
func Collect(t Tokenizer) ([]gocyk.Token, error) {
	var lexerr error
	t.SetErrorHandler(func(err error) {
		if lexerr == nil {
			lexerr = err
		}
	})
	var tokens []gocyk.Token
	for {
		token := t.NextToken()
		if lexerr != nil {
			tracer().Errorf("scanner error after %d tokens: %v", len(tokens), lexerr)
			return tokens, fmt.Errorf("cannot tokenize input: %w", lexerr)
		}
		if token.TokType() == EOF {
			break
		}
		tokens = append(tokens, token)
	}
	tracer().Debugf("collected %d tokens", len(tokens))
	return tokens, nil
}

// --- Default tokens --------------------------------------------------------

// DefaultToken is a very unsophisticated token type, used as default for the
// LexMachine scanner.
type DefaultToken struct {
	kind   gocyk.TokType
	lexeme string
	Val    interface{}
	span   gocyk.Span
}

// MakeDefaultToken creates a token without a value.
func MakeDefaultToken(typ gocyk.TokType, lexeme string, span gocyk.Span) DefaultToken {
	return DefaultToken{
		kind:   typ,
		lexeme: lexeme,
		span:   span,
	}
}

func (t DefaultToken) TokType() gocyk.TokType {
	return t.kind
}

func (t DefaultToken) Value() interface{} {
	return t.Val
}

func (t DefaultToken) Lexeme() string {
	return t.lexeme
}

func (t DefaultToken) Span() gocyk.Span {
	return t.span
}

func (t DefaultToken) String() string {
	return fmt.Sprintf("%q|%d", t.lexeme, t.kind)
}
