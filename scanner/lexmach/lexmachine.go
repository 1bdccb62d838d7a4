package lexmach

import (
	"fmt"
	"strings"

	"github.com/npillmayer/gocyk"
	"github.com/npillmayer/gocyk/grammar"
	"github.com/npillmayer/gocyk/scanner"
	"github.com/npillmayer/schuko/tracing"

	"github.com/timtadh/lexmachine"
	"github.com/timtadh/lexmachine/machines"
)

// tracer traces with key 'gocyk.scanner'.
func tracer() tracing.Trace {
	return tracing.Select("gocyk.scanner")
}

// Pattern is a named regular expression for lexmachine. Matches of patterns
// with Skip set are dropped from the token stream.
type Pattern struct {
	Name  string
	Regex string
	Skip  bool
}

// Literal quotes every character of s, to be used as a lexmachine regular
// expression matching s literally.
func Literal(s string) string {
	return "\\" + strings.Join(strings.Split(s, ""), "\\")
}

// LMAdapter is a lexmachine adapter to use lexmachine as a scanner.
type LMAdapter struct {
	Lexer *lexmachine.Lexer
	voc   *grammar.Vocabulary
}

// NewLMAdapter creates a new lexmachine adapter from an ordered list of
// patterns. If two patterns match input of the same length, the one earlier
// in the list wins.
//
// NewLMAdapter will return an error if compiling the DFA failed.
func NewLMAdapter(patterns []Pattern) (*LMAdapter, error) {
	adapter := &LMAdapter{
		Lexer: lexmachine.NewLexer(),
		voc:   grammar.NewVocabulary(),
	}
	var id gocyk.TokType
	for _, p := range patterns {
		if p.Skip {
			adapter.Lexer.Add([]byte(p.Regex), Skip)
			continue
		}
		if p.Name == grammar.EmptyName || p.Name == "" {
			return nil, fmt.Errorf("illegal token name %q", p.Name)
		}
		id++
		adapter.voc.Define(p.Name, id)
		adapter.Lexer.Add([]byte(p.Regex), MakeToken(p.Name, int(id)))
	}
	if err := adapter.Lexer.Compile(); err != nil {
		tracer().Errorf("Error compiling DFA: %v", err)
		return nil, err
	}
	return adapter, nil
}

// Vocabulary returns the terminals of the scanner, one for every non-skip
// pattern.
func (lm *LMAdapter) Vocabulary() *grammar.Vocabulary {
	return lm.voc
}

// Scanner creates a scanner for a given input. The scanner will implement the
// Tokenizer interface.
func (lm *LMAdapter) Scanner(input string) (*LMScanner, error) {
	s, err := lm.Lexer.Scanner([]byte(input))
	if err != nil {
		return &LMScanner{}, err
	}
	return &LMScanner{s, logError}, nil
}

// LMScanner is a scanner type for lexmachine scanners, implementing the
// Tokenizer interface.
type LMScanner struct {
	scanner *lexmachine.Scanner
	Error   func(error)
}

var _ scanner.Tokenizer = (*LMScanner)(nil)

// SetErrorHandler sets an error handler for the scanner.
func (lms *LMScanner) SetErrorHandler(h func(error)) {
	if h == nil {
		lms.Error = logError
		return
	}
	lms.Error = h
}

// Default error reporting function for lexmachine-based scanners
func logError(e error) {
	tracer().Errorf("scanner error: " + e.Error())
}

// NextToken is part of the Tokenizer interface. Unmatched input is reported to
// the error handler and skipped. Token spans are byte offsets into the input.
func (lms *LMScanner) NextToken() gocyk.Token {
	tok, err, eof := lms.scanner.Next()
	for err != nil {
		lms.Error(err)
		if ui, is := err.(*machines.UnconsumedInput); is {
			tc := ui.FailTC
			if tc <= ui.StartTC { // always make progress
				tc = ui.StartTC + 1
			}
			lms.scanner.TC = tc
		}
		tok, err, eof = lms.scanner.Next()
	}
	if eof {
		return scanner.MakeDefaultToken(scanner.EOF, "", gocyk.Span{0, 0})
	}
	token := tok.(*lexmachine.Token)
	tracer().Debugf("token %q|%d", token.Lexeme, token.Type)
	start := uint64(token.TC)
	return scanner.MakeDefaultToken(
		gocyk.TokType(token.Type),
		string(token.Lexeme),
		gocyk.Span{start, start + uint64(len(token.Lexeme))},
	)
}

// ---------------------------------------------------------------------------

// Skip is a pre-defined action which ignores the scanned match.
func Skip(*lexmachine.Scanner, *machines.Match) (interface{}, error) {
	return nil, nil
}

// MakeToken is a pre-defined action which wraps a scanned match into a token.
func MakeToken(name string, id int) lexmachine.Action {
	return func(s *lexmachine.Scanner, m *machines.Match) (interface{}, error) {
		return s.Token(id, string(m.Bytes), m), nil
	}
}
