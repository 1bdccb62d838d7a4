package arith

import (
	"sync"

	"github.com/npillmayer/gocyk/scanner/lexmach"
)

// Patterns are the token patterns of arithmetic expressions, in order of
// priority.
var Patterns = []lexmach.Pattern{
	{Name: "number", Regex: `[0-9]+(\.[0-9]*)?`},
	{Name: "+", Regex: lexmach.Literal("+")},
	{Name: "-", Regex: lexmach.Literal("-")},
	{Name: "*", Regex: lexmach.Literal("*")},
	{Name: "/", Regex: lexmach.Literal("/")},
	{Name: "(", Regex: lexmach.Literal("(")},
	{Name: ")", Regex: lexmach.Literal(")")},
	{Name: "ws", Regex: `( |\t|\n|\r)+`, Skip: true},
}

var lexer struct {
	once sync.Once
	lm   *lexmach.LMAdapter
	err  error
}

// Lexer returns the scanner generator for arithmetic expressions. The DFA is
// compiled on first use.
func Lexer() (*lexmach.LMAdapter, error) {
	lexer.once.Do(func() {
		lexer.lm, lexer.err = lexmach.NewLMAdapter(Patterns)
	})
	return lexer.lm, lexer.err
}
