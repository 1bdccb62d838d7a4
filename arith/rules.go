package arith

import (
	"fmt"
	"sync"

	"github.com/npillmayer/gocyk/grammar"
	"github.com/npillmayer/gocyk/grammar/cnf"
)

// Start is the start symbol of both grammars.
const Start = "expression"

// Rules1 is a right-recursive grammar for arithmetic expressions.
var Rules1 = []grammar.Production{
	{Head: "expression", Body: []string{"sum"}},
	{Head: "value", Body: []string{"(", "expression", ")"}},
	{Head: "value", Body: []string{"number"}},
	{Head: "value", Body: []string{"-", "value"}},
	{Head: "product", Body: []string{"value"}},
	{Head: "product", Body: []string{"value", "*", "product"}},
	{Head: "product", Body: []string{"value", "/", "product"}},
	{Head: "sum", Body: []string{"product"}},
	{Head: "sum", Body: []string{"product", "+", "sum"}},
	{Head: "sum", Body: []string{"product", "-", "sum"}},
}

// Rules2 is a grammar for arithmetic expressions with tail rules.
var Rules2 = []grammar.Production{
	{Head: "expression", Body: []string{"sum"}},
	{Head: "value", Body: []string{"(", "expression", ")"}},
	{Head: "value", Body: []string{"number"}},
	{Head: "value", Body: []string{"-", "value"}},
	{Head: "product", Body: []string{"value", "product*"}},
	{Head: "product*", Body: []string{"*", "value", "product*"}},
	{Head: "product*", Body: []string{"/", "value", "product*"}},
	{Head: "product*", Body: []string{"empty"}},
	{Head: "sum", Body: []string{"product", "sum*"}},
	{Head: "sum*", Body: []string{"+", "product", "sum*"}},
	{Head: "sum*", Body: []string{"-", "product", "sum*"}},
	{Head: "sum*", Body: []string{"empty"}},
}

// Grammar creates a grammar from rules, using the terminals of the lexer.
func Grammar(name string, rules []grammar.Production) (*grammar.Grammar, error) {
	lm, err := Lexer()
	if err != nil {
		return nil, err
	}
	return grammar.New(name, Start, lm.Vocabulary(), rules...)
}

// normalized grammars, by fingerprint of the source grammar and epsilon mode
var cnfCache sync.Map

// Normalized returns g in Chomsky Normal Form. Results are cached.
func Normalized(g *grammar.Grammar, mode cnf.EpsilonMode) (*grammar.Grammar, error) {
	key := fmt.Sprintf("%s/%s", g.Fingerprint(), mode)
	if c, ok := cnfCache.Load(key); ok {
		return c.(*grammar.Grammar), nil
	}
	c, err := cnf.Normalize(g, cnf.WithEpsilonMode(mode))
	if err != nil {
		return nil, err
	}
	tracer().Debugf("caching CNF grammar %s", key)
	cnfCache.Store(key, c)
	return c, nil
}
