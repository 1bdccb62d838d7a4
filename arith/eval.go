package arith

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/npillmayer/gocyk"
	"github.com/npillmayer/gocyk/cyk"
	"github.com/npillmayer/gocyk/grammar"
	"github.com/npillmayer/gocyk/grammar/cnf"
	"github.com/npillmayer/gocyk/scanner"
	"github.com/npillmayer/gocyk/tree"
)

// ErrNoMatch is returned for input which is not an arithmetic expression.
var ErrNoMatch = errors.New("input is not an arithmetic expression")

// Option configures Eval.
type Option func(*config)

type config struct {
	g       *grammar.Grammar
	rules   []grammar.Production
	mode    cnf.EpsilonMode
	modeSet bool
	memo    bool
}

// WithRules selects the grammar, Rules1 (default) or Rules2.
func WithRules(rules []grammar.Production) Option {
	return func(c *config) {
		c.rules = rules
	}
}

// WithGrammar evaluates with grammar g, e.g. a grammar loaded from an EBNF
// file. g has to use the terminals of Lexer and the non-terminal names of
// Rules1 or Rules2 for evaluation to work.
func WithGrammar(g *grammar.Grammar) Option {
	return func(c *config) {
		c.g = g
	}
}

// WithEpsilonMode selects the treatment of empty rules during normalization.
func WithEpsilonMode(mode cnf.EpsilonMode) Option {
	return func(c *config) {
		c.mode = mode
		c.modeSet = true
	}
}

// Memoize switches memoization of the recognizer on or off.
func Memoize(b bool) Option {
	return func(c *config) {
		c.memo = b
	}
}

// Result holds the intermediate results of an evaluation.
type Result struct {
	Value   float64
	CNF     *grammar.Grammar // normalized grammar
	CNFTree *tree.Node       // derivation for the CNF grammar
	Tree    *tree.Node       // derivation in the shape of the source grammar
	Stats   cyk.Stats
}

// Eval evaluates an arithmetic expression.
func Eval(input string, opts ...Option) (float64, error) {
	r, err := Evaluate(input, opts...)
	if err != nil {
		return 0, err
	}
	return r.Value, nil
}

// Evaluate evaluates an arithmetic expression and reports the intermediate
// results. Input which cannot be tokenized results in a scanner error, input
// not matching the grammar in ErrNoMatch.
func Evaluate(input string, opts ...Option) (*Result, error) {
	c := &config{rules: Rules1, memo: true}
	for _, opt := range opts {
		opt(c)
	}
	if !c.modeSet {
		c.mode = cnf.DefaultEpsilonMode()
	}
	g := c.g
	if g == nil {
		var err error
		if g, err = Grammar("arith", c.rules); err != nil {
			return nil, err
		}
	}
	cnfG, err := Normalized(g, c.mode)
	if err != nil {
		return nil, err
	}
	lm, err := Lexer()
	if err != nil {
		return nil, err
	}
	sc, err := lm.Scanner(input)
	if err != nil {
		return nil, err
	}
	tokens, err := scanner.Collect(sc)
	if err != nil {
		return nil, err
	}
	result := &Result{CNF: cnfG}
	result.CNFTree, result.Stats = cyk.NewRecognizer(cnfG, cyk.Memoize(c.memo)).Run(tokens)
	if result.CNFTree == nil {
		return result, fmt.Errorf("%q: %w", input, ErrNoMatch)
	}
	result.Tree = tree.Unfold(result.CNFTree, cnfG)
	result.Value = Number(tree.Walk(result.Tree, NewEvaluator()).Value)
	tracer().Debugf("%s = %g", input, result.Value)
	return result, nil
}

// --- Evaluator -------------------------------------------------------------

type reducer func(grammar.Symbol, []*tree.RuleNode) interface{}

// Evaluator is a tree.Listener computing the value of an arithmetic
// expression. It works on unfolded derivation trees of both Rules1 and Rules2.
type Evaluator struct {
	dispatch map[string]reducer
}

var _ tree.Listener = (*Evaluator)(nil)

// NewEvaluator creates an evaluating listener.
func NewEvaluator() *Evaluator {
	ev := &Evaluator{}
	ev.dispatch = map[string]reducer{
		"expression": ev.ReduceExpression,
		"value":      ev.ReduceValue,
		"sum":        ev.ReduceChain,
		"sum*":       ev.ReduceChain,
		"product":    ev.ReduceChain,
		"product*":   ev.ReduceChain,
	}
	return ev
}

// Reduce is part of the tree.Listener interface.
func (ev *Evaluator) Reduce(sym grammar.Symbol, rule int, rhs []*tree.RuleNode, span gocyk.Span, level int) interface{} {
	if r, ok := ev.dispatch[sym.Name]; ok {
		return r(sym, rhs)
	}
	tracer().Debugf("no reducer for %s", sym)
	if len(rhs) == 0 {
		return nil
	}
	return rhs[0].Value
}

// Terminal is part of the tree.Listener interface. Numbers evaluate to
// float64, operators and parentheses to their lexeme.
func (ev *Evaluator) Terminal(token gocyk.Token, level int) interface{} {
	if n, err := strconv.ParseFloat(token.Lexeme(), 64); err == nil {
		return n
	}
	return token.Lexeme()
}

// ReduceExpression evaluates expression ➞ sum.
func (ev *Evaluator) ReduceExpression(sym grammar.Symbol, rhs []*tree.RuleNode) interface{} {
	return Number(rhs[0].Value)
}

// ReduceValue evaluates number, ( expression ) and - value.
func (ev *Evaluator) ReduceValue(sym grammar.Symbol, rhs []*tree.RuleNode) interface{} {
	switch len(rhs) {
	case 1:
		return Number(rhs[0].Value)
	case 2:
		return -Number(rhs[1].Value)
	}
	return Number(rhs[1].Value)
}

// ReduceChain collects the operands of sum, sum*, product and product* into
// a chain, to be evaluated left to right. Chains of the same level (sum within
// sum, sum* within sum) are concatenated, chains of lower level are evaluated.
func (ev *Evaluator) ReduceChain(sym grammar.Symbol, rhs []*tree.RuleNode) interface{} {
	var c chain
	op := ""
	for _, node := range rhs {
		switch v := node.Value.(type) {
		case string:
			op = v
		case chain:
			if sameLevel(sym.Name, node.Symbol().Name) {
				c = c.extend(op, v)
			} else {
				c = c.push(op, v.value())
			}
			op = ""
		default:
			c = c.push(op, Number(v))
			op = ""
		}
	}
	return c
}

func sameLevel(a, b string) bool {
	return level(a) == level(b)
}

func level(name string) string {
	if l := len(name); l > 0 && name[l-1] == '*' {
		return name[:l-1]
	}
	return name
}

// Number converts a value computed by the Evaluator to a float64.
func Number(v interface{}) float64 {
	switch n := v.(type) {
	case float64:
		return n
	case chain:
		return n.value()
	}
	return 0
}

// chain is a sequence of operands, combined by left-associative operators.
// A chain for a tail rule starts with an operator.
type chain []term

type term struct {
	op  string
	val float64
}

func (c chain) push(op string, val float64) chain {
	return append(c, term{op: op, val: val})
}

func (c chain) extend(op string, other chain) chain {
	for i, t := range other {
		if i == 0 && op != "" {
			t.op = op
		}
		c = append(c, t)
	}
	return c
}

func (c chain) value() float64 {
	var acc float64
	for i, t := range c {
		if i == 0 && t.op == "" {
			acc = t.val
			continue
		}
		switch t.op {
		case "+", "":
			acc += t.val
		case "-":
			acc -= t.val
		case "*":
			acc *= t.val
		case "/":
			acc /= t.val
		}
	}
	return acc
}
