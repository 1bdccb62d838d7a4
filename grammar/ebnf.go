package grammar

import (
	"fmt"
	"io"
	"sort"

	"golang.org/x/exp/ebnf"
)

// FromEBNF reads a grammar in EBNF notation (as understood by
// golang.org/x/exp/ebnf):
//
//     Sum     = Product { ( "+" | "-" ) Product } .
//     Product = Value [ "*" Product ] .
//     Value   = number | "(" Sum ")" .
//     Nothing = .
//
// Productions keep their source order. Every alternative becomes a rule of
// its own. Groups, options and repetitions are replaced by generated
// non-terminals, named after the enclosing production (Sum_1, Sum_2, …).
// Quoted tokens have to be terminals of voc; identifiers are classified by voc.
// Productions with an empty expression, as well as the identifier "empty",
// derive the empty string. Character ranges are not supported.
//
// If start is empty, the first production will be the start symbol.
func FromEBNF(name string, filename string, src io.Reader, start string, voc *Vocabulary) (*Grammar, error) {
	if voc == nil {
		voc = NewVocabulary()
	}
	eg, err := ebnf.Parse(filename, src)
	if err != nil {
		return nil, fmt.Errorf("grammar %s: %w", name, err)
	}
	prods := make([]*ebnf.Production, 0, len(eg))
	for _, p := range eg {
		prods = append(prods, p)
	}
	sort.Slice(prods, func(i, j int) bool {
		return prods[i].Pos().Offset < prods[j].Pos().Offset
	})
	conv := &ebnfConverter{
		voc:     voc,
		taken:   make(map[string]bool),
		counter: make(map[string]int),
	}
	for _, p := range prods {
		conv.taken[p.Name.String] = true
	}
	for _, p := range prods {
		if err := conv.production(p); err != nil {
			return nil, fmt.Errorf("grammar %s: %w", name, err)
		}
	}
	if start == "" && len(prods) > 0 {
		start = prods[0].Name.String
	}
	g := build(name, voc.Symbol(start), voc, conv.rules, nil)
	if err := g.validate(); err != nil {
		return nil, err
	}
	tracer().Infof("grammar %s loaded from %s with %d rules", name, filename, g.Size())
	return g, nil
}

type ebnfConverter struct {
	voc     *Vocabulary
	taken   map[string]bool
	counter map[string]int
	rules   []*Rule
	pending []*Rule // rules for generated non-terminals, appended after the owner
}

func (conv *ebnfConverter) production(p *ebnf.Production) error {
	head := conv.voc.Symbol(p.Name.String)
	if !head.IsNonTerminal() {
		return fmt.Errorf("%w: production %s is %s", ErrIllegalLHS, head, head.Kind)
	}
	conv.pending = conv.pending[:0]
	if p.Expr == nil {
		conv.rules = append(conv.rules, NewRule(head))
		return nil
	}
	for _, alt := range alternatives(p.Expr) {
		body, err := conv.sequence(head.Name, alt)
		if err != nil {
			return err
		}
		conv.rules = append(conv.rules, NewRule(head, body...))
	}
	conv.rules = append(conv.rules, conv.pending...)
	return nil
}

func alternatives(x ebnf.Expression) []ebnf.Expression {
	if alt, ok := x.(ebnf.Alternative); ok {
		return alt
	}
	return []ebnf.Expression{x}
}

func (conv *ebnfConverter) sequence(owner string, x ebnf.Expression) ([]Symbol, error) {
	items := []ebnf.Expression{x}
	if seq, ok := x.(ebnf.Sequence); ok {
		items = seq
	}
	body := make([]Symbol, 0, len(items))
	for _, item := range items {
		sym, err := conv.symbol(owner, item)
		if err != nil {
			return nil, err
		}
		body = append(body, sym)
	}
	return body, nil
}

func (conv *ebnfConverter) symbol(owner string, x ebnf.Expression) (Symbol, error) {
	switch e := x.(type) {
	case *ebnf.Name:
		return conv.voc.Symbol(e.String), nil
	case *ebnf.Token:
		sym := conv.voc.Symbol(e.String)
		if !sym.IsTerminal() {
			return sym, fmt.Errorf("%s: token %q is not a terminal", e.Pos(), e.String)
		}
		return sym, nil
	case *ebnf.Group:
		return conv.generate(owner, e.Body, false, false)
	case *ebnf.Option:
		return conv.generate(owner, e.Body, true, false)
	case *ebnf.Repetition:
		return conv.generate(owner, e.Body, true, true)
	case *ebnf.Range:
		return Symbol{}, fmt.Errorf("%s: character ranges are not supported", e.Pos())
	case *ebnf.Bad:
		return Symbol{}, fmt.Errorf("%s: %s", e.Pos(), e.Error)
	}
	return Symbol{}, fmt.Errorf("unsupported EBNF expression %T", x)
}

// generate creates a new non-terminal X for a sub-expression:
//
//     group       ( α | β )  ⇒  X ➞ α | β
//     option      [ α | β ]  ⇒  X ➞ α | β | empty
//     repetition  { α | β }  ⇒  X ➞ α X | β X | empty
//
func (conv *ebnfConverter) generate(owner string, body ebnf.Expression, optional, repeat bool) (Symbol, error) {
	x := N(conv.newName(owner))
	if body != nil {
		for _, alt := range alternatives(body) {
			rhs, err := conv.sequence(owner, alt)
			if err != nil {
				return x, err
			}
			if repeat {
				rhs = append(rhs, x)
			}
			conv.pending = append(conv.pending, NewRule(x, rhs...))
		}
	}
	if optional || body == nil {
		conv.pending = append(conv.pending, NewRule(x))
	}
	return x, nil
}

func (conv *ebnfConverter) newName(owner string) string {
	for {
		conv.counter[owner]++
		name := fmt.Sprintf("%s_%d", owner, conv.counter[owner])
		if !conv.taken[name] && !conv.voc.IsTerminal(name) {
			conv.taken[name] = true
			return name
		}
	}
}
