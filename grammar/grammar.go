package grammar

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/cnf/structhash"
)

// Errors for grammar construction.
var (
	ErrNoRules        = errors.New("grammar has no rules")
	ErrUndefinedStart = errors.New("start symbol has no rules")
	ErrIllegalLHS     = errors.New("illegal left hand side")
)

// Origin tells where a non-terminal comes from. Non-terminals of grammars
// created by clients are Declared. Transformations into Chomsky Normal Form
// synthesize non-terminals and record their origin.
type Origin int8

// Origins of non-terminals.
const (
	Declared        Origin = iota // introduced by the grammar author
	StartSymbol                   // new start symbol S' ➞ S
	TerminalWrapper               // T ➞ t, isolating a terminal from a longer RHS
	Binarized                     // continuation of a RHS split into binary rules
)

func (o Origin) String() string {
	switch o {
	case Declared:
		return "declared"
	case StartSymbol:
		return "start"
	case TerminalWrapper:
		return "terminal-wrapper"
	case Binarized:
		return "binarized"
	}
	return fmt.Sprintf("Origin(%d)", int(o))
}

// Production is a plain (head, body) pair, as supplied by grammar authors.
// Identifiers are classified by a Vocabulary.
type Production struct {
	Head string
	Body []string
}

// Grammar is an immutable context-free grammar: a start symbol and an ordered
// sequence of rules.
type Grammar struct {
	Name    string
	start   Symbol
	rules   []*Rule
	voc     *Vocabulary
	origins map[string]Origin
	heads   map[string][]int // rule indices by LHS name
}

// New creates a grammar from (head, body) pairs. Identifiers within bodies are
// classified by voc.
//
//     g, err := grammar.New("G", "S", voc, []grammar.Production{
//         {Head: "S", Body: []string{"A", "a"}},
//         {Head: "A", Body: []string{"b"}},
//         {Head: "A", Body: []string{"empty"}},
//     }...)
//
func New(name string, start string, voc *Vocabulary, prods ...Production) (*Grammar, error) {
	if voc == nil {
		voc = NewVocabulary()
	}
	rules := make([]*Rule, 0, len(prods))
	for _, p := range prods {
		lhs := voc.Symbol(p.Head)
		body := make([]Symbol, len(p.Body))
		for i, name := range p.Body {
			body[i] = voc.Symbol(name)
		}
		rules = append(rules, NewRule(lhs, body...))
	}
	g := build(name, voc.Symbol(start), voc, rules, nil)
	if err := g.validate(); err != nil {
		return nil, err
	}
	return g, nil
}

func build(name string, start Symbol, voc *Vocabulary, rules []*Rule, origins map[string]Origin) *Grammar {
	g := &Grammar{
		Name:    name,
		start:   start,
		rules:   rules,
		voc:     voc,
		origins: origins,
		heads:   make(map[string][]int),
	}
	if g.origins == nil {
		g.origins = make(map[string]Origin)
	}
	for i, r := range rules {
		g.heads[r.LHS.Name] = append(g.heads[r.LHS.Name], i)
	}
	return g
}

func (g *Grammar) validate() error {
	if len(g.rules) == 0 {
		return fmt.Errorf("grammar %s: %w", g.Name, ErrNoRules)
	}
	for _, r := range g.rules {
		if !r.LHS.IsNonTerminal() {
			return fmt.Errorf("grammar %s: %w: %s is %s", g.Name, ErrIllegalLHS, r.LHS, r.LHS.Kind)
		}
	}
	if !g.start.IsNonTerminal() || len(g.heads[g.start.Name]) == 0 {
		return fmt.Errorf("grammar %s: %w: %s", g.Name, ErrUndefinedStart, g.start)
	}
	for _, r := range g.rules {
		for _, s := range r.rhs {
			if s.IsNonTerminal() && len(g.heads[s.Name]) == 0 {
				tracer().Infof("grammar %s: non-terminal %s has no rules", g.Name, s)
			}
		}
	}
	return nil
}

// Rewrite creates a new grammar with the vocabulary of g, but a new start
// symbol and rule set. Origins of synthesized non-terminals are inherited from
// g; additional ones may be given. The rule slice is owned by the new grammar
// and must not be modified by the caller afterwards.
func (g *Grammar) Rewrite(start Symbol, rules []*Rule, origins map[string]Origin) *Grammar {
	o := make(map[string]Origin, len(g.origins)+len(origins))
	for k, v := range g.origins {
		o[k] = v
	}
	for k, v := range origins {
		o[k] = v
	}
	return build(g.Name, start, g.voc, rules, o)
}

// Start returns the start symbol.
func (g *Grammar) Start() Symbol {
	return g.start
}

// Vocabulary returns the terminals this grammar is using.
func (g *Grammar) Vocabulary() *Vocabulary {
	return g.voc
}

// Size returns the number of rules.
func (g *Grammar) Size() int {
	return len(g.rules)
}

// Rule returns rule #i.
func (g *Grammar) Rule(i int) *Rule {
	if i < 0 || i >= len(g.rules) {
		return nil
	}
	return g.rules[i]
}

// Rules returns the rules in grammar order. The slice is a copy.
func (g *Grammar) Rules() []*Rule {
	return append([]*Rule(nil), g.rules...)
}

// RulesFor returns the indices of all rules with LHS name, in grammar order.
func (g *Grammar) RulesFor(name string) []int {
	return append([]int(nil), g.heads[name]...)
}

// IsNonTerminal is true if name is the LHS of at least one rule.
func (g *Grammar) IsNonTerminal(name string) bool {
	return len(g.heads[name]) > 0
}

// NonTerminals returns all LHS names, in order of first appearance.
func (g *Grammar) NonTerminals() []string {
	seen := make(map[string]bool, len(g.heads))
	nts := make([]string, 0, len(g.heads))
	for _, r := range g.rules {
		if !seen[r.LHS.Name] {
			seen[r.LHS.Name] = true
			nts = append(nts, r.LHS.Name)
		}
	}
	return nts
}

// Origin returns the origin of a non-terminal.
func (g *Grammar) Origin(name string) Origin {
	return g.origins[name]
}

// IsSynthetic is true for non-terminals which have been introduced by a
// grammar transformation.
func (g *Grammar) IsSynthetic(name string) bool {
	return g.origins[name] != Declared
}

// Dump is a debugging helper. It traces all rules at level Debug.
func (g *Grammar) Dump() {
	tracer().P("grammar", g.Name).Debugf("--- start symbol is %s ---------", g.start)
	for i, r := range g.rules {
		tracer().P("grammar", g.Name).Debugf("%3d: %s", i, r)
	}
	tracer().P("grammar", g.Name).Debugf("---------------------------------")
}

func (g *Grammar) String() string {
	var b bytes.Buffer
	b.WriteString(fmt.Sprintf("start = %s\n", g.start))
	for i, r := range g.rules {
		b.WriteString(fmt.Sprintf("%3d: %s\n", i, r))
	}
	return b.String()
}

type grammarKey struct {
	Start     string   `hash:"name:start"`
	Rules     []string `hash:"name:rules"`
	Terminals []string `hash:"name:terminals"`
}

// Fingerprint returns a hash over start symbol, rules in order, and the
// token types of the vocabulary. Grammars with identical fingerprints
// recognize with identical results.
func (g *Grammar) Fingerprint() string {
	k := grammarKey{
		Start:     g.start.Name,
		Rules:     make([]string, len(g.rules)),
		Terminals: g.voc.pairs(),
	}
	for i, r := range g.rules {
		k.Rules[i] = r.String()
	}
	return fmt.Sprintf("%x", structhash.Sha1(k, 1))
}
