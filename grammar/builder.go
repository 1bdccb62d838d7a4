package grammar

import (
	"fmt"
)

// Builder is a helper for constructing grammars programmatically.
//
//     b := grammar.NewBuilder("G", voc)
//     b.LHS("S").N("A").T("a").End()  // S  ->  A a
//     b.LHS("A").Epsilon()            // A  ->  empty
//     g, err := b.Grammar()
//
// The start symbol is the LHS of the first rule, unless set explicitly with
// Start(…).
type Builder struct {
	name  string
	voc   *Vocabulary
	start string
	rules []*Rule
	errs  []error
}

// NewBuilder creates a builder for a grammar, using a vocabulary of terminals.
func NewBuilder(name string, voc *Vocabulary) *Builder {
	if voc == nil {
		voc = NewVocabulary()
	}
	return &Builder{name: name, voc: voc}
}

// Start sets the start symbol.
func (b *Builder) Start(name string) *Builder {
	b.start = name
	return b
}

// LHS starts a new rule with a non-terminal on the left hand side.
func (b *Builder) LHS(name string) *RuleBuilder {
	lhs := b.voc.Symbol(name)
	if !lhs.IsNonTerminal() {
		b.errs = append(b.errs, fmt.Errorf("%w: %s is %s", ErrIllegalLHS, name, lhs.Kind))
	}
	return &RuleBuilder{b: b, lhs: lhs}
}

// Grammar returns the grammar built so far, or the first error recorded during
// building.
func (b *Builder) Grammar() (*Grammar, error) {
	if len(b.errs) > 0 {
		if len(b.errs) > 1 {
			tracer().Errorf("grammar %s has %d errors", b.name, len(b.errs))
		}
		return nil, fmt.Errorf("grammar %s: %w", b.name, b.errs[0])
	}
	start := b.start
	if start == "" && len(b.rules) > 0 {
		start = b.rules[0].LHS.Name
	}
	g := build(b.name, b.voc.Symbol(start), b.voc, append([]*Rule(nil), b.rules...), nil)
	if err := g.validate(); err != nil {
		return nil, err
	}
	return g, nil
}

// RuleBuilder collects the RHS symbols of a rule.
type RuleBuilder struct {
	b   *Builder
	lhs Symbol
	rhs []Symbol
}

// N appends a non-terminal.
func (rb *RuleBuilder) N(name string) *RuleBuilder {
	sym := rb.b.voc.Symbol(name)
	if !sym.IsNonTerminal() {
		rb.b.errs = append(rb.b.errs, fmt.Errorf("%s used as non-terminal in rule for %s", name, rb.lhs))
	}
	rb.rhs = append(rb.rhs, sym)
	return rb
}

// T appends a terminal. The terminal has to be part of the builder's vocabulary.
func (rb *RuleBuilder) T(label string) *RuleBuilder {
	sym := rb.b.voc.Symbol(label)
	if !sym.IsTerminal() {
		rb.b.errs = append(rb.b.errs, fmt.Errorf("unknown terminal %q in rule for %s", label, rb.lhs))
	}
	rb.rhs = append(rb.rhs, sym)
	return rb
}

// S appends a symbol, classified by the vocabulary.
func (rb *RuleBuilder) S(name string) *RuleBuilder {
	rb.rhs = append(rb.rhs, rb.b.voc.Symbol(name))
	return rb
}

// End completes a rule.
func (rb *RuleBuilder) End() *Rule {
	r := NewRule(rb.lhs, rb.rhs...)
	rb.b.rules = append(rb.b.rules, r)
	return r
}

// Epsilon completes a rule with an empty right hand side.
func (rb *RuleBuilder) Epsilon() *Rule {
	rb.rhs = nil
	return rb.End()
}
