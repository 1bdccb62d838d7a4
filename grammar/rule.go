package grammar

import (
	"bytes"
	"fmt"

	"github.com/cnf/structhash"
)

// Rule is a grammar production LHS ➞ RHS. Rules are immutable.
//
// A rule with an empty right hand side is stored as LHS ➞ [empty].
//
// Rules created by unit elimination (see package cnf) remember the chain of
// non-terminals which have been elided between LHS and RHS. For a grammar
//
//     A ➞ B
//     B ➞ C
//     C ➞ x y
//
// unit elimination will create A ➞ x y with Via() = [B C].
type Rule struct {
	LHS Symbol
	rhs []Symbol
	via []Symbol
}

// NewRule creates a rule. The RHS symbols are copied.
func NewRule(lhs Symbol, rhs ...Symbol) *Rule {
	r := &Rule{LHS: lhs}
	if len(rhs) == 0 {
		r.rhs = []Symbol{EmptySymbol}
	} else {
		r.rhs = append([]Symbol(nil), rhs...)
	}
	return r
}

// RHS returns a copy of the right hand side symbols.
func (r *Rule) RHS() []Symbol {
	return append([]Symbol(nil), r.rhs...)
}

// Len returns the number of RHS symbols.
func (r *Rule) Len() int {
	return len(r.rhs)
}

// At returns RHS symbol #i.
func (r *Rule) At(i int) Symbol {
	return r.rhs[i]
}

// Via returns the chain of non-terminals elided by unit elimination.
func (r *Rule) Via() []Symbol {
	return append([]Symbol(nil), r.via...)
}

// IsEpsilon is true for rules LHS ➞ [empty].
func (r *Rule) IsEpsilon() bool {
	return len(r.rhs) == 1 && r.rhs[0].IsEmpty()
}

// IsUnit is true for rules whose RHS is a single non-terminal.
func (r *Rule) IsUnit() bool {
	return len(r.rhs) == 1 && r.rhs[0].IsNonTerminal()
}

// IsTerminal is true for rules whose RHS is a single terminal.
func (r *Rule) IsTerminal() bool {
	return len(r.rhs) == 1 && r.rhs[0].IsTerminal()
}

// Contains is true if a symbol with the given name occurs on the RHS.
func (r *Rule) Contains(name string) bool {
	for _, s := range r.rhs {
		if s.Name == name {
			return true
		}
	}
	return false
}

// WithRHS returns a rule with the same LHS and unit chain, but a new RHS.
func (r *Rule) WithRHS(rhs ...Symbol) *Rule {
	rnew := NewRule(r.LHS, rhs...)
	rnew.via = r.via
	return rnew
}

// WithLHS returns a rule with the same RHS and unit chain, but a new LHS.
func (r *Rule) WithLHS(lhs Symbol) *Rule {
	return &Rule{LHS: lhs, rhs: r.rhs, via: r.via}
}

// Inline substitutes the single RHS non-terminal of unit rule r by the
// RHS of rule u, i.e. for r = A ➞ B and u = B ➞ β it returns A ➞ β.
// The unit chain of the result is r.Via + B + u.Via.
//
// Inline panics if r is not a unit rule for u's LHS.
func (r *Rule) Inline(u *Rule) *Rule {
	if !r.IsUnit() || r.rhs[0] != u.LHS {
		panic(fmt.Sprintf("cannot inline %v into %v", u, r))
	}
	via := make([]Symbol, 0, len(r.via)+1+len(u.via))
	via = append(via, r.via...)
	via = append(via, u.LHS)
	via = append(via, u.via...)
	return &Rule{LHS: r.LHS, rhs: u.rhs, via: via}
}

// Equals compares LHS and RHS of two rules. Unit chains are not compared.
func (r *Rule) Equals(other *Rule) bool {
	if r == nil || other == nil {
		return r == other
	}
	if r.LHS != other.LHS || len(r.rhs) != len(other.rhs) {
		return false
	}
	for i, s := range r.rhs {
		if s != other.rhs[i] {
			return false
		}
	}
	return true
}

// ruleKey is the hashable identity of a rule.
type ruleKey struct {
	LHS string   `hash:"name:lhs"`
	RHS []string `hash:"name:rhs"`
}

// Key returns an identity key for a rule, built from LHS and RHS.
// Rules which are Equals() have identical keys.
func (r *Rule) Key() string {
	k := ruleKey{LHS: r.LHS.Name, RHS: symbolNames(r.rhs)}
	h, err := structhash.Hash(k, 1)
	if err != nil {
		tracer().Errorf("cannot hash rule %v: %v", r, err)
		return r.String()
	}
	return h
}

func (r *Rule) String() string {
	var b bytes.Buffer
	b.WriteString("[")
	b.WriteString(r.LHS.Name)
	b.WriteString("] ::= [")
	for i, s := range r.rhs {
		if i > 0 {
			b.WriteString(" ")
		}
		b.WriteString(s.Name)
	}
	b.WriteString("]")
	return b.String()
}
