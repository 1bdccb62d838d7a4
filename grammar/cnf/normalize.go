package cnf

import (
	"errors"
	"fmt"
	"strings"

	"github.com/npillmayer/gocyk/grammar"
	"github.com/npillmayer/schuko/gconf"
)

// ErrNotCNF is returned (wrapped) for grammars violating Chomsky Normal Form.
var ErrNotCNF = errors.New("grammar not in Chomsky Normal Form")

// Option configures Normalize.
type Option func(*normalizer)

// WithEpsilonMode selects the treatment of empty rules, overriding the
// configured default.
func WithEpsilonMode(mode EpsilonMode) Option {
	return func(n *normalizer) {
		n.mode = mode
		n.modeSet = true
	}
}

type normalizer struct {
	mode    EpsilonMode
	modeSet bool
}

// DefaultEpsilonMode returns the mode configured with key "cnf-epsilon-mode".
func DefaultEpsilonMode() EpsilonMode {
	switch strings.ToLower(gconf.GetString("cnf-epsilon-mode")) {
	case "retain":
		return RetainEmpty
	}
	return DropEmpty
}

// ParseEpsilonMode converts "drop" or "retain" to an EpsilonMode.
func ParseEpsilonMode(s string) (EpsilonMode, error) {
	switch strings.ToLower(s) {
	case "drop":
		return DropEmpty, nil
	case "retain":
		return RetainEmpty, nil
	}
	return DropEmpty, fmt.Errorf("unknown epsilon mode %q", s)
}

// Normalize transforms g into Chomsky Normal Form, running the passes
// START, TERM, BIN, DEL and UNIT in this order. The result is verified with
// Check. If configuration flag "panic-on-malformed-cnf" is set, a failing check
// will panic instead of returning an error.
func Normalize(g *grammar.Grammar, opts ...Option) (*grammar.Grammar, error) {
	if g == nil || g.Size() == 0 {
		return nil, fmt.Errorf("cannot normalize: %w", grammar.ErrNoRules)
	}
	n := &normalizer{}
	for _, opt := range opts {
		opt(n)
	}
	if !n.modeSet {
		n.mode = DefaultEpsilonMode()
	}
	passes := []struct {
		name string
		pass Pass
	}{
		{"START", EliminateStart},
		{"TERM", IsolateTerminals},
		{"BIN", Binarize},
		{"DEL", EliminateEmpty(n.mode)},
		{"UNIT", EliminateUnits},
	}
	for _, p := range passes {
		g = p.pass(g)
		tracer().Infof("%s: grammar %s has %d rules", p.name, g.Name, g.Size())
	}
	if err := Check(g); err != nil {
		if gconf.GetBool("panic-on-malformed-cnf") {
			panic(err)
		}
		return nil, err
	}
	return g, nil
}

// Check verifies that g is in Chomsky Normal Form: every rule is A ➞ a or
// A ➞ B C, the start symbol never occurs on a right hand side, and the only
// permitted empty rule is S ➞ empty for the start symbol S.
func Check(g *grammar.Grammar) error {
	start := g.Start()
	for i, r := range g.Rules() {
		switch {
		case r.IsTerminal():
		case r.IsEpsilon() && r.LHS == start:
		case r.Len() == 2 && r.At(0).IsNonTerminal() && r.At(1).IsNonTerminal():
			if r.At(0) == start || r.At(1) == start {
				return fmt.Errorf("%w: start symbol on right hand side of rule #%d %v", ErrNotCNF, i, r)
			}
		default:
			return fmt.Errorf("%w: rule #%d %v", ErrNotCNF, i, r)
		}
	}
	return nil
}
