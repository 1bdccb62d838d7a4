package cnf

import (
	"github.com/emirpasic/gods/lists/arraylist"
	"github.com/emirpasic/gods/sets/hashset"
	"github.com/npillmayer/gocyk/grammar"
)

// Pass is a single normalization step. Passes never modify their input.
type Pass func(*grammar.Grammar) *grammar.Grammar

// --- START -----------------------------------------------------------------

// EliminateStart introduces a new start symbol S' with a single rule S' ➞ S,
// prepended to the rules of g. S' never occurs on a right hand side.
func EliminateStart(g *grammar.Grammar) *grammar.Grammar {
	names := newNamer(g)
	start := grammar.N(names.fresh(g.Start().Name))
	rules := make([]*grammar.Rule, 0, g.Size()+1)
	rules = append(rules, grammar.NewRule(start, g.Start()))
	rules = append(rules, g.Rules()...)
	tracer().Debugf("START: new start symbol %s", start)
	return g.Rewrite(start, rules, map[string]grammar.Origin{start.Name: grammar.StartSymbol})
}

// --- TERM ------------------------------------------------------------------

// IsolateTerminals replaces every terminal (and every empty marker) within a
// right hand side of length > 1 by a wrapper non-terminal T ➞ terminal.
// All occurrences of a terminal share one wrapper. A wrapper rule is placed
// directly before the first rule using it.
func IsolateTerminals(g *grammar.Grammar) *grammar.Grammar {
	names := newNamer(g)
	wrappers := make(map[grammar.Symbol]grammar.Symbol)
	origins := make(map[string]grammar.Origin)
	rules := make([]*grammar.Rule, 0, g.Size())
	for _, r := range g.Rules() {
		if r.Len() < 2 {
			rules = append(rules, r)
			continue
		}
		rhs := r.RHS()
		changed := false
		for i, sym := range rhs {
			if sym.IsNonTerminal() {
				continue
			}
			w, ok := wrappers[sym]
			if !ok {
				w = grammar.N(names.fresh(sym.Name))
				wrappers[sym] = w
				origins[w.Name] = grammar.TerminalWrapper
				rules = append(rules, grammar.NewRule(w, sym))
				tracer().Debugf("TERM: %s wraps %s", w, sym)
			}
			rhs[i] = w
			changed = true
		}
		if changed {
			r = r.WithRHS(rhs...)
		}
		rules = append(rules, r)
	}
	return g.Rewrite(g.Start(), rules, origins)
}

// --- BIN -------------------------------------------------------------------

// Binarize splits every rule H ➞ s1 s2 … sn with n > 2 into
//
//     H  ➞ s1 X1
//     X1 ➞ s2 X2
//     …
//     Xn-2 ➞ sn-1 sn
//
// where each Xi is a fresh non-terminal named after H.
func Binarize(g *grammar.Grammar) *grammar.Grammar {
	names := newNamer(g)
	origins := make(map[string]grammar.Origin)
	rules := make([]*grammar.Rule, 0, g.Size())
	for _, r := range g.Rules() {
		if r.Len() <= 2 {
			rules = append(rules, r)
			continue
		}
		rhs := r.RHS()
		n := len(rhs)
		lhs := r.LHS
		for i := 0; i < n-2; i++ {
			x := grammar.N(names.fresh(r.LHS.Name))
			origins[x.Name] = grammar.Binarized
			if i == 0 {
				rules = append(rules, r.WithRHS(rhs[0], x))
			} else {
				rules = append(rules, grammar.NewRule(lhs, rhs[i], x))
			}
			lhs = x
		}
		rules = append(rules, grammar.NewRule(lhs, rhs[n-2], rhs[n-1]))
		tracer().Debugf("BIN: split %v into %d rules", r, n-1)
	}
	return g.Rewrite(g.Start(), rules, origins)
}

// --- DEL -------------------------------------------------------------------

// EpsilonMode selects how EliminateEmpty treats empty rules.
type EpsilonMode int

// Modes for EliminateEmpty.
const (
	DropEmpty   EpsilonMode = iota // discard all empty rules
	RetainEmpty                    // remove null-only non-terminals, keep S' ➞ empty
)

func (m EpsilonMode) String() string {
	switch m {
	case DropEmpty:
		return "drop"
	case RetainEmpty:
		return "retain"
	}
	return "unknown"
}

// EliminateEmpty returns a pass which removes empty rules.
//
// Every rule is replaced by all of its variants with nullable occurrences
// kept or dropped (see Nullable), except the variant dropping everything.
// What happens to rules A ➞ empty depends on mode, see EpsilonMode. With
// DropEmpty, rules referring to non-terminals left without any rule are
// removed as well.
func EliminateEmpty(mode EpsilonMode) Pass {
	return func(g *grammar.Grammar) *grammar.Grammar {
		return eliminateEmpty(g, mode)
	}
}

func eliminateEmpty(g *grammar.Grammar, mode EpsilonMode) *grammar.Grammar {
	nullable := nullableSet(g)
	tracer().Debugf("DEL: nullable = %v", Nullable(g))
	rules := make([]*grammar.Rule, 0, g.Size())
	for _, r := range g.Rules() {
		if r.IsEpsilon() {
			if mode == RetainEmpty {
				rules = append(rules, r)
			}
			continue
		}
		for _, rhs := range nullVariants(r.RHS(), nullable) {
			rules = append(rules, r.WithRHS(rhs...))
		}
	}
	if mode == DropEmpty {
		rules = pruneUnproductive(rules)
	} else {
		start := g.Start()
		rules = substituteNullOnly(start, rules)
		kept := rules[:0]
		for _, r := range rules {
			if r.IsEpsilon() && r.LHS != start {
				continue
			}
			kept = append(kept, r)
		}
		rules = kept
		if nullable.Contains(start.Name) {
			rules = append(rules, grammar.NewRule(start))
		}
	}
	return g.Rewrite(g.Start(), dedupe(rules), nil)
}

// substituteNullOnly removes non-terminals other than start whose only rules
// are empty rules. Their occurrences are deleted from right hand sides; a
// right hand side becoming empty turns into [empty], possibly creating further
// null-only non-terminals. This is repeated until none are left.
func substituteNullOnly(start grammar.Symbol, rules []*grammar.Rule) []*grammar.Rule {
	for {
		nullOnly := findNullOnly(start, rules)
		if nullOnly.Empty() {
			return rules
		}
		tracer().Debugf("DEL: null-only non-terminals %v", nullOnly.Values())
		next := make([]*grammar.Rule, 0, len(rules))
		for _, r := range rules {
			if nullOnly.Contains(r.LHS.Name) {
				continue
			}
			rhs := r.RHS()
			filtered := rhs[:0]
			for _, sym := range rhs {
				if !nullOnly.Contains(sym.Name) {
					filtered = append(filtered, sym)
				}
			}
			if len(filtered) < r.Len() {
				r = r.WithRHS(filtered...)
			}
			next = append(next, r)
		}
		rules = dedupe(next)
	}
}

// pruneUnproductive removes rules referring to non-terminals which have no
// rules at all, until none are left. Such rules can never take part in a
// derivation.
func pruneUnproductive(rules []*grammar.Rule) []*grammar.Rule {
	for {
		heads := hashset.New()
		for _, r := range rules {
			heads.Add(r.LHS.Name)
		}
		kept := make([]*grammar.Rule, 0, len(rules))
		for _, r := range rules {
			if refersToUndefined(r, heads) {
				tracer().Debugf("DEL: %v is unproductive", r)
				continue
			}
			kept = append(kept, r)
		}
		if len(kept) == len(rules) {
			return rules
		}
		rules = kept
	}
}

func refersToUndefined(r *grammar.Rule, heads *hashset.Set) bool {
	for i := 0; i < r.Len(); i++ {
		if sym := r.At(i); sym.IsNonTerminal() && !heads.Contains(sym.Name) {
			return true
		}
	}
	return false
}

func findNullOnly(start grammar.Symbol, rules []*grammar.Rule) *hashset.Set {
	candidates := make(map[string]bool)
	for _, r := range rules {
		if r.LHS == start {
			continue
		}
		only, seen := candidates[r.LHS.Name]
		candidates[r.LHS.Name] = r.IsEpsilon() && (only || !seen)
	}
	nullOnly := hashset.New()
	for name, only := range candidates {
		if only {
			nullOnly.Add(name)
		}
	}
	return nullOnly
}

// --- UNIT ------------------------------------------------------------------

// EliminateUnits removes rules A ➞ B, with B a non-terminal.
//
// The first unit rule A ➞ B is replaced, in place, by rules A ➞ β for every
// rule B ➞ β. Self-units, duplicates and unit rules A ➞ C for pairs (A,C)
// which have been resolved before are skipped. If afterwards B is referenced
// only by its own rules and is not the start symbol, B's rules are removed.
// This is repeated until no unit rule remains. Every resolved pair is never
// re-introduced, therefore the pass terminates for unit cycles as well.
//
// New rules remember the elided non-terminals, see grammar.Rule.Via.
func EliminateUnits(g *grammar.Grammar) *grammar.Grammar {
	rules := arraylist.New()
	for _, r := range g.Rules() {
		rules.Add(r)
	}
	resolved := hashset.New()
	start := g.Start()
	for {
		i, unit := firstUnit(rules)
		if i < 0 {
			break
		}
		rules.Remove(i)
		a, b := unit.LHS, unit.At(0)
		resolved.Add(unitPair(a, b))
		if a != b {
			var repl []interface{}
			present := ruleKeys(rules)
			for _, u := range rulesFor(rules, b) {
				if u.IsUnit() && (u.At(0) == a || resolved.Contains(unitPair(a, u.At(0)))) {
					continue
				}
				r := unit.Inline(u)
				if k := r.Key(); !present.Contains(k) {
					present.Add(k)
					repl = append(repl, r)
				}
			}
			rules.Insert(i, repl...)
			tracer().Debugf("UNIT: %v replaced by %d rules", unit, len(repl))
		}
		if b != start && !isReferenced(rules, b) {
			removeRulesFor(rules, b)
			tracer().Debugf("UNIT: %s no longer referenced, rules removed", b)
		}
	}
	result := make([]*grammar.Rule, 0, rules.Size())
	for _, v := range rules.Values() {
		result = append(result, v.(*grammar.Rule))
	}
	return g.Rewrite(start, result, nil)
}

func unitPair(a, b grammar.Symbol) string {
	return a.Name + "\x00" + b.Name
}

func firstUnit(rules *arraylist.List) (int, *grammar.Rule) {
	it := rules.Iterator()
	for it.Next() {
		if r := it.Value().(*grammar.Rule); r.IsUnit() {
			return it.Index(), r
		}
	}
	return -1, nil
}

func rulesFor(rules *arraylist.List, lhs grammar.Symbol) []*grammar.Rule {
	var result []*grammar.Rule
	it := rules.Iterator()
	for it.Next() {
		if r := it.Value().(*grammar.Rule); r.LHS == lhs {
			result = append(result, r)
		}
	}
	return result
}

func ruleKeys(rules *arraylist.List) *hashset.Set {
	keys := hashset.New()
	it := rules.Iterator()
	for it.Next() {
		keys.Add(it.Value().(*grammar.Rule).Key())
	}
	return keys
}

// isReferenced is true if sym occurs in a rule headed by another non-terminal.
func isReferenced(rules *arraylist.List, sym grammar.Symbol) bool {
	it := rules.Iterator()
	for it.Next() {
		if r := it.Value().(*grammar.Rule); r.LHS != sym && r.Contains(sym.Name) {
			return true
		}
	}
	return false
}

func removeRulesFor(rules *arraylist.List, lhs grammar.Symbol) {
	for i := rules.Size() - 1; i >= 0; i-- {
		if v, _ := rules.Get(i); v.(*grammar.Rule).LHS == lhs {
			rules.Remove(i)
		}
	}
}

// --- helpers ---------------------------------------------------------------

// dedupe removes duplicate rules, keeping the first occurrence.
func dedupe(rules []*grammar.Rule) []*grammar.Rule {
	seen := hashset.New()
	result := make([]*grammar.Rule, 0, len(rules))
	for _, r := range rules {
		k := r.Key()
		if seen.Contains(k) {
			continue
		}
		seen.Add(k)
		result = append(result, r)
	}
	return result
}
