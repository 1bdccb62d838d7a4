package cnf

import (
	"sort"

	"github.com/emirpasic/gods/sets/hashset"
	"github.com/npillmayer/gocyk/grammar"
)

// Nullable returns the names of all non-terminals of g which derive the empty
// string, sorted alphabetically.
func Nullable(g *grammar.Grammar) []string {
	set := nullableSet(g)
	names := make([]string, 0, set.Size())
	for _, v := range set.Values() {
		names = append(names, v.(string))
	}
	sort.Strings(names)
	return names
}

// nullableSet computes the nullable non-terminals as a fixed point:
// A is nullable if it has a rule A ➞ empty, or a rule whose right hand
// side consists of nullable symbols only.
func nullableSet(g *grammar.Grammar) *hashset.Set {
	nullable := hashset.New()
	for changed := true; changed; {
		changed = false
		for _, r := range g.Rules() {
			if nullable.Contains(r.LHS.Name) {
				continue
			}
			if allNullable(r, nullable) {
				nullable.Add(r.LHS.Name)
				changed = true
			}
		}
	}
	return nullable
}

func allNullable(r *grammar.Rule, nullable *hashset.Set) bool {
	for i := 0; i < r.Len(); i++ {
		if !isNullableSymbol(r.At(i), nullable) {
			return false
		}
	}
	return true
}

func isNullableSymbol(sym grammar.Symbol, nullable *hashset.Set) bool {
	return sym.IsEmpty() || (sym.IsNonTerminal() && nullable.Contains(sym.Name))
}

// nullVariants returns all right hand sides derived from rhs by independently
// keeping or dropping each nullable symbol occurrence. Variants keeping a
// symbol come before variants dropping it, so the unchanged rhs is the first
// variant. The variant dropping everything is excluded. Empty markers within
// longer right hand sides are always dropped.
func nullVariants(rhs []grammar.Symbol, nullable *hashset.Set) [][]grammar.Symbol {
	var variants [][]grammar.Symbol
	var collect func(i int, prefix []grammar.Symbol)
	collect = func(i int, prefix []grammar.Symbol) {
		if i == len(rhs) {
			if len(prefix) > 0 {
				variants = append(variants, append([]grammar.Symbol(nil), prefix...))
			}
			return
		}
		sym := rhs[i]
		if sym.IsEmpty() {
			collect(i+1, prefix)
			return
		}
		collect(i+1, append(prefix, sym))
		if isNullableSymbol(sym, nullable) {
			collect(i+1, prefix)
		}
	}
	collect(0, make([]grammar.Symbol, 0, len(rhs)))
	return variants
}
