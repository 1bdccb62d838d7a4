package cnf

import (
	"strconv"
	"strings"

	"github.com/emirpasic/gods/sets/hashset"
	"github.com/npillmayer/gocyk/grammar"
)

// FreshName returns a name derived from base for which isTaken is false.
// If base is free, it is returned unchanged. Otherwise base is split into a
// prefix and a numeric suffix, and the suffix is incremented until a free name
// is found. A missing suffix counts as -1, i.e. the first candidate for "sum"
// is "sum0", the first candidate for "x9" is "x10".
func FreshName(base string, isTaken func(string) bool) string {
	if !isTaken(base) {
		return base
	}
	prefix, n := splitNumericSuffix(base)
	for {
		n++
		candidate := prefix + strconv.Itoa(n)
		if !isTaken(candidate) {
			return candidate
		}
	}
}

func splitNumericSuffix(name string) (string, int) {
	prefix := strings.TrimRightFunc(name, func(r rune) bool {
		return r >= '0' && r <= '9'
	})
	digits := name[len(prefix):]
	if digits == "" {
		return prefix, -1
	}
	n, err := strconv.Atoi(digits)
	if err != nil { // suffix out of range, treat it as part of the prefix
		return name, -1
	}
	return prefix, n
}

// namer hands out fresh names for a grammar snapshot. Every identifier of the
// snapshot is taken: terminals, the empty marker, and every non-terminal on
// either side of a rule. Names handed out are taken immediately.
type namer struct {
	taken *hashset.Set
}

func newNamer(g *grammar.Grammar) *namer {
	taken := hashset.New()
	taken.Add(grammar.EmptyName)
	for _, label := range g.Vocabulary().Labels() {
		taken.Add(label)
	}
	taken.Add(g.Start().Name)
	for _, r := range g.Rules() {
		taken.Add(r.LHS.Name)
		for _, sym := range r.RHS() {
			taken.Add(sym.Name)
		}
	}
	return &namer{taken: taken}
}

func (n *namer) isTaken(name string) bool {
	return n.taken.Contains(name)
}

func (n *namer) fresh(base string) string {
	name := FreshName(base, n.isTaken)
	n.taken.Add(name)
	return name
}
