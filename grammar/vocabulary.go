package grammar

import (
	"fmt"

	"github.com/emirpasic/gods/maps/treemap"
	"github.com/npillmayer/gocyk"
)

// Vocabulary is the closed set of terminal labels a scanner is able to produce.
// Each label is mapped to the token type the scanner will report for it.
//
// A vocabulary is usually created by a scanner (see package lexmach), but
// may be set up by hand:
//
//     voc := NewVocabulary().Define("number", 1).Define("+", '+')
//
type Vocabulary struct {
	terminals *treemap.Map // label → token type, sorted by label
	labels    map[gocyk.TokType]string
}

// NewVocabulary creates an empty vocabulary.
func NewVocabulary() *Vocabulary {
	return &Vocabulary{
		terminals: treemap.NewWithStringComparator(),
		labels:    make(map[gocyk.TokType]string),
	}
}

// Define adds a terminal label. Re-defining a label overwrites its token type.
// The reserved name "empty" cannot be used as a terminal label and will be ignored,
// as will a token type already in use by another label.
func (v *Vocabulary) Define(label string, tokval gocyk.TokType) *Vocabulary {
	if label == EmptyName || label == "" {
		tracer().Errorf("cannot use %q as a terminal label", label)
		return v
	}
	if other, found := v.labels[tokval]; found && other != label {
		tracer().Errorf("token type %d already denotes terminal %q, ignoring %q", tokval, other, label)
		return v
	}
	if old, found := v.terminals.Get(label); found {
		delete(v.labels, old.(gocyk.TokType))
	}
	v.terminals.Put(label, tokval)
	v.labels[tokval] = label
	return v
}

// IsTerminal returns true if label is a terminal of this vocabulary.
func (v *Vocabulary) IsTerminal(label string) bool {
	if v == nil {
		return false
	}
	_, found := v.terminals.Get(label)
	return found
}

// TokType returns the token type for a terminal label.
func (v *Vocabulary) TokType(label string) (gocyk.TokType, bool) {
	if v == nil {
		return 0, false
	}
	t, found := v.terminals.Get(label)
	if !found {
		return 0, false
	}
	return t.(gocyk.TokType), true
}

// Label returns the terminal label for a token type, or "" if none is defined.
func (v *Vocabulary) Label(tokval gocyk.TokType) string {
	if v == nil {
		return ""
	}
	return v.labels[tokval]
}

// Labels returns all terminal labels in lexicographic order.
func (v *Vocabulary) Labels() []string {
	if v == nil {
		return nil
	}
	keys := v.terminals.Keys()
	labels := make([]string, len(keys))
	for i, k := range keys {
		labels[i] = k.(string)
	}
	return labels
}

// pairs returns "label=tokentype" for all terminals, sorted by label.
func (v *Vocabulary) pairs() []string {
	if v == nil {
		return nil
	}
	pairs := make([]string, 0, v.terminals.Size())
	it := v.terminals.Iterator()
	for it.Next() {
		pairs = append(pairs, fmt.Sprintf("%s=%d", it.Key().(string), int(it.Value().(gocyk.TokType))))
	}
	return pairs
}

// Size returns the number of terminals.
func (v *Vocabulary) Size() int {
	if v == nil {
		return 0
	}
	return v.terminals.Size()
}

// Symbol classifies an identifier: terminals of the vocabulary become terminal
// symbols, "empty" is the empty marker, everything else is a non-terminal.
func (v *Vocabulary) Symbol(name string) Symbol {
	if name == EmptyName {
		return EmptySymbol
	}
	if t, ok := v.TokType(name); ok {
		return T(name, t)
	}
	return N(name)
}
