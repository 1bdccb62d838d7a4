package grammar

import (
	"fmt"

	"github.com/npillmayer/gocyk"
)

// SymbolKind tells terminals, non-terminals and the empty marker apart.
type SymbolKind int8

// Kinds of grammar symbols.
const (
	NonTerminal SymbolKind = iota
	Terminal
	Empty
)

func (k SymbolKind) String() string {
	switch k {
	case NonTerminal:
		return "non-terminal"
	case Terminal:
		return "terminal"
	case Empty:
		return "empty"
	}
	return fmt.Sprintf("SymbolKind(%d)", int(k))
}

// EmptyName is the reserved identifier for the empty string.
const EmptyName = "empty"

// Symbol is a grammar symbol. Symbols are plain values and may be compared
// with ==.
type Symbol struct {
	Name  string
	Kind  SymbolKind
	Token gocyk.TokType // token type of a terminal, 0 otherwise
}

// EmptySymbol denotes the empty string.
var EmptySymbol = Symbol{Name: EmptyName, Kind: Empty}

// N creates a non-terminal symbol.
func N(name string) Symbol {
	return Symbol{Name: name, Kind: NonTerminal}
}

// T creates a terminal symbol for a token type.
func T(name string, tokval gocyk.TokType) Symbol {
	return Symbol{Name: name, Kind: Terminal, Token: tokval}
}

// IsTerminal is true for terminals.
func (sym Symbol) IsTerminal() bool {
	return sym.Kind == Terminal
}

// IsNonTerminal is true for non-terminals.
func (sym Symbol) IsNonTerminal() bool {
	return sym.Kind == NonTerminal
}

// IsEmpty is true for the empty marker.
func (sym Symbol) IsEmpty() bool {
	return sym.Kind == Empty
}

func (sym Symbol) String() string {
	return sym.Name
}

func symbolNames(syms []Symbol) []string {
	names := make([]string, len(syms))
	for i, s := range syms {
		names[i] = s.Name
	}
	return names
}
