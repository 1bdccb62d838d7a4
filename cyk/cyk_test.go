package cyk

import (
	"testing"
	"unicode"

	"github.com/npillmayer/gocyk"
	"github.com/npillmayer/gocyk/grammar"
	"github.com/npillmayer/gocyk/grammar/cnf"
	"github.com/npillmayer/gocyk/scanner"
	"github.com/npillmayer/gocyk/tree"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func exprVocabulary() *grammar.Vocabulary {
	return grammar.NewVocabulary().
		Define("number", 1).
		Define("+", '+').
		Define("-", '-').
		Define("*", '*').
		Define("/", '/').
		Define("(", '(').
		Define(")", ')')
}

var exprRules1 = []grammar.Production{
	{Head: "expression", Body: []string{"sum"}},
	{Head: "value", Body: []string{"(", "expression", ")"}},
	{Head: "value", Body: []string{"number"}},
	{Head: "value", Body: []string{"-", "value"}},
	{Head: "product", Body: []string{"value"}},
	{Head: "product", Body: []string{"value", "*", "product"}},
	{Head: "product", Body: []string{"value", "/", "product"}},
	{Head: "sum", Body: []string{"product"}},
	{Head: "sum", Body: []string{"product", "+", "sum"}},
	{Head: "sum", Body: []string{"product", "-", "sum"}},
}

var exprRules2 = []grammar.Production{
	{Head: "expression", Body: []string{"sum"}},
	{Head: "value", Body: []string{"(", "expression", ")"}},
	{Head: "value", Body: []string{"number"}},
	{Head: "value", Body: []string{"-", "value"}},
	{Head: "product", Body: []string{"value", "product*"}},
	{Head: "product*", Body: []string{"*", "value", "product*"}},
	{Head: "product*", Body: []string{"/", "value", "product*"}},
	{Head: "product*", Body: []string{"empty"}},
	{Head: "sum", Body: []string{"product", "sum*"}},
	{Head: "sum*", Body: []string{"+", "product", "sum*"}},
	{Head: "sum*", Body: []string{"-", "product", "sum*"}},
	{Head: "sum*", Body: []string{"empty"}},
}

func makeGrammar(t *testing.T, voc *grammar.Vocabulary, start string, prods ...grammar.Production) *grammar.Grammar {
	t.Helper()
	g, err := grammar.New("G", start, voc, prods...)
	if err != nil {
		t.Fatalf("cannot create grammar: %v", err)
	}
	return g
}

func normalized(t *testing.T, g *grammar.Grammar, mode cnf.EpsilonMode) *grammar.Grammar {
	t.Helper()
	c, err := cnf.Normalize(g, cnf.WithEpsilonMode(mode))
	if err != nil {
		t.Fatalf("cannot normalize grammar: %v", err)
	}
	return c
}

// tokenize is a minimal scanner for arithmetic expressions: runs of digits
// are numbers, every other non-space rune is a token on its own.
func tokenize(t *testing.T, voc *grammar.Vocabulary, input string) []gocyk.Token {
	t.Helper()
	var tokens []gocyk.Token
	runes := []rune(input)
	for i := 0; i < len(runes); i++ {
		r := runes[i]
		if unicode.IsSpace(r) {
			continue
		}
		start := i
		label := string(r)
		if unicode.IsDigit(r) {
			for i+1 < len(runes) && unicode.IsDigit(runes[i+1]) {
				i++
			}
			label = "number"
		}
		tt, ok := voc.TokType(label)
		if !ok {
			t.Fatalf("cannot tokenize %q at position %d", input, start)
		}
		span := gocyk.Span{uint64(len(tokens)), uint64(len(tokens) + 1)}
		tokens = append(tokens, scanner.MakeDefaultToken(tt, string(runes[start:i+1]), span))
	}
	return tokens
}

// ---------------------------------------------------------------------------

func TestRecognizeSum(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gocyk.cyk")
	defer teardown()
	//
	voc := exprVocabulary()
	g := normalized(t, makeGrammar(t, voc, "expression", exprRules1...), cnf.DropEmpty)
	R := NewRecognizer(g)
	for i, test := range []struct {
		input, tree string
	}{
		{"2+3*4", "(expression (sum (product (value 2)) + (sum (product (value 3) * (product (value 4))))))"},
		{"(2+3)*4", "(expression (sum (product (value ( (expression (sum (product (value 2)) + (sum (product (value 3))))) )) * (product (value 4)))))"},
		{"5", "(expression (sum (product (value 5))))"},
	} {
		cnfTree := R.Recognize(tokenize(t, voc, test.input))
		if cnfTree == nil {
			t.Fatalf("test %d: expected %q to be recognized", i, test.input)
		}
		if cnfTree.Symbol != g.Start() {
			t.Errorf("test %d: expected root to be %s, is %s", i, g.Start(), cnfTree.Symbol)
		}
		if tr := tree.Unfold(cnfTree, g).String(); tr != test.tree {
			t.Errorf("test %d: expected tree for %q to be\n%s\nis\n%s", i, test.input, test.tree, tr)
		}
	}
}

func TestRecognizeSingleTerminal(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gocyk.cyk")
	defer teardown()
	//
	voc := exprVocabulary()
	g := normalized(t, makeGrammar(t, voc, "expression", exprRules1...), cnf.DropEmpty)
	root := NewRecognizer(g).Recognize(tokenize(t, voc, "5"))
	if root == nil || len(root.Children) != 1 || root.Children[0].Token == nil {
		t.Fatalf("expected a single terminal derivation, have %v", root)
	}
	if lexeme := root.Children[0].Token.Lexeme(); lexeme != "5" {
		t.Errorf("expected leaf to carry token 5, is %q", lexeme)
	}
	if via := g.Rule(root.Rule).Via(); len(via) == 0 || via[len(via)-1].Name != "value" {
		t.Errorf("expected terminal rule to be derived via value ➞ number, have %v", via)
	}
}

func TestNoMatch(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gocyk.cyk")
	defer teardown()
	//
	voc := exprVocabulary()
	for _, rules := range [][]grammar.Production{exprRules1, exprRules2} {
		g := normalized(t, makeGrammar(t, voc, "expression", rules...), cnf.DropEmpty)
		R := NewRecognizer(g)
		for _, input := range []string{"+", "2+", "(2", "2 3", ""} {
			if root := R.Recognize(tokenize(t, voc, input)); root != nil {
				t.Errorf("expected %q not to be recognized, have %v", input, root)
			}
		}
	}
}

func TestMemoIsOptimizationOnly(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gocyk.cyk")
	defer teardown()
	//
	voc := exprVocabulary()
	inputs := []string{"2+3*4", "(2+3)*4", "5", "-5-4", "1/2/3", "+", "2*(3"}
	for _, rules := range [][]grammar.Production{exprRules1, exprRules2} {
		g := normalized(t, makeGrammar(t, voc, "expression", rules...), cnf.RetainEmpty)
		memo := NewRecognizer(g)
		plain := NewRecognizer(g, Memoize(false))
		for _, input := range inputs {
			tokens := tokenize(t, voc, input)
			t1, s1 := memo.Run(tokens)
			t2, s2 := plain.Run(tokens)
			if !t1.Equals(t2) {
				t.Errorf("expected memoized and plain trees for %q to be equal:\n%v\n%v", input, t1, t2)
			}
			if s1.Computed > s2.Computed {
				t.Errorf("expected memoization to save work for %q: %s vs %s", input, s1, s2)
			}
		}
	}
}

func TestTriplesComputedOnce(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gocyk.cyk")
	defer teardown()
	//
	voc := exprVocabulary()
	g := normalized(t, makeGrammar(t, voc, "expression", exprRules2...), cnf.DropEmpty)
	R := NewRecognizer(g)
	tokens := tokenize(t, voc, "(1+2)*-3/(4-5)")
	rc := newRun(R, tokens)
	for _, i := range g.RulesFor(g.Start().Name) {
		if rc.derive(len(tokens), 0, i) >= 0 {
			break
		}
	}
	if rc.stats.Computed == 0 || rc.stats.Computed != rc.memo.ValueCount() {
		t.Errorf("expected every triple to be computed once, have %d computations for %d triples",
			rc.stats.Computed, rc.memo.ValueCount())
	}
	if rc.stats.MemoHits == 0 {
		t.Errorf("expected memo to be hit")
	}
}

func TestDeterminism(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gocyk.cyk")
	defer teardown()
	//
	voc := exprVocabulary()
	g1 := normalized(t, makeGrammar(t, voc, "expression", exprRules2...), cnf.DropEmpty)
	g2 := normalized(t, makeGrammar(t, voc, "expression", exprRules2...), cnf.DropEmpty)
	tokens := tokenize(t, voc, "1-2-3*4")
	t1 := NewRecognizer(g1).Recognize(tokens)
	t2 := NewRecognizer(g2).Recognize(tokens)
	if t1 == nil || !t1.Equals(t2) {
		t.Errorf("expected identical derivations, have\n%v\n%v", t1, t2)
	}
}

func TestEmptyInput(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gocyk.cyk")
	defer teardown()
	//
	voc := grammar.NewVocabulary().Define("a", 1).Define("b", 2)
	prods := []grammar.Production{
		{Head: "S", Body: []string{"A", "S"}},
		{Head: "S", Body: []string{"empty"}},
		{Head: "A", Body: []string{"a"}},
	}
	drop := normalized(t, makeGrammar(t, voc, "S", prods...), cnf.DropEmpty)
	if root := NewRecognizer(drop).Recognize(nil); root != nil {
		t.Errorf("expected empty input not to be recognized without empty rule, have %v", root)
	}
	retain := normalized(t, makeGrammar(t, voc, "S", prods...), cnf.RetainEmpty)
	root := NewRecognizer(retain).Recognize(nil)
	if root == nil || !root.IsLeaf() || root.Symbol != retain.Start() {
		t.Errorf("expected empty input to be recognized by start symbol, have %v", root)
	}
}

func TestMalformedCNFPanics(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gocyk.cyk")
	defer teardown()
	//
	voc := grammar.NewVocabulary().Define("a", 1).Define("b", 2)
	g := makeGrammar(t, voc, "S",
		grammar.Production{Head: "S", Body: []string{"A", "B", "A"}},
		grammar.Production{Head: "A", Body: []string{"a"}},
		grammar.Production{Head: "B", Body: []string{"b"}},
	)
	defer func() {
		if r := recover(); r == nil {
			t.Errorf("expected recognizer to panic on rule with 3 symbols")
		}
	}()
	tokens := []gocyk.Token{
		scanner.MakeDefaultToken(1, "a", gocyk.Span{0, 1}),
		scanner.MakeDefaultToken(2, "b", gocyk.Span{1, 2}),
		scanner.MakeDefaultToken(1, "a", gocyk.Span{2, 3}),
	}
	NewRecognizer(g).Recognize(tokens)
}

type sliceTokenizer struct {
	tokens []gocyk.Token
}

func (st *sliceTokenizer) SetErrorHandler(func(error)) {}

func (st *sliceTokenizer) NextToken() gocyk.Token {
	if len(st.tokens) == 0 {
		return scanner.MakeDefaultToken(scanner.EOF, "", gocyk.Span{})
	}
	tok := st.tokens[0]
	st.tokens = st.tokens[1:]
	return tok
}

func TestParse(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gocyk.cyk")
	defer teardown()
	//
	voc := exprVocabulary()
	g := normalized(t, makeGrammar(t, voc, "expression", exprRules1...), cnf.DropEmpty)
	root, err := NewRecognizer(g).Parse(&sliceTokenizer{tokenize(t, voc, "1*(2-3)")})
	if err != nil || root == nil {
		t.Fatalf("expected input to be recognized, have %v, %v", root, err)
	}
	if root.Extent != (gocyk.Span{0, 7}) {
		t.Errorf("expected root to span all 7 tokens, spans %v", root.Extent)
	}
}

func TestRuleIndicesPerRun(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gocyk.cyk")
	defer teardown()
	//
	voc := grammar.NewVocabulary().Define("a", 1).Define("b", 2)
	g := normalized(t, makeGrammar(t, voc, "S",
		grammar.Production{Head: "S", Body: []string{"A", "B"}},
		grammar.Production{Head: "A", Body: []string{"a"}},
		grammar.Production{Head: "A", Body: []string{"A", "a"}},
		grammar.Production{Head: "B", Body: []string{"b"}},
	), cnf.DropEmpty)
	rc := newRun(NewRecognizer(g), nil)
	first := rc.rulesFor("A")
	if len(first) != len(g.RulesFor("A")) {
		t.Fatalf("expected %d rules for A, have %d", len(g.RulesFor("A")), len(first))
	}
	for i, inx := range g.RulesFor("A") {
		if first[i] != inx {
			t.Errorf("expected rule #%d for A to be %d, is %d", i, inx, first[i])
		}
	}
	if again := rc.rulesFor("A"); &again[0] != &first[0] {
		t.Errorf("expected rule indices of A to be looked up once per run")
	}
	if len(rc.rulesFor("X")) != 0 {
		t.Errorf("expected no rules for undefined non-terminal X")
	}
	tokens := []gocyk.Token{
		scanner.MakeDefaultToken(1, "a", gocyk.Span{0, 1}),
		scanner.MakeDefaultToken(1, "a", gocyk.Span{1, 2}),
		scanner.MakeDefaultToken(2, "b", gocyk.Span{2, 3}),
	}
	if NewRecognizer(g).Recognize(tokens) == nil {
		t.Errorf("expected 'a a b' to be recognized")
	}
}
