package lexmach

import (
	"errors"
	"testing"

	"github.com/npillmayer/gocyk/scanner"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/timtadh/lexmachine/machines"
)

var testPatterns = []Pattern{
	{Name: "comment", Regex: `//[^\n]*\n?`, Skip: true},
	{Name: "STRING", Regex: `\"[^"]*\"`},
	{Name: "ID", Regex: `#?([a-z]|[A-Z])([a-z]|[A-Z]|[0-9]|_|-)*[!\?]?`},
	{Name: "NUM", Regex: `[1-9][0-9]*`},
	{Name: "=", Regex: Literal("=")},
	{Name: "+", Regex: Literal("+")},
	{Name: "ws", Regex: `( |\,|\t|\n|\r)+`, Skip: true},
}

var inputStrings = []string{
	"1",
	"1+12",
	"Hello #World",
	`x="mystring" // commented `,
	"1,22,333",
}

var TokenCounts = []int{1, 3, 2, 3, 3}

func TestLM(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gocyk.scanner")
	defer teardown()
	//
	LM, err := NewLMAdapter(testPatterns)
	if err != nil {
		t.Fatal(err)
	}
	for i, input := range inputStrings {
		t.Logf("------+-----------------+--------")
		sc, err := LM.Scanner(input)
		if err != nil {
			t.Error(err)
		}
		token := sc.NextToken()
		count := 0
		for token.TokType() != scanner.EOF {
			t.Logf(" %4d | %15s | @%5d", token.TokType(), token.Lexeme(), token.Span().From())
			token = sc.NextToken()
			count++
		}
		if count != TokenCounts[i] {
			t.Errorf("Expected token count for #%d to be %d, is %d", i, TokenCounts[i], count)
		}
	}
	t.Logf("------+-----------------+--------")
}

func TestLMVocabulary(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gocyk.scanner")
	defer teardown()
	//
	LM, err := NewLMAdapter(testPatterns)
	if err != nil {
		t.Fatal(err)
	}
	voc := LM.Vocabulary()
	if voc.Size() != 5 {
		t.Errorf("expected 5 terminals, have %d", voc.Size())
	}
	if tt, ok := voc.TokType("NUM"); !ok || tt != 3 {
		t.Errorf("expected NUM to have token type 3, is %d", tt)
	}
	if voc.IsTerminal("ws") {
		t.Errorf("expected skipped pattern not to be a terminal")
	}
	sc, _ := LM.Scanner(`x = 12`)
	tokens, err := scanner.Collect(sc)
	if err != nil {
		t.Fatal(err)
	}
	if len(tokens) != 3 || voc.Label(tokens[2].TokType()) != "NUM" {
		t.Errorf("expected 3 tokens, last one a NUM, have %v", tokens)
	}
	if span := tokens[2].Span(); span.From() != 4 || span.To() != 6 {
		t.Errorf("expected span of 12 to be (4…6), is %v", span)
	}
}

func TestLMUnconsumedInput(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gocyk.scanner")
	defer teardown()
	//
	LM, err := NewLMAdapter(testPatterns)
	if err != nil {
		t.Fatal(err)
	}
	sc, _ := LM.Scanner(`x = 12 $ 3`)
	tokens, err := scanner.Collect(sc)
	var ui *machines.UnconsumedInput
	if !errors.As(err, &ui) {
		t.Fatalf("expected unconsumed input error, have %v", err)
	}
	if len(tokens) != 3 {
		t.Errorf("expected 3 tokens before error, have %d", len(tokens))
	}
}

func TestLMIllegalName(t *testing.T) {
	if _, err := NewLMAdapter([]Pattern{{Name: "empty", Regex: "e"}}); err == nil {
		t.Errorf("expected pattern named 'empty' to be rejected")
	}
}
