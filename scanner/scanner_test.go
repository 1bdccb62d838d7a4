package scanner

import (
	"errors"
	"testing"

	"github.com/npillmayer/gocyk"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

// sliceTokenizer produces a fixed sequence of tokens and may fail at a given
// position.
type sliceTokenizer struct {
	tokens []gocyk.Token
	pos    int
	failAt int
	err    func(error)
}

func (st *sliceTokenizer) SetErrorHandler(h func(error)) {
	st.err = h
}

func (st *sliceTokenizer) NextToken() gocyk.Token {
	if st.pos == st.failAt {
		st.err(errBadInput)
	}
	if st.pos >= len(st.tokens) {
		return MakeDefaultToken(EOF, "", gocyk.Span{})
	}
	st.pos++
	return st.tokens[st.pos-1]
}

var errBadInput = errors.New("bad input")

func makeTokens(lexemes ...string) []gocyk.Token {
	tokens := make([]gocyk.Token, len(lexemes))
	for i, l := range lexemes {
		tokens[i] = MakeDefaultToken(gocyk.TokType(i+1), l, gocyk.Span{uint64(i), uint64(i + 1)})
	}
	return tokens
}

func TestCollect(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gocyk.scanner")
	defer teardown()
	//
	st := &sliceTokenizer{tokens: makeTokens("1", "+", "2"), failAt: -1}
	tokens, err := Collect(st)
	if err != nil {
		t.Fatal(err)
	}
	if len(tokens) != 3 {
		t.Fatalf("expected 3 tokens, have %d", len(tokens))
	}
	if tokens[1].Lexeme() != "+" || tokens[1].TokType() != 2 {
		t.Errorf("expected token #1 to be '+'|2, is %v", tokens[1])
	}
}

func TestCollectError(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gocyk.scanner")
	defer teardown()
	//
	st := &sliceTokenizer{tokens: makeTokens("1", "+", "2"), failAt: 2}
	tokens, err := Collect(st)
	if !errors.Is(err, errBadInput) {
		t.Fatalf("expected error to wrap bad input, is %v", err)
	}
	if len(tokens) != 2 {
		t.Errorf("expected 2 tokens before error, have %d", len(tokens))
	}
}
