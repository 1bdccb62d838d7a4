package cyk

import (
	"fmt"

	"github.com/npillmayer/gocyk"
	"github.com/npillmayer/gocyk/grammar"
	"github.com/npillmayer/gocyk/scanner"
	"github.com/npillmayer/gocyk/sparse"
	"github.com/npillmayer/gocyk/tree"
)

// Recognizer is a CYK recognizer for a grammar in Chomsky Normal Form.
// Create one with NewRecognizer.
type Recognizer struct {
	g       *grammar.Grammar
	memoize bool
}

// Option configures a recognizer.
type Option func(*Recognizer)

// Memoize switches memoization on or off (default is on). Without
// memoization, recognition produces identical results, but may take
// exponential time.
func Memoize(b bool) Option {
	return func(r *Recognizer) {
		r.memoize = b
	}
}

// NewRecognizer creates a recognizer for a CNF grammar g (see package cnf).
// The grammar is not checked; if recognition encounters a rule violating
// Chomsky Normal Form in a place where a binary rule is required, it will panic.
func NewRecognizer(g *grammar.Grammar, opts ...Option) *Recognizer {
	r := &Recognizer{g: g, memoize: true}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Grammar returns the grammar of the recognizer.
func (r *Recognizer) Grammar() *grammar.Grammar {
	return r.g
}

// Stats reports counts of a recognition run.
type Stats struct {
	Computed int // (length, offset, rule) triples computed
	MemoHits int // triples served from the memo table
	Nodes    int // derivation nodes created
}

func (s Stats) String() string {
	return fmt.Sprintf("computed=%d memo-hits=%d nodes=%d", s.Computed, s.MemoHits, s.Nodes)
}

// Recognize tries to derive tokens from the start symbol of the grammar.
// It returns a derivation tree, or nil if tokens are not in the language
// of the grammar.
func (r *Recognizer) Recognize(tokens []gocyk.Token) *tree.Node {
	t, _ := r.Run(tokens)
	return t
}

// Parse collects the tokens of a tokenizer and recognizes them. Errors are
// errors of the tokenizer. If the input is not in the language of the grammar,
// the result is (nil, nil).
func (r *Recognizer) Parse(t scanner.Tokenizer) (*tree.Node, error) {
	tokens, err := scanner.Collect(t)
	if err != nil {
		return nil, err
	}
	return r.Recognize(tokens), nil
}

// Run is like Recognize, but additionally returns statistics of the run.
func (r *Recognizer) Run(tokens []gocyk.Token) (*tree.Node, Stats) {
	start := r.g.Start()
	if len(tokens) == 0 {
		for _, i := range r.g.RulesFor(start.Name) {
			if r.g.Rule(i).IsEpsilon() {
				return tree.NewInner(start, i), Stats{Nodes: 1}
			}
		}
		return nil, Stats{}
	}
	rc := newRun(r, tokens)
	for _, i := range r.g.RulesFor(start.Name) {
		if node := rc.derive(len(tokens), 0, i); node >= 0 {
			root := rc.materialize(node)
			tracer().Debugf("recognized input of length %d: %s", len(tokens), rc.stats)
			return root, rc.stats
		}
	}
	tracer().Debugf("no derivation for input of length %d: %s", len(tokens), rc.stats)
	return nil, rc.stats
}

// --- Recognition run -------------------------------------------------------

// Memo states. Values >= 0 are indices into the node arena.
const (
	pending int32 = sparse.DefaultNullValue
	failed  int32 = -1
)

// arenaNode is a derivation step. Binary steps refer to the arena indices of
// their sub-derivations, terminal steps to a token position.
type arenaNode struct {
	rule        int
	left, right int32 // arena indices, -1 for terminal steps
	pos         int   // token position for terminal steps
}

// run holds the state of a single recognition.
type run struct {
	g      *grammar.Grammar
	tokens []gocyk.Token
	memo   *sparse.IntMatrix // rows: (length-1)*n + offset, columns: rules
	arena  []arenaNode
	heads  map[string][]int // rule indices by LHS, filled on demand
	stats  Stats
}

func newRun(r *Recognizer, tokens []gocyk.Token) *run {
	rc := &run{g: r.g, tokens: tokens, heads: make(map[string][]int)}
	if r.memoize {
		n := len(tokens)
		rc.memo = sparse.NewIntMatrix(n*n, r.g.Size(), pending)
	}
	return rc
}

func (rc *run) row(length, offset int) int {
	return (length-1)*len(rc.tokens) + offset
}

// derive tries to derive the span (length, offset) with rule #ruleIdx.
// It returns the arena index of the derivation, or -1.
func (rc *run) derive(length, offset, ruleIdx int) int32 {
	if offset >= len(rc.tokens) || offset+length > len(rc.tokens) {
		return failed
	}
	if rc.memo != nil {
		if v := rc.memo.Value(rc.row(length, offset), ruleIdx); v != pending {
			rc.stats.MemoHits++
			return v
		}
	}
	rc.stats.Computed++
	result := rc.compute(length, offset, ruleIdx)
	if rc.memo != nil {
		rc.memo.Set(rc.row(length, offset), ruleIdx, result)
	}
	return result
}

func (rc *run) compute(length, offset, ruleIdx int) int32 {
	rule := rc.g.Rule(ruleIdx)
	if length == 1 {
		if rule.IsTerminal() && rule.At(0).Token == rc.tokens[offset].TokType() {
			return rc.add(arenaNode{rule: ruleIdx, left: -1, right: -1, pos: offset})
		}
		return failed
	}
	switch rule.Len() {
	case 1:
		return failed
	case 2:
	default:
		panic(fmt.Sprintf("cyk: rule #%d %v is not in Chomsky Normal Form", ruleIdx, rule))
	}
	B, C := rule.At(0), rule.At(1)
	for split := length - 1; split >= 1; split-- {
		left := rc.first(B, split, offset)
		if left < 0 {
			continue
		}
		right := rc.first(C, length-split, offset+split)
		if right < 0 {
			continue
		}
		return rc.add(arenaNode{rule: ruleIdx, left: left, right: right})
	}
	return failed
}

// first returns the first derivation of span (length, offset) by a rule for
// non-terminal A, in grammar order.
func (rc *run) first(A grammar.Symbol, length, offset int) int32 {
	for _, i := range rc.rulesFor(A.Name) {
		if node := rc.derive(length, offset, i); node >= 0 {
			return node
		}
	}
	return failed
}

func (rc *run) rulesFor(name string) []int {
	inxs, ok := rc.heads[name]
	if !ok {
		inxs = rc.g.RulesFor(name)
		rc.heads[name] = inxs
	}
	return inxs
}

func (rc *run) add(node arenaNode) int32 {
	rc.arena = append(rc.arena, node)
	return int32(len(rc.arena) - 1)
}

// materialize creates a derivation tree from arena entries. Every tree node is
// a fresh node, owned by its parent.
func (rc *run) materialize(inx int32) *tree.Node {
	an := rc.arena[inx]
	rule := rc.g.Rule(an.rule)
	rc.stats.Nodes++
	if an.left < 0 {
		rc.stats.Nodes++
		leaf := tree.NewLeaf(rule.At(0), rc.tokens[an.pos], uint64(an.pos))
		return tree.NewInner(rule.LHS, an.rule, leaf)
	}
	return tree.NewInner(rule.LHS, an.rule, rc.materialize(an.left), rc.materialize(an.right))
}
