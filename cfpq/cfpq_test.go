package cfpq

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reallybigsky/formal-lang-course/errs"
	"github.com/reallybigsky/formal-lang-course/grammar"
	"github.com/reallybigsky/formal-lang-course/graph"
	"github.com/reallybigsky/formal-lang-course/rpq"
)

func tripleSet(ts []Triple) map[Triple]struct{} {
	out := make(map[Triple]struct{}, len(ts))
	for _, t := range ts {
		out[t] = struct{}{}
	}
	return out
}

func pairSetOf(ps []rpq.Pair) map[rpq.Pair]struct{} {
	out := make(map[rpq.Pair]struct{}, len(ps))
	for _, p := range ps {
		out[p] = struct{}{}
	}
	return out
}

// assertBackendsAgree is property 3 (spec §8): Hellings and Matrix must
// return identical triple sets for the same (grammar, graph).
func assertBackendsAgree(t *testing.T, c *grammar.CFG, g *graph.Graph) map[Triple]struct{} {
	t.Helper()
	h, err := Hellings(context.Background(), c, g)
	require.NoError(t, err)
	m, err := Matrix(context.Background(), c, g)
	require.NoError(t, err)
	hs, ms := tripleSet(h), tripleSet(m)
	assert.Equal(t, hs, ms, "Hellings and Matrix disagree")
	return hs
}

// TestCFPQ_S4_TrivialEpsilon is scenario S4 (spec §8): grammar S -> $;
// edges (0,a,1),(1,b,0); expected {(0,0),(1,1)}.
func TestCFPQ_S4_TrivialEpsilon(t *testing.T) {
	c, err := grammar.ParseCFG(strings.NewReader("S -> $"))
	require.NoError(t, err)

	g := graph.New()
	_, err = g.AddEdge("0", "a", "1")
	require.NoError(t, err)
	_, err = g.AddEdge("1", "b", "0")
	require.NoError(t, err)

	assertBackendsAgree(t, c, g)

	got, err := Query(context.Background(), c, g, BackendHellings, "", nil, nil)
	require.NoError(t, err)
	assert.Equal(t, map[rpq.Pair]struct{}{{From: "0", To: "0"}: {}, {From: "1", To: "1"}: {}}, pairSetOf(got))
}

// TestCFPQ_S5_Balanced is scenario S5: grammar
// S -> A B C | S S | s; A -> a; B -> b; C -> c;
// edges (0,s,0),(0,a,1),(1,b,2),(2,c,3); expected {(0,3),(0,0)}.
func TestCFPQ_S5_Balanced(t *testing.T) {
	c, err := grammar.ParseCFG(strings.NewReader(`
S -> A B C | S S | s
A -> a
B -> b
C -> c
`))
	require.NoError(t, err)

	g := graph.New()
	_, err = g.AddEdge("0", "s", "0")
	require.NoError(t, err)
	_, err = g.AddEdge("0", "a", "1")
	require.NoError(t, err)
	_, err = g.AddEdge("1", "b", "2")
	require.NoError(t, err)
	_, err = g.AddEdge("2", "c", "3")
	require.NoError(t, err)

	assertBackendsAgree(t, c, g)

	got, err := Query(context.Background(), c, g, BackendMatrix, "", nil, nil)
	require.NoError(t, err)
	assert.Equal(t, map[rpq.Pair]struct{}{{From: "0", To: "3"}: {}, {From: "0", To: "0"}: {}}, pairSetOf(got))
}

// TestCFPQ_S6_EpsilonNonterminal is scenario S6: grammar
// S -> A B | S S; A -> a | $; B -> b;
// edges (0,a,1),(1,b,2),(2,a,3),(3,b,4);
// expected {(0,2),(2,4),(1,2),(3,4),(1,4),(0,4)}.
func TestCFPQ_S6_EpsilonNonterminal(t *testing.T) {
	c, err := grammar.ParseCFG(strings.NewReader(`
S -> A B | S S
A -> a | $
B -> b
`))
	require.NoError(t, err)

	g := graph.New()
	_, err = g.AddEdge("0", "a", "1")
	require.NoError(t, err)
	_, err = g.AddEdge("1", "b", "2")
	require.NoError(t, err)
	_, err = g.AddEdge("2", "a", "3")
	require.NoError(t, err)
	_, err = g.AddEdge("3", "b", "4")
	require.NoError(t, err)

	assertBackendsAgree(t, c, g)

	got, err := Query(context.Background(), c, g, BackendHellings, "", nil, nil)
	require.NoError(t, err)
	want := map[rpq.Pair]struct{}{
		{From: "0", To: "2"}: {}, {From: "2", To: "4"}: {},
		{From: "1", To: "2"}: {}, {From: "3", To: "4"}: {},
		{From: "1", To: "4"}: {}, {From: "0", To: "4"}: {},
	}
	assert.Equal(t, want, pairSetOf(got))
}

func TestCFPQ_Cancelled(t *testing.T) {
	c, err := grammar.ParseCFG(strings.NewReader("S -> A B\nA -> a\nB -> b"))
	require.NoError(t, err)
	g := graph.New()
	_, err = g.AddEdge("0", "a", "1")
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err = Hellings(ctx, c, g)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.Cancelled)

	_, err = Matrix(ctx, c, g)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.Cancelled)
}

func TestCFPQ_UnknownBackend(t *testing.T) {
	c, err := grammar.ParseCFG(strings.NewReader("S -> a"))
	require.NoError(t, err)
	g := graph.New()
	_, err = g.AddEdge("0", "a", "1")
	require.NoError(t, err)

	_, err = Query(context.Background(), c, g, Backend(99), "", nil, nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnknownBackend)
}

func TestCFPQ_UnknownStartVar(t *testing.T) {
	c, err := grammar.ParseCFG(strings.NewReader("S -> a"))
	require.NoError(t, err)
	g := graph.New()
	_, err = g.AddEdge("0", "a", "1")
	require.NoError(t, err)

	_, err = Query(context.Background(), c, g, BackendHellings, "NotAVariable", nil, nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnknownStartVar)
	assert.ErrorIs(t, err, errs.UnknownSymbol)
}
