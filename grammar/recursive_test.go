package grammar

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reallybigsky/formal-lang-course/automaton"
)

func nfaHeads(nfas map[string]*automaton.NFA) []string {
	out := make([]string, 0, len(nfas))
	for head := range nfas {
		out = append(out, head)
	}
	return out
}

// TestToRecursiveAutomaton_LanguagePreservedAfterMinimize mirrors
// test_recursive_automatons's "S -> A B; A -> a; B -> C; C -> c" case, and
// additionally checks that Minimize doesn't change the per-nonterminal
// languages (spec §4.7 "minimization is offered but optional").
func TestToRecursiveAutomaton_LanguagePreservedAfterMinimize(t *testing.T) {
	c := parseOrFail(t, `
S -> A B
A -> a
B -> C
C -> c
`)
	ra := ToRecursiveAutomaton(ToECFG(c))
	assert.True(t, acceptsWord(ra.NFAs["S"], []string{"A", "B"}))
	assert.True(t, acceptsWord(ra.NFAs["B"], []string{"C"}))
	assert.False(t, acceptsWord(ra.NFAs["B"], []string{"c"}))

	minimized := ra.Minimize()
	assert.Equal(t, ra.Start, minimized.Start)
	assert.ElementsMatch(t, nfaHeads(ra.NFAs), nfaHeads(minimized.NFAs))

	assert.True(t, acceptsWord(minimized.NFAs["S"], []string{"A", "B"}))
	assert.False(t, acceptsWord(minimized.NFAs["S"], []string{"A"}))
	assert.True(t, acceptsWord(minimized.NFAs["A"], []string{"a"}))
	assert.True(t, acceptsWord(minimized.NFAs["B"], []string{"C"}))
	assert.True(t, acceptsWord(minimized.NFAs["C"], []string{"c"}))
}

// TestToRecursiveAutomaton_UnionEpsilonSelfReference mirrors
// test_recursive_automatons's "S -> S S | a b | $" case: a self-recursive,
// epsilon-producing rule compiled to one NFA.
func TestToRecursiveAutomaton_UnionEpsilonSelfReference(t *testing.T) {
	c := parseOrFail(t, "S -> S S | a b | $")
	ra := ToRecursiveAutomaton(ToECFG(c))
	n := ra.NFAs["S"]
	assert.True(t, acceptsWord(n, []string{}))
	assert.True(t, acceptsWord(n, []string{"a", "b"}))
	assert.True(t, acceptsWord(n, []string{"S", "S"}))
	assert.False(t, acceptsWord(n, []string{"b", "a"}))
}

// TestRecursiveAutomaton_Decompositions checks that every per-nonterminal
// NFA produces a well-formed boolean decomposition (spec §4.7 "per-
// nonterminal boolean decompositions are materialized when the consuming
// algorithm demands them"), keyed by the same nonterminal set as NFAs.
func TestRecursiveAutomaton_Decompositions(t *testing.T) {
	c := parseOrFail(t, `
S -> a b c D
D -> E
E -> d
`)
	ra := ToRecursiveAutomaton(ToECFG(c))
	decomps, err := ra.Decompositions()
	require.NoError(t, err)
	assert.ElementsMatch(t, nfaHeads(ra.NFAs), decompHeads(decomps))
	for head, d := range decomps {
		assert.NotEmpty(t, d.States, "nonterminal %s has no states", head)
	}
}

func decompHeads(decomps map[string]*automaton.Decomposition) []string {
	out := make([]string, 0, len(decomps))
	for head := range decomps {
		out = append(out, head)
	}
	return out
}
