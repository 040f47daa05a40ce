package automaton

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dfaAccepts(n *NFA, word []string) bool {
	cur := n.StartStates()
	if len(cur) != 1 {
		return false
	}
	state := cur[0]
	for _, label := range word {
		tos := n.Targets(state, label)
		if len(tos) == 0 {
			return false
		}
		for to := range tos {
			state = to
		}
	}
	return n.IsFinal(state)
}

func TestToDFA_IsDeterministic(t *testing.T) {
	node, err := ParseRegex("a.b*|c")
	require.NoError(t, err)
	nfa := CompileRegex(node)
	dfa := nfa.ToDFA()

	require.Len(t, dfa.StartStates(), 1)
	for _, s := range dfa.States() {
		for _, label := range dfa.Labels() {
			assert.LessOrEqual(t, len(dfa.Targets(s, label)), 1)
		}
		assert.Empty(t, dfa.Targets(s, Epsilon))
	}
}

func TestToDFA_PreservesLanguage(t *testing.T) {
	node, err := ParseRegex("a.b*|c")
	require.NoError(t, err)
	nfa := CompileRegex(node)
	dfa := nfa.ToDFA()

	cases := []struct {
		word   []string
		accept bool
	}{
		{[]string{"a"}, true},
		{[]string{"a", "b", "b"}, true},
		{[]string{"c"}, true},
		{[]string{"c", "b"}, false},
		{[]string{}, false},
	}
	for _, c := range cases {
		assert.Equal(t, c.accept, dfaAccepts(dfa, c.word), "word=%v", c.word)
	}
}

func TestToDFA_EmptyLanguage(t *testing.T) {
	n := NewNFA()
	n.AddState("s")
	_ = n.SetStart("s")
	dfa := n.ToDFA()
	assert.False(t, dfaAccepts(dfa, []string{"a"}))
}
