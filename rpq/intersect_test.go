package rpq

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reallybigsky/formal-lang-course/automaton"
)

// TestIntersect_KroneckerCorrectness is property 5 (spec §8): the
// intersection's decomposition matches kron(decomp(a), decomp(b))
// cell-for-cell under the §4.3 state-pairing scheme.
func TestIntersect_KroneckerCorrectness(t *testing.T) {
	a := automaton.NewNFA()
	a.AddTransition("a0", "x", "a1")
	_ = a.SetStart("a0")
	_ = a.SetFinal("a1")

	b := automaton.NewNFA()
	b.AddTransition("b0", "x", "b1")
	b.AddTransition("b1", "y", "b2")
	_ = b.SetStart("b0")
	_ = b.SetFinal("b2")

	da, err := a.Decompose()
	require.NoError(t, err)
	db, err := b.Decompose()
	require.NoError(t, err)
	want := automaton.Kron(da, db)

	got, err := Intersect(a, b)
	require.NoError(t, err)

	assert.Equal(t, want.States, got.States)
	assert.Equal(t, want.Pairs, got.Pairs)
	require.Equal(t, len(want.Mats), len(got.Mats))
	for label, wm := range want.Mats {
		gm, ok := got.Mats[label]
		require.True(t, ok, "label %q", label)
		assert.ElementsMatch(t, wm.Nonzero(), gm.Nonzero())
	}
}

func TestIntersect_EmptySide(t *testing.T) {
	a := automaton.NewNFA()
	b := automaton.NewNFA()
	b.AddTransition("b0", "x", "b1")

	_, err := Intersect(a, b)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrEmptyAutomaton)
}
