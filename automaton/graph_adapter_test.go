package automaton

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reallybigsky/formal-lang-course/graph"
)

func TestFromGraph_DefaultsToFullVertexSet(t *testing.T) {
	g := graph.New()
	_, err := g.AddEdge("1", "a", "2")
	require.NoError(t, err)
	_, err = g.AddEdge("2", "b", "3")
	require.NoError(t, err)

	n := FromGraph(g, nil, nil)

	assert.ElementsMatch(t, g.Vertices(), n.States())
	for _, v := range g.Vertices() {
		assert.True(t, n.IsStart(v))
		assert.True(t, n.IsFinal(v))
	}
	assert.Contains(t, n.Targets("1", "a"), "2")
	assert.Contains(t, n.Targets("2", "b"), "3")
}

func TestFromGraph_ExplicitStartFinal(t *testing.T) {
	g := graph.New()
	_, err := g.AddEdge("1", "a", "2")
	require.NoError(t, err)

	n := FromGraph(g, []string{"1"}, []string{"2"})

	assert.True(t, n.IsStart("1"))
	assert.False(t, n.IsStart("2"))
	assert.True(t, n.IsFinal("2"))
	assert.False(t, n.IsFinal("1"))
}
