package rpq

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reallybigsky/formal-lang-course/graph"
)

// TestBFSRPQ_S7 is scenario S7 (spec §8): r="a*", edge (0,a,1), sources
// [0]. separate=true expects {(0,1)}; separate=false expects {1}.
func TestBFSRPQ_S7(t *testing.T) {
	g := graph.New()
	_, err := g.AddEdge("0", "a", "1")
	require.NoError(t, err)

	sep, err := BFSReachablePerSource(context.Background(), "a*", g, []string{"0"}, nil)
	require.NoError(t, err)
	assert.Equal(t, []Pair{{From: "0", To: "1"}}, sep)

	single, err := BFSReachable(context.Background(), "a*", g, []string{"0"}, nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"1"}, single)
}

func TestBFSRPQ_EquivalentToRPQ(t *testing.T) {
	g := graph.New()
	_, err := g.AddEdge("0", "c", "0")
	require.NoError(t, err)
	_, err = g.AddEdge("0", "a", "1")
	require.NoError(t, err)
	_, err = g.AddEdge("1", "b", "2")
	require.NoError(t, err)
	_, err = g.AddEdge("1", "a", "3")
	require.NoError(t, err)

	startV := []string{"0"}
	pattern := "c*.a.b|a"

	closurePairs, err := RPQ(context.Background(), pattern, g, startV, nil)
	require.NoError(t, err)
	wantReachable := make(map[string]struct{})
	for _, p := range closurePairs {
		wantReachable[p.To] = struct{}{}
	}

	gotReachable, err := BFSReachable(context.Background(), pattern, g, startV, nil)
	require.NoError(t, err)
	gotSet := make(map[string]struct{}, len(gotReachable))
	for _, v := range gotReachable {
		gotSet[v] = struct{}{}
	}

	assert.Equal(t, wantReachable, gotSet)
}

func TestBFSRPQ_MultipleSourcesSeparate(t *testing.T) {
	g := graph.New()
	_, err := g.AddEdge("0", "a", "1")
	require.NoError(t, err)
	_, err = g.AddEdge("2", "a", "3")
	require.NoError(t, err)

	got, err := BFSReachablePerSource(context.Background(), "a", g, []string{"0", "2"}, nil)
	require.NoError(t, err)
	assert.ElementsMatch(t, []Pair{{From: "0", To: "1"}, {From: "2", To: "3"}}, got)
}

func TestBFSRPQ_FinalVRestriction(t *testing.T) {
	g := graph.New()
	_, err := g.AddEdge("0", "a", "1")
	require.NoError(t, err)
	_, err = g.AddEdge("0", "a", "2")
	require.NoError(t, err)

	got, err := BFSReachable(context.Background(), "a", g, []string{"0"}, []string{"1"})
	require.NoError(t, err)
	assert.Equal(t, []string{"1"}, got)
}
