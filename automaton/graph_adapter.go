package automaton

import "github.com/reallybigsky/formal-lang-course/graph"

// FromGraph turns g into an NFA: every vertex becomes a state, every
// labeled edge becomes a transition (spec §4.2 "Graph -> NFA"). startIDs and
// finalIDs select the start/final sets; either may be nil, in which case it
// defaults to the full vertex set (spec §3, §4.2). The operation is a pure
// data reshaping -- no minimization is performed here.
func FromGraph(g *graph.Graph, startIDs, finalIDs []string) *NFA {
	n := NewNFA()
	for _, v := range g.Vertices() {
		n.AddState(v)
	}
	for _, e := range g.Edges() {
		n.AddTransition(e.From, e.Label, e.To)
	}

	starts := startIDs
	if starts == nil {
		starts = g.Vertices()
	}
	finals := finalIDs
	if finals == nil {
		finals = g.Vertices()
	}
	for _, s := range starts {
		_ = n.SetStart(s)
	}
	for _, f := range finals {
		_ = n.SetFinal(f)
	}
	return n
}
