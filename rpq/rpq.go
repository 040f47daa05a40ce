package rpq

import (
	"context"

	"github.com/reallybigsky/formal-lang-course/automaton"
	"github.com/reallybigsky/formal-lang-course/bitmatrix"
	"github.com/reallybigsky/formal-lang-course/graph"
)

// Pair is an ordered pair of graph vertex ids, the unit of RPQ/CFPQ output.
type Pair struct {
	From, To string
}

// regexToMinDFA parses, Thompson-compiles, subset-constructs, and minimizes
// r (spec §4.4 step 1, "regex_to_min_dfa").
func regexToMinDFA(r string) (*automaton.NFA, error) {
	node, err := automaton.ParseRegex(r)
	if err != nil {
		return nil, err
	}
	return automaton.CompileRegex(node).ToDFA().Minimize(), nil
}

// RPQ answers a regular path query over g (spec §4.4, the matrix-closure
// variant): the set of pairs (u,v) with u in startV, v in finalV, such that
// some path from u to v in g spells a word in L(pattern). startV/finalV
// nil default to the full vertex set (spec §3).
func RPQ(ctx context.Context, pattern string, g *graph.Graph, startV, finalV []string) ([]Pair, error) {
	aR, err := regexToMinDFA(pattern)
	if err != nil {
		return nil, err
	}
	aG := automaton.FromGraph(g, startV, finalV)

	d, err := Intersect(aG, aR)
	if err != nil {
		return nil, err
	}

	adj, err := d.CollapsedAdjacency()
	if err != nil {
		return nil, err
	}
	closure, err := bitmatrix.Closure(ctx, adj)
	if err != nil {
		return nil, err
	}

	startIdx := startFinalIndices(d, aG, aR, true)
	finalIdx := startFinalIndices(d, aG, aR, false)

	seen := make(map[Pair]struct{})
	var out []Pair
	for _, c := range closure.Nonzero() {
		if _, ok := startIdx[c.Row]; !ok {
			continue
		}
		if _, ok := finalIdx[c.Col]; !ok {
			continue
		}
		p := Pair{From: aG.States()[d.Pairs[c.Row][0]], To: aG.States()[d.Pairs[c.Col][0]]}
		if _, dup := seen[p]; dup {
			continue
		}
		seen[p] = struct{}{}
		out = append(out, p)
	}
	return out, nil
}
