package cfpq

import (
	"context"

	"github.com/reallybigsky/formal-lang-course/grammar"
	"github.com/reallybigsky/formal-lang-course/graph"
	"github.com/reallybigsky/formal-lang-course/rpq"
)

// Backend selects a CFPQ implementation (spec §4.10).
type Backend int

const (
	// BackendHellings is the worklist algorithm of spec §4.8.
	BackendHellings Backend = iota
	// BackendMatrix is the per-nonterminal matrix fixed point of spec §4.9.
	BackendMatrix
)

// Query answers the top-level CFPQ wrapper of spec §4.10: given a start
// nonterminal startVar (default c.Start), return { (u,v) | (u,startVar,v) in
// closure, u in startV, v in finalV }. startV/finalV nil default to the
// full vertex set.
func Query(ctx context.Context, c *grammar.CFG, g *graph.Graph, backend Backend, startVar string, startV, finalV []string) ([]rpq.Pair, error) {
	if startVar == "" {
		startVar = c.Start
	}
	if !c.IsNonterminal(startVar) {
		return nil, ErrUnknownStartVar
	}

	var triples []Triple
	var err error
	switch backend {
	case BackendHellings:
		triples, err = Hellings(ctx, c, g)
	case BackendMatrix:
		triples, err = Matrix(ctx, c, g)
	default:
		return nil, ErrUnknownBackend
	}
	if err != nil {
		return nil, err
	}

	var startSet, finalSet map[string]struct{}
	if startV != nil {
		startSet = make(map[string]struct{}, len(startV))
		for _, v := range startV {
			startSet[v] = struct{}{}
		}
	}
	if finalV != nil {
		finalSet = make(map[string]struct{}, len(finalV))
		for _, v := range finalV {
			finalSet[v] = struct{}{}
		}
	}

	seen := make(map[rpq.Pair]struct{})
	var out []rpq.Pair
	for _, t := range triples {
		if t.Label != startVar {
			continue
		}
		if startSet != nil {
			if _, ok := startSet[t.From]; !ok {
				continue
			}
		}
		if finalSet != nil {
			if _, ok := finalSet[t.To]; !ok {
				continue
			}
		}
		p := rpq.Pair{From: t.From, To: t.To}
		if _, dup := seen[p]; dup {
			continue
		}
		seen[p] = struct{}{}
		out = append(out, p)
	}
	return out, nil
}
