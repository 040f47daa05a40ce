package rpq

import (
	"context"
	"fmt"

	"github.com/reallybigsky/formal-lang-course/automaton"
	"github.com/reallybigsky/formal-lang-course/bitmatrix"
	"github.com/reallybigsky/formal-lang-course/errs"
	"github.com/reallybigsky/formal-lang-course/graph"
)

// bfsEngine carries the decompositions and index bookkeeping shared by both
// BFS-RPQ modes (spec §4.5).
type bfsEngine struct {
	dr, dg   *automaton.Decomposition
	qr, v    int
	rStart   int
	rFinals  map[int]struct{}
	labels   []string
	dgIndex  map[string]int
}

func newBFSEngine(pattern string, g *graph.Graph) (*bfsEngine, error) {
	ar, err := regexToMinDFA(pattern)
	if err != nil {
		return nil, err
	}
	dr, err := ar.Decompose()
	if err != nil {
		return nil, err
	}
	if len(dr.States) == 0 {
		return nil, ErrEmptyAutomaton
	}

	ag := automaton.FromGraph(g, nil, nil)
	dg, err := ag.Decompose()
	if err != nil {
		return nil, err
	}

	rIndex := make(map[string]int, len(dr.States))
	for i, s := range dr.States {
		rIndex[s] = i
	}
	dgIndex := make(map[string]int, len(dg.States))
	for i, s := range dg.States {
		dgIndex[s] = i
	}

	starts := ar.StartStates()
	if len(starts) != 1 {
		return nil, fmt.Errorf("rpq: min dfa has %d start states, want 1: %w", len(starts), errs.ShapeMismatch)
	}

	finals := make(map[int]struct{}, len(ar.FinalStates()))
	for _, f := range ar.FinalStates() {
		finals[rIndex[f]] = struct{}{}
	}

	labelSet := make(map[string]struct{}, len(dr.Mats)+len(dg.Mats))
	for l := range dr.Mats {
		labelSet[l] = struct{}{}
	}
	for l := range dg.Mats {
		labelSet[l] = struct{}{}
	}
	labels := make([]string, 0, len(labelSet))
	for l := range labelSet {
		labels = append(labels, l)
	}

	return &bfsEngine{
		dr: dr, dg: dg,
		qr: len(dr.States), v: len(dg.States),
		rStart:  rIndex[starts[0]],
		rFinals: finals,
		labels:  labels,
		dgIndex: dgIndex,
	}, nil
}

func (e *bfsEngine) matFor(d *automaton.Decomposition, label string, size int) *bitmatrix.CSR {
	if m, ok := d.Mats[label]; ok {
		return m
	}
	return bitmatrix.Zero(size, size)
}

// mergeInto implements the BFS-RPQ merge rule (spec §4.5 step 4): for each
// nonzero row of stepL at (i,j), OR stepR's row i onto row
// floor(i/qr)*qr+j of dst.
func mergeInto(dst *bitmatrix.Row, stepL, stepR *bitmatrix.Row, qr int) {
	for i := 0; i < stepL.Rows(); i++ {
		block := i / qr
		for _, j := range stepL.RowNonzero(i) {
			dst.OrRowIndexed(block*qr+j, stepR, i)
		}
	}
}

// run drives the iteration of spec §4.5 to a fixed point, given an already
// seeded (frontierL, frontierR, visitedL, visitedR) of shape (blocks*qr, qr)
// and (blocks*qr, v). Returns the final visitedR.
func (e *bfsEngine) run(ctx context.Context, frontierL, frontierR, visitedL, visitedR *bitmatrix.Row) (*bitmatrix.Row, error) {
	for {
		select {
		case <-ctx.Done():
			return nil, fmt.Errorf("rpq.BFSRPQ: %w: %v", errs.Cancelled, ctx.Err())
		default:
		}

		prevNNZ := visitedL.NNZ() + visitedR.NNZ()

		for i := 0; i < frontierR.Rows(); i++ {
			frontierR.AndNotRow(i, visitedR)
		}

		newFrontierL := frontierL.Clone()
		newFrontierR := frontierR.Clone()

		for _, label := range e.labels {
			drM := e.matFor(e.dr, label, e.qr)
			dgM := e.matFor(e.dg, label, e.v)

			stepL, err := bitmatrix.MulRowCSR(frontierL, drM)
			if err != nil {
				return nil, err
			}
			stepR, err := bitmatrix.MulRowCSR(frontierR, dgM)
			if err != nil {
				return nil, err
			}
			mergeInto(newFrontierR, stepL, stepR, e.qr)
		}

		mergeInto(visitedR, frontierL, frontierR, e.qr)

		frontierL, frontierR = newFrontierL, newFrontierR

		newNNZ := visitedL.NNZ() + visitedR.NNZ()
		if newNNZ == prevNNZ {
			return visitedR, nil
		}
	}
}

func seedIdentityL(rows, qr int) (*bitmatrix.Row, error) {
	l, err := bitmatrix.NewRow(rows, qr)
	if err != nil {
		return nil, err
	}
	for i := 0; i < rows; i++ {
		l.Set(i, i%qr)
	}
	return l, nil
}

func vertexIndices(idx map[string]int, vertices []string) ([]int, error) {
	out := make([]int, len(vertices))
	for i, vtx := range vertices {
		j, ok := idx[vtx]
		if !ok {
			return nil, fmt.Errorf("rpq: unknown vertex %q: %w", vtx, errs.UnknownSymbol)
		}
		out[i] = j
	}
	return out, nil
}

// BFSReachable answers the separate=false mode of spec §4.5: a single
// multi-source BFS from startV, returning every vertex reachable via a
// word in L(pattern) that is also recognized by a final regex state.
// startV nil defaults to the full vertex set.
func BFSReachable(ctx context.Context, pattern string, g *graph.Graph, startV, finalV []string) ([]string, error) {
	e, err := newBFSEngine(pattern, g)
	if err != nil {
		return nil, err
	}
	if startV == nil {
		startV = g.Vertices()
	}
	srcIdx, err := vertexIndices(e.dgIndex, startV)
	if err != nil {
		return nil, err
	}
	sources := make(map[int]struct{}, len(srcIdx))
	for _, i := range srcIdx {
		sources[i] = struct{}{}
	}

	frontierL, err := seedIdentityL(e.qr, e.qr)
	if err != nil {
		return nil, err
	}
	visitedL, err := seedIdentityL(e.qr, e.qr)
	if err != nil {
		return nil, err
	}
	frontierR, err := bitmatrix.NewRow(e.qr, e.v)
	if err != nil {
		return nil, err
	}
	visitedR, err := bitmatrix.NewRow(e.qr, e.v)
	if err != nil {
		return nil, err
	}
	for _, i := range srcIdx {
		frontierR.Set(e.rStart, i)
	}

	finalVisited, err := e.run(ctx, frontierL, frontierR, visitedL, visitedR)
	if err != nil {
		return nil, err
	}

	var finalSet map[int]struct{}
	if finalV != nil {
		fvIdx, err := vertexIndices(e.dgIndex, finalV)
		if err != nil {
			return nil, err
		}
		finalSet = make(map[int]struct{}, len(fvIdx))
		for _, i := range fvIdx {
			finalSet[i] = struct{}{}
		}
	}

	seen := make(map[string]struct{})
	var out []string
	for f := range e.rFinals {
		for _, col := range finalVisited.RowNonzero(f) {
			if _, isSrc := sources[col]; isSrc {
				continue
			}
			if finalSet != nil {
				if _, ok := finalSet[col]; !ok {
					continue
				}
			}
			vtx := e.dg.States[col]
			if _, dup := seen[vtx]; dup {
				continue
			}
			seen[vtx] = struct{}{}
			out = append(out, vtx)
		}
	}
	return out, nil
}

// BFSReachablePerSource answers the separate=true mode of spec §4.5: one
// BFS block per source vertex, returning pairs (source, reached) instead of
// a flat reachable-vertex set.
func BFSReachablePerSource(ctx context.Context, pattern string, g *graph.Graph, startV, finalV []string) ([]Pair, error) {
	e, err := newBFSEngine(pattern, g)
	if err != nil {
		return nil, err
	}
	if startV == nil {
		startV = g.Vertices()
	}
	srcIdx, err := vertexIndices(e.dgIndex, startV)
	if err != nil {
		return nil, err
	}
	k := len(srcIdx)
	rows := k * e.qr

	frontierL, err := seedIdentityL(rows, e.qr)
	if err != nil {
		return nil, err
	}
	visitedL, err := seedIdentityL(rows, e.qr)
	if err != nil {
		return nil, err
	}
	frontierR, err := bitmatrix.NewRow(rows, e.v)
	if err != nil {
		return nil, err
	}
	visitedR, err := bitmatrix.NewRow(rows, e.v)
	if err != nil {
		return nil, err
	}
	for b, i := range srcIdx {
		frontierR.Set(b*e.qr+e.rStart, i)
	}

	finalVisited, err := e.run(ctx, frontierL, frontierR, visitedL, visitedR)
	if err != nil {
		return nil, err
	}

	var finalSet map[int]struct{}
	if finalV != nil {
		fvIdx, err := vertexIndices(e.dgIndex, finalV)
		if err != nil {
			return nil, err
		}
		finalSet = make(map[int]struct{}, len(fvIdx))
		for _, i := range fvIdx {
			finalSet[i] = struct{}{}
		}
	}

	var out []Pair
	for b, srcVtx := range startV {
		for f := range e.rFinals {
			for _, col := range finalVisited.RowNonzero(b*e.qr + f) {
				if col == srcIdx[b] {
					continue
				}
				if finalSet != nil {
					if _, ok := finalSet[col]; !ok {
						continue
					}
				}
				out = append(out, Pair{From: srcVtx, To: e.dg.States[col]})
			}
		}
	}
	return out, nil
}
