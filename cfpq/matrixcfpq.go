package cfpq

import (
	"context"
	"fmt"

	"github.com/reallybigsky/formal-lang-course/bitmatrix"
	"github.com/reallybigsky/formal-lang-course/errs"
	"github.com/reallybigsky/formal-lang-course/grammar"
	"github.com/reallybigsky/formal-lang-course/graph"
)

// Matrix computes the full CFPQ closure of g against c via the per-
// nonterminal boolean matrix fixed point (spec §4.9). It must return
// exactly the same triple set as Hellings on the same inputs (spec §8
// property 3).
func Matrix(ctx context.Context, c *grammar.CFG, g *graph.Graph) ([]Triple, error) {
	w, err := grammar.ToWCNF(c)
	if err != nil {
		return nil, err
	}
	classes := grammar.Classify(w)

	vertices := g.Vertices()
	n := len(vertices)
	idx := make(map[string]int, n)
	for i, v := range vertices {
		idx[v] = i
	}

	nonterminals := make(map[string]struct{})
	for _, p := range w.Productions {
		nonterminals[p.Head] = struct{}{}
	}

	if n == 0 {
		return nil, nil
	}
	t := make(map[string]*bitmatrix.CSR, len(nonterminals))
	for a := range nonterminals {
		t[a] = bitmatrix.Zero(n, n)
	}

	cellsOf := make(map[string][]bitmatrix.Cell, len(nonterminals))
	for _, e := range g.Edges() {
		for a := range classes.Term[e.Label] {
			cellsOf[a] = append(cellsOf[a], bitmatrix.Cell{Row: idx[e.From], Col: idx[e.To]})
		}
	}
	for _, v := range vertices {
		for a := range classes.Eps {
			cellsOf[a] = append(cellsOf[a], bitmatrix.Cell{Row: idx[v], Col: idx[v]})
		}
	}
	for a, cells := range cellsOf {
		m, err := bitmatrix.NewCSR(n, n, cells)
		if err != nil {
			return nil, err
		}
		t[a], err = t[a].Add(m)
		if err != nil {
			return nil, err
		}
	}

	totalNNZ := func() int {
		sum := 0
		for _, m := range t {
			sum += m.NNZ()
		}
		return sum
	}

	prev := totalNNZ()
	for {
		select {
		case <-ctx.Done():
			return nil, fmt.Errorf("cfpq.Matrix: %w: %v", errs.Cancelled, ctx.Err())
		default:
		}

		for pair, heads := range classes.Pair {
			b, cSym := pair[0], pair[1]
			delta, err := t[b].Mul(t[cSym])
			if err != nil {
				return nil, err
			}
			if delta.NNZ() == 0 {
				continue
			}
			for a := range heads {
				merged, err := t[a].Add(delta)
				if err != nil {
					return nil, err
				}
				t[a] = merged
			}
		}

		cur := totalNNZ()
		if cur == prev {
			break
		}
		prev = cur
	}

	var out []Triple
	for a, m := range t {
		for _, cell := range m.Nonzero() {
			out = append(out, Triple{From: vertices[cell.Row], Label: a, To: vertices[cell.Col]})
		}
	}
	return out, nil
}
