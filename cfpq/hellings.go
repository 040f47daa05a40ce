package cfpq

import (
	"context"
	"fmt"

	"github.com/reallybigsky/formal-lang-course/errs"
	"github.com/reallybigsky/formal-lang-course/grammar"
	"github.com/reallybigsky/formal-lang-course/graph"
)

// Triple is (From, Label, To): Label ⇒* word(π) for some path π from From
// to To (spec §4.8).
type Triple struct {
	From  string
	Label string
	To    string
}

// Hellings computes the full CFPQ closure of g against c via the worklist
// algorithm (spec §4.8). c need not already be in WCNF -- normalization is
// performed internally.
func Hellings(ctx context.Context, c *grammar.CFG, g *graph.Graph) ([]Triple, error) {
	w, err := grammar.ToWCNF(c)
	if err != nil {
		return nil, err
	}
	classes := grammar.Classify(w)

	seen := make(map[Triple]struct{})
	endIndex := make(map[string][]Triple)
	startIndex := make(map[string][]Triple)
	var queue []Triple

	add := func(t Triple) {
		if _, ok := seen[t]; ok {
			return
		}
		seen[t] = struct{}{}
		endIndex[t.To] = append(endIndex[t.To], t)
		startIndex[t.From] = append(startIndex[t.From], t)
		queue = append(queue, t)
	}

	for _, e := range g.Edges() {
		for a := range classes.Term[e.Label] {
			add(Triple{From: e.From, Label: a, To: e.To})
		}
	}
	for _, v := range g.Vertices() {
		for a := range classes.Eps {
			add(Triple{From: v, Label: a, To: v})
		}
	}

	for len(queue) > 0 {
		select {
		case <-ctx.Done():
			return nil, fmt.Errorf("cfpq.Hellings: %w: %v", errs.Cancelled, ctx.Err())
		default:
		}

		popped := queue[0]
		queue = queue[1:]
		v, b, u := popped.From, popped.Label, popped.To

		leftNeighbors := append([]Triple(nil), endIndex[v]...)
		for _, t := range leftNeighbors {
			for x := range classes.Pair[[2]string{t.Label, b}] {
				add(Triple{From: t.From, Label: x, To: u})
			}
		}

		rightNeighbors := append([]Triple(nil), startIndex[u]...)
		for _, t := range rightNeighbors {
			for x := range classes.Pair[[2]string{b, t.Label}] {
				add(Triple{From: v, Label: x, To: t.To})
			}
		}
	}

	out := make([]Triple, 0, len(seen))
	for t := range seen {
		out = append(out, t)
	}
	return out, nil
}
