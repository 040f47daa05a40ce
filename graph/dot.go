package graph

import (
	"fmt"
	"io"
)

// WriteDOT serializes g as standard Graphviz text (spec §6 "DOT output"):
// one node per vertex, one edge per transition, edges labeled by their
// transition symbol. Grounded on
// original_source/project/graphs.py's save_graph_as_pydot, reimplemented as
// direct text emission instead of round-tripping through a pydot object.
func WriteDOT(w io.Writer, g *Graph) error {
	if _, err := fmt.Fprintln(w, "digraph {"); err != nil {
		return err
	}
	for _, v := range g.Vertices() {
		if _, err := fmt.Fprintf(w, "  %q;\n", v); err != nil {
			return err
		}
	}
	for _, e := range g.Edges() {
		label := e.Label
		if label == Epsilon {
			label = "$"
		}
		if _, err := fmt.Fprintf(w, "  %q -> %q [label=%q];\n", e.From, e.To, label); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintln(w, "}")
	return err
}
