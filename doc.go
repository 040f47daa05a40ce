// Package formallang answers path queries over edge-labeled directed
// multigraphs: does some path's label word belong to a given regular or
// context-free language, and which vertex pairs does it connect.
//
// The query surface is two-layered:
//
//   - Regular path queries (RPQ): a query language is a regex over the
//     graph's label alphabet, answered either by closing a Kronecker-product
//     intersection (rpq.RPQ) or by a frontier-propagating BFS that never
//     materializes the closure (rpq.BFSReachable, rpq.BFSReachablePerSource).
//   - Context-free path queries (CFPQ): a query language is a context-free
//     grammar, answered by either of two back-ends that are required to
//     agree on every input -- Hellings' worklist algorithm and a
//     per-nonterminal boolean matrix fixed point (cfpq.Hellings,
//     cfpq.Matrix, cfpq.Query).
//
// Everything is built from one representation: sparse boolean matrices
// (package bitmatrix) and their automaton-shaped interpretation (package
// automaton). A graph (package graph) and a regex or a normalized grammar
// (package grammar) both reduce to the same boolean-decomposition form,
// which is why intersection, closure, and the BFS frontier rule are all
// expressed as matrix algebra rather than as graph traversal.
//
// Subpackages:
//
//	errs/      — the shared error-kind taxonomy every other package wraps
//	ids/       — dense string<->int interning for symbol tables
//	bitmatrix/ — sparse boolean matrix algebra, CSR and row-mutable forms
//	graph/     — the edge-labeled directed multigraph data model
//	automaton/ — structural NFAs, regex parsing/compilation, subset
//	            construction, Hopcroft minimization, boolean decomposition
//	rpq/       — the intersection kernel and both RPQ engines
//	grammar/   — CFG parsing, WCNF normalization, ECFG, recursive automata
//	cfpq/      — the Hellings and Matrix CFPQ back-ends and their wrapper
package formallang
