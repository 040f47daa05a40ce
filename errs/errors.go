// Package errs declares the cross-cutting error kinds from spec §7.
//
// Every package in this module (graph, bitmatrix, automaton, grammar, rpq,
// cfpq) declares its own sentinel errors, but wraps each one against exactly
// one of the kinds below with fmt.Errorf("...: %w", errs.SomeKind) so that a
// caller who only cares about the taxonomy can do:
//
//	if errors.Is(err, errs.ParseError) { ... }
//
// without knowing which package produced it.
package errs

import "errors"

var (
	// ParseError marks a malformed grammar or regular expression.
	ParseError = errors.New("errs: parse error")

	// ShapeMismatch marks an internal matrix-shape invariant violation.
	// This is a programmer error: callers may fail fast on it.
	ShapeMismatch = errors.New("errs: shape mismatch")

	// UnknownSymbol marks a reference to a nonterminal, label, or vertex
	// absent from the relevant symbol table (e.g. a start_var not in N).
	UnknownSymbol = errors.New("errs: unknown symbol")

	// IOError marks a dataset fetch/load failure from an external
	// collaborator (named-dataset resolution, CSV decoding).
	IOError = errors.New("errs: io error")

	// Cancelled marks cooperative cancellation of a long-running fixed
	// point. Callers receive no partial result alongside this error.
	Cancelled = errors.New("errs: cancelled")

	// TypeMismatch is reserved for the embedded query DSL (out of scope for
	// the core) where intersecting two incompatible value kinds is an
	// error. Declared here only so a future DSL front-end has a stable
	// spot to hang it from; the core never returns it.
	TypeMismatch = errors.New("errs: type mismatch")
)
