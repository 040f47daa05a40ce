// Package rpq implements regular path queries (spec §4.3-§4.5): the
// intersection kernel, the matrix-closure RPQ engine, and the frontier-based
// BFS-RPQ engine.
package rpq

import (
	"fmt"

	"github.com/reallybigsky/formal-lang-course/errs"
)

// ErrEmptyAutomaton indicates an operation was asked to operate on an
// automaton with no states, for which the product state space is undefined.
var ErrEmptyAutomaton = fmt.Errorf("rpq: empty automaton: %w", errs.ShapeMismatch)
