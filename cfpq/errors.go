// Package cfpq implements context-free path querying (spec §4.8-§4.10): the
// Hellings worklist algorithm, the Matrix fixed-point algorithm, and the
// top-level query wrapper selecting between them.
package cfpq

import (
	"fmt"

	"github.com/reallybigsky/formal-lang-course/errs"
)

// ErrUnknownBackend indicates an unrecognized Backend value was requested.
var ErrUnknownBackend = fmt.Errorf("cfpq: unknown backend: %w", errs.UnknownSymbol)

// ErrUnknownStartVar indicates a requested start nonterminal is not in the
// grammar's nonterminal set (spec §7 "start_var not in N").
var ErrUnknownStartVar = fmt.Errorf("cfpq: start_var not in grammar nonterminals: %w", errs.UnknownSymbol)
