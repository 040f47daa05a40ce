// Package grammar implements the context-free grammar layer of spec §4.6-§4.7:
// text parsing, weak-Chomsky-normal-form normalization and production
// classification (which CFPQ's Matrix and Hellings back ends consume), and
// the ECFG/recursive-automaton construction.
package grammar

import (
	"fmt"

	"github.com/reallybigsky/formal-lang-course/errs"
)

// ErrParseGrammar marks a malformed grammar text.
var ErrParseGrammar = fmt.Errorf("grammar: malformed production: %w", errs.ParseError)

// ErrUnknownNonterminal indicates a reference (e.g. a requested start
// symbol) to a nonterminal absent from the grammar.
var ErrUnknownNonterminal = fmt.Errorf("grammar: unknown nonterminal: %w", errs.UnknownSymbol)
