package grammar

import "github.com/reallybigsky/formal-lang-course/automaton"

// RecursiveAutomaton is one NFA per nonterminal, transitions labeled over
// N ∪ T (spec §4.7, §GLOSSARY). Minimization of each per-nonterminal NFA is
// optional and left to the caller (spec §4.7 "Minimization is offered but
// optional").
type RecursiveAutomaton struct {
	Start string
	NFAs  map[string]*automaton.NFA
}

// ToRecursiveAutomaton compiles every rule of e via Thompson construction
// (spec §4.7 "compile r_A to an ε-NFA"). Only nonterminals with a rule get
// an NFA: a nonterminal that is never a production head has no entry in
// NFAs.
func ToRecursiveAutomaton(e *ECFG) *RecursiveAutomaton {
	nfas := make(map[string]*automaton.NFA, len(e.Rules))
	for head, rule := range e.Rules {
		nfas[head] = automaton.CompileRegex(rule)
	}
	return &RecursiveAutomaton{Start: e.Start, NFAs: nfas}
}

// Minimize replaces every per-nonterminal NFA with its minimal DFA.
func (r *RecursiveAutomaton) Minimize() *RecursiveAutomaton {
	out := &RecursiveAutomaton{Start: r.Start, NFAs: make(map[string]*automaton.NFA, len(r.NFAs))}
	for head, n := range r.NFAs {
		out.NFAs[head] = n.ToDFA().Minimize()
	}
	return out
}

// Decompositions materializes the boolean decomposition of every
// per-nonterminal automaton (spec §4.7 "Per-nonterminal boolean
// decompositions are materialized when the consuming algorithm demands
// them").
func (r *RecursiveAutomaton) Decompositions() (map[string]*automaton.Decomposition, error) {
	out := make(map[string]*automaton.Decomposition, len(r.NFAs))
	for head, n := range r.NFAs {
		d, err := n.Decompose()
		if err != nil {
			return nil, err
		}
		out[head] = d
	}
	return out, nil
}
