// Package automaton implements the finite-automaton layer of spec §4.2: a
// structural NFA (transitions + start/final sets, epsilon first-class) and
// its boolean-decomposition dual (spec §3), plus the regex and graph
// front-ends that produce NFAs and the Hopcroft minimizer used to keep
// intersections small.
//
// Grounded on lvlath/core.Graph for the mutex-free-by-design, map-backed
// catalog shape (a query owns its automata exclusively, spec §5, so no
// locking is carried here unlike core.Graph's concurrent-safe design) and on
// lvlath/dfs.go for the iterative, stack/queue-driven traversal idiom reused
// by epsilon-closure and Hopcroft partition refinement.
package automaton

import (
	"fmt"

	"github.com/reallybigsky/formal-lang-course/errs"
)

// Epsilon is the distinguished label for the empty-word transition (spec §3).
const Epsilon = ""

var (
	// ErrUnknownState indicates an operation referenced a state absent from
	// the automaton's state set.
	ErrUnknownState = fmt.Errorf("automaton: unknown state: %w", errs.UnknownSymbol)

	// ErrDuplicateState marks a duplicated state id. AddState does not
	// return it: adding an existing id again is a no-op.
	ErrDuplicateState = fmt.Errorf("automaton: duplicate state: %w", errs.ShapeMismatch)
)

// NFA is a structural nondeterministic finite automaton with first-class
// epsilon transitions (spec §3). States are identified by string id, the
// same id space graph vertices live in when the automaton comes from
// graph.Graph (spec §3 "single id space is shared by graph vertices and
// automaton states").
type NFA struct {
	order []string                       // states in insertion order (stable, spec §9)
	seen  map[string]struct{}            // fast membership test
	trans map[string]map[string]map[string]struct{} // from -> label -> {to}
	start map[string]struct{}
	final map[string]struct{}
}

// NewNFA returns an empty NFA.
func NewNFA() *NFA {
	return &NFA{
		seen:  make(map[string]struct{}),
		trans: make(map[string]map[string]map[string]struct{}),
		start: make(map[string]struct{}),
		final: make(map[string]struct{}),
	}
}

// AddState inserts a state if not already present. Idempotent.
func (n *NFA) AddState(id string) {
	if _, ok := n.seen[id]; ok {
		return
	}
	n.seen[id] = struct{}{}
	n.order = append(n.order, id)
}

// HasState reports whether id has been added.
func (n *NFA) HasState(id string) bool {
	_, ok := n.seen[id]
	return ok
}

// States returns every state in stable insertion order. Callers must treat
// the returned slice as read-only.
func (n *NFA) States() []string {
	return n.order
}

// AddTransition adds from--label-->to, adding both endpoints as states if
// needed. label may be Epsilon.
func (n *NFA) AddTransition(from, label, to string) {
	n.AddState(from)
	n.AddState(to)
	if _, ok := n.trans[from]; !ok {
		n.trans[from] = make(map[string]map[string]struct{})
	}
	if _, ok := n.trans[from][label]; !ok {
		n.trans[from][label] = make(map[string]struct{})
	}
	n.trans[from][label][to] = struct{}{}
}

// Targets returns the set of states reachable from `from` via exactly one
// `label` transition (nil if none).
func (n *NFA) Targets(from, label string) map[string]struct{} {
	return n.trans[from][label]
}

// Labels returns the distinct non-epsilon labels used by any transition.
func (n *NFA) Labels() []string {
	set := make(map[string]struct{})
	for _, byLabel := range n.trans {
		for label := range byLabel {
			if label != Epsilon {
				set[label] = struct{}{}
			}
		}
	}
	out := make([]string, 0, len(set))
	for l := range set {
		out = append(out, l)
	}
	return out
}

// HasEpsilon reports whether any transition in n is labeled Epsilon.
func (n *NFA) HasEpsilon() bool {
	for _, byLabel := range n.trans {
		if _, ok := byLabel[Epsilon]; ok {
			return true
		}
	}
	return false
}

// SetStart marks id as a start state. Returns ErrUnknownState if id was
// never added.
func (n *NFA) SetStart(id string) error {
	if !n.HasState(id) {
		return ErrUnknownState
	}
	n.start[id] = struct{}{}
	return nil
}

// SetFinal marks id as a final state. Returns ErrUnknownState if id was
// never added.
func (n *NFA) SetFinal(id string) error {
	if !n.HasState(id) {
		return ErrUnknownState
	}
	n.final[id] = struct{}{}
	return nil
}

// IsStart reports whether id is a start state.
func (n *NFA) IsStart(id string) bool {
	_, ok := n.start[id]
	return ok
}

// IsFinal reports whether id is a final state.
func (n *NFA) IsFinal(id string) bool {
	_, ok := n.final[id]
	return ok
}

// StartStates returns every start state, in the stable order of States().
func (n *NFA) StartStates() []string {
	return filterOrdered(n.order, n.start)
}

// FinalStates returns every final state, in the stable order of States().
func (n *NFA) FinalStates() []string {
	return filterOrdered(n.order, n.final)
}

func filterOrdered(order []string, set map[string]struct{}) []string {
	out := make([]string, 0, len(set))
	for _, s := range order {
		if _, ok := set[s]; ok {
			out = append(out, s)
		}
	}
	return out
}
