package rpq

import "github.com/reallybigsky/formal-lang-course/automaton"

// Intersect builds the boolean decomposition of L(a) ∩ L(b) (spec §4.3): the
// decompositions of a and b are Kronecker-multiplied per label, producing a
// lexicographic product state space states(a) x states(b) with Pairs[i] =
// (idx_a, idx_b) for every row i (spec §4.3 step 3, §9 state-id aliasing).
// A label present on only one side still contributes, since
// automaton.Kron treats a missing side as the zero matrix of that side's
// shape (spec §4.3 edge cases, §9).
func Intersect(a, b *automaton.NFA) (*automaton.Decomposition, error) {
	da, err := a.Decompose()
	if err != nil {
		return nil, err
	}
	db, err := b.Decompose()
	if err != nil {
		return nil, err
	}
	if len(da.States) == 0 || len(db.States) == 0 {
		return nil, ErrEmptyAutomaton
	}
	return automaton.Kron(da, db), nil
}

// startFinalIndices returns the indices into d.Pairs whose lhs component is
// a start (resp. final) state of a and whose rhs component is a start
// (resp. final) state of b -- spec §4.3 step 4: "Start states = S_A x S_B;
// final states = F_A x F_B."
func startFinalIndices(d *automaton.Decomposition, a, b *automaton.NFA, wantStart bool) map[int]struct{} {
	aSet := make(map[string]struct{})
	bSet := make(map[string]struct{})
	if wantStart {
		for _, s := range a.StartStates() {
			aSet[s] = struct{}{}
		}
		for _, s := range b.StartStates() {
			bSet[s] = struct{}{}
		}
	} else {
		for _, s := range a.FinalStates() {
			aSet[s] = struct{}{}
		}
		for _, s := range b.FinalStates() {
			bSet[s] = struct{}{}
		}
	}

	out := make(map[int]struct{})
	for i, pair := range d.Pairs {
		as := a.States()[pair[0]]
		bs := b.States()[pair[1]]
		if _, ok := aSet[as]; !ok {
			continue
		}
		if _, ok := bSet[bs]; !ok {
			continue
		}
		out[i] = struct{}{}
	}
	return out
}
