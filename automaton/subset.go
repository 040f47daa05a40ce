package automaton

import (
	"sort"
	"strings"
)

// EpsilonClosure returns the set of states reachable from any state in
// states via zero or more Epsilon transitions (spec §4.2, the standard
// NFA-simulation primitive), grounded on lvlath/dfs.go's explicit-stack
// traversal idiom.
func (n *NFA) EpsilonClosure(states map[string]struct{}) map[string]struct{} {
	closure := make(map[string]struct{}, len(states))
	var stack []string
	for s := range states {
		closure[s] = struct{}{}
		stack = append(stack, s)
	}
	for len(stack) > 0 {
		s := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for to := range n.Targets(s, Epsilon) {
			if _, ok := closure[to]; !ok {
				closure[to] = struct{}{}
				stack = append(stack, to)
			}
		}
	}
	return closure
}

// move returns the set of states reachable from any state in states via
// exactly one label transition.
func (n *NFA) move(states map[string]struct{}, label string) map[string]struct{} {
	out := make(map[string]struct{})
	for s := range states {
		for to := range n.Targets(s, label) {
			out[to] = struct{}{}
		}
	}
	return out
}

// setKey returns a canonical, order-independent string key for a state set,
// used to dedupe subset-construction states.
func setKey(states map[string]struct{}) string {
	ids := make([]string, 0, len(states))
	for s := range states {
		ids = append(ids, s)
	}
	sort.Strings(ids)
	return strings.Join(ids, "\x00")
}

// ToDFA runs subset construction (spec §4.2 stage two: "subset-construct
// the ε-NFA into a DFA"), producing a structural NFA that happens to be
// deterministic -- at most one transition per (state, label) pair and no
// Epsilon transitions.
func (n *NFA) ToDFA() *NFA {
	dfa := NewNFA()

	startSet := n.EpsilonClosure(setOf(n.StartStates()))
	startKey := setKey(startSet)

	keyToSet := map[string]map[string]struct{}{startKey: startSet}
	dfa.AddState(startKey)
	_ = dfa.SetStart(startKey)
	if hasFinal(n, startSet) {
		_ = dfa.SetFinal(startKey)
	}

	labels := n.Labels()
	var queue []string
	queue = append(queue, startKey)
	seen := map[string]struct{}{startKey: {}}

	for len(queue) > 0 {
		key := queue[0]
		queue = queue[1:]
		cur := keyToSet[key]

		for _, label := range labels {
			moved := n.move(cur, label)
			if len(moved) == 0 {
				continue
			}
			next := n.EpsilonClosure(moved)
			nextKey := setKey(next)

			if _, ok := seen[nextKey]; !ok {
				seen[nextKey] = struct{}{}
				keyToSet[nextKey] = next
				dfa.AddState(nextKey)
				if hasFinal(n, next) {
					_ = dfa.SetFinal(nextKey)
				}
				queue = append(queue, nextKey)
			}
			dfa.AddTransition(key, label, nextKey)
		}
	}

	return dfa
}

func hasFinal(n *NFA, states map[string]struct{}) bool {
	for s := range states {
		if n.IsFinal(s) {
			return true
		}
	}
	return false
}

func setOf(ids []string) map[string]struct{} {
	out := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		out[id] = struct{}{}
	}
	return out
}
