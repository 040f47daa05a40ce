package grammar

import "fmt"

// ToWCNF normalizes g into weak Chomsky normal form (spec §4.6): every
// production body has length 0 (ε), 1 (a single terminal), or 2 (two
// nonterminals). ε-productions for nonterminals other than the start
// symbol are retained rather than forbidden, which is what makes this
// "weak" CNF instead of strict CNF (spec §4.6, §GLOSSARY).
//
// The pipeline runs in the order the spec fixes, each step preserving the
// language: unit-production elimination, useless-symbol removal, terminal
// lifting, then binarization.
func ToWCNF(g *CFG) (*CFG, error) {
	out := eliminateUnitProductions(g)
	out = removeUselessSymbols(out)
	out, err := liftTerminals(out)
	if err != nil {
		return nil, err
	}
	out = binarize(out)
	return out, nil
}

// eliminateUnitProductions splices B's bodies into A's productions for
// every unit production A -> B (spec §4.6 step 1).
func eliminateUnitProductions(g *CFG) *CFG {
	isUnit := func(p Production) (string, bool) {
		if len(p.Body) == 1 && g.IsNonterminal(p.Body[0]) {
			return p.Body[0], true
		}
		return "", false
	}

	// unitClosure[A] = set of nonterminals reachable from A via zero or
	// more unit productions, including A itself.
	unitClosure := make(map[string]map[string]struct{})
	for nt := range g.Nonterminals {
		closure := map[string]struct{}{nt: {}}
		var stack []string
		stack = append(stack, nt)
		for len(stack) > 0 {
			cur := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			for _, p := range g.Productions {
				if p.Head != cur {
					continue
				}
				if target, ok := isUnit(p); ok {
					if _, seen := closure[target]; !seen {
						closure[target] = struct{}{}
						stack = append(stack, target)
					}
				}
			}
		}
		unitClosure[nt] = closure
	}

	out := &CFG{
		Start:        g.Start,
		Nonterminals: cloneSet(g.Nonterminals),
		Terminals:    cloneSet(g.Terminals),
	}
	seen := make(map[string]struct{})
	for nt, closure := range unitClosure {
		for reachable := range closure {
			for _, p := range g.Productions {
				if p.Head != reachable {
					continue
				}
				if _, ok := isUnit(p); ok {
					continue
				}
				key := fmt.Sprintf("%s->%v", nt, p.Body)
				if _, dup := seen[key]; dup {
					continue
				}
				seen[key] = struct{}{}
				out.Productions = append(out.Productions, Production{Head: nt, Body: p.Body})
			}
		}
	}
	return out
}

// removeUselessSymbols drops every nonterminal that cannot generate any
// terminal string, then every nonterminal unreachable from Start (spec
// §4.6 step 2), in that order -- removing non-generating symbols first is
// what keeps the reachability pass from counting a dead end as reachable.
func removeUselessSymbols(g *CFG) *CFG {
	generating := make(map[string]struct{})
	changed := true
	for changed {
		changed = false
		for _, p := range g.Productions {
			if _, ok := generating[p.Head]; ok {
				continue
			}
			if allGenerating(p.Body, generating, g) {
				generating[p.Head] = struct{}{}
				changed = true
			}
		}
	}

	kept := make([]Production, 0, len(g.Productions))
	for _, p := range g.Productions {
		if _, ok := generating[p.Head]; !ok {
			continue
		}
		if !allGenerating(p.Body, generating, g) {
			continue
		}
		kept = append(kept, p)
	}

	reachable := map[string]struct{}{g.Start: {}}
	var stack []string
	stack = append(stack, g.Start)
	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, p := range kept {
			if p.Head != cur {
				continue
			}
			for _, sym := range p.Body {
				if !g.IsNonterminal(sym) {
					continue
				}
				if _, ok := reachable[sym]; !ok {
					reachable[sym] = struct{}{}
					stack = append(stack, sym)
				}
			}
		}
	}

	out := &CFG{Start: g.Start, Nonterminals: make(map[string]struct{}), Terminals: make(map[string]struct{})}
	for _, p := range kept {
		if _, ok := reachable[p.Head]; !ok {
			continue
		}
		out.Nonterminals[p.Head] = struct{}{}
		for _, sym := range p.Body {
			if g.IsNonterminal(sym) {
				out.Nonterminals[sym] = struct{}{}
			} else {
				out.Terminals[sym] = struct{}{}
			}
		}
		out.Productions = append(out.Productions, p)
	}
	out.Nonterminals[g.Start] = struct{}{}
	return out
}

func allGenerating(body []string, generating map[string]struct{}, g *CFG) bool {
	for _, sym := range body {
		if g.IsNonterminal(sym) {
			if _, ok := generating[sym]; !ok {
				return false
			}
		}
	}
	return true
}

// liftTerminals replaces every terminal in a body of length >= 2 with a
// fresh nonterminal T_t, adding T_t -> t (spec §4.6 step 3).
func liftTerminals(g *CFG) (*CFG, error) {
	out := &CFG{
		Start:        g.Start,
		Nonterminals: cloneSet(g.Nonterminals),
		Terminals:    cloneSet(g.Terminals),
	}
	fresh := newFreshNamer(g.Nonterminals, "T")
	litNT := make(map[string]string)

	ensureLifted := func(term string) string {
		if nt, ok := litNT[term]; ok {
			return nt
		}
		nt := fresh()
		litNT[term] = nt
		out.Nonterminals[nt] = struct{}{}
		out.Productions = append(out.Productions, Production{Head: nt, Body: []string{term}})
		return nt
	}

	for _, p := range g.Productions {
		if len(p.Body) < 2 {
			out.Productions = append(out.Productions, p)
			continue
		}
		body := make([]string, len(p.Body))
		for i, sym := range p.Body {
			if g.IsNonterminal(sym) {
				body[i] = sym
			} else {
				body[i] = ensureLifted(sym)
			}
		}
		out.Productions = append(out.Productions, Production{Head: p.Head, Body: body})
	}
	return out, nil
}

// binarize right-associatively rewrites every body of length >= 3 into a
// chain of binary productions via fresh nonterminals (spec §4.6 step 4).
func binarize(g *CFG) *CFG {
	out := &CFG{
		Start:        g.Start,
		Nonterminals: cloneSet(g.Nonterminals),
		Terminals:    cloneSet(g.Terminals),
	}
	fresh := newFreshNamer(g.Nonterminals, "B")

	for _, p := range g.Productions {
		if len(p.Body) < 3 {
			out.Productions = append(out.Productions, p)
			continue
		}
		head := p.Head
		body := p.Body
		for len(body) > 2 {
			tail := fresh()
			out.Nonterminals[tail] = struct{}{}
			out.Productions = append(out.Productions, Production{Head: head, Body: []string{body[0], tail}})
			head = tail
			body = body[1:]
		}
		out.Productions = append(out.Productions, Production{Head: head, Body: body})
	}
	return out
}

func cloneSet(s map[string]struct{}) map[string]struct{} {
	out := make(map[string]struct{}, len(s))
	for k := range s {
		out[k] = struct{}{}
	}
	return out
}

// newFreshNamer returns a generator of nonterminal names prefix+N that
// never collides with an existing name in taken.
func newFreshNamer(taken map[string]struct{}, prefix string) func() string {
	n := 0
	return func() string {
		for {
			name := fmt.Sprintf("%s%d", prefix, n)
			n++
			if _, ok := taken[name]; !ok {
				return name
			}
		}
	}
}
