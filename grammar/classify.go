package grammar

// Classification buckets a WCNF grammar's productions into the three
// shapes both CFPQ back-ends rely on (spec §4.8 step 1, §4.9): Eps holds
// nonterminals with an ε-production, Term[t] holds nonterminals with a
// single-terminal production A -> t, and Pair[(B,C)] holds nonterminals
// with a binary production A -> B C.
type Classification struct {
	Eps  map[string]struct{}
	Term map[string]map[string]struct{}
	Pair map[[2]string]map[string]struct{}
}

// Classify partitions g's productions by body shape. g is assumed to
// already be in WCNF (ToWCNF's output): every body has length 0, 1, or 2.
func Classify(g *CFG) *Classification {
	c := &Classification{
		Eps:  make(map[string]struct{}),
		Term: make(map[string]map[string]struct{}),
		Pair: make(map[[2]string]map[string]struct{}),
	}
	for _, p := range g.Productions {
		switch len(p.Body) {
		case 0:
			c.Eps[p.Head] = struct{}{}
		case 1:
			t := p.Body[0]
			if _, ok := c.Term[t]; !ok {
				c.Term[t] = make(map[string]struct{})
			}
			c.Term[t][p.Head] = struct{}{}
		case 2:
			key := [2]string{p.Body[0], p.Body[1]}
			if _, ok := c.Pair[key]; !ok {
				c.Pair[key] = make(map[string]struct{})
			}
			c.Pair[key][p.Head] = struct{}{}
		}
	}
	return c
}
