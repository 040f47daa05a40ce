package automaton

import "strconv"

// regexBuilder assigns synthetic state ids "r0", "r1", ... while compiling a
// RegexNode into an epsilon-NFA, the same counter-driven approach
// other_examples' nex nfaBuilder uses for its Thompson construction.
type regexBuilder struct {
	nfa     *NFA
	counter int
}

func (b *regexBuilder) newState() string {
	id := "r" + strconv.Itoa(b.counter)
	b.counter++
	b.nfa.AddState(id)
	return id
}

type frag struct {
	start, end string
}

// CompileRegex builds an epsilon-NFA accepting exactly L(node), via
// standard Thompson construction (spec §4.2 "Regex -> minimal DFA": this is
// the first stage, "parse the regex into an ε-NFA").
func CompileRegex(node RegexNode) *NFA {
	b := &regexBuilder{nfa: NewNFA()}
	f := b.build(node)
	_ = b.nfa.SetStart(f.start)
	_ = b.nfa.SetFinal(f.end)
	return b.nfa
}

func (b *regexBuilder) build(node RegexNode) frag {
	switch v := node.(type) {
	case RegexEpsilon:
		start, end := b.newState(), b.newState()
		b.nfa.AddTransition(start, Epsilon, end)
		return frag{start, end}

	case RegexLiteral:
		start, end := b.newState(), b.newState()
		b.nfa.AddTransition(start, v.Label, end)
		return frag{start, end}

	case RegexConcat:
		left := b.build(v.Left)
		right := b.build(v.Right)
		b.nfa.AddTransition(left.end, Epsilon, right.start)
		return frag{left.start, right.end}

	case RegexUnion:
		start, end := b.newState(), b.newState()
		left := b.build(v.Left)
		right := b.build(v.Right)
		b.nfa.AddTransition(start, Epsilon, left.start)
		b.nfa.AddTransition(start, Epsilon, right.start)
		b.nfa.AddTransition(left.end, Epsilon, end)
		b.nfa.AddTransition(right.end, Epsilon, end)
		return frag{start, end}

	case RegexStar:
		start, end := b.newState(), b.newState()
		inner := b.build(v.Inner)
		b.nfa.AddTransition(start, Epsilon, inner.start)
		b.nfa.AddTransition(start, Epsilon, end)
		b.nfa.AddTransition(inner.end, Epsilon, inner.start)
		b.nfa.AddTransition(inner.end, Epsilon, end)
		return frag{start, end}

	default:
		panic("automaton: unknown RegexNode type")
	}
}
