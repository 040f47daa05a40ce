package grammar

import "github.com/reallybigsky/formal-lang-course/automaton"

// ECFG is an extended context-free grammar (spec §GLOSSARY): one regular
// expression per nonterminal, built by unioning the concatenation of each
// of that nonterminal's production bodies (spec §4.7).
type ECFG struct {
	Start string
	Rules map[string]automaton.RegexNode
}

// ToECFG groups g's productions by head and builds r_A = body_1 | body_2 |
// ... for each nonterminal A, where body_k is the concatenation of its
// symbols and an ε-body becomes the empty-word regex (spec §4.7). Symbols
// in a body become regex literals over the label alphabet N ∪ T (spec
// §GLOSSARY "Recursive automaton"): at this stage a literal's label may
// itself name a nonterminal, resolved later by the recursive automaton.
func ToECFG(g *CFG) *ECFG {
	rules := make(map[string]automaton.RegexNode, len(g.Nonterminals))
	for _, head := range g.Heads() {
		var rule automaton.RegexNode
		for _, body := range g.BodiesOf(head) {
			var bodyNode automaton.RegexNode = automaton.RegexEpsilon{}
			if len(body) > 0 {
				bodyNode = automaton.RegexLiteral{Label: body[0]}
				for _, sym := range body[1:] {
					bodyNode = automaton.RegexConcat{Left: bodyNode, Right: automaton.RegexLiteral{Label: sym}}
				}
			}
			if rule == nil {
				rule = bodyNode
			} else {
				rule = automaton.RegexUnion{Left: rule, Right: bodyNode}
			}
		}
		rules[head] = rule
	}
	return &ECFG{Start: g.Start, Rules: rules}
}
