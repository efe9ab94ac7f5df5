package transform

import (
	"testing"

	"github.com/kaelstrom/grammex/grammar"
	"github.com/stretchr/testify/assert"
)

func Test_RemoveEpsilons(t *testing.T) {
	testCases := []struct {
		name    string
		build   func(g *grammar.Grammar)
		expect  map[string][]grammar.Production
	}{
		{
			name: "no epsilons is a no-op",
			build: func(g *grammar.Grammar) {
				g.AddTerminal("a")
				g.AddRule("S", grammar.Production{"a"})
			},
			expect: map[string][]grammar.Production{
				"S": {{"a"}},
			},
		},
		{
			name: "deeba kannan example",
			build: func(g *grammar.Grammar) {
				g.AddTerminal("a")
				g.AddTerminal("b")
				g.AddRule("S", grammar.Production{"A", "C", "A"})
				g.AddRule("S", grammar.Production{"A", "a"})
				g.AddRule("A", grammar.Production{"B", "B"})
				g.AddRule("A", grammar.Epsilon)
				g.AddRule("B", grammar.Production{"A"})
				g.AddRule("B", grammar.Production{"b", "C"})
				g.AddRule("C", grammar.Production{"b"})
			},
			expect: map[string][]grammar.Production{
				"S": {{"A", "C", "A"}, {"C", "A"}, {"A", "C"}, {"C"}, {"A", "a"}, {"a"}},
				"A": {{"B", "B"}, {"B"}},
				"B": {{"A"}, {"b", "C"}},
				"C": {{"b"}},
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert := assert.New(t)

			g := grammar.New()
			tc.build(&g)

			res := RemoveEpsilons(g)

			for nt, want := range tc.expect {
				assert.ElementsMatch(want, res.Grammar.ProductionsOf(nt), "nonterminal %s", nt)
			}
			for _, nt := range res.Grammar.NonTerminals() {
				for _, p := range res.Grammar.ProductionsOf(nt) {
					assert.False(p.IsEpsilon(), "nonterminal %s retained an explicit epsilon", nt)
				}
			}
		})
	}
}
