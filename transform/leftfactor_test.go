package transform

import (
	"testing"

	"github.com/kaelstrom/grammex/grammar"
	"github.com/stretchr/testify/assert"
)

func Test_LeftFactor_simple(t *testing.T) {
	assert := assert.New(t)

	g := grammar.New()
	g.AddTerminal("a")
	g.AddTerminal("b")
	g.AddTerminal("c")
	g.AddRule("A", grammar.Production{"a", "b"})
	g.AddRule("A", grammar.Production{"a", "c"})

	res := LeftFactor(g)

	assert.True(res.LeftFactored)
	assert.Len(res.NewNonTerminals, 1)
	primed := res.NewNonTerminals[0]

	aProds := res.Grammar.ProductionsOf("A")
	assert.Equal([]grammar.Production{{"a", primed}}, aProds)

	assert.ElementsMatch([]grammar.Production{{"b"}, {"c"}}, res.Grammar.ProductionsOf(primed))
}

func Test_LeftFactor_noSharedPrefixIsNoop(t *testing.T) {
	assert := assert.New(t)

	g := grammar.New()
	g.AddTerminal("a")
	g.AddTerminal("b")
	g.AddRule("A", grammar.Production{"a"})
	g.AddRule("A", grammar.Production{"b"})

	res := LeftFactor(g)

	assert.False(res.LeftFactored)
	assert.Empty(res.NewNonTerminals)
	assert.ElementsMatch([]grammar.Production{{"a"}, {"b"}}, res.Grammar.ProductionsOf("A"))
}

func Test_LeftFactor_multipleNonOverlappingGroups(t *testing.T) {
	assert := assert.New(t)

	g := grammar.New()
	g.AddTerminal("a")
	g.AddTerminal("b")
	g.AddTerminal("c")
	g.AddTerminal("d")
	g.AddTerminal("e")
	g.AddTerminal("f")
	g.AddRule("A", grammar.Production{"a", "b"})
	g.AddRule("A", grammar.Production{"a", "c"})
	g.AddRule("A", grammar.Production{"d", "e"})
	g.AddRule("A", grammar.Production{"d", "f"})

	res := LeftFactor(g)

	assert.True(res.LeftFactored)
	assert.Len(res.NewNonTerminals, 2)
	assert.Len(res.Grammar.ProductionsOf("A"), 2)
}

func Test_LeftFactor_epsilonAlternative(t *testing.T) {
	assert := assert.New(t)

	g := grammar.New()
	g.AddTerminal("a")
	g.AddRule("A", grammar.Production{"a"})
	g.AddRule("A", grammar.Production{"a", "a"})

	res := LeftFactor(g)

	assert.True(res.LeftFactored)
	primed := res.NewNonTerminals[0]
	assert.ElementsMatch([]grammar.Production{grammar.Epsilon, {"a"}}, res.Grammar.ProductionsOf(primed))
}
