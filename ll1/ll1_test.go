package ll1

import (
	"testing"

	"github.com/kaelstrom/grammex/firstfollow"
	"github.com/kaelstrom/grammex/grammar"
	"github.com/kaelstrom/grammex/transform"
	"github.com/stretchr/testify/assert"
)

// ll1ExprGrammar is the classic expression grammar already rewritten to be
// free of left recursion (E -> T E', etc.), so it is LL(1) as-is.
func ll1ExprGrammar() grammar.Grammar {
	g := grammar.New()
	g.AddTerminal("+")
	g.AddTerminal("*")
	g.AddTerminal("(")
	g.AddTerminal(")")
	g.AddTerminal("id")
	g.AddRule("E", grammar.Production{"T", "E'"})
	g.AddRule("E'", grammar.Production{"+", "T", "E'"})
	g.AddRule("E'", grammar.Epsilon)
	g.AddRule("T", grammar.Production{"F", "T'"})
	g.AddRule("T'", grammar.Production{"*", "F", "T'"})
	g.AddRule("T'", grammar.Epsilon)
	g.AddRule("F", grammar.Production{"(", "E", ")"})
	g.AddRule("F", grammar.Production{"id"})
	return g
}

func Test_Build_expressionGrammarIsLL1(t *testing.T) {
	assert := assert.New(t)

	g := ll1ExprGrammar()
	fs := firstfollow.Compute(g)
	table := Build(g, fs)

	assert.True(table.IsConflictFree())

	np, ok := table.Lookup("F", "id")
	assert.True(ok)
	assert.Equal("id", np.RHS.String())

	np, ok = table.Lookup("E'", ")")
	assert.True(ok)
	assert.True(np.RHS.IsEpsilon())

	_, ok = table.Lookup("E'", "id")
	assert.False(ok)
}

func Test_Build_leftRecursiveGrammarConflicts(t *testing.T) {
	assert := assert.New(t)

	// Left-recursive E -> E + T | T is not LL(1): both alternatives for E
	// share "id" in FIRST, and the direct recursion alone means
	// FIRST+(E -> E + T) and FIRST+(E -> T) collide everywhere T's FIRST
	// set reaches.
	g := grammar.New()
	g.AddTerminal("+")
	g.AddTerminal("id")
	g.AddRule("E", grammar.Production{"E", "+", "T"})
	g.AddRule("E", grammar.Production{"T"})
	g.AddRule("T", grammar.Production{"id"})

	fs := firstfollow.Compute(g)
	table := Build(g, fs)

	assert.False(table.IsConflictFree())
}

func Test_Build_afterForLL1TransformBecomesConflictFree(t *testing.T) {
	assert := assert.New(t)

	g := grammar.New()
	g.AddTerminal("+")
	g.AddTerminal("id")
	g.AddRule("E", grammar.Production{"E", "+", "T"})
	g.AddRule("E", grammar.Production{"T"})
	g.AddRule("T", grammar.Production{"id"})

	result := transform.ForLL1(g)
	fs := firstfollow.Compute(result.Grammar)
	table := Build(result.Grammar, fs)

	assert.True(table.IsConflictFree())
}

func Test_FirstPlus_epsilonProductionPullsInFollow(t *testing.T) {
	assert := assert.New(t)

	g := ll1ExprGrammar()
	fs := firstfollow.Compute(g)

	fp := FirstPlus(grammar.Epsilon, "E'", fs)
	assert.ElementsMatch([]string{")", grammar.EndOfInput}, fp)
}
