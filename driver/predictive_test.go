package driver

import (
	"strings"
	"testing"

	"github.com/kaelstrom/grammex/firstfollow"
	"github.com/kaelstrom/grammex/grammar"
	"github.com/kaelstrom/grammex/ll1"
	"github.com/kaelstrom/grammex/transform"
	"github.com/stretchr/testify/assert"
)

// Test_Predictive_S4 is spec scenario S4: a left-recursive grammar, run
// through the LL(1) transformer, must parse "id + id + id" successfully.
func Test_Predictive_S4(t *testing.T) {
	assert := assert.New(t)

	g := grammar.New()
	g.AddTerminal("+")
	g.AddTerminal("id")
	g.AddRule("E", grammar.Production{"E", "+", "T"})
	g.AddRule("E", grammar.Production{"T"})
	g.AddRule("T", grammar.Production{"id"})

	result := transform.ForLL1(g)
	for _, p := range result.Grammar.Productions() {
		assert.NotEqual(p.NonTerminal, p.RHS[0], "production %s still left-recursive", p)
	}

	fs := firstfollow.Compute(result.Grammar)
	table := ll1.Build(result.Grammar, fs)
	assert.True(table.IsConflictFree())

	tokens := strings.Fields("id + id + id")
	pr := Predictive(result.Grammar, table, tokens)

	assert.True(pr.Accepted)
	assert.Equal(tokens, pr.Tree.Yield())
}

func Test_Predictive_rejectsMismatchedTerminal(t *testing.T) {
	assert := assert.New(t)

	g := ll1ExprGrammarForPredictiveTest()
	fs := firstfollow.Compute(g)
	table := ll1.Build(g, fs)
	assert.True(table.IsConflictFree())

	result := Predictive(g, table, strings.Fields("id + + id"))
	assert.False(result.Accepted)
	assert.Equal(StepError, result.Trace[len(result.Trace)-1].Kind)
}

func ll1ExprGrammarForPredictiveTest() grammar.Grammar {
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
