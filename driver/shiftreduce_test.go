package driver

import (
	"strings"
	"testing"

	"github.com/kaelstrom/grammex/firstfollow"
	"github.com/kaelstrom/grammex/grammar"
	"github.com/kaelstrom/grammex/lrtable"
	"github.com/stretchr/testify/assert"
)

func exprGrammar() grammar.Grammar {
	g := grammar.New()
	g.AddTerminal("+")
	g.AddTerminal("*")
	g.AddTerminal("(")
	g.AddTerminal(")")
	g.AddTerminal("id")
	g.AddRule("E", grammar.Production{"E", "+", "T"})
	g.AddRule("E", grammar.Production{"T"})
	g.AddRule("T", grammar.Production{"T", "*", "F"})
	g.AddRule("T", grammar.Production{"F"})
	g.AddRule("F", grammar.Production{"(", "E", ")"})
	g.AddRule("F", grammar.Production{"id"})
	return g.Augmented()
}

// Test_ShiftReduce_S1 is spec scenario S1: LALR accepts "id + id * id" with
// E at the root of the resulting tree and a yield equal to the input.
func Test_ShiftReduce_S1(t *testing.T) {
	assert := assert.New(t)

	g := exprGrammar()
	fs := firstfollow.Compute(g)
	table := lrtable.BuildLALR1(g, fs)
	assert.True(table.IsConflictFree())

	tokens := strings.Fields("id + id * id")
	result := ShiftReduce(g, table, tokens)

	assert.True(result.Accepted)
	assert.Equal(tokens, result.Tree.Yield())

	root := result.Tree
	for len(root.Children) == 1 {
		root = root.Children[0]
	}
	assert.Equal("E", root.Symbol)
}

// Test_ShiftReduce_S2 is spec scenario S2: all three LR flavors reject
// "id + + id", with the error occurring at the second "+".
func Test_ShiftReduce_S2(t *testing.T) {
	assert := assert.New(t)

	g := exprGrammar()
	fs := firstfollow.Compute(g)
	tokens := strings.Fields("id + + id")

	for _, table := range []*lrtable.Table{lrtable.BuildSLR1(g, fs), lrtable.BuildCLR1(g, fs), lrtable.BuildLALR1(g, fs)} {
		result := ShiftReduce(g, table, tokens)
		assert.False(result.Accepted, table.Flavor)
		assert.NotEmpty(result.Trace)

		last := result.Trace[len(result.Trace)-1]
		assert.Equal(StepError, last.Kind)
		assert.Equal("+", last.Remaining[0], "%s: expected error at second '+'", table.Flavor)
	}
}

func Test_ShiftReduce_traceIncludesEveryStepEvenOnError(t *testing.T) {
	assert := assert.New(t)

	g := exprGrammar()
	fs := firstfollow.Compute(g)
	table := lrtable.BuildLALR1(g, fs)

	result := ShiftReduce(g, table, strings.Fields("id +"))
	assert.False(result.Accepted)
	assert.NotEmpty(result.Trace)
	assert.Equal(StepError, result.Trace[len(result.Trace)-1].Kind)
}
