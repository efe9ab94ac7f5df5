package compare

import (
	"testing"

	"github.com/kaelstrom/grammex/grammar"
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
	return g
}

func danglingElseGrammar() grammar.Grammar {
	g := grammar.New()
	g.AddTerminal("if")
	g.AddTerminal("then")
	g.AddTerminal("else")
	g.AddTerminal("a")
	g.AddTerminal("b")
	g.AddRule("S", grammar.Production{"if", "E", "then", "S"})
	g.AddRule("S", grammar.Production{"if", "E", "then", "S", "else", "S"})
	g.AddRule("S", grammar.Production{"a"})
	g.AddRule("E", grammar.Production{"b"})
	return g
}

func Test_Run_expressionGrammarRecommendsLALR(t *testing.T) {
	assert := assert.New(t)

	report := Run(exprGrammar(), PreferLR)

	assert.True(report.SLR.ConflictFree)
	assert.True(report.CLR.ConflictFree)
	assert.True(report.LALR.ConflictFree)
	assert.Equal("LALR(1)", report.Recommendation)
	assert.GreaterOrEqual(report.CLR.StateCount, report.LALR.StateCount)
}

func Test_Run_danglingElseHasNoRecommendation(t *testing.T) {
	assert := assert.New(t)

	report := Run(danglingElseGrammar(), PreferLR)

	assert.False(report.SLR.ConflictFree)
	assert.False(report.CLR.ConflictFree)
	assert.False(report.LALR.ConflictFree)
	assert.False(report.LL1.ConflictFree)
	assert.Equal("", report.Recommendation)
}

func Test_Run_preferLLPicksLL1WhenConflictFree(t *testing.T) {
	assert := assert.New(t)

	// Left-recursive but otherwise unambiguous: every flavor is
	// conflict-free once transformed, so PreferLL should pick LL(1) over
	// the LR flavors even though they'd also work.
	g := grammar.New()
	g.AddTerminal("+")
	g.AddTerminal("id")
	g.AddRule("E", grammar.Production{"E", "+", "T"})
	g.AddRule("E", grammar.Production{"T"})
	g.AddRule("T", grammar.Production{"id"})

	report := Run(g, PreferLL)
	assert.True(report.LL1.ConflictFree)
	assert.Equal("LL(1)", report.Recommendation)
}

func Test_Report_RequireConflictFree(t *testing.T) {
	assert := assert.New(t)

	report := Run(danglingElseGrammar(), PreferLR)

	err := report.RequireConflictFree("LALR(1)")
	assert.Error(err)
	assert.Contains(err.Error(), "LALR(1)")

	clean := Run(exprGrammar(), PreferLR)
	assert.NoError(clean.RequireConflictFree("LALR(1)"))
}

func Test_Report_StringIncludesRecommendation(t *testing.T) {
	assert := assert.New(t)

	report := Run(exprGrammar(), PreferLR)
	s := report.String()
	assert.Contains(s, "recommendation: LALR(1)")
}
