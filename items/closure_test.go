package items

import (
	"testing"

	"github.com/kaelstrom/grammex/firstfollow"
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
	return g.Augmented()
}

func Test_LR0Closure_initialState(t *testing.T) {
	assert := assert.New(t)

	g := exprGrammar()
	start := g.StartSymbol()
	initial := NewSet(NewLR0Item(start, grammar.Production{"E"}))

	closed := LR0Closure(g, initial)

	// every nonterminal's every production should be represented with the
	// dot at position 0 somewhere in the closure.
	for _, nt := range []string{"E", "T", "F"} {
		for _, rhs := range g.ProductionsOf(nt) {
			item := NewLR0Item(nt, rhs)
			assert.True(closed.Has(item.String()), "missing %s", item.String())
		}
	}
}

func Test_GotoLR0(t *testing.T) {
	assert := assert.New(t)

	g := exprGrammar()
	start := g.StartSymbol()
	initial := LR0Closure(g, NewSet(NewLR0Item(start, grammar.Production{"E"})))

	next := GotoLR0(g, initial, "E")
	assert.False(next.Empty())

	wantItem := NewLR0Item(start, grammar.Production{"E"}).Advance()
	assert.True(next.Has(wantItem.String()))

	wantShift := NewLR0Item("E", grammar.Production{"E", "+", "T"}).Advance()
	assert.True(next.Has(wantShift.String()))
}

func Test_LR1Closure_andGoto(t *testing.T) {
	assert := assert.New(t)

	g := exprGrammar()
	fs := firstfollow.Compute(g)
	start := g.StartSymbol()

	initial := LR1Closure(g, fs, NewSet1(LR1Item{
		LR0Item:   NewLR0Item(start, grammar.Production{"E"}),
		Lookahead: grammar.EndOfInput,
	}))

	// the closure must reach F -> .id (with some lookahead)
	found := false
	for _, k := range initial.Elements() {
		it := initial.Get(k)
		if it.NonTerminal == "F" && len(it.Right) > 0 && it.Right[0] == "id" {
			found = true
		}
	}
	assert.True(found)

	next := GotoLR1(g, fs, initial, "T")
	assert.False(next.Empty())
}
