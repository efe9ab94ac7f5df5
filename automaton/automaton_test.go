package automaton

import (
	"testing"

	"github.com/kaelstrom/grammex/firstfollow"
	"github.com/kaelstrom/grammex/grammar"
	"github.com/kaelstrom/grammex/items"
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

func Test_NewLR0_stateZeroIsStartClosure(t *testing.T) {
	assert := assert.New(t)

	g := exprGrammar()
	a := NewLR0(g)

	assert.Equal(0, a.Start())
	startItem := items.NewLR0Item(g.StartSymbol(), grammar.Production{"E"})
	assert.True(a.ItemsOf(0).Has(startItem.String()))
}

func Test_NewLR0_determinism(t *testing.T) {
	assert := assert.New(t)

	g := exprGrammar()
	a := NewLR0(g)

	seenPairs := map[[2]interface{}]bool{}
	for _, tr := range a.Transitions {
		key := [2]interface{}{tr.From, tr.Symbol}
		assert.False(seenPairs[key], "duplicate transition for %v", key)
		seenPairs[key] = true
	}
}

func Test_NewLALR1_stateCountNeverExceedsCLR(t *testing.T) {
	assert := assert.New(t)

	g := exprGrammar()
	fs := firstfollow.Compute(g)

	clr := NewLR1(g, fs)
	lalr := NewLALR1(g, fs)

	assert.LessOrEqual(len(lalr.States), len(clr.States))
}

func Test_NewLALR1_everyStateCoreMatchesACLRState(t *testing.T) {
	assert := assert.New(t)

	g := exprGrammar()
	fs := firstfollow.Compute(g)

	clr := NewLR1(g, fs)
	lalr := NewLALR1(g, fs)

	clrCores := map[string]bool{}
	for id := range clr.itemSets {
		clrCores[items.CoreSet(clr.itemSets[id]).StringOrdered()] = true
	}
	for id := range lalr.itemSets {
		core := items.CoreSet(lalr.itemSets[id]).StringOrdered()
		assert.True(clrCores[core], "LALR state %d core not found among CLR states", id)
	}
}

func Test_NewLR1_reachability(t *testing.T) {
	assert := assert.New(t)

	g := exprGrammar()
	fs := firstfollow.Compute(g)
	a := NewLR1(g, fs)

	reachable := map[int]bool{a.Start(): true}
	queue := []int{a.Start()}
	for len(queue) > 0 {
		id := queue[0]
		queue = queue[1:]
		for _, tr := range a.Transitions {
			if tr.From == id && !reachable[tr.To] {
				reachable[tr.To] = true
				queue = append(queue, tr.To)
			}
		}
	}
	assert.Len(reachable, len(a.States))
}
