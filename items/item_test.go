package items

import (
	"testing"

	"github.com/kaelstrom/grammex/grammar"
	"github.com/stretchr/testify/assert"
)

func Test_LR0Item_AdvanceAndComplete(t *testing.T) {
	assert := assert.New(t)

	it := NewLR0Item("E", grammar.Production{"E", "+", "T"})
	assert.False(it.IsComplete())
	n, ok := it.NextSymbol()
	assert.True(ok)
	assert.Equal("E", n)

	it = it.Advance()
	n, ok = it.NextSymbol()
	assert.True(ok)
	assert.Equal("+", n)
	assert.Equal([]string{"E"}, it.Left)

	it = it.Advance().Advance()
	assert.True(it.IsComplete())
	_, ok = it.NextSymbol()
	assert.False(ok)
}

func Test_LR0Item_epsilonProduction(t *testing.T) {
	assert := assert.New(t)

	it := NewLR0Item("A", grammar.Epsilon)
	assert.True(it.IsComplete())
	assert.Empty(it.Left)
	assert.Empty(it.Right)
}

func Test_LR0Item_String(t *testing.T) {
	assert := assert.New(t)

	it := NewLR0Item("E", grammar.Production{"E", "+", "T"}).Advance()
	assert.Equal("E -> E . + T", it.String())
}

func Test_LR1Item_CoreAndEqual(t *testing.T) {
	assert := assert.New(t)

	a := LR1Item{LR0Item: NewLR0Item("E", grammar.Production{"T"}), Lookahead: "+"}
	b := LR1Item{LR0Item: NewLR0Item("E", grammar.Production{"T"}), Lookahead: "$"}

	assert.True(a.Core().Equal(b.Core()))
	assert.False(a.Equal(b))
}

func Test_EqualCoreSets(t *testing.T) {
	assert := assert.New(t)

	s1 := NewSet1(
		LR1Item{LR0Item: NewLR0Item("E", grammar.Production{"T"}), Lookahead: "+"},
	)
	s2 := NewSet1(
		LR1Item{LR0Item: NewLR0Item("E", grammar.Production{"T"}), Lookahead: "$"},
	)
	assert.True(EqualCoreSets(s1, s2))

	s3 := NewSet1(
		LR1Item{LR0Item: NewLR0Item("E", grammar.Production{"F"}), Lookahead: "+"},
	)
	assert.False(EqualCoreSets(s1, s3))
}
