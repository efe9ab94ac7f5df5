package items

import (
	"github.com/kaelstrom/grammex/firstfollow"
	"github.com/kaelstrom/grammex/grammar"
)

// GotoLR0 computes GOTO(i, x) = closure({advance(item) : item in i, next
// symbol of item == x}), per §4.4. Empty if no item in i has x next.
func GotoLR0(g grammar.Grammar, i Set, x string) Set {
	moved := NewSet()
	for _, k := range i.Elements() {
		it := i.Get(k)
		next, ok := it.NextSymbol()
		if !ok || next != x {
			continue
		}
		adv := it.Advance()
		moved.Set(adv.String(), adv)
	}
	if moved.Empty() {
		return moved
	}
	return LR0Closure(g, moved)
}

// GotoLR1 is the LR(1) analogue of GotoLR0.
func GotoLR1(g grammar.Grammar, fs firstfollow.Sets, i Set1, x string) Set1 {
	moved := NewSet1()
	for _, k := range i.Elements() {
		it := i.Get(k)
		next, ok := it.NextSymbol()
		if !ok || next != x {
			continue
		}
		adv := it.Advance()
		moved.Set(adv.String(), adv)
	}
	if moved.Empty() {
		return moved
	}
	return LR1Closure(g, fs, moved)
}
