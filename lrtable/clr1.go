package lrtable

import (
	"github.com/kaelstrom/grammex/automaton"
	"github.com/kaelstrom/grammex/firstfollow"
	"github.com/kaelstrom/grammex/grammar"
)

// BuildCLR1 constructs the canonical LR(1) table for augmented grammar g:
// reduce entries are sourced from each completed item's own lookahead
// rather than FOLLOW(A).
func BuildCLR1(g grammar.Grammar, fs firstfollow.Sets) *Table {
	a := automaton.NewLR1(g, fs)
	return buildFromLR1(g, a, "CLR(1)")
}

// buildFromLR1 is shared by BuildCLR1 and BuildLALR1: both read ACTION and
// GOTO off an *automaton.LR1Automaton the same way, differing only in how
// that automaton was constructed (full canonical collection vs.
// core-merged).
func buildFromLR1(g grammar.Grammar, a *automaton.LR1Automaton, flavor string) *Table {
	t := newTable(flavor, a.DFA)
	startSym := g.StartSymbol()

	for _, st := range a.States {
		id := st.ID
		set := a.ItemsOf(id)
		for _, k := range set.Elements() {
			it := set.Get(k)

			if it.IsComplete() {
				if it.NonTerminal == startSym {
					t.setAction(id, it.Lookahead, Action{Type: Accept})
					continue
				}
				prod := productionFor(g, it.NonTerminal, it.Left)
				t.setAction(id, it.Lookahead, Action{Type: Reduce, Production: prod})
				continue
			}

			next, _ := it.NextSymbol()
			if g.IsTerminal(next) {
				if to, ok := a.Next(id, next); ok {
					t.setAction(id, next, Action{Type: Shift, State: to})
				}
			}
		}

		for _, nt := range g.NonTerminals() {
			if to, ok := a.Next(id, nt); ok {
				t.setGoto(id, nt, to)
			}
		}
	}
	return t
}
