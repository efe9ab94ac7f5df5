package lrtable

import (
	"github.com/kaelstrom/grammex/automaton"
	"github.com/kaelstrom/grammex/firstfollow"
	"github.com/kaelstrom/grammex/grammar"
)

// BuildSLR1 constructs the SLR(1) table for augmented grammar g. Per the
// Open Question decision recorded in SPEC_FULL.md §12.1, it is built on
// the LR(0) automaton (not a lookahead-stripped LR(1) one), and reduce
// entries are sourced from FOLLOW rather than item lookahead.
func BuildSLR1(g grammar.Grammar, fs firstfollow.Sets) *Table {
	a := automaton.NewLR0(g)
	t := newTable("SLR(1)", a.DFA)
	startSym := g.StartSymbol()

	for _, st := range a.States {
		id := st.ID
		set := a.ItemsOf(id)
		for _, k := range set.Elements() {
			it := set.Get(k)

			if it.IsComplete() {
				if it.NonTerminal == startSym {
					t.setAction(id, grammar.EndOfInput, Action{Type: Accept})
					continue
				}
				prod := productionFor(g, it.NonTerminal, it.Left)
				for _, la := range fs.Follow(it.NonTerminal) {
					t.setAction(id, la, Action{Type: Reduce, Production: prod})
				}
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
