package lrtable

import (
	"github.com/kaelstrom/grammex/automaton"
	"github.com/kaelstrom/grammex/firstfollow"
	"github.com/kaelstrom/grammex/grammar"
)

// BuildLALR1 constructs the LALR(1) table for augmented grammar g: the
// canonical LR(1) automaton with states merged by core
// (automaton.NewLALR1), with ACTION/GOTO read off exactly as CLR(1) does.
func BuildLALR1(g grammar.Grammar, fs firstfollow.Sets) *Table {
	a := automaton.NewLALR1(g, fs)
	return buildFromLR1(g, a, "LALR(1)")
}
