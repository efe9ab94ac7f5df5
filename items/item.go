// Package items implements LR item representation, closure, and GOTO, per
// §4.4. It depends on grammar and firstfollow but not on automaton, which
// is built on top of it.
package items

import (
	"fmt"
	"strings"

	"github.com/kaelstrom/grammex/grammar"
	"github.com/kaelstrom/grammex/internal/util"
)

// LR0Item is a production with a dot marking how much of it has been
// matched: Left holds the symbols before the dot, Right the symbols still
// to come. An ε-production's item always has Left and Right both empty —
// the dot sits at the only position there is.
type LR0Item struct {
	NonTerminal string
	Left        []string
	Right       []string
}

// NewLR0Item returns the item for rhs with the dot at the very start.
func NewLR0Item(nonTerminal string, rhs grammar.Production) LR0Item {
	if rhs.IsEpsilon() {
		return LR0Item{NonTerminal: nonTerminal}
	}
	right := make([]string, len(rhs))
	copy(right, rhs)
	return LR0Item{NonTerminal: nonTerminal, Right: right}
}

// NextSymbol returns the symbol immediately after the dot, if any.
func (it LR0Item) NextSymbol() (string, bool) {
	if len(it.Right) == 0 {
		return "", false
	}
	return it.Right[0], true
}

// IsComplete reports whether the dot is at the end of the production.
func (it LR0Item) IsComplete() bool {
	return len(it.Right) == 0
}

// Advance returns the item with the dot moved one symbol to the right. It
// is a no-op on a complete item.
func (it LR0Item) Advance() LR0Item {
	if it.IsComplete() {
		return it
	}
	left := make([]string, len(it.Left)+1)
	copy(left, it.Left)
	left[len(it.Left)] = it.Right[0]
	right := make([]string, len(it.Right)-1)
	copy(right, it.Right[1:])
	return LR0Item{NonTerminal: it.NonTerminal, Left: left, Right: right}
}

func (it LR0Item) Equal(o LR0Item) bool {
	if it.NonTerminal != o.NonTerminal {
		return false
	}
	if len(it.Left) != len(o.Left) || len(it.Right) != len(o.Right) {
		return false
	}
	for i := range it.Left {
		if it.Left[i] != o.Left[i] {
			return false
		}
	}
	for i := range it.Right {
		if it.Right[i] != o.Right[i] {
			return false
		}
	}
	return true
}

func (it LR0Item) String() string {
	left := strings.Join(it.Left, " ")
	right := strings.Join(it.Right, " ")
	if left != "" {
		left += " "
	}
	if right != "" {
		right = " " + right
	}
	return fmt.Sprintf("%s -> %s.%s", it.NonTerminal, left, right)
}

// LR1Item is an LR0Item tagged with a single lookahead terminal.
type LR1Item struct {
	LR0Item
	Lookahead string
}

func (it LR1Item) Equal(o LR1Item) bool {
	return it.LR0Item.Equal(o.LR0Item) && it.Lookahead == o.Lookahead
}

func (it LR1Item) String() string {
	return fmt.Sprintf("%s, %s", it.LR0Item.String(), it.Lookahead)
}

// Advance returns the item with the dot moved one symbol right, lookahead
// unchanged.
func (it LR1Item) Advance() LR1Item {
	return LR1Item{LR0Item: it.LR0Item.Advance(), Lookahead: it.Lookahead}
}

// Core strips the lookahead, projecting onto (production, dot) — what
// automaton.NewLALR1 groups states by (§4.5, §9: "LR(1) core extraction is
// a projection onto (prod-id, dot)").
func (it LR1Item) Core() LR0Item {
	return it.LR0Item
}

// Set is a canonically-keyed collection of LR0Items, keyed by String() so
// two sets with the same items compare equal via their StringOrdered()
// form regardless of insertion order.
type Set = util.SVSet[LR0Item]

// Set1 is the LR1Item analogue of Set.
type Set1 = util.SVSet[LR1Item]

func NewSet(elems ...LR0Item) Set {
	s := util.NewSVSet[LR0Item]()
	for _, it := range elems {
		s.Set(it.String(), it)
	}
	return s
}

func NewSet1(elems ...LR1Item) Set1 {
	s := util.NewSVSet[LR1Item]()
	for _, it := range elems {
		s.Set(it.String(), it)
	}
	return s
}

// CoreSet projects an LR1 item set onto its LR0 core, for LALR merging.
func CoreSet(s Set1) Set {
	cores := util.NewSVSet[LR0Item]()
	for _, k := range s.Elements() {
		core := s.Get(k).Core()
		cores.Set(core.String(), core)
	}
	return cores
}

// EqualCoreSets reports whether two LR1 item sets share the same LR0 core,
// i.e. would be merged into the same LALR state.
func EqualCoreSets(s1, s2 Set1) bool {
	return CoreSet(s1).StringOrdered() == CoreSet(s2).StringOrdered()
}
