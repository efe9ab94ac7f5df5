// Package automaton builds the canonical collection of LR(0)/LR(1) states
// and the transitions between them (§4.5): a worklist construction over
// item-set closure and GOTO from the items package, state equality by
// canonical item-set content, and the LALR(1) core-merge variant built on
// top of the full LR(1) collection.
package automaton

import (
	"fmt"
	"sort"

	"github.com/kaelstrom/grammex/firstfollow"
	"github.com/kaelstrom/grammex/grammar"
	"github.com/kaelstrom/grammex/items"
)

// Transition is one edge of the automaton: from state From, on symbol
// Symbol, to state To.
type Transition struct {
	From   int
	Symbol string
	To     int
}

// State is one node of the automaton as exposed to the presentation layer
// (§6): its id and its items rendered as strings in a stable sorted order.
type State struct {
	ID    int
	Items []string
}

// DFA is the transition structure shared by the LR(0), LR(1), and LALR(1)
// automata. It satisfies §4.5's determinism invariant by construction:
// addTransition is only ever called once per (from, symbol) pair by the
// builders in this package.
type DFA struct {
	States      []State
	Transitions []Transition

	start int
	trans map[int]map[string]int
}

func newDFA() *DFA {
	return &DFA{trans: map[int]map[string]int{}}
}

func (d *DFA) addTransition(from int, symbol string, to int) {
	d.Transitions = append(d.Transitions, Transition{From: from, Symbol: symbol, To: to})
	if d.trans[from] == nil {
		d.trans[from] = map[string]int{}
	}
	d.trans[from][symbol] = to
}

// Start returns the id of the initial state (always 0).
func (d *DFA) Start() int { return d.start }

// Next returns GOTO(state, symbol) if defined.
func (d *DFA) Next(state int, symbol string) (int, bool) {
	m, ok := d.trans[state]
	if !ok {
		return 0, false
	}
	to, ok := m[symbol]
	return to, ok
}

// LR0Automaton is the canonical collection of LR(0) item sets, used by the
// SLR(1) table builder (per the Open Question decision in SPEC_FULL.md
// §12.1: SLR is built on the LR(0) automaton, not a lookahead-stripped
// LR(1) one).
type LR0Automaton struct {
	*DFA
	itemSets map[int]items.Set
}

// ItemsOf returns the LR0Item set of state.
func (a *LR0Automaton) ItemsOf(state int) items.Set { return a.itemSets[state] }

// NewLR0 builds the canonical LR(0) collection for augmented grammar g.
func NewLR0(g grammar.Grammar) *LR0Automaton {
	dfa := newDFA()
	itemSets := map[int]items.Set{}

	initial := items.LR0Closure(g, items.NewSet(items.NewLR0Item(g.StartSymbol(), startProduction(g))))
	stateKeys := map[string]int{initial.StringOrdered(): 0}
	itemSets[0] = initial
	dfa.start = 0

	symbols := allSymbols(g)
	queue := []int{0}
	nextID := 1
	for len(queue) > 0 {
		id := queue[0]
		queue = queue[1:]
		cur := itemSets[id]

		for _, x := range symbols {
			succ := items.GotoLR0(g, cur, x)
			if succ.Empty() {
				continue
			}
			key := succ.StringOrdered()
			toID, seen := stateKeys[key]
			if !seen {
				toID = nextID
				nextID++
				stateKeys[key] = toID
				itemSets[toID] = succ
				queue = append(queue, toID)
			}
			dfa.addTransition(id, x, toID)
		}
	}

	for id := 0; id < nextID; id++ {
		dfa.States = append(dfa.States, State{ID: id, Items: sortedItemStrings(itemSets[id])})
	}
	return &LR0Automaton{DFA: dfa, itemSets: itemSets}
}

// LR1Automaton is the canonical collection of LR(1) item sets. It backs
// both CLR(1) directly and LALR(1) after NewLALR1's core-merge pass.
type LR1Automaton struct {
	*DFA
	itemSets map[int]items.Set1
}

// ItemsOf returns the LR1Item set of state.
func (a *LR1Automaton) ItemsOf(state int) items.Set1 { return a.itemSets[state] }

// NewLR1 builds the canonical LR(1) collection for augmented grammar g.
func NewLR1(g grammar.Grammar, fs firstfollow.Sets) *LR1Automaton {
	dfa := newDFA()
	itemSets := map[int]items.Set1{}

	initial := items.LR1Closure(g, fs, items.NewSet1(items.LR1Item{
		LR0Item:   items.NewLR0Item(g.StartSymbol(), startProduction(g)),
		Lookahead: grammar.EndOfInput,
	}))
	stateKeys := map[string]int{initial.StringOrdered(): 0}
	itemSets[0] = initial
	dfa.start = 0

	symbols := allSymbols(g)
	queue := []int{0}
	nextID := 1
	for len(queue) > 0 {
		id := queue[0]
		queue = queue[1:]
		cur := itemSets[id]

		for _, x := range symbols {
			succ := items.GotoLR1(g, fs, cur, x)
			if succ.Empty() {
				continue
			}
			key := succ.StringOrdered()
			toID, seen := stateKeys[key]
			if !seen {
				toID = nextID
				nextID++
				stateKeys[key] = toID
				itemSets[toID] = succ
				queue = append(queue, toID)
			}
			dfa.addTransition(id, x, toID)
		}
	}

	for id := 0; id < nextID; id++ {
		dfa.States = append(dfa.States, State{ID: id, Items: sortedItemStrings1(itemSets[id])})
	}
	return &LR1Automaton{DFA: dfa, itemSets: itemSets}
}

// NewLALR1 builds the full LR(1) collection and merges states that share
// an LR(0) core, per §4.5. Merged state ids are assigned by the smallest
// original LR(1) state id in the group, so state 0 of the result is always
// the merge containing the LR(1) automaton's own state 0.
func NewLALR1(g grammar.Grammar, fs firstfollow.Sets) *LR1Automaton {
	base := NewLR1(g, fs)

	groupByCore := map[string][]int{}
	for id, set := range base.itemSets {
		core := items.CoreSet(set).StringOrdered()
		groupByCore[core] = append(groupByCore[core], id)
	}

	type group struct {
		ids []int
		min int
	}
	groups := make([]group, 0, len(groupByCore))
	for _, ids := range groupByCore {
		sort.Ints(ids)
		groups = append(groups, group{ids: ids, min: ids[0]})
	}
	sort.Slice(groups, func(i, j int) bool { return groups[i].min < groups[j].min })

	origToMerged := map[int]int{}
	mergedItemSets := make(map[int]items.Set1, len(groups))
	for newID, grp := range groups {
		merged := items.NewSet1()
		for _, origID := range grp.ids {
			origToMerged[origID] = newID
			set := base.itemSets[origID]
			for _, k := range set.Elements() {
				merged.Set(k, set.Get(k))
			}
		}
		mergedItemSets[newID] = merged
	}

	merged := newDFA()
	merged.start = origToMerged[base.start]
	seen := map[string]bool{}
	for _, tr := range base.Transitions {
		from := origToMerged[tr.From]
		to := origToMerged[tr.To]
		key := fmt.Sprintf("%d\x1f%s", from, tr.Symbol)
		if seen[key] {
			continue // isomorphic cores guarantee every member agrees on the target
		}
		seen[key] = true
		merged.addTransition(from, tr.Symbol, to)
	}

	for id := 0; id < len(groups); id++ {
		merged.States = append(merged.States, State{ID: id, Items: sortedItemStrings1(mergedItemSets[id])})
	}

	return &LR1Automaton{DFA: merged, itemSets: mergedItemSets}
}

func startProduction(g grammar.Grammar) grammar.Production {
	prods := g.ProductionsOf(g.StartSymbol())
	if len(prods) == 0 {
		return grammar.Epsilon
	}
	return prods[0]
}

func allSymbols(g grammar.Grammar) []string {
	syms := append([]string{}, g.Terminals()...)
	syms = append(syms, g.NonTerminals()...)
	return syms
}

func sortedItemStrings(s items.Set) []string {
	elems := s.Elements()
	out := make([]string, 0, len(elems))
	for _, k := range elems {
		out = append(out, s.Get(k).String())
	}
	sort.Strings(out)
	return out
}

func sortedItemStrings1(s items.Set1) []string {
	elems := s.Elements()
	out := make([]string, 0, len(elems))
	for _, k := range elems {
		out = append(out, s.Get(k).String())
	}
	sort.Strings(out)
	return out
}
