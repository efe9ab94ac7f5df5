// Package lrtable builds the SLR(1), CLR(1), and LALR(1) ACTION/GOTO
// tables (§4.6): shift and goto entries read straight off the automaton's
// transitions, reduce entries sourced per-flavor (FOLLOW for SLR, item
// lookahead for CLR/LALR), and a deterministic conflict tie-break so a
// table is always usable even when it isn't conflict-free.
package lrtable

import (
	"fmt"
	"sort"

	"github.com/kaelstrom/grammex/automaton"
	"github.com/kaelstrom/grammex/grammar"
)

type ActionType int

const (
	Shift ActionType = iota
	Reduce
	Accept
)

func (t ActionType) String() string {
	switch t {
	case Shift:
		return "shift"
	case Reduce:
		return "reduce"
	case Accept:
		return "accept"
	}
	return "error"
}

// Action is one ACTION table cell.
type Action struct {
	Type ActionType

	// State is the destination state; meaningful only when Type == Shift.
	State int

	// Production is the production to reduce by; meaningful only when
	// Type == Reduce.
	Production grammar.NumberedProduction
}

func (a Action) String() string {
	switch a.Type {
	case Shift:
		return fmt.Sprintf("shift %d", a.State)
	case Reduce:
		return fmt.Sprintf("reduce %s", a.Production.String())
	case Accept:
		return "accept"
	}
	return "error"
}

func actionsEqual(a, b Action) bool {
	if a.Type != b.Type {
		return false
	}
	switch a.Type {
	case Shift:
		return a.State == b.State
	case Reduce:
		return a.Production.ID == b.Production.ID
	default:
		return true
	}
}

// ConflictKind distinguishes the two ways an ACTION cell can be
// overwritten, per §4.6.
type ConflictKind string

const (
	ShiftReduceConflict  ConflictKind = "shift/reduce"
	ReduceReduceConflict ConflictKind = "reduce/reduce"
)

// Conflict records an ACTION cell that two different actions both wanted,
// and which one the builder's tie-break kept.
type Conflict struct {
	State    int
	Symbol   string
	Kind     ConflictKind
	Existing Action
	Proposed Action
	Resolved Action
}

func (c Conflict) String() string {
	return fmt.Sprintf("%s conflict in state %d on %q: %s vs %s (kept %s)",
		c.Kind, c.State, c.Symbol, c.Existing, c.Proposed, c.Resolved)
}

// Table is the ACTION/GOTO table produced by a builder. A Table is always
// usable: conflicts never block construction, they're recorded in
// Conflicts alongside the deterministic choice the builder made.
type Table struct {
	Flavor    string
	Conflicts []Conflict

	dfa    *automaton.DFA
	action map[int]map[string]Action
	goTo   map[int]map[string]int
}

func newTable(flavor string, dfa *automaton.DFA) *Table {
	return &Table{
		Flavor: flavor,
		dfa:    dfa,
		action: map[int]map[string]Action{},
		goTo:   map[int]map[string]int{},
	}
}

// Initial returns the start state, always 0.
func (t *Table) Initial() int { return t.dfa.Start() }

// Action returns ACTION[state, terminal], if defined.
func (t *Table) Action(state int, terminal string) (Action, bool) {
	m, ok := t.action[state]
	if !ok {
		return Action{}, false
	}
	a, ok := m[terminal]
	return a, ok
}

// Goto returns GOTO[state, nonTerminal], if defined.
func (t *Table) Goto(state int, nonTerminal string) (int, bool) {
	m, ok := t.goTo[state]
	if !ok {
		return 0, false
	}
	to, ok := m[nonTerminal]
	return to, ok
}

// GetDFA exposes the underlying automaton, for callers that want state
// item contents or transition listings alongside the table.
func (t *Table) GetDFA() *automaton.DFA { return t.dfa }

// IsConflictFree reports whether the table has zero recorded conflicts.
func (t *Table) IsConflictFree() bool { return len(t.Conflicts) == 0 }

// CellCounts returns the number of defined ACTION and GOTO cells, for the
// comparator's per-flavor table cardinalities (§6).
func (t *Table) CellCounts() (actionCells, gotoCells int) {
	for _, m := range t.action {
		actionCells += len(m)
	}
	for _, m := range t.goTo {
		gotoCells += len(m)
	}
	return actionCells, gotoCells
}

func (t *Table) setAction(state int, terminal string, proposed Action) {
	if t.action[state] == nil {
		t.action[state] = map[string]Action{}
	}
	existing, ok := t.action[state][terminal]
	if !ok {
		t.action[state][terminal] = proposed
		return
	}
	if actionsEqual(existing, proposed) {
		return
	}
	resolved, kind := resolveConflict(existing, proposed)
	t.Conflicts = append(t.Conflicts, Conflict{
		State: state, Symbol: terminal, Kind: kind,
		Existing: existing, Proposed: proposed, Resolved: resolved,
	})
	t.action[state][terminal] = resolved
}

func (t *Table) setGoto(state int, nonTerminal string, to int) {
	if t.goTo[state] == nil {
		t.goTo[state] = map[string]int{}
	}
	t.goTo[state][nonTerminal] = to
}

// resolveConflict applies §4.6's tie-break: shift wins over reduce; the
// lower-id production wins reduce/reduce. This exists purely so a driver
// that chooses to proceed past a conflict makes forward progress — it is
// not a claim that the resolved table is correct for the grammar.
func resolveConflict(existing, proposed Action) (Action, ConflictKind) {
	if existing.Type == Shift && proposed.Type == Reduce {
		return existing, ShiftReduceConflict
	}
	if proposed.Type == Shift && existing.Type == Reduce {
		return proposed, ShiftReduceConflict
	}
	if existing.Type == Reduce && proposed.Type == Reduce {
		if existing.Production.ID <= proposed.Production.ID {
			return existing, ReduceReduceConflict
		}
		return proposed, ReduceReduceConflict
	}
	if existing.Type == Accept {
		return existing, ShiftReduceConflict
	}
	return proposed, ShiftReduceConflict
}

func productionFor(g grammar.Grammar, nonTerminal string, rhs []string) grammar.NumberedProduction {
	want := grammar.Production(rhs)
	if len(want) == 0 {
		want = grammar.Epsilon
	}
	for _, np := range g.Productions() {
		if np.NonTerminal == nonTerminal && np.RHS.Equal(want) {
			return np
		}
	}
	return grammar.NumberedProduction{NonTerminal: nonTerminal, RHS: want, ID: -1}
}

// String gives a compact, dependency-free summary of the table. Full grid
// rendering belongs to the presentation layer (§10.7), which has the
// Action/Goto/States accessors below to build one.
func (t *Table) String() string {
	return fmt.Sprintf("%s table: %d states, %d conflicts", t.Flavor, len(t.dfa.States), len(t.Conflicts))
}

// States returns every state id in the table's automaton, sorted.
func (t *Table) States() []int {
	out := make([]int, len(t.dfa.States))
	for i, st := range t.dfa.States {
		out[i] = st.ID
	}
	sort.Ints(out)
	return out
}

// ActionSymbols returns every terminal, plus the end-of-input marker, that
// some state has an ACTION entry for, sorted. It is the column set a
// presentation layer needs to render the ACTION side of the table.
func (t *Table) ActionSymbols() []string {
	syms := map[string]bool{grammar.EndOfInput: true}
	for _, m := range t.action {
		for sym := range m {
			syms[sym] = true
		}
	}
	return setKeys(syms)
}

// GotoSymbols returns every nonterminal some state has a GOTO entry for,
// sorted.
func (t *Table) GotoSymbols() []string {
	syms := map[string]bool{}
	for _, m := range t.goTo {
		for sym := range m {
			syms[sym] = true
		}
	}
	return setKeys(syms)
}

func setKeys(m map[string]bool) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
