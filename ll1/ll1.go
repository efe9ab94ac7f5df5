// Package ll1 builds the LL(1) predictive parsing table (§4.7): for every
// production A -> alpha, compute FIRST+(A -> alpha) and write M[A, a] for
// every a in it, recording a conflict (not an error — see §7) whenever a
// cell is written twice.
package ll1

import (
	"fmt"

	"github.com/kaelstrom/grammex/firstfollow"
	"github.com/kaelstrom/grammex/grammar"
)

// Conflict records an M[nonterminal, terminal] cell that more than one
// production wanted. The first production encountered (lowest id, since
// Build walks g.Productions() in id order) keeps the cell.
type Conflict struct {
	NonTerminal string
	Terminal    string
	Existing    grammar.NumberedProduction
	Proposed    grammar.NumberedProduction
}

func (c Conflict) String() string {
	return fmt.Sprintf("LL(1) conflict on M[%s, %s]: %s vs %s", c.NonTerminal, c.Terminal, c.Existing, c.Proposed)
}

// Table is the LL(1) predictive table. The grammar is LL(1) iff
// IsConflictFree returns true.
type Table struct {
	Conflicts []Conflict

	cells map[string]map[string]grammar.NumberedProduction
}

// Build constructs the LL(1) table for g using the FIRST/FOLLOW sets fs.
func Build(g grammar.Grammar, fs firstfollow.Sets) *Table {
	t := &Table{cells: map[string]map[string]grammar.NumberedProduction{}}
	for _, np := range g.Productions() {
		for _, term := range firstPlusOf(np.RHS, np.NonTerminal, fs) {
			t.set(np.NonTerminal, term, np)
		}
	}
	return t
}

func (t *Table) set(nonTerminal, terminal string, np grammar.NumberedProduction) {
	if t.cells[nonTerminal] == nil {
		t.cells[nonTerminal] = map[string]grammar.NumberedProduction{}
	}
	existing, ok := t.cells[nonTerminal][terminal]
	if !ok {
		t.cells[nonTerminal][terminal] = np
		return
	}
	if existing.ID != np.ID {
		t.Conflicts = append(t.Conflicts, Conflict{
			NonTerminal: nonTerminal, Terminal: terminal,
			Existing: existing, Proposed: np,
		})
	}
}

// Lookup returns M[nonTerminal, terminal], if defined.
func (t *Table) Lookup(nonTerminal, terminal string) (grammar.NumberedProduction, bool) {
	m, ok := t.cells[nonTerminal]
	if !ok {
		return grammar.NumberedProduction{}, false
	}
	np, ok := m[terminal]
	return np, ok
}

// IsConflictFree reports whether g is LL(1) under this table.
func (t *Table) IsConflictFree() bool { return len(t.Conflicts) == 0 }

// CellCount returns the number of defined M[nonterminal, terminal] cells,
// for the comparator's per-flavor table cardinalities (§6).
func (t *Table) CellCount() int {
	n := 0
	for _, m := range t.cells {
		n += len(m)
	}
	return n
}

// FirstPlus computes FIRST+(nonTerminal -> rhs) per §4.7: FIRST(rhs) minus
// ε, plus FOLLOW(nonTerminal) if rhs can derive ε. Exported for callers
// that want it without building a whole table.
func FirstPlus(rhs grammar.Production, nonTerminal string, fs firstfollow.Sets) []string {
	return firstPlusOf(rhs, nonTerminal, fs)
}

func firstPlusOf(rhs grammar.Production, nonTerminal string, fs firstfollow.Sets) []string {
	var firstAlpha []string
	hasEpsilon := false
	if rhs.IsEpsilon() {
		hasEpsilon = true
	} else {
		firstAlpha = fs.FirstOfString([]string(rhs))
	}

	var out []string
	for _, s := range firstAlpha {
		if s == "" {
			hasEpsilon = true
			continue
		}
		out = append(out, s)
	}
	if hasEpsilon {
		out = append(out, fs.Follow(nonTerminal)...)
	}
	return out
}
