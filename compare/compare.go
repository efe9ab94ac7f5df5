// Package compare orchestrates all four table builders against one grammar
// and recommends a flavor, per §4.9. It is the only package that calls
// grammar.Augmented, firstfollow.Compute, and transform.ForLL1 together —
// every builder package takes those as already-computed inputs.
package compare

import (
	"fmt"
	"strings"
	"sync"

	"github.com/kaelstrom/grammex/firstfollow"
	"github.com/kaelstrom/grammex/grammar"
	"github.com/kaelstrom/grammex/internal/grammarerr"
	"github.com/kaelstrom/grammex/ll1"
	"github.com/kaelstrom/grammex/lrtable"
	"github.com/kaelstrom/grammex/transform"
)

// Policy governs the tie-break the comparator applies when more than one
// flavor is conflict-free.
type Policy int

const (
	// PreferLR tries LALR, SLR, CLR, then LL(1), in that order (§4.9's
	// default rule): prefer the smallest conflict-free LR table, and
	// prefer LR over LL because LL(1) only succeeds on a transformed
	// grammar, not the one the caller actually wrote.
	PreferLR Policy = iota
	// PreferLL tries LL(1) first, falling back to the PreferLR order.
	PreferLL
)

// Summary is the per-flavor report the comparator emits (§6): state count,
// transition count, conflict count, and table cardinalities.
type Summary struct {
	Flavor          string
	ConflictFree    bool
	StateCount      int
	TransitionCount int
	ConflictCount   int
	ActionCells     int
	GotoCells       int
}

// Report is the comparator's full output.
type Report struct {
	SLR  Summary
	CLR  Summary
	LALR Summary
	LL1  Summary

	SLRTable  *lrtable.Table
	CLRTable  *lrtable.Table
	LALRTable *lrtable.Table
	LL1Table  *ll1.Table

	// TransformedGrammar is g after transform.ForLL1 — the grammar LL1 and
	// LL1Table above were actually built from, not g itself.
	TransformedGrammar grammar.Grammar

	// Recommendation names the flavor the policy selected ("SLR(1)",
	// "CLR(1)", "LALR(1)", "LL(1)"), or "" if none of the four is
	// conflict-free.
	Recommendation string
}

// Run builds all four tables for g and applies policy's recommendation
// rule. The four builds are independent pure functions of their shared
// (Grammar, FIRST, FOLLOW) inputs (§5), so they run concurrently.
func Run(g grammar.Grammar, policy Policy) Report {
	augmented := g.Augmented()
	fs := firstfollow.Compute(augmented)

	transformed := transform.ForLL1(g).Grammar
	ll1FS := firstfollow.Compute(transformed)

	var slrTable, clrTable, lalrTable *lrtable.Table
	var ll1Table *ll1.Table

	var wg sync.WaitGroup
	wg.Add(4)
	go func() { defer wg.Done(); slrTable = lrtable.BuildSLR1(augmented, fs) }()
	go func() { defer wg.Done(); clrTable = lrtable.BuildCLR1(augmented, fs) }()
	go func() { defer wg.Done(); lalrTable = lrtable.BuildLALR1(augmented, fs) }()
	go func() { defer wg.Done(); ll1Table = ll1.Build(transformed, ll1FS) }()
	wg.Wait()

	report := Report{
		SLR:  summarizeLR("SLR(1)", slrTable),
		CLR:  summarizeLR("CLR(1)", clrTable),
		LALR: summarizeLR("LALR(1)", lalrTable),
		LL1:  summarizeLL1(ll1Table),

		SLRTable:  slrTable,
		CLRTable:  clrTable,
		LALRTable: lalrTable,
		LL1Table:  ll1Table,

		TransformedGrammar: transformed,
	}
	report.Recommendation = recommend(report, policy)
	return report
}

func summarizeLR(flavor string, t *lrtable.Table) Summary {
	dfa := t.GetDFA()
	actionCells, gotoCells := t.CellCounts()
	return Summary{
		Flavor:          flavor,
		ConflictFree:    t.IsConflictFree(),
		StateCount:      len(dfa.States),
		TransitionCount: len(dfa.Transitions),
		ConflictCount:   len(t.Conflicts),
		ActionCells:     actionCells,
		GotoCells:       gotoCells,
	}
}

func summarizeLL1(t *ll1.Table) Summary {
	return Summary{
		Flavor:        "LL(1)",
		ConflictFree:  t.IsConflictFree(),
		ConflictCount: len(t.Conflicts),
		ActionCells:   t.CellCount(),
	}
}

func recommend(r Report, policy Policy) string {
	lrOrder := []struct {
		name string
		ok   bool
	}{
		{"LALR(1)", r.LALR.ConflictFree},
		{"SLR(1)", r.SLR.ConflictFree},
		{"CLR(1)", r.CLR.ConflictFree},
		{"LL(1)", r.LL1.ConflictFree},
	}
	order := lrOrder
	if policy == PreferLL {
		order = append([]struct {
			name string
			ok   bool
		}{{"LL(1)", r.LL1.ConflictFree}}, lrOrder[:3]...)
	}
	for _, o := range order {
		if o.ok {
			return o.name
		}
	}
	return ""
}

// RequireConflictFree returns a grammarerr Conflict error if the named
// flavor's table in r is not conflict-free, for a caller that wants to fail
// closed rather than branch on Summary.ConflictFree itself (§10.1).
func (r Report) RequireConflictFree(flavor string) error {
	var conflicts []string
	switch flavor {
	case "SLR(1)":
		for _, c := range r.SLRTable.Conflicts {
			conflicts = append(conflicts, c.String())
		}
	case "CLR(1)":
		for _, c := range r.CLRTable.Conflicts {
			conflicts = append(conflicts, c.String())
		}
	case "LALR(1)":
		for _, c := range r.LALRTable.Conflicts {
			conflicts = append(conflicts, c.String())
		}
	case "LL(1)":
		for _, c := range r.LL1Table.Conflicts {
			conflicts = append(conflicts, c.String())
		}
	default:
		return fmt.Errorf("unknown flavor %q", flavor)
	}
	if len(conflicts) == 0 {
		return nil
	}
	return grammarerr.Conflict(flavor, conflicts)
}

// String gives a compact, dependency-free summary of the report: one line
// per flavor plus the recommendation. Full grid rendering of the
// underlying tables belongs to the presentation layer (§10.7).
func (r Report) String() string {
	var b strings.Builder
	for _, s := range []Summary{r.SLR, r.CLR, r.LALR, r.LL1} {
		fmt.Fprintf(&b, "%-8s states=%-4d transitions=%-4d action=%-4d goto=%-4d conflicts=%-3d conflict-free=%v\n",
			s.Flavor, s.StateCount, s.TransitionCount, s.ActionCells, s.GotoCells, s.ConflictCount, s.ConflictFree)
	}

	rec := r.Recommendation
	if rec == "" {
		rec = "none (no flavor is conflict-free)"
	}
	fmt.Fprintf(&b, "recommendation: %s\n", rec)
	return b.String()
}
