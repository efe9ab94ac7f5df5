package main

import (
	"fmt"

	"github.com/dekarrin/rosed"
	"github.com/kaelstrom/grammex/compare"
	"github.com/kaelstrom/grammex/grammar"
	"github.com/kaelstrom/grammex/ll1"
	"github.com/kaelstrom/grammex/lrtable"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// collator gives a stable, locale-aware order to terminal/nonterminal name
// lists before they're laid out as table columns (§10.8). It has no notion
// of grammar semantics; it's display polish only.
var collator = collate.New(language.Und)

func sortedDisplay(syms []string) []string {
	out := append([]string{}, syms...)
	collator.Strings(out)
	return out
}

// renderLRTable lays out a lrtable.Table's ACTION/GOTO grid, grounded on
// the teacher's parse/slr.go String() method: "S" column, "A:<term>"
// columns, a separator, then "G:<nonterminal>" columns.
func renderLRTable(t *lrtable.Table) string {
	states := t.States()
	terms := sortedDisplay(t.ActionSymbols())
	nts := sortedDisplay(t.GotoSymbols())

	headers := []string{"S", "|"}
	for _, term := range terms {
		headers = append(headers, fmt.Sprintf("A:%s", term))
	}
	headers = append(headers, "|")
	for _, nt := range nts {
		headers = append(headers, fmt.Sprintf("G:%s", nt))
	}

	data := [][]string{headers}
	for _, s := range states {
		row := []string{fmt.Sprintf("%d", s), "|"}
		for _, term := range terms {
			cell := ""
			if act, ok := t.Action(s, term); ok {
				cell = act.String()
			}
			row = append(row, cell)
		}
		row = append(row, "|")
		for _, nt := range nts {
			cell := ""
			if to, ok := t.Goto(s, nt); ok {
				cell = fmt.Sprintf("%d", to)
			}
			row = append(row, cell)
		}
		data = append(data, row)
	}

	return rosed.Edit("").
		InsertTableOpts(0, data, 10, rosed.Options{
			TableHeaders:             true,
			NoTrailingLineSeparators: true,
		}).
		String()
}

// renderLL1Table lays out an ll1.Table's M[nonterminal, terminal] grid
// against g, the grammar the table was actually built from (post
// transform.ForLL1, not the caller's original grammar).
func renderLL1Table(t *ll1.Table, g grammar.Grammar) string {
	nts := sortedDisplay(g.NonTerminals())
	terms := append(sortedDisplay(g.Terminals()), grammar.EndOfInput)

	headers := append([]string{"NT"}, terms...)
	data := [][]string{headers}
	for _, nt := range nts {
		row := []string{nt}
		for _, term := range terms {
			cell := ""
			if np, ok := t.Lookup(nt, term); ok {
				cell = np.String()
			}
			row = append(row, cell)
		}
		data = append(data, row)
	}

	return rosed.Edit("").
		InsertTableOpts(0, data, 10, rosed.Options{
			TableHeaders:             true,
			NoTrailingLineSeparators: true,
		}).
		String()
}

// renderSummary lays out the comparator's per-flavor cardinalities as a
// grid, the presentation-layer counterpart to compare.Report's own
// dependency-free String() (§10.7).
func renderSummary(r compare.Report) string {
	data := [][]string{
		{"flavor", "states", "transitions", "action", "goto", "conflicts", "conflict-free"},
		summaryRow(r.SLR),
		summaryRow(r.CLR),
		summaryRow(r.LALR),
		summaryRow(r.LL1),
	}
	table := rosed.Edit("").
		InsertTableOpts(0, data, 12, rosed.Options{
			TableHeaders:             true,
			NoTrailingLineSeparators: true,
		}).
		String()

	rec := r.Recommendation
	if rec == "" {
		rec = "none (no flavor is conflict-free)"
	}
	return fmt.Sprintf("%s\nrecommendation: %s\n", table, rec)
}

func summaryRow(s compare.Summary) []string {
	return []string{
		s.Flavor,
		fmt.Sprintf("%d", s.StateCount),
		fmt.Sprintf("%d", s.TransitionCount),
		fmt.Sprintf("%d", s.ActionCells),
		fmt.Sprintf("%d", s.GotoCells),
		fmt.Sprintf("%d", s.ConflictCount),
		fmt.Sprintf("%v", s.ConflictFree),
	}
}
