// Package transform implements the grammar-rewriting passes: left-recursion
// elimination (direct and indirect), left factoring, and the supplemented
// epsilon- and unit-production removal passes. Every pass takes a
// grammar.Grammar and returns a fresh one; none mutate their input.
package transform

import "github.com/kaelstrom/grammex/grammar"

// Descriptor records one rewrite a pass performed, for callers that want to
// show their work (for example tests asserting on what fired).
type Descriptor struct {
	Kind        string // "left-recursion", "left-factor", "epsilon-removal", "unit-removal"
	NonTerminal string // empty when the descriptor isn't specific to one nonterminal
	Detail      string
}

// Result is the outcome of a transformation pass, per §4.3's "result
// record".
type Result struct {
	Grammar              grammar.Grammar
	Applied              []Descriptor
	LeftRecursionRemoved bool
	LeftFactored         bool
	NewNonTerminals      []string
}

// ForLL1 applies the standard LL(1)-preparation sequence: eliminate left
// recursion, then left-factor the result. This is the "transform_for_ll1"
// referenced by the comparator and by the round-trip tests.
func ForLL1(g grammar.Grammar) Result {
	r1 := RemoveLeftRecursion(g)
	r2 := LeftFactor(r1.Grammar)

	applied := make([]Descriptor, 0, len(r1.Applied)+len(r2.Applied))
	applied = append(applied, r1.Applied...)
	applied = append(applied, r2.Applied...)

	newNTs := make([]string, 0, len(r1.NewNonTerminals)+len(r2.NewNonTerminals))
	newNTs = append(newNTs, r1.NewNonTerminals...)
	newNTs = append(newNTs, r2.NewNonTerminals...)

	return Result{
		Grammar:              r2.Grammar,
		Applied:              applied,
		LeftRecursionRemoved: r1.LeftRecursionRemoved,
		LeftFactored:         r2.LeftFactored,
		NewNonTerminals:      newNTs,
	}
}
