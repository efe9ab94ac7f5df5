package transform

import (
	"fmt"

	"github.com/kaelstrom/grammex/grammar"
)

// RemoveLeftRecursion eliminates direct and indirect left recursion per
// §4.3's ordered-substitution algorithm. Nonterminals are processed in g's
// existing order (ties already broken by first-appearance id, since that's
// how grammar.Grammar records NonTerminals()). If a left-recursive
// nonterminal has no non-recursive alternative, the transformer still
// emits the rewritten productions (the grammar derives nothing for it) and
// records a descriptor noting the fact, per spec.
func RemoveLeftRecursion(g grammar.Grammar) Result {
	order := g.NonTerminals()
	prods := make(map[string][]grammar.Production, len(order))
	for _, nt := range order {
		prods[nt] = g.ProductionsOf(nt)
	}

	reserved := append(append([]string{}, order...), g.Terminals()...)
	alloc := newNameAllocator(reserved)

	var applied []Descriptor
	var newNTs []string
	removedAny := false

	for i, ai := range order {
		for j := 0; j < i; j++ {
			aj := order[j]
			var expanded []grammar.Production
			substituted := false
			for _, p := range prods[ai] {
				if p.IsEpsilon() || p[0] != aj {
					expanded = append(expanded, p)
					continue
				}
				substituted = true
				rest := p[1:]
				for _, delta := range prods[aj] {
					var np grammar.Production
					if !delta.IsEpsilon() {
						np = append(np, delta...)
					}
					np = append(np, rest...)
					if len(np) == 0 {
						np = grammar.Epsilon
					}
					expanded = append(expanded, np)
				}
			}
			prods[ai] = expanded
			if substituted {
				applied = append(applied, Descriptor{
					Kind: "left-recursion", NonTerminal: ai,
					Detail: fmt.Sprintf("substituted %s's productions for %s -> %s ... (indirect left recursion)", aj, ai, aj),
				})
			}
		}

		var recursive, nonRecursive []grammar.Production
		for _, p := range prods[ai] {
			if !p.IsEpsilon() && p[0] == ai {
				recursive = append(recursive, p[1:])
			} else {
				nonRecursive = append(nonRecursive, p)
			}
		}
		if len(recursive) == 0 {
			continue
		}
		removedAny = true

		if len(nonRecursive) == 0 {
			applied = append(applied, Descriptor{
				Kind: "left-recursion", NonTerminal: ai,
				Detail: fmt.Sprintf("%s has only left-recursive alternatives; it derives no string", ai),
			})
		}

		primed := alloc.fresh(ai)
		newNTs = append(newNTs, primed)

		var newAiProds []grammar.Production
		for _, beta := range nonRecursive {
			if beta.IsEpsilon() {
				newAiProds = append(newAiProds, grammar.Production{primed})
			} else {
				np := append(grammar.Production{}, beta...)
				np = append(np, primed)
				newAiProds = append(newAiProds, np)
			}
		}

		var primedProds []grammar.Production
		for _, alpha := range recursive {
			if alpha.IsEpsilon() {
				primedProds = append(primedProds, grammar.Production{primed})
			} else {
				np := append(grammar.Production{}, alpha...)
				np = append(np, primed)
				primedProds = append(primedProds, np)
			}
		}
		primedProds = append(primedProds, grammar.Epsilon)

		prods[ai] = newAiProds
		prods[primed] = primedProds

		applied = append(applied, Descriptor{
			Kind: "left-recursion", NonTerminal: ai,
			Detail: fmt.Sprintf("introduced %s to remove direct left recursion on %s", primed, ai),
		})
	}

	out := grammar.New()
	for _, t := range g.Terminals() {
		out.AddTerminal(t)
	}
	for _, nt := range order {
		for _, p := range prods[nt] {
			out.AddRule(nt, p)
		}
	}
	for _, nt := range newNTs {
		for _, p := range prods[nt] {
			out.AddRule(nt, p)
		}
	}

	return Result{
		Grammar:              out,
		Applied:              applied,
		LeftRecursionRemoved: removedAny,
		NewNonTerminals:      newNTs,
	}
}
