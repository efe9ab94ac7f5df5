package transform

import (
	"sort"

	"github.com/kaelstrom/grammex/grammar"
)

// RemoveUnitProductions eliminates unit productions (A -> B where B is a
// single nonterminal), another supplemented feature exercised by the
// teacher's grammar test suite. Unit pairs (A, B) such that A derives B
// through a chain of unit productions are computed to a fixed point; every
// non-unit production of a reachable B is then attached directly to A.
func RemoveUnitProductions(g grammar.Grammar) Result {
	order := g.NonTerminals()

	unitPairs := make(map[string]map[string]bool, len(order))
	for _, nt := range order {
		unitPairs[nt] = map[string]bool{nt: true}
	}

	changed := true
	for changed {
		changed = false
		for _, nt := range order {
			for b := range copyKeys(unitPairs[nt]) {
				for _, p := range g.ProductionsOf(b) {
					if len(p) != 1 || !g.IsNonTerminal(p[0]) {
						continue
					}
					c := p[0]
					if !unitPairs[nt][c] {
						unitPairs[nt][c] = true
						changed = true
					}
				}
			}
		}
	}

	out := grammar.New()
	for _, t := range g.Terminals() {
		out.AddTerminal(t)
	}

	var applied []Descriptor
	for _, nt := range order {
		seen := map[string]bool{}
		for _, b := range sortedKeys(unitPairs[nt]) {
			for _, p := range g.ProductionsOf(b) {
				if len(p) == 1 && g.IsNonTerminal(p[0]) {
					continue // unit production itself; its target is already in the closure
				}
				key := p.String()
				if seen[key] {
					continue
				}
				seen[key] = true
				out.AddRule(nt, p)
				if b != nt {
					applied = append(applied, Descriptor{
						Kind: "unit-removal", NonTerminal: nt,
						Detail: nt + " -> " + p.String() + " (inlined via unit chain through " + b + ")",
					})
				}
			}
		}
	}

	return Result{Grammar: out, Applied: applied}
}

func copyKeys(m map[string]bool) map[string]bool {
	cp := make(map[string]bool, len(m))
	for k := range m {
		cp[k] = true
	}
	return cp
}

func sortedKeys(m map[string]bool) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
