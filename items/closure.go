package items

import (
	"github.com/kaelstrom/grammex/firstfollow"
	"github.com/kaelstrom/grammex/grammar"
)

// LR0Closure computes the closure of item set i per §4.4: repeatedly add
// B -> ·γ for every B -> γ where some item in the set has the dot
// immediately before nonterminal B, until nothing new appears.
func LR0Closure(g grammar.Grammar, i Set) Set {
	out := NewSet()
	for _, k := range i.Elements() {
		out.Set(k, i.Get(k))
	}

	changed := true
	for changed {
		changed = false
		for _, k := range out.Elements() {
			b, ok := out.Get(k).NextSymbol()
			if !ok || !g.IsNonTerminal(b) {
				continue
			}
			for _, rhs := range g.ProductionsOf(b) {
				ni := NewLR0Item(b, rhs)
				key := ni.String()
				if !out.Has(key) {
					out.Set(key, ni)
					changed = true
				}
			}
		}
	}
	return out
}

// LR1Closure computes the closure of item set i per §4.4: for item
// [A -> α·Bβ, a], for each B -> γ, for each b in FIRST(βa), add
// [B -> ·γ, b], until nothing new appears.
func LR1Closure(g grammar.Grammar, fs firstfollow.Sets, i Set1) Set1 {
	out := NewSet1()
	for _, k := range i.Elements() {
		out.Set(k, i.Get(k))
	}

	changed := true
	for changed {
		changed = false
		for _, k := range out.Elements() {
			it := out.Get(k)
			b, ok := it.NextSymbol()
			if !ok || !g.IsNonTerminal(b) {
				continue
			}

			beta := append([]string{}, it.Right[1:]...)
			lookaheads := fs.FirstOfString(append(beta, it.Lookahead))

			for _, rhs := range g.ProductionsOf(b) {
				for _, la := range lookaheads {
					if la == "" {
						continue // epsilon is never itself a usable lookahead
					}
					ni := LR1Item{LR0Item: NewLR0Item(b, rhs), Lookahead: la}
					key := ni.String()
					if !out.Has(key) {
						out.Set(key, ni)
						changed = true
					}
				}
			}
		}
	}
	return out
}
