// Package firstfollow computes FIRST and FOLLOW sets over a grammar.Grammar
// by fixed-point iteration, per §4.2. It depends only on the grammar
// package and internal/util.
package firstfollow

import (
	"github.com/kaelstrom/grammex/grammar"
	"github.com/kaelstrom/grammex/internal/util"
)

// epsilon is the sentinel member of a FIRST/FOLLOW set standing for ε.
const epsilon = ""

// Sets holds the FIRST set of every grammar symbol (terminal and
// nonterminal) and the FOLLOW set of every nonterminal, both computed to a
// fixed point. Re-running Compute on the same grammar always yields
// identical sets (§8 invariant).
type Sets struct {
	first  map[string]util.StringSet
	follow map[string]util.StringSet
}

// Compute builds the FIRST and FOLLOW sets of g.
func Compute(g grammar.Grammar) Sets {
	s := Sets{
		first:  map[string]util.StringSet{},
		follow: map[string]util.StringSet{},
	}

	for _, t := range g.Terminals() {
		s.first[t] = util.StringSet{t: true}
	}
	for _, nt := range g.NonTerminals() {
		s.first[nt] = util.StringSet{}
		s.follow[nt] = util.StringSet{}
	}

	s.computeFirst(g)
	s.computeFollow(g)

	return s
}

func (s Sets) computeFirst(g grammar.Grammar) {
	changed := true
	for changed {
		changed = false
		for _, nt := range g.NonTerminals() {
			for _, rhs := range g.ProductionsOf(nt) {
				added := s.addFirstOfProduction(nt, rhs, g)
				changed = changed || added
			}
		}
	}
}

// addFirstOfProduction adds FIRST(rhs) (minus ε unless rhs fully derives ε)
// to FIRST(nonTerminal), returning whether anything new was added.
func (s Sets) addFirstOfProduction(nonTerminal string, rhs grammar.Production, g grammar.Grammar) bool {
	changed := false
	target := s.first[nonTerminal]

	if rhs.IsEpsilon() {
		if !target[epsilon] {
			target[epsilon] = true
			changed = true
		}
		return changed
	}

	allDeriveEpsilon := true
	for _, sym := range rhs {
		symFirst := s.first[sym]
		for t := range symFirst {
			if t == epsilon {
				continue
			}
			if !target[t] {
				target[t] = true
				changed = true
			}
		}
		if !symFirst[epsilon] {
			allDeriveEpsilon = false
			break
		}
	}
	if allDeriveEpsilon {
		if !target[epsilon] {
			target[epsilon] = true
			changed = true
		}
	}
	return changed
}

func (s Sets) computeFollow(g grammar.Grammar) {
	start := g.StartSymbol()
	if start != "" {
		s.follow[start] = util.StringSet{grammar.EndOfInput: true}
	}

	changed := true
	for changed {
		changed = false
		for _, nt := range g.NonTerminals() {
			for _, rhs := range g.ProductionsOf(nt) {
				if s.scanProductionForFollow(nt, rhs) {
					changed = true
				}
			}
		}
	}
}

// scanProductionForFollow implements: for A -> alpha B beta, add FIRST(beta)
// \ {eps} to FOLLOW(B); if eps in FIRST(beta) or beta is empty, add
// FOLLOW(A) to FOLLOW(B).
func (s Sets) scanProductionForFollow(lhs string, rhs grammar.Production) bool {
	if rhs.IsEpsilon() {
		return false
	}
	changed := false
	for i, sym := range rhs {
		if _, ok := s.follow[sym]; !ok {
			continue // terminal, no FOLLOW set
		}
		beta := rhs[i+1:]
		firstBeta, betaDerivesEpsilon := s.firstOfString(beta)

		target := s.follow[sym]
		for t := range firstBeta {
			if t == epsilon {
				continue
			}
			if !target[t] {
				target[t] = true
				changed = true
			}
		}
		if betaDerivesEpsilon {
			for t := range s.follow[lhs] {
				if !target[t] {
					target[t] = true
					changed = true
				}
			}
		}
	}
	return changed
}

// firstOfString computes FIRST of a symbol string using the current
// (possibly not-yet-fixed-point) FIRST sets, and reports whether the whole
// string derives ε. A symbol that is neither a known terminal nor a known
// nonterminal (the end-of-input marker $, when used as a lookahead) is its
// own sole FIRST member, per the usual convention of treating $ as a
// terminal that was never explicitly declared.
func (s Sets) firstOfString(syms []string) (util.StringSet, bool) {
	out := util.StringSet{}
	if len(syms) == 0 {
		out[epsilon] = true
		return out, true
	}
	for _, sym := range syms {
		symFirst, known := s.first[sym]
		if !known {
			out[sym] = true
			return out, false
		}
		for t := range symFirst {
			if t != epsilon {
				out[t] = true
			}
		}
		if !symFirst[epsilon] {
			return out, false
		}
	}
	out[epsilon] = true
	return out, true
}

// First returns the FIRST set of a single grammar symbol (terminal or
// nonterminal), as a sorted slice. ε, if present, is reported as "".
func (s Sets) First(symbol string) []string {
	return s.first[symbol].Sorted()
}

// FirstOfString computes FIRST of a symbol sequence on demand (used by
// lrtable/ll1 for lookahead sets beyond a single symbol).
func (s Sets) FirstOfString(syms []string) []string {
	set, _ := s.firstOfString(syms)
	return set.Sorted()
}

// Follow returns the FOLLOW set of a nonterminal, as a sorted slice.
func (s Sets) Follow(nonTerminal string) []string {
	return s.follow[nonTerminal].Sorted()
}

// FirstSetOf and FollowSetOf expose the raw sets for callers (lrtable,
// ll1) that need set operations rather than sorted slices.
func (s Sets) FirstSetOf(symbol string) util.StringSet {
	return s.first[symbol].Copy()
}

func (s Sets) FollowSetOf(nonTerminal string) util.StringSet {
	return s.follow[nonTerminal].Copy()
}
