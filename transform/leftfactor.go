package transform

import (
	"fmt"

	"github.com/kaelstrom/grammex/grammar"
)

// LeftFactor groups each nonterminal's productions by shared prefix and
// factors out the longest common one, per §4.3. Per the Open Question
// decision in SPEC_FULL.md §12.2, a nonterminal with more than one
// non-overlapping factorable group (and any freshly introduced
// nonterminal that itself turns out factorable) is processed until no
// group of size ≥2 shares a prefix anywhere in the grammar, rather than
// stopping after the first group found.
func LeftFactor(g grammar.Grammar) Result {
	order := g.NonTerminals()
	prods := make(map[string][]grammar.Production, len(order))
	for _, nt := range order {
		prods[nt] = g.ProductionsOf(nt)
	}

	reserved := append(append([]string{}, order...), g.Terminals()...)
	alloc := newNameAllocator(reserved)

	var applied []Descriptor
	var newNTs []string
	factoredAny := false

	queue := append([]string{}, order...)
	for len(queue) > 0 {
		nt := queue[0]
		queue = queue[1:]

		groups := groupByCommonPrefix(prods[nt])
		changedHere := false
		var rebuilt []grammar.Production
		for _, grp := range groups {
			if grp.prefix == nil || len(grp.members) < 2 {
				rebuilt = append(rebuilt, grp.members...)
				continue
			}
			changedHere = true
			factoredAny = true

			primed := alloc.fresh(nt)
			newNTs = append(newNTs, primed)
			queue = append(queue, primed)

			factored := append(grammar.Production{}, grp.prefix...)
			factored = append(factored, primed)
			rebuilt = append(rebuilt, factored)

			var primedProds []grammar.Production
			for _, m := range grp.members {
				suffix := m[len(grp.prefix):]
				if len(suffix) == 0 {
					primedProds = append(primedProds, grammar.Epsilon)
				} else {
					primedProds = append(primedProds, append(grammar.Production{}, suffix...))
				}
			}
			prods[primed] = primedProds

			applied = append(applied, Descriptor{
				Kind: "left-factor", NonTerminal: nt,
				Detail: fmt.Sprintf("factored common prefix %q into %s", grp.prefix.String(), primed),
			})
		}
		if changedHere {
			prods[nt] = rebuilt
		}
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
		Grammar:         out,
		Applied:         applied,
		LeftFactored:    factoredAny,
		NewNonTerminals: newNTs,
	}
}

type prefixGroup struct {
	prefix  grammar.Production
	members []grammar.Production
}

const epsilonBucketKey = "\x00eps"

func groupByCommonPrefix(prods []grammar.Production) []prefixGroup {
	buckets := map[string][]grammar.Production{}
	var order []string

	for _, p := range prods {
		var key string
		if p.IsEpsilon() {
			key = epsilonBucketKey
		} else {
			key = p[0]
		}
		if _, ok := buckets[key]; !ok {
			order = append(order, key)
		}
		buckets[key] = append(buckets[key], p)
	}

	groups := make([]prefixGroup, 0, len(order))
	for _, key := range order {
		members := buckets[key]
		if key == epsilonBucketKey {
			groups = append(groups, prefixGroup{members: members})
			continue
		}
		groups = append(groups, prefixGroup{prefix: longestCommonPrefix(members), members: members})
	}
	return groups
}

func longestCommonPrefix(prods []grammar.Production) grammar.Production {
	if len(prods) == 0 {
		return nil
	}
	prefix := append(grammar.Production{}, prods[0]...)
	for _, p := range prods[1:] {
		i := 0
		for i < len(prefix) && i < len(p) && prefix[i] == p[i] {
			i++
		}
		prefix = prefix[:i]
		if len(prefix) == 0 {
			break
		}
	}
	return prefix
}
