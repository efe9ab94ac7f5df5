// Package grammar implements the grammar representation and augmentation
// subsystem: symbols, productions, the Grammar type itself, the §4.1
// textual grammar format, and pretty printing. It is the foundation every
// other grammex package builds on, and it holds no dependency on them.
package grammar

import (
	"fmt"
	"strings"
)

// Grammar is an ordered set of productions over a set of terminals and
// nonterminals, with a designated start symbol. Grammars are built once via
// AddTerminal/AddRule (or ParseGrammar) and never mutated afterward;
// Augmented and every transform package function return a fresh Grammar
// rather than modifying the receiver.
type Grammar struct {
	rules      map[string]*Rule
	ruleOrder  []string // nonterminals in first-appearance order; ruleOrder[0] is the start symbol
	terminals  map[string]bool
	termOrder  []string
	start      string
	primeDepth map[string]int // base name -> highest prime count already used, for fresh-name generation
}

// New returns an empty, ready-to-use Grammar.
func New() Grammar {
	return Grammar{
		rules:      map[string]*Rule{},
		terminals:  map[string]bool{},
		primeDepth: map[string]int{},
	}
}

// AddTerminal registers name as a terminal symbol. No-op if already a
// terminal; if name was previously seen only as a nonterminal this does not
// reclassify it (nonterminal status, once a rule exists for a name, wins —
// mirroring §4.1's "a name is nonterminal iff it appears as some LHS").
func (g *Grammar) AddTerminal(name string) {
	g.ensureInit()
	if g.rules[name] != nil {
		return
	}
	if !g.terminals[name] {
		g.terminals[name] = true
		g.termOrder = append(g.termOrder, name)
	}
}

// AddRule adds one production alternative to nonterminal's rule, creating
// the rule (and registering nonterminal as a nonterminal, demoting it out of
// the terminal set if it had been provisionally added there) if this is the
// first time nonterminal has been seen. The first call to AddRule on a fresh
// Grammar establishes its start symbol.
func (g *Grammar) AddRule(nonTerminal string, rhs Production) {
	g.ensureInit()

	if g.terminals[nonTerminal] {
		delete(g.terminals, nonTerminal)
		for i, t := range g.termOrder {
			if t == nonTerminal {
				g.termOrder = append(g.termOrder[:i], g.termOrder[i+1:]...)
				break
			}
		}
	}

	r, ok := g.rules[nonTerminal]
	if !ok {
		r = &Rule{NonTerminal: nonTerminal}
		g.rules[nonTerminal] = r
		g.ruleOrder = append(g.ruleOrder, nonTerminal)
		if g.start == "" {
			g.start = nonTerminal
		}
	}
	if len(rhs) == 0 {
		rhs = Epsilon
	}
	r.Productions = append(r.Productions, rhs.Copy())
}

func (g *Grammar) ensureInit() {
	if g.rules == nil {
		g.rules = map[string]*Rule{}
	}
	if g.terminals == nil {
		g.terminals = map[string]bool{}
	}
	if g.primeDepth == nil {
		g.primeDepth = map[string]int{}
	}
}

// StartSymbol returns the grammar's designated start nonterminal.
func (g Grammar) StartSymbol() string {
	return g.start
}

// IsTerminal reports whether name is a terminal of g. "$" and the empty
// string (ε's placeholder) both count as terminal-like for lookup purposes.
func (g Grammar) IsTerminal(name string) bool {
	if name == EndOfInput || name == "" {
		return true
	}
	return g.terminals[name]
}

// IsNonTerminal reports whether name has a rule in g.
func (g Grammar) IsNonTerminal(name string) bool {
	_, ok := g.rules[name]
	return ok
}

// Terminals returns the terminals of g in first-appearance order.
func (g Grammar) Terminals() []string {
	out := make([]string, len(g.termOrder))
	copy(out, g.termOrder)
	return out
}

// NonTerminals returns the nonterminals of g in first-appearance order
// (ruleOrder[0], if any, is always the start symbol).
func (g Grammar) NonTerminals() []string {
	out := make([]string, len(g.ruleOrder))
	copy(out, g.ruleOrder)
	return out
}

// Rule returns the rule for nonTerminal and whether it exists.
func (g Grammar) Rule(nonTerminal string) (Rule, bool) {
	r, ok := g.rules[nonTerminal]
	if !ok {
		return Rule{}, false
	}
	return *r, true
}

// Rules returns every rule in g, in nonterminal first-appearance order.
func (g Grammar) Rules() []Rule {
	out := make([]Rule, 0, len(g.ruleOrder))
	for _, nt := range g.ruleOrder {
		out = append(out, *g.rules[nt])
	}
	return out
}

// Productions returns every production in g numbered densely from 0, in
// nonterminal first-appearance order and, within a nonterminal, source
// order. The numbering is recomputed on every call from the current rules,
// so it always reflects the grammar as currently built; since Grammar is
// never mutated after being handed to another package, this is stable for
// the lifetime any caller cares about.
func (g Grammar) Productions() []NumberedProduction {
	var out []NumberedProduction
	id := 0
	for _, nt := range g.ruleOrder {
		for _, rhs := range g.rules[nt].Productions {
			out = append(out, NumberedProduction{ID: id, NonTerminal: nt, RHS: rhs})
			id++
		}
	}
	return out
}

// Production looks up a single numbered production by id.
func (g Grammar) Production(id int) (NumberedProduction, bool) {
	for _, np := range g.Productions() {
		if np.ID == id {
			return np, true
		}
	}
	return NumberedProduction{}, false
}

// ProductionsOf returns the RHS alternatives for nonTerminal, or nil if it
// has no rule.
func (g Grammar) ProductionsOf(nonTerminal string) []Production {
	r, ok := g.rules[nonTerminal]
	if !ok {
		return nil
	}
	out := make([]Production, len(r.Productions))
	copy(out, r.Productions)
	return out
}

// freshName returns a nonterminal name derived from base that does not
// collide with any existing nonterminal or terminal, by appending one more
// prime (') than the deepest priming already used for base. Per §4.3/§9
// this makes fresh-name generation deterministic and reproducible: calling
// it twice for the same base on the same grammar snapshot gives the same
// name, and repeated transformation passes never reuse a name.
func (g *Grammar) freshName(base string) string {
	g.ensureInit()
	depth := g.primeDepth[base] + 1
	for {
		name := base + strings.Repeat("'", depth)
		if !g.IsNonTerminal(name) && !g.terminals[name] {
			g.primeDepth[base] = depth
			return name
		}
		depth++
	}
}

// FreshName is the exported form of freshName, for callers that mint new
// nonterminals on a Grammar they are building. The transform package does
// not use it; its passes allocate names with their own nameAllocator.
func (g *Grammar) FreshName(base string) string {
	return g.freshName(base)
}

// augmentedStartSuffix is the priming convention used for the augmented
// start symbol: S -> S', S' -> S'', etc.
const augmentedStartSuffix = "'"

// Augmented returns a new Grammar identical to g but with a fresh start
// symbol S' and production id 0 equal to S' -> S, per §4.1. g itself is
// unmodified. Calling Augmented on an already-augmented grammar augments it
// again (it has no way to know it was already augmented, nor does it need
// to — callers augment exactly once, right before automaton construction).
func (g Grammar) Augmented() Grammar {
	primed := g.start
	depth := 0
	for g.IsNonTerminal(primed) || g.terminals[primed] {
		depth++
		primed = g.start + strings.Repeat(augmentedStartSuffix, depth)
	}

	ag := New()
	ag.AddRule(primed, Production{g.start})
	for _, t := range g.termOrder {
		ag.AddTerminal(t)
	}
	for _, nt := range g.ruleOrder {
		for _, rhs := range g.rules[nt].Productions {
			ag.AddRule(nt, rhs)
		}
	}
	ag.start = primed
	return ag
}

// Copy returns an independent deep copy of g.
func (g Grammar) Copy() Grammar {
	cp := New()
	for _, t := range g.termOrder {
		cp.AddTerminal(t)
	}
	for _, nt := range g.ruleOrder {
		for _, rhs := range g.rules[nt].Productions {
			cp.AddRule(nt, rhs)
		}
	}
	cp.start = g.start
	for k, v := range g.primeDepth {
		cp.primeDepth[k] = v
	}
	return cp
}

// Validate checks the structural invariants from §3/§8: the grammar has at
// least one rule, at least one terminal, and a start symbol. It does not
// check for left recursion or ambiguity — those are properties a table
// builder discovers, not a validity requirement.
func (g Grammar) Validate() error {
	if len(g.ruleOrder) == 0 {
		return fmt.Errorf("grammar has no rules")
	}
	if len(g.termOrder) == 0 {
		return fmt.Errorf("grammar has no terminals")
	}
	if g.start == "" {
		return fmt.Errorf("grammar has no start symbol")
	}
	return nil
}

func (g Grammar) String() string {
	var sb strings.Builder
	for _, nt := range g.ruleOrder {
		r := g.rules[nt]
		fmt.Fprintf(&sb, "%s -> ", nt)
		for i, p := range r.Productions {
			sb.WriteString(p.String())
			if i+1 < len(r.Productions) {
				sb.WriteString(" | ")
			}
		}
		sb.WriteRune('\n')
	}
	return sb.String()
}

// EndOfInput is the distinguished end-of-input terminal, $.
const EndOfInput = "$"
