package driver

import (
	"fmt"
	"strings"
)

// Tree is a parse tree node. A terminal node holds the matched token in
// Symbol and has no children (an ε-derivation is represented by a single
// terminal child with an empty Symbol). A nonterminal node holds one child
// per symbol of the production that expanded it, in production order.
type Tree struct {
	Symbol   string
	Terminal bool
	Children []*Tree
}

// Yield returns the terminal symbols at the leaves of t, left to right. For
// an accepted parse this reproduces the input token stream (§8 round-trip
// invariant).
func (t *Tree) Yield() []string {
	if t.Terminal {
		if t.Symbol == "" {
			return nil
		}
		return []string{t.Symbol}
	}
	var out []string
	for _, c := range t.Children {
		out = append(out, c.Yield()...)
	}
	return out
}

// String renders the tree for line-by-line comparison in tests: two trees
// are considered structurally identical if their String() output matches.
func (t *Tree) String() string {
	return t.leveled("", "")
}

func (t *Tree) leveled(first, cont string) string {
	var sb strings.Builder
	sb.WriteString(first)
	if t.Terminal {
		sb.WriteString(fmt.Sprintf("(TERM %q)", t.Symbol))
	} else {
		sb.WriteString(fmt.Sprintf("( %s )", t.Symbol))
	}
	for i, c := range t.Children {
		sb.WriteRune('\n')
		var f, cc string
		if i+1 < len(t.Children) {
			f = cont + "  |--: "
			cc = cont + "  |     "
		} else {
			f = cont + `  \--: `
			cc = cont + "        "
		}
		sb.WriteString(c.leveled(f, cc))
	}
	return sb.String()
}
