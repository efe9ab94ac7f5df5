package driver

import (
	"fmt"

	"github.com/kaelstrom/grammex/grammar"
	"github.com/kaelstrom/grammex/internal/grammarerr"
	"github.com/kaelstrom/grammex/internal/util"
	"github.com/kaelstrom/grammex/ll1"
)

// childSlot is a (node, index) reference into a not-yet-fully-expanded
// parse-tree node: when the stack symbol this slot corresponds to is
// resolved (matched or expanded), the driver writes the resulting node into
// node.Children[index].
type childSlot struct {
	node  *Tree
	index int
}

// Predictive runs the LL(1) predictive driver (§4.8) for table against
// tokens, a finite sequence of terminal symbols with an implicit
// end-of-input marker appended.
func Predictive(g grammar.Grammar, table *ll1.Table, tokens []string) Result {
	input := append(append([]string{}, tokens...), grammar.EndOfInput)
	pos := 0

	root := &Tree{Symbol: g.StartSymbol()}
	symbols := util.Stack[string]{Of: []string{grammar.EndOfInput, g.StartSymbol()}}
	slots := util.Stack[*childSlot]{Of: []*childSlot{nil, {node: root, index: -1}}}

	var trace []ParseStep

	for {
		current := input[pos]
		remaining := append([]string{}, input[pos:]...)
		top := symbols.Peek()
		stackView := symbols.Snapshot()

		switch {
		case top == grammar.EndOfInput:
			if current == grammar.EndOfInput {
				trace = append(trace, ParseStep{Kind: StepAccept, Stack: stackView, Remaining: remaining, Detail: "accept"})
				return Result{Accepted: true, Tree: root, Trace: trace}
			}
			err := grammarerr.PredictiveParse(top, current, "unexpected input after end of derivation")
			trace = append(trace, ParseStep{Kind: StepError, Stack: stackView, Remaining: remaining, Detail: err.Error()})
			return Result{Accepted: false, Trace: trace}

		case g.IsTerminal(top):
			if top != current {
				err := grammarerr.PredictiveParse(top, current, "terminal mismatch")
				trace = append(trace, ParseStep{Kind: StepError, Stack: stackView, Remaining: remaining, Detail: err.Error()})
				return Result{Accepted: false, Trace: trace}
			}
			trace = append(trace, ParseStep{Kind: StepMatch, Stack: stackView, Remaining: remaining,
				Detail: fmt.Sprintf("match %s", top)})

			slot := slots.Peek()
			slot.node.Children[slot.index] = &Tree{Symbol: top, Terminal: true}
			symbols.Pop()
			slots.Pop()
			pos++

		default:
			np, ok := table.Lookup(top, current)
			if !ok {
				err := grammarerr.PredictiveParse(top, current, "no applicable production")
				trace = append(trace, ParseStep{Kind: StepError, Stack: stackView, Remaining: remaining, Detail: err.Error()})
				return Result{Accepted: false, Trace: trace}
			}
			trace = append(trace, ParseStep{Kind: StepExpand, Stack: stackView, Remaining: remaining,
				Detail: fmt.Sprintf("expand by %s", np.String())})

			slot := slots.Peek()
			expanded := slot.node
			if slot.index >= 0 {
				expanded = &Tree{Symbol: top}
				slot.node.Children[slot.index] = expanded
			}
			symbols.Pop()
			slots.Pop()

			if np.RHS.IsEpsilon() {
				expanded.Children = []*Tree{{Symbol: "", Terminal: true}}
				continue
			}

			expanded.Children = make([]*Tree, len(np.RHS))
			for i := len(np.RHS) - 1; i >= 0; i-- {
				symbols.Push(np.RHS[i])
				slots.Push(&childSlot{node: expanded, index: i})
			}
		}
	}
}
