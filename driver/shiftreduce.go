package driver

import (
	"fmt"

	"github.com/kaelstrom/grammex/grammar"
	"github.com/kaelstrom/grammex/internal/grammarerr"
	"github.com/kaelstrom/grammex/internal/util"
	"github.com/kaelstrom/grammex/lrtable"
)

// ShiftReduce runs the shift-reduce driver (§4.8) for table against tokens,
// a finite sequence of terminal symbols; the end-of-input marker is
// appended implicitly. It works against any of the three ACTION/GOTO
// flavors (SLR, CLR, LALR) — the table alone determines behavior.
func ShiftReduce(g grammar.Grammar, table *lrtable.Table, tokens []string) Result {
	input := append(append([]string{}, tokens...), grammar.EndOfInput)
	pos := 0

	states := util.Stack[int]{Of: []int{table.Initial()}}
	symbols := util.Stack[string]{}
	trees := util.Stack[*Tree]{}

	var trace []ParseStep

	for {
		current := input[pos]
		remaining := append([]string{}, input[pos:]...)
		stackView := symbolStackView(states, symbols)

		act, ok := table.Action(states.Peek(), current)
		if !ok {
			err := grammarerr.LRParse(fmt.Sprintf("%d", states.Peek()), current)
			trace = append(trace, ParseStep{
				Kind: StepError, Stack: stackView, Remaining: remaining,
				Detail: err.Error(),
			})
			return Result{Accepted: false, Trace: trace}
		}

		switch act.Type {
		case lrtable.Shift:
			trace = append(trace, ParseStep{
				Kind: StepShift, Stack: stackView, Remaining: remaining,
				Detail: fmt.Sprintf("shift %s, goto state %d", current, act.State),
			})
			symbols.Push(current)
			trees.Push(&Tree{Symbol: current, Terminal: true})
			states.Push(act.State)
			pos++

		case lrtable.Reduce:
			prod := act.Production
			n := len(prod.RHS)
			if prod.RHS.IsEpsilon() {
				n = 0
			}
			trace = append(trace, ParseStep{
				Kind: StepReduce, Stack: stackView, Remaining: remaining,
				Detail: fmt.Sprintf("reduce by %s", prod.String()),
			})

			children := trees.PopN(n)
			symbols.PopN(n)
			states.PopN(n)

			node := &Tree{Symbol: prod.NonTerminal, Children: children}
			if n == 0 {
				node.Children = []*Tree{{Symbol: "", Terminal: true}}
			}

			top := states.Peek()
			to, ok := table.Goto(top, prod.NonTerminal)
			if !ok {
				// A table built by lrtable always has a GOTO entry for any
				// nonterminal a completed item could reduce to; reaching
				// here means the table or automaton construction is broken.
				panic(fmt.Sprintf("no goto from state %d on %s after reducing by %s", top, prod.NonTerminal, prod))
			}
			symbols.Push(prod.NonTerminal)
			trees.Push(node)
			states.Push(to)

		case lrtable.Accept:
			trace = append(trace, ParseStep{
				Kind: StepAccept, Stack: stackView, Remaining: remaining,
				Detail: "accept",
			})
			return Result{Accepted: true, Tree: trees.Peek(), Trace: trace}
		}
	}
}

// symbolStackView renders the alternating state/symbol stack bottom to top,
// state numbers as decimal strings, for the step trace (§4.8, §6: "Parse
// trace: ordered list of ParseStep records").
func symbolStackView(states util.Stack[int], symbols util.Stack[string]) []string {
	out := []string{fmt.Sprintf("%d", states.Of[0])}
	for i, sym := range symbols.Of {
		out = append(out, sym, fmt.Sprintf("%d", states.Of[i+1]))
	}
	return out
}
