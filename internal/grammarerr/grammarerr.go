// Package grammarerr defines the typed errors produced by grammex's core
// packages, split into the three categories described by the toolkit's
// error-handling design: malformed user input, build-time conflicts
// (which are not fatal — see the compare and lrtable packages), and
// parse-time failures. The pattern (private struct, Error() string, and
// focused exported constructors) follows the teacher's tqerrors package.
// Each error carries a single message; none of them wraps a cause.
package grammarerr

import (
	"fmt"
	"strings"
)

// grammarError is returned for malformed grammar source: a missing arrow,
// an empty grammar, or any other structural problem discovered while
// reading grammar text.
type grammarError struct {
	msg  string
	line int // 0 if not applicable
}

func (e *grammarError) Error() string {
	if e.line > 0 {
		return fmt.Sprintf("line %d: %s", e.line, e.msg)
	}
	return e.msg
}

// Grammar returns a new error describing a problem with grammar source text
// that isn't tied to a specific line.
func Grammar(format string, a ...interface{}) error {
	return &grammarError{msg: fmt.Sprintf(format, a...)}
}

// GrammarAtLine returns a new error describing a problem found on the given
// 1-indexed source line.
func GrammarAtLine(line int, format string, a ...interface{}) error {
	return &grammarError{msg: fmt.Sprintf(format, a...), line: line}
}

// parseError is returned by a driver (shift-reduce or predictive) when it
// hits a token the table has no action for. It carries enough of the
// driver's state for a caller to build a human-facing diagnostic without
// the driver needing to know how that diagnostic should be phrased.
type parseError struct {
	msg   string
	state string // LR state name; empty for the predictive driver
	stack string // top-of-stack symbol; empty for the LR driver
	token string
}

func (e *parseError) Error() string {
	return e.msg
}

// State returns the LR automaton state active when the error occurred, or
// "" if this error came from the predictive driver.
func (e *parseError) State() string { return e.state }

// StackTop returns the nonterminal or terminal on top of the predictive
// driver's symbol stack when the error occurred, or "" if this error came
// from an LR driver.
func (e *parseError) StackTop() string { return e.stack }

// Token returns the offending input token's terminal name.
func (e *parseError) Token() string { return e.token }

// LRParse returns a new parse error for a shift-reduce driver that found no
// ACTION entry for (state, token).
func LRParse(state, token string) error {
	return &parseError{
		msg:   fmt.Sprintf("no action defined for state %q on input %q", state, token),
		state: state,
		token: token,
	}
}

// PredictiveParse returns a new parse error for a predictive driver that
// found no usable M[nonterminal, token] entry, or a terminal mismatch.
func PredictiveParse(stackTop, token, reason string) error {
	return &parseError{
		msg:   fmt.Sprintf("%s (stack top %q, input %q)", reason, stackTop, token),
		stack: stackTop,
		token: token,
	}
}

// conflictError is returned only when a caller explicitly asks a table
// builder to fail closed instead of reporting conflicts, rather than
// reading the table's own Conflicts field (the normal, non-error path).
type conflictError struct {
	msg   string
	count int
}

func (e *conflictError) Error() string { return e.msg }

// ConflictCount returns how many conflicts caused this error.
func (e *conflictError) ConflictCount() int { return e.count }

// Conflict returns a new error wrapping the given flavor's conflicts,
// already rendered to strings by the caller (table builders own the
// concrete Conflict type; this package stays independent of them).
func Conflict(flavor string, renderedConflicts []string) error {
	return &conflictError{
		msg:   fmt.Sprintf("%s table has %d conflict(s): %s", flavor, len(renderedConflicts), strings.Join(renderedConflicts, "; ")),
		count: len(renderedConflicts),
	}
}
