package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/kaelstrom/grammex/compare"
	"github.com/kaelstrom/grammex/grammar"
	"github.com/kaelstrom/grammex/internal/input"
)

// runInteractive drives the readline-backed REPL (§10.5): the user types
// grammar rule lines until a blank line ends the grammar, then a single
// line of whitespace-separated tokens, and the comparator's output is
// printed after each round. Ctrl-D ends the session.
func runInteractive(policy compare.Policy) error {
	ruleReader, err := input.NewInteractiveReader("rule> ")
	if err != nil {
		return fmt.Errorf("starting interactive reader: %w", err)
	}
	defer ruleReader.Close()
	ruleReader.AllowBlank(true)

	for {
		var lines []string
		fmt.Println("enter grammar rules, blank line to finish:")
		for {
			line, err := ruleReader.ReadLine()
			if err == io.EOF {
				return nil
			}
			if err != nil {
				return fmt.Errorf("reading rule: %w", err)
			}
			if line == "" {
				break
			}
			lines = append(lines, line)
		}
		if len(lines) == 0 {
			continue
		}

		g, warnings, err := grammar.ParseGrammar(strings.Join(lines, "\n"))
		if err != nil {
			fmt.Printf("ERROR: %s\n", err.Error())
			continue
		}
		for _, w := range warnings {
			fmt.Printf("warning: %s\n", w)
		}

		ruleReader.SetPrompt("tokens> ")
		tokenLine, err := ruleReader.ReadLine()
		ruleReader.SetPrompt("rule> ")
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return fmt.Errorf("reading tokens: %w", err)
		}

		report := compare.Run(g, policy)
		fmt.Println(renderSummary(report))

		if tokenLine != "" {
			tokens := strings.Fields(tokenLine)
			runAndPrintParses(g, report, tokens)
		}
	}
}
