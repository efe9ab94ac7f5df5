/*
Grammex builds and compares LL(1), SLR(1), CLR(1), and LALR(1) parsing
tables for a context-free grammar, and can drive a token stream through
whichever flavor's table came out conflict-free.

It reads a grammar in the textual format described by the core grammar
package, optionally a whitespace-separated token stream to parse, and
prints a comparison of all four table flavors plus, if a flavor was
requested or recommended, the parse trace and resulting tree.

Usage:

	grammex [flags]

The flags are:

	-v, --version
		Give the current version of grammex and then exit.

	-g, --grammar FILE
		Read the grammar from FILE. Required unless --interactive.

	-t, --tokens FILE
		Read the token stream from FILE, or "-" for stdin. If omitted, only
		the table comparison is printed; no parse is attempted.

	-f, --flavor NAME
		Which table flavor to drive the token stream through: ll1, slr,
		clr, lalr, or all. Defaults to "all", which picks compare.Run's
		recommendation.

	-i, --interactive
		Drop into a readline-backed grammar/token REPL instead of reading
		files.

	-o, --save FILE
		Persist the run's report, REZI-encoded, to FILE.

	-c, --config FILE
		TOML config file providing defaults for the flags above.

To exit the interpreter in interactive mode, press Ctrl-D.
*/
package main

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/kaelstrom/grammex/compare"
	"github.com/kaelstrom/grammex/driver"
	"github.com/kaelstrom/grammex/grammar"
	"github.com/kaelstrom/grammex/internal/version"
	"github.com/kaelstrom/grammex/ll1"
	"github.com/kaelstrom/grammex/lrtable"
	"github.com/spf13/pflag"
)

const (
	// ExitSuccess indicates a successful program execution.
	ExitSuccess = iota

	// ExitInitError indicates a problem loading the grammar, tokens, or
	// config before any table could be built.
	ExitInitError

	// ExitParseError indicates the requested flavor's driver rejected the
	// token stream.
	ExitParseError
)

var (
	returnCode      int     = ExitSuccess
	flagVersion     *bool   = pflag.BoolP("version", "v", false, "Gives the version info")
	flagGrammar     *string = pflag.StringP("grammar", "g", "", "Grammar source file")
	flagTokens      *string = pflag.StringP("tokens", "t", "", "Whitespace-separated token stream file, or \"-\" for stdin")
	flagFlavor      *string = pflag.StringP("flavor", "f", "all", "Table flavor to drive: ll1, slr, clr, lalr, or all")
	flagInteractive *bool   = pflag.BoolP("interactive", "i", false, "Drop into a readline-backed grammar/token REPL")
	flagSave        *string = pflag.StringP("save", "o", "", "Persist the run's report, REZI-encoded, to FILE")
	flagConfig      *string = pflag.StringP("config", "c", "", "TOML config file providing defaults for the other flags")
)

func main() {
	defer func() {
		if panicErr := recover(); panicErr != nil {
			panic(fmt.Sprintf("unrecoverable panic occurred: %v", panicErr))
		} else {
			os.Exit(returnCode)
		}
	}()

	pflag.Parse()

	if *flagVersion {
		fmt.Printf("%s\n", version.Current)
		return
	}

	if *flagConfig != "" {
		cfg, err := loadConfig(*flagConfig)
		if err != nil {
			fmt.Fprintf(os.Stderr, "ERROR: %s\n", err.Error())
			returnCode = ExitInitError
			return
		}
		applyConfig(cfg)
	}

	policy := compare.PreferLR

	if *flagInteractive {
		if err := runInteractive(policy); err != nil {
			fmt.Fprintf(os.Stderr, "ERROR: %s\n", err.Error())
			returnCode = ExitInitError
		}
		return
	}

	if *flagGrammar == "" {
		fmt.Fprintln(os.Stderr, "ERROR: --grammar is required unless --interactive")
		returnCode = ExitInitError
		return
	}

	src, err := os.ReadFile(*flagGrammar)
	if err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: reading grammar: %s\n", err.Error())
		returnCode = ExitInitError
		return
	}

	g, warnings, err := grammar.ParseGrammar(string(src))
	if err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: %s\n", err.Error())
		returnCode = ExitInitError
		return
	}
	for _, w := range warnings {
		log.Printf("warning: %s", w)
	}

	report := compare.Run(g, policy)
	fmt.Println(renderSummary(report))

	if *flagSave != "" {
		runID, err := saveReport(*flagSave, report, nowUnix())
		if err != nil {
			fmt.Fprintf(os.Stderr, "ERROR: saving report: %s\n", err.Error())
			returnCode = ExitInitError
			return
		}
		log.Printf("saved report %s to %s", runID, *flagSave)
	}

	if *flagTokens == "" {
		return
	}

	tokens, err := readTokens(*flagTokens)
	if err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: reading tokens: %s\n", err.Error())
		returnCode = ExitInitError
		return
	}

	if !runAndPrintParses(g, report, tokens) {
		returnCode = ExitParseError
	}
}

func readTokens(path string) ([]string, error) {
	var data []byte
	var err error
	if path == "-" {
		data, err = io.ReadAll(os.Stdin)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, err
	}
	return tokensFromText(string(data)), nil
}

// runAndPrintParses drives the requested flavor(s) against tokens and
// prints the resulting trace and tree. Returns false if every attempted
// flavor rejected the input.
func runAndPrintParses(g grammar.Grammar, report compare.Report, tokens []string) bool {
	flavor := *flagFlavor
	if flavor == "all" {
		flavor = flavorFromRecommendation(report.Recommendation)
		if flavor == "" {
			fmt.Println("no flavor is conflict-free; pick one explicitly with --flavor to drive it anyway")
			return false
		}
	}

	accepted := false
	switch flavor {
	case "ll1":
		fmt.Println(renderLL1Table(report.LL1Table, report.TransformedGrammar))
		accepted = printPredictiveParse(report.TransformedGrammar, report.LL1Table, tokens)
	case "slr":
		fmt.Println(renderLRTable(report.SLRTable))
		accepted = printShiftReduceParse(g, report.SLRTable, tokens)
	case "clr":
		fmt.Println(renderLRTable(report.CLRTable))
		accepted = printShiftReduceParse(g, report.CLRTable, tokens)
	case "lalr":
		fmt.Println(renderLRTable(report.LALRTable))
		accepted = printShiftReduceParse(g, report.LALRTable, tokens)
	default:
		fmt.Printf("unknown flavor %q; use ll1, slr, clr, or lalr\n", flavor)
		return false
	}
	return accepted
}

func flavorFromRecommendation(rec string) string {
	switch rec {
	case "SLR(1)":
		return "slr"
	case "CLR(1)":
		return "clr"
	case "LALR(1)":
		return "lalr"
	case "LL(1)":
		return "ll1"
	default:
		return ""
	}
}

func printShiftReduceParse(g grammar.Grammar, table *lrtable.Table, tokens []string) bool {
	result := driver.ShiftReduce(g, table, tokens)
	printTrace(result)
	return result.Accepted
}

func printPredictiveParse(g grammar.Grammar, table *ll1.Table, tokens []string) bool {
	result := driver.Predictive(g, table, tokens)
	printTrace(result)
	return result.Accepted
}

func printTrace(result driver.Result) {
	for _, step := range result.Trace {
		fmt.Printf("%-7s stack=%v remaining=%v %s\n", step.Kind, step.Stack, step.Remaining, step.Detail)
	}
	if result.Accepted {
		fmt.Println(result.Tree.String())
	}
}
