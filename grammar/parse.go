package grammar

import (
	"strings"

	"github.com/kaelstrom/grammex/internal/grammarerr"
)

// arrow tokens accepted between an LHS and its alternatives, per §4.1.
var arrowTokens = []string{"::=", "->", "→"}

// epsilonMarkers are the literal RHS spellings that denote an ε-production
// in addition to an RHS that is simply empty.
var epsilonMarkers = map[string]bool{
	"ε":       true,
	"epsilon": true,
	"EPSILON": true,
}

type parsedRule struct {
	lhs  string
	line int
	alts []Production
}

// ParseGrammar reads the §4.1 textual grammar format: one rule per line,
// "LHS -> alt1 | alt2 | ...", tokens whitespace separated, "#" line
// comments, blank lines ignored. The first LHS encountered becomes the
// start symbol. Any RHS symbol that never appears as an LHS is classified
// as a terminal (§4.1's "classical convention"); if that symbol's spelling
// suggests it was meant to be a nonterminal (it isn't already
// all-lowercase) a warning is appended for the caller to surface, but
// parsing proceeds.
func ParseGrammar(src string) (Grammar, []string, error) {
	lines := strings.Split(src, "\n")

	var parsed []parsedRule
	lhsSeen := map[string]bool{}

	for i, rawLine := range lines {
		lineNum := i + 1
		line := strings.TrimSpace(rawLine)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		arrow, idx := findArrow(line)
		if idx < 0 {
			return Grammar{}, nil, grammarerr.GrammarAtLine(lineNum, "malformed rule, missing arrow (%s): %q", strings.Join(arrowTokens, ", "), rawLine)
		}

		lhs := strings.TrimSpace(line[:idx])
		rhsText := strings.TrimSpace(line[idx+len(arrow):])

		if lhs == "" {
			return Grammar{}, nil, grammarerr.GrammarAtLine(lineNum, "malformed rule, empty left-hand side: %q", rawLine)
		}

		var alts []Production
		for _, altText := range strings.Split(rhsText, "|") {
			altText = strings.TrimSpace(altText)
			alts = append(alts, parseAlternative(altText))
		}

		parsed = append(parsed, parsedRule{lhs: lhs, line: lineNum, alts: alts})
		lhsSeen[lhs] = true
	}

	if len(parsed) == 0 {
		return Grammar{}, nil, grammarerr.Grammar("grammar is empty: no rules found")
	}

	var warnings []string
	terminalsSeen := map[string]bool{}
	for _, r := range parsed {
		for _, alt := range r.alts {
			if alt.IsEpsilon() {
				continue
			}
			for _, sym := range alt {
				if lhsSeen[sym] || terminalsSeen[sym] {
					continue
				}
				terminalsSeen[sym] = true
				if strings.ToLower(sym) != sym {
					warnings = append(warnings, "symbol \""+sym+"\" never appears as the left-hand side of a rule; treating it as a terminal")
				}
			}
		}
	}

	g := New()
	// register terminals in first-appearance order for deterministic output
	for _, r := range parsed {
		for _, alt := range r.alts {
			if alt.IsEpsilon() {
				continue
			}
			for _, sym := range alt {
				if !lhsSeen[sym] {
					g.AddTerminal(sym)
				}
			}
		}
	}

	for _, r := range parsed {
		for _, alt := range r.alts {
			g.AddRule(r.lhs, alt)
		}
	}

	return g, warnings, nil
}

func parseAlternative(altText string) Production {
	if altText == "" || epsilonMarkers[altText] {
		return Epsilon
	}
	fields := strings.Fields(altText)
	if len(fields) == 0 {
		return Epsilon
	}
	if len(fields) == 1 && epsilonMarkers[fields[0]] {
		return Epsilon
	}
	return Production(fields)
}

func findArrow(line string) (string, int) {
	best := -1
	bestArrow := ""
	for _, a := range arrowTokens {
		if idx := strings.Index(line, a); idx >= 0 {
			if best < 0 || idx < best {
				best = idx
				bestArrow = a
			}
		}
	}
	return bestArrow, best
}
