package main

import "strings"

// tokensFromText splits src on whitespace into the terminal-symbol sequence
// a driver expects; the core has no lexer, so the CLI's token format is
// simply "one terminal name per whitespace-separated field" (§6).
func tokensFromText(src string) []string {
	return strings.Fields(src)
}
