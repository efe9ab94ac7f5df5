package transform

import "strings"

// nameAllocator mints fresh nonterminal names by priming (A, A', A'', ...),
// tracking every name handed out plus every name reserved up front so a
// multi-step pass (left recursion, then left factoring on its own output)
// never collides with a name the grammar already used or one it minted
// earlier in the same pass.
type nameAllocator struct {
	used  map[string]bool
	depth map[string]int
}

func newNameAllocator(reserved []string) *nameAllocator {
	na := &nameAllocator{used: map[string]bool{}, depth: map[string]int{}}
	for _, r := range reserved {
		na.used[r] = true
	}
	return na
}

func (na *nameAllocator) fresh(base string) string {
	d := na.depth[base] + 1
	for {
		name := base + strings.Repeat("'", d)
		if !na.used[name] {
			na.used[name] = true
			na.depth[base] = d
			return name
		}
		d++
	}
}
