package grammar

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_ParseGrammar(t *testing.T) {
	testCases := []struct {
		name         string
		src          string
		expectErr    bool
		expectWarns  int
		expectStart  string
		expectTerms  []string
		expectNTs    []string
		expectProdOf map[string][]Production
	}{
		{
			name:      "empty source",
			src:       "",
			expectErr: true,
		},
		{
			name: "comments and blank lines only",
			src: `# just a comment

			# another one
			`,
			expectErr: true,
		},
		{
			name:        "single rule",
			src:         "S -> a",
			expectStart: "S",
			expectTerms: []string{"a"},
			expectNTs:   []string{"S"},
			expectProdOf: map[string][]Production{
				"S": {{"a"}},
			},
		},
		{
			name:        "alternatives and unicode arrow",
			src:         "S → a | b S",
			expectStart: "S",
			expectTerms: []string{"a", "b"},
			expectNTs:   []string{"S"},
			expectProdOf: map[string][]Production{
				"S": {{"a"}, {"b", "S"}},
			},
		},
		{
			name:        "::= arrow and explicit epsilon",
			src:         "S ::= A\nA ::= a | ε",
			expectStart: "S",
			expectTerms: []string{"a"},
			expectNTs:   []string{"S", "A"},
			expectProdOf: map[string][]Production{
				"A": {{"a"}, Epsilon},
			},
		},
		{
			name:        "undefined nonterminal-looking symbol demoted with warning",
			src:         "S -> A B\nA -> a",
			expectWarns: 1,
			expectStart: "S",
			expectTerms: []string{"a", "B"},
		},
		{
			name:      "missing arrow",
			src:       "S a",
			expectErr: true,
		},
		{
			name:      "empty left-hand side",
			src:       " -> a",
			expectErr: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert := assert.New(t)

			g, warnings, err := ParseGrammar(tc.src)

			if tc.expectErr {
				assert.Error(err)
				return
			}
			if !assert.NoError(err) {
				return
			}

			assert.Len(warnings, tc.expectWarns)
			assert.Equal(tc.expectStart, g.StartSymbol())

			if tc.expectTerms != nil {
				assert.ElementsMatch(tc.expectTerms, g.Terminals())
			}
			if tc.expectNTs != nil {
				assert.ElementsMatch(tc.expectNTs, g.NonTerminals())
			}
			for nt, want := range tc.expectProdOf {
				assert.Equal(want, g.ProductionsOf(nt))
			}
		})
	}
}
