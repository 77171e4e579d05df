// File: compile.go
// Role: public entry point tying parser -> thompson -> dfa into an
// automaton.Automaton: pattern in, minimal deterministic ε-free DFA out.
package regexdfa

import (
	"fmt"

	"github.com/katalvlaran/pathql/automaton"
)

// Compile parses pattern and returns the minimal deterministic, ε-free
// automaton recognizing it. An empty pattern, unbalanced groups, or an
// unrecognized character returns ErrEmptyPattern / ErrUnbalancedGroup /
// ErrSyntax respectively (all wrapped with the offending input context).
func Compile(pattern string) (*automaton.Automaton, error) {
	ast, err := parsePattern(pattern)
	if err != nil {
		return nil, fmt.Errorf("regexdfa.Compile(%q): %w", pattern, err)
	}

	nfa := newThompsonNFA()
	start, final := nfa.build(ast)
	alphabet := nfa.alphabet()

	raw := subsetConstruct(nfa, start, final)
	min := minimize(raw, alphabet)

	b := automaton.NewBuilder()
	if min.n == 0 {
		return b.Build()
	}
	ids := make([]int, min.n)
	for i := 0; i < min.n; i++ {
		ids[i] = b.AddState(automaton.Atomic{ID: fmt.Sprintf("q%d", i)})
	}
	b.MarkStart(ids[min.start])
	for f := range min.final {
		b.MarkFinal(ids[f])
	}
	for i := 0; i < min.n; i++ {
		for sym, t := range min.trans[i] {
			b.AddTransition(ids[i], sym, ids[t])
		}
	}

	return b.Build()
}
