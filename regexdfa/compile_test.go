package regexdfa_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pathql/automaton"
	"github.com/katalvlaran/pathql/regexdfa"
)

// accepts runs word (a slice of labels) through a deterministic, total-or-
// partial automaton starting from its single start state.
func accepts(t *testing.T, a *automaton.Automaton, word []string) bool {
	t.Helper()
	starts := a.StartStates()
	require.Len(t, starts, 1, "regexdfa output must have exactly one start state")
	cur := starts[0]
	for _, sym := range word {
		m := a.Delta(sym)
		if m == nil {
			return false
		}
		next := -1
		for j := 0; j < a.Len(); j++ {
			if m.Get(cur, j) {
				next = j
				break
			}
		}
		if next == -1 {
			return false
		}
		cur = next
	}

	return a.IsFinal(cur)
}

func TestCompile_SimpleLiteral(t *testing.T) {
	a, err := regexdfa.Compile("a")
	require.NoError(t, err)
	require.True(t, accepts(t, a, []string{"a"}))
	require.False(t, accepts(t, a, []string{"b"}))
	require.False(t, accepts(t, a, []string{}))
}

func TestCompile_Union(t *testing.T) {
	a, err := regexdfa.Compile("(a|f).(b|d)")
	require.NoError(t, err)
	for _, w := range [][]string{{"a", "b"}, {"a", "d"}, {"f", "b"}, {"f", "d"}} {
		require.Truef(t, accepts(t, a, w), "expected accept %v", w)
	}
	require.False(t, accepts(t, a, []string{"a", "c"}))
}

func TestCompile_StarOfGroup(t *testing.T) {
	a, err := regexdfa.Compile("(a|b)(aa)*")
	require.NoError(t, err)
	require.True(t, accepts(t, a, []string{"a"}))
	require.True(t, accepts(t, a, []string{"b"}))
	require.True(t, accepts(t, a, []string{"a", "a", "a"}))
	require.False(t, accepts(t, a, []string{"a", "a"}))
}

func TestCompile_ImplicitConcatViaSpaces(t *testing.T) {
	a, err := regexdfa.Compile("A B C")
	require.NoError(t, err)
	require.True(t, accepts(t, a, []string{"A", "B", "C"}))
	require.False(t, accepts(t, a, []string{"A", "B"}))
}

func TestCompile_EpsilonLiteral(t *testing.T) {
	a, err := regexdfa.Compile("ε")
	require.NoError(t, err)
	require.True(t, a.IsFinal(a.StartStates()[0]))
	require.Empty(t, a.Labels())
}

func TestCompile_PlusAndQuestion(t *testing.T) {
	a, err := regexdfa.Compile("a+")
	require.NoError(t, err)
	require.False(t, accepts(t, a, []string{}))
	require.True(t, accepts(t, a, []string{"a"}))
	require.True(t, accepts(t, a, []string{"a", "a", "a"}))

	b, err := regexdfa.Compile("a?b")
	require.NoError(t, err)
	require.True(t, accepts(t, b, []string{"b"}))
	require.True(t, accepts(t, b, []string{"a", "b"}))
	require.False(t, accepts(t, b, []string{"a", "a", "b"}))
}

func TestCompile_EmptyPattern(t *testing.T) {
	_, err := regexdfa.Compile("")
	require.ErrorIs(t, err, regexdfa.ErrEmptyPattern)
}

func TestCompile_UnbalancedGroup(t *testing.T) {
	_, err := regexdfa.Compile("(a|b")
	require.ErrorIs(t, err, regexdfa.ErrUnbalancedGroup)
}
