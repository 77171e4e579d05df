package grammar_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pathql/grammar"
)

func TestParseCFG_BasicAndEpsilon(t *testing.T) {
	g, err := grammar.ParseCFG(`
S -> a S b
S -> epsilon
`)
	require.NoError(t, err)
	require.Equal(t, "S", g.Start)
	require.Len(t, g.Productions, 2)
	require.True(t, g.Productions[1].IsEpsilon())
}

func TestParseCFG_EmptyText(t *testing.T) {
	_, err := grammar.ParseCFG("   \n\n")
	require.ErrorIs(t, err, grammar.ErrEmptyText)
}

func TestParseCFG_MalformedLine(t *testing.T) {
	_, err := grammar.ParseCFG("S a b")
	require.ErrorIs(t, err, grammar.ErrMalformedLine)
}

func TestIsNonterminal(t *testing.T) {
	require.True(t, grammar.IsNonterminal("S"))
	require.True(t, grammar.IsNonterminal("NP"))
	require.False(t, grammar.IsNonterminal("a"))
	require.False(t, grammar.IsNonterminal(""))
}

func TestToWCNF_BodyShapeInvariant(t *testing.T) {
	g, err := grammar.ParseCFG(`
S -> a S b
S -> epsilon
`)
	require.NoError(t, err)
	w, err := grammar.ToWCNF(g)
	require.NoError(t, err)
	for _, p := range w.Productions {
		require.Truef(t, p.IsEpsilon() || p.IsTerminal() || p.IsBinary(),
			"production %s -> %v not in wcnf shape", p.Head, p.Body)
	}
}

func TestToWCNF_RemovesUselessSymbols(t *testing.T) {
	g, err := grammar.ParseCFG(`
S -> a
Unused -> b
`)
	require.NoError(t, err)
	w, err := grammar.ToWCNF(g)
	require.NoError(t, err)
	for _, p := range w.Productions {
		require.NotEqual(t, "Unused", p.Head)
	}
}

func TestToWCNF_UnitProductionElimination(t *testing.T) {
	g, err := grammar.ParseCFG(`
S -> A
A -> a
`)
	require.NoError(t, err)
	w, err := grammar.ToWCNF(g)
	require.NoError(t, err)
	found := false
	for _, p := range w.Productions {
		if p.Head == "S" && p.IsTerminal() && p.Body[0] == "a" {
			found = true
		}
	}
	require.True(t, found, "unit production S -> A -> a should collapse to S -> a")
}

func TestNullable(t *testing.T) {
	g, err := grammar.ParseCFG(`
S -> A B
A -> epsilon
B -> epsilon
`)
	require.NoError(t, err)
	n := grammar.Nullable(g)
	require.Contains(t, n, "S")
	require.Contains(t, n, "A")
	require.Contains(t, n, "B")
}

func TestNullable_NonNullable(t *testing.T) {
	g, err := grammar.ParseCFG(`
S -> a
`)
	require.NoError(t, err)
	n := grammar.Nullable(g)
	require.NotContains(t, n, "S")
}
