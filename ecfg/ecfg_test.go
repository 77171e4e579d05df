package ecfg_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pathql/ecfg"
	"github.com/katalvlaran/pathql/grammar"
	"github.com/katalvlaran/pathql/regexdfa"
)

func TestFromCFG_EpsilonAndUnion(t *testing.T) {
	g, err := grammar.ParseCFG(`
S -> a S b
S -> epsilon
`)
	require.NoError(t, err)
	e, err := ecfg.FromCFG(g)
	require.NoError(t, err)

	rule, ok := e.Rule("S")
	require.True(t, ok)

	a, err := regexdfa.Compile(rule)
	require.NoError(t, err)
	require.True(t, a.IsFinal(a.StartStates()[0]), "epsilon alternative must make the start state final")
}

func TestFromText_RoundTripsThroughRegexdfa(t *testing.T) {
	e, err := ecfg.FromText("S -> (a|f).(b|d)")
	require.NoError(t, err)
	rule, ok := e.Rule("S")
	require.True(t, ok)
	_, err = regexdfa.Compile(rule)
	require.NoError(t, err)
}

func TestFromText_EmptyText(t *testing.T) {
	_, err := ecfg.FromText("   ")
	require.ErrorIs(t, err, ecfg.ErrEmptyText)
}
