package builder_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pathql/builder"
)

func TestPath_Bamboo(t *testing.T) {
	g, err := builder.BuildGraph(nil, builder.Path(4))
	require.NoError(t, err)
	require.ElementsMatch(t, []string{"0", "1", "2", "3"}, g.Vertices())
	require.Len(t, g.Edges(), 3)
}

func TestPath_TooFewVertices(t *testing.T) {
	_, err := builder.BuildGraph(nil, builder.Path(1))
	require.True(t, errors.Is(err, builder.ErrTooFewVertices))
}

func TestCycle_Ring(t *testing.T) {
	g, err := builder.BuildGraph(nil, builder.Cycle(3))
	require.NoError(t, err)
	require.Len(t, g.Vertices(), 3)
	require.Len(t, g.Edges(), 3)
	require.True(t, g.HasEdge("2", "0"))
}

func TestCycle_TooFewVertices(t *testing.T) {
	_, err := builder.BuildGraph(nil, builder.Cycle(2))
	require.True(t, errors.Is(err, builder.ErrTooFewVertices))
}

func TestTwoCycles_SharedVertex(t *testing.T) {
	g, err := builder.BuildGraph(nil, builder.TwoCycles(3, "a", 3, "b"))
	require.NoError(t, err)
	require.ElementsMatch(t, []string{"0", "1", "2", "3", "4"}, g.Vertices())
	require.True(t, g.HasEdge("0", "1"))
	require.True(t, g.HasEdge("2", "0"))
	require.True(t, g.HasEdge("0", "3"))
	require.True(t, g.HasEdge("4", "0"))
}

func TestWithLabel(t *testing.T) {
	g, err := builder.BuildGraph([]builder.BuilderOption{builder.WithLabel("x")}, builder.Cycle(3))
	require.NoError(t, err)
	edges := g.Edges()
	for _, e := range edges {
		require.Equal(t, "x", e.Label)
	}
}
