package rpq_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pathql/builder"
	"github.com/katalvlaran/pathql/graph"
	"github.com/katalvlaran/pathql/rpq"
)

func mustGraph(t *testing.T, edges [][3]string) *graph.Graph {
	t.Helper()
	g := graph.New()
	for _, e := range edges {
		_, err := g.AddEdge(e[0], e[1], e[2])
		require.NoError(t, err)
	}

	return g
}

func TestIntersect_SpecFixture(t *testing.T) {
	g := mustGraph(t, [][3]string{
		{"0", "1", "a"}, {"1", "2", "b"}, {"0", "3", "a"}, {"3", "4", "c"},
	})
	out, err := rpq.Intersect("(a|f).(b|d)", g, []string{"0"}, []string{"2", "4"})
	require.NoError(t, err)
	require.Equal(t, map[rpq.Pair]struct{}{{From: "0", To: "2"}: {}}, out)
}

func TestIntersect_TwoCycles(t *testing.T) {
	g, err := builder.BuildGraph(nil, builder.TwoCycles(3, "a", 3, "b"))
	require.NoError(t, err)
	out, err := rpq.Intersect("(a|b)(aa)*", g, []string{"0"}, []string{"1"})
	require.NoError(t, err)
	require.Equal(t, map[rpq.Pair]struct{}{{From: "0", To: "1"}: {}}, out)
}

func TestIntersect_CycleNinePairs(t *testing.T) {
	g, err := builder.BuildGraph(nil, builder.Cycle(3))
	require.NoError(t, err)
	_, err = g.AddEdge("4", "5", "a")
	require.NoError(t, err)
	out, err := rpq.Intersect("a*", g, []string{"0", "1", "2"}, []string{"0", "1", "2"})
	require.NoError(t, err)
	require.Len(t, out, 9)
}

func TestIntersect_BadRegex(t *testing.T) {
	g := mustGraph(t, [][3]string{{"0", "1", "a"}})
	_, err := rpq.Intersect("(a|b", g, nil, nil)
	require.ErrorIs(t, err, rpq.ErrBadRegex)
}

func TestBFS_JointMode(t *testing.T) {
	g := mustGraph(t, [][3]string{
		{"0", "1", "a"}, {"1", "2", "b"}, {"2", "3", "a"}, {"3", "4", "b"},
		{"0", "2", "a"}, {"2", "5", "b"}, {"3", "6", "a"}, {"6", "0", "b"},
	})
	res, err := rpq.BFS("(a|b)*", g, []string{"0"}, nil, false)
	require.NoError(t, err)
	want := map[string]struct{}{"0": {}, "1": {}, "2": {}, "3": {}, "4": {}, "5": {}, "6": {}}
	require.Equal(t, want, res.Vertices)
}

func TestBFS_SeparatedMode(t *testing.T) {
	g := mustGraph(t, [][3]string{
		{"0", "1", "a"}, {"0", "2", "b"}, {"1", "2", "b"}, {"2", "2", "c"},
	})
	res, err := rpq.BFS("a.b*", g, []string{"0", "1"}, []string{"2"}, true)
	require.NoError(t, err)
	want := map[rpq.Pair]struct{}{{From: "0", To: "2"}: {}, {From: "1", To: "2"}: {}}
	require.Equal(t, want, res.Pairs)
}

func TestBFS_EmptyGraph(t *testing.T) {
	g := graph.New()
	res, err := rpq.BFS("(a|b)*", g, nil, nil, false)
	require.NoError(t, err)
	require.Empty(t, res.Vertices)
}
