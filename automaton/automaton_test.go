package automaton_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pathql/automaton"
	"github.com/katalvlaran/pathql/graph"
)

func twoCycleGraph(t *testing.T) *graph.Graph {
	t.Helper()
	g := graph.New()
	_, err := g.AddEdge("0", "1", "a")
	require.NoError(t, err)
	_, err = g.AddEdge("1", "2", "a")
	require.NoError(t, err)
	_, err = g.AddEdge("2", "0", "a")
	require.NoError(t, err)
	_, err = g.AddEdge("3", "2", "a")
	require.NoError(t, err)

	return g
}

func TestFromGraph_DefaultStartFinalIsAllVertices(t *testing.T) {
	g := twoCycleGraph(t)
	a, err := automaton.FromGraph(g, nil, nil)
	require.NoError(t, err)
	require.Equal(t, 4, a.Len())
	require.Len(t, a.StartStates(), 4)
	require.Len(t, a.FinalStates(), 4)
}

func TestFromGraph_IndependentStartFinalDefaults(t *testing.T) {
	g := twoCycleGraph(t)
	a, err := automaton.FromGraph(g, []string{"0"}, nil)
	require.NoError(t, err)
	require.Len(t, a.StartStates(), 1)
	require.Len(t, a.FinalStates(), 4)
}

func TestTransitiveClosure_MatchesSpecFixture(t *testing.T) {
	g := twoCycleGraph(t)
	a, err := automaton.FromGraph(g, nil, nil)
	require.NoError(t, err)

	tc, err := automaton.TransitiveClosure(a)
	require.NoError(t, err)

	idx := func(v string) int { i, _ := a.IndexOf(automaton.NewState(automaton.Atomic{ID: v}).Key()); return i }
	for _, from := range []string{"0", "1", "2", "3"} {
		for _, to := range []string{"0", "1", "2"} {
			require.Truef(t, tc.Get(idx(from), idx(to)), "tc[%s,%s] expected true", from, to)
		}
		require.Falsef(t, tc.Get(idx(from), idx("3")), "tc[%s,3] expected false", from)
	}
}

func TestIntersect_WithSelfIsIsomorphic(t *testing.T) {
	g := twoCycleGraph(t)
	a, err := automaton.FromGraph(g, nil, nil)
	require.NoError(t, err)

	prod, err := automaton.Intersect(a, a)
	require.NoError(t, err)
	require.Equal(t, a.Len()*a.Len(), prod.Len())

	// The diagonal (v,v) pairs reproduce a's own reachability structure.
	tcA, err := automaton.TransitiveClosure(a)
	require.NoError(t, err)
	tcProd, err := automaton.TransitiveClosure(prod)
	require.NoError(t, err)

	for i := 0; i < a.Len(); i++ {
		for j := 0; j < a.Len(); j++ {
			diagI := i*a.Len() + i
			diagJ := j*a.Len() + j
			require.Equal(t, tcA.Get(i, j), tcProd.Get(diagI, diagJ))
		}
	}
}

func TestIntersect_DisjointLabelsProduceNoTransitions(t *testing.T) {
	g1 := graph.New()
	_, err := g1.AddEdge("x", "y", "p")
	require.NoError(t, err)
	g2 := graph.New()
	_, err = g2.AddEdge("u", "v", "q")
	require.NoError(t, err)

	a1, err := automaton.FromGraph(g1, nil, nil)
	require.NoError(t, err)
	a2, err := automaton.FromGraph(g2, nil, nil)
	require.NoError(t, err)

	prod, err := automaton.Intersect(a1, a2)
	require.NoError(t, err)
	require.Empty(t, prod.Labels())
}

func TestAdjacency_NoLabelsIsEmptyMatrix(t *testing.T) {
	g := graph.New()
	require.NoError(t, g.AddVertex("solo"))
	a, err := automaton.FromGraph(g, nil, nil)
	require.NoError(t, err)

	adj, err := automaton.Adjacency(a)
	require.NoError(t, err)
	require.Equal(t, 0, adj.Rows())
	require.Equal(t, 0, adj.Cols())
}

func TestStateKey_StructuralEquality(t *testing.T) {
	s1 := automaton.NewState(automaton.Tuple{A: automaton.Atomic{ID: "a"}, B: automaton.Atomic{ID: "b"}})
	s2 := automaton.NewState(automaton.Tuple{A: automaton.Atomic{ID: "a"}, B: automaton.Atomic{ID: "b"}})
	s3 := automaton.NewState(automaton.Tuple{A: automaton.Atomic{ID: "b"}, B: automaton.Atomic{ID: "a"}})

	require.Equal(t, s1.Key(), s2.Key())
	require.NotEqual(t, s1.Key(), s3.Key())
}
