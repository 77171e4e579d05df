package cfpq

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pathql/grammar"
	"github.com/katalvlaran/pathql/graph"
)

func mustGraph(t *testing.T, edges [][3]string) *graph.Graph {
	t.Helper()
	g := graph.New()
	for _, e := range edges {
		require.NoError(t, g.AddVertex(e[0]))
		require.NoError(t, g.AddVertex(e[2]))
		_, err := g.AddEdge(e[0], e[2], e[1])
		require.NoError(t, err)
	}

	return g
}

func mustCFG(t *testing.T, text string) *grammar.CFG {
	t.Helper()
	cfg, err := grammar.ParseCFG(text)
	require.NoError(t, err)

	return cfg
}

// runAll evaluates cfg over g under every algorithm and asserts all three
// agree, returning the shared result set.
func runAll(t *testing.T, cfg *grammar.CFG, g *graph.Graph) map[Triple]struct{} {
	t.Helper()

	hellings, err := RunHellings(cfg, g)
	require.NoError(t, err)
	matrix, err := RunMatrix(cfg, g)
	require.NoError(t, err)
	tensor, err := RunTensor(cfg, g)
	require.NoError(t, err)

	require.Equal(t, hellings, matrix, "hellings and matrix disagree")
	require.Equal(t, hellings, tensor, "hellings and tensor disagree")

	return hellings
}

// TestCFPQ_BambooEpsilon: S -> epsilon over a path graph reaches every
// vertex from itself and nothing else, since an epsilon-headed nonterminal
// only ever matches the empty path.
func TestCFPQ_BambooEpsilon(t *testing.T) {
	g := mustGraph(t, [][3]string{
		{"v0", "a", "v1"},
		{"v1", "a", "v2"},
		{"v2", "a", "v3"},
	})
	cfg := mustCFG(t, "S -> epsilon")

	got := runAll(t, cfg, g)

	want := map[Triple]struct{}{
		{U: "v0", X: "S", V: "v0"}: {},
		{U: "v1", X: "S", V: "v1"}: {},
		{U: "v2", X: "S", V: "v2"}: {},
		{U: "v3", X: "S", V: "v3"}: {},
	}
	require.Equal(t, want, got)
}

// TestCFPQ_TwoCyclesDyckLike mirrors the classic S -> a S b | epsilon
// balanced-bracket grammar over a single two-edge cycle (v0 -a-> v1 -b-> v0),
// checking every algorithm produces the same nonempty result.
func TestCFPQ_TwoCyclesDyckLike(t *testing.T) {
	g := mustGraph(t, [][3]string{
		{"v0", "a", "v1"},
		{"v1", "b", "v0"},
	})
	cfg := mustCFG(t, "S -> a S b\nS -> epsilon")

	got := runAll(t, cfg, g)

	require.Contains(t, got, Triple{U: "v0", X: "S", V: "v0"})
	require.Contains(t, got, Triple{U: "v1", X: "S", V: "v1"})
	require.NotEmpty(t, got)
}

// TestCFPQ_EmptyGraph: no vertices means no triples under any algorithm,
// regardless of the grammar.
func TestCFPQ_EmptyGraph(t *testing.T) {
	g := graph.New()
	cfg := mustCFG(t, "S -> a S b\nS -> epsilon")

	got := runAll(t, cfg, g)
	require.Empty(t, got)
}

// TestCFPQ_NullableNonterminalReachesEveryVertexFromItself checks that a
// nonterminal made nullable only indirectly (via an all-nullable binary
// body) still yields (v, X, v) for every graph vertex.
func TestCFPQ_NullableNonterminalReachesEveryVertexFromItself(t *testing.T) {
	g := mustGraph(t, [][3]string{
		{"v0", "a", "v1"},
		{"v1", "a", "v2"},
	})
	cfg := mustCFG(t, "S -> A B\nA -> epsilon\nB -> epsilon")

	nullable := grammar.Nullable(cfg)
	require.Contains(t, nullable, "S")

	got := runAll(t, cfg, g)
	for _, v := range []string{"v0", "v1", "v2"} {
		require.Contains(t, got, Triple{U: v, X: "S", V: v})
	}
}

func TestRun_FiltersByStartSymbolAndEndpoints(t *testing.T) {
	g := mustGraph(t, [][3]string{
		{"v0", "a", "v1"},
		{"v1", "a", "v2"},
	})
	cfg := mustCFG(t, "S -> a\nT -> a a")

	out, err := Run(Hellings, cfg, g, "T", nil, nil)
	require.NoError(t, err)
	require.Equal(t, map[[2]string]struct{}{{"v0", "v2"}: {}}, out)

	out, err = Run(Matrix, cfg, g, "S", []string{"v0"}, []string{"v1"})
	require.NoError(t, err)
	require.Equal(t, map[[2]string]struct{}{{"v0", "v1"}: {}}, out)

	out, err = Run(Tensor, cfg, g, "S", []string{"v1"}, []string{"v2"})
	require.NoError(t, err)
	require.Equal(t, map[[2]string]struct{}{{"v1", "v2"}: {}}, out)
}

func TestRun_UnknownAlgorithm(t *testing.T) {
	g := mustGraph(t, [][3]string{{"v0", "a", "v1"}})
	cfg := mustCFG(t, "S -> a")

	_, err := Run(Algorithm("bogus"), cfg, g, "S", nil, nil)
	require.ErrorIs(t, err, ErrUnknownAlgorithm)
}

func TestRunMatrix_UnitToUndefinedSymbolIsNotAnError(t *testing.T) {
	g := mustGraph(t, [][3]string{{"v0", "a", "v1"}})
	cfg := &grammar.CFG{Start: "S", Productions: []grammar.Production{{Head: "S", Body: []string{"Unreachable"}}}}

	// A unit production to a symbol with no productions of its own is
	// simply eliminated to nothing generating; ToWCNF should not error.
	_, err := RunMatrix(cfg, g)
	require.NoError(t, err)
}
