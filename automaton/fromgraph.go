// File: fromgraph.go
// Role: build an Automaton (viewed as an NFA) directly from a graph.Graph,
// the bridge spec §4.B describes as "the graph itself read as an NFA whose
// alphabet is the set of edge labels."
package automaton

import "github.com/katalvlaran/pathql/graph"

// FromGraph builds an Automaton whose states are the graph's vertices
// (as Atomic payloads) and whose transitions are the graph's edges, one
// per (From, Label, To) triple.
//
// start and final select which vertex ids are start/final states. The two
// selections default INDEPENDENTLY to "every vertex" when nil or empty:
// passing nil for start and a concrete slice for final marks every vertex
// as a start state while restricting final states to the given slice, and
// vice versa.
func FromGraph(g *graph.Graph, start, final []string) (*Automaton, error) {
	vertices := g.Vertices()
	b := NewBuilder()
	idx := make(map[string]int, len(vertices))
	for _, v := range vertices {
		idx[v] = b.AddState(Atomic{ID: v})
	}

	startSet := toSet(start)
	finalSet := toSet(final)
	for _, v := range vertices {
		if len(startSet) == 0 || has(startSet, v) {
			b.MarkStart(idx[v])
		}
		if len(finalSet) == 0 || has(finalSet, v) {
			b.MarkFinal(idx[v])
		}
	}

	for _, e := range g.Edges() {
		b.AddTransition(idx[e.From], e.Label, idx[e.To])
	}

	return b.Build()
}

func toSet(ids []string) map[string]struct{} {
	if len(ids) == 0 {
		return nil
	}
	s := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		s[id] = struct{}{}
	}

	return s
}

func has(s map[string]struct{}, v string) bool {
	_, ok := s[v]

	return ok
}
