// File: intersection.go
// Role: the tensor/intersection RPQ pipeline (spec §4.D).
package rpq

import (
	"fmt"

	"github.com/katalvlaran/pathql/automaton"
	"github.com/katalvlaran/pathql/graph"
	"github.com/katalvlaran/pathql/regexdfa"
)

// Pair is an ordered (from, to) vertex pair, the result element of both
// Intersect and the joint/separated forms of BFS.
type Pair struct {
	From string
	To   string
}

// Intersect evaluates pattern against g via intersect-then-close: build
// the graph as an NFA (restricted to starts/finals), intersect with the
// compiled regex DFA, and read off every (start, final) product-state pair
// connected in the product's transitive closure, projected back to the
// graph vertices that are the first component of each product state.
//
// starts and finals default independently to every vertex of g when nil or
// empty (spec §8: "start_nodes=None is equivalent to start_nodes = V").
func Intersect(pattern string, g *graph.Graph, starts, finals []string) (map[Pair]struct{}, error) {
	dfaR, err := regexdfa.Compile(pattern)
	if err != nil {
		return nil, fmt.Errorf("rpq.Intersect: %w: %w", ErrBadRegex, err)
	}

	nfaG, err := automaton.FromGraph(g, starts, finals)
	if err != nil {
		return nil, fmt.Errorf("rpq.Intersect: %w", err)
	}

	prod, err := automaton.Intersect(nfaG, dfaR)
	if err != nil {
		return nil, fmt.Errorf("rpq.Intersect: %w", err)
	}

	tc, err := automaton.TransitiveClosure(prod)
	if err != nil {
		return nil, fmt.Errorf("rpq.Intersect: %w", err)
	}

	out := make(map[Pair]struct{})
	for _, p := range prod.StartStates() {
		for _, q := range prod.FinalStates() {
			if !tc.Get(p, q) {
				continue
			}
			u := graphVertexOf(prod.StateAt(p))
			v := graphVertexOf(prod.StateAt(q))
			out[Pair{From: u, To: v}] = struct{}{}
		}
	}

	return out, nil
}

// graphVertexOf extracts the first (graph) component of a product state
// built by automaton.Intersect(nfaG, dfaR) — a Tuple whose A field is the
// Atomic vertex id contributed by automaton.FromGraph.
func graphVertexOf(s automaton.State) string {
	t := s.Val.(automaton.Tuple)

	return t.A.(automaton.Atomic).ID
}
