// File: common.go
// Role: the shared Triple result type and the top-level Run dispatcher
// (spec §6's cfpq(cfg, graph, algorithm, starts?, finals?, start_symbol)).
package cfpq

import (
	"fmt"

	"github.com/katalvlaran/pathql/graph"
	"github.com/katalvlaran/pathql/grammar"
)

// Triple is one (u, X, v) reachability fact: nonterminal X derives some
// word labeling a path from u to v.
type Triple struct {
	U string
	X string
	V string
}

// Algorithm selects which CFPQ engine Run uses.
type Algorithm string

const (
	Hellings Algorithm = "hellings"
	Matrix   Algorithm = "matrix"
	Tensor   Algorithm = "tensor"
)

func indexVertices(vertices []string) map[string]int {
	idx := make(map[string]int, len(vertices))
	for i, v := range vertices {
		idx[v] = i
	}

	return idx
}

// Run evaluates cfg over g with the selected algorithm, then filters the
// raw (u, X, v) triples to X == startSymbol, u ∈ starts, v ∈ finals, and
// projects to (u, v) pairs — spec §6's top-level cfpq() contract.
//
// The grammar is evaluated with startSymbol as its start symbol, so a
// nonterminal other than cfg.Start can be queried. starts and finals
// default independently to every vertex of g when nil or empty.
func Run(algo Algorithm, cfg *grammar.CFG, g *graph.Graph, startSymbol string, starts, finals []string) (map[[2]string]struct{}, error) {
	var triples map[Triple]struct{}
	var err error

	if cfg.Start != startSymbol {
		c := *cfg
		c.Start = startSymbol
		cfg = &c
	}

	switch algo {
	case Hellings:
		triples, err = RunHellings(cfg, g)
	case Matrix:
		triples, err = RunMatrix(cfg, g)
	case Tensor:
		triples, err = RunTensor(cfg, g)
	default:
		return nil, fmt.Errorf("cfpq.Run: %q: %w", algo, ErrUnknownAlgorithm)
	}
	if err != nil {
		return nil, err
	}

	allVertices := g.Vertices()
	startSet := toSet(defaultTo(starts, allVertices))
	finalSet := toSet(defaultTo(finals, allVertices))

	out := make(map[[2]string]struct{})
	for t := range triples {
		if t.X != startSymbol {
			continue
		}
		if _, ok := startSet[t.U]; !ok {
			continue
		}
		if _, ok := finalSet[t.V]; !ok {
			continue
		}
		out[[2]string{t.U, t.V}] = struct{}{}
	}

	return out, nil
}

func defaultTo(selected, all []string) []string {
	if len(selected) == 0 {
		return all
	}

	return selected
}

func toSet(ids []string) map[string]struct{} {
	s := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		s[id] = struct{}{}
	}

	return s
}
