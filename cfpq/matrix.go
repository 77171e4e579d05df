// File: matrix.go
// Role: the per-nonterminal boolean-matrix CFPQ engine (spec §4.H.2): one
// bmatrix.BoolMatrix per nonterminal, iterated via WCNF productions to a
// fixed point.
package cfpq

import (
	"fmt"

	"github.com/katalvlaran/pathql/bmatrix"
	"github.com/katalvlaran/pathql/grammar"
	"github.com/katalvlaran/pathql/graph"
)

// RunMatrix evaluates cfg over g via one boolean matrix per nonterminal,
// iterated to a fixed point.
func RunMatrix(cfg *grammar.CFG, g *graph.Graph) (map[Triple]struct{}, error) {
	wcnf, err := grammar.ToWCNF(cfg)
	if err != nil {
		return nil, fmt.Errorf("cfpq.RunMatrix: %w: %v", ErrBadGrammar, err)
	}

	vertices := g.Vertices()
	n := len(vertices)
	result := make(map[Triple]struct{})
	if n == 0 {
		return result, nil
	}
	idx := indexVertices(vertices)

	mats := make(map[string]*bmatrix.BoolMatrix)
	ensure := func(nonterm string) *bmatrix.BoolMatrix {
		m, ok := mats[nonterm]
		if !ok {
			m, _ = bmatrix.New(n, n)
			mats[nonterm] = m
		}

		return m
	}

	for _, p := range wcnf.Productions {
		if p.IsEpsilon() {
			m := ensure(p.Head)
			for i := 0; i < n; i++ {
				_ = m.Set(i, i, true)
			}
		}
	}
	for _, e := range g.Edges() {
		for _, p := range wcnf.Productions {
			if p.IsTerminal() && p.Body[0] == e.Label {
				_ = ensure(p.Head).Set(idx[e.From], idx[e.To], true)
			}
		}
	}

	var binaries []grammar.Production
	for _, p := range wcnf.Productions {
		if p.IsBinary() {
			binaries = append(binaries, p)
		}
	}

	for {
		changed := false
		for _, p := range binaries {
			b, okB := mats[p.Body[0]]
			c, okC := mats[p.Body[1]]
			if !okB || !okC {
				continue
			}
			prod, err := bmatrix.MatMul(b, c)
			if err != nil {
				return nil, fmt.Errorf("cfpq.RunMatrix: %w", err)
			}
			grew, err := bmatrix.OrInPlace(ensure(p.Head), prod)
			if err != nil {
				return nil, fmt.Errorf("cfpq.RunMatrix: %w", err)
			}
			if grew {
				changed = true
			}
		}
		if !changed {
			break
		}
	}

	// Report only nonterminals of the input grammar; the helper
	// nonterminals introduced by ToWCNF stay internal.
	heads := make(map[string]struct{})
	for _, h := range cfg.Nonterminals() {
		heads[h] = struct{}{}
	}
	for nonterm, m := range mats {
		if _, ok := heads[nonterm]; !ok {
			continue
		}
		m.Nonzeros(func(i, j int) {
			result[Triple{U: vertices[i], X: nonterm, V: vertices[j]}] = struct{}{}
		})
	}

	return result, nil
}
