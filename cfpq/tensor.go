// File: tensor.go
// Role: the RSM/tensor CFPQ engine (spec §4.H.3): merge the grammar's RSM
// boxes into one automaton, intersect against a growing "graph_bm"
// boolean decomposition, and iterate transitive closure until no new
// (u, X, v) facts are discovered — grounded directly on spec §9's
// description of tensor CFPQ ("intersection with the graph plus
// transitive closure" standing in for an explicit recursive-descent
// stack).
package cfpq

import (
	"fmt"

	"github.com/katalvlaran/pathql/automaton"
	"github.com/katalvlaran/pathql/bmatrix"
	"github.com/katalvlaran/pathql/ecfg"
	"github.com/katalvlaran/pathql/grammar"
	"github.com/katalvlaran/pathql/graph"
	"github.com/katalvlaran/pathql/rsm"
)

// graphBM is the mutable boolean decomposition the tensor loop grows new
// (nonterminal) label matrices into — unlike automaton.Automaton, which is
// immutable once built, this structure is rebuilt into a fresh
// automaton.Automaton snapshot each iteration via snapshot().
type graphBM struct {
	vertices []string
	idx      map[string]int
	n        int
	labels   map[string]*bmatrix.BoolMatrix
}

func newGraphBM(g *graph.Graph) *graphBM {
	vertices := g.Vertices()
	gb := &graphBM{vertices: vertices, idx: indexVertices(vertices), n: len(vertices), labels: make(map[string]*bmatrix.BoolMatrix)}
	for _, e := range g.Edges() {
		_ = gb.ensure(e.Label).Set(gb.idx[e.From], gb.idx[e.To], true)
	}

	return gb
}

func (gb *graphBM) ensure(label string) *bmatrix.BoolMatrix {
	m, ok := gb.labels[label]
	if !ok {
		m, _ = bmatrix.New(gb.n, gb.n)
		gb.labels[label] = m
	}

	return m
}

func (gb *graphBM) injectNullableIdentities(nullable map[string]struct{}) error {
	id, err := bmatrix.Identity(gb.n)
	if err != nil {
		return err
	}
	for x := range nullable {
		if _, err := bmatrix.OrInPlace(gb.ensure(x), id); err != nil {
			return err
		}
	}

	return nil
}

// snapshot materializes gb's current labels as an immutable
// automaton.Automaton with one Atomic state per graph vertex, suitable as
// the right-hand operand to automaton.Intersect.
func (gb *graphBM) snapshot() (*automaton.Automaton, error) {
	b := automaton.NewBuilder()
	ids := make([]int, gb.n)
	for i, v := range gb.vertices {
		ids[i] = b.AddState(automaton.Atomic{ID: v})
		b.MarkStart(ids[i])
		b.MarkFinal(ids[i])
	}
	for label, m := range gb.labels {
		m.Nonzeros(func(i, j int) { b.AddTransition(ids[i], label, ids[j]) })
	}

	return b.Build()
}

// RunTensor evaluates cfg over g via the RSM/tensor algorithm.
func RunTensor(cfg *grammar.CFG, g *graph.Graph) (map[Triple]struct{}, error) {
	result := make(map[Triple]struct{})

	gb := newGraphBM(g)
	if gb.n == 0 {
		return result, nil
	}

	e, err := ecfg.FromCFG(cfg)
	if err != nil {
		return nil, fmt.Errorf("cfpq.RunTensor: %w: %v", ErrBadGrammar, err)
	}
	r, err := rsm.FromECFG(e)
	if err != nil {
		return nil, fmt.Errorf("cfpq.RunTensor: %w: %v", ErrBadGrammar, err)
	}
	rsmBM, err := r.MergeBoxes()
	if err != nil {
		return nil, fmt.Errorf("cfpq.RunTensor: %w", err)
	}

	if err := gb.injectNullableIdentities(grammar.Nullable(cfg)); err != nil {
		return nil, fmt.Errorf("cfpq.RunTensor: %w", err)
	}

	n := gb.n
	for {
		snapshot, err := gb.snapshot()
		if err != nil {
			return nil, fmt.Errorf("cfpq.RunTensor: %w", err)
		}
		product, err := automaton.Intersect(rsmBM, snapshot)
		if err != nil {
			return nil, fmt.Errorf("cfpq.RunTensor: %w", err)
		}
		tc, err := automaton.TransitiveClosure(product)
		if err != nil {
			return nil, fmt.Errorf("cfpq.RunTensor: %w", err)
		}

		changed := false
		tc.Nonzeros(func(iFrom, iTo int) {
			rsmFrom, graphFrom := iFrom/n, iFrom%n
			rsmTo, graphTo := iTo/n, iTo%n
			if !rsmBM.IsStart(rsmFrom) || !rsmBM.IsFinal(rsmTo) {
				return
			}
			pair, ok := rsmBM.StateAt(rsmFrom).Val.(automaton.Pair)
			if !ok {
				return
			}
			m := gb.ensure(pair.Box)
			if !m.Get(graphFrom, graphTo) {
				_ = m.Set(graphFrom, graphTo, true)
				changed = true
			}
		})
		if !changed {
			break
		}
	}

	for label, m := range gb.labels {
		if !grammar.IsNonterminal(label) {
			continue
		}
		m.Nonzeros(func(i, j int) {
			result[Triple{U: gb.vertices[i], X: label, V: gb.vertices[j]}] = struct{}{}
		})
	}

	return result, nil
}
