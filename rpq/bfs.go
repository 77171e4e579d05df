// File: bfs.go
// Role: the multi-source front-propagation RPQ variant (spec §4.E):
// direct-sum block-diagonal automaton per shared label, a front matrix
// propagated to a fixed point, then extraction of final (regex, graph)
// state pairs.
package rpq

import (
	"fmt"

	"github.com/katalvlaran/pathql/automaton"
	"github.com/katalvlaran/pathql/bmatrix"
	"github.com/katalvlaran/pathql/graph"
	"github.com/katalvlaran/pathql/regexdfa"
)

// BFSResult holds the answer of a BFS front-propagation query: Vertices is
// populated in joint mode, Pairs in separated-sources mode — exactly one
// of the two is non-nil, selected by the separatedSources argument given
// to BFS.
type BFSResult struct {
	Vertices map[string]struct{}
	Pairs    map[Pair]struct{}
}

// BFS evaluates pattern against g starting from every vertex in starts
// simultaneously, reporting either the union of reached final vertices
// (joint mode) or per-source (source, reached) pairs (separated mode).
//
// starts and finals default independently to every vertex of g when nil or
// empty, matching Intersect.
func BFS(pattern string, g *graph.Graph, starts, finals []string, separatedSources bool) (*BFSResult, error) {
	dfaR, err := regexdfa.Compile(pattern)
	if err != nil {
		return nil, fmt.Errorf("rpq.BFS: %w: %w", ErrBadRegex, err)
	}
	nfaG, err := automaton.FromGraph(g, nil, nil)
	if err != nil {
		return nil, fmt.Errorf("rpq.BFS: %w", err)
	}

	allVertices := g.Vertices()
	startList := defaultTo(starts, allVertices)
	finalSet := toSet(defaultTo(finals, allVertices))

	k := dfaR.Len()
	n := nfaG.Len()

	startIdx := make([]int, len(startList))
	for i, v := range startList {
		idx, ok := nfaG.IndexOf(automaton.NewState(automaton.Atomic{ID: v}).Key())
		if !ok {
			return nil, fmt.Errorf("rpq.BFS: start vertex %q not in graph", v)
		}
		startIdx[i] = idx
	}

	numCopies := 1
	if separatedSources {
		numCopies = len(startIdx)
		if numCopies == 0 {
			return &BFSResult{Pairs: map[Pair]struct{}{}}, nil
		}
	}

	front, err := bmatrix.New(numCopies*k, k+n)
	if err != nil {
		return nil, fmt.Errorf("rpq.BFS: %w", err)
	}
	if separatedSources {
		for srcPos, idx := range startIdx {
			for i := 0; i < k; i++ {
				_ = front.Set(srcPos*k+i, i, true)
				_ = front.Set(srcPos*k+i, k+idx, true)
			}
		}
	} else {
		for i := 0; i < k; i++ {
			_ = front.Set(i, i, true)
		}
		for _, idx := range startIdx {
			for i := 0; i < k; i++ {
				_ = front.Set(i, k+idx, true)
			}
		}
	}

	sharedLabels := intersectLabels(dfaR, nfaG)
	blocks := make(map[string]*bmatrix.BoolMatrix, len(sharedLabels))
	for _, label := range sharedLabels {
		block, err := bmatrix.BlockDiag(dfaR.Delta(label), nfaG.Delta(label))
		if err != nil {
			return nil, fmt.Errorf("rpq.BFS: label %q: %w", label, err)
		}
		blocks[label] = block
	}

	for {
		update, err := bmatrix.New(front.Rows(), front.Cols())
		if err != nil {
			return nil, fmt.Errorf("rpq.BFS: %w", err)
		}
		for _, label := range sharedLabels {
			step, err := bmatrix.MatMul(front, blocks[label])
			if err != nil {
				return nil, fmt.Errorf("rpq.BFS: label %q: %w", label, err)
			}
			applyTransform(step, update, k, separatedSources)
		}
		grew, err := bmatrix.OrInPlace(front, update)
		if err != nil {
			return nil, fmt.Errorf("rpq.BFS: %w", err)
		}
		if !grew {
			break
		}
	}

	return extract(front, nfaG, dfaR, startList, k, finalSet, separatedSources), nil
}

// applyTransform reads step (front @ block for one label) and, for every
// nonzero (row,col) landed in the regex block (col<k), ORs that row's
// graph tail into the output row determined by col (joint) or
// (row/k)*k+col (separated) — spec §4.E's "Step/transform" rule.
func applyTransform(step, update *bmatrix.BoolMatrix, k int, separated bool) {
	tailCols := make(map[int][]int)
	step.Nonzeros(func(row, col int) {
		if col >= k {
			tailCols[row] = append(tailCols[row], col)
		}
	})
	step.Nonzeros(func(row, col int) {
		if col >= k {
			return
		}
		outRow := col
		if separated {
			outRow = (row/k)*k + col
		}
		for _, gcol := range tailCols[row] {
			_ = update.Set(outRow, gcol, true)
		}
	})
}

func extract(front *bmatrix.BoolMatrix, nfaG, dfaR *automaton.Automaton, startList []string, k int, finalSet map[string]struct{}, separated bool) *BFSResult {
	res := &BFSResult{}
	if separated {
		res.Pairs = make(map[Pair]struct{})
	} else {
		res.Vertices = make(map[string]struct{})
	}

	front.Nonzeros(func(row, col int) {
		if col < k {
			return
		}
		regexIdx := row % k
		if !dfaR.IsFinal(regexIdx) {
			return
		}
		graphIdx := col - k
		vertexID := nfaG.StateAt(graphIdx).Val.(automaton.Atomic).ID
		if _, ok := finalSet[vertexID]; !ok {
			return
		}
		if separated {
			srcPos := row / k
			res.Pairs[Pair{From: startList[srcPos], To: vertexID}] = struct{}{}
		} else {
			res.Vertices[vertexID] = struct{}{}
		}
	})

	return res
}

func intersectLabels(a, b *automaton.Automaton) []string {
	var out []string
	for _, l := range a.Labels() {
		if b.HasLabel(l) {
			out = append(out, l)
		}
	}

	return out
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
