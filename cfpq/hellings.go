// File: hellings.go
// Role: the Hellings worklist CFPQ engine (spec §4.H.1): seed terminal
// triples, then repeatedly combine worklist triples against WCNF
// productions until the worklist drains. The worklist is
// github.com/emirpasic/gods/lists/arraylist, per the module's DOMAIN STACK
// choice to prefer an ordered-collection library already wired elsewhere
// (package automaton) over an ad hoc slice-as-queue.
package cfpq

import (
	"fmt"

	"github.com/emirpasic/gods/lists/arraylist"

	"github.com/katalvlaran/pathql/grammar"
	"github.com/katalvlaran/pathql/graph"
)

// RunHellings evaluates cfg over g via the Hellings worklist algorithm.
func RunHellings(cfg *grammar.CFG, g *graph.Graph) (map[Triple]struct{}, error) {
	wcnf, err := grammar.ToWCNF(cfg)
	if err != nil {
		return nil, fmt.Errorf("cfpq.RunHellings: %w: %v", ErrBadGrammar, err)
	}

	binaryHeads := make(map[[2]string][]string)
	for _, p := range wcnf.Productions {
		if p.IsBinary() {
			key := [2]string{p.Body[0], p.Body[1]}
			binaryHeads[key] = append(binaryHeads[key], p.Head)
		}
	}

	result := make(map[Triple]struct{})
	worklist := arraylist.New()

	add := func(t Triple) {
		if _, ok := result[t]; ok {
			return
		}
		result[t] = struct{}{}
		worklist.Add(t)
	}

	for _, v := range g.Vertices() {
		for _, p := range wcnf.Productions {
			if p.IsEpsilon() {
				add(Triple{U: v, X: p.Head, V: v})
			}
		}
	}
	for _, e := range g.Edges() {
		for _, p := range wcnf.Productions {
			if p.IsTerminal() && p.Body[0] == e.Label {
				add(Triple{U: e.From, X: p.Head, V: e.To})
			}
		}
	}

	for !worklist.Empty() {
		raw, _ := worklist.Get(0)
		worklist.Remove(0)
		cur := raw.(Triple)

		snapshot := make([]Triple, 0, len(result))
		for t := range result {
			snapshot = append(snapshot, t)
		}

		for _, other := range snapshot {
			// cur = (v1, N, v2); other = (w, M, v3): if w == v2, combine as
			// left component under every A -> N M.
			if other.U == cur.V {
				for _, head := range binaryHeads[[2]string{cur.X, other.X}] {
					add(Triple{U: cur.U, X: head, V: other.V})
				}
			}
			// other = (v0, M, w): if w == v1, combine as right component
			// under every A -> M N.
			if other.V == cur.U {
				for _, head := range binaryHeads[[2]string{other.X, cur.X}] {
					add(Triple{U: other.U, X: head, V: cur.V})
				}
			}
		}
	}

	// Report only nonterminals of the input grammar; the helper
	// nonterminals introduced by ToWCNF stay internal.
	heads := make(map[string]struct{})
	for _, h := range cfg.Nonterminals() {
		heads[h] = struct{}{}
	}
	for t := range result {
		if _, ok := heads[t.X]; !ok {
			delete(result, t)
		}
	}

	return result, nil
}
