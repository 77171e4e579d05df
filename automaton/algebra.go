// File: algebra.go
// Role: the automaton algebra — Intersect (product construction),
// Adjacency, and TransitiveClosure — the boolean-matrix formulation of
// automaton intersection and reachability (spec §4.B/§4.C).
package automaton

import (
	"github.com/emirpasic/gods/sets/treeset"
	"github.com/emirpasic/gods/utils"

	"github.com/katalvlaran/pathql/bmatrix"
)

// Intersect builds the product automaton of a and b (spec §4.C): states are
// pairs (q_a, q_b) in row-major order i_a*|b.states|+i_b, a pair is a start
// state iff both components are start states (same for final), and for
// every label present in BOTH a's and b's alphabet, the product's
// adjacency for that label is the Kronecker product of the operands'
// adjacency for that label. Labels present in only one operand contribute
// no transitions to the product, matching automaton intersection's
// standard semantics (a path must agree on every symbol in both machines).
//
// The full |a|*|b| state space is always materialized, matching the
// spec's literal Kronecker-product definition; reachability pruning is a
// caller concern (the cfpq/rpq packages restrict which results they read
// out of the product, not how the product itself is shaped).
func Intersect(a, b *Automaton) (*Automaton, error) {
	na, nb := len(a.states), len(b.states)
	states := make([]State, 0, na*nb)
	index := make(map[string]int, na*nb)
	start := make(map[int]struct{})
	final := make(map[int]struct{})

	for i := 0; i < na; i++ {
		for j := 0; j < nb; j++ {
			idx := i*nb + j
			s := NewState(Tuple{A: a.states[i].Val, B: b.states[j].Val})
			states = append(states, s)
			index[s.Key()] = idx
			if a.IsStart(i) && b.IsStart(j) {
				start[idx] = struct{}{}
			}
			if a.IsFinal(i) && b.IsFinal(j) {
				final[idx] = struct{}{}
			}
		}
	}

	labels := commonLabels(a, b)
	delta := make(map[string]*bmatrix.BoolMatrix, len(labels))
	for _, label := range labels {
		prod, err := bmatrix.Kron(a.Delta(label), b.Delta(label))
		if err != nil {
			return nil, err
		}
		delta[label] = prod
	}

	out := &Automaton{
		states: states,
		index:  index,
		start:  start,
		final:  final,
		labels: newLabelSet(labels),
		delta:  delta,
	}

	return out, nil
}

func commonLabels(a, b *Automaton) []string {
	var out []string
	for _, l := range a.Labels() {
		if b.HasLabel(l) {
			out = append(out, l)
		}
	}

	return out
}

func newLabelSet(labels []string) *treeset.Set {
	s := treeset.NewWith(utils.StringComparator)
	for _, l := range labels {
		s.Add(l)
	}

	return s
}

// Adjacency returns the union of every label's transition matrix — the
// plain (unlabeled) adjacency relation over the automaton's states used as
// input to TransitiveClosure. An automaton with no labels at all (no
// states, an ε-only RSM box, or the product of two automata with disjoint
// alphabets) returns the degenerate 0×0 matrix (spec §4.C edge case);
// every other automaton returns an n×n matrix.
func Adjacency(a *Automaton) (*bmatrix.BoolMatrix, error) {
	n := len(a.states)
	if n == 0 || a.labels.Empty() {
		return bmatrix.Empty(), nil
	}

	acc, err := bmatrix.New(n, n)
	if err != nil {
		return nil, err
	}
	for _, label := range a.Labels() {
		if _, err := bmatrix.OrInPlace(acc, a.Delta(label)); err != nil {
			return nil, err
		}
	}

	return acc, nil
}

// TransitiveClosure returns the reflexive-or-not transitive closure of a's
// unlabeled adjacency relation (spec §4.A), i.e. which state pairs (i,j)
// have SOME path — of any labels, any length including zero only if an
// explicit self-loop or identity edge was added by the caller — from i
// to j.
func TransitiveClosure(a *Automaton) (*bmatrix.BoolMatrix, error) {
	adj, err := Adjacency(a)
	if err != nil {
		return nil, err
	}

	return bmatrix.TransitiveClosure(adj)
}
