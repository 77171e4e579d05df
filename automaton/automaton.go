// File: automaton.go
// Role: the Automaton struct and its read-only accessor API.
package automaton

import (
	"fmt"
	"sort"

	"github.com/emirpasic/gods/sets/treeset"
	"github.com/emirpasic/gods/utils"

	"github.com/katalvlaran/pathql/bmatrix"
)

// Automaton is an immutable boolean-matrix decomposition of a finite
// automaton (spec §3): a stable-indexed state list, a start/final subset
// given as index sets, and a label → adjacency map.
//
// Ownership: Intersect, TransitiveClosure, and FromGraph never alias an
// input's matrices into their output — every BoolMatrix reachable from an
// Automaton belongs to that Automaton alone.
type Automaton struct {
	states []State
	index  map[string]int // State.Key() -> index into states
	start  map[int]struct{}
	final  map[int]struct{}
	labels *treeset.Set // of string, ordered
	delta  map[string]*bmatrix.BoolMatrix
}

// States returns the automaton's states in stable index order.
func (a *Automaton) States() []State { return a.states }

// Len returns the number of states.
func (a *Automaton) Len() int { return len(a.states) }

// IndexOf returns the index of the state with key k, or (-1, false) if no
// such state exists in this automaton.
func (a *Automaton) IndexOf(k string) (int, bool) {
	i, ok := a.index[k]

	return i, ok
}

// StateAt returns the state at index i. Panics if i is out of range, since
// every caller derives i from this automaton's own bookkeeping.
func (a *Automaton) StateAt(i int) State { return a.states[i] }

// IsStart reports whether index i is a start state.
func (a *Automaton) IsStart(i int) bool { _, ok := a.start[i]; return ok }

// IsFinal reports whether index i is a final state.
func (a *Automaton) IsFinal(i int) bool { _, ok := a.final[i]; return ok }

// StartStates returns the sorted indices of start states.
func (a *Automaton) StartStates() []int { return sortedKeys(a.start) }

// FinalStates returns the sorted indices of final states.
func (a *Automaton) FinalStates() []int { return sortedKeys(a.final) }

// Labels returns the automaton's alphabet in ascending order.
func (a *Automaton) Labels() []string {
	vals := a.labels.Values()
	out := make([]string, len(vals))
	for i, v := range vals {
		out[i] = v.(string)
	}

	return out
}

// Delta returns the adjacency matrix for label, or nil if label never
// appears on a transition in this automaton.
func (a *Automaton) Delta(label string) *bmatrix.BoolMatrix { return a.delta[label] }

// HasLabel reports whether label appears on at least one transition.
func (a *Automaton) HasLabel(label string) bool { return a.labels.Contains(label) }

func sortedKeys(m map[int]struct{}) []int {
	out := make([]int, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sort.Ints(out)

	return out
}

// Builder incrementally assembles an Automaton, deduplicating states by
// their structural key (spec §9: "decomposition/composition ... derive
// structural equality"). It is the shared construction path used by
// FromGraph, regexdfa.Compile, and rsm.MergeBoxes.
type Builder struct {
	states []State
	index  map[string]int
	start  map[int]struct{}
	final  map[int]struct{}
	labels *treeset.Set
	trans  map[string][]edge // label -> (from,to) pairs, pre-matrix
	n      int
}

type edge struct{ from, to int }

// NewBuilder returns an empty Builder.
func NewBuilder() *Builder {
	return &Builder{
		index:  make(map[string]int),
		start:  make(map[int]struct{}),
		final:  make(map[int]struct{}),
		labels: treeset.NewWith(utils.StringComparator),
		trans:  make(map[string][]edge),
	}
}

// AddState registers v, returning its index. If a state with the same
// structural key already exists, its existing index is returned and no new
// state is added — this is the dedup step product/merge constructions rely
// on.
func (b *Builder) AddState(v StateVal) int {
	s := NewState(v)
	if i, ok := b.index[s.Key()]; ok {
		return i
	}
	i := b.n
	b.states = append(b.states, s)
	b.index[s.Key()] = i
	b.n++

	return i
}

// MarkStart flags index i as a start state.
func (b *Builder) MarkStart(i int) { b.start[i] = struct{}{} }

// MarkFinal flags index i as a final state.
func (b *Builder) MarkFinal(i int) { b.final[i] = struct{}{} }

// AddTransition records a from-label->to edge. from and to must be indices
// previously returned by AddState.
func (b *Builder) AddTransition(from int, label string, to int) {
	b.labels.Add(label)
	b.trans[label] = append(b.trans[label], edge{from, to})
}

// Build finalizes the Builder into an immutable Automaton, materializing
// one BoolMatrix per label actually used.
func (b *Builder) Build() (*Automaton, error) {
	n := b.n
	delta := make(map[string]*bmatrix.BoolMatrix, len(b.trans))
	if n > 0 {
		for label, edges := range b.trans {
			m, err := bmatrix.New(n, n)
			if err != nil {
				return nil, fmt.Errorf("automaton.Build: label %q: %w", label, err)
			}
			for _, e := range edges {
				if err := m.Set(e.from, e.to, true); err != nil {
					return nil, fmt.Errorf("automaton.Build: label %q: %w", label, err)
				}
			}
			delta[label] = m
		}
	}

	return &Automaton{
		states: b.states,
		index:  b.index,
		start:  b.start,
		final:  b.final,
		labels: b.labels,
		delta:  delta,
	}, nil
}
