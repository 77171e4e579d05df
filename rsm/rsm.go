// File: rsm.go
// Role: RSM type, FromECFG, Minimize, MergeBoxes.
package rsm

import (
	"fmt"

	"github.com/katalvlaran/pathql/automaton"
	"github.com/katalvlaran/pathql/ecfg"
	"github.com/katalvlaran/pathql/regexdfa"
)

// RSM is a Recursive State Machine: one compiled automaton ("box") per
// nonterminal, plus the grammar's start symbol.
type RSM struct {
	Start string
	heads []string
	boxes map[string]*automaton.Automaton
}

// Box returns the automaton compiled for nonterminal head, or (nil, false)
// if head is not one of this RSM's nonterminals.
func (r *RSM) Box(head string) (*automaton.Automaton, bool) {
	b, ok := r.boxes[head]

	return b, ok
}

// Heads returns the RSM's nonterminals in first-declared order.
func (r *RSM) Heads() []string { return r.heads }

// FromECFG compiles every head's regex body into a box automaton via
// regexdfa.Compile.
func FromECFG(e *ecfg.ECFG) (*RSM, error) {
	boxes := make(map[string]*automaton.Automaton, len(e.Heads()))
	for _, head := range e.Heads() {
		rule, ok := e.Rule(head)
		if !ok {
			continue
		}
		box, err := regexdfa.Compile(rule)
		if err != nil {
			return nil, fmt.Errorf("rsm.FromECFG: nonterminal %s: %w", head, err)
		}
		boxes[head] = box
	}

	return &RSM{Start: e.Start, heads: e.Heads(), boxes: boxes}, nil
}

// Minimize is a no-op: regexdfa.Compile already returns a minimal DFA for
// every box, so there is nothing left to collapse. The method exists for
// API parity with the box-per-box minimization step other RSM
// implementations perform as a separate pass.
func (r *RSM) Minimize() *RSM { return r }

// MergeBoxes flattens every box into one automaton whose states are
// automaton.Pair{Box: head, Inner: <box's own state>}, with each box's
// start/final flags and transitions lifted unchanged. The merged
// automaton's labels are whatever token each box transition carried —
// terminal or nonterminal name alike (spec §4.G: "labels that are either
// terminals or nonterminals").
func (r *RSM) MergeBoxes() (*automaton.Automaton, error) {
	b := automaton.NewBuilder()
	for _, head := range r.heads {
		box, ok := r.boxes[head]
		if !ok {
			continue
		}
		local := make([]int, box.Len())
		for i := 0; i < box.Len(); i++ {
			local[i] = b.AddState(automaton.Pair{Box: head, Inner: box.StateAt(i).Val})
		}
		for _, s := range box.StartStates() {
			b.MarkStart(local[s])
		}
		for _, f := range box.FinalStates() {
			b.MarkFinal(local[f])
		}
		for _, label := range box.Labels() {
			m := box.Delta(label)
			m.Nonzeros(func(i, j int) {
				b.AddTransition(local[i], label, local[j])
			})
		}
	}

	return b.Build()
}
