// File: state.go
// Role: the polymorphic state payload (StateVal) and its structural key.
//
// spec §9: "Implementers should use a tagged sum type
// StateVal = Atomic(id) | Pair(box, StateVal) | Tuple(StateVal, StateVal)
// and derive structural equality/hash." Key() is that derivation: states
// are identified by reference equality on their payload's *structural
// hash* (spec §3), not by pointer identity, so a product state rebuilt
// twice from the same operands collapses to one automaton State.
package automaton

import "github.com/cnf/structhash"

// StateVal is the opaque payload carried by a State. Implementations are
// Atomic (an original graph vertex id), Pair (an RSM box label paired with
// an inner state, produced by rsm.MergeBoxes), and Tuple (two states paired
// by Intersect's product construction).
type StateVal interface {
	isStateVal()
	// String renders a short human-readable form for debugging/tests.
	String() string
}

// Atomic wraps an original identifier — typically a graph vertex id, or an
// internal DFA/NFA state id minted by regexdfa.
type Atomic struct{ ID string }

func (Atomic) isStateVal()      {}
func (a Atomic) String() string { return a.ID }

// Pair is the state payload produced when RSM boxes are merged into a
// single NFA (spec §4.G): Box is the owning nonterminal's name, Inner is
// the state within that nonterminal's box automaton.
type Pair struct {
	Box   string
	Inner StateVal
}

func (Pair) isStateVal()      {}
func (p Pair) String() string { return "(" + p.Box + "," + p.Inner.String() + ")" }

// Tuple is the state payload produced by Intersect's product construction:
// A is the left operand's component, B is the right operand's.
type Tuple struct {
	A StateVal
	B StateVal
}

func (Tuple) isStateVal()      {}
func (t Tuple) String() string { return "<" + t.A.String() + "," + t.B.String() + ">" }

// keyParts is the flattened, exported-field view of a StateVal that is fed
// to structhash — structhash hashes exported struct fields reflectively, so
// the payload must first be reduced to plain strings (recursively, via
// keyOf) rather than hashed as the StateVal interface directly.
type keyParts struct {
	Kind byte   // 'A' Atomic, 'P' Pair, 'T' Tuple
	X    string // Atomic.ID, Pair.Box, or Tuple.A's key
	Y    string // unused for Atomic; Pair.Inner's key; Tuple.B's key
}

// keyOf computes the canonical structural key of v. Equal-value StateVals
// (by the Atomic/Pair/Tuple structure, not by Go identity) always produce
// the same key, which is what lets Intersect and rsm.MergeBoxes dedupe
// states built independently from equal components.
func keyOf(v StateVal) string {
	var kp keyParts
	switch x := v.(type) {
	case Atomic:
		kp = keyParts{Kind: 'A', X: x.ID}
	case Pair:
		kp = keyParts{Kind: 'P', X: x.Box, Y: keyOf(x.Inner)}
	case Tuple:
		kp = keyParts{Kind: 'T', X: keyOf(x.A), Y: keyOf(x.B)}
	default:
		// Unreachable: StateVal is a closed sum via the unexported
		// isStateVal() marker method.
		panic("automaton: unknown StateVal implementation")
	}
	h, err := structhash.Hash(kp, 1)
	if err != nil {
		// structhash only fails on unhashable reflect kinds; keyParts is a
		// plain flat struct of byte/string, so this is unreachable.
		panic(err)
	}

	return h
}

// State is a payload plus its precomputed structural key, stored once per
// Automaton at the index given by its position in Automaton.states.
type State struct {
	Val StateVal
	key string
}

// NewState wraps v, computing its structural key eagerly so that
// Builder.AddState's dedup lookup is O(1) instead of re-hashing on every
// comparison.
func NewState(v StateVal) State {
	return State{Val: v, key: keyOf(v)}
}

// Key returns the structural key used for equality/deduplication.
func (s State) Key() string { return s.key }

// String delegates to the payload's String.
func (s State) String() string { return s.Val.String() }
