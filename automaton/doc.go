// Package automaton represents finite automata as a boolean-matrix
// decomposition indexed by label (spec §3, §4.B, §4.C): a sequence of
// states with stable indices, a start/final subset, and a
// label → bmatrix.BoolMatrix map.
//
// States carry an opaque, polymorphic payload (StateVal): the original
// graph vertex id, a Pair produced by box-merging in package rsm, or a
// Tuple produced by the product construction in Intersect. Payloads are
// compared and hashed structurally (via github.com/cnf/structhash), not by
// pointer identity, so that two independently built product states with
// the same logical value collapse to the same automaton state — exactly
// the "StateVal = Atomic | Pair | Tuple" scheme spec §9 calls for.
//
// An Automaton is immutable once built: Intersect always returns a fresh
// Automaton with its own matrices, and TransitiveClosure a fresh
// BoolMatrix: per spec §9
// ("Ownership"), decomposition/composition never alias a source's
// matrices.
package automaton
