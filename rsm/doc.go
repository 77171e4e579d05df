// Package rsm builds a Recursive State Machine from an ECFG: one finite
// automaton "box" per nonterminal (spec §4.G), minimized independently,
// then merged into a single automaton whose states are
// (Nonterminal, inner state) pairs.
package rsm
