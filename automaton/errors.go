// SPDX-License-Identifier: MIT
// Package automaton: sentinel error set.
package automaton

import "errors"

var (
	// ErrNoStates is returned when an Automaton is built with zero states
	// but at least one is required (e.g. FromGraph on a vertex-less graph
	// is legal and returns an empty Automaton instead — this sentinel is
	// for internal product/merge code paths that must never see it).
	ErrNoStates = errors.New("automaton: no states")

	// ErrUnknownState indicates a State not registered in this Automaton's
	// index was used as a lookup key.
	ErrUnknownState = errors.New("automaton: unknown state")

	// ErrShapeMismatch is an internal invariant violation (spec §7:
	// ShapeMismatch "should never surface"); callers hitting this have a
	// bug, not a bad input.
	ErrShapeMismatch = errors.New("automaton: shape mismatch (internal)")
)
