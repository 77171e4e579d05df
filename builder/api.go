// SPDX-License-Identifier: MIT
// Package: pathql/builder
//
// api.go - thin public entry-points for the builder package.
//
// Design contract (strict):
//   - One orchestrator: BuildGraph(bopts, cons...). Creates g, resolves cfg,
//     runs cons in order.
//   - All public factories are declared here, implemented in impl_*.go.
//   - Functional options (BuilderOption) resolve into an immutable
//     builderConfig (no global state).
//   - Determinism: same inputs/options and constructor order ⇒ identical
//     graphs.
//   - Safety: never panic; return sentinel errors from constructors.

package builder

import (
	"fmt"

	"github.com/katalvlaran/pathql/graph"
)

// Constructor applies a deterministic graph mutation using the resolved
// builderConfig. Constructors MUST:
//   - Validate parameters early and return sentinel errors (no panics).
//   - Preserve determinism for the same config and call order.
//
// Rationale: isolates topology logic behind a uniform function type.
type Constructor func(g *graph.Graph, cfg builderConfig) error

// BuildGraph creates a new graph.Graph, resolves the builder configuration
// from bopts, and applies all constructors in order. Any constructor error
// is wrapped with the context "BuildGraph: %w" and returned immediately.
func BuildGraph(bopts []BuilderOption, cons ...Constructor) (*graph.Graph, error) {
	g := graph.New()
	cfg := newBuilderConfig(bopts...)

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildGraph: nil constructor at index %d", i)
		}
		if err := fn(g, cfg); err != nil {
			return nil, fmt.Errorf("BuildGraph: %w", err)
		}
	}

	return g, nil
}

// =============================================================================
// Topology factories (declarations) - implemented in impl_*.go
// =============================================================================

// Path builds a simple path P_n (n ≥ 2), labeled 0 -> 1 -> ... -> n-1.
//func Path(n int) Constructor

// Cycle builds an n-vertex simple cycle C_n (n ≥ 3), labeled 0 -> 1 -> ... -> n-1 -> 0.
//func Cycle(n int) Constructor

// TwoCycles builds two simple cycles sharing vertex "0": a ring of size
// sizeA labeled labelA and a ring of size sizeB labeled labelB, each
// disjoint from the other except at the shared vertex.
//func TwoCycles(sizeA int, labelA string, sizeB int, labelB string) Constructor
