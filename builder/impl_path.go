// SPDX-License-Identifier: MIT
// Package: pathql/builder
//
// impl_path.go - implementation of Path(n) constructor.
//
// Contract:
//   - n ≥ 2 (else ErrTooFewVertices).
//   - Adds vertices via cfg.idFn in ascending index order (0..n-1).
//   - Emits edges (i-1) -> i for i=1..n-1 in stable increasing order,
//     labeled cfg.label — the "bamboo" shape of the spec's worked examples.
//
// Complexity: O(n) vertices + O(n-1) edges.

package builder

import (
	"fmt"

	"github.com/katalvlaran/pathql/graph"
)

const (
	methodPath   = "Path"
	minPathNodes = 2
)

// Path returns a Constructor that builds a simple path P_n.
func Path(n int) Constructor {
	return func(g *graph.Graph, cfg builderConfig) error {
		if n < minPathNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodPath, n, minPathNodes, ErrTooFewVertices)
		}

		for i := 1; i < n; i++ {
			uID := cfg.idFn(i - 1)
			vID := cfg.idFn(i)
			if _, err := g.AddEdge(uID, vID, cfg.label); err != nil {
				return fmt.Errorf("%s: AddEdge(%s -> %s): %w", methodPath, uID, vID, err)
			}
		}

		return nil
	}
}
