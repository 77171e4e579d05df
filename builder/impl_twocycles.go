// SPDX-License-Identifier: MIT
// Package: pathql/builder
//
// impl_twocycles.go — implementation of TwoCycles, the "two rings sharing a
// vertex" fixture named directly in the query-evaluation spec's RPQ worked
// examples (regex (a|b)(aa)* over two same-sized rings joined at vertex 0).
//
// Contract:
//   - sizeA, sizeB ≥ 3 (else ErrTooFewVertices).
//   - Ring A occupies indices 0..sizeA-1, labeled labelA, edges
//     i -> (i+1)%sizeA.
//   - Ring B shares index 0 with ring A; its remaining vertices continue the
//     index sequence (sizeA, sizeA+1, ..., sizeA+sizeB-2) so the two rings
//     never collide outside the shared vertex, labeled labelB.
//
// Complexity: O(sizeA + sizeB) vertices and edges.

package builder

import (
	"fmt"

	"github.com/katalvlaran/pathql/graph"
)

const (
	methodTwoCycles   = "TwoCycles"
	minTwoCyclesNodes = 3
)

// TwoCycles returns a Constructor that builds two simple cycles sharing the
// vertex at index 0.
func TwoCycles(sizeA int, labelA string, sizeB int, labelB string) Constructor {
	return func(g *graph.Graph, cfg builderConfig) error {
		if sizeA < minTwoCyclesNodes || sizeB < minTwoCyclesNodes {
			return fmt.Errorf("%s: sizeA=%d sizeB=%d < min=%d: %w",
				methodTwoCycles, sizeA, sizeB, minTwoCyclesNodes, ErrTooFewVertices)
		}

		ringVertex := func(offset, j int) string {
			if j == 0 {
				return cfg.idFn(0)
			}

			return cfg.idFn(offset - 1 + j)
		}

		for i := 0; i < sizeA; i++ {
			uID := ringVertex(1, i)
			vID := ringVertex(1, (i+1)%sizeA)
			if _, err := g.AddEdge(uID, vID, labelA); err != nil {
				return fmt.Errorf("%s: ring A AddEdge(%s -> %s): %w", methodTwoCycles, uID, vID, err)
			}
		}

		for i := 0; i < sizeB; i++ {
			uID := ringVertex(sizeA, i)
			vID := ringVertex(sizeA, (i+1)%sizeB)
			if _, err := g.AddEdge(uID, vID, labelB); err != nil {
				return fmt.Errorf("%s: ring B AddEdge(%s -> %s): %w", methodTwoCycles, uID, vID, err)
			}
		}

		return nil
	}
}
