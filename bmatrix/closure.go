// SPDX-License-Identifier: MIT
// Package: bmatrix
//
// Purpose:
//   - Boolean transitive closure via the nnz-driven fixed point of spec §4.A:
//     C ← C + C@C until nnz(C) stops growing.
//
// Contract:
//   - Square matrix in, square matrix out (independent copy).
//   - Self-loops representing ε are the caller's responsibility; this
//     routine never inserts the identity.
//
// Determinism:
//   - Loop order is fixed (iterate-until-no-growth); nnz is the only
//     convergence signal, never a round counter, so the result does not
//     depend on how many matmul rounds it happened to take.
package bmatrix

import "fmt"

const opTransitiveClosure = "TransitiveClosure"

// TransitiveClosure returns the transitive closure of c (a fresh matrix;
// c is not mutated). Converges in O(log n) matmul rounds in the worst case
// (spec §4.A), each round O(nnz * avg-row-size) via MatMul.
func TransitiveClosure(c *BoolMatrix) (*BoolMatrix, error) {
	if c.Rows() != c.Cols() {
		return nil, fmt.Errorf("bmatrix.%s: %w", opTransitiveClosure, ErrBadShape)
	}
	if c.Rows() == 0 {
		return Empty(), nil
	}
	closure := c.Clone()
	for {
		sq, err := MatMul(closure, closure)
		if err != nil {
			return nil, fmt.Errorf("bmatrix.%s: %w", opTransitiveClosure, err)
		}
		grew, err := OrInPlace(closure, sq)
		if err != nil {
			return nil, fmt.Errorf("bmatrix.%s: %w", opTransitiveClosure, err)
		}
		if !grew {
			break
		}
	}

	return closure, nil
}
