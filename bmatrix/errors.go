// SPDX-License-Identifier: MIT
// Package bmatrix: sentinel error set.
//
// ERROR PRIORITY:
// bad shape -> out of range -> dimension mismatch.
package bmatrix

import "errors"

var (
	// ErrBadShape is returned when requested dimensions are invalid (rows or cols <= 0).
	ErrBadShape = errors.New("bmatrix: invalid shape")

	// ErrOutOfRange indicates a row or column index outside [0, dim).
	ErrOutOfRange = errors.New("bmatrix: index out of range")

	// ErrDimensionMismatch indicates incompatible dimensions between operands
	// (Or: shape must match; MatMul: a.Cols != b.Rows).
	ErrDimensionMismatch = errors.New("bmatrix: dimension mismatch")
)
