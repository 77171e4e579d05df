// Package bmatrix implements a sparse boolean matrix algebra: elementwise
// OR, boolean matrix product, Kronecker product, block-diagonal
// combination, and a nnz-driven transitive-closure fixed point.
//
// BoolMatrix underlies the per-label boolean decomposition of an automaton
// (package automaton): each label's transition relation is one BoolMatrix,
// and automaton intersection/closure reduce to the operations here.
//
// Representation: each row is a sparse set of column indices
// (map[int]struct{}), which keeps Kronecker products — whose row/col counts
// multiply — cheap to build when the operands are themselves sparse. nnz()
// is authoritative for detecting fixed points (spec §4.A); no operation here
// ever infers ε-closure — callers that need identity self-loops add them
// explicitly (see Identity).
package bmatrix
