// File: ops.go
// Role: elementwise OR, boolean matrix product, Kronecker product, and
// block-diagonal combination (spec §4.A).
//
// Determinism:
//   - All loops traverse rows/cols in ascending index order; only the
//     column order *within* a sparse row iteration is map-order (harmless,
//     since the result is the same set regardless of insertion order).
package bmatrix

import "fmt"

const (
	opOr         = "Or"
	opMatMul     = "MatMul"
	opKron       = "Kron"
	opBlockDiag  = "BlockDiag"
	opNonzeroRow = "nonzeroCols"
)

// Or computes the elementwise boolean OR of a and b (the "+" of spec §4.A).
// Both operands must share shape; the result is a freshly allocated matrix.
// Complexity: O(nnz(a)+nnz(b)).
func Or(a, b *BoolMatrix) (*BoolMatrix, error) {
	if a.Rows() != b.Rows() || a.Cols() != b.Cols() {
		return nil, fmt.Errorf("bmatrix.%s: %w", opOr, ErrDimensionMismatch)
	}
	out, err := New(a.Rows(), a.Cols())
	if err != nil {
		return nil, fmt.Errorf("bmatrix.%s: %w", opOr, err)
	}
	a.Nonzeros(func(i, j int) { _ = out.Set(i, j, true) })
	b.Nonzeros(func(i, j int) { _ = out.Set(i, j, true) })

	return out, nil
}

// OrInPlace ORs src into dst (dst[i,j] |= src[i,j]) and reports whether dst
// grew — the nnz-delta signal used by fixed-point loops so callers never
// have to call NNZ() twice per iteration.
func OrInPlace(dst, src *BoolMatrix) (grew bool, err error) {
	if dst.Rows() != src.Rows() || dst.Cols() != src.Cols() {
		return false, fmt.Errorf("bmatrix.%s: %w", opOr, ErrDimensionMismatch)
	}
	before := dst.NNZ()
	src.Nonzeros(func(i, j int) { _ = dst.Set(i, j, true) })

	return dst.NNZ() != before, nil
}

// MatMul computes the boolean product a @ b (spec §4.A): out[i,k] is true
// iff some j has a[i,j] ∧ b[j,k]. a.Cols() must equal b.Rows().
// Complexity: O(nnz(a) * avg-row-size(b)) via the sparse row/row join below.
func MatMul(a, b *BoolMatrix) (*BoolMatrix, error) {
	if a.Cols() != b.Rows() {
		return nil, fmt.Errorf("bmatrix.%s: %w", opMatMul, ErrDimensionMismatch)
	}
	out, err := New(a.Rows(), b.Cols())
	if err != nil {
		return nil, fmt.Errorf("bmatrix.%s: %w", opMatMul, err)
	}
	for i := 0; i < a.Rows(); i++ {
		row := a.rows[i]
		if row == nil {
			continue
		}
		for j := range row {
			brow := b.rows[j]
			if brow == nil {
				continue
			}
			for k := range brow {
				_ = out.Set(i, k, true)
			}
		}
	}

	return out, nil
}

// Kron computes the Kronecker product a ⊗ b (spec §4.A):
// shape (a.Rows()*b.Rows()) × (a.Cols()*b.Cols()), with
// out[i1*b.Rows()+i2, j1*b.Cols()+j2] = a[i1,j1] ∧ b[i2,j2].
// This is the workhorse of automaton intersection (product-state transitions).
// Complexity: O(nnz(a) * nnz(b)).
func Kron(a, b *BoolMatrix) (*BoolMatrix, error) {
	out, err := New(a.Rows()*b.Rows(), a.Cols()*b.Cols())
	if err != nil {
		return nil, fmt.Errorf("bmatrix.%s: %w", opKron, err)
	}
	bm, bn := b.Rows(), b.Cols()
	a.Nonzeros(func(i1, j1 int) {
		b.Nonzeros(func(i2, j2 int) {
			_ = out.Set(i1*bm+i2, j1*bn+j2, true)
		})
	})

	return out, nil
}

// BlockDiag assembles a square block-diagonal matrix from mats, in order:
// block k occupies rows/cols [offset_k, offset_k+mats[k].Rows()). Every
// mats[k] must be square. Used by the BFS-front direct-sum construction
// (spec §4.E) to combine a regex automaton's block with the graph's block.
func BlockDiag(mats ...*BoolMatrix) (*BoolMatrix, error) {
	total := 0
	for _, m := range mats {
		if m.Rows() != m.Cols() {
			return nil, fmt.Errorf("bmatrix.%s: block not square (%dx%d): %w", opBlockDiag, m.Rows(), m.Cols(), ErrBadShape)
		}
		total += m.Rows()
	}
	out, err := New(total, total)
	if err != nil {
		return nil, fmt.Errorf("bmatrix.%s: %w", opBlockDiag, err)
	}
	offset := 0
	for _, m := range mats {
		o := offset
		m.Nonzeros(func(i, j int) { _ = out.Set(o+i, o+j, true) })
		offset += m.Rows()
	}

	return out, nil
}
