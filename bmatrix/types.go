// File: types.go
// Role: BoolMatrix type, constructors, and element-level accessors.
package bmatrix

import "fmt"

// BoolMatrix is a sparse rows×cols boolean matrix.
//
// rows[i] holds the set of columns j for which (i,j) is true. A missing key
// means false. This keeps Kronecker products — whose shape is the product
// of the operands' shapes — proportional in cost to the number of nonzero
// entries actually produced, not to rows*cols.
type BoolMatrix struct {
	rowCount int
	colCount int
	rows     []map[int]struct{}
}

// New allocates a rows×cols all-false BoolMatrix.
// Complexity: O(rows) allocation, O(1) per-row (lazy maps).
func New(rows, cols int) (*BoolMatrix, error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("bmatrix.New(%d,%d): %w", rows, cols, ErrBadShape)
	}
	m := &BoolMatrix{
		rowCount: rows,
		colCount: cols,
		rows:     make([]map[int]struct{}, rows),
	}

	return m, nil
}

// Empty returns the degenerate 0×0 BoolMatrix, used by automaton.Adjacency
// for an automaton with no labels at all (spec §4.C edge case).
func Empty() *BoolMatrix {
	return &BoolMatrix{}
}

// Identity returns the n×n identity BoolMatrix (true on the diagonal).
// Used by callers that need to encode ε explicitly — bmatrix itself never
// infers identity relationships.
func Identity(n int) (*BoolMatrix, error) {
	m, err := New(n, n)
	if err != nil {
		return nil, fmt.Errorf("bmatrix.Identity(%d): %w", n, err)
	}
	for i := 0; i < n; i++ {
		m.Set(i, i, true)
	}

	return m, nil
}

// Rows returns the row count.
func (m *BoolMatrix) Rows() int { return m.rowCount }

// Cols returns the column count.
func (m *BoolMatrix) Cols() int { return m.colCount }

// Get reports whether (i,j) is set. Out-of-range indices return false
// rather than erroring — callers that must detect misuse should validate
// bounds first via Rows()/Cols().
func (m *BoolMatrix) Get(i, j int) bool {
	if i < 0 || i >= m.rowCount || j < 0 || j >= m.colCount {
		return false
	}
	if m.rows[i] == nil {
		return false
	}
	_, ok := m.rows[i][j]

	return ok
}

// Set assigns (i,j) to v. Returns ErrOutOfRange for an invalid index.
func (m *BoolMatrix) Set(i, j int, v bool) error {
	if i < 0 || i >= m.rowCount || j < 0 || j >= m.colCount {
		return fmt.Errorf("bmatrix.Set(%d,%d): %w", i, j, ErrOutOfRange)
	}
	if !v {
		if m.rows[i] != nil {
			delete(m.rows[i], j)
		}
		return nil
	}
	if m.rows[i] == nil {
		m.rows[i] = make(map[int]struct{})
	}
	m.rows[i][j] = struct{}{}

	return nil
}

// NNZ returns the number of true entries. Used as the authoritative
// fixed-point signal by TransitiveClosure and the CFPQ matrix engine.
// Complexity: O(rows) to sum row sizes.
func (m *BoolMatrix) NNZ() int {
	n := 0
	for _, row := range m.rows {
		n += len(row)
	}

	return n
}

// Nonzeros calls yield(i,j) for every true entry. Row order is ascending;
// within a row, column order is unspecified (map iteration) — per spec §5,
// no algorithm here may depend on nonzero visitation order for correctness.
func (m *BoolMatrix) Nonzeros(yield func(i, j int)) {
	for i, row := range m.rows {
		for j := range row {
			yield(i, j)
		}
	}
}

// Clone returns an independent deep copy.
func (m *BoolMatrix) Clone() *BoolMatrix {
	out := &BoolMatrix{rowCount: m.rowCount, colCount: m.colCount, rows: make([]map[int]struct{}, m.rowCount)}
	for i, row := range m.rows {
		if row == nil {
			continue
		}
		nr := make(map[int]struct{}, len(row))
		for j := range row {
			nr[j] = struct{}{}
		}
		out.rows[i] = nr
	}

	return out
}
