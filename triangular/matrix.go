// SPDX-License-Identifier: MIT

// Package triangular - row storage & two-level bounds checking.
//
// Purpose:
//   - Compose a matrix from Size() rows; row i is a sequence of size-i elements
//     with start index i.
//   - Keep both bounds checks independent: the row index is checked here, the
//     column index by the row itself.
//
// Complexity quicksheet:
//   - New/Clone/Assign/Equal: O(n²); Row/At/Set: O(1).

package triangular

import (
	"fmt"

	"github.com/katalvlaran/trimatrix/sequence"
)

// Matrix is a square upper-triangular matrix of T.
//   - size is the dimension (0 <= size <= MaxMatrixSize).
//   - rows[i] is exclusively owned, has size-i elements and start index i.
type Matrix[T sequence.Number] struct {
	size int
	rows []*sequence.Sequence[T]
}

var _ fmt.Stringer = (*Matrix[int])(nil)

// New creates a size×size upper-triangular zero matrix.
// MAIN DESCRIPTION:
//   - Public constructor; validates the dimension, then allocates size rows of
//     decreasing length.
//
// Implementation:
//   - Stage 1: validate 0 <= size <= MaxMatrixSize.
//   - Stage 2: allocate row i as sequence.New(size-i, WithStartIndex(i)).
//
// Behavior highlights:
//   - Total storage is size*(size+1)/2 elements.
//   - No matrix is returned on any error; partially built rows are dropped.
//
// Errors:
//   - ErrInvalidSize (wrapped with "Matrix.New").
//
// Complexity:
//   - Time O(n²), Space O(n²/2).
func New[T sequence.Number](size int) (*Matrix[T], error) {
	if err := validateSize(size); err != nil {
		return nil, matrixErrorf(ctxNew, err)
	}
	rows := make([]*sequence.Sequence[T], size)
	for i := range rows {
		row, err := sequence.New[T](size-i, sequence.WithStartIndex(i))
		if err != nil {
			return nil, matrixErrorf(ctxNew, err)
		}
		rows[i] = row
	}

	return &Matrix[T]{size: size, rows: rows}, nil
}

// Size returns the matrix dimension; 0 for a nil matrix. Complexity: O(1).
func (m *Matrix[T]) Size() int {
	if m == nil {
		return 0
	}

	return m.size
}

// Row returns the live row i, addressed with global column indices
// i..Size()-1. Writes through the returned row are visible in m.
//
// Reshaping the row (sequence.Sequence.Assign with another size or start
// index) breaks the triangular layout. Add, Sub, Mul, WriteTo and Scan
// detect it and fail with ErrSizeMismatch; Equal and Clone work on the rows
// as they are.
//
// Errors:
//   - ErrIndexOutOfRange when i is outside [0, Size()).
//   - ErrNilMatrix on a nil receiver.
func (m *Matrix[T]) Row(i int) (*sequence.Sequence[T], error) {
	if err := m.checkRow(i); err != nil {
		return nil, fmt.Errorf("Matrix.%s(%d): %w", ctxRow, i, err)
	}

	return m.rows[i], nil
}

// At returns entry (i, j). Entries below the diagonal are not stored, so
// j < i is ErrIndexOutOfRange like any other column outside the row.
func (m *Matrix[T]) At(i, j int) (T, error) {
	if err := m.checkRow(i); err != nil {
		var zero T
		return zero, cellErrorf(ctxAt, i, j, err)
	}
	v, err := m.rows[i].At(j)
	if err != nil {
		return v, cellErrorf(ctxAt, i, j, err)
	}

	return v, nil
}

// Set stores v at entry (i, j) with the same bounds as At.
func (m *Matrix[T]) Set(i, j int, v T) error {
	if err := m.checkRow(i); err != nil {
		return cellErrorf(ctxSet, i, j, err)
	}
	if err := m.rows[i].Set(j, v); err != nil {
		return cellErrorf(ctxSet, i, j, err)
	}

	return nil
}

// Clone returns a deep copy; no row storage is shared with m.
// A nil receiver yields nil.
func (m *Matrix[T]) Clone() *Matrix[T] {
	if m == nil {
		return nil
	}
	rows := make([]*sequence.Sequence[T], len(m.rows))
	for i, row := range m.rows {
		rows[i] = row.Clone()
	}

	return &Matrix[T]{size: m.size, rows: rows}
}

// Equal reports whether m and other have the same dimension and every pair
// of rows is equal under sequence.Sequence.Equal. Rows are compared as
// stored, including rows reshaped through Row.
func (m *Matrix[T]) Equal(other *Matrix[T]) bool {
	if m == other {
		return true
	}
	if m == nil || other == nil || m.size != other.size {
		return false
	}
	for i := range m.rows {
		if !m.rows[i].Equal(other.rows[i]) {
			return false
		}
	}

	return true
}

// Assign replaces m with a deep copy of src; the dimension may change.
// Self-assignment is a no-op. On error m is left unchanged.
//
// Errors:
//   - ErrNilMatrix.
func (m *Matrix[T]) Assign(src *Matrix[T]) error {
	if err := ValidateNotNil(m, src); err != nil {
		return matrixErrorf(ctxAssign, err)
	}
	if m == src {
		return nil
	}
	c := src.Clone()
	m.size, m.rows = c.size, c.rows

	return nil
}
