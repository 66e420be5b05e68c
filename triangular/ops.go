// SPDX-License-Identifier: MIT
// Package: triangular
//
// Purpose:
//   - Matrix-matrix Add/Sub delegating per row to sequence kernels.
//   - Mul restricted to the upper-triangular domain.
//
// Determinism & Performance:
//   - Fixed loop orders; operands are never mutated.
//   - Mul snapshots each row once and accumulates row-major (i→k→j), so the
//     inner loop walks two contiguous buffers.

package triangular

import (
	"fmt"

	"github.com/katalvlaran/trimatrix/sequence"
)

// checkOperands runs the shared guard sequence NotNil → SameSize → row shapes.
func checkOperands[T sequence.Number](method string, a, b *Matrix[T]) error {
	if err := ValidateNotNil(a, b); err != nil {
		return matrixErrorf(method, err)
	}
	if err := ValidateSameSize(a, b); err != nil {
		return matrixErrorf(method, err)
	}
	if err := a.validateRows(); err != nil {
		return matrixErrorf(method, err)
	}
	if err := b.validateRows(); err != nil {
		return matrixErrorf(method, err)
	}

	return nil
}

// rowWise combines a and b row by row with f.
func rowWise[T sequence.Number](
	method string,
	a, b *Matrix[T],
	f func(x, y *sequence.Sequence[T]) (*sequence.Sequence[T], error),
) (*Matrix[T], error) {
	if err := checkOperands(method, a, b); err != nil {
		return nil, err
	}
	out := &Matrix[T]{size: a.size, rows: make([]*sequence.Sequence[T], a.size)}
	for i := range a.rows {
		row, err := f(a.rows[i], b.rows[i])
		if err != nil {
			return nil, fmt.Errorf("Matrix.%s row %d: %w", method, i, err)
		}
		out.rows[i] = row
	}

	return out, nil
}

// Add returns m + other. Corresponding rows have equal length whenever the
// dimensions match, so each row is summed by sequence.Sequence.Add.
//
// Errors:
//   - ErrNilMatrix, ErrSizeMismatch.
func (m *Matrix[T]) Add(other *Matrix[T]) (*Matrix[T], error) {
	return rowWise(ctxAdd, m, other, (*sequence.Sequence[T]).Add)
}

// Sub returns m - other.
//
// Errors:
//   - ErrNilMatrix, ErrSizeMismatch.
func (m *Matrix[T]) Sub(other *Matrix[T]) (*Matrix[T], error) {
	return rowWise(ctxSub, m, other, (*sequence.Sequence[T]).Sub)
}

// Mul returns the product m·other.
// MAIN DESCRIPTION:
//   - For j >= i, C(i,j) = Σ_{k=i..j} A(i,k)·B(k,j).
//
// Implementation:
//   - Stage 1: guard operands (nil, dimension, row shapes).
//   - Stage 2: snapshot every row of other once.
//   - Stage 3: for each row i, for k in [i, n), scatter A(i,k)·B(k,j) into
//     C(i,j) for j in [k, n).
//
// Behavior highlights:
//   - A(i,k) is stored only for k >= i and B(k,j) only for j >= k, so the
//     k-range [i, j] is exactly where both factors have storage. No
//     sub-diagonal entry is ever read.
//   - The product of two upper-triangular matrices is upper-triangular, so
//     the result loses nothing.
//
// Errors:
//   - ErrNilMatrix, ErrSizeMismatch.
//
// Complexity:
//   - Time O(n³/6), Space O(n²).
func (m *Matrix[T]) Mul(other *Matrix[T]) (*Matrix[T], error) {
	if err := checkOperands(ctxMul, m, other); err != nil {
		return nil, err
	}
	n := m.size

	// b[k][j-k] == B(k, j).
	b := make([][]T, n)
	for k, row := range other.rows {
		b[k] = row.Values()
	}

	out := &Matrix[T]{size: n, rows: make([]*sequence.Sequence[T], n)}
	for i := 0; i < n; i++ {
		a := m.rows[i].Values() // a[k-i] == A(i, k)
		acc := make([]T, n-i)   // acc[j-i] == C(i, j)
		for k := i; k < n; k++ {
			aik := a[k-i]
			bk := b[k]
			for j := k; j < n; j++ {
				acc[j-i] += aik * bk[j-k]
			}
		}
		row, err := sequence.FromValues(acc, sequence.WithStartIndex(i))
		if err != nil {
			return nil, matrixErrorf(ctxMul, err)
		}
		out.rows[i] = row
	}

	return out, nil
}
