// SPDX-License-Identifier: MIT
// Package: triangular
//
// Purpose:
//  - Canonical dimension, nil and row-shape checks shared by all operations.
//  - Return plain sentinels; callers wrap with their own context.

package triangular

import (
	"fmt"

	"github.com/katalvlaran/trimatrix/sequence"
)

// validateSize ensures 0 <= size <= MaxMatrixSize.
func validateSize(size int) error {
	if size < 0 || size > MaxMatrixSize {
		return ErrInvalidSize
	}

	return nil
}

// ValidateNotNil ensures none of ms is nil.
func ValidateNotNil[T sequence.Number](ms ...*Matrix[T]) error {
	for _, m := range ms {
		if m == nil {
			return ErrNilMatrix
		}
	}

	return nil
}

// ValidateSameSize ensures a and b have the same dimension.
// Assumes both are non-nil (caller must ensure).
func ValidateSameSize[T sequence.Number](a, b *Matrix[T]) error {
	if a.size != b.size {
		return ErrSizeMismatch
	}

	return nil
}

// validateRows checks that row i still holds size-i entries starting at
// column i. Row returns live rows, so a caller can reshape one through
// Sequence.Assign; kernels that index rows directly call this first.
func (m *Matrix[T]) validateRows() error {
	for i, row := range m.rows {
		if row.Size() != m.size-i || row.StartIndex() != i {
			return fmt.Errorf("row %d reshaped to size %d at %d: %w", i, row.Size(), row.StartIndex(), ErrSizeMismatch)
		}
	}

	return nil
}

// checkRow reports ErrIndexOutOfRange when i is not a row index
// (ErrNilMatrix on a nil receiver).
func (m *Matrix[T]) checkRow(i int) error {
	if m == nil {
		return ErrNilMatrix
	}
	if i < 0 || i >= m.size {
		return ErrIndexOutOfRange
	}

	return nil
}
