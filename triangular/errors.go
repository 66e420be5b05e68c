// SPDX-License-Identifier: MIT
// Package triangular: sentinel error set.
// Shape and bounds sentinels are shared with package sequence so that
// errors.Is matches regardless of which layer detected the violation.

package triangular

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/trimatrix/sequence"
)

var (
	// ErrInvalidSize is returned when a dimension is negative or exceeds MaxMatrixSize.
	ErrInvalidSize = sequence.ErrInvalidSize

	// ErrIndexOutOfRange indicates a row index outside [0, Size()) or a column
	// outside the row's stored range [i, Size()).
	ErrIndexOutOfRange = sequence.ErrIndexOutOfRange

	// ErrSizeMismatch indicates a binary operation between matrices of different
	// dimension, or a row whose shape no longer matches its position.
	ErrSizeMismatch = sequence.ErrSizeMismatch

	// ErrNilMatrix indicates that a nil *Matrix (receiver or argument) was used.
	ErrNilMatrix = errors.New("triangular: nil matrix")
)

// ---------- error context tags ----------

const (
	ctxNew    = "New"
	ctxRow    = "Row"
	ctxAt     = "At"
	ctxSet    = "Set"
	ctxAssign = "Assign"
	ctxAdd    = "Add"
	ctxSub    = "Sub"
	ctxMul    = "Mul"
	ctxScan   = "Scan"
	ctxWrite  = "WriteTo"
)

// matrixErrorf wraps err with a uniform "Matrix.<method>" context.
func matrixErrorf(method string, err error) error {
	return fmt.Errorf("Matrix.%s: %w", method, err)
}

// cellErrorf wraps err with the method context and (row, col) coordinates.
func cellErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Matrix.%s(%d,%d): %w", method, row, col, err)
}
