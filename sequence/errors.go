// SPDX-License-Identifier: MIT
// Package sequence: sentinel error set.
// All operations return these sentinels (possibly wrapped with %w and a
// method/index context) and callers match them via errors.Is. User-triggered
// conditions never panic.

package sequence

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidSize is returned when a requested size is negative or exceeds
	// MaxVectorSize.
	ErrInvalidSize = errors.New("sequence: invalid size")

	// ErrInvalidStartIndex is returned when a requested start index is negative.
	ErrInvalidStartIndex = errors.New("sequence: invalid start index")

	// ErrIndexOutOfRange indicates that an external index lies outside
	// [StartIndex, StartIndex+Size).
	ErrIndexOutOfRange = errors.New("sequence: index out of range")

	// ErrSizeMismatch indicates a binary operation between sequences of
	// different sizes.
	ErrSizeMismatch = errors.New("sequence: size mismatch")

	// ErrNilSequence indicates that a nil *Sequence (receiver or argument) was used.
	ErrNilSequence = errors.New("sequence: nil sequence")
)

// ---------- error context tags ----------

const (
	ctxNew    = "New"
	ctxAt     = "At"
	ctxSet    = "Set"
	ctxAssign = "Assign"
	ctxAdd    = "Add"
	ctxSub    = "Sub"
	ctxDot    = "Dot"
	ctxScan   = "Scan"
	ctxWrite  = "WriteTo"
)

// sequenceErrorf wraps err with a uniform "Sequence.<method>" context.
func sequenceErrorf(method string, err error) error {
	return fmt.Errorf("Sequence.%s: %w", method, err)
}

// indexErrorf wraps err with the method context and the offending index.
func indexErrorf(method string, index int, err error) error {
	return fmt.Errorf("Sequence.%s(%d): %w", method, index, err)
}
