// SPDX-License-Identifier: MIT
// Package: sequence
//
// Purpose:
//  - Provide a single source of truth for shape and bounds checks.
//  - Return plain sentinel errors; call sites wrap them with their own context.
//
// Determinism & Performance:
//  - All checks are pure, O(1) and allocate nothing.

package sequence

import "math"

// validateSize ensures 0 <= size <= MaxVectorSize.
func validateSize(size int) error {
	if size < 0 || size > MaxVectorSize {
		return ErrInvalidSize
	}

	return nil
}

// validateStartIndex ensures start >= 0 and that the last external index
// start+size-1 is representable as an int.
func validateStartIndex(start, size int) error {
	if start < 0 || start > math.MaxInt-size {
		return ErrInvalidStartIndex
	}

	return nil
}

// ValidateNotNil ensures none of seqs is nil. Use as the first step of any
// binary operation.
func ValidateNotNil[T Number](seqs ...*Sequence[T]) error {
	for _, s := range seqs {
		if s == nil {
			return ErrNilSequence
		}
	}

	return nil
}

// ValidateSameSize ensures a and b hold the same number of elements.
// Assumes both are non-nil (caller must ensure).
func ValidateSameSize[T Number](a, b *Sequence[T]) error {
	if a.size != b.size {
		return ErrSizeMismatch
	}

	return nil
}

// offsetOf translates the external index i into a local buffer offset or
// returns ErrIndexOutOfRange. The upper bound is compared on the local
// offset so that no sum of index and size is ever formed.
func (s *Sequence[T]) offsetOf(i int) (int, error) {
	if s == nil {
		return 0, ErrNilSequence
	}
	if i < s.startIndex {
		return 0, ErrIndexOutOfRange
	}
	off := i - s.startIndex
	if off >= s.size {
		return 0, ErrIndexOutOfRange
	}

	return off, nil
}
