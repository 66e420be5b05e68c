// SPDX-License-Identifier: MIT

// Package sequence - bounded storage & safe accessors.
//
// Purpose:
//   - Own a contiguous buffer of exactly Size() elements.
//   - Translate external indices through the start offset: local = i - StartIndex().
//   - Guarantee safety at the public surface: At/Set return errors instead of panicking.
//
// Complexity quicksheet:
//   - New: O(n) zero-init; At/Set: O(1); Clone/Assign/Values: O(n); Equal: O(n).

package sequence

import "fmt"

// Sequence is a bounded vector of T addressed through an offset start index.
//   - size is the element count (0 <= size <= MaxVectorSize).
//   - startIndex is added to every valid external index (>= 0).
//   - data is exclusively owned; len(data) == size.
type Sequence[T Number] struct {
	size       int // element count
	startIndex int // first valid external index
	data       []T // owned storage, never aliased by another Sequence
}

// Compile-time assertion for fmt.Stringer conformance.
var _ fmt.Stringer = (*Sequence[int])(nil)

// New creates a zero-filled sequence of the given size.
// MAIN DESCRIPTION:
//   - Public constructor with strict size and start-index validation.
//
// Implementation:
//   - Stage 1: gather options (start index defaults to DefaultStartIndex).
//   - Stage 2: validate size in [0, MaxVectorSize] and start index >= 0.
//   - Stage 3: allocate a zero-filled buffer.
//
// Behavior highlights:
//   - Validation precedes allocation, so a failed call allocates nothing.
//   - A zero size is legal and yields an empty sequence with no valid index.
//
// Errors:
//   - ErrInvalidSize, ErrInvalidStartIndex (wrapped with "Sequence.New").
//   - ErrInvalidStartIndex also covers a start so large that start+size-1
//     does not fit in an int.
//
// Complexity:
//   - Time O(n), Space O(n).
func New[T Number](size int, opts ...Option) (*Sequence[T], error) {
	o := gatherOptions(opts...)
	if err := validateSize(size); err != nil {
		return nil, sequenceErrorf(ctxNew, err)
	}
	if err := validateStartIndex(o.startIndex, size); err != nil {
		return nil, sequenceErrorf(ctxNew, err)
	}

	return &Sequence[T]{
		size:       size,
		startIndex: o.startIndex,
		data:       make([]T, size),
	}, nil
}

// FromValues creates a sequence holding a copy of values.
// The caller keeps ownership of values; later writes to it are not observed.
func FromValues[T Number](values []T, opts ...Option) (*Sequence[T], error) {
	s, err := New[T](len(values), opts...)
	if err != nil {
		return nil, err
	}
	copy(s.data, values)

	return s, nil
}

// Size returns the element count; 0 for a nil sequence. Complexity: O(1).
func (s *Sequence[T]) Size() int {
	if s == nil {
		return 0
	}

	return s.size
}

// StartIndex returns the first valid external index; 0 for a nil sequence.
// Complexity: O(1).
func (s *Sequence[T]) StartIndex() int {
	if s == nil {
		return 0
	}

	return s.startIndex
}

// At returns the element at external index i or ErrIndexOutOfRange
// (ErrNilSequence on a nil receiver).
func (s *Sequence[T]) At(i int) (T, error) {
	off, err := s.offsetOf(i)
	if err != nil {
		var zero T
		return zero, indexErrorf(ctxAt, i, err)
	}

	return s.data[off], nil
}

// Set stores v at external index i or returns ErrIndexOutOfRange.
// Set shares the bounds check with At, so reads and writes accept exactly
// the same indices.
func (s *Sequence[T]) Set(i int, v T) error {
	off, err := s.offsetOf(i)
	if err != nil {
		return indexErrorf(ctxSet, i, err)
	}
	s.data[off] = v

	return nil
}

// Values returns a copy of the elements in index order; nil for a nil sequence.
func (s *Sequence[T]) Values() []T {
	if s == nil {
		return nil
	}
	out := make([]T, s.size)
	copy(out, s.data)

	return out
}

// Clone returns a deep copy with identical size, start index and values.
// A nil receiver yields nil.
func (s *Sequence[T]) Clone() *Sequence[T] {
	if s == nil {
		return nil
	}

	return &Sequence[T]{
		size:       s.size,
		startIndex: s.startIndex,
		data:       s.Values(),
	}
}

// Equal reports whether s and other hold the same number of elements with
// pairwise equal values. The start index only shapes which indices are valid
// and does not take part in the comparison. Two nil sequences are equal.
func (s *Sequence[T]) Equal(other *Sequence[T]) bool {
	if s == other {
		return true
	}
	if s == nil || other == nil {
		return false
	}
	if s.size != other.size {
		return false
	}
	for k := range s.data {
		if s.data[k] != other.data[k] {
			return false
		}
	}

	return true
}

// Assign replaces the size, start index and contents of s with a deep copy
// of src.
// MAIN DESCRIPTION:
//   - Value-semantics assignment; sizes need not match beforehand.
//
// Implementation:
//   - Stage 1: reject nil receiver or source.
//   - Stage 2: self-assignment returns immediately, leaving state untouched.
//   - Stage 3: build the new buffer first, then swap all fields at once.
//
// Behavior highlights:
//   - All-or-nothing: on error s is not modified.
//
// Errors:
//   - ErrNilSequence.
func (s *Sequence[T]) Assign(src *Sequence[T]) error {
	if err := ValidateNotNil(s, src); err != nil {
		return sequenceErrorf(ctxAssign, err)
	}
	if s == src {
		return nil
	}
	data := src.Values()
	s.size, s.startIndex, s.data = src.size, src.startIndex, data

	return nil
}
