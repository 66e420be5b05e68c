// SPDX-License-Identifier: MIT
// Package: sequence
//
// Purpose:
//   - Scalar broadcast (AddScalar/SubScalar/MulScalar) and element-wise vector
//     kernels (Add/Sub) plus the dot product.
//
// Determinism & Performance:
//   - Fixed loop order 0..n-1 over the flat buffer.
//   - Operands are never mutated; every kernel allocates exactly one result.

package sequence

// mapScalar returns a new sequence with f applied to every element.
// Size and start index are preserved. A nil receiver yields nil.
func (s *Sequence[T]) mapScalar(f func(T) T) *Sequence[T] {
	if s == nil {
		return nil
	}
	out := &Sequence[T]{
		size:       s.size,
		startIndex: s.startIndex,
		data:       make([]T, s.size),
	}
	for k, v := range s.data {
		out.data[k] = f(v)
	}

	return out
}

// AddScalar returns s + c element-wise.
func (s *Sequence[T]) AddScalar(c T) *Sequence[T] {
	return s.mapScalar(func(v T) T { return v + c })
}

// SubScalar returns s - c element-wise.
func (s *Sequence[T]) SubScalar(c T) *Sequence[T] {
	return s.mapScalar(func(v T) T { return v - c })
}

// MulScalar returns s * c element-wise.
func (s *Sequence[T]) MulScalar(c T) *Sequence[T] {
	return s.mapScalar(func(v T) T { return v * c })
}

// zipWith checks operand compatibility and combines a and b element-wise.
// The result takes its start index from a.
func zipWith[T Number](method string, a, b *Sequence[T], f func(x, y T) T) (*Sequence[T], error) {
	if err := ValidateNotNil(a, b); err != nil {
		return nil, sequenceErrorf(method, err)
	}
	if err := ValidateSameSize(a, b); err != nil {
		return nil, sequenceErrorf(method, err)
	}
	out := &Sequence[T]{
		size:       a.size,
		startIndex: a.startIndex,
		data:       make([]T, a.size),
	}
	for k := range a.data {
		out.data[k] = f(a.data[k], b.data[k])
	}

	return out, nil
}

// Add returns the element-wise sum s + other.
// Errors: ErrNilSequence, ErrSizeMismatch.
func (s *Sequence[T]) Add(other *Sequence[T]) (*Sequence[T], error) {
	return zipWith(ctxAdd, s, other, func(x, y T) T { return x + y })
}

// Sub returns the element-wise difference s - other.
// Errors: ErrNilSequence, ErrSizeMismatch.
func (s *Sequence[T]) Sub(other *Sequence[T]) (*Sequence[T], error) {
	return zipWith(ctxSub, s, other, func(x, y T) T { return x - y })
}

// Dot returns the scalar product sum_k s[k]*other[k].
// Two empty sequences have a zero dot product.
// Errors: ErrNilSequence, ErrSizeMismatch.
func (s *Sequence[T]) Dot(other *Sequence[T]) (T, error) {
	var acc T
	if err := ValidateNotNil(s, other); err != nil {
		return acc, sequenceErrorf(ctxDot, err)
	}
	if err := ValidateSameSize(s, other); err != nil {
		return acc, sequenceErrorf(ctxDot, err)
	}
	for k := range s.data {
		acc += s.data[k] * other.data[k]
	}

	return acc, nil
}
