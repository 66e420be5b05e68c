// SPDX-License-Identifier: MIT
// Package sequence_test contains test helpers.
//
// Purpose:
//   • Provide small deterministic fixtures for constructors and kernels.

package sequence_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/trimatrix/sequence"
)

// MustNew allocates a sequence or fails the test.
func MustNew[T sequence.Number](t *testing.T, size int, opts ...sequence.Option) *sequence.Sequence[T] {
	t.Helper()
	s, err := sequence.New[T](size, opts...)
	require.NoError(t, err)

	return s
}

// MustFrom builds a sequence holding values or fails the test.
func MustFrom[T sequence.Number](t *testing.T, values []T, opts ...sequence.Option) *sequence.Sequence[T] {
	t.Helper()
	s, err := sequence.FromValues(values, opts...)
	require.NoError(t, err)

	return s
}

// MustAt reads index i or fails the test.
func MustAt[T sequence.Number](t *testing.T, s *sequence.Sequence[T], i int) T {
	t.Helper()
	v, err := s.At(i)
	require.NoError(t, err)

	return v
}

// RequireValues compares the full value snapshot of s against want.
func RequireValues[T sequence.Number](t *testing.T, want []T, s *sequence.Sequence[T]) {
	t.Helper()
	if diff := cmp.Diff(want, s.Values()); diff != "" {
		t.Fatalf("values mismatch (-want +got):\n%s", diff)
	}
}
