// SPDX-License-Identifier: MIT
// Package triangular_test contains test helpers.

package triangular_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/trimatrix/triangular"
)

// MustNew allocates an n×n triangular matrix or fails the test.
func MustNew(t *testing.T, n int) *triangular.Matrix[int] {
	t.Helper()
	m, err := triangular.New[int](n)
	require.NoError(t, err)

	return m
}

// MustFill builds an n×n matrix from the upper triangle given row by row;
// upper[i] holds columns i..n-1.
func MustFill(t *testing.T, upper [][]int) *triangular.Matrix[int] {
	t.Helper()
	m := MustNew(t, len(upper))
	for i, cols := range upper {
		for k, v := range cols {
			require.NoError(t, m.Set(i, i+k, v))
		}
	}

	return m
}

// RequireUpper compares every stored row of m against want (same layout as MustFill).
func RequireUpper(t *testing.T, want [][]int, m *triangular.Matrix[int]) {
	t.Helper()
	got := make([][]int, m.Size())
	for i := range got {
		row, err := m.Row(i)
		require.NoError(t, err)
		got[i] = row.Values()
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("upper triangle mismatch (-want +got):\n%s", diff)
	}
}
