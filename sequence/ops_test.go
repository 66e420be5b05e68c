// SPDX-License-Identifier: MIT

package sequence_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/trimatrix/sequence"
)

// --- scalar broadcast ---------------------------------------------------------

func TestScalarOps(t *testing.T) {
	t.Parallel()
	v := MustFrom(t, []int{1, 2, 3})

	RequireValues(t, []int{2, 3, 4}, v.AddScalar(1))
	RequireValues(t, []int{0, 1, 2}, v.SubScalar(1))
	RequireValues(t, []int{2, 4, 6}, v.MulScalar(2))

	// Operand untouched.
	RequireValues(t, []int{1, 2, 3}, v)
}

func TestScalarOps_KeepStartIndex(t *testing.T) {
	t.Parallel()
	v := MustFrom(t, []float64{1, 2}, sequence.WithStartIndex(3))
	out := v.MulScalar(0.5)
	require.Equal(t, 3, out.StartIndex())
	require.Equal(t, 1.0, MustAt(t, out, 4))
}

// --- vector add / sub ---------------------------------------------------------

func TestAdd_EqualSize(t *testing.T) {
	t.Parallel()
	v := MustFrom(t, []int{1, 2, 3})
	v1 := MustFrom(t, []int{4, 5, 6})

	res, err := v.Add(v1)
	require.NoError(t, err)
	require.True(t, res.Equal(MustFrom(t, []int{5, 7, 9})))
}

func TestSub_EqualSize(t *testing.T) {
	t.Parallel()
	v := MustFrom(t, []int{1, 2, 3})
	v1 := MustFrom(t, []int{4, 5, 6})

	res, err := v1.Sub(v)
	require.NoError(t, err)
	RequireValues(t, []int{3, 3, 3}, res)
}

func TestAddSubDot_SizeMismatch(t *testing.T) {
	t.Parallel()
	v := MustNew[int](t, 2)
	v1 := MustNew[int](t, 3)

	_, err := v.Add(v1)
	require.ErrorIs(t, err, sequence.ErrSizeMismatch)
	_, err = v.Sub(v1)
	require.ErrorIs(t, err, sequence.ErrSizeMismatch)
	_, err = v.Dot(v1)
	require.ErrorIs(t, err, sequence.ErrSizeMismatch)
}

func TestAddSubDot_Nil(t *testing.T) {
	t.Parallel()
	v := MustNew[int](t, 2)

	_, err := v.Add(nil)
	require.ErrorIs(t, err, sequence.ErrNilSequence)
	_, err = v.Sub(nil)
	require.ErrorIs(t, err, sequence.ErrNilSequence)
	_, err = v.Dot(nil)
	require.ErrorIs(t, err, sequence.ErrNilSequence)
}

func TestAdd_ResultStartIndexFromReceiver(t *testing.T) {
	t.Parallel()
	a := MustFrom(t, []int{1, 1}, sequence.WithStartIndex(2))
	b := MustFrom(t, []int{2, 2})

	res, err := a.Add(b)
	require.NoError(t, err)
	require.Equal(t, 2, res.StartIndex())
	require.Equal(t, 3, MustAt(t, res, 3))
}

// --- dot product ---------------------------------------------------------------

func TestDot(t *testing.T) {
	t.Parallel()
	v := MustFrom(t, []int{1, 2})
	v1 := MustFrom(t, []int{3, 4})

	got, err := v1.Dot(v)
	require.NoError(t, err)
	require.Equal(t, 11, got)

	empty, err := MustNew[int](t, 0).Dot(MustNew[int](t, 0))
	require.NoError(t, err)
	require.Zero(t, empty)
}

func TestDot_Complex(t *testing.T) {
	t.Parallel()
	v := MustFrom(t, []complex128{1 + 1i, 2})
	got, err := v.Dot(v)
	require.NoError(t, err)
	require.Equal(t, complex(4, 2), got) // (1+i)^2 + 4 = 2i + 4
}
