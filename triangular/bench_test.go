// SPDX-License-Identifier: MIT

package triangular_test

import (
	"testing"

	"github.com/katalvlaran/trimatrix/triangular"
)

func benchPair(b *testing.B, n int) (*triangular.Matrix[float64], *triangular.Matrix[float64]) {
	b.Helper()
	x, err := triangular.New[float64](n)
	if err != nil {
		b.Fatal(err)
	}
	for i := 0; i < n; i++ {
		for j := i; j < n; j++ {
			_ = x.Set(i, j, float64(i+j+1))
		}
	}

	return x, x.Clone()
}

func BenchmarkMul_128(b *testing.B) {
	x, y := benchPair(b, 128)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := x.Mul(y); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkAdd_128(b *testing.B) {
	x, y := benchPair(b, 128)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := x.Add(y); err != nil {
			b.Fatal(err)
		}
	}
}
