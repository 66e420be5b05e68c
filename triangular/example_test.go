// SPDX-License-Identifier: MIT

package triangular_test

import (
	"fmt"

	"github.com/katalvlaran/trimatrix/triangular"
)

// ExampleMatrix_Mul multiplies two 2×2 upper-triangular matrices.
func ExampleMatrix_Mul() {
	a, _ := triangular.New[int](2)
	b, _ := triangular.New[int](2)
	_ = a.Set(0, 0, 1)
	_ = a.Set(0, 1, 2)
	_ = a.Set(1, 1, 3)
	_ = b.Set(0, 0, 3)
	_ = b.Set(0, 1, 4)
	_ = b.Set(1, 1, 5)

	c, _ := a.Mul(b)
	fmt.Println(c)
	// Output:
	// [3, 14]
	// [_, 15]
}

// ExampleMatrix_Row indexes through a row using global column numbers.
func ExampleMatrix_Row() {
	m, _ := triangular.New[float64](3)
	row, _ := m.Row(1)
	_ = row.Set(2, 0.5)
	v, _ := m.At(1, 2)
	fmt.Println(row.Size(), row.StartIndex(), v)
	// Output: 2 1 0.5
}
