// SPDX-License-Identifier: MIT

// Package triangular provides Matrix, a square upper-triangular matrix stored
// row by row in sequence.Sequence values.
//
// Storage layout:
//
//	Row i keeps only the size-i entries (i,i), (i,i+1), ..., (i,size-1). The
//	row's start index is i, so the row is addressed with global column numbers
//	and a column below the diagonal is simply outside the row's bounds.
//
//	    size = 3
//	    row 0: [a00 a01 a02]
//	    row 1:     [a11 a12]
//	    row 2:         [a22]
//
// Sub-diagonal entries are not stored and are never reported as an implicit
// zero: At(i, j) with j < i fails with ErrIndexOutOfRange.
//
// Complexity:
//
//	New/Clone/Assign/Add/Sub: O(n²). Row/At/Set: O(1). Mul: O(n³/6).
package triangular
