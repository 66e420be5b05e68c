// Package trimatrix is a small numeric library with two generic containers.
//
// 🚀 What is inside?
//
//	• sequence/    Sequence: a bounded vector with an offset start index,
//	                bounds-checked At/Set, scalar and vector arithmetic,
//	                dot product, deep Clone/Assign.
//	• triangular/  Matrix: a square upper-triangular matrix stored as one
//	                Sequence per row (row i keeps size-i entries), with
//	                Add/Sub/Mul restricted to the stored triangle.
//
// ✨ Guarantees
//
//   - No panics on user input, nil receivers included: every violation is a
//     sentinel error matched with errors.Is (ErrInvalidSize,
//     ErrInvalidStartIndex, ErrIndexOutOfRange, ErrSizeMismatch,
//     ErrNilSequence, ErrNilMatrix).
//   - Value semantics: copies never share storage.
//   - Pure Go, single-threaded, no I/O beyond optional text streaming.
//
// Quick ASCII example (size 3):
//
//	[a00 a01 a02]
//	[ _  a11 a12]
//	[ _   _  a22]
//
// Only the six cells shown are stored; "_" cells do not exist.
package trimatrix

import (
	"github.com/katalvlaran/trimatrix/sequence"
	"github.com/katalvlaran/trimatrix/triangular"
)

// Process-wide size limits, re-exported from the packages that enforce them.
const (
	// MaxVectorSize bounds sequence.New.
	MaxVectorSize = sequence.MaxVectorSize
	// MaxMatrixSize bounds triangular.New.
	MaxMatrixSize = triangular.MaxMatrixSize
)
