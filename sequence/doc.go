// SPDX-License-Identifier: MIT

// Package sequence provides Sequence, a bounded, offset-indexable vector of
// generic numeric elements.
//
// What & Why:
//
//	A Sequence owns a contiguous buffer of Size() elements addressed through
//	external indices StartIndex() .. StartIndex()+Size()-1. The start index
//	shifts the addressable range without changing its length, which lets a
//	triangular matrix row keep its global column numbers while storing only
//	the entries on and above the diagonal.
//
// Guarantees:
//
//   - Size is bounded by MaxVectorSize; start index is never negative.
//   - Every read and write goes through one bounds check (ErrIndexOutOfRange).
//   - Storage is never shared: Clone and Assign deep-copy the buffer.
//   - Binary operations never mutate their operands and fail with
//     ErrSizeMismatch before any allocation when sizes differ.
//
// Complexity:
//
//	New/Clone/Assign: O(n). At/Set: O(1). Scalar and vector arithmetic: O(n).
package sequence
