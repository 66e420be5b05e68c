// SPDX-License-Identifier: MIT

// Package sequence: limits and functional configuration for constructors.
//
// Design goals:
//   - Limits are compile-time constants; there is no mutable global state.
//   - Options only record intent. Validation happens once, in New, so that a
//     bad option surfaces as a sentinel error instead of a panic.
package sequence

// ---------- Limits (single source of truth) ----------

const (
	// MaxVectorSize bounds the size argument of New and FromValues.
	MaxVectorSize = 100000000

	// DefaultStartIndex is the start index used when WithStartIndex is absent.
	DefaultStartIndex = 0
)

// Option configures a Sequence at construction time.
type Option func(*Options)

// Options holds the construction parameters gathered from Option values.
// Fields are unexported; use the WithX constructors.
type Options struct {
	startIndex int
}

// defaultOptions returns the zero-configuration parameter set.
func defaultOptions() Options {
	return Options{startIndex: DefaultStartIndex}
}

// WithStartIndex shifts the valid external index range to
// [start, start+size). A negative start is reported by New as
// ErrInvalidStartIndex.
func WithStartIndex(start int) Option {
	return func(o *Options) {
		o.startIndex = start
	}
}

// gatherOptions applies opts over the defaults in order; later options win.
// Nil options are skipped.
func gatherOptions(opts ...Option) Options {
	o := defaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}
