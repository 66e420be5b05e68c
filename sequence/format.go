// SPDX-License-Identifier: MIT

package sequence

import (
	"fmt"
	"io"
	"strings"
)

// ---------- Formatting literals ----------
const (
	_fmtOpen  = "["
	_fmtClose = "]"
	_fmtSep   = ", "
)

// String renders the values as "[v0, v1, ...]" for debugging.
func (s *Sequence[T]) String() string {
	if s == nil {
		return "<nil>"
	}
	var b strings.Builder
	b.WriteString(_fmtOpen)
	for k, v := range s.data {
		if k > 0 {
			b.WriteString(_fmtSep)
		}
		fmt.Fprint(&b, v)
	}
	b.WriteString(_fmtClose)

	return b.String()
}

// WriteTo writes the values space-separated on one line, in a form Scan reads
// back. It implements io.WriterTo.
func (s *Sequence[T]) WriteTo(w io.Writer) (int64, error) {
	if s == nil {
		return 0, sequenceErrorf(ctxWrite, ErrNilSequence)
	}
	var total int64
	for k, v := range s.data {
		sep := " "
		if k == 0 {
			sep = ""
		}
		n, err := fmt.Fprint(w, sep, v)
		total += int64(n)
		if err != nil {
			return total, err
		}
	}
	n, err := io.WriteString(w, "\n")
	total += int64(n)

	return total, err
}

// Scan reads Size() whitespace-separated values from r into index order.
// The sequence is updated only when every value parses; otherwise it is left
// unchanged and the error names the failing external index.
func (s *Sequence[T]) Scan(r io.Reader) error {
	if s == nil {
		return sequenceErrorf(ctxScan, ErrNilSequence)
	}
	buf := make([]T, s.size)
	for k := range buf {
		if _, err := fmt.Fscan(r, &buf[k]); err != nil {
			return indexErrorf(ctxScan, s.startIndex+k, err)
		}
	}
	s.data = buf

	return nil
}
