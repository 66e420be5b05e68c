// SPDX-License-Identifier: MIT

package triangular

import (
	"fmt"
	"io"
	"strings"

	"github.com/katalvlaran/trimatrix/sequence"
)

// ---------- Formatting literals ----------
const (
	_fmtOpen  = "["
	_fmtClose = "]"
	_fmtSep   = ", "
	_fmtHole  = "_" // placeholder for an unstored sub-diagonal entry
)

// String renders one bracketed line per row, with "_" in place of the
// entries below the diagonal:
//
//	[1, 2]
//	[_, 3]
func (m *Matrix[T]) String() string {
	if m == nil {
		return "<nil>"
	}
	lines := make([]string, len(m.rows))
	for i, row := range m.rows {
		cells := make([]string, 0, m.size)
		for range i {
			cells = append(cells, _fmtHole)
		}
		for _, v := range row.Values() {
			cells = append(cells, fmt.Sprint(v))
		}
		lines[i] = _fmtOpen + strings.Join(cells, _fmtSep) + _fmtClose
	}

	return strings.Join(lines, "\n")
}

// WriteTo writes the stored entries one row per line, in a form Scan reads
// back. It implements io.WriterTo.
//
// Errors:
//   - ErrNilMatrix, ErrSizeMismatch for a row reshaped through Row.
func (m *Matrix[T]) WriteTo(w io.Writer) (int64, error) {
	if err := m.checkLayout(); err != nil {
		return 0, matrixErrorf(ctxWrite, err)
	}
	var total int64
	for _, row := range m.rows {
		n, err := row.WriteTo(w)
		total += n
		if err != nil {
			return total, err
		}
	}

	return total, nil
}

// Scan reads Size()*(Size()+1)/2 whitespace-separated values, row 0 first.
// m is updated only when every row parses.
//
// Errors:
//   - ErrNilMatrix, ErrSizeMismatch for a row reshaped through Row, or the
//     wrapped parse error of the failing row.
func (m *Matrix[T]) Scan(r io.Reader) error {
	if err := m.checkLayout(); err != nil {
		return matrixErrorf(ctxScan, err)
	}
	rows := make([]*sequence.Sequence[T], len(m.rows))
	for i, row := range m.rows {
		c := row.Clone()
		if err := c.Scan(r); err != nil {
			return fmt.Errorf("Matrix.%s row %d: %w", ctxScan, i, err)
		}
		rows[i] = c
	}
	m.rows = rows

	return nil
}

// checkLayout runs NotNil → row shapes before streaming rows.
func (m *Matrix[T]) checkLayout() error {
	if err := ValidateNotNil(m); err != nil {
		return err
	}

	return m.validateRows()
}
