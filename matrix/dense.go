// SPDX-License-Identifier: MIT

// Package matrix: Dense storage (row-major) and builders.
//
// Dense keeps a cache-friendly flat buffer with the explicit index formula
// i*cols + j. The public surface is safe: At/Set return errors instead of
// panicking, and all loops run in a fixed row-major order.

package matrix

import (
	"fmt"
	"strings"
)

// Method tags used in error wrappers.
const (
	ctxAt  = "At"
	ctxSet = "Set"
)

// Row-dump formatting literals.
const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// denseErrorf attaches method context and coordinates to a sentinel error,
// preserving it for errors.Is via %w.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a concrete row-major matrix.
//   - r, c hold dimensions (rows, cols).
//   - data is a flat buffer of length r*c in row-major order (offset = i*c + j).
type Dense struct {
	r, c int       // row and column counts
	data []float64 // contiguous row-major storage (len == r*c)
}

// Compile-time assertions for interface & fmt.Stringer conformance.
var (
	_ Matrix       = (*Dense)(nil)
	_ fmt.Stringer = (*Dense)(nil)
)

// NewDense creates an r×c zero matrix using row-major storage.
//
// Returns ErrInvalidDimensions when rows <= 0 or cols <= 0; never panics.
// Complexity: O(rows*cols) zero-init.
func NewDense(rows, cols int) (*Dense, error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrInvalidDimensions
	}
	// make() zero-fills the buffer deterministically.
	buf := make([]float64, rows*cols)

	return &Dense{r: rows, c: cols, data: buf}, nil
}

// NewDenseFromRows builds a Dense from a row slice, copying every value.
// The input is not retained; later mutation of rows does not affect the result.
//
// Errors: ErrInvalidDimensions for an empty grid or empty rows,
// ErrDimensionMismatch (wrapped with the row index) for ragged input.
// Complexity: O(rows*cols).
func NewDenseFromRows(rows [][]float64) (*Dense, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrInvalidDimensions
	}
	r, c := len(rows), len(rows[0])
	m, err := NewDense(r, c)
	if err != nil {
		return nil, err
	}

	var i int
	for i = 0; i < r; i++ { // copy rows in fixed order
		if len(rows[i]) != c {
			return nil, fmt.Errorf("NewDenseFromRows: row %d: %w", i, ErrDimensionMismatch)
		}
		copy(m.data[i*c:(i+1)*c], rows[i])
	}

	return m, nil
}

// NewIdentity returns the n×n identity matrix.
//
// Returns ErrInvalidDimensions when n <= 0.
// Complexity: O(n²) for the zero-init, O(n) for the diagonal.
func NewIdentity(n int) (*Dense, error) {
	m, err := NewDense(n, n)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		m.data[i*n+i] = 1.0 // flat diagonal write
	}

	return m, nil
}

// Rows returns the row count. Complexity: O(1).
func (m *Dense) Rows() int { return m.r }

// Cols returns the column count. Complexity: O(1).
func (m *Dense) Cols() int { return m.c }

// indexOf computes the row-major offset or returns ErrOutOfRange.
// Kept unexported so the public surface (At/Set) controls wrapping.
func (m *Dense) indexOf(row, col int) (int, error) {
	if row < 0 || row >= m.r {
		return 0, ErrOutOfRange
	}
	if col < 0 || col >= m.c {
		return 0, ErrOutOfRange
	}

	// Row-major offset: i*c + j.
	return row*m.c + col, nil
}

// At returns the value at (row, col) or ErrOutOfRange.
func (m *Dense) At(row, col int) (float64, error) {
	off, err := m.indexOf(row, col)
	if err != nil {
		return 0, denseErrorf(ctxAt, row, col, err)
	}

	return m.data[off], nil
}

// Set stores v at (row, col) or returns ErrOutOfRange.
func (m *Dense) Set(row, col int, v float64) error {
	off, err := m.indexOf(row, col)
	if err != nil {
		return denseErrorf(ctxSet, row, col, err)
	}
	m.data[off] = v // direct flat write

	return nil
}

// Clone returns a deep copy backed by a fresh buffer.
// Mutations of the copy never affect the original. Complexity: O(r*c).
func (m *Dense) Clone() Matrix {
	cp := make([]float64, len(m.data))
	copy(cp, m.data)

	return &Dense{r: m.r, c: m.c, data: cp}
}

// String renders a readable row-per-line dump for diagnostics.
// Not for hot paths; intended for logs and test failure output.
func (m *Dense) String() string {
	var b strings.Builder
	var i, j, base int
	for i = 0; i < m.r; i++ { // iterate rows deterministically
		b.WriteString(_fmtRowOpen)
		base = i * m.c
		for j = 0; j < m.c; j++ {
			b.WriteString(fmt.Sprintf("%g", m.data[base+j]))
			if j+1 < m.c {
				b.WriteString(_fmtSep)
			}
		}
		b.WriteString(_fmtRowClose)
	}

	return b.String()
}
