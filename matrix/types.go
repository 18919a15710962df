// SPDX-License-Identifier: MIT

// Package matrix: the public Matrix interface.
// Concrete storage lives in dense.go; kernels in linalg.go accept this
// interface and fast-path on *Dense.

package matrix

// Matrix represents a two-dimensional mutable array of float64 values.
//
// All methods are O(1) except Clone, which is O(rows*cols).
type Matrix interface {
	// Rows returns the number of rows in the matrix.
	Rows() int

	// Cols returns the number of columns in the matrix.
	Cols() int

	// At retrieves the element at position (i, j).
	// Returns ErrOutOfRange if i<0, i>=Rows(), j<0 or j>=Cols().
	At(i, j int) (float64, error)

	// Set assigns the value v at position (i, j).
	// Returns ErrOutOfRange if indices are invalid.
	Set(i, j int, v float64) error

	// Clone returns a deep copy of the matrix.
	// The returned Matrix is independent of the original.
	Clone() Matrix
}
