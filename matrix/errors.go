// SPDX-License-Identifier: MIT

// Package matrix: sentinel error set.
// All kernels return these sentinels (optionally wrapped with an operation
// tag via %w); callers match them with errors.Is. Panics are reserved for
// programmer errors, never for user-triggered conditions.

package matrix

import "errors"

var (
	// ErrInvalidDimensions is returned by builders when rows <= 0 or cols <= 0.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrOutOfRange indicates an index (row or column) outside valid bounds.
	// Public indexers (At/Set) return this, they never panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrNilMatrix indicates a nil Matrix argument where a value is required.
	ErrNilMatrix = errors.New("matrix: nil matrix")

	// ErrNonSquare signals that a square matrix was required but the input wasn't.
	ErrNonSquare = errors.New("matrix: matrix is not square")

	// ErrDimensionMismatch indicates incompatible dimensions between operands,
	// e.g. Mul where a.Cols != b.Rows, or ragged input rows in a builder.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrSingular is returned when a zero pivot is encountered during LU or
	// Inverse in the non-pivoting scheme (deterministic singularity detection).
	ErrSingular = errors.New("matrix: singular matrix")
)
