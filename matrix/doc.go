// SPDX-License-Identifier: MIT

// Package matrix provides dense float64 matrices and the small set of
// linear-algebra kernels the rest of the module builds on: multiplication,
// LU factorization, inversion, and equality checks.
//
// What:
//
//   - Dense: row-major storage with safe At/Set accessors (errors, no panics).
//   - Builders: NewDense, NewDenseFromRows, NewIdentity.
//   - Kernels: Mul (A×B), LU (Doolittle, no pivoting), Inverse (LU + column solves).
//   - Comparison: Equal (exact, bit-for-bit) and AllClose (tolerance eps).
//
// Why:
//
//   - Inversion with a deterministic singularity sentinel is the arithmetic
//     backbone of the invcache package.
//   - Exact Equal is the staleness comparator for cached inverses: two
//     matrices are "the same" only when every entry compares == .
//
// Complexity:
//
//   - At/Set:    O(1).
//   - Mul:       O(r·n·c), fast path on *Dense operands.
//   - LU:        O(n³), deterministic loop order, zero-pivot guard.
//   - Inverse:   O(n³) total (LU + n triangular solves).
//   - Equal:     O(r·c), short-circuits on the first differing entry.
//
// Errors:
//
//   - ErrInvalidDimensions: a builder was asked for a non-positive shape.
//   - ErrOutOfRange: At/Set index outside the matrix bounds.
//   - ErrNilMatrix: a nil Matrix was passed where a value is required.
//   - ErrNonSquare: LU/Inverse received a rectangular matrix.
//   - ErrDimensionMismatch: incompatible operand shapes (Mul, ragged rows).
//   - ErrSingular: zero pivot during LU/Inverse; the input has no inverse
//     under this non-pivoting scheme.
//
// All kernels accept the Matrix interface but take a flat-slice fast path
// when the operands are *Dense.
package matrix
