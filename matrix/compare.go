// SPDX-License-Identifier: MIT

// Package matrix: equality and tolerance comparison.
//
// Equal is the strict comparator: dimensions and every entry must match
// under ==, with no epsilon. AllClose is the tolerant counterpart for
// verifying computed results.

package matrix

import "math"

// Equal reports whether a and b have identical dimensions and elements.
//
// Comparison is exact (==): no tolerance is applied, so NaN entries never
// compare equal, and -0.0 == 0.0 per IEEE 754. Two nil matrices are equal;
// nil never equals non-nil. Complexity: O(r*c), short-circuiting on the
// first difference.
func Equal(a, b Matrix) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	if a.Rows() != b.Rows() || a.Cols() != b.Cols() {
		return false
	}

	rows, cols := a.Rows(), a.Cols()
	// Fast path: both *Dense → single flat scan.
	if da, okA := a.(*Dense); okA {
		if db, okB := b.(*Dense); okB {
			n := rows * cols
			for idx := 0; idx < n; idx++ { // deterministic 0..n-1
				if da.data[idx] != db.data[idx] {
					return false
				}
			}

			return true
		}
	}

	// Fallback: generic interface scan with fixed i→j order.
	// At errors are not expected after the shape check above.
	var i, j int
	var av, bv float64
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			av, _ = a.At(i, j)
			bv, _ = b.At(i, j)
			if av != bv {
				return false
			}
		}
	}

	return true
}

// AllClose reports whether a and b have identical dimensions and elements
// within the absolute tolerance eps: |a[i,j] - b[i,j]| <= eps for all (i,j).
//
// A negative eps is flipped to its absolute value. NaN differences always
// fail. Nil handling matches Equal. Complexity: O(r*c).
func AllClose(a, b Matrix, eps float64) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	if a.Rows() != b.Rows() || a.Cols() != b.Cols() {
		return false
	}
	if eps < 0 {
		eps = -eps
	}

	rows, cols := a.Rows(), a.Cols()
	var diff float64
	// Fast path: both *Dense → single flat scan.
	if da, okA := a.(*Dense); okA {
		if db, okB := b.(*Dense); okB {
			n := rows * cols
			for idx := 0; idx < n; idx++ {
				diff = math.Abs(da.data[idx] - db.data[idx])
				if math.IsNaN(diff) || diff > eps {
					return false
				}
			}

			return true
		}
	}

	// Fallback: generic interface scan with fixed i→j order.
	var i, j int
	var av, bv float64
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			av, _ = a.At(i, j)
			bv, _ = b.At(i, j)
			diff = math.Abs(av - bv)
			if math.IsNaN(diff) || diff > eps {
				return false
			}
		}
	}

	return true
}
