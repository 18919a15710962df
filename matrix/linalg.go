// SPDX-License-Identifier: MIT

// Package matrix: linear-algebra kernels (Mul, LU, Inverse).
//
// Every kernel validates through the central validators, wraps failures with
// an operation tag, and runs fixed loop orders so identical inputs always
// produce identical results. *Dense operands take a flat-slice fast path;
// any other Matrix implementation falls back to At/Set.

package matrix

import "fmt"

// ZeroSum is the initial accumulator value for substitution and product loops.
const ZeroSum = 0.0

// ZeroPivot is the sentinel for detecting a zero pivot in LU/Inverse routines.
const ZeroPivot = 0.0

// Operation name constants for unified error wrapping.
const (
	opMul     = "Mul"
	opLU      = "LU"
	opInverse = "Inverse"
)

// matrixErrorf wraps err with an operation tag, preserving the original error
// via %w so sentinels still match under errors.Is. Call only with err != nil.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// Mul performs standard matrix multiplication C = A × B.
//
// A must be (r×n), B (n×c); the result is a fresh Dense (r×c), operands are
// never mutated. Errors: ErrNilMatrix, ErrDimensionMismatch.
// Complexity: O(r·n·c); the fast path walks flat slices in i→k→j order and
// skips zero A[i,k] entries.
func Mul(a, b Matrix) (Matrix, error) {
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	aRows, aCols, bCols := a.Rows(), a.Cols(), b.Cols()
	res, err := NewDense(aRows, bCols)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	var (
		i, j, k         int
		av, bv, current float64
	)
	// Fast path: both operands *Dense → row-major strides, no interface calls.
	if da, okA := a.(*Dense); okA {
		if db, okB := b.(*Dense); okB {
			var rowOffsetA, rowOffsetB, rowOffsetR int
			for i = 0; i < aRows; i++ {
				rowOffsetA = i * aCols
				rowOffsetR = i * bCols
				for k = 0; k < aCols; k++ {
					av = da.data[rowOffsetA+k]
					if av == 0 {
						continue // skip zero for performance
					}
					rowOffsetB = k * bCols
					for j = 0; j < bCols; j++ {
						res.data[rowOffsetR+j] += av * db.data[rowOffsetB+j]
					}
				}
			}

			return res, nil
		}
	}

	// Fallback: generic interface triple loop (i→j→k).
	for i = 0; i < aRows; i++ {
		for j = 0; j < bCols; j++ {
			current = ZeroSum
			for k = 0; k < aCols; k++ {
				av, err = a.At(i, k)
				if err != nil {
					return nil, matrixErrorf(opMul, fmt.Errorf("At(%d,%d): %w", i, k, err))
				}
				if av == 0 {
					continue // skip zero for performance
				}
				bv, err = b.At(k, j)
				if err != nil {
					return nil, matrixErrorf(opMul, fmt.Errorf("At(%d,%d): %w", k, j, err))
				}
				current += av * bv
			}
			if err = res.Set(i, j, current); err != nil {
				return nil, matrixErrorf(opMul, fmt.Errorf("Set(%d,%d): %w", i, j, err))
			}
		}
	}

	return res, nil
}

// LU computes the Doolittle factorization A = L*U with unit diagonal on L.
//
// No pivoting: the factorization is bit-for-bit reproducible, and a zero
// pivot is reported as ErrSingular instead of being permuted away. Inputs
// whose leading minors vanish therefore fail even when mathematically
// invertible; that trade (determinism over pivoting) is intentional.
//
// Errors: ErrNilMatrix, ErrNonSquare, ErrSingular.
// Complexity: O(n³) time, O(n²) space for the two factors.
func LU(m Matrix) (Matrix, Matrix, error) {
	if err := ValidateSquareNonNil(m); err != nil {
		return nil, nil, matrixErrorf(opLU, err)
	}

	n := m.Rows()
	Lraw, err := NewDense(n, n)
	if err != nil {
		return nil, nil, matrixErrorf(opLU, err)
	}
	Uraw, err := NewDense(n, n)
	if err != nil {
		return nil, nil, matrixErrorf(opLU, err)
	}

	// Unit lower triangular: diag(L) = 1.
	for i := 0; i < n; i++ {
		Lraw.data[i*n+i] = 1.0
	}

	mRaw, useFast := m.(*Dense)
	var i, j, k int
	var sum, pivot float64
	if useFast {
		// Fast path: operate directly on flat slices.
		var baseI, baseJ int
		for i = 0; i < n; i++ {
			// Row i of U for j >= i.
			for j = i; j < n; j++ {
				sum = ZeroSum
				baseI = i * n
				for k = 0; k < i; k++ {
					sum += Lraw.data[baseI+k] * Uraw.data[k*n+j]
				}
				Uraw.data[baseI+j] = mRaw.data[baseI+j] - sum
			}

			// Zero-pivot guard (deterministic singularity detection).
			if Uraw.data[i*n+i] == ZeroPivot {
				return nil, nil, matrixErrorf(opLU, ErrSingular)
			}

			// Column i of L for j > i.
			for j = i + 1; j < n; j++ {
				sum = ZeroSum
				baseJ = j * n
				for k = 0; k < i; k++ {
					sum += Lraw.data[baseJ+k] * Uraw.data[k*n+i]
				}
				pivot = Uraw.data[i*n+i]
				Lraw.data[baseJ+i] = (mRaw.data[baseJ+i] - sum) / pivot
			}
		}

		return Lraw, Uraw, nil
	}

	// Fallback: generic interface version.
	var a, l, u float64
	for i = 0; i < n; i++ {
		for j = i; j < n; j++ {
			sum = ZeroSum
			for k = 0; k < i; k++ {
				l, err = Lraw.At(i, k)
				if err != nil {
					return nil, nil, matrixErrorf(opLU, fmt.Errorf("At(%d,%d): %w", i, k, err))
				}
				u, err = Uraw.At(k, j)
				if err != nil {
					return nil, nil, matrixErrorf(opLU, fmt.Errorf("At(%d,%d): %w", k, j, err))
				}
				sum += l * u
			}
			a, err = m.At(i, j)
			if err != nil {
				return nil, nil, matrixErrorf(opLU, fmt.Errorf("At(%d,%d): %w", i, j, err))
			}
			if err = Uraw.Set(i, j, a-sum); err != nil {
				return nil, nil, matrixErrorf(opLU, fmt.Errorf("Set(%d,%d): %w", i, j, err))
			}
		}

		pivot, err = Uraw.At(i, i)
		if err != nil {
			return nil, nil, matrixErrorf(opLU, fmt.Errorf("At(%d,%d): %w", i, i, err))
		}
		if pivot == ZeroPivot {
			return nil, nil, matrixErrorf(opLU, ErrSingular)
		}

		for j = i + 1; j < n; j++ {
			sum = ZeroSum
			for k = 0; k < i; k++ {
				l, err = Lraw.At(j, k)
				if err != nil {
					return nil, nil, matrixErrorf(opLU, fmt.Errorf("At(%d,%d): %w", j, k, err))
				}
				u, err = Uraw.At(k, i)
				if err != nil {
					return nil, nil, matrixErrorf(opLU, fmt.Errorf("At(%d,%d): %w", k, i, err))
				}
				sum += l * u
			}
			a, err = m.At(j, i)
			if err != nil {
				return nil, nil, matrixErrorf(opLU, fmt.Errorf("At(%d,%d): %w", j, i, err))
			}
			if err = Lraw.Set(j, i, (a-sum)/pivot); err != nil {
				return nil, nil, matrixErrorf(opLU, fmt.Errorf("Set(%d,%d): %w", j, i, err))
			}
		}
	}

	return Lraw, Uraw, nil
}

// Inverse computes A⁻¹ via Doolittle LU and per-column triangular solves.
//
// For each canonical basis column e_col: forward-solve L*y = e_col, then
// backward-solve U*x = y, and write x into column col of the result. The
// input is read-only; the result is a fresh Dense.
//
// Errors: ErrNilMatrix, ErrNonSquare, ErrSingular (zero pivot in LU or in
// backward substitution).
// Complexity: O(n³) time, O(n²) space.
func Inverse(m Matrix) (Matrix, error) {
	if err := ValidateSquareNonNil(m); err != nil {
		return nil, matrixErrorf(opInverse, err)
	}

	Lmat, Umat, err := LU(m)
	if err != nil {
		return nil, matrixErrorf(opInverse, err)
	}

	n := m.Rows()
	invDense, err := NewDense(n, n)
	if err != nil {
		return nil, matrixErrorf(opInverse, err)
	}

	var (
		col, i, k  int
		sum, pivot float64
		y          = make([]float64, n) // forward substitution workspace
		x          = make([]float64, n) // backward substitution workspace
	)
	// Fast path requires both factors to be *Dense; LU currently returns
	// exactly that.
	Ld, okL := Lmat.(*Dense)
	Ud, okU := Umat.(*Dense)
	if okL && okU {
		var baseUi, baseLi int
		for col = 0; col < n; col++ {
			// Forward substitution: L*y = e_col (top-down).
			for i = 0; i < n; i++ {
				sum = ZeroSum
				baseLi = i * n
				for k = 0; k < i; k++ {
					sum += Ld.data[baseLi+k] * y[k]
				}
				if i == col {
					y[i] = 1.0 - sum
				} else {
					y[i] = -sum
				}
			}
			// Backward substitution: U*x = y (bottom-up).
			for i = n - 1; i >= 0; i-- {
				sum = ZeroSum
				baseUi = i * n
				for k = i + 1; k < n; k++ {
					sum += Ud.data[baseUi+k] * x[k]
				}
				pivot = Ud.data[baseUi+i]
				if pivot == ZeroPivot {
					return nil, matrixErrorf(opInverse, ErrSingular)
				}
				x[i] = (y[i] - sum) / pivot
			}
			// Write x into column col of the inverse.
			for i = 0; i < n; i++ {
				invDense.data[i*n+col] = x[i]
			}
		}

		return invDense, nil
	}

	// Fallback: generic interface version.
	var v float64
	for col = 0; col < n; col++ {
		for i = 0; i < n; i++ {
			sum = ZeroSum
			for k = 0; k < i; k++ {
				v, err = Lmat.At(i, k)
				if err != nil {
					return nil, matrixErrorf(opInverse, fmt.Errorf("At(%d,%d): %w", i, k, err))
				}
				sum += v * y[k]
			}
			if i == col {
				y[i] = 1.0 - sum
			} else {
				y[i] = -sum
			}
		}
		for i = n - 1; i >= 0; i-- {
			sum = ZeroSum
			for k = i + 1; k < n; k++ {
				v, err = Umat.At(i, k)
				if err != nil {
					return nil, matrixErrorf(opInverse, fmt.Errorf("At(%d,%d): %w", i, k, err))
				}
				sum += v * x[k]
			}
			pivot, err = Umat.At(i, i)
			if err != nil {
				return nil, matrixErrorf(opInverse, fmt.Errorf("At(%d,%d): %w", i, i, err))
			}
			if pivot == ZeroPivot {
				return nil, matrixErrorf(opInverse, ErrSingular)
			}
			x[i] = (y[i] - sum) / pivot
		}
		for i = 0; i < n; i++ {
			if err = invDense.Set(i, col, x[i]); err != nil {
				return nil, matrixErrorf(opInverse, fmt.Errorf("Set(%d,%d): %w", i, col, err))
			}
		}
	}

	return invDense, nil
}
