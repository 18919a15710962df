// SPDX-License-Identifier: MIT

// Package matrix: canonical validation checks.
// Kernels delegate nil/shape guards here so every call site reports the same
// sentinels. Validators return wrapped sentinels; call sites add their own
// operation tag on top.

package matrix

import "fmt"

// validatorErrorf wraps an underlying error with the given validator tag,
// keeping sentinel matching intact for errors.Is.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil ensures the matrix reference is non-nil.
// Returns ErrNilMatrix when m == nil. Complexity: O(1).
func ValidateNotNil(m Matrix) error {
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateSquare checks that m is square (Rows == Cols).
// Assumes m is non-nil (compose with ValidateNotNil first).
// Returns ErrNonSquare on violation. Complexity: O(1).
func ValidateSquare(m Matrix) error {
	if m.Rows() != m.Cols() {
		return validatorErrorf("ValidateSquare", ErrNonSquare)
	}

	return nil
}

// ValidateSquareNonNil composes NotNil → Square.
// Errors: ErrNilMatrix, ErrNonSquare. Complexity: O(1).
func ValidateSquareNonNil(m Matrix) error {
	if err := ValidateNotNil(m); err != nil {
		return validatorErrorf("ValidateSquareNonNil", err)
	}
	if err := ValidateSquare(m); err != nil {
		return validatorErrorf("ValidateSquareNonNil", err)
	}

	return nil
}

// ValidateMulCompatible ensures a.Cols == b.Rows with both inputs non-nil.
// Errors: ErrNilMatrix, ErrDimensionMismatch. Complexity: O(1).
func ValidateMulCompatible(a, b Matrix) error {
	if err := ValidateNotNil(a); err != nil {
		return validatorErrorf("ValidateMulCompatible", err)
	}
	if err := ValidateNotNil(b); err != nil {
		return validatorErrorf("ValidateMulCompatible", err)
	}
	if a.Cols() != b.Rows() {
		return validatorErrorf("ValidateMulCompatible", ErrDimensionMismatch)
	}

	return nil
}
