// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single, canonical source of truth for common validation checks.
//  - Keep kernels minimal by delegating shape/nil checks here.
//
// Determinism & Performance:
//  - All checks are pure and deterministic; only ValidatePermutation allocates.

package matrix

import (
	"fmt"
	"math/big"
)

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil ensures the matrix reference is non-nil, including typed-nil *Dense.
// Complexity: O(1).
func ValidateNotNil(m Matrix) error {
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}
	if d, ok := m.(*Dense); ok && d == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateSquare checks that m is non-nil and square (Rows == Cols).
// Errors: ErrNilMatrix, ErrNonSquare.
func ValidateSquare(m Matrix) error {
	if err := ValidateNotNil(m); err != nil {
		return err
	}
	if m.Rows() != m.Cols() {
		return validatorErrorf("ValidateSquare", ErrNonSquare)
	}

	return nil
}

// ValidateMulCompatible ensures a and b are non-nil and a.Cols == b.Rows.
// Errors: ErrNilMatrix, ErrDimensionMismatch.
func ValidateMulCompatible(a, b Matrix) error {
	if err := ValidateNotNil(a); err != nil {
		return err
	}
	if err := ValidateNotNil(b); err != nil {
		return err
	}
	if a.Cols() != b.Rows() {
		return validatorErrorf("ValidateMulCompatible", ErrDimensionMismatch)
	}

	return nil
}

// ValidateSameShape ensures a and b are non-nil with identical dimensions.
// Errors: ErrNilMatrix, ErrDimensionMismatch.
func ValidateSameShape(a, b Matrix) error {
	if err := ValidateNotNil(a); err != nil {
		return err
	}
	if err := ValidateNotNil(b); err != nil {
		return err
	}
	if a.Rows() != b.Rows() || a.Cols() != b.Cols() {
		return validatorErrorf("ValidateSameShape", ErrDimensionMismatch)
	}

	return nil
}

// ValidateVecLen ensures len(x) == n and that no entry is nil.
// Errors: ErrDimensionMismatch, ErrNilValue.
func ValidateVecLen(x []*big.Float, n int) error {
	if len(x) != n {
		return validatorErrorf("ValidateVecLen", ErrDimensionMismatch)
	}
	for _, v := range x {
		if v == nil {
			return validatorErrorf("ValidateVecLen", ErrNilValue)
		}
	}

	return nil
}

// ValidatePermutation ensures perm is a non-empty permutation of 0..len(perm)-1.
// Errors: ErrInvalidDimensions, ErrBadPermutation.
// Complexity: O(n) time and memory.
func ValidatePermutation(perm []int) error {
	if len(perm) == 0 {
		return validatorErrorf("ValidatePermutation", ErrInvalidDimensions)
	}
	seen := make([]bool, len(perm))
	for _, p := range perm {
		if p < 0 || p >= len(perm) || seen[p] {
			return validatorErrorf("ValidatePermutation", ErrBadPermutation)
		}
		seen[p] = true
	}

	return nil
}
