// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// All kernels return these sentinels (optionally wrapped with the operation
// tag) and tests check them via errors.Is. No kernel panics on user input;
// panics are reserved for invalid option values (programmer error).

package matrix

import "errors"

var (
	// ErrInvalidDimensions indicates that requested matrix dimensions are non-positive.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrIndexOutOfBounds indicates that a row or column index is outside valid range.
	ErrIndexOutOfBounds = errors.New("matrix: index out of bounds")

	// ErrDimensionMismatch indicates incompatible dimensions between operands,
	// e.g. Mul where a.Cols != b.Rows or MatVec with a wrong vector length.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNonSquare signals that a square matrix was required but the input wasn't.
	ErrNonSquare = errors.New("matrix: matrix is not square")

	// ErrNilMatrix indicates that a nil Matrix (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil matrix")

	// ErrNilValue indicates a nil *big.Float or *big.Int entry.
	ErrNilValue = errors.New("matrix: nil value")

	// ErrSingular is returned when elimination finds no nonzero pivot candidate
	// on or below the diagonal, or a triangular factor has a zero diagonal.
	ErrSingular = errors.New("matrix: singular matrix")

	// ErrBadPermutation indicates a slice that is not a permutation of 0..n-1.
	ErrBadPermutation = errors.New("matrix: invalid permutation")
)
