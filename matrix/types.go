// SPDX-License-Identifier: MIT

package matrix

import "math/big"

// Matrix is a two-dimensional mutable array of *big.Float values sharing one
// working precision.
//
// Values cross the interface by copy: At returns a fresh *big.Float and Set
// stores a copy rounded to Prec(), so callers never alias internal storage.
//
// Complexity notes: all methods are O(1) except Clone (O(r·c)).
type Matrix interface {
	// Rows returns the number of rows in the matrix.
	Rows() int

	// Cols returns the number of columns in the matrix.
	Cols() int

	// Prec returns the mantissa precision (bits) of every entry.
	Prec() uint

	// At returns a copy of the element at (i, j).
	// Returns ErrIndexOutOfBounds if indices are invalid.
	At(i, j int) (*big.Float, error)

	// Set stores a copy of v at (i, j), rounded to Prec().
	// Returns ErrIndexOutOfBounds or ErrNilValue.
	Set(i, j int, v *big.Float) error

	// Clone returns a deep copy of the matrix.
	Clone() Matrix
}
