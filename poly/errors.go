// SPDX-License-Identifier: MIT

package poly

import (
	"errors"
	"fmt"
)

var (
	// ErrDivisionByZero is returned when dividing by the zero polynomial.
	ErrDivisionByZero = errors.New("poly: division by zero polynomial")

	// ErrInexactDivision is returned by DivExact when the quotient is not integral
	// or the remainder is nonzero.
	ErrInexactDivision = errors.New("poly: inexact division")

	// ErrNegativeExponent is returned by Pow for n < 0.
	ErrNegativeExponent = errors.New("poly: negative exponent")

	// ErrNegativeDegree is returned by RaiseDegree for n < 0.
	ErrNegativeDegree = errors.New("poly: negative degree shift")
)

// polyErrorf wraps err with an operation tag.
func polyErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
