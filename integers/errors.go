// SPDX-License-Identifier: MIT

package integers

import "errors"

var (
	// ErrNoConvergent is returned when no continued-fraction convergent within
	// MaxContinuedFractionTerms terms (or within int64 range) approximates the
	// input to the requested tolerance.
	ErrNoConvergent = errors.New("integers: no convergent within tolerance")

	// ErrNotInteger is returned by Rational.Int when the reduced denominator is not 1.
	ErrNotInteger = errors.New("integers: rational is not an integer")

	// ErrZeroDenominator signals a Rational with Den == 0.
	ErrZeroDenominator = errors.New("integers: zero denominator")

	// ErrNilInput signals a nil *big.Float argument.
	ErrNilInput = errors.New("integers: nil input")
)
