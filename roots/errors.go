// SPDX-License-Identifier: MIT

package roots

import (
	"errors"
	"fmt"
)

var (
	// ErrZeroPolynomial is returned when a root query is made on the zero polynomial.
	ErrZeroPolynomial = errors.New("roots: zero polynomial")

	// ErrInvalidError signals a non-positive or non-finite target error.
	ErrInvalidError = errors.New("roots: error bound must be finite and > 0")

	// ErrInvalidInterval signals lo ≥ hi or a non-finite endpoint.
	ErrInvalidInterval = errors.New("roots: invalid interval")

	// ErrNoRootFound signals that no real root lies in the searched domain.
	ErrNoRootFound = errors.New("roots: no root found")

	// ErrPrecisionExhausted signals that bisection hit its depth ceiling or the
	// float64 resolution before reaching the target error.
	ErrPrecisionExhausted = errors.New("roots: precision exhausted")

	// ErrNoConvergence signals that Durand–Kerner hit its iteration ceiling.
	// It matches ErrPrecisionExhausted under errors.Is.
	ErrNoConvergence = fmt.Errorf("roots: durand-kerner did not converge: %w", ErrPrecisionExhausted)
)

const (
	opIsolate    = "Isolate"
	opAllReal    = "AllReal"
	opAllComplex = "AllComplex"
)

func rootsErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
