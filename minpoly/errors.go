// SPDX-License-Identifier: MIT

package minpoly

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/algebraics/roots"
)

var (
	// ErrNotFound reports that no degree within the budget produced a
	// bracketing candidate. It matches roots.ErrPrecisionExhausted.
	ErrNotFound = fmt.Errorf("minpoly: no polynomial found within budget: %w", roots.ErrPrecisionExhausted)

	// ErrBadBudget is returned for maxK outside [1, MaxBits], maxDeg < 1, or
	// an instance larger than the subset-sum item ceiling.
	ErrBadBudget = errors.New("minpoly: invalid search budget")

	// ErrInvalidBall is returned for a Ball with a non-finite center or radius,
	// or a negative radius.
	ErrInvalidBall = errors.New("minpoly: invalid ball")

	// ErrBadCertificate is returned by Decode when the inclusion vector length
	// is not a positive multiple of k.
	ErrBadCertificate = errors.New("minpoly: inclusion vector does not match k")
)

const (
	opFind   = "Find"
	opDecode = "Decode"
)

func minpolyErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
