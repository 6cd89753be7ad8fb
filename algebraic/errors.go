// SPDX-License-Identifier: MIT

package algebraic

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/algebraics/roots"
)

var (
	// ErrArithmeticUndefined is returned by Inv and Div when the ball of the
	// inverted operand contains 0.
	ErrArithmeticUndefined = errors.New("algebraic: arithmetic undefined for a ball containing zero")

	// ErrNoRootFound is returned when a polynomial has no real root where one
	// is required. It is roots.ErrNoRootFound.
	ErrNoRootFound = roots.ErrNoRootFound

	// ErrUnknownPolynomial is returned by queries that need a polynomial.
	ErrUnknownPolynomial = errors.New("algebraic: polynomial unknown")

	// ErrInvalidBall signals a non-finite center or radius, or a negative radius.
	ErrInvalidBall = errors.New("algebraic: invalid ball")

	// ErrConstantPolynomial is returned when a constant polynomial is supplied.
	ErrConstantPolynomial = errors.New("algebraic: polynomial must have degree >= 1")

	// ErrRootIndex is returned by FromPolynomial for an index outside the root list.
	ErrRootIndex = errors.New("algebraic: root index out of range")

	// ErrInvalidError signals a non-positive or non-finite target error.
	ErrInvalidError = errors.New("algebraic: error bound must be finite and > 0")

	// ErrNilNumber is returned when a nil *Number is passed as an operand.
	ErrNilNumber = errors.New("algebraic: nil number")
)

const (
	opFromBall       = "FromBall"
	opFromPolynomial = "FromPolynomial"
	opFromBoth       = "FromBoth"
	opRealRoots      = "RealRoots"
	opAdd            = "Add"
	opSub            = "Sub"
	opMul            = "Mul"
	opInv            = "Inv"
	opDiv            = "Div"
	opRefine         = "Refine"
	opDefine         = "DefineMinimalPolynomial"
	opConjugates     = "GaloisConjugates"
	opDescribe       = "Describe"
)

func algebraicErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
