// SPDX-License-Identifier: MIT

package resultant

import (
	"errors"
	"fmt"
)

var (
	// ErrConstantPolynomial is returned when an operand has degree < 1.
	ErrConstantPolynomial = errors.New("resultant: polynomial must have degree >= 1")

	// ErrAmbiguousFactor is returned by a Factorer when zero or several
	// candidate roots fall inside the target ball.
	ErrAmbiguousFactor = errors.New("resultant: no unique factor for the ball")

	// ErrNilFactorer is returned by CombineSum and CombineProduct for a nil Factorer.
	ErrNilFactorer = errors.New("resultant: nil factorer")
)

const (
	opSylvester      = "Sylvester"
	opSum            = "Sum"
	opProduct        = "Product"
	opCombineSum     = "CombineSum"
	opCombineProduct = "CombineProduct"
	opFactor         = "SquareFreeFactorer.Factor"
)

func resultantErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
