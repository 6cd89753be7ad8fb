// SPDX-License-Identifier: MIT

package interpolate

import (
	"errors"
	"fmt"
)

var (
	// ErrSampleCount is returned when len(values) != degree+1.
	ErrSampleCount = errors.New("interpolate: sample count must equal degree+1")

	// ErrNegativeDegree is returned for degree < 0.
	ErrNegativeDegree = errors.New("interpolate: negative degree")
)

const (
	opInteger            = "Integer"
	opVandermondeInverse = "VandermondeInverse"
)

func interpolateErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
