// SPDX-License-Identifier: MIT

package subsetsum

import (
	"errors"
	"fmt"
)

// ErrInfeasible is returned when an instance is outside the solver's
// supported range: too many items, or a non-finite item, target or sum.
var ErrInfeasible = errors.New("subsetsum: infeasible instance")

const (
	opSolve       = "Solve"
	opCertificate = "Certificate"
)

func subsetsumErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
