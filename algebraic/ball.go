// SPDX-License-Identifier: MIT

package algebraic

import (
	"math"

	"github.com/katalvlaran/algebraics/roots"
)

// AddBall encloses x+y for x ∈ a, y ∈ b.
func AddBall(a, b roots.Ball) roots.Ball {
	return roots.Ball{Center: a.Center + b.Center, Radius: a.Radius + b.Radius}
}

// NegBall encloses −x for x ∈ a.
func NegBall(a roots.Ball) roots.Ball {
	return roots.Ball{Center: -a.Center, Radius: a.Radius}
}

// MulBall encloses x·y for x ∈ a, y ∈ b; the radius is
// |cₐ|·r_b + |c_b|·rₐ + rₐ·r_b.
func MulBall(a, b roots.Ball) roots.Ball {
	r := math.Abs(a.Center)*b.Radius + math.Abs(b.Center)*a.Radius + a.Radius*b.Radius

	return roots.Ball{Center: a.Center * b.Center, Radius: r}
}

// InvBall encloses 1/x for x ∈ a: center 1/c, radius r/(|c|·(|c|−r)).
// It fails with ErrArithmeticUndefined when a contains 0.
func InvBall(a roots.Ball) (roots.Ball, error) {
	if a.ContainsZero() {
		return roots.Ball{}, ErrArithmeticUndefined
	}
	abs := math.Abs(a.Center)

	return roots.Ball{Center: 1 / a.Center, Radius: a.Radius / (abs * (abs - a.Radius))}, nil
}
