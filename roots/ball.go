// SPDX-License-Identifier: MIT

package roots

import (
	"fmt"
	"math"
	"math/cmplx"
	"strings"
)

// Ball is a real enclosure: the true value lies in [Center−Radius, Center+Radius].
type Ball struct {
	Center float64
	Radius float64
}

// Lo returns the lower end of the enclosure.
func (b Ball) Lo() float64 { return b.Center - b.Radius }

// Hi returns the upper end of the enclosure.
func (b Ball) Hi() float64 { return b.Center + b.Radius }

// Contains reports whether x lies in the closed enclosure.
func (b Ball) Contains(x float64) bool { return x >= b.Lo() && x <= b.Hi() }

// ContainsZero reports whether the enclosure straddles or touches 0.
func (b Ball) ContainsZero() bool { return math.Abs(b.Center) <= b.Radius }

// Valid reports whether the center is finite and the radius finite and non-negative.
func (b Ball) Valid() bool {
	return !math.IsNaN(b.Center) && !math.IsInf(b.Center, 0) &&
		!math.IsNaN(b.Radius) && !math.IsInf(b.Radius, 0) && b.Radius >= 0
}

// String renders the ball as "center ± radius".
func (b Ball) String() string {
	return fmt.Sprintf("%.12g ± %.3g", b.Center, b.Radius)
}

// ComplexBall is a complex enclosure: a disc of Radius around Center.
type ComplexBall struct {
	Center complex128
	Radius float64
}

// Contains reports whether z lies in the closed disc.
func (b ComplexBall) Contains(z complex128) bool { return cmplx.Abs(z-b.Center) <= b.Radius }

// IsReal reports whether the disc meets the real axis.
func (b ComplexBall) IsReal() bool { return math.Abs(imag(b.Center)) <= b.Radius }

// String renders the disc as "re+imi ± radius".
func (b ComplexBall) String() string {
	return fmt.Sprintf("%.12g%+.12gi ± %.3g", real(b.Center), imag(b.Center), b.Radius)
}

// List is an ordered list of real enclosures; identical entries encode multiplicity.
type List []Ball

// String renders one "Root i: ball" line per entry.
func (l List) String() string {
	var sb strings.Builder
	for i, b := range l {
		fmt.Fprintf(&sb, "Root %d: %s\n", i, b)
	}

	return sb.String()
}

// ComplexList is a list of complex enclosures.
type ComplexList []ComplexBall

// String renders one "Root i: ball" line per entry.
func (l ComplexList) String() string {
	var sb strings.Builder
	for i, b := range l {
		fmt.Fprintf(&sb, "Root %d: %s\n", i, b)
	}

	return sb.String()
}

// repeat returns n copies of b.
func repeat(b Ball, n int) List {
	out := make(List, n)
	for i := range out {
		out[i] = b
	}

	return out
}
