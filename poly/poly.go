// SPDX-License-Identifier: MIT

package poly

import (
	"math/big"

	"github.com/google/go-cmp/cmp"
)

// Poly is a polynomial with *big.Int coefficients, highest degree first.
// The zero value is the zero polynomial.
type Poly struct {
	c []*big.Int // highest degree first; len ≥ 1 once normalised
}

// Operation tags for error wrapping.
const (
	opMod         = "Mod"
	opDivExact    = "DivExact"
	opPow         = "Pow"
	opRaiseDegree = "RaiseDegree"
)

// bigComparer lets go-cmp compare *big.Int by value.
var bigComparer = cmp.Comparer(func(a, b *big.Int) bool { return a.Cmp(b) == 0 })

// New builds a polynomial from int64 coefficients, highest degree first.
// Leading zeros are stripped; no arguments yields the zero polynomial.
//
//	New(1, 0, -2) // x² − 2
func New(coeffs ...int64) Poly {
	c := make([]*big.Int, len(coeffs))
	for i, v := range coeffs {
		c[i] = big.NewInt(v)
	}

	return Poly{c: StripLeadingZeros(c)}
}

// FromBig builds a polynomial from *big.Int coefficients, highest degree first.
// The input is deep-copied and leading zeros are stripped. Nil entries read as 0.
func FromBig(coeffs []*big.Int) Poly {
	c := make([]*big.Int, len(coeffs))
	for i, v := range coeffs {
		if v == nil {
			c[i] = new(big.Int)
			continue
		}
		c[i] = new(big.Int).Set(v)
	}

	return Poly{c: StripLeadingZeros(c)}
}

// Zero returns the zero polynomial.
func Zero() Poly { return Poly{c: []*big.Int{new(big.Int)}} }

// Constant returns the constant polynomial v.
func Constant(v int64) Poly { return New(v) }

// Monomial returns c·xⁿ (n < 0 is treated as 0).
func Monomial(c int64, n int) Poly {
	if n < 0 {
		n = 0
	}
	coeffs := make([]*big.Int, n+1)
	coeffs[0] = big.NewInt(c)
	for i := 1; i <= n; i++ {
		coeffs[i] = new(big.Int)
	}

	return Poly{c: StripLeadingZeros(coeffs)}
}

// StripLeadingZeros drops leading zero coefficients from a highest-first slice,
// keeping at least one entry. An empty slice becomes [0]. The returned slice
// aliases the input.
func StripLeadingZeros(c []*big.Int) []*big.Int {
	i := 0
	for i < len(c)-1 && c[i].Sign() == 0 {
		i++
	}
	if len(c) == 0 {
		return []*big.Int{new(big.Int)}
	}

	return c[i:]
}

// raw returns the internal coefficient slice; callers must not mutate it.
func (p Poly) raw() []*big.Int {
	if len(p.c) == 0 {
		return []*big.Int{new(big.Int)}
	}

	return p.c
}

// Degree returns the degree of p. The zero polynomial has degree 0.
func (p Poly) Degree() int { return len(p.raw()) - 1 }

// IsZero reports whether p is the zero polynomial.
func (p Poly) IsZero() bool {
	c := p.raw()

	return len(c) == 1 && c[0].Sign() == 0
}

// IsConstant reports whether p has degree 0.
func (p Poly) IsConstant() bool { return p.Degree() == 0 }

// Leading returns a copy of the leading coefficient.
func (p Poly) Leading() *big.Int { return new(big.Int).Set(p.raw()[0]) }

// Trailing returns a copy of the constant term.
func (p Poly) Trailing() *big.Int { return p.Coeff(0) }

// Coeff returns a copy of the coefficient of xⁱ; out-of-range i yields 0.
func (p Poly) Coeff(i int) *big.Int {
	c := p.raw()
	d := len(c) - 1
	if i < 0 || i > d {
		return new(big.Int)
	}

	return new(big.Int).Set(c[d-i])
}

// Coefficients returns a deep copy of the coefficients, highest degree first.
func (p Poly) Coefficients() []*big.Int { return cloneInts(p.raw()) }

// Int64s returns the coefficients as int64 values, highest degree first.
// ok is false if any coefficient overflows int64.
func (p Poly) Int64s() (out []int64, ok bool) {
	c := p.raw()
	out = make([]int64, len(c))
	for i, v := range c {
		if !v.IsInt64() {
			return nil, false
		}
		out[i] = v.Int64()
	}

	return out, true
}

// Clone returns an independent copy of p.
func (p Poly) Clone() Poly { return Poly{c: cloneInts(p.raw())} }

// Equal reports whether p and q have identical coefficients.
func (p Poly) Equal(q Poly) bool {
	return cmp.Equal(p.raw(), q.raw(), bigComparer)
}

// Diff returns a human-readable coefficient diff between p and q, or "" if equal.
func Diff(p, q Poly) string {
	return cmp.Diff(p.raw(), q.raw(), bigComparer)
}

func cloneInts(c []*big.Int) []*big.Int {
	out := make([]*big.Int, len(c))
	for i, v := range c {
		out[i] = new(big.Int).Set(v)
	}

	return out
}

// zeros allocates n fresh zero coefficients.
func zeros(n int) []*big.Int {
	out := make([]*big.Int, n)
	for i := range out {
		out[i] = new(big.Int)
	}

	return out
}
