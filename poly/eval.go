// SPDX-License-Identifier: MIT

package poly

import (
	"math"
	"math/big"
)

// DefaultEvalPrec is the working precision used by EvalFloat and by Eval when
// x carries no precision of its own.
const DefaultEvalPrec = 256

// Eval returns p(x) by Horner's scheme at the precision of x
// (DefaultEvalPrec if x has none).
func (p Poly) Eval(x *big.Float) *big.Float {
	prec := x.Prec()
	if prec == 0 {
		prec = DefaultEvalPrec
	}
	c := p.raw()
	acc := new(big.Float).SetPrec(prec).SetInt(c[0])
	term := new(big.Float).SetPrec(prec)
	for _, v := range c[1:] {
		acc.Mul(acc, x)
		acc.Add(acc, term.SetInt(v))
	}

	return acc
}

// EvalFloat returns p(x) rounded to float64. Intermediate arithmetic runs at
// DefaultEvalPrec bits, so cancellation in the float64 domain does not occur.
func (p Poly) EvalFloat(x float64) float64 {
	f, _ := p.Eval(new(big.Float).SetPrec(DefaultEvalPrec).SetFloat64(x)).Float64()

	return f
}

// Sign returns the exact sign (-1, 0, +1) of p(x). Every float64 is a dyadic
// rational, so the evaluation is carried out in big.Rat without rounding.
// NaN and ±Inf are signed by the dominant term.
func (p Poly) Sign(x float64) int {
	if math.IsNaN(x) {
		return 0
	}
	if math.IsInf(x, 0) {
		lc := p.raw()[0].Sign()
		if x < 0 && p.Degree()%2 == 1 {
			return -lc
		}

		return lc
	}

	return p.SignRat(new(big.Rat).SetFloat64(x))
}

// SignRat returns the exact sign of p(x) for a rational x.
func (p Poly) SignRat(x *big.Rat) int {
	c := p.raw()
	acc := new(big.Rat).SetInt(c[0])
	term := new(big.Rat)
	for _, v := range c[1:] {
		acc.Mul(acc, x)
		acc.Add(acc, term.SetInt(v))
	}

	return acc.Sign()
}

// EvalComplex returns p(z) in complex128 arithmetic by Horner's scheme.
func (p Poly) EvalComplex(z complex128) complex128 {
	c := p.raw()
	acc := complex(bigToFloat(c[0]), 0)
	for _, v := range c[1:] {
		acc = acc*z + complex(bigToFloat(v), 0)
	}

	return acc
}

func bigToFloat(v *big.Int) float64 {
	f, _ := new(big.Float).SetInt(v).Float64()

	return f
}
