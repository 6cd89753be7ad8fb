// SPDX-License-Identifier: MIT

package integers

import (
	"fmt"
	"math/big"
)

// MaxContinuedFractionTerms bounds the continued-fraction expansion performed
// by Reconstruct.
const MaxContinuedFractionTerms = 64

// minReconstructPrec is the working precision floor for the expansion.
const minReconstructPrec = 64

// Rational is an int64 fraction Num/Den.
type Rational struct {
	Num int64
	Den int64
}

// NewRational returns num/den in lowest terms.
func NewRational(num, den int64) (Rational, error) {
	return Rational{Num: num, Den: den}.Reduce()
}

// Reduce returns r in lowest terms with a positive denominator.
func (r Rational) Reduce() (Rational, error) {
	if r.Den == 0 {
		return Rational{}, ErrZeroDenominator
	}
	g := GCD(r.Num, r.Den)
	if g == 0 {
		g = 1
	}
	num, den := r.Num/g, r.Den/g
	if den < 0 {
		num, den = -num, -den
	}

	return Rational{Num: num, Den: den}, nil
}

// Int returns r as an integer, or ErrNotInteger if it is a proper fraction.
func (r Rational) Int() (int64, error) {
	red, err := r.Reduce()
	if err != nil {
		return 0, err
	}
	if red.Den != 1 {
		return 0, fmt.Errorf("Rational.Int(%s): %w", red, ErrNotInteger)
	}

	return red.Num, nil
}

// Float64 returns the nearest float64 to r.
func (r Rational) Float64() float64 {
	f, _ := new(big.Rat).SetFrac64(r.Num, r.Den).Float64()

	return f
}

// String renders r as "num/den".
func (r Rational) String() string {
	return fmt.Sprintf("%d/%d", r.Num, r.Den)
}

// Reconstruct recovers the rational closest in the continued-fraction sense
// to x: it expands x term by term and returns the first convergent h/k with
// |x − h/k| ≤ tol.
//
// Implementation:
//   - Stage 1: a₀ = ⌊x⌋, seed the convergent recurrences h₋₁=1, h₋₂=0, k₋₁=0, k₋₂=1.
//   - Stage 2: hᵢ = aᵢ·hᵢ₋₁ + hᵢ₋₂, kᵢ = aᵢ·kᵢ₋₁ + kᵢ₋₂; stop on |x − hᵢ/kᵢ| ≤ tol.
//   - Stage 3: r ← 1/(r − aᵢ), aᵢ₊₁ = ⌊r⌋ and repeat.
//
// Errors:
//   - ErrNilInput if x or tol is nil.
//   - ErrNoConvergent after MaxContinuedFractionTerms terms, or once a
//     convergent leaves the int64 range.
//
// The returned denominator is always positive.
func Reconstruct(x, tol *big.Float) (Rational, error) {
	if x == nil || tol == nil {
		return Rational{}, ErrNilInput
	}
	prec := x.Prec()
	if prec < minReconstructPrec {
		prec = minReconstructPrec
	}

	var (
		one       = big.NewInt(1)
		hPrev     = big.NewInt(0) // h₋₂
		h         = big.NewInt(1) // h₋₁
		kPrev     = big.NewInt(1) // k₋₂
		k         = big.NewInt(0) // k₋₁
		r         = new(big.Float).SetPrec(prec).Set(x)
		approx    = new(big.Float).SetPrec(prec)
		diff      = new(big.Float).SetPrec(prec)
		hf        = new(big.Float).SetPrec(prec)
		kf        = new(big.Float).SetPrec(prec)
		aBig      *big.Int
		acc       big.Accuracy
		term      int
		nextH     = new(big.Int)
		nextK     = new(big.Int)
		remainder = new(big.Float).SetPrec(prec)
	)
	for term = 0; term < MaxContinuedFractionTerms; term++ {
		// aᵢ = ⌊r⌋; Int truncates toward zero, so step down for negative non-integers
		aBig, acc = r.Int(nil)
		if acc == big.Above {
			aBig.Sub(aBig, one)
		}

		nextH.Mul(aBig, h).Add(nextH, hPrev)
		nextK.Mul(aBig, k).Add(nextK, kPrev)
		hPrev.Set(h)
		h.Set(nextH)
		kPrev.Set(k)
		k.Set(nextK)
		if !h.IsInt64() || !k.IsInt64() {
			break
		}

		hf.SetInt(h)
		kf.SetInt(k)
		approx.Quo(hf, kf)
		diff.Sub(x, approx).Abs(diff)
		if diff.Cmp(tol) <= 0 {
			return Rational{Num: h.Int64(), Den: k.Int64()}.Reduce()
		}

		remainder.SetInt(aBig)
		remainder.Sub(r, remainder)
		if remainder.Sign() == 0 {
			// x is exactly h/k but tol is negative; nothing more to expand
			break
		}
		r.Quo(new(big.Float).SetPrec(prec).SetInt64(1), remainder)
	}

	return Rational{}, fmt.Errorf("Reconstruct(%s): %w", x.Text('g', 20), ErrNoConvergent)
}

// Denominator returns the denominator of Reconstruct(x, tol).
func Denominator(x, tol *big.Float) (int64, error) {
	r, err := Reconstruct(x, tol)
	if err != nil {
		return 0, err
	}

	return r.Den, nil
}
