// SPDX-License-Identifier: MIT

package interpolate

import (
	"math/big"

	"github.com/katalvlaran/algebraics/integers"
	"github.com/katalvlaran/algebraics/matrix"
	"github.com/katalvlaran/algebraics/poly"
)

// VandermondeInverse returns the inverse of the (d+1)×(d+1) matrix V[i][j] = iʲ.
//
// Errors:
//   - ErrNegativeDegree for d < 0.
//   - matrix errors from the inversion (wrapped).
func VandermondeInverse(degree int, opts ...Option) (*matrix.Dense, error) {
	if degree < 0 {
		return nil, interpolateErrorf(opVandermondeInverse, ErrNegativeDegree)
	}
	o := gatherOptions(opts...)

	return vandermondeInverse(degree, o.prec)
}

func vandermondeInverse(degree int, prec uint) (*matrix.Dense, error) {
	n := degree + 1
	v, err := matrix.NewDense(n, n, matrix.WithPrecision(prec))
	if err != nil {
		return nil, interpolateErrorf(opVandermondeInverse, err)
	}
	pow := new(big.Int)
	base := new(big.Int)
	for i := 0; i < n; i++ {
		pow.SetInt64(1) // 0⁰ = 1
		base.SetInt64(int64(i))
		for j := 0; j < n; j++ {
			if err = v.SetInt(i, j, pow); err != nil {
				return nil, interpolateErrorf(opVandermondeInverse, err)
			}
			pow.Mul(pow, base)
		}
	}
	inv, err := matrix.Inverse(v)
	if err != nil {
		return nil, interpolateErrorf(opVandermondeInverse, err)
	}

	return inv, nil
}

// Integer returns the integer polynomial of degree ≤ d whose values at
// x = 0, 1, …, d are vals (up to a positive rational scale that clears
// denominators).
//
// Implementation:
//   - Stage 1: validate len(vals) == degree+1.
//   - Stage 2: coefficients (ascending) = V⁻¹ · vals.
//   - Stage 3: reconstruct each coefficient as a rational, scale by the lcm of
//     the denominators, and reverse into highest-first order.
//
// Errors:
//   - ErrNegativeDegree, ErrSampleCount.
//   - integers.ErrNoConvergent if a coefficient is not a recognisable rational.
//   - matrix errors from the Vandermonde solve.
//
// Complexity:
//   - O(d³) big.Float operations.
func Integer(vals []*big.Float, degree int, opts ...Option) (poly.Poly, error) {
	if degree < 0 {
		return poly.Poly{}, interpolateErrorf(opInteger, ErrNegativeDegree)
	}
	if len(vals) != degree+1 {
		return poly.Poly{}, interpolateErrorf(opInteger, ErrSampleCount)
	}
	o := gatherOptions(opts...)

	inv, err := vandermondeInverse(degree, o.prec)
	if err != nil {
		return poly.Poly{}, interpolateErrorf(opInteger, err)
	}
	ascending, err := matrix.MatVec(inv, vals)
	if err != nil {
		return poly.Poly{}, interpolateErrorf(opInteger, err)
	}

	tol := new(big.Float).SetPrec(o.prec).SetMantExp(big.NewFloat(1), -int(o.tolBits))
	nums := make([]*big.Int, len(ascending))
	dens := make([]int64, len(ascending))
	for j, c := range ascending {
		// integral coefficients of any size take the direct route
		if n, ok := nearestInt(c, tol); ok {
			nums[j], dens[j] = n, 1
			continue
		}
		r, err := integers.Reconstruct(c, tol)
		if err != nil {
			return poly.Poly{}, interpolateErrorf(opInteger, err)
		}
		nums[j], dens[j] = big.NewInt(r.Num), r.Den
	}

	coeffs := make([]*big.Int, len(nums))
	lcm := commonDenominator(dens)
	for j := range nums {
		c := new(big.Int).Quo(lcm, big.NewInt(dens[j]))
		c.Mul(c, nums[j])
		coeffs[len(nums)-1-j] = c
	}

	return poly.FromBig(coeffs), nil
}

// commonDenominator returns the lcm of the positive denominators dens. It is
// accumulated in big.Int since the lcm of int64 values need not fit int64.
func commonDenominator(dens []int64) *big.Int {
	lcm := big.NewInt(1)
	d, g := new(big.Int), new(big.Int)
	for _, den := range dens {
		d.SetInt64(den)
		g.GCD(nil, nil, lcm, d)
		lcm.Quo(lcm, g).Mul(lcm, d)
	}

	return lcm
}

// nearestInt rounds x half-up and reports whether the result lies within tol of x.
func nearestInt(x, tol *big.Float) (*big.Int, bool) {
	half := new(big.Float).SetPrec(x.Prec()).SetFloat64(0.5)
	shifted := new(big.Float).SetPrec(x.Prec()).Add(x, half)
	n, acc := shifted.Int(nil)
	if acc == big.Above {
		n.Sub(n, big.NewInt(1))
	}
	diff := new(big.Float).SetPrec(x.Prec()).SetInt(n)
	diff.Sub(x, diff).Abs(diff)

	return n, diff.Cmp(tol) <= 0
}
