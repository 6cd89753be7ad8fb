// SPDX-License-Identifier: MIT

package roots

import (
	"math/big"

	"github.com/ALTree/bigfloat"

	"github.com/katalvlaran/algebraics/poly"
)

// boundPrec is the working precision of the coefficient-ratio roots.
const boundPrec = 128

// Bound returns R such that every complex root z of p satisfies |z| < R.
//
// Implementation:
//   - Fujiwara: 2·max(|a_{n−1}/a_n|, |a_{n−2}/a_n|^{1/2}, …, |a_0/(2a_n)|^{1/n}).
//   - Cauchy:   1 + max |a_i/a_n|.
//   - R = max(Fujiwara, Cauchy) + MinRootErr.
//
// The fractional powers are taken with bigfloat.Pow on exact ratios, so huge
// coefficients do not overflow float64 until the final conversion.
// A constant polynomial yields 1 + MinRootErr.
func Bound(p poly.Poly) float64 {
	n := p.Degree()
	if n == 0 {
		return 1 + MinRootErr
	}
	lead := new(big.Float).SetPrec(boundPrec).SetInt(p.Leading())
	lead.Abs(lead)

	var (
		fujiwara = new(big.Float).SetPrec(boundPrec)
		cauchy   = new(big.Float).SetPrec(boundPrec)
		ratio    = new(big.Float).SetPrec(boundPrec)
		exp      = new(big.Float).SetPrec(boundPrec)
		term     *big.Float
	)
	for i := 0; i < n; i++ {
		c := p.Coeff(i)
		if c.Sign() == 0 {
			continue
		}
		ratio.SetInt(c)
		ratio.Abs(ratio).Quo(ratio, lead)
		if ratio.Cmp(cauchy) > 0 {
			cauchy.Set(ratio)
		}
		if i == 0 {
			ratio.Quo(ratio, big.NewFloat(2))
		}
		// |a_i/a_n|^{1/(n−i)}
		exp.SetInt64(1)
		exp.Quo(exp, new(big.Float).SetPrec(boundPrec).SetInt64(int64(n-i)))
		term = bigfloat.Pow(ratio, exp)
		if term.Cmp(fujiwara) > 0 {
			fujiwara.Set(term)
		}
	}
	fujiwara.Mul(fujiwara, big.NewFloat(2))
	cauchy.Add(cauchy, big.NewFloat(1))

	best := cauchy
	if fujiwara.Cmp(cauchy) > 0 {
		best = fujiwara
	}
	r, _ := best.Float64()

	return r + MinRootErr
}
