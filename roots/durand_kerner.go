// SPDX-License-Identifier: MIT

package roots

import (
	"math"
	"math/big"
	"math/cmplx"

	"github.com/montanaflynn/stats"

	"github.com/katalvlaran/algebraics/poly"
)

// Durand–Kerner seed: g₀ = (seedRe + seedIm·i)·(√n)^(1/n).
const (
	seedRe = 0.4
	seedIm = 0.9
)

// AllComplex approximates all n = deg p complex roots of p by the
// Durand–Kerner iteration and returns discs of radius err around them.
//
// Implementation:
//   - Stage 1: guesses gₖ = g₀^(k+1), k = 0..n−1, with g₀ = (0.4 + 0.9i)·(√n)^(1/n).
//   - Stage 2: simultaneously replace every zₖ by zₖ − p(zₖ) / (lc·∏_{j≠k}(zₖ − zⱼ)).
//   - Stage 3: stop once the largest update magnitude is below err/2.
//
// Errors:
//   - ErrZeroPolynomial, ErrInvalidError.
//   - ErrNoConvergence (matches ErrPrecisionExhausted) after the iteration
//     ceiling (WithMaxIterations).
//
// Notes:
//   - Requires square-free p for fast convergence; no global guarantee exists.
//   - A constant polynomial has no roots and yields an empty list.
func AllComplex(p poly.Poly, err float64, opts ...Option) (ComplexList, error) {
	if p.IsZero() {
		return nil, rootsErrorf(opAllComplex, ErrZeroPolynomial)
	}
	if !(err > 0) || math.IsInf(err, 0) {
		return nil, rootsErrorf(opAllComplex, ErrInvalidError)
	}
	n := p.Degree()
	if n == 0 {
		return ComplexList{}, nil
	}
	o := gatherOptions(opts...)
	lc, _ := new(big.Float).SetInt(p.Leading()).Float64()

	scale := math.Pow(math.Sqrt(float64(n)), 1/float64(n))
	g0 := complex(seedRe*scale, seedIm*scale)
	cur := make([]complex128, n)
	cur[0] = g0
	for k := 1; k < n; k++ {
		cur[k] = g0 * cur[k-1]
	}

	next := make([]complex128, n)
	deltas := make([]float64, n)
	for iter := 0; iter < o.maxIterations; iter++ {
		for k, z := range cur {
			denom := complex(lc, 0)
			for j, w := range cur {
				if j != k {
					denom *= z - w
				}
			}
			next[k] = z - p.EvalComplex(z)/denom
			deltas[k] = cmplx.Abs(next[k] - z)
		}
		cur, next = next, cur

		largest, serr := stats.Max(deltas)
		if serr != nil {
			return nil, rootsErrorf(opAllComplex, serr)
		}
		if largest < err/2 {
			out := make(ComplexList, n)
			for k, z := range cur {
				out[k] = ComplexBall{Center: z, Radius: err}
			}

			return out, nil
		}
	}

	return nil, rootsErrorf(opAllComplex, ErrNoConvergence)
}
