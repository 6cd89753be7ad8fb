// SPDX-License-Identifier: MIT

package minpoly

import (
	"errors"
	"math"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/algebraics/integers"
	"github.com/katalvlaran/algebraics/poly"
	"github.com/katalvlaran/algebraics/roots"
	"github.com/katalvlaran/algebraics/subsetsum"
)

// Encode returns the subset-sum instance for degree deg and k bits per
// coefficient at x: item k·i+j is 2ʲ·xⁱ and the target is
// −1 + 2^(k−1)·Σᵢ₌₁..deg xⁱ.
//
// Errors:
//   - ErrBadBudget for k outside [1, MaxBits] or deg < 0.
func Encode(x float64, k, deg int) (subsetsum.Problem, error) {
	if k < 1 || k > MaxBits || deg < 0 {
		return subsetsum.Problem{}, ErrBadBudget
	}
	half := float64(integers.Pow2(k - 1))
	items := make([]float64, k*(deg+1))
	target := -1.0
	for i := 0; i <= deg; i++ {
		xi := math.Pow(x, float64(i))
		if i > 0 {
			target += half * xi
		}
		for j := 0; j < k; j++ {
			items[k*i+j] = math.Ldexp(xi, j)
		}
	}

	return subsetsum.Problem{Items: items, Target: target}, nil
}

// Decode maps an inclusion vector over an Encode instance with k bits per
// coefficient back to its polynomial:
//
//	constant term: 1 + Σⱼ e₀ⱼ2ʲ
//	xⁱ, i ≥ 1:     −2^(k−1) + Σⱼ eᵢⱼ2ʲ
//
// Errors:
//   - ErrBadCertificate when len(include) is not a positive multiple of k.
func Decode(include []bool, k int) (poly.Poly, error) {
	n := len(include)
	if k < 1 || k > MaxBits || n == 0 || n%k != 0 {
		return poly.Poly{}, minpolyErrorf(opDecode, ErrBadCertificate)
	}
	deg := n/k - 1
	coeffs := make([]int64, deg+1) // highest first
	for i := 0; i <= deg; i++ {
		c := -integers.Pow2(k - 1)
		if i == 0 {
			c = 1
		}
		for j := 0; j < k; j++ {
			if include[k*i+j] {
				c += integers.Pow2(j)
			}
		}
		coeffs[deg-i] = c
	}

	return poly.New(coeffs...), nil
}

// Find searches degrees 1..maxDeg for an integer polynomial with a root in b
// and coefficients in [−2^(maxK−1), 2^(maxK−1)] (the constant term in
// [1, 2^maxK]). The first candidate with strictly opposite signs at b.Lo()
// and b.Hi() is returned as a primitive polynomial with a positive leading
// coefficient.
//
// The result is the minimal polynomial whenever b isolates a number of degree
// at most maxDeg whose minimal polynomial fits the bit budget and no
// lower-degree candidate happens to bracket b.
//
// Errors:
//   - ErrInvalidBall, ErrBadBudget.
//   - ErrNotFound when no degree succeeds (errors.Is roots.ErrPrecisionExhausted).
//
// Complexity:
//   - O(maxDeg · n · 2^(n/2)) with n = maxK·(maxDeg+1).
func Find(b roots.Ball, maxK, maxDeg int, opts ...Option) (poly.Poly, error) {
	o := gatherOptions(opts...)
	if !b.Valid() {
		return poly.Poly{}, minpolyErrorf(opFind, ErrInvalidBall)
	}
	if maxK < 1 || maxK > MaxBits || maxDeg < 1 || maxK*(maxDeg+1) > subsetsum.MaxItems(o.solver...) {
		return poly.Poly{}, minpolyErrorf(opFind, ErrBadBudget)
	}
	log := o.logger.WithFields(logrus.Fields{"op": opFind, "ball": b.String(), "k": maxK})

	for deg := 1; deg <= maxDeg; deg++ {
		prob, err := Encode(b.Center, maxK, deg)
		if err != nil {
			return poly.Poly{}, minpolyErrorf(opFind, err)
		}
		res, err := subsetsum.Certificate(prob, o.solver...)
		if errors.Is(err, subsetsum.ErrInfeasible) {
			// xⁱ left the float64 range; higher degrees only get worse
			log.WithField("degree", deg).Debug("subset-sum instance out of range")
			break
		}
		if err != nil {
			return poly.Poly{}, minpolyErrorf(opFind, err)
		}
		cand, err := Decode(res.Include, maxK)
		if err != nil {
			return poly.Poly{}, minpolyErrorf(opFind, err)
		}
		entry := log.WithFields(logrus.Fields{
			"degree":    deg,
			"error":     res.Error,
			"candidate": cand.String(),
		})
		if roots.Brackets(cand, b) {
			entry.Debug("candidate brackets the ball")

			return cand.Primitive(), nil
		}
		entry.Debug("candidate rejected")
	}

	return poly.Poly{}, minpolyErrorf(opFind, ErrNotFound)
}
