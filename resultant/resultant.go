// SPDX-License-Identifier: MIT

package resultant

import (
	"math/big"

	"github.com/katalvlaran/algebraics/interpolate"
	"github.com/katalvlaran/algebraics/matrix"
	"github.com/katalvlaran/algebraics/poly"
)

// builder returns the Sylvester matrix of one sample.
type builder func(p, q poly.Poly, s int64, prec uint) (*matrix.Dense, error)

// Sum returns an integer polynomial of degree deg p · deg q whose roots are
// α+β for every root α of p and β of q (with multiplicity).
//
// Implementation:
//   - Stage 1: for s = 0..m·n build SylvesterSum(p, q, s) and take its determinant.
//   - Stage 2: interpolate.Integer over the m·n+1 samples.
//
// Errors:
//   - ErrConstantPolynomial when p or q has degree < 1.
//   - matrix and interpolate errors (wrapped).
//
// Complexity:
//   - O(m·n·(m+n)³) big.Float operations plus one O((m·n)³) interpolation.
func Sum(p, q poly.Poly, opts ...Option) (poly.Poly, error) {
	o := gatherOptions(opts...)
	r, err := combine(p, q, o.prec, func(p, q poly.Poly, s int64, prec uint) (*matrix.Dense, error) {
		return sylvester(p.Coefficients(), q.Substitute(-1, s).Coefficients(), prec)
	})
	if err != nil {
		return poly.Poly{}, resultantErrorf(opSum, err)
	}

	return r, nil
}

// Product returns an integer polynomial of degree deg p · deg q whose roots
// are α·β for every root α of p and β of q (with multiplicity).
//
// Same construction as Sum with SylvesterProduct samples.
func Product(p, q poly.Poly, opts ...Option) (poly.Poly, error) {
	o := gatherOptions(opts...)
	r, err := combine(p, q, o.prec, func(p, q poly.Poly, s int64, prec uint) (*matrix.Dense, error) {
		return sylvester(p.Coefficients(), scaledReverse(q, s), prec)
	})
	if err != nil {
		return poly.Poly{}, resultantErrorf(opProduct, err)
	}

	return r, nil
}

func combine(p, q poly.Poly, prec uint, build builder) (poly.Poly, error) {
	m, n := p.Degree(), q.Degree()
	if m < 1 || n < 1 {
		return poly.Poly{}, ErrConstantPolynomial
	}
	d := m * n
	vals := make([]*big.Float, d+1)
	for s := 0; s <= d; s++ {
		syl, err := build(p, q, int64(s), prec)
		if err != nil {
			return poly.Poly{}, err
		}
		if vals[s], err = matrix.Det(syl); err != nil {
			return poly.Poly{}, err
		}
	}

	return interpolate.Integer(vals, d, interpolate.WithPrecision(prec))
}
