// SPDX-License-Identifier: MIT

package resultant

import (
	"math/big"

	"github.com/katalvlaran/algebraics/matrix"
	"github.com/katalvlaran/algebraics/poly"
)

// Sylvester returns the (m+n)×(m+n) Sylvester matrix of f and g, given as
// highest-degree-first coefficient slices of formal degrees m = len(f)−1 and
// n = len(g)−1. Leading zeros are kept: the formal degree is what the caller
// passed. Rows 0..n−1 hold shifted copies of f, rows n..n+m−1 shifted copies
// of g. Nil entries count as zero.
//
// Errors:
//   - ErrConstantPolynomial when m+n < 1.
func Sylvester(f, g []*big.Int, opts ...Option) (*matrix.Dense, error) {
	o := gatherOptions(opts...)

	return sylvester(f, g, o.prec)
}

func sylvester(f, g []*big.Int, prec uint) (*matrix.Dense, error) {
	m, n := len(f)-1, len(g)-1
	if m < 0 || n < 0 || m+n < 1 {
		return nil, resultantErrorf(opSylvester, ErrConstantPolynomial)
	}
	size := m + n
	s, err := matrix.NewDense(size, size, matrix.WithPrecision(prec))
	if err != nil {
		return nil, resultantErrorf(opSylvester, err)
	}
	if err = placeShifts(s, f, 0, n); err != nil {
		return nil, resultantErrorf(opSylvester, err)
	}
	if err = placeShifts(s, g, n, m); err != nil {
		return nil, resultantErrorf(opSylvester, err)
	}

	return s, nil
}

// placeShifts writes count copies of c starting at row first, each shifted
// one column to the right of the previous one.
func placeShifts(s *matrix.Dense, c []*big.Int, first, count int) error {
	for i := 0; i < count; i++ {
		for j, v := range c {
			if v == nil || v.Sign() == 0 {
				continue
			}
			if err := s.SetInt(first+i, i+j, v); err != nil {
				return err
			}
		}
	}

	return nil
}

// SylvesterSum returns the Sylvester matrix in y of p(y) and q(s − y). Its
// determinant is the value at x = s of the polynomial whose roots are the
// pairwise sums of the roots of p and q.
//
// Errors:
//   - ErrConstantPolynomial when p or q has degree < 1.
func SylvesterSum(p, q poly.Poly, s int64, opts ...Option) (*matrix.Dense, error) {
	if p.Degree() < 1 || q.Degree() < 1 {
		return nil, resultantErrorf(opSylvester, ErrConstantPolynomial)
	}
	o := gatherOptions(opts...)

	return sylvester(p.Coefficients(), q.Substitute(-1, s).Coefficients(), o.prec)
}

// SylvesterProduct returns the Sylvester matrix in y of p(y) and yⁿ·q(s/y),
// n = deg q. The second operand is built with its formal degree n, i.e. the
// coefficients [a₀, a₁s, …, aₙsⁿ] highest first, so s = 0 needs no special case.
//
// Errors:
//   - ErrConstantPolynomial when p or q has degree < 1.
func SylvesterProduct(p, q poly.Poly, s int64, opts ...Option) (*matrix.Dense, error) {
	if p.Degree() < 1 || q.Degree() < 1 {
		return nil, resultantErrorf(opSylvester, ErrConstantPolynomial)
	}
	o := gatherOptions(opts...)

	return sylvester(p.Coefficients(), scaledReverse(q, s), o.prec)
}

// scaledReverse returns [a₀, a₁s, …, aₙsⁿ] for q = aₙxⁿ + … + a₀.
func scaledReverse(q poly.Poly, s int64) []*big.Int {
	n := q.Degree()
	out := make([]*big.Int, n+1)
	pow := big.NewInt(1)
	base := big.NewInt(s)
	for k := 0; k <= n; k++ {
		out[k] = new(big.Int).Mul(q.Coeff(k), pow)
		pow.Mul(pow, base)
	}

	return out
}
