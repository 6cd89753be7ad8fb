// SPDX-License-Identifier: MIT

package resultant

import (
	"github.com/katalvlaran/algebraics/poly"
	"github.com/katalvlaran/algebraics/roots"
)

// Factorer selects, from a generally reducible integer polynomial, the factor
// whose root lies in b. Implementations return ErrAmbiguousFactor when no
// factor, or more than one, qualifies.
type Factorer interface {
	Factor(p poly.Poly, b roots.Ball) (poly.Poly, error)
}

// FactorFunc adapts a plain function to Factorer.
type FactorFunc func(p poly.Poly, b roots.Ball) (poly.Poly, error)

// Factor calls f(p, b).
func (f FactorFunc) Factor(p poly.Poly, b roots.Ball) (poly.Poly, error) { return f(p, b) }

// SquareFreeFactorer returns the square-free primitive part of p when it has
// exactly one real root in (b.Lo(), b.Hi()]. The result defines the root
// uniquely together with b but need not be irreducible.
type SquareFreeFactorer struct{}

// Factor implements Factorer.
func (SquareFreeFactorer) Factor(p poly.Poly, b roots.Ball) (poly.Poly, error) {
	if p.Degree() < 1 {
		return poly.Poly{}, resultantErrorf(opFactor, ErrConstantPolynomial)
	}
	sf := p.SquareFree().Primitive()
	if roots.Count(sf, b.Lo(), b.Hi()) != 1 {
		return poly.Poly{}, resultantErrorf(opFactor, ErrAmbiguousFactor)
	}

	return sf, nil
}

// CombineSum returns the factor of Sum(p, q) chosen by f for the ball b, which
// should enclose the target sum.
//
// Errors:
//   - ErrNilFactorer, ErrConstantPolynomial.
//   - whatever f returns (typically ErrAmbiguousFactor).
func CombineSum(p, q poly.Poly, b roots.Ball, f Factorer, opts ...Option) (poly.Poly, error) {
	if f == nil {
		return poly.Poly{}, resultantErrorf(opCombineSum, ErrNilFactorer)
	}
	r, err := Sum(p, q, opts...)
	if err != nil {
		return poly.Poly{}, resultantErrorf(opCombineSum, err)
	}
	out, err := f.Factor(r, b)
	if err != nil {
		return poly.Poly{}, resultantErrorf(opCombineSum, err)
	}

	return out, nil
}

// CombineProduct is CombineSum for Product.
func CombineProduct(p, q poly.Poly, b roots.Ball, f Factorer, opts ...Option) (poly.Poly, error) {
	if f == nil {
		return poly.Poly{}, resultantErrorf(opCombineProduct, ErrNilFactorer)
	}
	r, err := Product(p, q, opts...)
	if err != nil {
		return poly.Poly{}, resultantErrorf(opCombineProduct, err)
	}
	out, err := f.Factor(r, b)
	if err != nil {
		return poly.Poly{}, resultantErrorf(opCombineProduct, err)
	}

	return out, nil
}
