// SPDX-License-Identifier: MIT

package algebraic

import (
	"fmt"
	"math"
	"strings"

	"github.com/katalvlaran/algebraics/poly"
	"github.com/katalvlaran/algebraics/roots"
)

// Number is a real algebraic number: a ball that contains it and, when known,
// a square-free integer polynomial with exactly one root in that ball.
//
// The zero value is not usable; build Numbers with FromBall, FromPolynomial
// or FromBoth.
type Number struct {
	ball  roots.Ball
	p     poly.Poly
	known bool
	opts  Options
}

// FromBall returns a Number known only through its enclosure.
//
// Errors:
//   - ErrInvalidBall for a non-finite center or radius, or a negative radius.
func FromBall(b roots.Ball, opts ...Option) (*Number, error) {
	if !b.Valid() {
		return nil, algebraicErrorf(opFromBall, ErrInvalidBall)
	}

	return &Number{ball: b, opts: gatherOptions(opts...)}, nil
}

// RealRoots returns enclosures of the distinct real roots of p in ascending
// order, each with radius below err (DefaultIsolationError when err ≤ 0).
// It is the list from which callers choose the index given to FromPolynomial.
//
// Errors:
//   - ErrConstantPolynomial for deg p < 1.
//   - roots errors from isolation (wrapped).
func RealRoots(p poly.Poly, err float64) (roots.List, error) {
	if p.Degree() < 1 {
		return nil, algebraicErrorf(opRealRoots, ErrConstantPolynomial)
	}
	if err <= 0 {
		err = DefaultIsolationError
	}
	l, e := roots.AllReal(p.SquareFree(), err)
	if e != nil {
		return nil, algebraicErrorf(opRealRoots, e)
	}

	return l, nil
}

// FromPolynomial returns the index-th real root (ascending) of p, enclosed to
// radius below err. A non-positive err selects the isolation error of the
// options. The stored polynomial is the square-free primitive part of p.
//
// Errors:
//   - ErrConstantPolynomial for deg p < 1.
//   - ErrNoRootFound when p has no real root.
//   - ErrRootIndex when index is outside the root list.
func FromPolynomial(p poly.Poly, index int, err float64, opts ...Option) (*Number, error) {
	o := gatherOptions(opts...)
	if p.Degree() < 1 {
		return nil, algebraicErrorf(opFromPolynomial, ErrConstantPolynomial)
	}
	if err <= 0 {
		err = o.isolation
	}
	sf := p.SquareFree()
	l, e := roots.AllReal(sf, err)
	if e != nil {
		return nil, algebraicErrorf(opFromPolynomial, e)
	}
	if len(l) == 0 {
		return nil, algebraicErrorf(opFromPolynomial, ErrNoRootFound)
	}
	if index < 0 || index >= len(l) {
		return nil, algebraicErrorf(opFromPolynomial, ErrRootIndex)
	}

	return &Number{ball: l[index], p: sf, known: true, opts: o}, nil
}

// FromBoth pairs p with b without checking that p has exactly one root in b;
// IsUniquelyDefined performs that check on demand.
//
// Errors:
//   - ErrInvalidBall, ErrConstantPolynomial.
func FromBoth(p poly.Poly, b roots.Ball, opts ...Option) (*Number, error) {
	if !b.Valid() {
		return nil, algebraicErrorf(opFromBoth, ErrInvalidBall)
	}
	if p.Degree() < 1 {
		return nil, algebraicErrorf(opFromBoth, ErrConstantPolynomial)
	}

	return &Number{ball: b, p: p.Clone(), known: true, opts: gatherOptions(opts...)}, nil
}

// Clone returns an independent copy of n with the same options.
func (n *Number) Clone() *Number {
	c := *n
	if n.known {
		c.p = n.p.Clone()
	}

	return &c
}

// Ball returns the current enclosure.
func (n *Number) Ball() roots.Ball { return n.ball }

// Poly returns a copy of the polynomial and whether it is known.
func (n *Number) Poly() (poly.Poly, bool) {
	if !n.known {
		return poly.Poly{}, false
	}

	return n.p.Clone(), true
}

// Degree returns the degree of the polynomial and whether it is known.
func (n *Number) Degree() (int, bool) {
	if !n.known {
		return 0, false
	}

	return n.p.Degree(), true
}

// IsUniquelyDefined reports whether the polynomial has exactly one distinct
// root in (Lo, Hi] of the ball. A Number without a polynomial is defined by
// its ball alone and reports true. Square-freeness of the polynomial is
// assumed, not re-verified.
func (n *Number) IsUniquelyDefined() bool {
	if !n.known {
		return true
	}

	return roots.Count(n.p, n.ball.Lo(), n.ball.Hi()) == 1
}

// GaloisConjugates returns enclosures of every complex root of the
// polynomial, computed to radius err (the isolation error when err ≤ 0).
//
// Errors:
//   - ErrUnknownPolynomial.
//   - roots.ErrNoConvergence (wrapped) when Durand–Kerner does not settle.
func (n *Number) GaloisConjugates(err float64) (roots.ComplexList, error) {
	if !n.known {
		return nil, algebraicErrorf(opConjugates, ErrUnknownPolynomial)
	}
	if err <= 0 || math.IsInf(err, 0) {
		err = n.opts.isolation
	}
	l, e := roots.AllComplex(n.p, err)
	if e != nil {
		return nil, algebraicErrorf(opConjugates, e)
	}

	return l, nil
}

// String renders the ball and the polynomial on one line.
func (n *Number) String() string {
	if !n.known {
		return n.ball.String() + " (polynomial unknown)"
	}

	return fmt.Sprintf("%s (polynomial %s)", n.ball, n.p)
}

// Describe renders everything known about n: ball, polynomial, Galois
// conjugates (to radius err) and degree, one item per line.
//
// Errors:
//   - errors from GaloisConjugates other than ErrUnknownPolynomial.
func (n *Number) Describe(err float64) (string, error) {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Approximate value: %s\n", n.ball)
	if !n.known {
		sb.WriteString("Polynomial unknown.\n")
		sb.WriteString("Galois conjugates unknown.\n")
		sb.WriteString("Degree unknown.\n")

		return sb.String(), nil
	}
	fmt.Fprintf(&sb, "Polynomial: %s\n", n.p)
	conj, e := n.GaloisConjugates(err)
	if e != nil {
		return "", algebraicErrorf(opDescribe, e)
	}
	sb.WriteString("Galois conjugates:\n")
	sb.WriteString(conj.String())
	fmt.Fprintf(&sb, "Degree: %d\n", n.p.Degree())

	return sb.String(), nil
}
