// SPDX-License-Identifier: MIT

package algebraic

import (
	"errors"
	"math"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/algebraics/minpoly"
	"github.com/katalvlaran/algebraics/poly"
	"github.com/katalvlaran/algebraics/roots"
)

// Refine shrinks the ball to radius below err. Without a polynomial the
// radius is simply set to err. With one, the roots of the polynomial inside
// the ball are isolated to err and the smallest is kept. A ball already
// within err is left unchanged.
//
// Errors:
//   - ErrInvalidError for a non-positive or non-finite err.
//   - ErrNoRootFound when the polynomial has no root in the ball.
//   - roots.ErrPrecisionExhausted (wrapped) when err is below float64 resolution.
func (n *Number) Refine(err float64) error {
	if !(err > 0) || math.IsInf(err, 0) {
		return algebraicErrorf(opRefine, ErrInvalidError)
	}
	if n.ball.Radius <= err {
		return nil
	}
	if !n.known {
		n.ball.Radius = err
		return nil
	}
	l, e := roots.Isolate(n.p, n.ball.Lo(), n.ball.Hi(), err)
	if e != nil {
		return algebraicErrorf(opRefine, e)
	}
	if len(l) == 0 {
		return algebraicErrorf(opRefine, ErrNoRootFound)
	}
	n.opts.logger.WithFields(logrus.Fields{
		"op":    opRefine,
		"roots": len(l),
		"error": err,
	}).Debug("ball refined")
	n.ball = l[0]

	return nil
}

// DefineMinimalPolynomial searches for the polynomial with minpoly.Find when
// it is not known yet; a known polynomial is kept as is. Not finding one
// within the budget leaves the polynomial unknown and is not an error. A
// candidate is stored as its square-free part, and only when that has
// exactly one root in the ball.
//
// Errors:
//   - minpoly.ErrBadBudget (wrapped) for an invalid budget.
func (n *Number) DefineMinimalPolynomial(maxK, maxDeg int) error {
	if n.known {
		return nil
	}
	p, err := minpoly.Find(n.ball, maxK, maxDeg, minpoly.WithLogger(n.opts.logger))
	if errors.Is(err, minpoly.ErrNotFound) {
		n.opts.logger.WithFields(logrus.Fields{
			"op":     opDefine,
			"degree": maxDeg,
		}).Debug("no polynomial within budget")

		return nil
	}
	if err != nil {
		return algebraicErrorf(opDefine, err)
	}
	sf, ok := isolating(p, n.ball)
	if !ok {
		n.opts.logger.WithFields(logrus.Fields{
			"op":        opDefine,
			"candidate": p.String(),
			"ball":      n.ball.String(),
		}).Debug("candidate has several roots in the ball")

		return nil
	}
	n.p, n.known = sf, true

	return nil
}

// isolating returns the square-free part of p when it has exactly one root
// in b.
func isolating(p poly.Poly, b roots.Ball) (poly.Poly, bool) {
	sf := p.SquareFree()
	if sf.IsConstant() || roots.Count(sf, b.Lo(), b.Hi()) != 1 {
		return poly.Poly{}, false
	}

	return sf, true
}
