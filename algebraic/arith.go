// SPDX-License-Identifier: MIT

package algebraic

import (
	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/algebraics/poly"
	"github.com/katalvlaran/algebraics/resultant"
	"github.com/katalvlaran/algebraics/roots"
)

// combiner is resultant.CombineSum or resultant.CombineProduct.
type combiner func(p, q poly.Poly, b roots.Ball, f resultant.Factorer, opts ...resultant.Option) (poly.Poly, error)

// Add returns n + m. The ball is AddBall of the operand balls. When both
// polynomials are known, the result's polynomial is the factor of their sum
// resultant chosen by the factorer for the result ball.
//
// Errors:
//   - ErrNilNumber.
//   - resultant.ErrAmbiguousFactor (wrapped) when the result ball does not
//     single out one factor; refining the operands first usually helps.
func (n *Number) Add(m *Number) (*Number, error) {
	if n == nil || m == nil {
		return nil, algebraicErrorf(opAdd, ErrNilNumber)
	}
	out, err := n.binary(opAdd, m, AddBall(n.ball, m.ball), resultant.CombineSum)
	if err != nil {
		return nil, algebraicErrorf(opAdd, err)
	}

	return out, nil
}

// Sub returns n − m as n + (−m).
func (n *Number) Sub(m *Number) (*Number, error) {
	if n == nil || m == nil {
		return nil, algebraicErrorf(opSub, ErrNilNumber)
	}
	neg := m.Neg()
	out, err := n.binary(opSub, neg, AddBall(n.ball, neg.ball), resultant.CombineSum)
	if err != nil {
		return nil, algebraicErrorf(opSub, err)
	}

	return out, nil
}

// Neg returns −n; the polynomial becomes p(−x), normalised to a positive
// leading coefficient. The negation of a nil Number is nil.
func (n *Number) Neg() *Number {
	if n == nil {
		return nil
	}
	out := &Number{ball: NegBall(n.ball), opts: n.opts}
	if n.known {
		out.p, out.known = n.p.Substitute(-1, 0).Primitive(), true
	}

	return out
}

// Mul returns n · m with the ball MulBall of the operand balls and, when both
// polynomials are known, the factor of their product resultant.
//
// Errors:
//   - as for Add.
func (n *Number) Mul(m *Number) (*Number, error) {
	if n == nil || m == nil {
		return nil, algebraicErrorf(opMul, ErrNilNumber)
	}
	out, err := n.binary(opMul, m, MulBall(n.ball, m.ball), resultant.CombineProduct)
	if err != nil {
		return nil, algebraicErrorf(opMul, err)
	}

	return out, nil
}

// Inv returns 1/n; the polynomial becomes its coefficient reversal xᵈ·p(1/x),
// normalised to a positive leading coefficient.
//
// Errors:
//   - ErrNilNumber for a nil receiver.
//   - ErrArithmeticUndefined when the ball contains 0.
func (n *Number) Inv() (*Number, error) {
	if n == nil {
		return nil, algebraicErrorf(opInv, ErrNilNumber)
	}
	b, err := InvBall(n.ball)
	if err != nil {
		return nil, algebraicErrorf(opInv, err)
	}
	out := &Number{ball: b, opts: n.opts}
	if n.known {
		out.p, out.known = n.p.Reverse().Primitive(), true
	}

	return out, nil
}

// Div returns n / m as n · (1/m).
//
// Errors:
//   - ErrArithmeticUndefined when the ball of m contains 0.
//   - as for Mul.
func (n *Number) Div(m *Number) (*Number, error) {
	if n == nil || m == nil {
		return nil, algebraicErrorf(opDiv, ErrNilNumber)
	}
	inv, err := m.Inv()
	if err != nil {
		return nil, algebraicErrorf(opDiv, err)
	}
	out, err := n.binary(opDiv, inv, MulBall(n.ball, inv.ball), resultant.CombineProduct)
	if err != nil {
		return nil, algebraicErrorf(opDiv, err)
	}

	return out, nil
}

// binary builds the result of a two-operand operation whose ball is b.
func (n *Number) binary(op string, m *Number, b roots.Ball, combine combiner) (*Number, error) {
	out := &Number{ball: b, opts: n.opts}
	if !n.known || !m.known {
		return out, nil
	}
	log := n.opts.logger.WithFields(logrus.Fields{
		"op":     op,
		"degree": n.p.Degree() * m.p.Degree(),
		"ball":   b.String(),
	})
	log.Debug("combining polynomials by resultant")
	p, err := combine(n.p, m.p, b, n.opts.factorer, resultant.WithPrecision(n.opts.prec))
	if err != nil {
		log.WithError(err).Debug("factor selection failed")

		return nil, err
	}
	log.WithField("factor", p.String()).Debug("factor selected")
	out.p, out.known = p, true

	return out, nil
}
