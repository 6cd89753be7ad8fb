// SPDX-License-Identifier: MIT

// Package algebraic implements certified arithmetic on real algebraic numbers.
//
// A Number is a roots.Ball known to contain the value, optionally paired with
// an integer polynomial that has exactly one root inside that ball. When both
// operands of an arithmetic operation carry a polynomial, the result carries
// one too: Add and Sub go through resultant.Sum, Mul and Div through
// resultant.Product, and a resultant.Factorer picks the factor that owns the
// result's ball. Neg and Inv transform the single polynomial directly
// (p(−x) and coefficient reversal).
//
// Numbers are built from a ball (FromBall), from a polynomial plus the index
// of one of its real roots (FromPolynomial, with RealRoots listing the
// candidates), or from both (FromBoth, trusted). Arithmetic never mutates its
// operands; Refine and DefineMinimalPolynomial update the receiver in place.
//
// Options fix the collaborators of a Number (factorer, logger, working
// precision, default isolation error). Results of arithmetic inherit the
// options of the receiver.
//
// Error kinds:
//
//	ErrArithmeticUndefined  Inv or Div on a ball that contains 0
//	ErrNoRootFound          no real root where one was required
//	ErrUnknownPolynomial    a query that needs the polynomial
//	resultant.ErrAmbiguousFactor  the result ball does not isolate one root
package algebraic
