// SPDX-License-Identifier: MIT

// Package poly implements univariate polynomials with arbitrary-precision
// integer coefficients.
//
// Representation:
//
//	Coefficients are stored highest degree first: [a_n, …, a_1, a_0].
//	The leading coefficient is nonzero unless the polynomial is the zero
//	polynomial, which is stored as the single coefficient [0].
//
// Ownership:
//
//	A Poly is a value. Every operation returns a freshly allocated result and
//	never mutates its operands, so polynomials can be shared freely.
//
// Operations:
//
//   - Ring: Add, Neg, Sub, Scale, Mul, Pow.
//   - Substitution: Compose, Substitute (p(ax+b)), RaiseDegree (·xⁿ), Reverse (x ↦ 1/x).
//   - Calculus: Derivative.
//   - Division: Mod (pseudo-remainder with a positive scale factor), DivExact.
//   - Content: Content, ContentFree, Primitive, GCD, SquareFree.
//   - Evaluation: Eval (big.Float), EvalFloat, Sign (exact), EvalComplex.
//
// Mod never returns the rational remainder. It returns c·(p mod q) for some
// positive integer c, which preserves signs and is exactly what Sturm
// sequences and gcd computations need.
package poly
