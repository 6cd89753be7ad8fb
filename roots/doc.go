// SPDX-License-Identifier: MIT

// Package roots locates the roots of integer polynomials.
//
// Real roots are handled rigorously:
//
//   - Sturm builds the Sturm chain p, p′, −rem(p, p′), … with exact integer
//     arithmetic (remainders are scaled by positive factors and content-reduced).
//   - Count evaluates the chain with exact signs and returns the number of
//     distinct roots in the half-open interval (a, b].
//   - Bound gives a radius enclosing every root (Fujiwara and Cauchy bounds).
//   - Isolate bisects (lo, hi] until every root sits in a Ball narrower than
//     the target error. A root lying exactly on a split point belongs to the
//     lower half, so it is counted once.
//   - Brackets is the cheap certificate: strictly opposite signs at the two
//     ends of a Ball.
//
// Complex roots come from AllComplex, a Durand–Kerner (Weierstrass) iteration
// in complex128. It is fast but carries no global convergence guarantee, so
// it is capped by an iteration ceiling.
//
// Requirements:
//
//	Count and Isolate assume a square-free polynomial; for repeated roots the
//	counts are of distinct roots. AllComplex needs square-free input to converge
//	quickly.
package roots
