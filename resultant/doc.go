// SPDX-License-Identifier: MIT

// Package resultant builds the integer polynomials whose roots are the sums
// and products of the roots of two integer polynomials.
//
// For p of degree m and q of degree n the combined polynomial has degree m·n.
// Sum evaluates it at x = 0, 1, …, m·n as the determinant of a Sylvester
// matrix in an auxiliary variable y:
//
//	sum:     Res_y( p(y), q(x − y) )
//	product: Res_y( p(y), yⁿ·q(x/y) )
//
// and recovers its integer coefficients with interpolate.Integer.
//
// The combined polynomial is generally reducible. A Factorer picks the factor
// that carries a given root; CombineSum and CombineProduct chain the two
// steps. SquareFreeFactorer is the built-in Factorer: it returns the
// square-free primitive part and accepts it only when exactly one real root
// lies in the target ball.
package resultant
