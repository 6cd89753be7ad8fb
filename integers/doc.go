// SPDX-License-Identifier: MIT

// Package integers provides the small exact-integer toolkit the rest of the
// module builds on.
//
// What's inside:
//
//   - GCD / LCM for any integer type (generic over golang.org/x/exp/constraints).
//   - Pow2 for exact powers of two used by coefficient encodings.
//   - Rational, a reduced int64 fraction with Reduce, Int and String.
//   - Reconstruct / Denominator: continued-fraction recovery of a rational
//     from a high-precision *big.Float within a tolerance.
//
// Reconstruct is the bridge from approximate linear algebra back to exact
// integers: interpolation produces coefficients that are rationals up to
// rounding noise, and the convergents of their continued fractions expose
// the exact value as soon as the noise drops below the tolerance.
//
// Complexity:
//
//   - GCD / LCM: O(log min(|a|,|b|)).
//   - Reconstruct: at most MaxContinuedFractionTerms big.Float divisions.
package integers
