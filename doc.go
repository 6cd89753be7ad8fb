// SPDX-License-Identifier: MIT

// Package algebraics is a toolkit for certified arithmetic on real algebraic
// numbers: values carried as a numeric enclosure (center ± radius) together
// with an integer polynomial that pins the value down exactly.
//
// 🚀 What is inside?
//
//	• Exact integer polynomials: ring operations, composition, pseudo-remainder
//	• Big-float matrices: LU with partial pivoting, determinant, inverse
//	• Integer interpolation with continued-fraction denominator recovery
//	• Resultants: polynomials whose roots are sums/products of two root sets
//	• Root finding: Sturm counting, bisection isolation, Durand–Kerner
//	• Closest subset sum (meet in the middle) and a minimal-polynomial search
//	  built on it
//
// ✨ Guarantees
//
//   - Signs are exact: polynomial signs are evaluated over big.Rat, so root
//     counts never depend on rounding.
//   - Every search is bounded: bisection depth, Durand–Kerner iterations,
//     subset-sum size and the minimal-polynomial bit budget are options with
//     defaults, and running out is a catchable error.
//   - Values are immutable under arithmetic; only Refine and
//     DefineMinimalPolynomial change a Number in place.
//
// Packages, bottom-up:
//
//	integers/    — gcd/lcm, powers of two, rational reconstruction
//	poly/        — dense integer polynomials (math/big)
//	matrix/      — dense big.Float matrices, LU, Det, Inverse
//	interpolate/ — integer polynomial from samples at 0..d
//	roots/       — Ball, Sturm chains, isolation, complex roots
//	resultant/   — Sylvester matrices, Sum/Product, Factorer
//	subsetsum/   — closest subset sum + certificate
//	minpoly/     — polynomial discovery via subset sum
//	algebraic/   — the Number type and its arithmetic
//
// Quick example:
//
//	√2 + √3  →  ball 3.146264370 ± 2e-10,  polynomial x^4 - 10x^2 + 1
//
//	go get github.com/katalvlaran/algebraics/algebraic
package algebraics
