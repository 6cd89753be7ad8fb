// SPDX-License-Identifier: MIT

// Package matrix provides dense arbitrary-precision matrices and the exact
// linear-algebra kernels the resultant engine and interpolation rely on.
//
// What & Why:
//
//	Sylvester determinants and Vandermonde inverses involve integers far
//	beyond float64 range, and the resulting coefficients are recovered as
//	exact rationals afterwards. Every entry is therefore a *big.Float whose
//	precision is chosen per matrix (WithPrecision, default 256 bits).
//
// Surface:
//
//   - Matrix interface + Dense (row-major, flat backing slice).
//   - Constructors: NewDense, NewIdentity, NewPermutation, FromInts.
//   - Kernels: Mul, MatVec, Transpose.
//   - Factorisation: LU with partial pivoting (P·A = L·U) tracking swap parity.
//   - Det: cofactor expansion below a size cutoff, LU above it.
//   - Inverse: U⁻¹·L⁻¹·P via triangular substitution.
//
// Errors:
//
//	All failures are package sentinels (errors.go) wrapped with the failing
//	operation, so callers match them with errors.Is. A pivot search that finds
//	no nonzero candidate is ErrSingular; Det maps that case to an exact zero.
//
// Determinism:
//
//	Fixed loop orders and a deterministic pivot rule (largest magnitude,
//	lowest row index on ties) give bit-identical results for identical input.
package matrix
