// SPDX-License-Identifier: MIT

// Package interpolate recovers an integer polynomial from its values at the
// points 0, 1, …, d.
//
// Pipeline:
//
//  1. Build the (d+1)×(d+1) Vandermonde matrix V[i][j] = iʲ (with 0⁰ = 1).
//  2. Invert it (matrix.Inverse) and apply it to the sample vector, giving the
//     coefficients c₀…c_d in ascending order.
//  3. Recover each cⱼ as an exact rational with integers.Reconstruct.
//  4. Scale by the lcm of the denominators and strip leading zeros.
//
// The samples are usually determinants of integer matrices, so the
// coefficients are integers up to rounding noise; the tolerance used in step 3
// defaults to 2^(−prec/2), which leaves half the working precision as head room.
package interpolate
