// SPDX-License-Identifier: MIT

// Package minpoly recovers a small-coefficient integer polynomial that
// vanishes inside a real Ball, by reduction to closest subset sum.
//
// For a degree d and a coefficient budget of k bits, every polynomial
//
//	(1 + Σⱼ e₀ⱼ2ʲ) + Σᵢ₌₁..d (−2^(k−1) + Σⱼ eᵢⱼ2ʲ)·xⁱ,   eᵢⱼ ∈ {0, 1}
//
// is described by the k·(d+1) bits eᵢⱼ. Its value at x is small exactly when
// the items 2ʲ·xⁱ selected by those bits sum close to −1 + 2^(k−1)·Σᵢ₌₁..d xⁱ.
// Encode builds that subset-sum instance, subsetsum.Certificate solves it and
// Decode turns the selected bits back into the polynomial.
//
// Find tries d = 1, 2, …, maxDeg and accepts the first candidate whose signs
// differ at the two ends of the Ball. Exhausting the budget is an ordinary
// outcome reported as ErrNotFound.
package minpoly
