// SPDX-License-Identifier: MIT

// Package subsetsum solves the closest-subset-sum problem over real items.
//
// Given items v₀…vₙ₋₁ and a target T, Solve returns
//
//	min over S ⊆ {0..n−1} of |T − Σ_{i∈S} vᵢ|
//
// by meet-in-the-middle: each half of the items is expanded into its sorted
// list of 2^(n/2) subset sums (SortedSums, built by repeated doubling and a
// linear merge), and a two-pointer scan over the two lists finds the closest
// cross sum. Time and space are O(2^(n/2)).
//
// Certificate recovers a subset that attains the optimum. Items are dropped
// one at a time; an item is put back whenever dropping it would push the best
// reachable error above the global optimum plus a tolerance. This costs n
// further Solve calls.
//
// The item count is capped (MaxItems, default 40) and every value must be
// finite; anything else fails with ErrInfeasible.
package subsetsum
