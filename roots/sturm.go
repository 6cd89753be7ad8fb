// SPDX-License-Identifier: MIT

package roots

import "github.com/katalvlaran/algebraics/poly"

// Sturm returns the Sturm chain of p: p₀ = p, p₁ = p′,
// pᵢ₊₁ = −(pᵢ₋₁ mod pᵢ) with positive content removed, until a constant is
// reached. For a non-square-free p the chain ends at the last nonzero
// remainder (a multiple of gcd(p, p′)).
//
// A constant p yields the one-element chain [p].
func Sturm(p poly.Poly) []poly.Poly {
	chain := []poly.Poly{p.Clone()}
	if p.Degree() == 0 {
		return chain
	}
	chain = append(chain, p.Derivative().ContentFree())
	for {
		prev, cur := chain[len(chain)-2], chain[len(chain)-1]
		if cur.Degree() == 0 {
			return chain
		}
		r, err := prev.Mod(cur)
		if err != nil || r.IsZero() {
			return chain
		}
		chain = append(chain, r.Neg().ContentFree())
	}
}

// SignChanges returns the number of sign changes of chain at x, zeros dropped.
func SignChanges(chain []poly.Poly, x float64) int {
	changes, last := 0, 0
	for _, q := range chain {
		s := q.Sign(x)
		if s == 0 {
			continue
		}
		if last != 0 && s != last {
			changes++
		}
		last = s
	}

	return changes
}

// Count returns the number of distinct real roots of p in (a, b].
// It returns 0 when a ≥ b or p is constant (including zero).
//
// Complexity: O(deg p) exact evaluations of chain members per endpoint plus
// the chain construction.
func Count(p poly.Poly, a, b float64) int {
	if a >= b || p.Degree() == 0 {
		return 0
	}

	return countChain(Sturm(p), a, b)
}

// countChain counts roots in (a, b] from a prebuilt chain.
func countChain(chain []poly.Poly, a, b float64) int {
	return SignChanges(chain, a) - SignChanges(chain, b)
}

// TotalCount returns the number of distinct real roots of p.
func TotalCount(p poly.Poly) int {
	if p.Degree() == 0 {
		return 0
	}
	bnd := Bound(p)

	return Count(p, -bnd, bnd)
}
