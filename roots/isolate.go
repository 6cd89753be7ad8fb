// SPDX-License-Identifier: MIT

package roots

import (
	"math"

	"github.com/katalvlaran/algebraics/poly"
)

// isolator carries the Sturm chain and limits through one bisection run.
type isolator struct {
	chain    []poly.Poly
	err      float64
	maxDepth int
	out      List
}

// Isolate returns enclosures of every real root of p in (lo, hi], ordered by
// center, each with radius below err. A root of multiplicity m in the count
// yields m identical balls.
//
// Implementation:
//   - Stage 1: count roots in (lo, hi] with the Sturm chain; zero ⇒ nothing.
//   - Stage 2: if the half-width is below err, emit count copies of the
//     midpoint ball.
//   - Stage 3: otherwise split at the midpoint into (lo, mid] and (mid, hi]
//     and recurse, lower half first.
//
// Errors:
//   - ErrZeroPolynomial, ErrInvalidError, ErrInvalidInterval.
//   - ErrPrecisionExhausted when the depth ceiling (WithMaxDepth) or the
//     float64 resolution is reached first.
//
// Complexity:
//   - O(r · log((hi−lo)/err)) chain evaluations for r roots.
func Isolate(p poly.Poly, lo, hi, err float64, opts ...Option) (List, error) {
	if p.IsZero() {
		return nil, rootsErrorf(opIsolate, ErrZeroPolynomial)
	}
	if !(err > 0) || math.IsInf(err, 0) {
		return nil, rootsErrorf(opIsolate, ErrInvalidError)
	}
	if !(lo < hi) || math.IsInf(lo, 0) || math.IsInf(hi, 0) {
		return nil, rootsErrorf(opIsolate, ErrInvalidInterval)
	}
	if p.Degree() == 0 {
		return List{}, nil
	}
	o := gatherOptions(opts...)

	iso := &isolator{chain: Sturm(p), err: err, maxDepth: o.maxDepth, out: List{}}
	if e := iso.run(lo, hi, 0); e != nil {
		return nil, rootsErrorf(opIsolate, e)
	}

	return iso.out, nil
}

// run isolates the roots in (lo, hi]; the split point belongs to the lower half.
func (it *isolator) run(lo, hi float64, depth int) error {
	n := countChain(it.chain, lo, hi)
	if n == 0 {
		return nil
	}
	half := (hi - lo) / 2
	mid := lo + half
	if half < it.err {
		it.out = append(it.out, repeat(Ball{Center: mid, Radius: half}, n)...)
		return nil
	}
	if depth >= it.maxDepth || mid <= lo || mid >= hi {
		return ErrPrecisionExhausted
	}
	if err := it.run(lo, mid, depth+1); err != nil {
		return err
	}

	return it.run(mid, hi, depth+1)
}

// AllReal isolates every real root of p over the global bound (−Bound, Bound].
func AllReal(p poly.Poly, err float64, opts ...Option) (List, error) {
	if p.IsZero() {
		return nil, rootsErrorf(opAllReal, ErrZeroPolynomial)
	}
	bnd := Bound(p)
	l, e := Isolate(p, -bnd, bnd, err, opts...)
	if e != nil {
		return nil, rootsErrorf(opAllReal, e)
	}

	return l, nil
}

// Brackets reports whether p takes strictly opposite signs at the two ends of
// b, which certifies an odd number of roots (at least one) inside b.
// Signs are exact.
func Brackets(p poly.Poly, b Ball) bool {
	lo, hi := p.Sign(b.Lo()), p.Sign(b.Hi())

	return lo*hi < 0
}
