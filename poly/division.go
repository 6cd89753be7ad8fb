// SPDX-License-Identifier: MIT

package poly

import "math/big"

// Mod returns the pseudo-remainder of p by q: a polynomial of degree < deg q
// equal to c·(p mod q) for some positive integer c.
//
// Implementation:
//   - Stage 1: reject the zero divisor; if deg p < deg q return a copy of p.
//   - Stage 2: while deg r ≥ deg q, with g = gcd(lc r, lc q),
//     m₁ = |lc q|/g and m₂ = sgn(lc q)·lc r/g, set r ← m₁·r − m₂·q·x^(deg r − deg q).
//     The leading terms cancel exactly and m₁ > 0, so signs are preserved.
//
// Errors:
//   - ErrDivisionByZero when q is the zero polynomial.
//
// Complexity: O((deg p − deg q + 1) · deg p) big.Int operations.
func (p Poly) Mod(q Poly) (Poly, error) {
	if q.IsZero() {
		return Poly{}, polyErrorf(opMod, ErrDivisionByZero)
	}
	qc := q.raw()
	dq := len(qc) - 1
	r := cloneInts(p.raw())
	if len(r)-1 < dq {
		return Poly{c: r}, nil
	}

	var (
		lq  = qc[0]
		g   = new(big.Int)
		m1  = new(big.Int).Abs(lq)
		m2  = new(big.Int)
		tmp = new(big.Int)
		i   int
	)
	for !(len(r) == 1 && r[0].Sign() == 0) && len(r)-1 >= dq {
		g.GCD(nil, nil, new(big.Int).Abs(r[0]), new(big.Int).Abs(lq))
		m1.Abs(lq).Quo(m1, g)
		m2.Quo(r[0], g)
		if lq.Sign() < 0 {
			m2.Neg(m2)
		}
		// r ← m₁·r − m₂·q·x^shift; q aligns with the top len(qc) entries of r
		for i = range r {
			r[i].Mul(r[i], m1)
		}
		for i = range qc {
			r[i].Sub(r[i], tmp.Mul(m2, qc[i]))
		}
		r = StripLeadingZeros(r[1:])
	}

	return Poly{c: r}, nil
}

// DivExact returns p/q when q divides p exactly over the integers.
//
// Errors:
//   - ErrDivisionByZero when q is zero.
//   - ErrInexactDivision when a quotient coefficient is not integral or the
//     remainder is nonzero.
func (p Poly) DivExact(q Poly) (Poly, error) {
	if q.IsZero() {
		return Poly{}, polyErrorf(opDivExact, ErrDivisionByZero)
	}
	if p.IsZero() {
		return Zero(), nil
	}
	qc := q.raw()
	r := cloneInts(p.raw())
	dq := len(qc) - 1
	dp := len(r) - 1
	if dp < dq {
		return Poly{}, polyErrorf(opDivExact, ErrInexactDivision)
	}

	quot := zeros(dp - dq + 1)
	rem := new(big.Int)
	tmp := new(big.Int)
	for k := 0; k <= dp-dq; k++ {
		if r[k].Sign() == 0 {
			continue
		}
		quot[k].QuoRem(r[k], qc[0], rem)
		if rem.Sign() != 0 {
			return Poly{}, polyErrorf(opDivExact, ErrInexactDivision)
		}
		for i := range qc {
			r[k+i].Sub(r[k+i], tmp.Mul(quot[k], qc[i]))
		}
	}
	for _, v := range r {
		if v.Sign() != 0 {
			return Poly{}, polyErrorf(opDivExact, ErrInexactDivision)
		}
	}

	return Poly{c: StripLeadingZeros(quot)}, nil
}

// Content returns the non-negative gcd of the coefficients (0 for the zero polynomial).
func (p Poly) Content() *big.Int {
	g := new(big.Int)
	abs := new(big.Int)
	for _, v := range p.raw() {
		if v.Sign() == 0 {
			continue
		}
		abs.Abs(v)
		if g.Sign() == 0 {
			g.Set(abs)
			continue
		}
		g.GCD(nil, nil, g, abs)
	}

	return g
}

// ContentFree returns p divided by its positive content. Signs are unchanged,
// which makes it safe inside Sturm sequences.
func (p Poly) ContentFree() Poly {
	g := p.Content()
	if g.Sign() == 0 || g.Cmp(big.NewInt(1)) == 0 {
		return p.Clone()
	}
	out := cloneInts(p.raw())
	for _, v := range out {
		v.Quo(v, g)
	}

	return Poly{c: out}
}

// Primitive returns the primitive part of p normalised to a positive leading
// coefficient. The zero polynomial is returned unchanged.
func (p Poly) Primitive() Poly {
	out := p.ContentFree()
	if out.raw()[0].Sign() < 0 {
		return out.Neg()
	}

	return out
}

// GCD returns the primitive greatest common divisor of p and q with a positive
// leading coefficient, computed by the primitive pseudo-remainder sequence.
// GCD(0, 0) is the zero polynomial.
func GCD(p, q Poly) Poly {
	a, b := p.Primitive(), q.Primitive()
	if a.Degree() < b.Degree() {
		a, b = b, a
	}
	for !b.IsZero() {
		r, err := a.Mod(b)
		if err != nil {
			// b is nonzero here
			return Zero()
		}
		a, b = b, r.Primitive()
	}

	return a.Primitive()
}

// SquareFree returns the square-free part p / gcd(p, p′) as a primitive
// polynomial with a positive leading coefficient.
func (p Poly) SquareFree() Poly {
	if p.Degree() < 1 {
		return p.Primitive()
	}
	g := GCD(p, p.Derivative())
	if g.Degree() == 0 {
		return p.Primitive()
	}
	q, err := p.Primitive().DivExact(g)
	if err != nil {
		// a primitive divisor of p over Q divides it over Z (Gauss), so this is unreachable
		return p.Primitive()
	}

	return q.Primitive()
}
