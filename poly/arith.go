// SPDX-License-Identifier: MIT

package poly

import "math/big"

// Add returns p + q.
// Complexity: O(max(deg p, deg q)).
func (p Poly) Add(q Poly) Poly {
	a, b := p.raw(), q.raw()
	if len(a) < len(b) {
		a, b = b, a
	}
	out := cloneInts(a)
	// align constant terms: b's index j maps to out's index j+offset
	offset := len(a) - len(b)
	for j, v := range b {
		out[j+offset].Add(out[j+offset], v)
	}

	return Poly{c: StripLeadingZeros(out)}
}

// Neg returns −p.
func (p Poly) Neg() Poly {
	out := cloneInts(p.raw())
	for _, v := range out {
		v.Neg(v)
	}

	return Poly{c: out}
}

// Sub returns p − q.
func (p Poly) Sub(q Poly) Poly { return p.Add(q.Neg()) }

// Scale returns k·p.
func (p Poly) Scale(k *big.Int) Poly {
	out := cloneInts(p.raw())
	for _, v := range out {
		v.Mul(v, k)
	}

	return Poly{c: StripLeadingZeros(out)}
}

// ScaleInt64 returns k·p.
func (p Poly) ScaleInt64(k int64) Poly { return p.Scale(big.NewInt(k)) }

// Mul returns p·q by direct convolution.
// Complexity: O(deg p · deg q) big.Int multiplications.
func (p Poly) Mul(q Poly) Poly {
	a, b := p.raw(), q.raw()
	out := zeros(len(a) + len(b) - 1)
	tmp := new(big.Int)
	for i, x := range a {
		if x.Sign() == 0 {
			continue
		}
		for j, y := range b {
			out[i+j].Add(out[i+j], tmp.Mul(x, y))
		}
	}

	return Poly{c: StripLeadingZeros(out)}
}

// Pow returns pⁿ by repeated squaring; p⁰ = 1.
// Complexity: O(log n) multiplications.
func (p Poly) Pow(n int) (Poly, error) {
	if n < 0 {
		return Poly{}, polyErrorf(opPow, ErrNegativeExponent)
	}
	result := Constant(1)
	base := p.Clone()
	for n > 0 {
		if n&1 == 1 {
			result = result.Mul(base)
		}
		n >>= 1
		if n > 0 {
			base = base.Mul(base)
		}
	}

	return result, nil
}

// Compose returns p(q(x)) using Horner's scheme.
// Complexity: O(deg p² · deg q²) coefficient operations in the worst case.
func (p Poly) Compose(q Poly) Poly {
	c := p.raw()
	result := Poly{c: []*big.Int{new(big.Int).Set(c[0])}}
	for _, v := range c[1:] {
		result = result.Mul(q).Add(Poly{c: []*big.Int{v}})
	}

	return result
}

// RaiseDegree returns p·xⁿ.
func (p Poly) RaiseDegree(n int) (Poly, error) {
	if n < 0 {
		return Poly{}, polyErrorf(opRaiseDegree, ErrNegativeDegree)
	}
	if p.IsZero() {
		return Zero(), nil
	}

	return Poly{c: append(cloneInts(p.raw()), zeros(n)...)}, nil
}

// Reverse returns xⁿ·p(1/x) with n = deg p, i.e. the coefficients in reverse
// order. Leading zeros produced by a vanishing constant term are stripped, so
// roots at zero are dropped and every nonzero root r maps to 1/r.
func (p Poly) Reverse() Poly {
	c := p.raw()
	out := make([]*big.Int, len(c))
	for i, v := range c {
		out[len(c)-1-i] = new(big.Int).Set(v)
	}

	return Poly{c: StripLeadingZeros(out)}
}

// Substitute returns p(a·x + b). For a = 0 the result is the constant p(b).
func (p Poly) Substitute(a, b int64) Poly {
	return p.Compose(New(a, b))
}

// Derivative returns p′. Constants differentiate to the zero polynomial.
func (p Poly) Derivative() Poly {
	c := p.raw()
	d := len(c) - 1
	if d == 0 {
		return Zero()
	}
	out := make([]*big.Int, d)
	for i := 0; i < d; i++ {
		// c[i] is the coefficient of x^(d-i)
		out[i] = new(big.Int).Mul(c[i], big.NewInt(int64(d-i)))
	}

	return Poly{c: StripLeadingZeros(out)}
}
