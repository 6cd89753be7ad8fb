package poly_test

import (
	"math"
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/algebraics/poly"
)

// requirePoly fails the test with a coefficient diff when got != want.
func requirePoly(t *testing.T, want, got poly.Poly) {
	t.Helper()
	require.True(t, want.Equal(got), "polynomial mismatch (-want +got):\n%s", poly.Diff(want, got))
}

func TestNewStripsLeadingZeros(t *testing.T) {
	p := poly.New(0, 0, 1, 0, -2)
	require.Equal(t, 2, p.Degree())
	require.Equal(t, int64(1), p.Leading().Int64())
	require.Equal(t, p.Coeff(0).Int64(), p.Trailing().Int64())
	require.Equal(t, int64(-2), p.Coeff(0).Int64())
	require.Equal(t, int64(0), p.Coeff(5).Int64())

	require.True(t, poly.New().IsZero())
	require.True(t, poly.New(0, 0).IsZero())
	require.True(t, poly.Poly{}.IsZero())
	require.Equal(t, 0, poly.Poly{}.Degree())
}

func TestCoefficientsAreCopies(t *testing.T) {
	p := poly.New(1, 2, 3)
	c := p.Coefficients()
	c[0].SetInt64(99)
	requirePoly(t, poly.New(1, 2, 3), p)

	src := []*big.Int{big.NewInt(4), big.NewInt(5)}
	q := poly.FromBig(src)
	src[0].SetInt64(0)
	requirePoly(t, poly.New(4, 5), q)
}

func TestRing(t *testing.T) {
	p := poly.New(1, 0, -2) // x² − 2
	q := poly.New(1, 1)     // x + 1

	requirePoly(t, poly.New(1, 1, -1), p.Add(q))
	requirePoly(t, poly.New(1, -1, -3), p.Sub(q))
	requirePoly(t, poly.New(-1, 0, 2), p.Neg())
	requirePoly(t, poly.New(3, 0, -6), p.ScaleInt64(3))
	requirePoly(t, poly.New(1, 1, -2, -2), p.Mul(q))
	require.True(t, p.Sub(p).IsZero())
	require.True(t, p.ScaleInt64(0).IsZero())
	requirePoly(t, poly.Zero(), p.Mul(poly.Zero()))
}

func TestPow(t *testing.T) {
	q := poly.New(1, 1)
	cases := []struct {
		n    int
		want poly.Poly
	}{
		{0, poly.New(1)},
		{1, poly.New(1, 1)},
		{2, poly.New(1, 2, 1)},
		{5, poly.New(1, 5, 10, 10, 5, 1)},
	}
	for _, tc := range cases {
		got, err := q.Pow(tc.n)
		require.NoError(t, err)
		requirePoly(t, tc.want, got)
	}
	_, err := q.Pow(-1)
	require.ErrorIs(t, err, poly.ErrNegativeExponent)
}

func TestComposeAndSubstitute(t *testing.T) {
	p := poly.New(1, 0, -2) // x² − 2
	// p(x+1) = x² + 2x − 1
	requirePoly(t, poly.New(1, 2, -1), p.Compose(poly.New(1, 1)))
	requirePoly(t, poly.New(1, 2, -1), p.Substitute(1, 1))
	// p(−x) = p(x) for an even polynomial
	requirePoly(t, p, p.Substitute(-1, 0))
	// x⁵ − x + 1 at −x: −x⁵ + x + 1
	requirePoly(t, poly.New(-1, 0, 0, 0, 1, 1), poly.New(1, 0, 0, 0, -1, 1).Substitute(-1, 0))
	// a = 0 collapses to the constant p(b)
	requirePoly(t, poly.New(7), p.Substitute(0, 3))
}

func TestRaiseDegreeReverse(t *testing.T) {
	p := poly.New(2, -3)
	r, err := p.RaiseDegree(2)
	require.NoError(t, err)
	requirePoly(t, poly.New(2, -3, 0, 0), r)
	_, err = p.RaiseDegree(-1)
	require.ErrorIs(t, err, poly.ErrNegativeDegree)

	requirePoly(t, poly.New(-3, 2), p.Reverse())
	// reversing x² + x drops the root at zero
	requirePoly(t, poly.New(1, 1), poly.New(1, 1, 0).Reverse())
	requirePoly(t, poly.New(1, 0, -1, 0, 0, 1), poly.New(1, 0, 0, -1, 0, 1).Reverse())
}

func TestDerivative(t *testing.T) {
	requirePoly(t, poly.New(5, 0, 0, 0, -1), poly.New(1, 0, 0, 0, -1, 1).Derivative())
	require.True(t, poly.New(7).Derivative().IsZero())
}

func TestModPositiveScale(t *testing.T) {
	cases := []struct {
		name string
		p, q poly.Poly
		want poly.Poly
	}{
		{"exact multiple", poly.New(1, 0, -1), poly.New(1, 1), poly.New(0)},
		{"x^2-2 mod 2x", poly.New(1, 0, -2), poly.New(2, 0), poly.New(-4)},
		{"negative divisor keeps sign", poly.New(1, 0, -2), poly.New(-2, 0), poly.New(-4)},
		{"lower degree returns copy", poly.New(3, 1), poly.New(1, 0, 0), poly.New(3, 1)},
		{"constant divisor", poly.New(4, 5, 6), poly.New(3), poly.New(0)},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := tc.p.Mod(tc.q)
			require.NoError(t, err)
			requirePoly(t, tc.want, got)
		})
	}

	_, err := poly.New(1, 2).Mod(poly.Zero())
	require.ErrorIs(t, err, poly.ErrDivisionByZero)
}

func TestModSignMatchesRationalRemainder(t *testing.T) {
	// (x⁵ − x + 1) mod (5x⁴ − 1) = −(4/5)x + 1 over Q
	got, err := poly.New(1, 0, 0, 0, -1, 1).Mod(poly.New(5, 0, 0, 0, -1))
	require.NoError(t, err)
	require.Equal(t, 1, got.Degree())
	require.Equal(t, -1, got.Leading().Sign())
	require.Equal(t, 1, got.Coeff(0).Sign())
	requirePoly(t, poly.New(-4, 5), got.Primitive().Neg())
}

func TestDivExact(t *testing.T) {
	q, err := poly.New(1, 0, -1).DivExact(poly.New(1, -1))
	require.NoError(t, err)
	requirePoly(t, poly.New(1, 1), q)

	_, err = poly.New(1, 0, -2).DivExact(poly.New(1, -1))
	require.ErrorIs(t, err, poly.ErrInexactDivision)

	_, err = poly.New(1, 1).DivExact(poly.New(2, 0))
	require.ErrorIs(t, err, poly.ErrInexactDivision)

	_, err = poly.New(1, 1).DivExact(poly.Zero())
	require.ErrorIs(t, err, poly.ErrDivisionByZero)
}

func TestContentPrimitive(t *testing.T) {
	p := poly.New(-6, 0, 12)
	require.Equal(t, int64(6), p.Content().Int64())
	requirePoly(t, poly.New(-1, 0, 2), p.ContentFree())
	requirePoly(t, poly.New(1, 0, -2), p.Primitive())
	require.True(t, poly.Zero().Primitive().IsZero())
}

func TestGCDAndSquareFree(t *testing.T) {
	a := poly.New(1, 0, -2) // x² − 2
	b := poly.New(1, 1)     // x + 1
	requirePoly(t, a, poly.GCD(a.Mul(b), a.ScaleInt64(-3)))
	requirePoly(t, poly.New(1), poly.GCD(a, b))

	sq := a.Mul(a).Mul(b) // (x²−2)²(x+1)
	requirePoly(t, a.Mul(b), sq.SquareFree())
	requirePoly(t, a, a.ScaleInt64(-4).SquareFree())
}

func TestEval(t *testing.T) {
	p := poly.New(1, 0, -2)
	require.InDelta(t, 2.0, p.EvalFloat(2), 1e-15)
	require.InDelta(t, 0.0, p.EvalFloat(math.Sqrt2), 1e-15)

	x := new(big.Float).SetPrec(128).SetInt64(3)
	got, _ := p.Eval(x).Int64()
	require.Equal(t, int64(7), got)

	require.InDelta(t, 0.0, real(p.EvalComplex(complex(math.Sqrt2, 0))), 1e-12)
	z := poly.New(1, 0, 1).EvalComplex(1i)
	require.InDelta(t, 0.0, real(z), 1e-15)
	require.InDelta(t, 0.0, imag(z), 1e-15)
}

func TestSignExact(t *testing.T) {
	p := poly.New(1, 0, -2)
	require.Equal(t, -1, p.Sign(0))
	require.Equal(t, 1, p.Sign(2))
	// math.Sqrt2 is just above √2 as a float64, so p is tiny but positive
	require.Equal(t, 1, p.Sign(math.Sqrt2))
	require.Equal(t, -1, p.Sign(math.Nextafter(math.Sqrt2, 0)))
	require.Equal(t, 0, poly.New(1, -1).Sign(1))
	require.Equal(t, 1, p.Sign(math.Inf(-1)))
	require.Equal(t, -1, poly.New(1, 0).Sign(math.Inf(-1)))
}

func TestString(t *testing.T) {
	cases := []struct {
		p    poly.Poly
		want string
	}{
		{poly.New(1, 0, -2), "x^2 - 2"},
		{poly.New(-1, 0, 0, 0, 1, 1), "-x^5 + x + 1"},
		{poly.New(2, -3), "2x - 3"},
		{poly.New(-1), "-1"},
		{poly.Zero(), "0"},
		{poly.New(1, 0), "x"},
	}
	for _, tc := range cases {
		require.Equal(t, tc.want, tc.p.String())
	}
}
