package integers_test

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/algebraics/integers"
)

func TestGCD(t *testing.T) {
	cases := []struct {
		a, b, want int64
	}{
		{12, 27, 3},
		{80, -12, 4},
		{-80, -12, 4},
		{0, 7, 7},
		{7, 0, 7},
		{0, 0, 0},
		{17, 5, 1},
	}
	for _, tc := range cases {
		require.Equal(t, tc.want, integers.GCD(tc.a, tc.b), "GCD(%d,%d)", tc.a, tc.b)
	}
	require.Equal(t, uint8(6), integers.GCD(uint8(18), uint8(24)))
}

func TestLCM(t *testing.T) {
	require.Equal(t, 220, integers.LCM(55, 4))
	require.Equal(t, 36, integers.LCM(-9, 12))
	require.Equal(t, 0, integers.LCM(0, 12))
	require.Equal(t, 0, integers.LCM(5, 0))
	require.Equal(t, int64(1), integers.LCM(int64(1), int64(1)))
}

func TestPow2(t *testing.T) {
	require.Equal(t, int64(1), integers.Pow2(0))
	require.Equal(t, int64(2), integers.Pow2(1))
	require.Equal(t, int64(1024), integers.Pow2(10))
	require.Equal(t, int64(1)<<62, integers.Pow2(62))
	require.Panics(t, func() { integers.Pow2(63) })
	require.Panics(t, func() { integers.Pow2(-1) })
}

func TestRationalReduce(t *testing.T) {
	r, err := integers.NewRational(6, -8)
	require.NoError(t, err)
	require.Equal(t, integers.Rational{Num: -3, Den: 4}, r)
	require.Equal(t, "-3/4", r.String())
	require.InDelta(t, -0.75, r.Float64(), 0)

	_, err = integers.NewRational(1, 0)
	require.ErrorIs(t, err, integers.ErrZeroDenominator)

	n, err := integers.Rational{Num: 10, Den: 5}.Int()
	require.NoError(t, err)
	require.Equal(t, int64(2), n)

	_, err = integers.Rational{Num: 10, Den: 4}.Int()
	require.ErrorIs(t, err, integers.ErrNotInteger)
}

func bigf(t *testing.T, s string) *big.Float {
	t.Helper()
	f, ok := new(big.Float).SetPrec(256).SetString(s)
	require.True(t, ok, "parse %q", s)

	return f
}

func TestReconstruct(t *testing.T) {
	tol := new(big.Float).SetPrec(256).SetMantExp(big.NewFloat(1), -100)
	cases := []struct {
		name string
		x    *big.Float
		want integers.Rational
	}{
		{"integer", bigf(t, "5"), integers.Rational{Num: 5, Den: 1}},
		{"negative integer", bigf(t, "-10"), integers.Rational{Num: -10, Den: 1}},
		{"zero", bigf(t, "0"), integers.Rational{Num: 0, Den: 1}},
		{"third", new(big.Float).SetPrec(256).Quo(bigf(t, "1"), bigf(t, "3")), integers.Rational{Num: 1, Den: 3}},
		{"negative fraction", new(big.Float).SetPrec(256).Quo(bigf(t, "-22"), bigf(t, "7")), integers.Rational{Num: -22, Den: 7}},
		{"just below integer", bigf(t, "4.99999999999999999999999999999999999999999999999"), integers.Rational{Num: 5, Den: 1}},
		{"just above negative", bigf(t, "-10.0000000000000000000000000000000000000000000001"), integers.Rational{Num: -10, Den: 1}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := integers.Reconstruct(tc.x, tol)
			require.NoError(t, err)
			require.Equal(t, tc.want, got)
		})
	}
}

func TestReconstructNoConvergent(t *testing.T) {
	// √2 has no convergent with int64 terms within 2⁻²⁰⁰
	x := new(big.Float).SetPrec(512).Sqrt(new(big.Float).SetPrec(512).SetInt64(2))
	tol := new(big.Float).SetPrec(512).SetMantExp(big.NewFloat(1), -200)
	_, err := integers.Reconstruct(x, tol)
	require.ErrorIs(t, err, integers.ErrNoConvergent)

	_, err = integers.Reconstruct(nil, tol)
	require.ErrorIs(t, err, integers.ErrNilInput)
}

func TestDenominator(t *testing.T) {
	tol := new(big.Float).SetPrec(256).SetMantExp(big.NewFloat(1), -100)
	x := new(big.Float).SetPrec(256).Quo(bigf(t, "355"), bigf(t, "113"))
	d, err := integers.Denominator(x, tol)
	require.NoError(t, err)
	require.Equal(t, int64(113), d)
}
