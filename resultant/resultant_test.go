package resultant_test

import (
	"math"
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/algebraics/matrix"
	"github.com/katalvlaran/algebraics/poly"
	"github.com/katalvlaran/algebraics/resultant"
	"github.com/katalvlaran/algebraics/roots"
)

func requirePoly(t *testing.T, want, got poly.Poly) {
	t.Helper()
	require.True(t, want.Equal(got), "polynomial mismatch (-want +got):\n%s", poly.Diff(want, got))
}

func bigs(vs ...int64) []*big.Int {
	out := make([]*big.Int, len(vs))
	for i, v := range vs {
		out[i] = big.NewInt(v)
	}

	return out
}

func entries(t *testing.T, m *matrix.Dense) [][]int64 {
	t.Helper()
	out := make([][]int64, m.Rows())
	for i := range out {
		out[i] = make([]int64, m.Cols())
		for j := range out[i] {
			v, err := m.At(i, j)
			require.NoError(t, err)
			n, acc := v.Int64()
			require.Equal(t, big.Exact, acc)
			out[i][j] = n
		}
	}

	return out
}

func TestSylvesterLayout(t *testing.T) {
	s, err := resultant.Sylvester(bigs(1, 2, 3), bigs(4, 5))
	require.NoError(t, err)
	require.Equal(t, [][]int64{
		{1, 2, 3},
		{4, 5, 0},
		{0, 4, 5},
	}, entries(t, s))

	det, err := matrix.Det(s)
	require.NoError(t, err)
	d, _ := det.Int64()
	require.Equal(t, int64(33), d) // 4²·f(−5/4)
}

func TestSylvesterKeepsFormalDegree(t *testing.T) {
	s, err := resultant.Sylvester(bigs(1, 0, -2), bigs(0, 0, 1))
	require.NoError(t, err)
	require.Equal(t, 4, s.Rows())

	_, err = resultant.Sylvester(bigs(3), bigs(5))
	require.ErrorIs(t, err, resultant.ErrConstantPolynomial)
	_, err = resultant.Sylvester(nil, bigs(1, 1))
	require.ErrorIs(t, err, resultant.ErrConstantPolynomial)
}

func TestSylvesterSamples(t *testing.T) {
	p, q := poly.New(1, 0, -2), poly.New(1, 0, -3)

	sum, err := resultant.SylvesterSum(p, q, 0)
	require.NoError(t, err)
	det, err := matrix.Det(sum)
	require.NoError(t, err)
	d, _ := det.Int64()
	require.Equal(t, int64(1), d) // x⁴ − 10x² + 1 at 0

	prod, err := resultant.SylvesterProduct(p, q, 1)
	require.NoError(t, err)
	require.Equal(t, [][]int64{
		{1, 0, -2, 0},
		{0, 1, 0, -2},
		{-3, 0, 1, 0},
		{0, -3, 0, 1},
	}, entries(t, prod))
	det, err = matrix.Det(prod)
	require.NoError(t, err)
	d, _ = det.Int64()
	require.Equal(t, int64(25), d) // x⁴ − 12x² + 36 at 1

	_, err = resultant.SylvesterSum(poly.New(7), q, 0)
	require.ErrorIs(t, err, resultant.ErrConstantPolynomial)
	_, err = resultant.SylvesterProduct(p, poly.New(7), 0)
	require.ErrorIs(t, err, resultant.ErrConstantPolynomial)
}

func TestSum(t *testing.T) {
	cases := []struct {
		name string
		p, q poly.Poly
		want poly.Poly
	}{
		{"sqrt2+sqrt3", poly.New(1, 0, -2), poly.New(1, 0, -3), poly.New(1, 0, -10, 0, 1)},
		{"sqrt2+sqrt2", poly.New(1, 0, -2), poly.New(1, 0, -2), poly.New(1, 0, -8, 0, 0)},
		{"quintic+sqrt2", poly.New(1, 0, 0, 0, -1, 1), poly.New(1, 0, -2),
			poly.New(1, 0, -10, 0, 38, 2, -100, 40, 121, 38, -17)},
		{"regression", poly.New(-1, 2, 5, 2), poly.New(-2, -4, 0),
			poly.New(-8, -16, 112, 256, -168, -496, -192)},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := resultant.Sum(tc.p, tc.q)
			require.NoError(t, err)
			requirePoly(t, tc.want, got)
		})
	}
}

func TestProduct(t *testing.T) {
	cases := []struct {
		name string
		p, q poly.Poly
		want poly.Poly
	}{
		{"sqrt2*sqrt3", poly.New(1, 0, -2), poly.New(1, 0, -3), poly.New(1, 0, -12, 0, 36)},
		{"sqrt2*sqrt2", poly.New(1, 0, -2), poly.New(1, 0, -2), poly.New(1, 0, -8, 0, 16)},
		{"linear", poly.New(1, -3), poly.New(1, 0, -2), poly.New(1, 0, -18)},
		{"zero constant term", poly.New(-1, 2, 5, 2), poly.New(-2, -4, 0),
			poly.New(-8, -32, 160, -128, 0, 0, 0)},
		{"quintic*sqrt2", poly.New(1, 0, 0, 0, -1, 1), poly.New(1, 0, -2),
			poly.New(1, 0, 0, 0, -8, 0, 0, 0, 16, 0, -32)},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := resultant.Product(tc.p, tc.q)
			require.NoError(t, err)
			requirePoly(t, tc.want, got)
		})
	}
}

func TestConstantOperands(t *testing.T) {
	_, err := resultant.Sum(poly.New(5), poly.New(1, 0, -2))
	require.ErrorIs(t, err, resultant.ErrConstantPolynomial)
	_, err = resultant.Product(poly.New(1, 0, -2), poly.Zero())
	require.ErrorIs(t, err, resultant.ErrConstantPolynomial)
}

func TestSquareFreeFactorer(t *testing.T) {
	f := resultant.SquareFreeFactorer{}
	p := poly.New(1, 0, -8, 0, 0) // x²(x² − 8)

	got, err := f.Factor(p, roots.Ball{Center: 2 * math.Sqrt2, Radius: 1e-3})
	require.NoError(t, err)
	requirePoly(t, poly.New(1, 0, -8, 0), got)

	got, err = f.Factor(p, roots.Ball{Center: 0, Radius: 1e-3})
	require.NoError(t, err)
	requirePoly(t, poly.New(1, 0, -8, 0), got)

	_, err = f.Factor(p, roots.Ball{Center: 0, Radius: 5})
	require.ErrorIs(t, err, resultant.ErrAmbiguousFactor)
	_, err = f.Factor(p, roots.Ball{Center: 10, Radius: 0.5})
	require.ErrorIs(t, err, resultant.ErrAmbiguousFactor)
	_, err = f.Factor(poly.New(3), roots.Ball{Center: 0, Radius: 1})
	require.ErrorIs(t, err, resultant.ErrConstantPolynomial)
}

func TestCombine(t *testing.T) {
	sqrt2, sqrt3 := poly.New(1, 0, -2), poly.New(1, 0, -3)
	f := resultant.SquareFreeFactorer{}

	got, err := resultant.CombineSum(sqrt2, sqrt3, roots.Ball{Center: math.Sqrt2 + math.Sqrt(3), Radius: 1e-3}, f)
	require.NoError(t, err)
	requirePoly(t, poly.New(1, 0, -10, 0, 1), got)

	got, err = resultant.CombineProduct(sqrt2, sqrt3, roots.Ball{Center: math.Sqrt(6), Radius: 1e-3}, f)
	require.NoError(t, err)
	requirePoly(t, poly.New(1, 0, -6), got)

	_, err = resultant.CombineSum(sqrt2, sqrt3, roots.Ball{Center: 0, Radius: 10}, f)
	require.ErrorIs(t, err, resultant.ErrAmbiguousFactor)

	_, err = resultant.CombineProduct(sqrt2, sqrt3, roots.Ball{}, nil)
	require.ErrorIs(t, err, resultant.ErrNilFactorer)
}

func TestFactorFunc(t *testing.T) {
	var seen poly.Poly
	f := resultant.FactorFunc(func(p poly.Poly, _ roots.Ball) (poly.Poly, error) {
		seen = p

		return poly.New(1, 0, -6), nil
	})
	got, err := resultant.CombineProduct(poly.New(1, 0, -2), poly.New(1, 0, -3), roots.Ball{Center: 2.45, Radius: 0.01}, f)
	require.NoError(t, err)
	requirePoly(t, poly.New(1, 0, -6), got)
	requirePoly(t, poly.New(1, 0, -12, 0, 36), seen)
}

func TestWithPrecisionPanics(t *testing.T) {
	require.Panics(t, func() { resultant.WithPrecision(10) })
	got, err := resultant.Sum(poly.New(1, 0, -2), poly.New(1, 0, -3), resultant.WithPrecision(128))
	require.NoError(t, err)
	requirePoly(t, poly.New(1, 0, -10, 0, 1), got)
}
