package minpoly_test

import (
	"math"
	"testing"

	"github.com/sirupsen/logrus"
	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/algebraics/minpoly"
	"github.com/katalvlaran/algebraics/poly"
	"github.com/katalvlaran/algebraics/roots"
	"github.com/katalvlaran/algebraics/subsetsum"
)

const quinticRoot = -1.1673039782614186843 // real root of x⁵ − x + 1

func requirePoly(t *testing.T, want, got poly.Poly) {
	t.Helper()
	require.True(t, want.Equal(got), "polynomial mismatch (-want +got):\n%s", poly.Diff(want, got))
}

func TestEncode(t *testing.T) {
	p, err := minpoly.Encode(math.Sqrt2, 3, 2)
	require.NoError(t, err)
	want := []float64{1, 2, 4, math.Sqrt2, 2 * math.Sqrt2, 4 * math.Sqrt2, 2, 4, 8}
	require.Len(t, p.Items, len(want))
	for i := range want {
		require.InDelta(t, want[i], p.Items[i], 1e-12, "item %d", i)
	}
	require.InDelta(t, 7+4*math.Sqrt2, p.Target, 1e-12)

	_, err = minpoly.Encode(1, 0, 2)
	require.ErrorIs(t, err, minpoly.ErrBadBudget)
	_, err = minpoly.Encode(1, 2, -1)
	require.ErrorIs(t, err, minpoly.ErrBadBudget)
}

func TestDecode(t *testing.T) {
	include := make([]bool, 9)
	include[0], include[1], include[2], include[5] = true, true, true, true
	got, err := minpoly.Decode(include, 3)
	require.NoError(t, err)
	requirePoly(t, poly.New(-4, 0, 8), got)

	got, err = minpoly.Decode(make([]bool, 4), 2)
	require.NoError(t, err)
	requirePoly(t, poly.New(-2, 1), got)

	_, err = minpoly.Decode(make([]bool, 5), 3)
	require.ErrorIs(t, err, minpoly.ErrBadCertificate)
	_, err = minpoly.Decode(nil, 3)
	require.ErrorIs(t, err, minpoly.ErrBadCertificate)
}

func TestFind(t *testing.T) {
	cases := []struct {
		name   string
		ball   roots.Ball
		k, deg int
		want   poly.Poly
	}{
		{"sqrt2", roots.Ball{Center: math.Sqrt2, Radius: 1e-10}, 3, 2, poly.New(1, 0, -2)},
		{"quintic", roots.Ball{Center: quinticRoot, Radius: 1e-10}, 3, 5, poly.New(1, 0, 0, 0, -1, 1)},
		{"mirrored quintic", roots.Ball{Center: -quinticRoot, Radius: 1e-10}, 3, 5, poly.New(1, 0, 0, 0, -1, -1)},
		{"rational", roots.Ball{Center: 1.5, Radius: 1e-10}, 3, 1, poly.New(2, -3)},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := minpoly.Find(tc.ball, tc.k, tc.deg)
			require.NoError(t, err)
			requirePoly(t, tc.want, got)
			require.True(t, roots.Brackets(got, tc.ball))
		})
	}
}

func TestFindNotFound(t *testing.T) {
	_, err := minpoly.Find(roots.Ball{Center: math.Pi, Radius: 1e-12}, 2, 2)
	require.ErrorIs(t, err, minpoly.ErrNotFound)
	require.ErrorIs(t, err, roots.ErrPrecisionExhausted)

	// a rounded center with a radius tighter than the rounding excludes √2
	rounded := roots.Ball{Center: 1.41421356, Radius: 1e-10}
	require.False(t, rounded.Contains(math.Sqrt2))
	_, err = minpoly.Find(rounded, 3, 2)
	require.ErrorIs(t, err, minpoly.ErrNotFound)
}

func TestFindValidation(t *testing.T) {
	b := roots.Ball{Center: 1, Radius: 1e-6}
	for _, budget := range [][2]int{{0, 2}, {31, 1}, {3, 0}, {10, 4}} {
		_, err := minpoly.Find(b, budget[0], budget[1])
		require.ErrorIs(t, err, minpoly.ErrBadBudget, "budget %v", budget)
	}
	small := minpoly.WithSolverOptions(subsetsum.WithMaxItems(4))
	_, err := minpoly.Find(b, 2, 1, small)
	require.NotErrorIs(t, err, minpoly.ErrBadBudget)
	_, err = minpoly.Find(b, 3, 1, small)
	require.ErrorIs(t, err, minpoly.ErrBadBudget)

	_, err = minpoly.Find(roots.Ball{Center: math.NaN(), Radius: 1}, 3, 2)
	require.ErrorIs(t, err, minpoly.ErrInvalidBall)
	_, err = minpoly.Find(roots.Ball{Center: 1, Radius: -1}, 3, 2)
	require.ErrorIs(t, err, minpoly.ErrInvalidBall)
}

func TestFindLogsEachDegree(t *testing.T) {
	logger, hook := logtest.NewNullLogger()
	logger.SetLevel(logrus.DebugLevel)

	_, err := minpoly.Find(roots.Ball{Center: math.Sqrt2, Radius: 1e-10}, 3, 2, minpoly.WithLogger(logger))
	require.NoError(t, err)

	entries := hook.AllEntries()
	require.Len(t, entries, 2)
	require.Equal(t, 1, entries[0].Data["degree"])
	require.Equal(t, "candidate rejected", entries[0].Message)
	require.Equal(t, 2, entries[1].Data["degree"])
	require.Equal(t, "candidate brackets the ball", entries[1].Message)

	require.Panics(t, func() { minpoly.WithLogger(nil) })
}
