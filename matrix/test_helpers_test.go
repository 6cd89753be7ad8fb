// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic fixtures and utilities for kernels.

package matrix_test

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/algebraics/matrix"
)

// hide wraps any Matrix to hide its concrete type from type assertions,
// forcing the interface fallback paths in kernels.
type hide struct{ matrix.Matrix }

// MustInts builds a Dense from int64 rows or fails the test.
func MustInts(t testing.TB, rows [][]int64, opts ...matrix.Option) *matrix.Dense {
	t.Helper()
	m, err := matrix.FromInts(rows, opts...)
	require.NoError(t, err)

	return m
}

// MustAt reads m[i][j] as float64 or fails the test.
func MustAt(t testing.TB, m matrix.Matrix, i, j int) float64 {
	t.Helper()
	v, err := m.At(i, j)
	require.NoError(t, err)
	f, _ := v.Float64()

	return f
}

// RequireIntsClose checks every entry of m against want within tol.
func RequireIntsClose(t testing.TB, want [][]float64, m matrix.Matrix, tol float64) {
	t.Helper()
	require.Equal(t, len(want), m.Rows())
	require.Equal(t, len(want[0]), m.Cols())
	for i := range want {
		for j := range want[i] {
			require.InDelta(t, want[i][j], MustAt(t, m, i, j), tol, "entry [%d,%d]", i, j)
		}
	}
}

// bigFloats converts float64 values to *big.Float at the given precision.
func bigFloats(prec uint, xs ...float64) []*big.Float {
	out := make([]*big.Float, len(xs))
	for i, x := range xs {
		out[i] = new(big.Float).SetPrec(prec).SetFloat64(x)
	}

	return out
}
