// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic test fixtures and utilities for kernels.
//   • Keep all data finite and well-formed unless a test is about the numeric policy.

package matrix_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/ddpgrowth/matrix"
	"github.com/stretchr/testify/require"
)

// hide wraps any Matrix to hide its concrete type from type assertions,
// forcing the At/Set fallback paths of the kernels.
type hide struct{ matrix.Matrix }

// MustDense allocates an r×c *Dense or fails the test.
func MustDense(t *testing.T, r, c int) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDense(r, c)
	require.NoError(t, err)

	return m
}

// MustFromRows builds a *Dense from a rectangular literal or fails the test.
func MustFromRows(t *testing.T, rows [][]float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDenseFromRows(rows)
	require.NoError(t, err)

	return m
}

// MustAt reads m[i,j] or fails the test.
func MustAt(t *testing.T, m matrix.Matrix, i, j int) float64 {
	t.Helper()
	v, err := m.At(i, j)
	require.NoError(t, err)

	return v
}

// MustSet writes m[i,j] or fails the test.
func MustSet(t *testing.T, m matrix.Matrix, i, j int, v float64) {
	t.Helper()
	require.NoError(t, m.Set(i, j, v))
}

// RandDiagDominant returns an n×n strictly row-diagonally dominant matrix.
// Such matrices are always LU-factorizable without pivoting.
func RandDiagDominant(t *testing.T, n int, seed int64) *matrix.Dense {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	m := MustDense(t, n, n)
	var i, j int
	var rowAbs, v float64
	for i = 0; i < n; i++ {
		rowAbs = 0
		for j = 0; j < n; j++ {
			if i == j {
				continue
			}
			v = rng.Float64()*2 - 1
			rowAbs += abs(v)
			MustSet(t, m, i, j, v)
		}
		MustSet(t, m, i, i, rowAbs+1+rng.Float64())
	}

	return m
}

// CompareClose asserts that a and b have the same shape and agree within atol.
func CompareClose(t *testing.T, want [][]float64, got matrix.Matrix, atol float64) {
	t.Helper()
	require.Equal(t, len(want), got.Rows(), "rows")
	for i := range want {
		require.Equal(t, len(want[i]), got.Cols(), "cols")
		for j := range want[i] {
			require.InDeltaf(t, want[i][j], MustAt(t, got, i, j), atol, "[%d,%d]", i, j)
		}
	}
}

func abs(x float64) float64 {
	if x < 0 {
		return -x
	}

	return x
}
