// Package ddp_test exercises the dynamic-programming primitives and solvers.
package ddp_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/katalvlaran/ddpgrowth/ddp"
	"github.com/katalvlaran/ddpgrowth/growth"
	"github.com/katalvlaran/ddpgrowth/matrix"
	"github.com/stretchr/testify/require"
)

const fixtureBeta = 0.95

// fixtureRows is the 3×3 CRRA(σ=2) grid of consumption levels 1..9.
var fixtureRows = [][]float64{
	{0, 0.5, 0.66666667},
	{0.75, 0.8, 0.83333333},
	{0.85714286, 0.875, 0.88888889},
}

// grid builds a NaN-tolerant *Dense from rows or fails the test.
func grid(t *testing.T, rows [][]float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDenseFromRows(rows, matrix.WithValidateNaNInf(false))
	require.NoError(t, err)

	return m
}

func fixtureProblem(t *testing.T) ddp.Problem {
	t.Helper()
	p, err := ddp.NewProblem(grid(t, fixtureRows), fixtureBeta)
	require.NoError(t, err)

	return p
}

// growthProblem builds the default growth model on n states.
func growthProblem(t *testing.T, n int) (ddp.Problem, *growth.Grid, growth.Params) {
	t.Helper()
	params := growth.DefaultParams()
	params.NumStates = n
	g, err := growth.BuildGrid(params)
	require.NoError(t, err)
	p, err := ddp.ProblemFromGrid(g, params.Beta)
	require.NoError(t, err)

	return p, g, params
}

// randomGrid returns an n×n grid with roughly nanShare of its cells NaN,
// keeping row 0 feasible so every state has a move.
func randomGrid(t *testing.T, n int, nanShare float64, seed int64) *matrix.Dense {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	rows := make([][]float64, n)
	for a := range rows {
		rows[a] = make([]float64, n)
		for s := range rows[a] {
			if a > 0 && rng.Float64() < nanShare {
				rows[a][s] = math.NaN()
				continue
			}
			rows[a][s] = rng.Float64()*4 - 2
		}
	}

	return grid(t, rows)
}

func at(t *testing.T, m *matrix.Dense, i, j int) float64 {
	t.Helper()
	v, err := m.At(i, j)
	require.NoError(t, err)

	return v
}
