package growth_test

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/katalvlaran/ddpgrowth/growth"
	"github.com/katalvlaran/ddpgrowth/matrix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLinspace(t *testing.T) {
	t.Parallel()

	got := growth.Linspace(1, 2, 5)
	want := []float64{1, 1.25, 1.5, 1.75, 2}
	if diff := cmp.Diff(want, got, cmpopts.EquateApprox(0, 1e-12)); diff != "" {
		t.Fatalf("Linspace mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, []float64{3}, growth.Linspace(3, 7, 1))
	assert.Nil(t, growth.Linspace(0, 1, 0))
}

func TestConsumptionGrid(t *testing.T) {
	t.Parallel()

	k := []float64{1, 2}
	c, err := growth.ConsumptionGrid(k, 0.5, 0.1)
	require.NoError(t, err)

	// C[a][s] = k_s^0.5 + 0.9·k_s − k_a
	r0 := 1 + 0.9
	r1 := math.Sqrt(2) + 1.8
	want := [][]float64{{r0 - 1, r1 - 1}, {r0 - 2, r1 - 2}}
	for a := range want {
		for s := range want[a] {
			v, err := c.At(a, s)
			require.NoError(t, err)
			assert.InDeltaf(t, want[a][s], v, 1e-12, "C[%d,%d]", a, s)
		}
	}

	_, err = growth.ConsumptionGrid(nil, 0.5, 0.1)
	require.ErrorIs(t, err, growth.ErrEmptyGrid)
}

func TestBuildGrid_ShapeAndMask(t *testing.T) {
	t.Parallel()

	p := growth.DefaultParams()
	p.NumStates = 40
	g, err := growth.BuildGrid(p)
	require.NoError(t, err)
	require.Equal(t, 40, g.Size())

	rows, cols := g.Utility.Shape()
	require.Equal(t, 40, rows)
	require.Equal(t, 40, cols)

	kss, _ := p.SteadyState()
	assert.InDelta(t, 0.8*kss, g.Capital[0], 1e-12)
	assert.InDelta(t, 1.2*kss, g.Capital[39], 1e-12)

	for a := 0; a < rows; a++ {
		for s := 0; s < cols; s++ {
			u, err := g.Utility.At(a, s)
			require.NoError(t, err)
			c, err := g.Consumption.At(a, s)
			require.NoError(t, err)
			assert.Equalf(t, !math.IsNaN(u), g.Feasible[a][s], "mask[%d,%d]", a, s)
			assert.Equalf(t, math.IsNaN(u), math.IsNaN(c), "sentinel[%d,%d]", a, s)
			if g.Feasible[a][s] {
				assert.GreaterOrEqual(t, c, 0.0)
				assert.InDelta(t, growth.CRRA(c, p.Sigma), u, 1e-12)
			}
		}
	}

	// The lowest capital level is reachable from every state.
	for s := 0; s < cols; s++ {
		assert.Truef(t, g.Feasible[0][s], "action 0 infeasible in state %d", s)
	}
}

func TestBuildGrid_InfeasibleCorner(t *testing.T) {
	t.Parallel()

	// A wide grid with fast depreciation makes the top action unreachable from the bottom state.
	p := growth.Params{Alpha: 0.3, Beta: 0.9, Delta: 1, Sigma: 2, NumStates: 10, Dev: 0.9}
	g, err := growth.BuildGrid(p)
	require.NoError(t, err)
	assert.False(t, g.Feasible[9][0])

	u, err := g.Utility.At(9, 0)
	require.NoError(t, err)
	assert.True(t, math.IsNaN(u))
}

func TestBuildGrid_InvalidParams(t *testing.T) {
	t.Parallel()

	p := growth.DefaultParams()
	p.Beta = 1
	_, err := growth.BuildGrid(p)
	require.ErrorIs(t, err, growth.ErrInvalidParam)
}

func TestUtilityGrid(t *testing.T) {
	t.Parallel()

	c, err := matrix.NewDenseFromRows([][]float64{{1, -0.5}, {math.NaN(), 4}}, matrix.WithValidateNaNInf(false))
	require.NoError(t, err)
	u, feasible, err := growth.UtilityGrid(c, 2)
	require.NoError(t, err)
	assert.Equal(t, [][]bool{{true, false}, {false, true}}, feasible)

	v, err := u.At(1, 1)
	require.NoError(t, err)
	assert.InDelta(t, 0.75, v, 1e-12)
	v, err = u.At(0, 1)
	require.NoError(t, err)
	assert.True(t, math.IsNaN(v))

	_, _, err = growth.UtilityGrid(nil, 2)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}
