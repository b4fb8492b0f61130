package ddp_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/ddpgrowth/ddp"
	"github.com/katalvlaran/ddpgrowth/matrix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEvaluatePolicy_Fixture(t *testing.T) {
	t.Parallel()

	v, err := ddp.EvaluatePolicy([]int{1, 1, 1}, grid(t, fixtureRows), fixtureBeta)
	require.NoError(t, err)
	require.Len(t, v, 3)
	assert.InDelta(t, 15.95, v[0], 1e-6)
	assert.InDelta(t, 16.0, v[1], 1e-6)
	assert.InDelta(t, 16.0333333, v[2], 1e-6)
}

func TestEvaluatePolicy_FixedPoint(t *testing.T) {
	t.Parallel()

	const n = 12
	const beta = 0.9
	u := randomGrid(t, n, 0.3, 7)
	for seed := int64(1); seed <= 5; seed++ {
		policy, err := ddp.RandomPolicy(u, ddp.NewRand(seed))
		require.NoError(t, err)

		v, err := ddp.EvaluatePolicy(policy, u, beta)
		require.NoError(t, err)
		for s, a := range policy {
			assert.InDeltaf(t, at(t, u, a, s)+beta*v[a], v[s], 1e-9, "seed %d state %d", seed, s)
		}
	}
}

func TestEvaluatePolicy_Errors(t *testing.T) {
	t.Parallel()

	u := grid(t, fixtureRows)

	_, err := ddp.EvaluatePolicy([]int{1, 1, 1}, u, 1)
	require.ErrorIs(t, err, ddp.ErrInvalidBeta)

	_, err = ddp.EvaluatePolicy([]int{1, 1, 1}, u, 0)
	require.ErrorIs(t, err, ddp.ErrInvalidBeta)

	_, err = ddp.EvaluatePolicy([]int{1, 3, 1}, u, 0.5)
	require.ErrorIs(t, err, ddp.ErrInvalidPolicy)

	_, err = ddp.EvaluatePolicy([]int{-1, 0, 0}, u, 0.5)
	require.ErrorIs(t, err, ddp.ErrInvalidPolicy)

	_, err = ddp.EvaluatePolicy([]int{1, 1}, u, 0.5)
	require.ErrorIs(t, err, ddp.ErrDimensionMismatch)

	_, err = ddp.EvaluatePolicy([]int{0}, nil, 0.5)
	require.ErrorIs(t, err, ddp.ErrNilUtility)

	rect, err := matrix.NewDense(2, 3)
	require.NoError(t, err)
	_, err = ddp.EvaluatePolicy([]int{0, 0}, rect, 0.5)
	require.ErrorIs(t, err, ddp.ErrNonSquare)

	nan := math.NaN()
	withHole := grid(t, [][]float64{{1, 1}, {nan, 1}})
	_, err = ddp.EvaluatePolicy([]int{1, 0}, withHole, 0.5)
	require.ErrorIs(t, err, ddp.ErrInvalidPolicy)
}

func TestRandomPolicy_FeasibleAndDeterministic(t *testing.T) {
	t.Parallel()

	u := randomGrid(t, 15, 0.5, 3)
	mask := ddp.FeasibilityMask(u)

	first, err := ddp.RandomPolicy(u, ddp.NewRand(42))
	require.NoError(t, err)
	second, err := ddp.RandomPolicy(u, ddp.NewRand(42))
	require.NoError(t, err)
	assert.Equal(t, first, second)

	for s, a := range first {
		assert.Truef(t, mask[a][s], "state %d drew infeasible move %d", s, a)
	}

	// nil and seed 0 share the default stream
	fromNil, err := ddp.RandomPolicy(u, nil)
	require.NoError(t, err)
	fromZero, err := ddp.RandomPolicy(u, ddp.NewRand(0))
	require.NoError(t, err)
	assert.Equal(t, fromZero, fromNil)
}

func TestRandomPolicy_ZeroPayoffIsEligible(t *testing.T) {
	t.Parallel()

	nan := math.NaN()
	u := grid(t, [][]float64{
		{0, nan},
		{nan, 0},
	})
	for seed := int64(1); seed <= 10; seed++ {
		policy, err := ddp.RandomPolicy(u, ddp.NewRand(seed))
		require.NoError(t, err)
		assert.Equal(t, []int{0, 1}, policy)
	}
}

func TestRandomPolicy_UniformOverFeasible(t *testing.T) {
	t.Parallel()

	nan := math.NaN()
	u3 := grid(t, [][]float64{
		{1, 1, 1},
		{nan, 1, 1},
		{nan, 1, 1},
	})

	rng := ddp.NewRand(9)
	counts := make([]int, 3)
	const draws = 3000
	for i := 0; i < draws; i++ {
		policy, err := ddp.RandomPolicy(u3, rng)
		require.NoError(t, err)
		require.Equal(t, 0, policy[0])
		counts[policy[1]]++
	}
	for a, c := range counts {
		assert.InDeltaf(t, draws/3, c, draws/10, "action %d drawn %d times", a, c)
	}
}

func TestRandomPolicy_NoFeasibleAction(t *testing.T) {
	t.Parallel()

	nan := math.NaN()
	u := grid(t, [][]float64{
		{1, nan},
		{1, nan},
	})
	_, err := ddp.RandomPolicy(u, nil)
	require.ErrorIs(t, err, ddp.ErrNoFeasibleAction)
}
