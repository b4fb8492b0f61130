package ddp_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/ddpgrowth/ddp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fixtureOptimum is the exact value of always moving to state 2 on the fixture grid.
func fixtureOptimum() []float64 {
	v2 := 0.88888889 / (1 - fixtureBeta)
	return []float64{0.85714286 + fixtureBeta*v2, 0.875 + fixtureBeta*v2, v2}
}

func TestValueIteration_Fixture(t *testing.T) {
	t.Parallel()

	res, err := ddp.ValueIteration(fixtureProblem(t), ddp.DefaultOptions())
	require.NoError(t, err)
	require.True(t, res.Converged)
	assert.Equal(t, ddp.ValueIter, res.Algo)

	// The converging iteration is not recorded.
	assert.Equal(t, res.NumIter, res.Len())
	assert.Len(t, res.Policies, res.Len())

	v, policy := res.Final()
	assert.Equal(t, []int{2, 2, 2}, policy)
	want := fixtureOptimum()
	for s := range want {
		assert.InDeltaf(t, want[s], v[s], 1e-3, "v[%d]", s)
	}
}

func TestValueIteration_MonotoneContraction(t *testing.T) {
	t.Parallel()

	res, err := ddp.ValueIteration(fixtureProblem(t), ddp.DefaultOptions())
	require.NoError(t, err)
	require.Greater(t, res.Len(), 10)

	prevDiff := math.Inf(1)
	for i := 1; i < res.Len(); i++ {
		var diff float64
		for s := range res.Values[i] {
			assert.GreaterOrEqualf(t, res.Values[i][s], res.Values[i-1][s]-1e-12, "iter %d state %d", i, s)
			diff = math.Max(diff, math.Abs(res.Values[i][s]-res.Values[i-1][s]))
		}
		assert.LessOrEqualf(t, diff, fixtureBeta*prevDiff+1e-9, "iter %d not contracting", i)
		prevDiff = diff
	}
}

func TestValueIteration_Exhausted(t *testing.T) {
	t.Parallel()

	res, err := ddp.ValueIteration(fixtureProblem(t), ddp.NewOptions(ddp.WithMaxIter(3)))
	require.NoError(t, err)
	assert.False(t, res.Converged)
	assert.Equal(t, 2, res.NumIter)
	assert.Equal(t, 3, res.Len())
}

func TestPolicyIteration_Fixture(t *testing.T) {
	t.Parallel()

	for seed := int64(0); seed < 5; seed++ {
		res, err := ddp.PolicyIteration(fixtureProblem(t), ddp.NewOptions(ddp.WithSeed(seed)))
		require.NoError(t, err)
		require.True(t, res.Converged)
		assert.Equal(t, ddp.PolicyIter, res.Algo)

		// Row 0 holds the starting policy.
		assert.Equal(t, res.NumIter+1, res.Len())

		v, policy := res.Final()
		assert.Equal(t, []int{2, 2, 2}, policy)
		want := fixtureOptimum()
		for s := range want {
			assert.InDeltaf(t, want[s], v[s], 1e-6, "seed %d v[%d]", seed, s)
		}
	}
}

func TestPolicyIteration_Deterministic(t *testing.T) {
	t.Parallel()

	p, _, _ := growthProblem(t, 30)
	opts := ddp.NewOptions(ddp.WithSeed(3000))
	first, err := ddp.PolicyIteration(p, opts)
	require.NoError(t, err)
	second, err := ddp.PolicyIteration(p, opts)
	require.NoError(t, err)

	assert.Equal(t, first.Policies, second.Policies)
	assert.Equal(t, first.Values, second.Values)
	assert.Equal(t, first.NumIter, second.NumIter)
}

func TestPolicyIteration_StableAfterConvergence(t *testing.T) {
	t.Parallel()

	p, _, _ := growthProblem(t, 40)
	res, err := ddp.PolicyIteration(p, ddp.DefaultOptions())
	require.NoError(t, err)
	require.True(t, res.Converged)

	_, policy := res.Final()
	v, err := ddp.EvaluatePolicy(policy, p.Utility, p.Beta)
	require.NoError(t, err)
	_, again, err := ddp.GreedyMasked(v, p.Utility, p.Feasible, p.Beta)
	require.NoError(t, err)
	assert.Equal(t, policy, again)

	// The last two recorded policies coincide.
	n := res.Len()
	require.GreaterOrEqual(t, n, 2)
	assert.Equal(t, res.Policies[n-2], res.Policies[n-1])
}

func TestPolicyIteration_SingleStep(t *testing.T) {
	t.Parallel()

	res, err := ddp.PolicyIteration(fixtureProblem(t), ddp.NewOptions(ddp.WithMaxIter(1)))
	require.NoError(t, err)
	assert.Equal(t, 1, res.NumIter)
	assert.Equal(t, 2, res.Len())
}

func TestModifiedPolicyIteration_Fixture(t *testing.T) {
	t.Parallel()

	res, err := ddp.ModifiedPolicyIteration(fixtureProblem(t), ddp.DefaultOptions())
	require.NoError(t, err)
	require.True(t, res.Converged)
	assert.Equal(t, ddp.ModifiedPolicyIter, res.Algo)
	assert.Equal(t, res.NumIter, res.Len())

	v, policy := res.Final()
	assert.Equal(t, []int{2, 2, 2}, policy)
	want := fixtureOptimum()
	for s := range want {
		assert.InDeltaf(t, want[s], v[s], 1e-3, "v[%d]", s)
	}

	vi, err := ddp.ValueIteration(fixtureProblem(t), ddp.DefaultOptions())
	require.NoError(t, err)
	assert.Less(t, res.NumIter, vi.NumIter, "inner updates should save outer iterations")
}

func TestModifiedPolicyIteration_KCapsInnerUpdates(t *testing.T) {
	t.Parallel()

	// From v = 0 the greedy step picks row 2 everywhere with value g = U[2][:].
	g := fixtureRows[2]
	k1 := g[2] + fixtureBeta*g[2]  // w after one update, at state 2
	k2 := g[2] + fixtureBeta*k1    // w after two updates, at state 2

	cases := []struct {
		name string
		k    int
		want []float64
	}{
		{"one update", 1, []float64{g[0] + fixtureBeta*g[2], g[1] + fixtureBeta*g[2], k1}},
		{"two updates", 2, []float64{g[0] + fixtureBeta*k1, g[1] + fixtureBeta*k1, k2}},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			res, err := ddp.ModifiedPolicyIteration(fixtureProblem(t),
				ddp.NewOptions(ddp.WithK(tc.k), ddp.WithMaxIter(1)))
			require.NoError(t, err)
			require.Equal(t, 1, res.Len())
			assert.Equal(t, []int{2, 2, 2}, res.Policies[0])
			assert.InDeltaSlice(t, tc.want, res.Values[0], 1e-12)
		})
	}
}

func TestModifiedPolicyIteration_SmallStepIsDiscarded(t *testing.T) {
	t.Parallel()

	// The outer change max|g| = U[2][2] clears Crit, the first inner step
	// beta·U[2][2] does not, so row 0 is the greedy value itself.
	g := fixtureRows[2]
	crit := (1 + fixtureBeta) / 2 * g[2]
	res, err := ddp.ModifiedPolicyIteration(fixtureProblem(t),
		ddp.NewOptions(ddp.WithCrit(crit), ddp.WithK(5), ddp.WithMaxIter(1)))
	require.NoError(t, err)
	require.Equal(t, 1, res.Len())
	assert.InDeltaSlice(t, g, res.Values[0], 1e-12)
}

func TestModifiedPolicyIteration_FewerInnerUpdatesCostOuterIterations(t *testing.T) {
	t.Parallel()

	one, err := ddp.ModifiedPolicyIteration(fixtureProblem(t), ddp.NewOptions(ddp.WithK(1)))
	require.NoError(t, err)
	many, err := ddp.ModifiedPolicyIteration(fixtureProblem(t), ddp.DefaultOptions())
	require.NoError(t, err)

	require.True(t, one.Converged)
	require.True(t, many.Converged)
	assert.Greater(t, one.NumIter, many.NumIter)
	_, polOne := one.Final()
	_, polMany := many.Final()
	assert.Equal(t, polMany, polOne)
}

func TestModifiedPolicyIteration_Exhausted(t *testing.T) {
	t.Parallel()

	res, err := ddp.ModifiedPolicyIteration(fixtureProblem(t), ddp.NewOptions(ddp.WithMaxIter(2)))
	require.NoError(t, err)
	assert.False(t, res.Converged)
	assert.Equal(t, 1, res.NumIter)
	assert.Equal(t, 2, res.Len())
}

func TestSolvers_AgreeOnGrowthGrid(t *testing.T) {
	t.Parallel()

	p, _, _ := growthProblem(t, 50)
	opts := ddp.DefaultOptions()

	vi, err := ddp.ValueIteration(p, opts)
	require.NoError(t, err)
	pi, err := ddp.PolicyIteration(p, opts)
	require.NoError(t, err)
	mpi, err := ddp.ModifiedPolicyIteration(p, opts)
	require.NoError(t, err)

	require.True(t, vi.Converged)
	require.True(t, pi.Converged)
	require.True(t, mpi.Converged)

	vVI, polVI := vi.Final()
	vPI, polPI := pi.Final()
	vMPI, polMPI := mpi.Final()
	for s := range polPI {
		assert.LessOrEqualf(t, absInt(polVI[s]-polPI[s]), 1, "value vs policy iteration, state %d", s)
		assert.LessOrEqualf(t, absInt(polMPI[s]-polPI[s]), 1, "modified vs policy iteration, state %d", s)
		assert.InDeltaf(t, vPI[s], vVI[s], 1e-3, "value, state %d", s)
		assert.InDeltaf(t, vPI[s], vMPI[s], 1e-3, "modified, state %d", s)
	}
}

func TestSolvers_PolicyIsIncreasingInCapital(t *testing.T) {
	t.Parallel()

	p, _, _ := growthProblem(t, 40)
	res, err := ddp.PolicyIteration(p, ddp.DefaultOptions())
	require.NoError(t, err)

	_, policy := res.Final()
	for s := 1; s < len(policy); s++ {
		assert.GreaterOrEqualf(t, policy[s], policy[s-1], "policy not monotone at state %d", s)
	}
}

func TestInfeasibleAsZero_CanSelectInfeasibleMove(t *testing.T) {
	t.Parallel()

	// All feasible payoffs are negative, so a zero-scored NaN cell wins the plain maximum.
	nan := math.NaN()
	u := grid(t, [][]float64{
		{-1, -1},
		{nan, -2},
	})
	p, err := ddp.NewProblem(u, 0.5)
	require.NoError(t, err)

	masked, err := ddp.ValueIteration(p, ddp.DefaultOptions())
	require.NoError(t, err)
	_, policy := masked.Final()
	assert.True(t, p.Feasible[policy[0]][0])

	plain, err := ddp.ValueIteration(p, ddp.NewOptions(ddp.WithInfeasibleAsZero()))
	require.NoError(t, err)
	_, policy = plain.Final()
	assert.Equal(t, 1, policy[0])
	assert.False(t, p.Feasible[1][0])
}

func TestInfeasibleAsZero_PolicySolversRun(t *testing.T) {
	t.Parallel()

	nan := math.NaN()
	u := grid(t, [][]float64{
		{-1, -1},
		{nan, -2},
	})
	p, err := ddp.NewProblem(u, 0.5)
	require.NoError(t, err)
	opts := ddp.NewOptions(ddp.WithInfeasibleAsZero())

	// Moving through the NaN cell is worth 0 from state 0; state 1 then pays −1 to reach it.
	solvers := map[string]func(ddp.Problem, ddp.Options) (*ddp.Result, error){
		"policy":   ddp.PolicyIteration,
		"modified": ddp.ModifiedPolicyIteration,
	}
	for name, solve := range solvers {
		solve := solve
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			res, err := solve(p, opts)
			require.NoError(t, err)
			require.True(t, res.Converged)
			v, policy := res.Final()
			assert.Equal(t, []int{1, 0}, policy)
			assert.InDeltaSlice(t, []float64{0, -1}, v, 1e-12)
		})
	}

	// The masked default still refuses the infeasible move.
	_, err = ddp.EvaluatePolicy([]int{1, 0}, u, 0.5)
	require.ErrorIs(t, err, ddp.ErrInvalidPolicy)
}

func TestSolvers_RejectBadInput(t *testing.T) {
	t.Parallel()

	p := fixtureProblem(t)
	bad := p
	bad.Beta = 1.2
	_, err := ddp.ValueIteration(bad, ddp.DefaultOptions())
	require.ErrorIs(t, err, ddp.ErrInvalidBeta)

	opts := ddp.DefaultOptions()
	opts.Crit = 0
	_, err = ddp.ModifiedPolicyIteration(p, opts)
	require.ErrorIs(t, err, ddp.ErrInvalidCrit)

	opts = ddp.DefaultOptions()
	opts.MaxIter = 0
	_, err = ddp.PolicyIteration(p, opts)
	require.ErrorIs(t, err, ddp.ErrInvalidMaxIter)
}

func absInt(x int) int {
	if x < 0 {
		return -x
	}

	return x
}
