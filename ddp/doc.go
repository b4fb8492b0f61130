// Package ddp solves discrete dynamic programs on a square payoff grid.
//
// The ddp package provides:
//
//   - Primitives: Bellman, StateWiseMax / StateWiseMaxMasked, Greedy /
//     GreedyMasked, EvaluatePolicy and RandomPolicy.
//   - Solvers built from them: ValueIteration, PolicyIteration and
//     ModifiedPolicyIteration, plus the Solve dispatcher.
//
// Coordinate system:
//
//	axis 0 (ActionAxis) = row    = next-period state chosen
//	axis 1 (StateAxis)  = column = current state
//
// A payoff grid U is n×n. U[a][s] is the payoff of moving from state s to
// state a; infeasible moves hold NaN. The value vector v is indexed by state,
// and the Bellman step adds beta·v[a] along row a:
//
//	V'[a][s] = U[a][s] + beta·v[a]   (0 where U[a][s] is NaN)
//
// A policy σ maps each state s (column) to the row index σ[s] it moves to.
//
// Infeasibility:
//
// Problem carries an explicit feasibility mask next to U. By default the
// solvers only let feasible rows compete in the state-wise maximum. Setting
// Options.InfeasibleAsZero restores the plain rule where NaN cells count as a
// zero payoff; with payoffs that can be negative that rule may pick an
// infeasible move, so it exists for reproducing reference runs only. Under it,
// policy evaluation values a state that moves through a NaN cell at 0, the
// same score the Bellman step gives the cell, so every solver still runs.
//
// History:
//
// Value iteration and modified policy iteration stop on the sup-norm change
// of the value vector and do not record the converging iteration: NumIter
// equals the number of recorded rows. Policy iteration stops when the greedy
// policy repeats; row 0 of its history is the random starting policy and its
// exact value, so it records NumIter+1 rows. Exhausting MaxIter is not an
// error; it is reported through Result.Converged.
//
// Determinism:
//
// Every random draw comes from an explicit *rand.Rand seeded from
// Options.Seed (0 selects a fixed default), never from the global source.
//
// Example:
//
//	g, _ := growth.BuildGrid(growth.DefaultParams())
//	p, _ := ddp.ProblemFromGrid(g, 0.95)
//	res, err := ddp.Solve(ctx, p, ddp.NewOptions(ddp.WithAlgorithm(ddp.PolicyIter)))
//	v, policy := res.Final()
package ddp
