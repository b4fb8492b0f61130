// Package ddpgrowth solves the deterministic one-sector growth model by
// discrete dynamic programming on a capital grid.
//
// What is in the module?
//
//	A small, deterministic toolkit that brings together:
//		• Dense linear algebra: row-major matrices, LU solve, MatVec, 2×2 eigen
//		• The model: Cobb–Douglas production, CRRA utility, steady state, grids
//		• Solvers: value iteration, policy iteration, modified policy iteration
//		• A linearized reference solution to check the discrete policies against
//		• HCL configuration, context-carried slog logging and a run store
//
// Everything is organized under these packages:
//
//	matrix/   - Dense storage, validators, Sub/Scale/MatVec, LU + Solve, Eigen2
//	growth/   - production, utility, steady state, capital/consumption/utility grids
//	ddp/      - Bellman operator, state-wise maximizer, policy evaluation, solvers
//	linear/   - linearized system, saddle-path slope, consumption policy, simulation
//	ctxlog/   - *slog.Logger carried through context.Context
//	config/   - HCL model/solver/logging/store blocks
//	runstore/ - memory and SQLite (build tag sqlite) persistence of solver runs
//	cmd/ddpgrowth - CLI: load config, solve, store, compare with the linear policy
//
// Quick example:
//
//	p := growth.DefaultParams()
//	g, _ := growth.BuildGrid(p)
//	prob, _ := ddp.ProblemFromGrid(g, p.Beta)
//	res, _ := ddp.Solve(ctx, prob, ddp.NewOptions(ddp.WithAlgorithm(ddp.PolicyIter)))
//	v, policy := res.Final()
//
// Grid convention: row = next-period capital (action), column = current
// capital (state). See package ddp for the details.
package ddpgrowth
