// Package growth builds the payoff grids of the deterministic one-sector
// neoclassical growth model.
//
// The package provides:
//
//   - Primitives: Cobb–Douglas production f(k) = k^α and CRRA utility
//     u(c) = (c^(1−σ) − 1)/(1 − σ) with their derivatives.
//   - Steady state: k* = ((1 − β + δβ)/(αβ))^(1/(α−1)), c* = k*^α − δk*.
//   - BuildGrid: a capital grid spanning k*·(1 ± dev), the consumption grid
//     C[a][s] = f(k_s) + (1−δ)k_s − k_a and the utility grid U = u(C) where
//     negative consumption is marked infeasible with NaN.
//
// Grid coordinate system:
//
//	row    = action axis (next-period capital index a)
//	column = state axis  (current capital index s)
//
// Example:
//
//	g, err := growth.BuildGrid(growth.DefaultParams())
//	// g.Utility[a][s] is the payoff of moving from k_s to k_a.
package growth
