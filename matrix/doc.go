// Package matrix offers the dense linear-algebra primitives used by the
// dynamic-programming solvers.
//
// The matrix package provides:
//
//   - Dense, a row-major float64 matrix with bounds-checked At/Set and an
//     optional per-instance numeric policy (reject NaN/±Inf on write).
//   - Element-wise and product kernels (Sub, Scale, MatVec) with *Dense
//     fast-paths and generic Matrix fallbacks.
//   - LU (Doolittle, no pivoting) and Solve, which factors once and applies
//     forward/backward substitution for a single right-hand side.
//   - Eigen2, a closed-form real eigen-decomposition for general 2×2 systems.
//
// Payoff grids use NaN as the "infeasible transition" sentinel, so they are
// built with WithValidateNaNInf(false). Everything else keeps the default
// finite-only policy.
//
// Matrices are best for dense or small state spaces where O(n²) memory and
// O(n³) factorizations are acceptable.
package matrix
