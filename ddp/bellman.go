// SPDX-License-Identifier: MIT

package ddp

import (
	"fmt"
	"math"

	"github.com/katalvlaran/ddpgrowth/matrix"
)

// Bellman applies one step of the value recursion to every (action, state) cell:
//
//	V'[a][s] = U[a][s] + beta·v[a]   if U[a][s] is not NaN
//	V'[a][s] = 0                     otherwise
//
// v is broadcast along ActionAxis: row a receives the continuation value of
// the state it moves to. The result is a fresh grid; u and v are not modified.
//
// Errors:
//   - ErrNilUtility for a nil grid.
//   - ErrDimensionMismatch when len(v) != u.Rows().
//
// Complexity: O(n²) time and space.
func Bellman(u *matrix.Dense, v []float64, beta float64) (*matrix.Dense, error) {
	if u == nil {
		return nil, ErrNilUtility
	}
	if len(v) != u.Rows() {
		return nil, fmt.Errorf("Bellman: len(v)=%d, rows=%d: %w", len(v), u.Rows(), ErrDimensionMismatch)
	}

	out := u.Clone().(*matrix.Dense)
	err := out.Apply(func(a, _ int, x float64) float64 {
		if math.IsNaN(x) {
			return 0
		}
		return x + beta*v[a]
	})
	if err != nil {
		return nil, fmt.Errorf("Bellman: %w", err)
	}

	return out, nil
}

// StateWiseMax collapses g along ActionAxis after replacing NaN with 0.
// value[s] is the column maximum and policy[s] the lowest row attaining it.
// Both outputs have one entry per column.
//
// Complexity: O(rows·cols).
func StateWiseMax(g *matrix.Dense) ([]float64, []int, error) {
	if g == nil {
		return nil, nil, ErrNilUtility
	}

	return stateWiseMax(g, nil)
}

// StateWiseMaxMasked is StateWiseMax restricted to feasible rows: for state s
// only rows a with feasible[a][s] compete. A column with no feasible row
// yields ErrNoFeasibleAction.
func StateWiseMaxMasked(g *matrix.Dense, feasible [][]bool) ([]float64, []int, error) {
	if g == nil {
		return nil, nil, ErrNilUtility
	}
	rows, cols := g.Shape()
	if len(feasible) != rows {
		return nil, nil, fmt.Errorf("StateWiseMaxMasked: mask rows=%d, grid rows=%d: %w", len(feasible), rows, ErrDimensionMismatch)
	}
	for a := range feasible {
		if len(feasible[a]) != cols {
			return nil, nil, fmt.Errorf("StateWiseMaxMasked: mask row %d: %w", a, ErrDimensionMismatch)
		}
	}

	return stateWiseMax(g, feasible)
}

// stateWiseMax scans rows top-down and replaces the incumbent only on a strict
// improvement, which yields the lowest-index tie-break. A nil mask admits every row.
func stateWiseMax(g *matrix.Dense, feasible [][]bool) ([]float64, []int, error) {
	rows, cols := g.Shape()
	value := make([]float64, cols)
	policy := make([]int, cols)
	seen := make([]bool, cols)

	for a := 0; a < rows; a++ {
		row, err := g.Row(a)
		if err != nil {
			return nil, nil, err
		}
		for s, x := range row {
			if feasible != nil && !feasible[a][s] {
				continue
			}
			if math.IsNaN(x) {
				x = 0
			}
			if !seen[s] || x > value[s] {
				value[s], policy[s], seen[s] = x, a, true
			}
		}
	}

	for s := range seen {
		if !seen[s] {
			return nil, nil, fmt.Errorf("state %d: %w", s, ErrNoFeasibleAction)
		}
	}

	return value, policy, nil
}

// Greedy is StateWiseMax(Bellman(u, v, beta)): the best value and move per
// state given continuation values v.
func Greedy(v []float64, u *matrix.Dense, beta float64) ([]float64, []int, error) {
	g, err := Bellman(u, v, beta)
	if err != nil {
		return nil, nil, err
	}

	return StateWiseMax(g)
}

// GreedyMasked is Greedy with only feasible moves competing.
func GreedyMasked(v []float64, u *matrix.Dense, feasible [][]bool, beta float64) ([]float64, []int, error) {
	g, err := Bellman(u, v, beta)
	if err != nil {
		return nil, nil, err
	}

	return StateWiseMaxMasked(g, feasible)
}
