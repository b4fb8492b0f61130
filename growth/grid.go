// SPDX-License-Identifier: MIT

package growth

import (
	"fmt"
	"math"

	"github.com/katalvlaran/ddpgrowth/matrix"
)

// Grid is the discretized model handed to the solvers.
//
// Consumption and Utility are n×n with row = action (next capital index) and
// column = state (current capital index). Infeasible transitions hold NaN in
// both grids and false in Feasible.
type Grid struct {
	Capital     []float64
	Consumption *matrix.Dense
	Utility     *matrix.Dense
	Feasible    [][]bool
}

// Size returns the number of states n.
func (g *Grid) Size() int { return len(g.Capital) }

// Linspace returns n evenly spaced points over [lo, hi], endpoints included.
func Linspace(lo, hi float64, n int) []float64 {
	if n <= 0 {
		return nil
	}
	out := make([]float64, n)
	if n == 1 {
		out[0] = lo
		return out
	}
	step := (hi - lo) / float64(n-1)
	for i := range out {
		out[i] = lo + float64(i)*step
	}
	out[n-1] = hi // avoid accumulated rounding at the right edge

	return out
}

// ConsumptionGrid returns C[a][s] = k_s^alpha + (1−delta)k_s − k_a.
// Entries are not screened for feasibility; BuildGrid does that.
func ConsumptionGrid(k []float64, alpha, delta float64) (*matrix.Dense, error) {
	n := len(k)
	if n == 0 {
		return nil, ErrEmptyGrid
	}
	c, err := matrix.NewDense(n, n, matrix.WithValidateNaNInf(false))
	if err != nil {
		return nil, err
	}

	resources := make([]float64, n)
	for s, ks := range k {
		resources[s] = Production(ks, alpha) + (1-delta)*ks
	}
	err = c.Apply(func(a, s int, _ float64) float64 {
		return resources[s] - k[a]
	})

	return c, err
}

// UtilityGrid maps a consumption grid through CRRA, marking negative
// consumption as NaN. It returns the utility grid and the feasibility mask.
func UtilityGrid(c *matrix.Dense, sigma float64) (*matrix.Dense, [][]bool, error) {
	if err := matrix.ValidateNotNil(c); err != nil {
		return nil, nil, err
	}
	rows, cols := c.Shape()
	u, err := matrix.NewDense(rows, cols, matrix.WithValidateNaNInf(false))
	if err != nil {
		return nil, nil, err
	}
	feasible := make([][]bool, rows)
	for a := range feasible {
		feasible[a] = make([]bool, cols)
	}

	var setErr error
	c.Do(func(a, s int, v float64) bool {
		if v < 0 || math.IsNaN(v) {
			setErr = u.Set(a, s, math.NaN())
			return setErr == nil
		}
		feasible[a][s] = true
		setErr = u.Set(a, s, CRRA(v, sigma))
		return setErr == nil
	})
	if setErr != nil {
		return nil, nil, setErr
	}

	return u, feasible, nil
}

// BuildGrid discretizes the model described by p.
//
// Stages:
//  1. Validate p.
//  2. Capital grid: Linspace(k*(1−dev), k*(1+dev), NumStates).
//  3. Consumption grid via ConsumptionGrid; negative entries become NaN.
//  4. Utility grid via CRRA plus the explicit feasibility mask.
func BuildGrid(p Params) (*Grid, error) {
	if err := p.Validate(); err != nil {
		return nil, fmt.Errorf("BuildGrid: %w", err)
	}
	kss, _ := p.SteadyState()
	dev := p.EffectiveDev()
	k := Linspace((1-dev)*kss, (1+dev)*kss, p.NumStates)

	c, err := ConsumptionGrid(k, p.Alpha, p.Delta)
	if err != nil {
		return nil, fmt.Errorf("BuildGrid: %w", err)
	}
	u, feasible, err := UtilityGrid(c, p.Sigma)
	if err != nil {
		return nil, fmt.Errorf("BuildGrid: %w", err)
	}
	// Consumption carries the same sentinel as utility.
	err = c.Apply(func(a, s int, v float64) float64 {
		if feasible[a][s] {
			return v
		}
		return math.NaN()
	})
	if err != nil {
		return nil, fmt.Errorf("BuildGrid: %w", err)
	}

	return &Grid{Capital: k, Consumption: c, Utility: u, Feasible: feasible}, nil
}
