// SPDX-License-Identifier: MIT

package ddp

import (
	"fmt"
	"math"

	"github.com/katalvlaran/ddpgrowth/growth"
	"github.com/katalvlaran/ddpgrowth/matrix"
)

// Problem is a payoff grid with its feasibility mask and discount factor.
// Utility is n×n in the ActionAxis/StateAxis convention; Feasible[a][s]
// reports whether moving from state s to state a is allowed.
type Problem struct {
	Utility  *matrix.Dense
	Feasible [][]bool
	Beta     float64
}

// NewProblem wraps u, deriving the mask from its NaN cells.
func NewProblem(u *matrix.Dense, beta float64) (Problem, error) {
	p := Problem{Utility: u, Feasible: FeasibilityMask(u), Beta: beta}
	if err := p.Validate(); err != nil {
		return Problem{}, err
	}

	return p, nil
}

// ProblemFromGrid wraps a growth grid, reusing its mask.
func ProblemFromGrid(g *growth.Grid, beta float64) (Problem, error) {
	if g == nil {
		return Problem{}, ErrNilUtility
	}
	p := Problem{Utility: g.Utility, Feasible: g.Feasible, Beta: beta}
	if err := p.Validate(); err != nil {
		return Problem{}, err
	}

	return p, nil
}

// Size returns the number of states.
func (p Problem) Size() int {
	if p.Utility == nil {
		return 0
	}

	return p.Utility.Rows()
}

// Validate checks the grid, the mask shape and beta.
// A feasible cell must hold a number (ErrInconsistentMask), and every state
// needs a feasible action (ErrNoFeasibleAction).
func (p Problem) Validate() error {
	if err := validateGrid(p.Utility); err != nil {
		return err
	}
	if err := validateBeta(p.Beta); err != nil {
		return err
	}
	n := p.Utility.Rows()
	if len(p.Feasible) != n {
		return fmt.Errorf("mask has %d rows, grid %d: %w", len(p.Feasible), n, ErrDimensionMismatch)
	}
	for a := range p.Feasible {
		if len(p.Feasible[a]) != n {
			return fmt.Errorf("mask row %d has %d cells, grid %d: %w", a, len(p.Feasible[a]), n, ErrDimensionMismatch)
		}
	}
	var bad error
	p.Utility.Do(func(a, s int, v float64) bool {
		if p.Feasible[a][s] && math.IsNaN(v) {
			bad = fmt.Errorf("cell [%d,%d]: %w", a, s, ErrInconsistentMask)
			return false
		}
		return true
	})
	if bad != nil {
		return bad
	}
	for s := 0; s < n; s++ {
		if !anyFeasible(p.Feasible, s) {
			return fmt.Errorf("state %d: %w", s, ErrNoFeasibleAction)
		}
	}

	return nil
}

// FeasibilityMask returns mask[a][s] = !IsNaN(u[a][s]). A nil grid yields nil.
func FeasibilityMask(u *matrix.Dense) [][]bool {
	if u == nil {
		return nil
	}
	rows, cols := u.Shape()
	mask := make([][]bool, rows)
	for a := range mask {
		mask[a] = make([]bool, cols)
	}
	u.Do(func(a, s int, v float64) bool {
		mask[a][s] = !math.IsNaN(v)
		return true
	})

	return mask
}

func anyFeasible(mask [][]bool, s int) bool {
	for a := range mask {
		if mask[a][s] {
			return true
		}
	}

	return false
}

func validateGrid(u *matrix.Dense) error {
	if u == nil {
		return ErrNilUtility
	}
	if u.Rows() != u.Cols() {
		return fmt.Errorf("%dx%d: %w", u.Rows(), u.Cols(), ErrNonSquare)
	}

	return nil
}

func validateBeta(beta float64) error {
	if !(beta > 0 && beta < 1) {
		return fmt.Errorf("beta=%g: %w", beta, ErrInvalidBeta)
	}

	return nil
}
