// SPDX-License-Identifier: MIT

package ddp

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/ddpgrowth/matrix"
)

// RandomPolicy draws, for every state s, a move uniformly from the feasible
// rows of column s. Feasibility is the NaN mask of u, so a feasible move
// whose payoff is exactly zero stays eligible.
//
// A nil rng uses the default deterministic stream (NewRand(0)).
//
// Errors: ErrNilUtility, ErrNonSquare, ErrNoFeasibleAction.
//
// Complexity: O(n²).
func RandomPolicy(u *matrix.Dense, rng *rand.Rand) ([]int, error) {
	if err := validateGrid(u); err != nil {
		return nil, err
	}

	return randomPolicy(FeasibilityMask(u), rng)
}

// randomPolicy samples from an explicit mask; columns are visited in order so
// a given rng state always yields the same policy.
func randomPolicy(feasible [][]bool, rng *rand.Rand) ([]int, error) {
	if rng == nil {
		rng = NewRand(0)
	}
	n := len(feasible)
	policy := make([]int, n)
	choices := make([]int, 0, n)
	for s := 0; s < n; s++ {
		choices = choices[:0]
		for a := 0; a < n; a++ {
			if feasible[a][s] {
				choices = append(choices, a)
			}
		}
		if len(choices) == 0 {
			return nil, fmt.Errorf("state %d: %w", s, ErrNoFeasibleAction)
		}
		policy[s] = choices[rng.Intn(len(choices))]
	}

	return policy, nil
}
