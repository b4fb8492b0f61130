// SPDX-License-Identifier: MIT

package ddp

import (
	"fmt"
	"strings"
	"time"
)

// Axes of a payoff or candidate-value grid.
const (
	ActionAxis = 0 // rows: next-period state chosen
	StateAxis  = 1 // columns: current state
)

// Algorithm selects the fixed-point scheme run by Solve.
type Algorithm int

const (
	// ValueIter iterates the Bellman operator until the value vector settles.
	ValueIter Algorithm = iota

	// PolicyIter alternates greedy improvement with exact policy evaluation
	// until the policy repeats.
	PolicyIter

	// ModifiedPolicyIter replaces the exact evaluation of PolicyIter with at
	// most K fixed-policy Bellman updates.
	ModifiedPolicyIter
)

var algorithmNames = [...]string{
	ValueIter:          "value",
	PolicyIter:         "policy",
	ModifiedPolicyIter: "modified",
}

// String returns the short name accepted by ParseAlgorithm.
func (a Algorithm) String() string {
	if a < 0 || int(a) >= len(algorithmNames) {
		return fmt.Sprintf("Algorithm(%d)", int(a))
	}

	return algorithmNames[a]
}

// ParseAlgorithm maps "value", "policy" or "modified" (case-insensitive) to an Algorithm.
func ParseAlgorithm(s string) (Algorithm, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for a, n := range algorithmNames {
		if n == name {
			return Algorithm(a), nil
		}
	}

	return 0, fmt.Errorf("%q: %w", s, ErrUnsupportedAlgorithm)
}

// Result is the iteration history of one solve.
//
// Values[i] and Policies[i] are the i-th recorded (value, policy) pair; both
// slices have the same length. See the package documentation for how that
// length relates to NumIter per algorithm.
type Result struct {
	Algo      Algorithm
	Values    [][]float64
	Policies  [][]int
	NumIter   int
	Converged bool
	Elapsed   time.Duration
}

// Len returns the number of recorded rows.
func (r *Result) Len() int { return len(r.Values) }

// Final returns the last recorded value vector and policy, or nils when
// nothing was recorded (value iteration converging on its first step).
func (r *Result) Final() ([]float64, []int) {
	if len(r.Values) == 0 {
		return nil, nil
	}
	last := len(r.Values) - 1

	return r.Values[last], r.Policies[last]
}

// record appends copies of v and policy.
func (r *Result) record(v []float64, policy []int) {
	r.Values = append(r.Values, append([]float64(nil), v...))
	r.Policies = append(r.Policies, append([]int(nil), policy...))
}
