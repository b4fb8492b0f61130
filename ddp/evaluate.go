// SPDX-License-Identifier: MIT

package ddp

import (
	"fmt"
	"math"

	"github.com/katalvlaran/ddpgrowth/matrix"
)

// EvaluatePolicy returns the value of following policy forever.
//
// With the selection matrix Q[s][policy[s]] = 1 and per-state payoff
// b[s] = U[policy[s]][s], it solves (I − beta·Q)·v = b directly, so that
// v[s] = b[s] + beta·v[policy[s]] for every state s.
//
// Errors:
//   - ErrNilUtility, ErrNonSquare for a bad grid; ErrInvalidBeta for beta ∉ (0,1).
//   - ErrDimensionMismatch when len(policy) != n.
//   - ErrInvalidPolicy when an entry is outside [0,n) or selects a NaN payoff.
//   - matrix.ErrSingular from the solve (not reachable for valid inputs).
//
// Complexity: O(n³) for the LU solve.
func EvaluatePolicy(policy []int, u *matrix.Dense, beta float64) ([]float64, error) {
	return evaluatePolicy(policy, u, beta, false)
}

// evaluatePolicy is EvaluatePolicy under the selected infeasibility rule.
// With infeasibleAsZero a state whose policy selects a NaN cell is worth 0,
// matching the zero score Bellman gives that cell.
func evaluatePolicy(policy []int, u *matrix.Dense, beta float64, infeasibleAsZero bool) ([]float64, error) {
	if err := validateGrid(u); err != nil {
		return nil, err
	}
	if err := validateBeta(beta); err != nil {
		return nil, err
	}
	b, q, err := policySystem(policy, u, infeasibleAsZero)
	if err != nil {
		return nil, err
	}

	n := len(policy)
	eye, err := matrix.NewIdentity(n)
	if err != nil {
		return nil, err
	}
	bq, err := matrix.Scale(q, beta)
	if err != nil {
		return nil, err
	}
	a, err := matrix.Sub(eye, bq)
	if err != nil {
		return nil, err
	}

	v, err := matrix.Solve(a, b)
	if err != nil {
		return nil, fmt.Errorf("EvaluatePolicy: %w", err)
	}

	return v, nil
}

// policySystem returns the payoff vector b and selection matrix Q of policy.
//
// A selected NaN cell is ErrInvalidPolicy, unless infeasibleAsZero is set:
// then b[s] = 0 and row s of Q stays zero, so v[s] = 0.
func policySystem(policy []int, u *matrix.Dense, infeasibleAsZero bool) ([]float64, *matrix.Dense, error) {
	n := u.Rows()
	if len(policy) != n {
		return nil, nil, fmt.Errorf("len(policy)=%d, n=%d: %w", len(policy), n, ErrDimensionMismatch)
	}
	q, err := matrix.NewZeros(n, n)
	if err != nil {
		return nil, nil, err
	}
	b := make([]float64, n)
	for s, a := range policy {
		if a < 0 || a >= n {
			return nil, nil, fmt.Errorf("policy[%d]=%d: %w", s, a, ErrInvalidPolicy)
		}
		x, err := u.At(a, s)
		if err != nil {
			return nil, nil, err
		}
		if math.IsNaN(x) {
			if !infeasibleAsZero {
				return nil, nil, fmt.Errorf("policy[%d]=%d is infeasible: %w", s, a, ErrInvalidPolicy)
			}
			continue
		}
		b[s] = x
		if err = q.Set(s, a, 1); err != nil {
			return nil, nil, err
		}
	}

	return b, q, nil
}

// policyOperator is the affine map w ↦ b + beta·Q·w of a fixed policy.
type policyOperator struct {
	b    []float64
	q    *matrix.Dense
	beta float64
}

func newPolicyOperator(policy []int, u *matrix.Dense, beta float64, infeasibleAsZero bool) (*policyOperator, error) {
	b, q, err := policySystem(policy, u, infeasibleAsZero)
	if err != nil {
		return nil, err
	}

	return &policyOperator{b: b, q: q, beta: beta}, nil
}

// apply returns b + beta·Q·w as a fresh slice.
func (op *policyOperator) apply(w []float64) ([]float64, error) {
	qw, err := matrix.MatVec(op.q, w)
	if err != nil {
		return nil, err
	}
	for s := range qw {
		qw[s] = op.b[s] + op.beta*qw[s]
	}

	return qw, nil
}
