// SPDX-License-Identifier: MIT

package ddp

import (
	"slices"
	"time"

	"github.com/katalvlaran/ddpgrowth/matrix"
)

// tracer observes outer iteration i and its sup-norm statistic. It may be nil.
type tracer func(i int, maxDiff float64)

func (t tracer) emit(i int, maxDiff float64) {
	if t != nil {
		t(i, maxDiff)
	}
}

// greedy runs one improvement step under the selected infeasibility rule.
func (p Problem) greedy(v []float64, infeasibleAsZero bool) ([]float64, []int, error) {
	if infeasibleAsZero {
		return Greedy(v, p.Utility, p.Beta)
	}

	return GreedyMasked(v, p.Utility, p.Feasible, p.Beta)
}

// prepare validates the problem and the numeric options shared by all solvers.
func prepare(p Problem, opts Options) error {
	if err := p.Validate(); err != nil {
		return err
	}

	return opts.validateNumeric()
}

// ValueIteration iterates v ← max_a (U + beta·v) from v = 0.
//
// Per iteration i the greedy step yields (v', σ). When max|v' − v| < Crit the
// loop stops without recording v' and NumIter = i. Otherwise (v', σ) is
// appended and v = v'. Exhausting MaxIter leaves NumIter = MaxIter − 1 and
// Converged = false.
//
// opts.Algo is ignored.
func ValueIteration(p Problem, opts Options) (*Result, error) {
	return valueIteration(p, opts, nil)
}

func valueIteration(p Problem, opts Options, trace tracer) (*Result, error) {
	if err := prepare(p, opts); err != nil {
		return nil, err
	}
	start := time.Now()
	res := &Result{Algo: ValueIter}

	valOld := make([]float64, p.Size())
	for i := 0; i < opts.MaxIter; i++ {
		valNew, policy, err := p.greedy(valOld, opts.InfeasibleAsZero)
		if err != nil {
			return nil, err
		}
		maxDiff, err := matrix.MaxAbsDiff(valNew, valOld)
		if err != nil {
			return nil, err
		}
		trace.emit(i, maxDiff)
		if maxDiff < opts.Crit {
			res.NumIter, res.Converged = i, true
			break
		}
		res.record(valNew, policy)
		valOld = valNew
	}
	if !res.Converged {
		res.NumIter = opts.MaxIter - 1
	}
	res.Elapsed = time.Since(start)

	return res, nil
}

// PolicyIteration alternates greedy improvement and exact evaluation.
//
// The starting policy is drawn by RandomPolicy from a stream seeded with
// opts.Seed and evaluated exactly; that pair is row 0 of the history. Per
// iteration i the greedy step on the current value yields (v', σ'), which is
// recorded at row i+1. If σ' equals the current policy element-wise the solve
// has converged with NumIter = i+1; otherwise the policy becomes σ' and the
// value its exact evaluation. Exhausting MaxIter leaves NumIter = MaxIter.
//
// opts.Crit and opts.K are unused; opts.Algo is ignored.
func PolicyIteration(p Problem, opts Options) (*Result, error) {
	return policyIteration(p, opts, nil)
}

func policyIteration(p Problem, opts Options, trace tracer) (*Result, error) {
	if err := prepare(p, opts); err != nil {
		return nil, err
	}
	start := time.Now()
	res := &Result{Algo: PolicyIter}

	policy, err := randomPolicy(p.Feasible, NewRand(opts.Seed))
	if err != nil {
		return nil, err
	}
	v, err := evaluatePolicy(policy, p.Utility, p.Beta, opts.InfeasibleAsZero)
	if err != nil {
		return nil, err
	}
	res.record(v, policy)

	for i := 0; i < opts.MaxIter; i++ {
		improvedValue, improvedPolicy, err := p.greedy(v, opts.InfeasibleAsZero)
		if err != nil {
			return nil, err
		}
		tv, err := evaluatePolicy(improvedPolicy, p.Utility, p.Beta, opts.InfeasibleAsZero)
		if err != nil {
			return nil, err
		}
		res.record(improvedValue, improvedPolicy)

		maxDiff, err := matrix.MaxAbsDiff(tv, v)
		if err != nil {
			return nil, err
		}
		trace.emit(i, maxDiff)

		if slices.Equal(improvedPolicy, policy) {
			res.NumIter, res.Converged = i+1, true
			break
		}
		policy, v = improvedPolicy, tv
	}
	if !res.Converged {
		res.NumIter = opts.MaxIter
	}
	res.Elapsed = time.Since(start)

	return res, nil
}

// ModifiedPolicyIteration replaces the exact evaluation of policy iteration
// with at most K fixed-policy updates w ← U_σ + beta·Q_σ·w.
//
// Starting from v = 0, iteration i takes the greedy step (v', σ). When
// max|v − v'| < Crit the loop stops without recording and NumIter = i.
// Otherwise w starts at v' and is updated under σ until K updates are done or
// an update would move w by less than Crit; that last candidate is discarded.
// (w, σ) is recorded at row i and v = w. Exhausting MaxIter leaves
// NumIter = MaxIter − 1.
//
// Larger K moves the scheme toward policy iteration.
// opts.Algo is ignored.
func ModifiedPolicyIteration(p Problem, opts Options) (*Result, error) {
	return modifiedPolicyIteration(p, opts, nil)
}

func modifiedPolicyIteration(p Problem, opts Options, trace tracer) (*Result, error) {
	if err := prepare(p, opts); err != nil {
		return nil, err
	}
	start := time.Now()
	res := &Result{Algo: ModifiedPolicyIter}

	valOld := make([]float64, p.Size())
	for i := 0; i < opts.MaxIter; i++ {
		improvedValue, improvedPolicy, err := p.greedy(valOld, opts.InfeasibleAsZero)
		if err != nil {
			return nil, err
		}
		maxDiff, err := matrix.MaxAbsDiff(valOld, improvedValue)
		if err != nil {
			return nil, err
		}
		trace.emit(i, maxDiff)
		if maxDiff < opts.Crit {
			res.NumIter, res.Converged = i, true
			break
		}

		op, err := newPolicyOperator(improvedPolicy, p.Utility, p.Beta, opts.InfeasibleAsZero)
		if err != nil {
			return nil, err
		}
		w := improvedValue
		for j := 0; j < opts.K; j++ {
			wNew, err := op.apply(w)
			if err != nil {
				return nil, err
			}
			step, err := matrix.MaxAbsDiff(wNew, w)
			if err != nil {
				return nil, err
			}
			if step < opts.Crit {
				break
			}
			w = wNew
		}

		res.record(w, improvedPolicy)
		valOld = w
	}
	if !res.Converged {
		res.NumIter = opts.MaxIter - 1
	}
	res.Elapsed = time.Since(start)

	return res, nil
}
