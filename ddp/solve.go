// SPDX-License-Identifier: MIT

package ddp

import (
	"context"
	"fmt"

	"github.com/katalvlaran/ddpgrowth/ctxlog"
)

// Solve validates p and opts, then routes to the solver named by opts.Algo.
//
// ctx only carries the logger (see ctxlog); solves are CPU-bound and are not
// cancelled through it. Each outer iteration is logged at debug level and the
// outcome at info level, or warn level when MaxIter was exhausted.
//
// Errors: ErrUnsupportedAlgorithm plus everything the selected solver returns.
func Solve(ctx context.Context, p Problem, opts Options) (*Result, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	logger := ctxlog.FromContext(ctx).With("algo", opts.Algo.String())
	trace := func(i int, maxDiff float64) {
		logger.Debug("ddp iteration", "iter", i, "max_diff", maxDiff)
	}

	var (
		res *Result
		err error
	)
	switch opts.Algo {
	case ValueIter:
		res, err = valueIteration(p, opts, trace)
	case PolicyIter:
		res, err = policyIteration(p, opts, trace)
	case ModifiedPolicyIter:
		res, err = modifiedPolicyIteration(p, opts, trace)
	default:
		err = ErrUnsupportedAlgorithm
	}
	if err != nil {
		return nil, fmt.Errorf("Solve(%s): %w", opts.Algo, err)
	}

	attrs := []any{
		"states", p.Size(),
		"num_iter", res.NumIter,
		"recorded", res.Len(),
		"converged", res.Converged,
		"elapsed", res.Elapsed,
	}
	if res.Converged {
		logger.Info("ddp solve finished", attrs...)
	} else {
		logger.Warn("ddp solve exhausted max_iter", append(attrs, "max_iter", opts.MaxIter)...)
	}

	return res, nil
}
