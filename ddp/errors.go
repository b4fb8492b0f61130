// SPDX-License-Identifier: MIT

package ddp

import "errors"

// Sentinel errors returned by the ddp package. Callers match them with errors.Is.
var (
	// ErrNilUtility indicates a nil payoff grid.
	ErrNilUtility = errors.New("ddp: utility grid is nil")

	// ErrNonSquare indicates a payoff grid whose action and state axes differ in length.
	ErrNonSquare = errors.New("ddp: utility grid must be square")

	// ErrDimensionMismatch indicates a vector or mask whose length does not match the grid.
	ErrDimensionMismatch = errors.New("ddp: dimension mismatch")

	// ErrInvalidBeta indicates a discount factor outside (0,1).
	ErrInvalidBeta = errors.New("ddp: beta must lie in (0,1)")

	// ErrInvalidPolicy indicates a policy entry outside [0,n) or pointing at an infeasible move.
	ErrInvalidPolicy = errors.New("ddp: invalid policy")

	// ErrInconsistentMask indicates a mask that marks a NaN payoff cell feasible.
	ErrInconsistentMask = errors.New("ddp: feasible cell holds a NaN payoff")

	// ErrNoFeasibleAction indicates a state from which no move is feasible.
	ErrNoFeasibleAction = errors.New("ddp: state has no feasible action")

	// ErrInvalidCrit indicates a non-positive or non-finite convergence threshold.
	ErrInvalidCrit = errors.New("ddp: crit must be positive and finite")

	// ErrInvalidMaxIter indicates MaxIter < 1.
	ErrInvalidMaxIter = errors.New("ddp: max_iter must be at least 1")

	// ErrInvalidK indicates K < 1 for modified policy iteration.
	ErrInvalidK = errors.New("ddp: k must be at least 1")

	// ErrUnsupportedAlgorithm indicates an unknown Algorithm value or name.
	ErrUnsupportedAlgorithm = errors.New("ddp: unsupported algorithm")
)
