// SPDX-License-Identifier: MIT

package linear

import "errors"

var (
	// ErrNoStableRoot indicates that neither eigenvalue of A lies below one.
	ErrNoStableRoot = errors.New("linear: linearized system has no stable root")

	// ErrInvalidHorizon indicates a simulation horizon T < 1.
	ErrInvalidHorizon = errors.New("linear: horizon must be at least 1")
)
