// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for Dense construction.
// This file defines:
//   - Option (functional option over denseConfig),
//   - documented defaults (constants),
//   - gatherOptions helper (internal).
//
// Design goals:
//   - Deterministic behavior: no global state, no implicit randomness.
//   - No dead switches: each flag impacts behavior and is covered by tests.
//
// Notes:
//   - Payoff grids encode infeasible transitions as NaN. Those grids are built with
//     WithValidateNaNInf(false); every other matrix keeps the finite-only default.
package matrix

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultEpsilon defines the non-negative tolerance used by structural checks.
	DefaultEpsilon = 1e-9

	// DefaultValidateNaNInf toggles strict finite-value validation on Set/Apply.
	DefaultValidateNaNInf = true
)

// denseConfig is the internal state mutated by Option values.
type denseConfig struct {
	validateNaNInf bool
}

// Option configures a Dense at construction time.
type Option func(*denseConfig)

// WithValidateNaNInf sets the numeric policy of the constructed Dense.
// true ⇒ Set/Apply reject NaN and ±Inf with ErrNaNInf; false ⇒ any float64 is stored.
func WithValidateNaNInf(enabled bool) Option {
	return func(c *denseConfig) { c.validateNaNInf = enabled }
}

// gatherOptions folds opts over the documented defaults.
// Complexity: O(len(opts)).
func gatherOptions(opts []Option) denseConfig {
	cfg := denseConfig{validateNaNInf: DefaultValidateNaNInf}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	return cfg
}
