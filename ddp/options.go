// SPDX-License-Identifier: MIT

package ddp

import "math"

// Defaults applied by DefaultOptions.
const (
	DefaultCrit    = 1e-6
	DefaultK       = 30
	DefaultMaxIter = 500
)

// Options configures a solve.
//
// Algo             – scheme run by Solve (ignored by the direct solver entry points).
// Crit             – sup-norm threshold on value changes (value and modified policy iteration).
// K                – inner fixed-policy updates per outer step (modified policy iteration).
// MaxIter          – hard cap on outer iterations.
// Seed             – seed of the random starting policy (policy iteration); 0 selects a fixed default.
// InfeasibleAsZero – score NaN cells as zero payoff instead of excluding them via the mask.
type Options struct {
	Algo             Algorithm
	Crit             float64
	K                int
	MaxIter          int
	Seed             int64
	InfeasibleAsZero bool
}

// Option is a functional override applied by NewOptions.
type Option func(*Options)

// DefaultOptions returns value iteration with Crit 1e-6, K 30 and MaxIter 500.
func DefaultOptions() Options {
	return Options{
		Algo:    ValueIter,
		Crit:    DefaultCrit,
		K:       DefaultK,
		MaxIter: DefaultMaxIter,
	}
}

// NewOptions folds opts over DefaultOptions.
func NewOptions(opts ...Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return o
}

// WithAlgorithm selects the scheme run by Solve.
func WithAlgorithm(a Algorithm) Option {
	return func(o *Options) { o.Algo = a }
}

// WithCrit sets the convergence threshold. Panics on a non-positive value.
func WithCrit(crit float64) Option {
	return func(o *Options) {
		if !(crit > 0) {
			panic(ErrInvalidCrit.Error())
		}
		o.Crit = crit
	}
}

// WithK sets the number of inner updates. Panics when k < 1.
func WithK(k int) Option {
	return func(o *Options) {
		if k < 1 {
			panic(ErrInvalidK.Error())
		}
		o.K = k
	}
}

// WithMaxIter caps the outer loop. Panics when n < 1.
func WithMaxIter(n int) Option {
	return func(o *Options) {
		if n < 1 {
			panic(ErrInvalidMaxIter.Error())
		}
		o.MaxIter = n
	}
}

// WithSeed fixes the random starting policy.
func WithSeed(seed int64) Option {
	return func(o *Options) { o.Seed = seed }
}

// WithInfeasibleAsZero switches the maximizer to the zero-substitution rule.
func WithInfeasibleAsZero() Option {
	return func(o *Options) { o.InfeasibleAsZero = true }
}

// Validate checks option ranges independently of any grid.
func (o Options) Validate() error {
	if err := o.validateNumeric(); err != nil {
		return err
	}
	switch o.Algo {
	case ValueIter, PolicyIter, ModifiedPolicyIter:
		return nil
	default:
		return ErrUnsupportedAlgorithm
	}
}

// validateNumeric checks every field except Algo.
func (o Options) validateNumeric() error {
	if !(o.Crit > 0) || math.IsInf(o.Crit, 0) {
		return ErrInvalidCrit
	}
	if o.MaxIter < 1 {
		return ErrInvalidMaxIter
	}
	if o.K < 1 {
		return ErrInvalidK
	}

	return nil
}
