// SPDX-License-Identifier: MIT

package growth

import "fmt"

// DefaultDev is the capital-grid half-width, as a fraction of k*, used when Params.Dev is zero.
const DefaultDev = 0.2

// Params are the primitives of the growth model and of its discretization.
type Params struct {
	Alpha     float64 // capital share in production, (0,1)
	Beta      float64 // discount factor, (0,1)
	Delta     float64 // depreciation rate, [0,1]
	Sigma     float64 // relative risk aversion, >0 and != 1
	NumStates int     // number of capital grid points, >=2
	Dev       float64 // grid spans k*(1±Dev); 0 means DefaultDev
}

// DefaultParams returns a calibrated baseline.
func DefaultParams() Params {
	return Params{
		Alpha:     0.4,
		Beta:      0.95,
		Delta:     0.1,
		Sigma:     2,
		NumStates: 200,
		Dev:       DefaultDev,
	}
}

// EffectiveDev returns Dev, or DefaultDev when Dev is unset.
func (p Params) EffectiveDev() float64 {
	if p.Dev == 0 {
		return DefaultDev
	}

	return p.Dev
}

// Validate checks every field against its admissible range.
// Errors are ErrInvalidParam wrapped with the offending field.
func (p Params) Validate() error {
	switch {
	case !(p.Alpha > 0 && p.Alpha < 1):
		return fmt.Errorf("alpha=%g: %w", p.Alpha, ErrInvalidParam)
	case !(p.Beta > 0 && p.Beta < 1):
		return fmt.Errorf("beta=%g: %w", p.Beta, ErrInvalidParam)
	case !(p.Delta >= 0 && p.Delta <= 1):
		return fmt.Errorf("delta=%g: %w", p.Delta, ErrInvalidParam)
	case !(p.Sigma > 0) || p.Sigma == 1:
		return fmt.Errorf("sigma=%g: %w", p.Sigma, ErrInvalidParam)
	case p.NumStates < 2:
		return fmt.Errorf("num_states=%d: %w", p.NumStates, ErrInvalidParam)
	case !(p.Dev >= 0 && p.Dev < 1):
		return fmt.Errorf("dev=%g: %w", p.Dev, ErrInvalidParam)
	}

	return nil
}

// SteadyState returns (k*, c*) for p.
func (p Params) SteadyState() (kss, css float64) {
	kss = CapitalSteadyState(p.Alpha, p.Beta, p.Delta)
	return kss, ConsumptionSteadyState(kss, p.Alpha, p.Delta)
}
