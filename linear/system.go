// SPDX-License-Identifier: MIT

package linear

import (
	"fmt"

	"github.com/katalvlaran/ddpgrowth/growth"
	"github.com/katalvlaran/ddpgrowth/matrix"
)

// System is the linearized dynamics around the steady state (CapitalSS, ConsumptionSS).
// A acts on deviations ordered (consumption, capital).
type System struct {
	CapitalSS     float64
	ConsumptionSS float64
	A             *matrix.Dense
}

// LinearizedSystem builds A from the steady state of the model.
// Parameters are checked against the same ranges as growth.Params.
func LinearizedSystem(alpha, beta, delta, sigma float64) (*System, error) {
	if err := validateModel(alpha, beta, delta, sigma); err != nil {
		return nil, err
	}
	kss := growth.CapitalSteadyState(alpha, beta, delta)
	css := growth.ConsumptionSteadyState(kss, alpha, delta)
	coeff := growth.CRRAPrime(css, sigma) * growth.ProductionDPrime(kss, alpha) / growth.CRRADPrime(css, sigma)

	a, err := matrix.NewDenseFromRows([][]float64{
		{1 + beta*coeff, -coeff},
		{-1, 1 / beta},
	})
	if err != nil {
		return nil, fmt.Errorf("LinearizedSystem: %w", err)
	}

	return &System{CapitalSS: kss, ConsumptionSS: css, A: a}, nil
}

// FromParams is LinearizedSystem for the primitives in p.
func FromParams(p growth.Params) (*System, error) {
	return LinearizedSystem(p.Alpha, p.Beta, p.Delta, p.Sigma)
}

// StableRoot returns the eigenvalue below one and its eigenvector (consumption, capital).
// When both roots are stable the smaller one is returned.
func (s *System) StableRoot() (float64, [2]float64, error) {
	var vec [2]float64
	values, vectors, err := matrix.Eigen2(s.A)
	if err != nil {
		return 0, vec, fmt.Errorf("StableRoot: %w", err)
	}
	for k, lambda := range values {
		if lambda < 1 {
			if vec[0], err = vectors.At(0, k); err != nil {
				return 0, vec, err
			}
			if vec[1], err = vectors.At(1, k); err != nil {
				return 0, vec, err
			}

			return lambda, vec, nil
		}
	}

	return 0, vec, ErrNoStableRoot
}

// SaddlePathSlope returns dc/dk along the stable manifold.
func (s *System) SaddlePathSlope() (float64, error) {
	_, vec, err := s.StableRoot()
	if err != nil {
		return 0, err
	}
	if vec[1] == 0 {
		return 0, ErrNoStableRoot
	}

	return vec[0] / vec[1], nil
}

// ConsumptionPolicy returns c(k) = slope·(k − k*) + c* for every k.
func (s *System) ConsumptionPolicy(k []float64) ([]float64, error) {
	slope, err := s.SaddlePathSlope()
	if err != nil {
		return nil, err
	}
	c := make([]float64, len(k))
	for i, ki := range k {
		c[i] = slope*(ki-s.CapitalSS) + s.ConsumptionSS
	}

	return c, nil
}

// Simulate follows the saddle path for T periods from every initial capital in k0.
//
// Row i of kSim and cSim is the path starting at k0[i]; column t is period t.
// Capital deviations evolve by the capital row of A applied to the current
// (consumption, capital) deviation, and consumption is kept on the saddle path.
//
// Errors: growth.ErrEmptyGrid for empty k0, ErrInvalidHorizon for T < 1.
func (s *System) Simulate(k0 []float64, T int) (kSim, cSim *matrix.Dense, err error) {
	if len(k0) == 0 {
		return nil, nil, growth.ErrEmptyGrid
	}
	if T < 1 {
		return nil, nil, fmt.Errorf("T=%d: %w", T, ErrInvalidHorizon)
	}
	slope, err := s.SaddlePathSlope()
	if err != nil {
		return nil, nil, err
	}
	capRow, err := s.A.Row(1)
	if err != nil {
		return nil, nil, err
	}
	if kSim, err = matrix.NewDense(len(k0), T); err != nil {
		return nil, nil, err
	}
	if cSim, err = matrix.NewDense(len(k0), T); err != nil {
		return nil, nil, err
	}

	x := make([]float64, 2) // (consumption, capital) deviation
	for i, k := range k0 {
		x[1] = k - s.CapitalSS
		x[0] = slope * x[1]
		for t := 0; t < T; t++ {
			if t > 0 {
				x[1] = capRow[0]*x[0] + capRow[1]*x[1]
				x[0] = slope * x[1]
			}
			if err = kSim.Set(i, t, x[1]+s.CapitalSS); err != nil {
				return nil, nil, err
			}
			if err = cSim.Set(i, t, x[0]+s.ConsumptionSS); err != nil {
				return nil, nil, err
			}
		}
	}

	return kSim, cSim, nil
}

// ConsumptionPolicy builds the system for p and evaluates its consumption policy on k.
func ConsumptionPolicy(k []float64, p growth.Params) ([]float64, error) {
	s, err := FromParams(p)
	if err != nil {
		return nil, err
	}

	return s.ConsumptionPolicy(k)
}

// Simulate builds the system for p and simulates T periods from each k0.
func Simulate(k0 []float64, T int, p growth.Params) (kSim, cSim *matrix.Dense, err error) {
	s, err := FromParams(p)
	if err != nil {
		return nil, nil, err
	}

	return s.Simulate(k0, T)
}

func validateModel(alpha, beta, delta, sigma float64) error {
	switch {
	case !(alpha > 0 && alpha < 1):
		return fmt.Errorf("alpha=%g: %w", alpha, growth.ErrInvalidParam)
	case !(beta > 0 && beta < 1):
		return fmt.Errorf("beta=%g: %w", beta, growth.ErrInvalidParam)
	case !(delta >= 0 && delta <= 1):
		return fmt.Errorf("delta=%g: %w", delta, growth.ErrInvalidParam)
	case !(sigma > 0):
		return fmt.Errorf("sigma=%g: %w", sigma, growth.ErrInvalidParam)
	}

	return nil
}
