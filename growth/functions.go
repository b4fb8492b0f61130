// SPDX-License-Identifier: MIT

package growth

import "math"

// Production returns the Cobb–Douglas output k^alpha.
func Production(k, alpha float64) float64 {
	return math.Pow(k, alpha)
}

// ProductionDPrime returns f''(k) = alpha(alpha−1)k^(alpha−2).
func ProductionDPrime(k, alpha float64) float64 {
	return alpha * (alpha - 1) * math.Pow(k, alpha-2)
}

// CRRA returns (c^(1−sigma) − 1)/(1 − sigma).
// Neither negative consumption nor the log-utility limit sigma == 1 is handled:
// NaN in, NaN out, and sigma == 1 yields an IEEE division by zero.
func CRRA(c, sigma float64) float64 {
	return (math.Pow(c, 1-sigma) - 1) / (1 - sigma)
}

// CRRAPrime returns u'(c) = c^(−sigma).
func CRRAPrime(c, sigma float64) float64 {
	return 1 / math.Pow(c, sigma)
}

// CRRADPrime returns u''(c) = −sigma·c^(−1−sigma).
func CRRADPrime(c, sigma float64) float64 {
	return -sigma / math.Pow(c, 1+sigma)
}

// CapitalSteadyState returns k* solving beta·(f'(k) + 1 − delta) = 1.
func CapitalSteadyState(alpha, beta, delta float64) float64 {
	return math.Pow((1-beta+delta*beta)/(alpha*beta), 1/(alpha-1))
}

// ConsumptionSteadyState returns c* = k*^alpha − delta·k*.
func ConsumptionSteadyState(kss, alpha, delta float64) float64 {
	return math.Pow(kss, alpha) - delta*kss
}
