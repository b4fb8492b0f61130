// SPDX-License-Identifier: MIT

package matrix

import "math"

// Eigen2 computes the real eigen-decomposition of a general (not necessarily
// symmetric) 2×2 matrix in closed form.
// MAIN DESCRIPTION:
//   - Linearized two-variable dynamic systems are small and non-symmetric, so the
//     Jacobi sweep used for symmetric spectra does not apply; the characteristic
//     polynomial λ² − tr·λ + det = 0 is solved directly instead.
//
// Implementation:
//   - Stage 1: validate non-nil, exactly 2×2, finite entries.
//   - Stage 2: λ = tr/2 ∓ √(tr²/4 − det); negative discriminant ⇒ ErrMatrixEigenFailed.
//   - Stage 3: per λ pick a null vector of (A − λI) from its first non-zero row,
//     falling back to the canonical basis for diagonal input; normalize to unit length.
//
// Returns:
//   - values: eigenvalues in ascending order.
//   - vectors: 2×2 Dense whose column k is the unit eigenvector of values[k].
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (not 2×2), ErrNaNInf, ErrMatrixEigenFailed.
//
// Complexity:
//   - Time O(1), Space O(1).
func Eigen2(m Matrix) ([2]float64, *Dense, error) {
	var values [2]float64
	if err := ValidateNotNil(m); err != nil {
		return values, nil, matrixErrorf(opEigen2, err)
	}
	if m.Rows() != 2 || m.Cols() != 2 {
		return values, nil, matrixErrorf(opEigen2, ErrDimensionMismatch)
	}

	var entries [4]float64
	var err error
	for idx := range entries {
		if entries[idx], err = m.At(idx/2, idx%2); err != nil {
			return values, nil, matrixErrorf(opEigen2, err)
		}
		if math.IsNaN(entries[idx]) || math.IsInf(entries[idx], 0) {
			return values, nil, matrixErrorf(opEigen2, ErrNaNInf)
		}
	}
	a, b, c, d := entries[0], entries[1], entries[2], entries[3]

	half := (a + d) / 2
	disc := half*half - (a*d - b*c)
	if disc < 0 {
		return values, nil, matrixErrorf(opEigen2, ErrMatrixEigenFailed)
	}
	root := math.Sqrt(disc)
	values[0], values[1] = half-root, half+root

	vectors, err := NewDense(2, 2)
	if err != nil {
		return values, nil, matrixErrorf(opEigen2, err)
	}

	var x, y, norm float64
	for k, lambda := range values {
		switch {
		case b != 0:
			// (a−λ)x + b·y = 0
			x, y = b, lambda-a
		case c != 0:
			// c·x + (d−λ)y = 0
			x, y = lambda-d, c
		case k == 0 && a <= d, k == 1 && a > d:
			// diagonal input: eigenvalue a belongs to e1
			x, y = 1, 0
		default:
			x, y = 0, 1
		}
		norm = math.Hypot(x, y)
		vectors.data[k] = x / norm   // row 0, column k
		vectors.data[2+k] = y / norm // row 1, column k
	}

	return values, vectors, nil
}
