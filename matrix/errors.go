// SPDX-License-Identifier: MIT

package matrix

import "errors"

// Sentinels returned by every routine in this package, always wrapped with the
// operation tag ("Solve: matrix: singular matrix"). Match them with errors.Is.
//
// When several checks fail at once the first in this order is reported:
// nil -> shape/index/NaN -> dimension mismatch -> numerical failure.
var (
	// ErrInvalidDimensions: a constructor got rows or cols <= 0.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrOutOfRange: At/Set index outside the matrix. Indexers never panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch: operand shapes disagree (Sub, MatVec, Solve's
	// right-hand side, ragged NewDenseFromRows input, non-square LU).
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNilMatrix: a nil matrix or vector was passed.
	ErrNilMatrix = errors.New("matrix: nil receiver")

	// ErrNaNInf: a non-finite value reached a matrix built with the default
	// numeric policy. Payoff grids carrying NaN opt out via WithValidateNaNInf(false).
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")

	// ErrSingular: LU hit a zero pivot. There is no pivoting, so a
	// permutable but non-singular matrix can also trigger it.
	ErrSingular = errors.New("matrix: singular matrix")

	// ErrMatrixEigenFailed: the spectrum is complex (Eigen2 works over the reals only).
	ErrMatrixEigenFailed = errors.New("matrix: eigen decomposition failed")
)
