// SPDX-License-Identifier: MIT
// Package matrix provides universal operations on any Matrix implementation:
// element-wise subtraction, scalar scaling, matrix-vector products and the
// LU-based direct solve used by policy evaluation. All functions perform strict
// fail-fast validation and return clear errors on dimension mismatches.
//
// Notes:
//   - Every kernel has a *Dense fast-path on the flat buffer and an At/Set fallback.
//   - All kernels use central validators and wrap errors via matrixErrorf.

package matrix

import (
	"fmt"
	"math"
)

// NormZero is the additive identity for norm and accumulation operations.
const NormZero = 0.0

// ZeroSum is the initial sum value for forward/backward substitution and similar.
const ZeroSum = 0.0

// ZeroPivot is the sentinel for detecting a zero pivot in LU/Solve routines.
const ZeroPivot = 0.0

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opSub        = "Sub"
	opScale      = "Scale"
	opMatVec     = "MatVec"
	opLU         = "LU"
	opSolve      = "Solve"
	opEigen2     = "Eigen2"
	opMaxAbsDiff = "MaxAbsDiff"
)

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// Use only when err != nil to avoid creating a non-nil wrapper around a nil cause.
//
// Complexity:
//   - Time O(1), Space O(1).
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// Sub computes the element-wise difference C = A - B and returns a fresh Dense result.
//
// Implementation:
//   - Stage 1: ValidateBinarySameShape(a, b). Allocate result Dense(rows, cols).
//   - Stage 2: Fast-path if both are *Dense - single flat loop 0..n-1.
//     Otherwise, fallback At/Set with fixed i→j order.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func Sub(a, b Matrix) (Matrix, error) {
	if err := ValidateBinarySameShape(a, b); err != nil {
		return nil, matrixErrorf(opSub, err)
	}
	rows, cols := a.Rows(), a.Cols()
	res, err := NewDense(rows, cols)
	if err != nil {
		return nil, matrixErrorf(opSub, err)
	}

	// Fast-path: both operands are *Dense.
	if da, okA := a.(*Dense); okA {
		if db, okB := b.(*Dense); okB {
			var idx int
			for idx = range res.data {
				res.data[idx] = da.data[idx] - db.data[idx]
			}

			return res, nil
		}
	}

	// Fallback: generic interface loop using At/Set.
	var i, j int
	var av, bv float64
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			if av, err = a.At(i, j); err != nil {
				return nil, matrixErrorf(opSub, err)
			}
			if bv, err = b.At(i, j); err != nil {
				return nil, matrixErrorf(opSub, err)
			}
			if err = res.Set(i, j, av-bv); err != nil {
				return nil, matrixErrorf(opSub, err)
			}
		}
	}

	return res, nil
}

// Scale returns a new matrix whose elements are alpha * m[i,j].
// Input is validated non-nil; the original matrix is never mutated.
// Complexity: O(r*c).
func Scale(m Matrix, alpha float64) (Matrix, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opScale, err)
	}
	rows, cols := m.Rows(), m.Cols()
	res, err := NewDense(rows, cols)
	if err != nil {
		return nil, matrixErrorf(opScale, err)
	}

	if d, ok := m.(*Dense); ok {
		var idx int
		for idx = range res.data {
			res.data[idx] = alpha * d.data[idx]
		}

		return res, nil
	}

	var i, j int
	var v float64
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, matrixErrorf(opScale, err)
			}
			if err = res.Set(i, j, alpha*v); err != nil {
				return nil, matrixErrorf(opScale, err)
			}
		}
	}

	return res, nil
}

// MatVec computes y = m * x for a column vector x.
//
// Contract: m non-nil; x non-nil; len(x) == m.Cols().
// Fast-path: *Dense performs one pass per row with flat indexing.
// Determinism: fixed i→j loop order.
// Complexity: Time O(r*c), Space O(r) for y.
func MatVec(m Matrix, x []float64) ([]float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	if err := ValidateVecLen(x, m.Cols()); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	rows, cols := m.Rows(), m.Cols()
	y := make([]float64, rows)

	if d, ok := m.(*Dense); ok {
		var i, j, base int
		var acc, xv float64
		for i = 0; i < d.r; i++ {
			acc = ZeroSum
			base = i * d.c
			for j = 0; j < d.c; j++ {
				xv = x[j]
				if xv != 0 { // skip zero multiplications (selection matrices are mostly zero)
					acc += d.data[base+j] * xv
				}
			}
			y[i] = acc
		}

		return y, nil
	}

	var i, j int
	var mv float64
	var err error
	for i = 0; i < rows; i++ {
		y[i] = ZeroSum
		for j = 0; j < cols; j++ {
			if mv, err = m.At(i, j); err != nil {
				return nil, matrixErrorf(opMatVec, fmt.Errorf("At(%d,%d): %w", i, j, err))
			}
			y[i] += mv * x[j]
		}
	}

	return y, nil
}

// LU computes the Doolittle factorization A = L*U with unit diagonal on L (no pivoting).
// Implementation:
//   - Stage 1: Validate m (not nil, square); allocate Dense L,U; set diag(L)=1.
//   - Stage 2: For i=0..n-1, build row i of U and column i of L in fixed order.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch, ErrSingular (if U[i,i]==0 during factorization).
//
// Complexity:
//   - Time O(n^3), Space O(n^2).
//
// Notes:
//   - Without pivoting the factorization exists for every matrix whose leading principal
//     minors are non-zero, which includes strictly diagonally dominant matrices such as
//     I − β·Q for a selection matrix Q and β ∈ (0,1).
func LU(m Matrix) (*Dense, *Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, nil, matrixErrorf(opLU, err)
	}
	if err := ValidateSquare(m); err != nil {
		return nil, nil, matrixErrorf(opLU, err)
	}

	n := m.Rows()
	L, err := NewDense(n, n)
	if err != nil {
		return nil, nil, matrixErrorf(opLU, err)
	}
	U, err := NewDense(n, n)
	if err != nil {
		return nil, nil, matrixErrorf(opLU, err)
	}
	for i := 0; i < n; i++ {
		L.data[i*n+i] = 1.0
	}

	// Materialize A as a flat buffer once; the fallback pays O(n^2) At calls instead of O(n^3).
	var a []float64
	if d, ok := m.(*Dense); ok {
		a = d.data
	} else {
		a = make([]float64, n*n)
		var i, j int
		for i = 0; i < n; i++ {
			for j = 0; j < n; j++ {
				if a[i*n+j], err = m.At(i, j); err != nil {
					return nil, nil, matrixErrorf(opLU, fmt.Errorf("At(%d,%d): %w", i, j, err))
				}
			}
		}
	}

	var i, j, k, baseI, baseJ int
	var sum, pivot float64
	for i = 0; i < n; i++ {
		baseI = i * n
		// U[i][j] for j >= i
		for j = i; j < n; j++ {
			sum = ZeroSum
			for k = 0; k < i; k++ {
				sum += L.data[baseI+k] * U.data[k*n+j]
			}
			U.data[baseI+j] = a[baseI+j] - sum
		}

		pivot = U.data[baseI+i]
		if pivot == ZeroPivot || math.IsNaN(pivot) {
			return nil, nil, matrixErrorf(opLU, ErrSingular)
		}

		// L[j][i] for j > i
		for j = i + 1; j < n; j++ {
			sum = ZeroSum
			baseJ = j * n
			for k = 0; k < i; k++ {
				sum += L.data[baseJ+k] * U.data[k*n+i]
			}
			L.data[baseJ+i] = (a[baseJ+i] - sum) / pivot
		}
	}

	return L, U, nil
}

// Solve returns x such that A·x = b, using one LU factorization and a pair of
// triangular solves (cheaper and more accurate than forming A^{-1}).
// MAIN DESCRIPTION:
//   - Direct dense solve for a single right-hand side.
//
// Implementation:
//   - Stage 1: ValidateNotNil/ValidateSquare(a), ValidateVecLen(b, n).
//   - Stage 2: L, U := LU(a).
//   - Stage 3: forward substitution L·y = b (top-down).
//   - Stage 4: backward substitution U·x = y (bottom-up).
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch, ErrSingular.
//
// Determinism:
//   - Fixed traversal and no pivoting → identical results for identical inputs.
//
// Complexity:
//   - Time O(n^3) for LU + O(n^2) for the substitutions; Space O(n^2).
func Solve(a Matrix, b []float64) ([]float64, error) {
	if err := ValidateNotNil(a); err != nil {
		return nil, matrixErrorf(opSolve, err)
	}
	if err := ValidateSquare(a); err != nil {
		return nil, matrixErrorf(opSolve, err)
	}
	n := a.Rows()
	if err := ValidateVecLen(b, n); err != nil {
		return nil, matrixErrorf(opSolve, err)
	}

	L, U, err := LU(a)
	if err != nil {
		return nil, matrixErrorf(opSolve, err)
	}

	var (
		i, k, base int
		sum        float64
		y          = make([]float64, n) // forward substitution workspace
		x          = make([]float64, n) // solution
	)
	// Forward substitution: L*y = b (L has a unit diagonal).
	for i = 0; i < n; i++ {
		sum = ZeroSum
		base = i * n
		for k = 0; k < i; k++ {
			sum += L.data[base+k] * y[k]
		}
		y[i] = b[i] - sum
	}
	// Backward substitution: U*x = y.
	for i = n - 1; i >= 0; i-- {
		sum = ZeroSum
		base = i * n
		for k = i + 1; k < n; k++ {
			sum += U.data[base+k] * x[k]
		}
		x[i] = (y[i] - sum) / U.data[base+i] // pivots are non-zero after LU
	}

	return x, nil
}

// MaxAbsDiff returns max_i |x[i] − y[i]| (the sup-norm distance), the stopping
// statistic of every fixed-point loop in this module.
// Errors: ErrNilMatrix for nil slices, ErrDimensionMismatch for unequal lengths.
// Complexity: O(n).
func MaxAbsDiff(x, y []float64) (float64, error) {
	if err := ValidateVecLen(x, len(y)); err != nil {
		return 0, matrixErrorf(opMaxAbsDiff, err)
	}
	if y == nil {
		return 0, matrixErrorf(opMaxAbsDiff, ErrNilMatrix)
	}
	d := NormZero
	var i int
	var v float64
	for i = range x {
		v = math.Abs(x[i] - y[i])
		if v > d || math.IsNaN(v) {
			d = v
		}
	}

	return d, nil
}
