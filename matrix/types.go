// SPDX-License-Identifier: MIT

package matrix

// Matrix is the read/write view shared by Dense and any caller-supplied
// implementation. Every kernel accepts it and takes a flat-buffer fast path
// when the argument is a *Dense.
//
// In this module a payoff grid is a Matrix with row = action and
// column = state; policy evaluation builds n×n selection and system matrices.
type Matrix interface {
	Rows() int
	Cols() int

	// At returns element (i, j) or ErrOutOfRange.
	At(i, j int) (float64, error)

	// Set writes element (i, j). It fails with ErrOutOfRange, or ErrNaNInf when
	// the implementation enforces finite values.
	Set(i, j int, v float64) error

	// Clone returns an independent deep copy.
	Clone() Matrix
}
