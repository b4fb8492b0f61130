// SPDX-License-Identifier: MIT

package growth

import "errors"

var (
	// ErrInvalidParam is returned by Params.Validate; the message is wrapped with the field name.
	ErrInvalidParam = errors.New("growth: invalid model parameter")

	// ErrEmptyGrid indicates an empty capital grid was passed to a grid builder.
	ErrEmptyGrid = errors.New("growth: capital grid is empty")
)
