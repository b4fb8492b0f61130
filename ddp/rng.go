// SPDX-License-Identifier: MIT

package ddp

import "math/rand"

// defaultRNGSeed replaces seed 0 so the zero Options still draw a fixed stream.
const defaultRNGSeed int64 = 1

// NewRand returns a deterministic source for RandomPolicy.
// seed == 0 selects defaultRNGSeed; any other seed is used verbatim.
func NewRand(seed int64) *rand.Rand {
	if seed == 0 {
		seed = defaultRNGSeed
	}

	return rand.New(rand.NewSource(seed))
}
