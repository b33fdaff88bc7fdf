// SPDX-License-Identifier: EPL-2.0

package filter

import "math/rand/v2"

// Rand is the random source used by the noise and needle filters.
// *rand.Rand satisfies it.
type Rand interface {
	// IntN returns a uniform value in [0, n).
	IntN(n int) int
}

// NewRand returns a PCG generator. Distinct streams with the same seed
// produce uncorrelated sequences.
func NewRand(seed, stream uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, stream))
}
