package game

import (
	"math"

	"golang.org/x/exp/rand"
	"lukechampine.com/frand"
)

// Size is the width and height of the board
const Size = 4

// NumMoves is the number of directions a board can be slid in
const NumMoves = 4

// NewRand returns a seeded random source. A zero seed draws one from the
// system entropy pool.
func NewRand(seed uint64) *rand.Rand {
	if seed == 0 {
		seed = frand.Uint64n(math.MaxUint64) + 1
	}
	return rand.New(rand.NewSource(seed))
}
