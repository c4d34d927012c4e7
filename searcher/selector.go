package searcher

import (
	"github.com/samber/lo"
	"golang.org/x/exp/rand"

	"tilesearch/game"
)

// selectMove returns the direction with the highest score. Ties are broken
// uniformly by redrawing a direction until it lands on a tied one.
func selectMove(scores Scores, rng *rand.Rand) game.Direction {
	best := lo.Max(scores[:])
	tied := lo.Filter(game.Directions[:], func(d game.Direction, _ int) bool {
		return scores[d] == best
	})
	if len(tied) == 1 {
		return tied[0]
	}

	for {
		d := game.Directions[rng.Intn(game.NumMoves)]
		if lo.Contains(tied, d) {
			return d
		}
	}
}
