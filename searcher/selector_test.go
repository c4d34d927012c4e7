package searcher

import (
	"testing"

	"github.com/stretchr/testify/require"

	"tilesearch/game"
)

func TestSelectMove(t *testing.T) {
	t.Run("picking the unique maximum", func(t *testing.T) {
		rng := game.NewRand(1)

		for i := 0; i < 50; i++ {
			require.Equal(t, game.Up, selectMove(Scores{4, 8, 16, 12}, rng), "Unique maximum should always win")
		}
	})

	t.Run("picking only among tied moves", func(t *testing.T) {
		rng := game.NewRand(2)
		seen := map[game.Direction]int{}

		for i := 0; i < 400; i++ {
			seen[selectMove(Scores{16, 4, 16, 0}, rng)]++
		}

		require.Len(t, seen, 2, "Only the tied moves should be chosen")
		require.Greater(t, seen[game.Left], 120, "Left should be chosen about half the time")
		require.Greater(t, seen[game.Up], 120, "Up should be chosen about half the time")
	})

	t.Run("spreading evenly when every move ties", func(t *testing.T) {
		rng := game.NewRand(3)
		seen := map[game.Direction]int{}

		for i := 0; i < 4000; i++ {
			seen[selectMove(Scores{}, rng)]++
		}

		for _, d := range game.Directions {
			require.InDelta(t, 1000, seen[d], 150, "Direction %s should be chosen about a quarter of the time", d)
		}
	})
}
