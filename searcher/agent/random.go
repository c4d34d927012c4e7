package agent

import (
	"time"

	"golang.org/x/exp/rand"

	"tilesearch/experiments/metrics"
	"tilesearch/game"
)

type randomAgent struct {
	rules game.Rules
	rng   *rand.Rand
}

// NewRandomAgent returns a baseline agent that picks uniformly among the
// moves that change the board.
func NewRandomAgent(rules game.Rules, rng *rand.Rand) Agent {
	if rng == nil {
		rng = game.NewRand(0)
	}
	return randomAgent{rules: rules, rng: rng}
}

func (a randomAgent) FindMove(state *game.GameState) (game.Direction, metrics.SearchMetric, error) {
	start := time.Now()
	moves := game.LegalMoves(a.rules, state.Board)
	if len(moves) == 0 {
		return 0, metrics.SearchMetric{}, ErrNoMoves
	}
	move := moves[a.rng.Intn(len(moves))]
	return move, metrics.SearchMetric{Propagation: "random", Duration: time.Since(start)}, nil
}
