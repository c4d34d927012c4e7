package agent

import (
	"errors"

	"tilesearch/experiments/metrics"
	"tilesearch/game"
)

// ErrNoMoves is returned when no direction changes the board.
var ErrNoMoves = errors.New("no move changes the board")

type Agent interface {
	// FindMove returns a move for the state and the search metrics (if collected)
	FindMove(state *game.GameState) (game.Direction, metrics.SearchMetric, error)
}
