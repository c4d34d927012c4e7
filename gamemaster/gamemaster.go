package gamemaster

import (
	"errors"

	"tilesearch/game"
)

var (
	ErrGameOver    = errors.New("game is over - no moves allowed")
	ErrIllegalMove = errors.New("illegal move")
)

// UpdateGetter returns the latest played move and the state it produced.
// ok is false when nothing was played since the last call.
type UpdateGetter func() (move game.Direction, state *game.GameState, ok bool)

// Engine owns the authoritative state of one game.
type Engine interface {
	Init() (*game.GameState, UpdateGetter)
	Play(d game.Direction) error
	Over() bool
}
