package gamemaster

import (
	"fmt"

	"tilesearch/game"
)

type update struct {
	move  game.Direction
	state *game.GameState
}

type localEngine struct {
	rules    game.Rules
	state    *game.GameState
	updateCh chan update
	gameOver bool
}

func NewLocalEngine(rules game.Rules) *localEngine {
	return &localEngine{rules: rules}
}

// Init starts a new game and returns a copy of its first state.
func (e *localEngine) Init() (*game.GameState, UpdateGetter) {
	return e.start(game.NewGameState(e.rules))
}

// InitFrom starts a game from an existing state, for replays and tests.
func (e *localEngine) InitFrom(state *game.GameState) (*game.GameState, UpdateGetter) {
	return e.start(state.Copy())
}

func (e *localEngine) start(state *game.GameState) (*game.GameState, UpdateGetter) {
	e.state = state
	e.gameOver = state.IsOver(e.rules)
	e.updateCh = make(chan update, 1)
	return e.state.Copy(), func() (game.Direction, *game.GameState, bool) {
		select {
		case u := <-e.updateCh:
			return u.move, u.state.Copy(), true
		default:
			// No updates yet
			return 0, nil, false
		}
	}
}

func (e *localEngine) Play(d game.Direction) error {
	if e.state == nil {
		return fmt.Errorf("game not initialized")
	}
	if e.gameOver {
		return ErrGameOver
	}
	if !e.state.Play(e.rules, d) {
		return fmt.Errorf("%w: %s does not change the board", ErrIllegalMove, d)
	}
	e.gameOver = e.state.IsOver(e.rules)

	// Keep only the newest update when the previous one was not read
	select {
	case <-e.updateCh:
	default:
	}
	e.updateCh <- update{move: d, state: e.state.Copy()}
	return nil
}

func (e *localEngine) Over() bool {
	return e.gameOver
}
