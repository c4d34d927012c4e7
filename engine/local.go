package engine

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"tilesearch/experiments/metrics"
	"tilesearch/game"
	"tilesearch/gamemaster"
	"tilesearch/meta"
	"tilesearch/searcher/agent"
)

type LocalEngine struct {
	rules    game.Rules
	agent    agent.Agent
	maxMoves int
	start    *game.GameState // Optional starting state

	// Final state of the last Run
	State *game.GameState
}

// NewLocalEngine plays games on rules with moves chosen by a. A maxMoves of
// zero or less uses meta.MaxMoves.
func NewLocalEngine(rules game.Rules, a agent.Agent, maxMoves int) *LocalEngine {
	if a == nil {
		panic("engine needs an agent")
	}
	if maxMoves <= 0 {
		maxMoves = meta.MaxMoves
	}
	return &LocalEngine{rules: rules, agent: a, maxMoves: maxMoves}
}

// StartFrom makes the next Run begin at state instead of a fresh board.
func (e *LocalEngine) StartFrom(state *game.GameState) *LocalEngine {
	e.start = state
	return e
}

// Run executes the entire game loop.
func (e *LocalEngine) Run(ctx context.Context) (metrics.GameMetric, []metrics.MoveMetric, error) {
	master := gamemaster.NewLocalEngine(e.rules)
	var state *game.GameState
	var getUpdate gamemaster.UpdateGetter
	if e.start != nil {
		state, getUpdate = master.InitFrom(e.start)
	} else {
		state, getUpdate = master.Init()
	}

	gameMetric := metrics.GameMetric{StartTime: time.Now()}
	var moveMetrics []metrics.MoveMetric

	for !master.Over() && state.Moves < e.maxMoves {
		if err := ctx.Err(); err != nil {
			return metrics.GameMetric{}, nil, err
		}

		move, searchMetric, err := e.agent.FindMove(state.Copy())
		if err != nil {
			return metrics.GameMetric{}, nil, fmt.Errorf("failed to find move %d: %w", state.Moves+1, err)
		}

		err = master.Play(move)
		if errors.Is(err, gamemaster.ErrIllegalMove) {
			// Agent returned a move that does not change the board => play the first legal one
			fallback := game.LegalMoves(e.rules, state.Board)
			log.Warn().Str("move", move.String()).Str("fallback", fallback[0].String()).Msg("agent returned an illegal move")
			move = fallback[0]
			err = master.Play(move)
		}
		if err != nil {
			return metrics.GameMetric{}, nil, fmt.Errorf("failed to play move %d: %w", state.Moves+1, err)
		}

		_, state, _ = getUpdate()
		moveMetrics = append(moveMetrics, metrics.MoveMetric{
			Step:         state.Moves,
			Move:         move.String(),
			Score:        state.Score,
			SearchMetric: searchMetric,
		})
	}

	gameMetric.EndTime = time.Now()
	gameMetric.Duration = gameMetric.EndTime.Sub(gameMetric.StartTime)
	gameMetric.TotalMoves = state.Moves
	gameMetric.Score = state.Score
	gameMetric.MaxTile = state.Board.MaxTile()
	e.State = state

	if master.Over() {
		log.Info().Int("moves", state.Moves).Uint32("score", state.Score).Uint32("max_tile", gameMetric.MaxTile).Msg("game over")
	} else {
		log.Info().Int("moves", state.Moves).Uint32("score", state.Score).Msgf("stopped after %d moves", e.maxMoves)
	}

	return gameMetric, moveMetrics, nil
}
