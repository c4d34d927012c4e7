package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewGameState(t *testing.T) {
	gs := NewGameState(NewStandardRules(NewRand(11)))

	require.Len(t, gs.Board.EmptyCells(), Size*Size-2, "Game should start with two tiles")
	require.Zero(t, gs.Score)
	require.Zero(t, gs.Moves)
}

func TestGameStatePlay(t *testing.T) {
	rules := NewStandardRules(NewRand(11))

	t.Run("applying a move and spawning a tile", func(t *testing.T) {
		gs := &GameState{Board: Board{{1, 1}}}

		ok := gs.Play(rules, Left)

		require.True(t, ok)
		require.Equal(t, uint8(2), gs.Board[0][0], "Pair should merge")
		require.Equal(t, uint32(4), gs.Score)
		require.Equal(t, 1, gs.Moves)
		require.Len(t, gs.Board.EmptyCells(), Size*Size-2, "A tile should spawn after the move")
	})

	t.Run("ignoring a move that changes nothing", func(t *testing.T) {
		gs := &GameState{Board: Board{{1, 2}}, Score: 3}
		before := gs.Copy()

		ok := gs.Play(rules, Left)

		require.False(t, ok)
		require.Equal(t, before, gs, "State should not change")
	})

	t.Run("detecting game over", func(t *testing.T) {
		gs := &GameState{Board: Board{
			{1, 2, 1, 2},
			{2, 1, 2, 1},
			{1, 2, 1, 2},
			{2, 1, 2, 1},
		}}

		require.True(t, gs.IsOver(rules))
		require.False(t, (&GameState{Board: Board{{1}}}).IsOver(rules))
	})
}
