package client

import (
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"tilesearch/communication/server"
	"tilesearch/game"
	"tilesearch/searcher"
	"tilesearch/searcher/agent"
)

var _ agent.Agent = (*AgentClient)(nil)

func TestAgentClient(t *testing.T) {
	ts := httptest.NewServer(server.NewServer(server.Config{Depth: 2, Propagation: searcher.Max}).Handler())
	defer ts.Close()

	t.Run("pinging the server", func(t *testing.T) {
		c := NewAgentClient(ts.URL)

		require.NoError(t, c.Ping())
	})

	t.Run("finding a move remotely", func(t *testing.T) {
		c := NewAgentClient(ts.URL, WithDepth(1))
		state := &game.GameState{Board: game.Board{{1}, {1}}}

		move, metric, err := c.FindMove(state)

		require.NoError(t, err)
		require.Contains(t, []game.Direction{game.Up, game.Down}, move, "Remote agent should merge the pair")
		require.Equal(t, 1, metric.Depth)
		require.Equal(t, 4, metric.Expanded)
		require.Equal(t, 3, metric.Generated)
	})

	t.Run("passing the server error on", func(t *testing.T) {
		c := NewAgentClient(ts.URL, WithPropagation("median"))

		_, _, err := c.FindMove(&game.GameState{Board: game.Board{{1}}})

		require.ErrorContains(t, err, "400")
	})

	t.Run("failing without a server", func(t *testing.T) {
		c := NewAgentClient("http://127.0.0.1:1")

		require.Error(t, c.Ping())
	})
}
