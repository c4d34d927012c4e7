package metrics

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCollector(t *testing.T) {
	t.Run("counting expanded and generated nodes", func(t *testing.T) {
		c := NewCollector()
		c.Start(3, "max")
		for i := 0; i < 4; i++ {
			c.AddExpanded()
		}
		for i := 0; i < 3; i++ {
			c.AddGenerated()
		}

		got := c.Complete()

		require.Equal(t, 3, got.Depth)
		require.Equal(t, "max", got.Propagation)
		require.Equal(t, 4, got.Expanded)
		require.Equal(t, 3, got.Generated)
		require.GreaterOrEqual(t, int64(got.Duration), int64(0))
	})

	t.Run("resetting counts on start", func(t *testing.T) {
		c := NewCollector()
		c.Start(1, "max")
		c.AddExpanded()
		c.AddGenerated()

		c.Start(2, "average")
		got := c.Complete()

		require.Zero(t, got.Expanded, "Start should reset counters")
		require.Zero(t, got.Generated, "Start should reset counters")
		require.Equal(t, "average", got.Propagation)
	})
}
