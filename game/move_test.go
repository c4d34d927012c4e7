package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseDirection(t *testing.T) {
	accepted := map[string]Direction{
		"left": Left, "l": Left, "a": Left,
		"right": Right, "r": Right, "d": Right,
		"up": Up, "u": Up, "w": Up,
		"down": Down, "s": Down,
		" Down ": Down,
	}
	for in, want := range accepted {
		d, err := ParseDirection(in)

		require.NoError(t, err, "%q should parse", in)
		require.Equal(t, want, d, "%q should parse to %s", in, want)
	}

	t.Run("reading d as the wasd key for right", func(t *testing.T) {
		d, err := ParseDirection("d")

		require.NoError(t, err)
		require.Equal(t, Right, d, "d is not a short form of down")
	})

	t.Run("rejecting unknown input", func(t *testing.T) {
		for _, in := range []string{"", "x", "dn", "leftward"} {
			_, err := ParseDirection(in)

			require.Error(t, err, "%q should be rejected", in)
		}
	})
}

func TestDirectionText(t *testing.T) {
	for _, d := range Directions {
		text, err := d.MarshalText()
		require.NoError(t, err)

		var parsed Direction
		require.NoError(t, parsed.UnmarshalText(text))
		require.Equal(t, d, parsed)
	}

	_, err := Direction(NumMoves).MarshalText()
	require.Error(t, err, "Out of range direction should not encode")
}
