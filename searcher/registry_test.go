package searcher

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRegistry(t *testing.T) {
	t.Run("starting with room for a root and its children", func(t *testing.T) {
		r := newRegistry()

		require.Zero(t, r.count())
		require.Equal(t, 5, cap(r.explored))
	})

	t.Run("doubling when full", func(t *testing.T) {
		r := newRegistry()
		for i := 0; i < 6; i++ {
			r.record(i)
		}

		require.Equal(t, 6, r.count())
		require.Equal(t, 10, cap(r.explored), "Capacity should double from 5")
		require.Equal(t, []int{0, 1, 2, 3, 4, 5}, r.explored, "Order should be kept across growth")

		for i := 6; i < 11; i++ {
			r.record(i)
		}
		require.Equal(t, 20, cap(r.explored))
	})

	t.Run("releasing every recorded node", func(t *testing.T) {
		tr := newTree(0)
		r := newRegistry()
		for i := 0; i < 3; i++ {
			idx, err := tr.add(node{parent: noParent, score: 7})
			require.NoError(t, err)
			r.record(idx)
		}

		r.release(tr)

		require.Zero(t, r.count())
		require.Zero(t, tr.size(), "Arena should be emptied")
	})
}
