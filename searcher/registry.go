package searcher

import "tilesearch/game"

// Number of possible children plus the start node
const initialRegistrySize = game.NumMoves + 1

// registry records every node popped from the frontier. It exists only so
// the nodes of a search are released in one sweep once the frontier is empty.
type registry struct {
	explored []int
}

func newRegistry() *registry {
	return &registry{explored: make([]int, 0, initialRegistrySize)}
}

func (r *registry) record(i int) {
	if len(r.explored) == cap(r.explored) {
		grown := make([]int, len(r.explored), 2*cap(r.explored))
		copy(grown, r.explored)
		r.explored = grown
	}
	r.explored = append(r.explored, i)
}

func (r *registry) count() int {
	return len(r.explored)
}

// release frees every recorded node along with the arena holding them.
func (r *registry) release(t *tree) {
	for _, i := range r.explored {
		t.nodes[i] = node{}
	}
	r.explored = nil
	t.release()
}
