package searcher

import (
	"container/heap"
	"fmt"
	"math"
	"strings"

	"golang.org/x/exp/rand"
)

// TieBreak orders frontier entries whose priorities are equal.
type TieBreak int

const (
	TieFIFO   TieBreak = iota // Oldest entry first
	TieLIFO                   // Newest entry first
	TieRandom                 // Shuffled
)

func (tb TieBreak) String() string {
	switch tb {
	case TieFIFO:
		return "fifo"
	case TieLIFO:
		return "lifo"
	case TieRandom:
		return "random"
	}
	return fmt.Sprintf("tiebreak(%d)", int(tb))
}

func ParseTieBreak(s string) (TieBreak, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "fifo", "stable":
		return TieFIFO, nil
	case "lifo":
		return TieLIFO, nil
	case "random":
		return TieRandom, nil
	}
	return 0, fmt.Errorf("unknown tie break %q", s)
}

type entry struct {
	node     int
	priority uint32 // Snapshot taken on push
	order    uint64 // Smaller pops first among equal priorities
}

// entries implements container/heap.Interface as a max-heap on priority.
type entries []entry

func (h entries) Len() int { return len(h) }

func (h entries) Less(i, j int) bool {
	if h[i].priority != h[j].priority {
		return h[i].priority > h[j].priority
	}
	return h[i].order < h[j].order
}

func (h entries) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *entries) Push(x any) { *h = append(*h, x.(entry)) }

func (h *entries) Pop() any {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]
	return item
}

// frontier is the max-priority queue of nodes waiting to be expanded.
type frontier struct {
	heap   entries
	tie    TieBreak
	rng    *rand.Rand
	pushed uint64
}

func (f *frontier) init(tie TieBreak, rng *rand.Rand) {
	f.heap = make(entries, 0, initialRegistrySize)
	f.tie = tie
	f.rng = rng
	f.pushed = 0
}

func (f *frontier) push(i int, priority uint32) {
	var order uint64
	switch f.tie {
	case TieLIFO:
		order = math.MaxUint64 - f.pushed
	case TieRandom:
		order = f.rng.Uint64()
	default:
		order = f.pushed
	}
	f.pushed++
	heap.Push(&f.heap, entry{node: i, priority: priority, order: order})
}

func (f *frontier) popMax() int {
	return heap.Pop(&f.heap).(entry).node
}

func (f *frontier) count() int {
	return f.heap.Len()
}

// drain drops the queue's storage. Nodes are owned by the tree.
func (f *frontier) drain() {
	f.heap = nil
}
