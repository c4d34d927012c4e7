package searcher

import (
	"fmt"

	"tilesearch/game"
)

const noParent = -1

// node is one board reached during look-ahead. Nodes live in a tree arena
// and refer to their parent by index, so walking up never outlives the
// search that created them.
type node struct {
	board    game.Board
	score    uint32 // Cumulative merge score along the path from the root
	priority uint32
	parent   int
	depth    int
	move     game.Direction // Move applied to the parent, unset on the root
	children uint32         // Children folded into priority
}

// tree owns every node created by one search.
type tree struct {
	nodes []node
	limit int // Maximum number of nodes, 0 for no limit
}

func newTree(limit int) *tree {
	return &tree{limit: limit}
}

func (t *tree) add(n node) (int, error) {
	if t.limit > 0 && len(t.nodes) >= t.limit {
		return 0, fmt.Errorf("node %d exceeds limit of %d: %w", len(t.nodes)+1, t.limit, ErrAllocationFailure)
	}
	t.nodes = append(t.nodes, n)
	return len(t.nodes) - 1, nil
}

func (t *tree) size() int {
	return len(t.nodes)
}

func (t *tree) release() {
	t.nodes = nil
}

// expand applies d to the parent's board. It reports false when the move
// leaves the board unchanged, in which case nothing is allocated. The child
// is neither queued nor scored here.
func (t *tree) expand(rules game.Rules, parent int, d game.Direction) (int, bool, error) {
	p := t.nodes[parent]
	board := p.board
	score := p.score
	if !rules.TryMove(&board, &score, d) {
		return 0, false, nil
	}
	rules.InsertRandomTile(&board)

	child, err := t.add(node{
		board:    board,
		score:    score,
		priority: score,
		parent:   parent,
		depth:    p.depth + 1,
		move:     d,
	})
	if err != nil {
		return 0, false, err
	}
	return child, true, nil
}

// firstMove walks up from i to the depth-1 node on its branch. i must not
// be the root.
func (t *tree) firstMove(i int) int {
	for t.nodes[t.nodes[i].parent].parent != noParent {
		i = t.nodes[i].parent
	}
	return i
}
