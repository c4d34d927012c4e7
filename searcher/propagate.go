package searcher

import (
	"fmt"
	"strings"

	"tilesearch/game"
)

// Propagation selects how a new node's priority folds back into the score
// of the first move on its branch.
type Propagation int

const (
	// Max keeps the best cumulative merge score seen below each first move.
	Max Propagation = iota
	// Average keeps a running mean of children's priorities at every
	// ancestor. The mean uses truncating integer division and is updated
	// incrementally, so its value depends on the order nodes are created.
	Average
)

func (p Propagation) String() string {
	switch p {
	case Max:
		return "max"
	case Average:
		return "average"
	}
	return fmt.Sprintf("propagation(%d)", int(p))
}

func ParsePropagation(s string) (Propagation, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "max", "maximum":
		return Max, nil
	case "average", "avg":
		return Average, nil
	}
	return 0, fmt.Errorf("unknown propagation %q", s)
}

func (p Propagation) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

func (p *Propagation) UnmarshalText(text []byte) error {
	parsed, err := ParsePropagation(string(text))
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}

// Scores holds the running score of each first move, indexed by direction.
type Scores [game.NumMoves]uint32

// propagate folds the freshly created node i into its ancestors and scores.
func (t *tree) propagate(p Propagation, i int, scores *Scores) {
	switch p {
	case Max:
		t.propagateMax(i, scores)
	case Average:
		t.propagateAverage(i, scores)
	default:
		panic(fmt.Sprintf("unknown propagation %d", int(p)))
	}
}

func (t *tree) propagateMax(i int, scores *Scores) {
	n := &t.nodes[i]
	t.nodes[n.parent].children++

	first := &t.nodes[t.firstMove(i)]
	if first.priority < n.priority {
		first.priority = n.priority
	}
	if scores[first.move] < first.priority {
		scores[first.move] = first.priority
	}
}

func (t *tree) propagateAverage(i int, scores *Scores) {
	n := t.nodes[i]
	if n.depth > 1 {
		parent := &t.nodes[n.parent]
		oldParentScore := parent.priority
		parent.priority = (parent.priority*parent.children + n.priority) / (parent.children + 1)
		parent.children++

		// Swap the child's previous contribution for its new priority at
		// every ancestor up to the first move.
		i = n.parent
		for t.nodes[t.nodes[i].parent].parent != noParent {
			child := &t.nodes[i]
			ancestor := &t.nodes[child.parent]
			nextOldParentScore := ancestor.priority
			ancestor.priority = (ancestor.priority*ancestor.children - oldParentScore + child.priority) / ancestor.children
			oldParentScore = nextOldParentScore
			i = child.parent
		}
	}

	first := &t.nodes[i]
	scores[first.move] = first.priority
}
