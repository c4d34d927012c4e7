package searcher

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"

	"tilesearch/experiments/metrics"
	"tilesearch/game"
	"tilesearch/meta"
)

// ErrAllocationFailure means the search could not obtain storage for another
// node. The selection is abandoned; there is no partial result.
var ErrAllocationFailure = errors.New("search node storage exhausted")

type Option func(s *Searcher)

// Result is the outcome of one move selection.
type Result struct {
	Move   game.Direction
	Scores Scores
	Metric metrics.SearchMetric
}

// Searcher picks moves by enumerating every board reachable within a fixed
// number of moves. A Searcher runs one search at a time.
type Searcher struct {
	rules       game.Rules
	depth       int
	propagation Propagation
	tieBreak    TieBreak
	nodeLimit   int
	rng         *rand.Rand
}

func WithDepth(depth int) Option {
	return func(s *Searcher) {
		if depth >= 0 {
			s.depth = depth
		}
	}
}

func WithPropagation(propagation Propagation) Option {
	return func(s *Searcher) {
		s.propagation = propagation
	}
}

func WithTieBreak(tieBreak TieBreak) Option {
	return func(s *Searcher) {
		s.tieBreak = tieBreak
	}
}

// WithRand sets the source used for frontier shuffling and tie-breaks
// between moves.
func WithRand(rng *rand.Rand) Option {
	return func(s *Searcher) {
		if rng != nil {
			s.rng = rng
		}
	}
}

// WithNodeLimit caps the number of nodes a single search may create.
func WithNodeLimit(limit int) Option {
	return func(s *Searcher) {
		if limit > 0 {
			s.nodeLimit = limit
		}
	}
}

func NewSearcher(rules game.Rules, options ...Option) *Searcher {
	if rules == nil {
		panic("searcher needs rules to expand boards")
	}
	s := &Searcher{ // Default values
		rules:       rules,
		depth:       meta.DefaultDepth,
		propagation: Max,
		tieBreak:    TieFIFO,
	}
	for _, option := range options {
		option(s)
	}
	if s.rng == nil {
		s.rng = game.NewRand(0)
	}
	return s
}

func (s *Searcher) Depth() int {
	return s.depth
}

func (s *Searcher) Propagation() Propagation {
	return s.propagation
}

// SelectMove expands every board reachable from board in at most Depth
// moves and returns the first move with the best propagated score.
func (s *Searcher) SelectMove(board game.Board) (Result, error) {
	collector := metrics.NewCollector()
	collector.Start(s.depth, s.propagation.String())

	t := newTree(s.nodeLimit)
	explored := newRegistry()
	var f frontier
	f.init(s.tieBreak, s.rng)
	defer func() {
		explored.release(t)
		f.drain()
	}()

	root, err := t.add(node{board: board, parent: noParent})
	if err != nil {
		return Result{}, fmt.Errorf("failed to create root: %w", err)
	}

	var scores Scores
	f.push(root, 0)
	for f.count() > 0 {
		popped := f.popMax()
		explored.record(popped)
		collector.AddExpanded()

		if t.nodes[popped].depth >= s.depth {
			continue
		}

		for _, d := range game.Directions {
			child, ok, err := t.expand(s.rules, popped, d)
			if err != nil {
				log.Warn().Err(err).Int("nodes", t.size()).Msg("search aborted")
				return Result{}, fmt.Errorf("failed to expand %s at depth %d: %w", d, t.nodes[popped].depth, err)
			}
			if !ok { // Board unchanged
				continue
			}
			collector.AddGenerated()
			f.push(child, t.nodes[child].priority)
			t.propagate(s.propagation, child, &scores)
		}
	}

	move := selectMove(scores, s.rng)
	metric := collector.Complete()

	log.Debug().
		Str("move", move.String()).
		Uints32("scores", scores[:]).
		Int("expanded", metric.Expanded).
		Int("generated", metric.Generated).
		Int("registry", explored.count()).
		Dur("took", metric.Duration).
		Msg("search complete")

	return Result{Move: move, Scores: scores, Metric: metric}, nil
}

// SelectMove runs a single search with default tie-breaking and a fresh
// random source.
func SelectMove(board game.Board, maxDepth int, propagation Propagation, rules game.Rules) (game.Direction, metrics.SearchMetric, error) {
	if maxDepth < 0 {
		return 0, metrics.SearchMetric{}, fmt.Errorf("depth must not be negative, got %d", maxDepth)
	}
	s := NewSearcher(rules, WithDepth(maxDepth), WithPropagation(propagation))
	result, err := s.SelectMove(board)
	if err != nil {
		return 0, metrics.SearchMetric{}, err
	}
	return result.Move, result.Metric, nil
}
