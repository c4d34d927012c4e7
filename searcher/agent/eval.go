package agent

import (
	"tilesearch/experiments/metrics"
	"tilesearch/game"
	"tilesearch/searcher"
)

type evaluationAgent struct {
	searcher *searcher.Searcher
}

// NewEvaluationAgent returns an agent that plays the searcher's best move.
func NewEvaluationAgent(s *searcher.Searcher) Agent {
	return evaluationAgent{searcher: s}
}

func (a evaluationAgent) FindMove(state *game.GameState) (game.Direction, metrics.SearchMetric, error) {
	result, err := a.searcher.SelectMove(state.Board)
	if err != nil {
		return 0, metrics.SearchMetric{}, err
	}
	return result.Move, result.Metric, nil
}
