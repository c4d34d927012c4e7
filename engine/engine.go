package engine

import (
	"context"

	"tilesearch/experiments/metrics"
)

type Engine interface {
	// Run plays a game until no move changes the board or the move cap is reached
	Run(ctx context.Context) (gameMetric metrics.GameMetric, moveMetrics []metrics.MoveMetric, err error)
}
