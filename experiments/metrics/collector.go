package metrics

import (
	"time"
)

// SearchMetric is the telemetry of one move selection.
type SearchMetric struct {
	Depth       int
	Propagation string
	Duration    time.Duration
	Expanded    int // Nodes popped from the frontier
	Generated   int // Children that changed the board
}

type MoveMetric struct {
	Step  int
	Move  string
	Score uint32 // Game score after the move
	SearchMetric
}

type GameMetric struct {
	StartTime  time.Time
	EndTime    time.Time
	Duration   time.Duration
	TotalMoves int
	Score      uint32
	MaxTile    uint32
}

// Collector counts the work done by a single search. It is owned by one
// search and is not safe for concurrent use.
type Collector interface {
	Start(depth int, propagation string)
	AddExpanded()
	AddGenerated()
	Complete() SearchMetric
}

type collector struct {
	depth       int
	propagation string
	startTime   time.Time
	expanded    int
	generated   int
}

func NewCollector() Collector {
	return &collector{}
}

func (m *collector) Start(depth int, propagation string) {
	m.startTime = time.Now()
	m.depth = depth
	m.propagation = propagation
	m.expanded = 0
	m.generated = 0
}

func (m *collector) AddExpanded() {
	m.expanded++
}

func (m *collector) AddGenerated() {
	m.generated++
}

func (m *collector) Complete() SearchMetric {
	return SearchMetric{
		Depth:       m.depth,
		Propagation: m.propagation,
		Duration:    time.Since(m.startTime),
		Expanded:    m.expanded,
		Generated:   m.generated,
	}
}
