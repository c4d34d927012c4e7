package experiments

import (
	"github.com/samber/lo"
	"gonum.org/v1/gonum/stat"

	"tilesearch/experiments/metrics"
)

// Summary aggregates the games of one agent.
type Summary struct {
	Agent       int
	Games       int
	MeanScore   float64
	StdScore    float64
	MeanMaxTile float64
	StdMaxTile  float64
	MeanMoves   float64
	BestTile    uint32
}

// Summarize returns one Summary per config in configs order. Configs without
// games are left out.
func Summarize(configs []metrics.AgentConfig, records []metrics.GameRecord) []Summary {
	byAgent := lo.GroupBy(records, func(r metrics.GameRecord) int { return r.Agent })

	summaries := []Summary{}
	for _, config := range configs {
		games := byAgent[config.ID]
		if len(games) == 0 {
			continue
		}
		scores := lo.Map(games, func(r metrics.GameRecord, _ int) float64 { return float64(r.Score) })
		tiles := lo.Map(games, func(r metrics.GameRecord, _ int) float64 { return float64(r.MaxTile) })
		moves := lo.Map(games, func(r metrics.GameRecord, _ int) float64 { return float64(r.TotalMoves) })

		s := Summary{
			Agent:     config.ID,
			Games:     len(games),
			MeanMoves: stat.Mean(moves, nil),
			BestTile:  lo.MaxBy(games, func(a, b metrics.GameRecord) bool { return a.MaxTile > b.MaxTile }).MaxTile,
		}
		s.MeanScore, s.StdScore = meanStdDev(scores)
		s.MeanMaxTile, s.StdMaxTile = meanStdDev(tiles)
		summaries = append(summaries, s)
	}
	return summaries
}

// meanStdDev reports a zero deviation for a single sample.
func meanStdDev(x []float64) (float64, float64) {
	if len(x) < 2 {
		return stat.Mean(x, nil), 0
	}
	return stat.MeanStdDev(x, nil)
}

// Throughput returns the nodes generated per second of search time for each
// agent. Agents that never searched are left out.
func Throughput(moves []metrics.MoveRecord, games []metrics.GameRecord) map[int]float64 {
	agentOf := lo.SliceToMap(games, func(r metrics.GameRecord) (int, int) { return r.ID, r.Agent })

	generated := map[int]float64{}
	seconds := map[int]float64{}
	for _, m := range moves {
		agent := agentOf[m.Game]
		generated[agent] += float64(m.Generated)
		seconds[agent] += m.Duration.Seconds()
	}

	throughput := map[int]float64{}
	for agent := range seconds {
		if seconds[agent] > 0 && generated[agent] > 0 {
			throughput[agent] = generated[agent] / seconds[agent]
		}
	}
	return throughput
}
