package experiments

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"tilesearch/experiments/metrics"
	"tilesearch/searcher"
)

func TestGrid(t *testing.T) {
	configs := Grid([]int{1, 3}, searcher.TieLIFO)

	require.Len(t, configs, 5, "Random baseline plus two modes per depth")
	require.Equal(t, metrics.AgentConfig{ID: 0, Kind: KindRandom}, configs[0])
	require.Equal(t, metrics.AgentConfig{ID: 1, Kind: KindSearch, Depth: 1, Propagation: "max", TieBreak: "lifo"}, configs[1])
	require.Equal(t, metrics.AgentConfig{ID: 2, Kind: KindSearch, Depth: 1, Propagation: "average", TieBreak: "lifo"}, configs[2])
	require.Equal(t, 3, configs[4].Depth)
	require.Equal(t, 4, configs[4].ID)
}

func TestRun(t *testing.T) {
	agents := []metrics.AgentConfig{
		{ID: 0, Kind: KindRandom},
		{ID: 1, Kind: KindSearch, Depth: 1, Propagation: "max", TieBreak: "fifo"},
	}

	t.Run("storing every game and move", func(t *testing.T) {
		result, err := Run(context.Background(), Config{
			Name:     "test",
			Agents:   agents,
			Games:    2,
			Parallel: 3,
			MaxMoves: 15,
			Seed:     11,
			OutDir:   t.TempDir(),
		})
		require.NoError(t, err)

		require.Len(t, result.GameRecords, 4)
		totalMoves := 0
		for i, record := range result.GameRecords {
			require.Equal(t, i+1, record.ID, "Game IDs should follow config order")
			require.Equal(t, agents[i/2].ID, record.Agent)
			require.LessOrEqual(t, record.TotalMoves, 15)
			totalMoves += record.TotalMoves
		}
		require.Len(t, result.MoveRecords, totalMoves, "Every move should be recorded")
		require.Len(t, result.Summaries, 2)

		for _, name := range []string{"agent_configs.yaml", "game_records.csv", "move_records.parquet"} {
			_, err := os.Stat(filepath.Join(result.Dir, name))
			require.NoError(t, err, "%s should be written", name)
		}
	})

	t.Run("repeating results for a fixed seed", func(t *testing.T) {
		cfg := Config{Name: "repeat", Agents: agents, Games: 2, Parallel: 4, MaxMoves: 30, Seed: 5}

		first, err := Run(context.Background(), cfg)
		require.NoError(t, err)
		second, err := Run(context.Background(), cfg)
		require.NoError(t, err)

		require.Empty(t, first.Dir, "Nothing should be written without an output directory")
		for i := range first.GameRecords {
			require.Equal(t, first.GameRecords[i].Score, second.GameRecords[i].Score, "Game %d should replay", i+1)
			require.Equal(t, first.GameRecords[i].TotalMoves, second.GameRecords[i].TotalMoves)
		}
	})

	t.Run("rejecting an unknown agent kind", func(t *testing.T) {
		_, err := Run(context.Background(), Config{Agents: []metrics.AgentConfig{{ID: 1, Kind: "oracle"}}, Games: 1})

		require.ErrorContains(t, err, "unknown agent kind")
	})

	t.Run("rejecting an empty experiment", func(t *testing.T) {
		_, err := Run(context.Background(), Config{Name: "empty"})

		require.Error(t, err)
	})

	t.Run("stopping when cancelled", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := Run(ctx, Config{Agents: agents, Games: 1})

		require.ErrorIs(t, err, context.Canceled)
	})
}

func TestSummarize(t *testing.T) {
	configs := []metrics.AgentConfig{{ID: 0}, {ID: 1}, {ID: 2}}
	records := []metrics.GameRecord{
		{ID: 1, Agent: 1, GameMetric: metrics.GameMetric{Score: 100, MaxTile: 8, TotalMoves: 10}},
		{ID: 2, Agent: 1, GameMetric: metrics.GameMetric{Score: 200, MaxTile: 16, TotalMoves: 20}},
		{ID: 3, Agent: 2, GameMetric: metrics.GameMetric{Score: 50, MaxTile: 4, TotalMoves: 5}},
	}

	summaries := Summarize(configs, records)

	require.Len(t, summaries, 2, "Agent without games should be left out")

	require.Equal(t, 1, summaries[0].Agent)
	require.Equal(t, 2, summaries[0].Games)
	require.InDelta(t, 150, summaries[0].MeanScore, 1e-9)
	require.InDelta(t, 70.7107, summaries[0].StdScore, 1e-4, "Sample deviation of 100 and 200")
	require.InDelta(t, 12, summaries[0].MeanMaxTile, 1e-9)
	require.InDelta(t, 15, summaries[0].MeanMoves, 1e-9)
	require.Equal(t, uint32(16), summaries[0].BestTile)

	require.Equal(t, 2, summaries[1].Agent)
	require.Zero(t, summaries[1].StdScore, "A single game has no spread")
	require.Equal(t, uint32(4), summaries[1].BestTile)
}

func TestThroughput(t *testing.T) {
	games := []metrics.GameRecord{{ID: 1, Agent: 0}, {ID: 2, Agent: 3}}
	move := func(game, generated int, d time.Duration) metrics.MoveRecord {
		return metrics.MoveRecord{Game: game, MoveMetric: metrics.MoveMetric{
			SearchMetric: metrics.SearchMetric{Generated: generated, Duration: d},
		}}
	}
	moves := []metrics.MoveRecord{
		move(1, 0, time.Millisecond),
		move(2, 10, time.Second),
		move(2, 30, time.Second),
	}

	throughput := Throughput(moves, games)

	require.Len(t, throughput, 1, "Agents that never searched should be left out")
	require.InDelta(t, 20, throughput[3], 1e-9)
}
