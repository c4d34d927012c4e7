package experiments

import (
	"context"
	"fmt"
	"sync/atomic"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"
	"golang.org/x/sync/errgroup"

	"tilesearch/engine"
	"tilesearch/experiments/metrics"
	"tilesearch/game"
	"tilesearch/meta"
	"tilesearch/searcher"
	"tilesearch/searcher/agent"
)

const (
	KindSearch = "search"
	KindRandom = "random"
)

type Config struct {
	Name      string
	Agents    []metrics.AgentConfig
	Games     int // Per agent
	Parallel  int // Games played at once
	MaxMoves  int
	NodeLimit int
	Seed      uint64 // 0 draws fresh seeds
	OutDir    string // Records are not written when empty
}

type Result struct {
	Dir         string
	GameRecords []metrics.GameRecord
	MoveRecords []metrics.MoveRecord
	Summaries   []Summary
}

// Grid pairs every depth with both propagation modes and adds the random
// baseline as agent 0.
func Grid(depths []int, tieBreak searcher.TieBreak) []metrics.AgentConfig {
	configs := []metrics.AgentConfig{{ID: 0, Kind: KindRandom}}
	for _, depth := range depths {
		for _, p := range []searcher.Propagation{searcher.Max, searcher.Average} {
			configs = append(configs, metrics.AgentConfig{
				ID:          len(configs),
				Kind:        KindSearch,
				Depth:       depth,
				Propagation: p.String(),
				TieBreak:    tieBreak.String(),
			})
		}
	}
	return configs
}

type job struct {
	id     int // GameRecord.ID
	config metrics.AgentConfig
	seed   uint64
}

// Run plays cfg.Games games per agent and stores the records.
func Run(ctx context.Context, cfg Config) (Result, error) {
	if cfg.Games <= 0 {
		cfg.Games = meta.Games
	}
	if cfg.Parallel <= 0 {
		cfg.Parallel = meta.Goroutines
	}
	if len(cfg.Agents) == 0 {
		return Result{}, fmt.Errorf("experiment %q has no agents", cfg.Name)
	}

	// Seeds are drawn up front so results do not depend on scheduling
	seeds := game.NewRand(cfg.Seed)
	jobs := make([]job, 0, len(cfg.Agents)*cfg.Games)
	for _, config := range cfg.Agents {
		for i := 0; i < cfg.Games; i++ {
			jobs = append(jobs, job{id: len(jobs) + 1, config: config, seed: seeds.Uint64() | 1})
		}
	}

	log.Info().Str("experiment", cfg.Name).Int("agents", len(cfg.Agents)).Int("games", len(jobs)).Msg("starting experiment")

	gameRecords := make([]metrics.GameRecord, len(jobs))
	moveRecords := make([][]metrics.MoveRecord, len(jobs))
	var completed atomic.Int64

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(cfg.Parallel)
	for i, j := range jobs {
		g.Go(func() error {
			gameMetric, moveMetrics, err := runGame(gctx, j, cfg)
			if err != nil {
				return fmt.Errorf("game %d of agent %d: %w", j.id, j.config.ID, err)
			}
			gameRecords[i] = metrics.GameRecord{ID: j.id, Agent: j.config.ID, GameMetric: gameMetric}
			moveRecords[i] = make([]metrics.MoveRecord, len(moveMetrics))
			for k, mm := range moveMetrics {
				moveRecords[i][k] = metrics.MoveRecord{Game: j.id, MoveMetric: mm}
			}

			log.Info().Int("game", j.id).Int("agent", j.config.ID).Uint32("score", gameMetric.Score).
				Msgf("completed game %d of %d", completed.Add(1), len(jobs))
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return Result{}, err
	}

	result := Result{GameRecords: gameRecords}
	for _, records := range moveRecords {
		result.MoveRecords = append(result.MoveRecords, records...)
	}
	result.Summaries = Summarize(cfg.Agents, gameRecords)
	throughput := Throughput(result.MoveRecords, gameRecords)
	for _, s := range result.Summaries {
		log.Info().
			Int("agent", s.Agent).
			Float64("mean_score", s.MeanScore).
			Float64("std_score", s.StdScore).
			Float64("mean_max_tile", s.MeanMaxTile).
			Uint32("best_tile", s.BestTile).
			Float64("nodes_per_sec", throughput[s.Agent]).
			Msg("agent summary")
	}

	log.Info().Str("experiment", cfg.Name).Msg("completed experiment")

	if cfg.OutDir == "" {
		return result, nil
	}
	dir, err := store(cfg, result)
	if err != nil {
		return Result{}, err
	}
	result.Dir = dir
	return result, nil
}

func store(cfg Config, result Result) (string, error) {
	writer, err := metrics.NewWriter(cfg.OutDir, cfg.Name)
	if err != nil {
		return "", fmt.Errorf("failed to create experiment writer: %w", err)
	}

	if err := writer.WriteAgentConfigs(cfg.Agents); err != nil {
		return "", fmt.Errorf("failed to store agent configs: %w", err)
	}
	log.Info().Msg("stored agent configs")

	if err := writer.WriteGameRecords(result.GameRecords); err != nil {
		return "", fmt.Errorf("failed to store game records: %w", err)
	}
	log.Info().Msg("stored game records")

	if err := writer.WriteMoveRecords(result.MoveRecords); err != nil {
		return "", fmt.Errorf("failed to store move records: %w", err)
	}
	log.Info().Str("dir", writer.Dir()).Msg("stored move records")

	return writer.Dir(), nil
}

// runGame plays a single game with the agent described by j.config
func runGame(ctx context.Context, j job, cfg Config) (metrics.GameMetric, []metrics.MoveMetric, error) {
	rng := game.NewRand(j.seed)
	rules := game.NewStandardRules(game.NewRand(rng.Uint64() | 1))
	a, err := createAgent(j.config, rules, rng, cfg.NodeLimit)
	if err != nil {
		return metrics.GameMetric{}, nil, err
	}
	return engine.NewLocalEngine(rules, a, cfg.MaxMoves).Run(ctx)
}

func createAgent(config metrics.AgentConfig, rules game.Rules, rng *rand.Rand, nodeLimit int) (agent.Agent, error) {
	switch config.Kind {
	case KindRandom:
		return agent.NewRandomAgent(rules, game.NewRand(rng.Uint64()|1)), nil
	case KindSearch, "":
		options := []searcher.Option{
			searcher.WithDepth(config.Depth),
			searcher.WithRand(game.NewRand(rng.Uint64() | 1)),
			searcher.WithNodeLimit(nodeLimit),
		}
		if config.Propagation != "" {
			p, err := searcher.ParsePropagation(config.Propagation)
			if err != nil {
				return nil, err
			}
			options = append(options, searcher.WithPropagation(p))
		}
		if config.TieBreak != "" {
			tb, err := searcher.ParseTieBreak(config.TieBreak)
			if err != nil {
				return nil, err
			}
			options = append(options, searcher.WithTieBreak(tb))
		}
		return agent.NewEvaluationAgent(searcher.NewSearcher(rules, options...)), nil
	}
	return nil, fmt.Errorf("unknown agent kind %q", config.Kind)
}
