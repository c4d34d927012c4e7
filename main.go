package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/muesli/termenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"tilesearch/communication/client"
	"tilesearch/communication/server"
	"tilesearch/config"
	"tilesearch/engine"
	"tilesearch/experiments"
	"tilesearch/game"
	"tilesearch/meta"
	"tilesearch/player"
	"tilesearch/searcher"
	"tilesearch/searcher/agent"
)

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	var cfg config.Config
	args, err := cfg.Load(os.Args[1:])
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}
	zerolog.SetGlobalLevel(cfg.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	command := "play"
	if len(args) > 0 {
		command = args[0]
	}

	switch command {
	case "play":
		err = play(ctx, cfg)
	case "serve":
		err = serve(ctx, cfg)
	case "experiment":
		err = experiment(ctx, cfg)
	default:
		err = fmt.Errorf("unknown command %q, expected play, serve or experiment", command)
	}
	if err != nil {
		log.Fatal().Err(err).Str("command", command).Msg("failed")
	}
}

func play(ctx context.Context, cfg config.Config) error {
	seeds := game.NewRand(cfg.Seed)
	rules := game.NewStandardRules(game.NewRand(seeds.Uint64() | 1))
	profile := termenv.ColorProfile()

	var e *engine.LocalEngine
	switch {
	case cfg.Human:
		e = engine.NewLocalEngine(rules, player.NewPlayer(rules, os.Stdin, os.Stdout, profile), cfg.MaxMoves)
	case cfg.AgentURL != "":
		e = engine.NewRemoteEngine(rules, cfg.AgentURL, cfg.MaxMoves,
			client.WithDepth(cfg.Depth),
			client.WithPropagation(cfg.Propagation.String()),
		)
	default:
		s := searcher.NewSearcher(rules,
			searcher.WithDepth(cfg.Depth),
			searcher.WithPropagation(cfg.Propagation),
			searcher.WithTieBreak(cfg.TieBreak),
			searcher.WithNodeLimit(cfg.NodeLimit),
			searcher.WithRand(game.NewRand(seeds.Uint64()|1)),
		)
		e = engine.NewLocalEngine(rules, agent.NewEvaluationAgent(s), cfg.MaxMoves)
	}

	gameMetric, _, err := e.Run(ctx)
	if errors.Is(err, player.ErrQuit) {
		log.Info().Msg("game abandoned")
		return nil
	}
	if err != nil {
		return err
	}

	fmt.Fprintf(os.Stdout, "\nscore %d  max tile %d  moves %d  took %s\n",
		gameMetric.Score, gameMetric.MaxTile, gameMetric.TotalMoves, gameMetric.Duration.Round(time.Millisecond))
	return e.State.Board.Render(os.Stdout, profile)
}

func serve(ctx context.Context, cfg config.Config) error {
	s := server.NewServer(server.Config{
		Depth:       cfg.Depth,
		MaxDepth:    max(cfg.Depth, meta.MaxServerDepth),
		Propagation: cfg.Propagation,
		TieBreak:    cfg.TieBreak,
		NodeLimit:   cfg.NodeLimit,
		Seed:        cfg.Seed,
	})
	return s.ListenAndServe(ctx, cfg.ServerAddr)
}

func experiment(ctx context.Context, cfg config.Config) error {
	result, err := experiments.Run(ctx, experiments.Config{
		Name:      "depth_propagation",
		Agents:    experiments.Grid(cfg.Experiments.Depths, cfg.TieBreak),
		Games:     cfg.Experiments.Games,
		Parallel:  cfg.Experiments.Parallel,
		MaxMoves:  cfg.MaxMoves,
		NodeLimit: cfg.NodeLimit,
		Seed:      cfg.Seed,
		OutDir:    cfg.Experiments.OutDir,
	})
	if err != nil {
		return err
	}
	log.Info().Str("dir", result.Dir).Int("games", len(result.GameRecords)).Msg("experiment stored")
	return nil
}
