package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"tilesearch/meta"
	"tilesearch/searcher"
)

const envPrefix = "TILESEARCH"

type Config struct {
	Depth       int
	Propagation searcher.Propagation
	TieBreak    searcher.TieBreak
	Seed        uint64
	NodeLimit   int
	LogLevel    zerolog.Level
	MaxMoves    int
	ServerAddr  string
	AgentURL    string
	Human       bool

	Experiments ExperimentsConfig
}

type ExperimentsConfig struct {
	Games    int
	Parallel int
	OutDir   string
	Depths   []int
}

// Load reads flags from args, then TILESEARCH_* env vars, then the optional
// YAML file named by --config. Earlier sources win. Args left after the
// flags are returned for subcommand dispatch.
func (c *Config) Load(args []string) ([]string, error) {
	v := viper.New()
	fs := pflag.NewFlagSet("tilesearch", pflag.ContinueOnError)

	fs.String("config", "", "YAML config file")
	fs.Int("depth", meta.DefaultDepth, "look-ahead depth in moves")
	fs.String("propagation", meta.DefaultPropagation, "score propagation: max or average")
	fs.String("tiebreak", meta.DefaultTieBreak, "frontier order among equal priorities: fifo, lifo or random")
	fs.Uint64("seed", 0, "random seed, 0 for a fresh one")
	fs.Int("node-limit", 0, "maximum nodes per search, 0 for no limit")
	fs.String("log-level", "info", "log level")
	fs.Int("max-moves", meta.MaxMoves, "maximum moves per game")
	fs.String("addr", meta.ServerAddr, "agent server listen address")
	fs.String("agent-url", "", "agent server to ask for moves instead of searching locally")
	fs.Bool("human", false, "play moves from the keyboard")
	fs.Int("games", meta.Games, "games per agent in experiments")
	fs.Int("parallel", meta.Goroutines, "games played at once in experiments")
	fs.String("out-dir", "experiments", "directory for experiment records")
	fs.IntSlice("depths", []int{1, 2, 3, 4}, "depths compared in experiments")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	for key, flag := range map[string]string{
		"depth":                "depth",
		"propagation":          "propagation",
		"tiebreak":             "tiebreak",
		"seed":                 "seed",
		"node_limit":           "node-limit",
		"log_level":            "log-level",
		"max_moves":            "max-moves",
		"server.addr":          "addr",
		"agent_url":            "agent-url",
		"human":                "human",
		"experiments.games":    "games",
		"experiments.parallel": "parallel",
		"experiments.out_dir":  "out-dir",
		"experiments.depths":   "depths",
	} {
		if err := v.BindPFlag(key, fs.Lookup(flag)); err != nil {
			return nil, fmt.Errorf("failed to bind flag %s: %w", flag, err)
		}
	}

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path, _ := fs.GetString("config"); path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	return fs.Args(), c.fill(v)
}

func (c *Config) fill(v *viper.Viper) error {
	var err error
	var errs []error

	c.Depth = v.GetInt("depth")
	if c.Depth < 0 {
		errs = append(errs, fmt.Errorf("depth must not be negative, got %d", c.Depth))
	}
	if c.Propagation, err = searcher.ParsePropagation(v.GetString("propagation")); err != nil {
		errs = append(errs, err)
	}
	if c.TieBreak, err = searcher.ParseTieBreak(v.GetString("tiebreak")); err != nil {
		errs = append(errs, err)
	}
	if c.LogLevel, err = zerolog.ParseLevel(v.GetString("log_level")); err != nil {
		errs = append(errs, err)
	}
	c.Seed = v.GetUint64("seed")
	c.NodeLimit = v.GetInt("node_limit")
	c.MaxMoves = v.GetInt("max_moves")
	c.ServerAddr = v.GetString("server.addr")
	c.AgentURL = v.GetString("agent_url")
	c.Human = v.GetBool("human")

	c.Experiments = ExperimentsConfig{
		Games:    v.GetInt("experiments.games"),
		Parallel: v.GetInt("experiments.parallel"),
		OutDir:   v.GetString("experiments.out_dir"),
		Depths:   v.GetIntSlice("experiments.depths"),
	}
	for _, d := range c.Experiments.Depths {
		if d < 0 {
			errs = append(errs, fmt.Errorf("experiment depth must not be negative, got %d", d))
		}
	}

	return errors.Join(errs...)
}
