// SPDX-License-Identifier: MIT
// Package config holds the benchmark run configuration.
//
// Priority: flags (applied by the CLI) > environment > file > defaults.
// Every knob lives here (vertex count, edge probability, worker range,
// output paths); the solver packages take plain arguments only.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"math"
	"os"
	"runtime"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/fwbench/floyd"
	"github.com/katalvlaran/fwbench/graphgen"
	"github.com/katalvlaran/fwbench/matrix"
)

// ErrInvalidConfig wraps every validation failure.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// EnvPrefix is prepended to every environment override (FWBENCH_NODES, ...).
const EnvPrefix = "FWBENCH_"

// DefaultChartPath matches the classic artifact name.
const DefaultChartPath = "speedup_threads.png"

// Config is the full benchmark configuration.
type Config struct {
	Graph    GraphConfig   `yaml:"graph"`
	Workers  WorkersConfig `yaml:"workers"`
	Verify   bool          `yaml:"verify"`
	Output   OutputConfig  `yaml:"output"`
	LogLevel string        `yaml:"log_level"`
}

// GraphConfig drives the random instance.
type GraphConfig struct {
	Nodes       int     `yaml:"nodes"`
	Probability float64 `yaml:"probability"`
	Seed        int64   `yaml:"seed"`
	MinWeight   int     `yaml:"min_weight"`
	MaxWeight   int     `yaml:"max_weight"`
}

// WorkersConfig drives the trial sweep.
type WorkersConfig struct {
	Min      int    `yaml:"min"`
	Max      int    `yaml:"max"`
	Strategy string `yaml:"strategy"`
	Repeats  int    `yaml:"repeats"`
}

// OutputConfig names the artifacts; an empty path disables that artifact.
type OutputConfig struct {
	Chart   string `yaml:"chart"`
	Samples string `yaml:"samples"`
	Metrics string `yaml:"metrics"`
	Trace   string `yaml:"trace"`
}

// DefaultMaxWorkers mirrors "currently active threads + 4".
func DefaultMaxWorkers() int {
	return runtime.NumCPU() + 4
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Graph: GraphConfig{
			Nodes:       100,
			Probability: 0.5,
			MinWeight:   graphgen.DefaultMinWeight,
			MaxWeight:   graphgen.DefaultMaxWeight,
		},
		Workers: WorkersConfig{
			Min:      1,
			Max:      DefaultMaxWorkers(),
			Strategy: floyd.StrategyPool.String(),
			Repeats:  1,
		},
		Verify:   true,
		Output:   OutputConfig{Chart: DefaultChartPath},
		LogLevel: "info",
	}
}

// Load builds a configuration from defaults, the YAML file at path (if
// non-empty) and FWBENCH_* environment variables, then validates it.
func Load(path string) (Config, error) {
	cfg, err := Read(path)
	if err != nil {
		return cfg, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}

	return cfg, nil
}

// Read is Load without the final Validate, for callers that layer more
// overrides (command-line flags) on top before validating.
func Read(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return cfg, fmt.Errorf("read config %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("parse config %s: %w", path, err)
		}
	}

	if err := applyEnv(&cfg); err != nil {
		return cfg, err
	}

	return cfg, nil
}

// applyEnv overrides fields from FWBENCH_* variables. Malformed numbers are
// an error, not silently ignored.
func applyEnv(cfg *Config) error {
	ints := map[string]*int{
		"NODES":       &cfg.Graph.Nodes,
		"MIN_WEIGHT":  &cfg.Graph.MinWeight,
		"MAX_WEIGHT":  &cfg.Graph.MaxWeight,
		"MIN_WORKERS": &cfg.Workers.Min,
		"MAX_WORKERS": &cfg.Workers.Max,
		"REPEATS":     &cfg.Workers.Repeats,
	}
	for key, dst := range ints {
		if v, ok := os.LookupEnv(EnvPrefix + key); ok {
			i, err := strconv.Atoi(strings.TrimSpace(v))
			if err != nil {
				return fmt.Errorf("%s%s=%q: %w", EnvPrefix, key, v, err)
			}
			*dst = i
		}
	}

	if v, ok := os.LookupEnv(EnvPrefix + "PROBABILITY"); ok {
		f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return fmt.Errorf("%sPROBABILITY=%q: %w", EnvPrefix, v, err)
		}
		cfg.Graph.Probability = f
	}
	if v, ok := os.LookupEnv(EnvPrefix + "SEED"); ok {
		s, err := strconv.ParseInt(strings.TrimSpace(v), 10, 64)
		if err != nil {
			return fmt.Errorf("%sSEED=%q: %w", EnvPrefix, v, err)
		}
		cfg.Graph.Seed = s
	}
	if v, ok := os.LookupEnv(EnvPrefix + "VERIFY"); ok {
		b, err := strconv.ParseBool(strings.TrimSpace(v))
		if err != nil {
			return fmt.Errorf("%sVERIFY=%q: %w", EnvPrefix, v, err)
		}
		cfg.Verify = b
	}

	strs := map[string]*string{
		"STRATEGY":  &cfg.Workers.Strategy,
		"CHART":     &cfg.Output.Chart,
		"SAMPLES":   &cfg.Output.Samples,
		"METRICS":   &cfg.Output.Metrics,
		"TRACE":     &cfg.Output.Trace,
		"LOG_LEVEL": &cfg.LogLevel,
	}
	for key, dst := range strs {
		if v, ok := os.LookupEnv(EnvPrefix + key); ok {
			*dst = v
		}
	}

	return nil
}

// Validate checks every field and reports the first violation, wrapping
// ErrInvalidConfig and, where one exists, the domain sentinel.
func (c Config) Validate() error {
	if c.Graph.Nodes < 1 {
		return invalid("graph.nodes", c.Graph.Nodes, matrix.ErrInvalidSize)
	}
	p := c.Graph.Probability
	if math.IsNaN(p) || p < 0 || p > 1 {
		return invalid("graph.probability", p, graphgen.ErrInvalidProbability)
	}
	if c.Graph.MinWeight < 1 {
		return invalid("graph.min_weight", c.Graph.MinWeight, matrix.ErrInvalidEdge)
	}
	if c.Graph.MaxWeight < c.Graph.MinWeight {
		return invalid("graph.max_weight", c.Graph.MaxWeight, matrix.ErrInvalidEdge)
	}
	if c.Workers.Min < 1 {
		return invalid("workers.min", c.Workers.Min, floyd.ErrInvalidWorkerCount)
	}
	if c.Workers.Max < c.Workers.Min {
		return invalid("workers.max", c.Workers.Max, floyd.ErrInvalidWorkerCount)
	}
	if c.Workers.Repeats < 1 {
		return invalid("workers.repeats", c.Workers.Repeats, nil)
	}
	if _, err := floyd.ParseStrategy(c.Workers.Strategy); err != nil {
		return invalid("workers.strategy", c.Workers.Strategy, err)
	}
	if _, err := c.SlogLevel(); err != nil {
		return invalid("log_level", c.LogLevel, err)
	}

	return nil
}

// Strategy returns the parsed fan-out strategy. Call after Validate.
func (c Config) Strategy() floyd.Strategy {
	s, _ := floyd.ParseStrategy(c.Workers.Strategy)
	return s
}

// SlogLevel parses LogLevel ("debug", "info", "warn", "error").
func (c Config) SlogLevel() (slog.Level, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return slog.LevelInfo, err
	}
	return lvl, nil
}

func invalid(field string, value any, cause error) error {
	if cause == nil {
		return fmt.Errorf("%w: %s=%v", ErrInvalidConfig, field, value)
	}
	return fmt.Errorf("%w: %s=%v: %w", ErrInvalidConfig, field, value, cause)
}
