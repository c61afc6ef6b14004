// SPDX-License-Identifier: MIT

package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/katalvlaran/fwbench/bench"
	"github.com/katalvlaran/fwbench/config"
	"github.com/katalvlaran/fwbench/report"
)

type runFlags struct {
	configPath  string
	nodes       int
	probability float64
	seed        int64
	minWorkers  int
	maxWorkers  int
	strategy    string
	repeats     int
	chart       string
	samples     string
	metrics     string
	trace       string
	noVerify    bool
	logLevel    string
	markdown    bool
}

func newRunCmd() *cobra.Command {
	var fl runFlags
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run the sequential baseline and the parallel sweep",
		Long: "Generates a random directed graph, times the sequential solver, then the\n" +
			"parallel solver for every worker count in [min-workers, max-workers],\n" +
			"and writes the speedup summary, chart and optional sample/metric files.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runRun(cmd, &fl)
		},
	}

	def := config.Default()
	f := cmd.Flags()
	f.StringVar(&fl.configPath, "config", "", "YAML config file")
	f.IntVar(&fl.nodes, "nodes", def.Graph.Nodes, "vertex count")
	f.Float64Var(&fl.probability, "probability", def.Graph.Probability, "edge probability in [0,1]")
	f.Int64Var(&fl.seed, "seed", def.Graph.Seed, "generator seed")
	f.IntVar(&fl.minWorkers, "min-workers", def.Workers.Min, "smallest worker count")
	f.IntVar(&fl.maxWorkers, "max-workers", def.Workers.Max, "largest worker count (default NumCPU+4)")
	f.StringVar(&fl.strategy, "strategy", def.Workers.Strategy, "parallel strategy: pool or spawn")
	f.IntVar(&fl.repeats, "repeats", def.Workers.Repeats, "timed repetitions per solve, fastest kept")
	f.StringVar(&fl.chart, "chart", def.Output.Chart, "PNG chart path (empty disables)")
	f.StringVar(&fl.samples, "samples", def.Output.Samples, "YAML sample dump path (empty disables)")
	f.StringVar(&fl.metrics, "metrics", def.Output.Metrics, "Prometheus text file path (empty disables)")
	f.StringVar(&fl.trace, "trace", def.Output.Trace, "JSON span dump path (empty disables)")
	f.BoolVar(&fl.noVerify, "no-verify", false, "skip comparing parallel results with the baseline")
	f.StringVar(&fl.logLevel, "log-level", def.LogLevel, "debug, info, warn or error")
	f.BoolVar(&fl.markdown, "markdown", false, "print the trial table as Markdown")

	return cmd
}

func runRun(cmd *cobra.Command, fl *runFlags) (err error) {
	cfg, err := loadRunConfig(cmd.Flags(), fl)
	if err != nil {
		return err
	}

	logger := newLogger(cmd.ErrOrStderr(), cfg)
	reg := prometheus.NewRegistry()
	opts := []bench.Option{bench.WithLogger(logger), bench.WithRegistry(reg)}
	if cfg.Output.Trace != "" {
		ft, terr := newFileTracer(cfg.Output.Trace)
		if terr != nil {
			return terr
		}
		defer func() {
			if serr := ft.Shutdown(context.Background()); err == nil && serr != nil {
				err = fmt.Errorf("write trace: %w", serr)
			}
		}()
		opts = append(opts, bench.WithTracer(ft.Tracer()))
	}

	drv, err := bench.New(cfg, opts...)
	if err != nil {
		return err
	}

	g, err := bench.Generate(cfg.Graph)
	if err != nil {
		return fmt.Errorf("generate graph: %w", err)
	}

	ctx, stop := signal.NotifyContext(cmdContext(cmd), os.Interrupt, syscall.SIGTERM)
	defer stop()

	rep, err := drv.Run(ctx, g)
	if err != nil {
		return fmt.Errorf("benchmark: %w", err)
	}

	renderers := report.Multi{report.Console{W: cmd.OutOrStdout(), Markdown: fl.markdown}}
	if cfg.Output.Chart != "" {
		renderers = append(renderers, report.Chart{Path: cfg.Output.Chart})
	}
	if cfg.Output.Samples != "" {
		renderers = append(renderers, report.YAMLFile{Path: cfg.Output.Samples})
	}
	if err := renderers.Render(rep); err != nil {
		return err
	}

	if cfg.Output.Metrics != "" {
		if err := prometheus.WriteToTextfile(cfg.Output.Metrics, reg); err != nil {
			return fmt.Errorf("write metrics: %w", err)
		}
		logger.Info("metrics written", "path", cfg.Output.Metrics)
	}
	if cfg.Output.Chart != "" {
		logger.Info("chart written", "path", cfg.Output.Chart)
	}

	return nil
}

// loadRunConfig layers explicitly set flags over the file and environment.
func loadRunConfig(fs *pflag.FlagSet, fl *runFlags) (config.Config, error) {
	cfg, err := config.Read(fl.configPath)
	if err != nil {
		return cfg, fmt.Errorf("load config: %w", err)
	}

	if fs.Changed("nodes") {
		cfg.Graph.Nodes = fl.nodes
	}
	if fs.Changed("probability") {
		cfg.Graph.Probability = fl.probability
	}
	if fs.Changed("seed") {
		cfg.Graph.Seed = fl.seed
	}
	if fs.Changed("min-workers") {
		cfg.Workers.Min = fl.minWorkers
	}
	if fs.Changed("max-workers") {
		cfg.Workers.Max = fl.maxWorkers
	}
	if fs.Changed("strategy") {
		cfg.Workers.Strategy = fl.strategy
	}
	if fs.Changed("repeats") {
		cfg.Workers.Repeats = fl.repeats
	}
	if fs.Changed("chart") {
		cfg.Output.Chart = fl.chart
	}
	if fs.Changed("samples") {
		cfg.Output.Samples = fl.samples
	}
	if fs.Changed("metrics") {
		cfg.Output.Metrics = fl.metrics
	}
	if fs.Changed("trace") {
		cfg.Output.Trace = fl.trace
	}
	if fs.Changed("no-verify") {
		cfg.Verify = !fl.noVerify
	}
	if fs.Changed("log-level") {
		cfg.LogLevel = fl.logLevel
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func cmdContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}
