// SPDX-License-Identifier: MIT
// Package bench measures how Floyd–Warshall scales with the worker count.
//
// A run solves the input once sequentially for the baseline, then once per
// worker count in [Workers.Min, Workers.Max] with the parallel solver, and
// reports speedup = baseline / trial for each count. With Verify set, every
// trial is compared cell for cell with the baseline and a difference aborts
// the run with ErrMismatch.
//
// Each timed solve may be repeated (Workers.Repeats); the fastest repetition
// is kept. The context is checked between solves, never inside one.
package bench

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/katalvlaran/fwbench/config"
	"github.com/katalvlaran/fwbench/floyd"
	"github.com/katalvlaran/fwbench/graphgen"
	"github.com/katalvlaran/fwbench/matrix"
)

const tracerName = "github.com/katalvlaran/fwbench/bench"

// Driver runs benchmark sweeps. Create with New.
type Driver struct {
	cfg      config.Config
	strategy floyd.Strategy
	logger   *slog.Logger
	registry *prometheus.Registry
	tracer   trace.Tracer
	metrics  *metrics
	now      func() time.Time
}

// Option customizes a Driver.
type Option func(*Driver)

// WithLogger sets the structured logger (default slog.Default()).
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic("bench: WithLogger(nil)")
	}
	return func(d *Driver) { d.logger = l }
}

// WithRegistry sets the Prometheus registry metrics are registered on
// (default: a fresh private registry).
func WithRegistry(r *prometheus.Registry) Option {
	if r == nil {
		panic("bench: WithRegistry(nil)")
	}
	return func(d *Driver) { d.registry = r }
}

// WithTracer sets the tracer (default: the global otel provider).
func WithTracer(t trace.Tracer) Option {
	if t == nil {
		panic("bench: WithTracer(nil)")
	}
	return func(d *Driver) { d.tracer = t }
}

// New validates cfg and returns a Driver.
func New(cfg config.Config, opts ...Option) (*Driver, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("bench.New: %w", err)
	}

	d := &Driver{
		cfg:      cfg,
		strategy: cfg.Strategy(),
		logger:   slog.Default(),
		tracer:   otel.Tracer(tracerName),
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(d)
	}
	if d.registry == nil {
		d.registry = prometheus.NewRegistry()
	}
	d.metrics = newMetrics(d.registry)

	return d, nil
}

// Registry returns the registry holding the driver's metrics.
func (d *Driver) Registry() *prometheus.Registry {
	return d.registry
}

// Generate builds the random instance described by the graph config.
func Generate(g config.GraphConfig) (*matrix.Distance, error) {
	return graphgen.Generate(g.Nodes, g.Probability,
		graphgen.WithSeed(g.Seed),
		graphgen.WithWeightRange(g.MinWeight, g.MaxWeight),
	)
}

// Run benchmarks g. g is only read; each solve works on its own copy.
// On any error no report is returned.
func (d *Driver) Run(ctx context.Context, g *matrix.Distance) (*Report, error) {
	if err := matrix.ValidateNotNil(g); err != nil {
		return nil, fmt.Errorf("bench.Run: %w", err)
	}

	rep := &Report{
		RunID:       uuid.NewString(),
		Started:     d.now(),
		Nodes:       g.Size(),
		Edges:       matrix.EdgeCount(g),
		Probability: d.cfg.Graph.Probability,
		Seed:        d.cfg.Graph.Seed,
		Strategy:    d.strategy.String(),
		Repeats:     d.cfg.Workers.Repeats,
	}
	log := d.logger.With("run_id", rep.RunID)

	ctx, span := d.tracer.Start(ctx, "bench.Run", trace.WithAttributes(
		attribute.String("run_id", rep.RunID),
		attribute.Int("nodes", rep.Nodes),
		attribute.Int("edges", rep.Edges),
		attribute.String("strategy", rep.Strategy),
	))
	defer span.End()

	fail := func(err error) (*Report, error) {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	log.Info("benchmark started",
		"nodes", rep.Nodes, "edges", rep.Edges,
		"workers_min", d.cfg.Workers.Min, "workers_max", d.cfg.Workers.Max,
		"strategy", rep.Strategy, "repeats", rep.Repeats)

	base, err := d.timeBest(ctx, solverSequential, 1, func() (floyd.Timing, error) {
		return floyd.TimeSequential(g)
	})
	if err != nil {
		return fail(fmt.Errorf("baseline: %w", err))
	}
	rep.Baseline = base.Elapsed
	log.Info("sequential baseline", "elapsed", base.Elapsed)

	for w := d.cfg.Workers.Min; w <= d.cfg.Workers.Max; w++ {
		s, err := d.trial(ctx, g, w, base)
		if err != nil {
			return fail(err)
		}
		rep.Samples = append(rep.Samples, s)
		log.Info("parallel trial",
			"workers", s.Workers, "elapsed", s.Elapsed,
			"speedup", fmt.Sprintf("%.2f", s.Speedup), "verified", s.Verified)
	}

	if best, ok := rep.Best(); ok {
		span.SetAttributes(
			attribute.Int("best_workers", best.Workers),
			attribute.Float64("best_speedup", best.Speedup),
		)
	}
	log.Info("benchmark finished", "samples", len(rep.Samples))

	return rep, nil
}

// trial runs the parallel solver with w workers and compares it to base.
func (d *Driver) trial(ctx context.Context, g *matrix.Distance, w int, base floyd.Timing) (Sample, error) {
	p, err := floyd.NewParallel(w, floyd.WithStrategy(d.strategy))
	if err != nil {
		return Sample{}, err
	}

	t, err := d.timeBest(ctx, solverParallel, w, func() (floyd.Timing, error) {
		return floyd.TimeParallel(p, g)
	})
	if err != nil {
		d.metrics.trials.WithLabelValues(resultError).Inc()
		return Sample{}, fmt.Errorf("workers=%d: %w", w, err)
	}

	s := Sample{
		Workers: w,
		Elapsed: t.Elapsed,
		Speedup: Speedup(base.Elapsed, t.Elapsed),
	}
	if d.cfg.Verify {
		if !base.Result.Equal(t.Result) {
			d.metrics.trials.WithLabelValues(resultMismatch).Inc()
			d.logger.Error("parallel result differs from baseline", "workers", w, "strategy", d.strategy.String())
			return Sample{}, fmt.Errorf("workers=%d: %w", w, ErrMismatch)
		}
		s.Verified = true
	}

	d.metrics.trials.WithLabelValues(resultOK).Inc()
	d.metrics.speedup.WithLabelValues(workersLabel(w)).Set(s.Speedup)

	return s, nil
}

// timeBest runs solve Repeats times inside a span and keeps the fastest run.
func (d *Driver) timeBest(ctx context.Context, solver string, workers int, solve func() (floyd.Timing, error)) (floyd.Timing, error) {
	_, span := d.tracer.Start(ctx, "bench."+solver, trace.WithAttributes(
		attribute.String("solver", solver),
		attribute.Int("workers", workers),
	))
	defer span.End()

	hist := d.metrics.solveDuration.WithLabelValues(solver, workersLabel(workers))
	var best floyd.Timing
	for r := 0; r < d.cfg.Workers.Repeats; r++ {
		if err := ctx.Err(); err != nil {
			span.SetStatus(codes.Error, err.Error())
			return floyd.Timing{}, err
		}
		t, err := solve()
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
			return floyd.Timing{}, err
		}
		hist.Observe(t.Seconds())
		if r == 0 || t.Elapsed < best.Elapsed {
			best = t
		}
	}
	span.SetAttributes(attribute.Int64("elapsed_ns", best.Elapsed.Nanoseconds()))

	return best, nil
}
