// SPDX-License-Identifier: MIT
package bench_test

import (
	"bytes"
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/fwbench/bench"
	"github.com/katalvlaran/fwbench/config"
	"github.com/katalvlaran/fwbench/matrix"
)

func smallConfig() config.Config {
	cfg := config.Default()
	cfg.Graph.Nodes = 14
	cfg.Graph.Probability = 0.3
	cfg.Graph.Seed = 21
	cfg.Workers.Min = 1
	cfg.Workers.Max = 5
	cfg.Workers.Repeats = 2
	return cfg
}

func quietLogger(buf *bytes.Buffer) *slog.Logger {
	return slog.New(slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

func TestNew_InvalidConfig(t *testing.T) {
	cfg := config.Default()
	cfg.Workers.Min = 0
	_, err := bench.New(cfg)
	require.ErrorIs(t, err, config.ErrInvalidConfig)
}

func TestRun_SweepsWorkers(t *testing.T) {
	cfg := smallConfig()
	var logs bytes.Buffer
	reg := prometheus.NewRegistry()
	d, err := bench.New(cfg, bench.WithLogger(quietLogger(&logs)), bench.WithRegistry(reg))
	require.NoError(t, err)
	require.Same(t, reg, d.Registry())

	g, err := bench.Generate(cfg.Graph)
	require.NoError(t, err)
	before := g.Clone()

	rep, err := d.Run(context.Background(), g)
	require.NoError(t, err)
	require.NotNil(t, rep)

	assert.NotEmpty(t, rep.RunID)
	assert.Equal(t, 14, rep.Nodes)
	assert.Equal(t, matrix.EdgeCount(g), rep.Edges)
	assert.Equal(t, "pool", rep.Strategy)
	assert.Equal(t, 2, rep.Repeats)
	assert.GreaterOrEqual(t, rep.Baseline, time.Duration(0))

	var workers []int
	for _, s := range rep.Samples {
		workers = append(workers, s.Workers)
		assert.True(t, s.Verified, "workers=%d", s.Workers)
		assert.Greater(t, s.Speedup, 0.0)
	}
	if diff := cmp.Diff([]int{1, 2, 3, 4, 5}, workers); diff != "" {
		t.Errorf("worker sweep mismatch (-want +got):\n%s", diff)
	}
	assert.True(t, g.Equal(before), "driver must not mutate the input graph")

	assert.Contains(t, logs.String(), "sequential baseline")
	assert.Contains(t, logs.String(), "parallel trial")

	families, err := reg.Gather()
	require.NoError(t, err)
	names := map[string]bool{}
	for _, f := range families {
		names[f.GetName()] = true
		if f.GetName() == "fwbench_trials_total" {
			require.Len(t, f.GetMetric(), 1)
			assert.Equal(t, 5.0, f.GetMetric()[0].GetCounter().GetValue())
		}
	}
	for _, n := range []string{"fwbench_solve_duration_seconds", "fwbench_speedup_ratio", "fwbench_trials_total"} {
		assert.True(t, names[n], "missing metric %s", n)
	}
}

func TestRun_SpawnStrategyUnverified(t *testing.T) {
	cfg := smallConfig()
	cfg.Workers.Strategy = "spawn"
	cfg.Workers.Min, cfg.Workers.Max = 3, 3
	cfg.Verify = false

	var logs bytes.Buffer
	d, err := bench.New(cfg, bench.WithLogger(quietLogger(&logs)))
	require.NoError(t, err)
	g, err := bench.Generate(cfg.Graph)
	require.NoError(t, err)

	rep, err := d.Run(context.Background(), g)
	require.NoError(t, err)
	require.Len(t, rep.Samples, 1)
	assert.Equal(t, "spawn", rep.Strategy)
	assert.False(t, rep.Samples[0].Verified)
}

func TestRun_Errors(t *testing.T) {
	var logs bytes.Buffer
	d, err := bench.New(smallConfig(), bench.WithLogger(quietLogger(&logs)))
	require.NoError(t, err)

	rep, err := d.Run(context.Background(), nil)
	assert.ErrorIs(t, err, matrix.ErrNilMatrix)
	assert.Nil(t, rep)

	g, _ := bench.Generate(smallConfig().Graph)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	rep, err = d.Run(ctx, g)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Nil(t, rep, "no partial report")
}

func TestOptions_Panics(t *testing.T) {
	assert.Panics(t, func() { bench.WithLogger(nil) })
	assert.Panics(t, func() { bench.WithRegistry(nil) })
	assert.Panics(t, func() { bench.WithTracer(nil) })
}

func TestSpeedup(t *testing.T) {
	assert.Equal(t, 2.0, bench.Speedup(2*time.Second, time.Second))
	assert.Equal(t, 0.5, bench.Speedup(time.Second, 2*time.Second))
	assert.Equal(t, float64(time.Second), bench.Speedup(time.Second, 0))
}

func TestReport_Best(t *testing.T) {
	var empty bench.Report
	_, ok := empty.Best()
	assert.False(t, ok)

	r := bench.Report{Samples: []bench.Sample{
		{Workers: 1, Speedup: 0.9},
		{Workers: 2, Speedup: 1.7},
		{Workers: 3, Speedup: 1.2},
	}}
	best, ok := r.Best()
	require.True(t, ok)
	assert.Equal(t, 2, best.Workers)
}

// TestSpeedup_BelowOne covers trials slower than the baseline: spawn/join
// overhead on small graphs routinely yields ratios under 1, and they are
// reported as measured.
func TestSpeedup_BelowOne(t *testing.T) {
	assert.Equal(t, 0.25, bench.Speedup(time.Second, 4*time.Second))
	assert.Less(t, bench.Speedup(3*time.Millisecond, 7*time.Millisecond), 1.0)

	r := bench.Report{Samples: []bench.Sample{
		{Workers: 1, Speedup: 0.9},
		{Workers: 8, Speedup: 0.25},
		{Workers: 2, Speedup: 0.8},
	}}
	best, ok := r.Best()
	require.True(t, ok)
	assert.Equal(t, 1, best.Workers)
	assert.Less(t, best.Speedup, 1.0)
}
