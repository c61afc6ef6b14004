// SPDX-License-Identifier: MIT
package bench

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/fwbench/config"
	"github.com/katalvlaran/fwbench/floyd"
	"github.com/katalvlaran/fwbench/matrix"
)

// TestTrial_Mismatch feeds a baseline that cannot match the parallel result.
func TestTrial_Mismatch(t *testing.T) {
	cfg := config.Default()
	cfg.Graph.Nodes = 6
	cfg.Workers.Max = 2

	var logs bytes.Buffer
	d, err := New(cfg, WithLogger(slog.New(slog.NewTextHandler(&logs, nil))))
	require.NoError(t, err)

	g, err := Generate(cfg.Graph)
	require.NoError(t, err)
	wrong, err := matrix.NewDistance(6)
	require.NoError(t, err)
	require.NoError(t, wrong.SetEdge(0, 1, 1000))

	_, err = d.trial(context.Background(), g, 2, floyd.Timing{Result: wrong})
	require.ErrorIs(t, err, ErrMismatch)
	assert.Contains(t, logs.String(), "differs from baseline")
	assert.Equal(t, 1.0, testutil.ToFloat64(d.metrics.trials.WithLabelValues(resultMismatch)))
	assert.Zero(t, testutil.ToFloat64(d.metrics.trials.WithLabelValues(resultOK)))
}
