// SPDX-License-Identifier: MIT
package floyd_test

import (
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/graph/path"
	"gonum.org/v1/gonum/graph/simple"

	"github.com/katalvlaran/fwbench/floyd"
	"github.com/katalvlaran/fwbench/graphgen"
	"github.com/katalvlaran/fwbench/matrix"
)

// gonumDistances solves d with gonum's Floyd–Warshall and returns the
// distance table in row-major order.
func gonumDistances(t *testing.T, d *matrix.Distance) []float64 {
	t.Helper()

	n := d.Size()
	g := simple.NewWeightedDirectedGraph(0, math.Inf(1))
	for i := 0; i < n; i++ {
		g.AddNode(simple.Node(i))
	}
	for i := 0; i < n; i++ {
		row, err := d.Row(i)
		require.NoError(t, err)
		for j, w := range row {
			if i == j || math.IsInf(w, 1) {
				continue
			}
			g.SetWeightedEdge(g.NewWeightedEdge(simple.Node(i), simple.Node(j), w))
		}
	}

	paths, ok := path.FloydWarshall(g)
	require.True(t, ok, "positive weights cannot form a negative cycle")

	out := make([]float64, 0, n*n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			out = append(out, paths.Weight(int64(i), int64(j)))
		}
	}
	return out
}

// TestAgreesWithGonum checks both solvers against an independent
// implementation on random instances.
func TestAgreesWithGonum(t *testing.T) {
	for _, tc := range []struct {
		nodes int
		p     float64
	}{
		{1, 0.5}, {5, 0}, {12, 0.15}, {25, 0.5}, {40, 1},
	} {
		t.Run(fmt.Sprintf("V=%d/p=%.2f", tc.nodes, tc.p), func(t *testing.T) {
			d, err := graphgen.Generate(tc.nodes, tc.p, graphgen.WithSeed(int64(tc.nodes)))
			require.NoError(t, err)
			want := gonumDistances(t, d)

			seq, err := floyd.Sequential(d)
			require.NoError(t, err)
			require.Equal(t, want, seq.Raw(), "sequential")

			for _, s := range strategies {
				p, err := floyd.NewParallel(3, floyd.WithStrategy(s))
				require.NoError(t, err)
				got, err := p.Solve(d)
				require.NoError(t, err)
				require.Equal(t, want, got.Raw(), "parallel/%s", s)
			}
		})
	}
}
