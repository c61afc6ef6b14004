// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/fwbench/bench"
	"github.com/katalvlaran/fwbench/config"
	"github.com/katalvlaran/fwbench/floyd"
	"github.com/katalvlaran/fwbench/matrix"
)

type solveFlags struct {
	input       string
	nodes       int
	probability float64
	seed        int64
	workers     int
	strategy    string
}

func newSolveCmd() *cobra.Command {
	var fl solveFlags
	cmd := &cobra.Command{
		Use:   "solve",
		Short: "Print the shortest-path matrix of one graph",
		Long: "Solves a generated graph, or the matrix read from --input, and prints the\n" +
			"distance matrix with unreachable pairs shown as ∞. --workers 0 uses the\n" +
			"sequential solver.",
		Example: "  fwbench solve --nodes 6 --probability 0.4 --workers 2\n" +
			"  fwbench solve --input graph.yaml",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runSolve(cmd, &fl)
		},
	}

	def := config.Default()
	f := cmd.Flags()
	f.StringVar(&fl.input, "input", "", "YAML file holding a list of matrix rows (.inf for no edge)")
	f.IntVar(&fl.nodes, "nodes", 8, "vertex count of the generated graph")
	f.Float64Var(&fl.probability, "probability", def.Graph.Probability, "edge probability in [0,1]")
	f.Int64Var(&fl.seed, "seed", def.Graph.Seed, "generator seed")
	f.IntVar(&fl.workers, "workers", 0, "parallel worker count; 0 solves sequentially")
	f.StringVar(&fl.strategy, "strategy", def.Workers.Strategy, "parallel strategy: pool or spawn")

	return cmd
}

func runSolve(cmd *cobra.Command, fl *solveFlags) error {
	g, err := solveInput(fl)
	if err != nil {
		return err
	}

	var t floyd.Timing
	switch {
	case fl.workers < 0:
		return fmt.Errorf("--workers=%d: %w", fl.workers, floyd.ErrInvalidWorkerCount)
	case fl.workers == 0:
		t, err = floyd.TimeSequential(g)
	default:
		strategy, perr := floyd.ParseStrategy(fl.strategy)
		if perr != nil {
			return fmt.Errorf("--strategy: %w", perr)
		}
		p, perr := floyd.NewParallel(fl.workers, floyd.WithStrategy(strategy))
		if perr != nil {
			return perr
		}
		t, err = floyd.TimeParallel(p, g)
	}
	if err != nil {
		return fmt.Errorf("solve: %w", err)
	}

	fmt.Fprint(cmd.OutOrStdout(), t.Result.String())
	fmt.Fprintf(cmd.ErrOrStderr(), "solved %d vertices in %s\n", g.Size(), t.Elapsed)

	return nil
}

func solveInput(fl *solveFlags) (*matrix.Distance, error) {
	if fl.input == "" {
		gc := config.Default().Graph
		gc.Nodes, gc.Probability, gc.Seed = fl.nodes, fl.probability, fl.seed
		g, err := bench.Generate(gc)
		if err != nil {
			return nil, fmt.Errorf("generate graph: %w", err)
		}
		return g, nil
	}

	data, err := os.ReadFile(fl.input)
	if err != nil {
		return nil, fmt.Errorf("read input: %w", err)
	}
	var rows [][]float64
	if err := yaml.Unmarshal(data, &rows); err != nil {
		return nil, fmt.Errorf("parse input %s: %w", fl.input, err)
	}
	g, err := matrix.NewDistanceFromRows(rows)
	if err != nil {
		return nil, fmt.Errorf("input %s: %w", fl.input, err)
	}

	return g, nil
}
