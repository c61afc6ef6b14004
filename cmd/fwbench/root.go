// SPDX-License-Identifier: MIT

package main

import (
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/fwbench/config"
)

// newRootCmd builds a fresh command tree, so flag state never leaks
// between invocations in tests.
func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "fwbench",
		Short: "Parallel Floyd–Warshall speedup benchmark",
		Long: "fwbench solves all-pairs shortest paths on a random directed graph,\n" +
			"sequentially and with 1..N workers, and reports the speedup per worker count.",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		CompletionOptions: cobra.CompletionOptions{
			HiddenDefaultCmd: true,
		},
	}

	root.AddCommand(newRunCmd())
	root.AddCommand(newSolveCmd())
	root.AddCommand(newPartitionCmd())

	return root
}

// newLogger returns a text logger on w at the level named by cfg.
func newLogger(w io.Writer, cfg config.Config) *slog.Logger {
	lvl, err := cfg.SlogLevel()
	if err != nil {
		lvl = slog.LevelInfo
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: lvl}))
}
