// SPDX-License-Identifier: MIT

package main

import (
	"fmt"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/fwbench/floyd"
)

func newPartitionCmd() *cobra.Command {
	var nodes, workers int
	cmd := &cobra.Command{
		Use:   "partition",
		Short: "Show how rows are split among workers",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runPartition(cmd, nodes, workers)
		},
	}

	f := cmd.Flags()
	f.IntVar(&nodes, "nodes", 10, "vertex count")
	f.IntVar(&workers, "workers", 3, "worker count")

	return cmd
}

func runPartition(cmd *cobra.Command, nodes, workers int) error {
	blocks, err := floyd.Partition(nodes, workers)
	if err != nil {
		return fmt.Errorf("partition --nodes=%d --workers=%d: %w", nodes, workers, err)
	}

	w := table.NewWriter()
	w.SetStyle(table.StyleLight)
	w.Style().Format.Footer = text.FormatDefault
	w.AppendHeader(table.Row{"Worker", "Rows", "Count"})
	idle := 0
	for i, b := range blocks {
		if b.Empty() {
			idle++
		}
		w.AppendRow(table.Row{i, b.String(), b.Len()})
	}
	w.AppendFooter(table.Row{"total", fmt.Sprintf("%d idle", idle), nodes})

	fmt.Fprintln(cmd.OutOrStdout(), w.Render())
	return nil
}
