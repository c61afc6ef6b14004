// SPDX-License-Identifier: MIT

package report

import (
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"github.com/katalvlaran/fwbench/bench"
)

// Console prints the classic text summary plus a trial table.
type Console struct {
	W io.Writer
	// Markdown switches the table to GitHub-flavoured Markdown.
	Markdown bool
}

// Render writes the summary to c.W.
func (c Console) Render(r *bench.Report) error {
	if r == nil {
		return ErrNilReport
	}

	var err error
	printf := func(format string, args ...any) {
		if err == nil {
			_, err = fmt.Fprintf(c.W, format, args...)
		}
	}

	printf("Graph generated with %d nodes and ~%.1f%% connection probability.\n",
		r.Nodes, r.Probability*100)
	printf("Non-Parallel Execution Time: %.2f seconds\n", r.Baseline.Seconds())
	for _, s := range r.Samples {
		printf("Threads: %d Speedup: %.2f\n", s.Workers, s.Speedup)
	}
	printf("\n%s\n", c.table(r))
	printf("\nSpeedup Results:\n")
	for _, s := range r.Samples {
		printf("Threads: %d, Speedup: %.2f\n", s.Workers, s.Speedup)
	}
	if err != nil {
		return fmt.Errorf("report: console: %w", err)
	}

	return nil
}

func (c Console) table(r *bench.Report) string {
	w := table.NewWriter()
	w.SetStyle(table.StyleLight)
	w.Style().Format.Footer = text.FormatDefault
	w.SetTitle("run %s (%s, %d edges)", r.RunID, r.Strategy, r.Edges)
	w.AppendHeader(table.Row{"Workers", "Elapsed", "Speedup", "Verified"})
	for _, s := range r.Samples {
		w.AppendRow(table.Row{s.Workers, s.Elapsed.String(), fmt.Sprintf("%.2f", s.Speedup), s.Verified})
	}
	if best, ok := r.Best(); ok {
		w.AppendFooter(table.Row{fmt.Sprintf("best %d", best.Workers), "", fmt.Sprintf("%.2f", best.Speedup), ""})
	}
	w.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, Align: text.AlignRight},
		{Number: 2, Align: text.AlignRight},
		{Number: 3, Align: text.AlignRight},
	})

	if c.Markdown {
		return w.RenderMarkdown()
	}
	return w.Render()
}
