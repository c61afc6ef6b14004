// SPDX-License-Identifier: MIT
// Package: report
//
// Purpose:
//   - Turn a finished bench.Report into artifacts: console text, a PNG
//     speedup chart and a YAML sample dump.
//
// Contract:
//   - Renderers only read the report.
//   - A nil report is rejected with ErrNilReport.
//   - Multi stops at the first failing renderer.

package report

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/fwbench/bench"
)

// ErrNilReport is returned when a renderer is handed a nil report.
var ErrNilReport = errors.New("report: nil report")

// ErrNoSamples is returned by renderers that need at least one trial.
var ErrNoSamples = errors.New("report: report has no samples")

// Renderer writes one artifact for a report.
type Renderer interface {
	Render(r *bench.Report) error
}

// RendererFunc adapts a plain function to Renderer.
type RendererFunc func(r *bench.Report) error

// Render calls f(r).
func (f RendererFunc) Render(r *bench.Report) error { return f(r) }

// Multi fans a report out to several renderers in order.
type Multi []Renderer

// Render runs every renderer and returns the first error, tagged with the
// renderer's position.
func (m Multi) Render(r *bench.Report) error {
	if r == nil {
		return ErrNilReport
	}
	for i, rr := range m {
		if rr == nil {
			continue
		}
		if err := rr.Render(r); err != nil {
			return fmt.Errorf("report: renderer %d (%T): %w", i, rr, err)
		}
	}

	return nil
}
