// SPDX-License-Identifier: MIT

package report

import (
	"fmt"
	"image/color"
	"io"
	"math"
	"os"
	"strconv"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/katalvlaran/fwbench/bench"
)

// Chart axis and title text.
const (
	ChartTitle  = "Speedup vs Number of Threads"
	ChartXLabel = "Number of Threads"
	ChartYLabel = "Speedup (Non-Parallel / Parallel)"
)

// Default canvas size, 6.4x4.8 inches.
const (
	DefaultChartWidth  = 6.4 * vg.Inch
	DefaultChartHeight = 4.8 * vg.Inch
)

var plotBlue = color.RGBA{B: 255, A: 255}

// Chart draws speedup against worker count and saves it as PNG.
type Chart struct {
	Path   string
	Width  vg.Length // 0 = DefaultChartWidth
	Height vg.Length // 0 = DefaultChartHeight
}

// Render writes the chart to c.Path.
func (c Chart) Render(r *bench.Report) (err error) {
	if c.Path == "" {
		return fmt.Errorf("report: chart: empty path")
	}
	f, err := os.Create(c.Path)
	if err != nil {
		return fmt.Errorf("report: chart: %w", err)
	}
	defer func() {
		if cerr := f.Close(); err == nil && cerr != nil {
			err = fmt.Errorf("report: chart: %w", cerr)
		}
	}()

	return c.WriteTo(f, r)
}

// WriteTo encodes the chart as PNG onto w.
func (c Chart) WriteTo(w io.Writer, r *bench.Report) error {
	p, err := speedupPlot(r)
	if err != nil {
		return err
	}

	width, height := c.Width, c.Height
	if width <= 0 {
		width = DefaultChartWidth
	}
	if height <= 0 {
		height = DefaultChartHeight
	}
	wt, err := p.WriterTo(width, height, "png")
	if err != nil {
		return fmt.Errorf("report: chart: %w", err)
	}
	if _, err = wt.WriteTo(w); err != nil {
		return fmt.Errorf("report: chart: %w", err)
	}

	return nil
}

func speedupPlot(r *bench.Report) (*plot.Plot, error) {
	if r == nil {
		return nil, ErrNilReport
	}
	if len(r.Samples) == 0 {
		return nil, ErrNoSamples
	}

	pts := make(plotter.XYs, len(r.Samples))
	for i, s := range r.Samples {
		pts[i].X = float64(s.Workers)
		pts[i].Y = s.Speedup
	}

	p := plot.New()
	p.Title.Text = ChartTitle
	p.X.Label.Text = ChartXLabel
	p.Y.Label.Text = ChartYLabel
	p.X.Tick.Marker = plot.TickerFunc(workerTicks)
	p.Add(plotter.NewGrid())

	line, points, err := plotter.NewLinePoints(pts)
	if err != nil {
		return nil, fmt.Errorf("report: chart: %w", err)
	}
	line.Color = plotBlue
	points.Color = plotBlue
	points.Shape = draw.CircleGlyph{}
	p.Add(line, points)

	return p, nil
}

// maxWorkerTicks bounds the labelled ticks on the x axis.
const maxWorkerTicks = 16

// workerTicks labels integer worker counts in [lo, hi], thinning the labels
// once the range holds more than maxWorkerTicks integers.
func workerTicks(lo, hi float64) []plot.Tick {
	first, last := int(math.Ceil(lo)), int(math.Floor(hi))
	if last < first {
		return nil
	}
	step := (last-first)/maxWorkerTicks + 1

	var ticks []plot.Tick
	for v := first; v <= last; v++ {
		t := plot.Tick{Value: float64(v)}
		if (v-first)%step == 0 {
			t.Label = strconv.Itoa(v)
		}
		ticks = append(ticks, t)
	}
	return ticks
}
