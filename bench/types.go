// SPDX-License-Identifier: MIT

package bench

import (
	"errors"
	"time"
)

// ErrMismatch is returned when a parallel trial disagrees with the baseline.
var ErrMismatch = errors.New("bench: parallel result differs from sequential baseline")

// Sample is one parallel trial.
type Sample struct {
	Workers  int           `yaml:"workers"`
	Elapsed  time.Duration `yaml:"elapsed"`
	Speedup  float64       `yaml:"speedup"`
	Verified bool          `yaml:"verified"`
}

// Report is the outcome of one benchmark run.
type Report struct {
	RunID       string        `yaml:"run_id"`
	Started     time.Time     `yaml:"started"`
	Nodes       int           `yaml:"nodes"`
	Edges       int           `yaml:"edges"`
	Probability float64       `yaml:"probability"`
	Seed        int64         `yaml:"seed"`
	Strategy    string        `yaml:"strategy"`
	Repeats     int           `yaml:"repeats"`
	Baseline    time.Duration `yaml:"baseline"`
	Samples     []Sample      `yaml:"samples"`
}

// Best returns the sample with the highest speedup; ok is false when the
// report has no samples.
func (r *Report) Best() (s Sample, ok bool) {
	for i, cur := range r.Samples {
		if i == 0 || cur.Speedup > s.Speedup {
			s = cur
		}
	}
	return s, len(r.Samples) > 0
}

// Speedup returns baseline/trial. A non-positive trial duration is clamped to
// one nanosecond so the ratio stays finite.
func Speedup(baseline, trial time.Duration) float64 {
	if trial <= 0 {
		trial = time.Nanosecond
	}
	return float64(baseline) / float64(trial)
}
