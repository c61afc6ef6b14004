// SPDX-License-Identifier: MIT

package report

import (
	"fmt"
	"io"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/fwbench/bench"
)

// sampleDoc is the on-disk shape of one trial; durations are seconds.
type sampleDoc struct {
	Workers  int     `yaml:"workers"`
	Seconds  float64 `yaml:"seconds"`
	Speedup  float64 `yaml:"speedup"`
	Verified bool    `yaml:"verified"`
}

// reportDoc is the on-disk shape of a run.
type reportDoc struct {
	RunID           string      `yaml:"run_id"`
	Started         time.Time   `yaml:"started"`
	Nodes           int         `yaml:"nodes"`
	Edges           int         `yaml:"edges"`
	Probability     float64     `yaml:"probability"`
	Seed            int64       `yaml:"seed"`
	Strategy        string      `yaml:"strategy"`
	Repeats         int         `yaml:"repeats"`
	BaselineSeconds float64     `yaml:"baseline_seconds"`
	Samples         []sampleDoc `yaml:"samples"`
}

func toDoc(r *bench.Report) reportDoc {
	doc := reportDoc{
		RunID:           r.RunID,
		Started:         r.Started.UTC(),
		Nodes:           r.Nodes,
		Edges:           r.Edges,
		Probability:     r.Probability,
		Seed:            r.Seed,
		Strategy:        r.Strategy,
		Repeats:         r.Repeats,
		BaselineSeconds: r.Baseline.Seconds(),
		Samples:         make([]sampleDoc, len(r.Samples)),
	}
	for i, s := range r.Samples {
		doc.Samples[i] = sampleDoc{
			Workers:  s.Workers,
			Seconds:  s.Elapsed.Seconds(),
			Speedup:  s.Speedup,
			Verified: s.Verified,
		}
	}
	return doc
}

// YAMLFile dumps the report to Path for later comparison between runs.
type YAMLFile struct {
	Path string
}

// Render writes the YAML document to y.Path, replacing any previous file.
func (y YAMLFile) Render(r *bench.Report) (err error) {
	if r == nil {
		return ErrNilReport
	}
	if y.Path == "" {
		return fmt.Errorf("report: yaml: empty path")
	}
	f, err := os.Create(y.Path)
	if err != nil {
		return fmt.Errorf("report: yaml: %w", err)
	}
	defer func() {
		if cerr := f.Close(); err == nil && cerr != nil {
			err = fmt.Errorf("report: yaml: %w", cerr)
		}
	}()

	return WriteYAML(f, r)
}

// WriteYAML encodes r onto w.
func WriteYAML(w io.Writer, r *bench.Report) error {
	if r == nil {
		return ErrNilReport
	}
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(toDoc(r)); err != nil {
		return fmt.Errorf("report: yaml: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("report: yaml: %w", err)
	}

	return nil
}
