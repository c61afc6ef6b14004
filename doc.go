// Package fwbench measures how far all-pairs shortest paths speed up when
// Floyd–Warshall is spread over goroutines.
//
// What is inside?
//
//	• A dense directed distance matrix with an explicit +Inf "no path" value
//	• A sequential solver and a row-partitioned parallel solver that agree
//	  cell for cell for every worker count
//	• A seeded random graph generator (edge probability, integer weights)
//	• A benchmark driver that sweeps worker counts and reports speedups
//	• Renderers for the console, a PNG chart and a YAML dump
//	• The fwbench command tying it all together
//
// Layout:
//
//	matrix/            — Distance type, sentinel errors, validators
//	floyd/             — Sequential, Parallel, Partition, Timed
//	graphgen/          — random instance generator
//	internal/workpool/ — fixed worker pool with a cyclic stage barrier
//	config/            — YAML + environment configuration
//	bench/             — sweep driver, Prometheus metrics, OpenTelemetry spans
//	report/            — console table, speedup chart, YAML samples
//	cmd/fwbench/       — cobra CLI (run, solve, partition)
//
// Quick start:
//
//	d, _ := graphgen.Generate(200, 0.5, graphgen.WithSeed(7))
//	seq, _ := floyd.Sequential(d)
//	p, _ := floyd.NewParallel(8)
//	par, _ := p.Solve(d)
//	fmt.Println(seq.Equal(par)) // true
//
// Or from the shell:
//
//	fwbench run --nodes 300 --max-workers 12 --chart speedup_threads.png
package fwbench
