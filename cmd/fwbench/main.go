// SPDX-License-Identifier: MIT
// Command fwbench benchmarks sequential against parallel Floyd–Warshall on
// random directed graphs and reports the speedup per worker count.
package main

import (
	"fmt"
	"os"
)

// version is set at build time via -ldflags.
var version = "dev"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
