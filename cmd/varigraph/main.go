// SPDX-License-Identifier: MIT

// Command varigraph builds, inspects and modifies variation graphs stored as
// GFA, including sample-specific subgraph extraction from a VCF.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "varigraph:", err)
		os.Exit(1)
	}
}
