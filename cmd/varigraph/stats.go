// SPDX-License-Identifier: MIT
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/varigraph/dfs"
	"github.com/katalvlaran/varigraph/gfa"
	"github.com/katalvlaran/varigraph/sample"
)

func newStatsCmd(gf *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "stats <graph.gfa>",
		Short: "Print node, edge, path and allele-path counts",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := gf.load(cmd)
			if err != nil {
				return err
			}
			if err := cfg.Validate(); err != nil {
				return err
			}
			log, err := logger(cmd, cfg)
			if err != nil {
				return err
			}

			g, err := gfa.ReadFile(args[0])
			if err != nil {
				return err
			}
			idx, err := sample.BuildIndex(g)
			if err != nil {
				return err
			}
			cyclic, _, err := dfs.DetectCycles(g)
			if err != nil {
				return err
			}
			st := g.Stats()
			log.Debug("graph loaded", "file", args[0])

			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "nodes\t%d\n", st.NodeCount)
			fmt.Fprintf(w, "edges\t%d\n", st.EdgeCount)
			fmt.Fprintf(w, "paths\t%d\n", st.PathCount)
			fmt.Fprintf(w, "length\t%d\n", st.SequenceLength)
			fmt.Fprintf(w, "steps\t%d\n", st.PathSteps)
			fmt.Fprintf(w, "variants\t%d\n", idx.Variants())
			fmt.Fprintf(w, "allele_paths\t%d\n", idx.Len())
			fmt.Fprintf(w, "cyclic\t%t\n", cyclic)

			return nil
		},
	}
}
