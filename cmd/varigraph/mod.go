// SPDX-License-Identifier: MIT
package main

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/varigraph/config"
	"github.com/katalvlaran/varigraph/gfa"
	"github.com/katalvlaran/varigraph/modify"
)

type modFlags struct {
	mod config.Mod
	out outputFlags
}

func newModCmd(gf *globalFlags) *cobra.Command {
	mf := &modFlags{}
	cmd := &cobra.Command{
		Use:   "mod [flags] <graph.gfa>",
		Short: "Modify a graph; with --sample-vcf, extract the subgraph of one sample",
		Long: `Modify a GFA graph and write the result as GFA.

Operations run in a fixed order: sample-vcf, keep-path, retain-path,
drop-paths, remove-non-path, sort, break-cycles, subgraph, destroy-node.
The set of retained paths is resolved against the input graph.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMod(cmd, gf, mf, args[0])
		},
	}

	f := cmd.Flags()
	m := &mf.mod
	f.StringVarP(&m.SampleVCF, "sample-vcf", "v", "", "VCF with sample genotypes; keep only the called alleles")
	f.StringVar(&m.Sample, "sample", "", "sample to extract when the VCF has several")
	f.BoolVar(&m.KeepAllelePaths, "keep-allele-paths", false, "keep allele paths that survive extraction")
	f.StringVarP(&m.KeepPath, "keep-path", "k", "", "keep only this path and the nodes it visits")
	f.StringArrayVarP(&m.RetainPaths, "retain-path", "r", nil, "remove every path except these (repeatable)")
	f.BoolVarP(&m.RetainComplement, "retain-complement", "I", false, "remove the paths named by --retain-path instead")
	f.BoolVarP(&m.DropPaths, "drop-paths", "D", false, "remove every path")
	f.BoolVarP(&m.RemoveNonPath, "remove-non-path", "N", false, "remove nodes no path visits")
	f.BoolVarP(&m.Sort, "sort", "z", false, "write segments in topological order")
	f.BoolVarP(&m.BreakCycles, "break-cycles", "b", false, "remove back edges")
	f.Int64SliceVarP(&m.Subgraph, "subgraph", "g", nil, "keep the context around these nodes (repeatable)")
	f.IntVarP(&m.Context, "context", "x", 1, "steps of context for --subgraph")
	f.Int64VarP(&m.DestroyNode, "destroy-node", "y", 0, "remove this node and every path through it")
	mf.out.register(cmd)

	return cmd
}

// apply copies every flag set on the command line over cfg.
func (mf *modFlags) apply(cmd *cobra.Command, cfg *config.Config) {
	f := cmd.Flags()
	m, dst := mf.mod, &cfg.Mod
	if f.Changed("sample-vcf") {
		dst.SampleVCF = m.SampleVCF
	}
	if f.Changed("sample") {
		dst.Sample = m.Sample
	}
	if f.Changed("keep-allele-paths") {
		dst.KeepAllelePaths = m.KeepAllelePaths
	}
	if f.Changed("keep-path") {
		dst.KeepPath = m.KeepPath
	}
	if f.Changed("retain-path") {
		dst.RetainPaths = m.RetainPaths
	}
	if f.Changed("retain-complement") {
		dst.RetainComplement = m.RetainComplement
	}
	if f.Changed("drop-paths") {
		dst.DropPaths = m.DropPaths
	}
	if f.Changed("remove-non-path") {
		dst.RemoveNonPath = m.RemoveNonPath
	}
	if f.Changed("sort") {
		dst.Sort = m.Sort
	}
	if f.Changed("break-cycles") {
		dst.BreakCycles = m.BreakCycles
	}
	if f.Changed("subgraph") {
		dst.Subgraph = m.Subgraph
	}
	if f.Changed("context") {
		dst.Context = m.Context
	}
	if f.Changed("destroy-node") {
		dst.DestroyNode = m.DestroyNode
	}
	mf.out.apply(cmd, cfg)
}

func runMod(cmd *cobra.Command, gf *globalFlags, mf *modFlags, input string) error {
	cfg, err := gf.load(cmd)
	if err != nil {
		return err
	}
	mf.apply(cmd, &cfg)
	if err := cfg.Validate(); err != nil {
		return err
	}
	log, err := logger(cmd, cfg)
	if err != nil {
		return err
	}
	log = log.WithFile(input)

	g, err := gfa.ReadFile(input)
	if err != nil {
		return err
	}
	opts := cfg.ModifyOptions()
	opts.Logger = log
	res, err := modify.Apply(g, opts)
	if err != nil {
		return err
	}
	if rep := res.Extraction; rep != nil {
		log.Info("sample graph extracted",
			"sample", rep.Sample,
			"records", rep.RecordsRead,
			"skipped", rep.RecordsSkipped,
			"extraction_id", rep.RunID,
		)
	}

	return writeGraph(cmd, cfg.Output, res.Graph, gfa.WithNodeOrder(res.Order))
}
