// SPDX-License-Identifier: MIT
package main

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/varigraph/config"
	"github.com/katalvlaran/varigraph/construct"
)

type constructFlags struct {
	cons config.Construct
	out  outputFlags
}

func newConstructCmd(gf *globalFlags) *cobra.Command {
	cf := &constructFlags{}
	cmd := &cobra.Command{
		Use:   "construct -r ref.fa -v vars.vcf",
		Short: "Build a variation graph from a reference and its variants",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runConstruct(cmd, gf, cf)
		},
	}

	f := cmd.Flags()
	c := &cf.cons
	f.StringVarP(&c.Reference, "reference", "r", "", "reference FASTA")
	f.StringVarP(&c.Variants, "vcf", "v", "", "sorted VCF of variants")
	f.BoolVarP(&c.AltPaths, "alt-paths", "a", false, "add a _alt_ path for every allele")
	f.IntVarP(&c.MaxNodeLength, "max-node-length", "m", construct.DefaultMaxNodeLength, "longest node sequence")
	f.Int64Var(&c.IDStart, "id-start", 1, "first node id")
	cf.out.register(cmd)

	return cmd
}

func (cf *constructFlags) apply(cmd *cobra.Command, cfg *config.Config) {
	f := cmd.Flags()
	c, dst := cf.cons, &cfg.Construct
	if f.Changed("reference") {
		dst.Reference = c.Reference
	}
	if f.Changed("vcf") {
		dst.Variants = c.Variants
	}
	if f.Changed("alt-paths") {
		dst.AltPaths = c.AltPaths
	}
	if f.Changed("max-node-length") {
		dst.MaxNodeLength = c.MaxNodeLength
	}
	if f.Changed("id-start") {
		dst.IDStart = c.IDStart
	}
	cf.out.apply(cmd, cfg)
}

func runConstruct(cmd *cobra.Command, gf *globalFlags, cf *constructFlags) error {
	cfg, err := gf.load(cmd)
	if err != nil {
		return err
	}
	cf.apply(cmd, &cfg)
	if err := cfg.Validate(); err != nil {
		return err
	}
	if cfg.Construct.Reference == "" || cfg.Construct.Variants == "" {
		return errors.New("construct: --reference and --vcf are required")
	}
	log, err := logger(cmd, cfg)
	if err != nil {
		return err
	}

	var st construct.Stats
	opts := append(cfg.ConstructOptions(), construct.WithLogger(log), construct.WithStats(&st))
	g, err := construct.BuildFiles(cfg.Construct.Reference, cfg.Construct.Variants, opts...)
	if err != nil {
		return err
	}
	log.Info("graph constructed",
		"contigs", st.Contigs,
		"variants", st.Variants,
		"skipped", st.RecordsSkipped,
		"nodes", g.NodeCount(),
	)

	return writeGraph(cmd, cfg.Output, g)
}
