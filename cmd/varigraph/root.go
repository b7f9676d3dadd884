// SPDX-License-Identifier: MIT
package main

import (
	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/varigraph/config"
	"github.com/katalvlaran/varigraph/core"
	"github.com/katalvlaran/varigraph/gfa"
	"github.com/katalvlaran/varigraph/logging"
	"github.com/katalvlaran/varigraph/streamio"
)

// globalFlags are shared by every subcommand.
type globalFlags struct {
	configPath string
	logLevel   string
	logJSON    bool
}

func newRootCmd() *cobra.Command {
	gf := &globalFlags{}
	root := &cobra.Command{
		Use:           "varigraph",
		Short:         "Build, inspect and modify variation graphs",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&gf.configPath, "config", "", "YAML configuration file")
	root.PersistentFlags().StringVar(&gf.logLevel, "log-level", "", "log level: debug, info, warn or error")
	root.PersistentFlags().BoolVar(&gf.logJSON, "log-json", false, "log as JSON lines")

	root.AddCommand(newModCmd(gf), newConstructCmd(gf), newStatsCmd(gf))

	return root
}

// load reads the configuration file, if any, and applies the global flags.
// The result is not validated; callers validate after their own overrides.
func (gf *globalFlags) load(cmd *cobra.Command) (config.Config, error) {
	cfg := config.Default()
	if gf.configPath != "" {
		var err error
		if cfg, err = config.Load(gf.configPath); err != nil {
			return cfg, err
		}
	}
	if cmd.Flags().Changed("log-level") {
		cfg.Log.Level = gf.logLevel
	}
	if cmd.Flags().Changed("log-json") {
		cfg.Log.JSON = gf.logJSON
	}

	return cfg, nil
}

// logger builds the command logger, tagged with a fresh run id.
func logger(cmd *cobra.Command, cfg config.Config) (*logging.Logger, error) {
	log, err := cfg.Logger(cmd.ErrOrStderr())
	if err != nil {
		return nil, err
	}

	return log.WithRunID(uuid.NewString()), nil
}

// outputFlags are the output flags of commands that write a graph.
type outputFlags struct {
	path     string
	compress string
}

func (of *outputFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&of.path, "output", "o", streamio.StdStream, "output GFA path, - for stdout")
	cmd.Flags().StringVar(&of.compress, "compress", "", "output compression: none, gzip, zstd or lz4 (default from the output extension)")
}

func (of *outputFlags) apply(cmd *cobra.Command, cfg *config.Config) {
	if cmd.Flags().Changed("output") {
		cfg.Output.Path = of.path
	}
	if cmd.Flags().Changed("compress") {
		cfg.Output.Compress = of.compress
	}
}

// writeGraph writes g as GFA to the configured output. Standard output goes
// through the command's writer.
func writeGraph(cmd *cobra.Command, out config.Output, g *core.Graph, opts ...gfa.WriteOption) error {
	codec, err := streamio.ParseCodec(out.Compress)
	if err != nil {
		return err
	}
	if out.Compress == "" && out.Path != streamio.StdStream {
		codec = streamio.CodecForPath(out.Path)
	}
	if out.Path != streamio.StdStream {
		return gfa.WriteFile(out.Path, codec, g, opts...)
	}

	wc, err := streamio.NewWriter(cmd.OutOrStdout(), codec)
	if err != nil {
		return err
	}
	if err := gfa.Write(wc, g, opts...); err != nil {
		_ = wc.Close()
		return err
	}

	return wc.Close()
}
