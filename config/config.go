// SPDX-License-Identifier: MIT

// Package config holds the YAML configuration of the varigraph commands.
//
// A file only needs the keys it changes; Load starts from Default and
// validates the result. Command-line flags are applied on top by the CLI.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/varigraph/construct"
	"github.com/katalvlaran/varigraph/logging"
	"github.com/katalvlaran/varigraph/modify"
	"github.com/katalvlaran/varigraph/streamio"
)

// ErrInvalid wraps every validation failure.
var ErrInvalid = errors.New("config: invalid")

// Config is the root of a configuration file.
type Config struct {
	Mod       Mod       `yaml:"mod"`
	Construct Construct `yaml:"construct"`
	Output    Output    `yaml:"output"`
	Log       Log       `yaml:"log"`
}

// Mod mirrors the flags of the mod command.
type Mod struct {
	SampleVCF        string   `yaml:"sample_vcf"`
	Sample           string   `yaml:"sample"`
	KeepAllelePaths  bool     `yaml:"keep_allele_paths"`
	KeepPath         string   `yaml:"keep_path"`
	RetainPaths      []string `yaml:"retain_paths" validate:"required_if=RetainComplement true,dive,required"`
	RetainComplement bool     `yaml:"retain_complement"`
	DropPaths        bool     `yaml:"drop_paths"`
	RemoveNonPath    bool     `yaml:"remove_non_path"`
	Sort             bool     `yaml:"sort"`
	BreakCycles      bool     `yaml:"break_cycles"`
	Subgraph         []int64  `yaml:"subgraph" validate:"dive,gt=0"`
	Context          int      `yaml:"context" validate:"gte=0"`
	DestroyNode      int64    `yaml:"destroy_node" validate:"gte=0"`
}

// Construct mirrors the flags of the construct command.
type Construct struct {
	Reference     string `yaml:"reference"`
	Variants      string `yaml:"variants"`
	AltPaths      bool   `yaml:"alt_paths"`
	MaxNodeLength int    `yaml:"max_node_length" validate:"gte=1"`
	IDStart       int64  `yaml:"id_start" validate:"gte=1"`
}

// Output selects where and how graphs are written.
type Output struct {
	Path     string `yaml:"path"`
	Compress string `yaml:"compress" validate:"codec"`
}

// Log configures the CLI logger.
type Log struct {
	Level string `yaml:"level" validate:"loglevel"`
	JSON  bool   `yaml:"json"`
}

var validate *validator.Validate

func init() {
	validate = validator.New()
	_ = validate.RegisterValidation("codec", func(fl validator.FieldLevel) bool {
		_, err := streamio.ParseCodec(fl.Field().String())
		return err == nil
	})
	_ = validate.RegisterValidation("loglevel", func(fl validator.FieldLevel) bool {
		_, err := logging.ParseLevel(fl.Field().String())
		return err == nil
	})
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		Construct: Construct{MaxNodeLength: construct.DefaultMaxNodeLength, IDStart: 1},
		Output:    Output{Path: streamio.StdStream},
		Log:       Log{Level: "info"},
	}
}

// Load reads the YAML file at path over Default and validates it.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}

	return Parse(data)
}

// Parse decodes YAML over Default and validates it. Unknown keys are errors.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("config: decode: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Validate checks field constraints.
func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}

	return nil
}

// ModifyOptions converts the mod section. The logger is left to the caller.
func (c Config) ModifyOptions() modify.Options {
	m := c.Mod
	return modify.Options{
		SampleVCF:        m.SampleVCF,
		Sample:           m.Sample,
		KeepAllelePaths:  m.KeepAllelePaths,
		KeepPath:         m.KeepPath,
		RetainPaths:      m.RetainPaths,
		RetainComplement: m.RetainComplement,
		DropPaths:        m.DropPaths,
		RemoveNonPath:    m.RemoveNonPath,
		Sort:             m.Sort,
		BreakCycles:      m.BreakCycles,
		Subgraph:         m.Subgraph,
		Context:          m.Context,
		DestroyNode:      m.DestroyNode,
	}
}

// ConstructOptions converts the construct section. Call it on a validated
// Config; the construct options panic on out-of-range values.
func (c Config) ConstructOptions() []construct.Option {
	opts := []construct.Option{
		construct.WithMaxNodeLength(c.Construct.MaxNodeLength),
		construct.WithIDStart(c.Construct.IDStart),
	}
	if c.Construct.AltPaths {
		opts = append(opts, construct.WithAltPaths())
	}

	return opts
}

// Logger builds the logger described by the log section, writing to w.
func (c Config) Logger(w io.Writer) (*logging.Logger, error) {
	lvl, err := logging.ParseLevel(c.Log.Level)
	if err != nil {
		return nil, err
	}
	if c.Log.JSON {
		return logging.NewJSON(w, lvl), nil
	}

	return logging.NewText(w, lvl), nil
}
