// SPDX-License-Identifier: MIT
package sample

import (
	"context"
	"errors"
	"io"
	"slices"

	"github.com/katalvlaran/varigraph/logging"
	"github.com/katalvlaran/varigraph/vcf"
)

// VariantSource is an ordered, single-pass stream of variant records.
// Next returns io.EOF after the last record. *vcf.Reader implements it.
type VariantSource interface {
	Samples() []string
	Next() (*vcf.Record, error)
}

// Usage maps a variant id to the sorted distinct allele indices the sample
// calls there.
type Usage map[string][]int

func (u Usage) add(variantID string, alleles []int) {
	merged := append(u[variantID], alleles...)
	slices.Sort(merged)
	u[variantID] = slices.Compact(merged)
}

// ResolveStats counts the records a Resolver consumed.
type ResolveStats struct {
	Read     int
	Skipped  int
	Resolved int
}

// Resolver turns one sample's genotype calls into a Usage.
type Resolver struct {
	src    VariantSource
	sample string
	log    *logging.Logger
	stats  ResolveStats
}

// NewResolver selects the sample to resolve. Without WithSample the source
// must carry exactly one sample. Any other selection problem is a
// *ConfigurationError.
func NewResolver(src VariantSource, opts ...Option) (*Resolver, error) {
	return newResolver(src, newOptions(opts))
}

func newResolver(src VariantSource, o options) (*Resolver, error) {
	samples := src.Samples()
	name := o.sample
	switch {
	case len(samples) == 0:
		return nil, &ConfigurationError{Requested: name}
	case name == "" && len(samples) > 1:
		return nil, &ConfigurationError{Samples: samples}
	case name == "":
		name = samples[0]
	case !slices.Contains(samples, name):
		return nil, &ConfigurationError{Samples: samples, Requested: name}
	}

	return &Resolver{src: src, sample: name, log: o.logger}, nil
}

// Sample returns the selected sample name.
func (r *Resolver) Sample() string { return r.sample }

// Stats returns the record counters so far.
func (r *Resolver) Stats() ResolveStats { return r.stats }

// Resolve consumes the source to the end and returns the alleles used per
// variant. Records with fewer than two alleles, or with an allele spelled
// outside A, C, G and T, are skipped. A usable record whose variant has no
// allele-0 path in idx is a *ConsistencyError; an unparseable genotype is a
// *MalformedGenotypeError. A record without a GT field for the sample is a
// missing call.
func (r *Resolver) Resolve(idx *Index) (Usage, error) {
	ctx := context.Background()
	usage := make(Usage)
	for {
		rec, err := r.src.Next()
		if errors.Is(err, io.EOF) {
			return usage, nil
		}
		if err != nil {
			return nil, err
		}
		r.stats.Read++

		if reason := skipReason(rec); reason != "" {
			r.stats.Skipped++
			r.log.LogSkippedRecord(ctx, rec.Chrom, rec.Pos, reason)
			continue
		}

		vid := rec.VariantID()
		if !idx.HasReference(vid) {
			return nil, &ConsistencyError{VariantID: vid, Chrom: rec.Chrom, Pos: rec.Pos}
		}

		gt, _ := rec.Genotype(r.sample)
		alleles, err := ParseGenotype(gt, len(rec.Alt))
		if err != nil {
			var mg *MalformedGenotypeError
			if errors.As(err, &mg) {
				mg.VariantID, mg.Chrom, mg.Pos = vid, rec.Chrom, rec.Pos
			}
			return nil, err
		}
		usage.add(vid, alleles)
		r.stats.Resolved++
	}
}

func skipReason(rec *vcf.Record) string {
	switch {
	case !rec.IsVariable():
		return "fewer than two alleles"
	case !rec.IsSimpleDNA():
		return "allele outside ACGT"
	default:
		return ""
	}
}
