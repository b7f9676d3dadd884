// SPDX-License-Identifier: MIT
package sample

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/varigraph/allele"
)

// Sentinels matched with errors.Is against the typed errors below.
var (
	// ErrConfiguration indicates an unusable sample selection.
	ErrConfiguration = errors.New("sample: unsupported configuration")

	// ErrConsistency indicates the graph and the variant source do not match.
	ErrConsistency = errors.New("sample: graph and variants are inconsistent")

	// ErrMalformedGenotype indicates a genotype that cannot be resolved.
	ErrMalformedGenotype = errors.New("sample: malformed genotype")
)

// ConfigurationError reports a sample selection the resolver cannot honor.
type ConfigurationError struct {
	Samples   []string // samples present in the source
	Requested string   // selected sample, empty when none was selected
}

func (e *ConfigurationError) Error() string {
	switch {
	case len(e.Samples) == 0:
		return "sample: variant source has no samples"
	case e.Requested == "":
		return fmt.Sprintf("sample: variant source has %d samples and none was selected", len(e.Samples))
	default:
		return fmt.Sprintf("sample: %q is not among the %d samples of the variant source", e.Requested, len(e.Samples))
	}
}

func (e *ConfigurationError) Unwrap() error { return ErrConfiguration }

// ConsistencyError reports a usable variant without a reference allele path.
type ConsistencyError struct {
	VariantID string
	Chrom     string
	Pos       int64 // 1-based
}

func (e *ConsistencyError) Error() string {
	return fmt.Sprintf("sample: variant %s at %s:%d has no path %s in the graph",
		e.VariantID, e.Chrom, e.Pos, allele.Name(e.VariantID, 0))
}

func (e *ConsistencyError) Unwrap() error { return ErrConsistency }

// MalformedGenotypeError reports a genotype token that is neither "." nor an
// allele index of the variant.
type MalformedGenotypeError struct {
	VariantID string
	Chrom     string
	Pos       int64 // 1-based, zero when parsed outside a record
	Genotype  string
	Token     string
	Reason    string
}

func (e *MalformedGenotypeError) Error() string {
	where := ""
	if e.VariantID != "" {
		where = fmt.Sprintf(" for variant %s at %s:%d", e.VariantID, e.Chrom, e.Pos)
	}

	return fmt.Sprintf("sample: genotype %q%s: token %q %s", e.Genotype, where, e.Token, e.Reason)
}

func (e *MalformedGenotypeError) Unwrap() error { return ErrMalformedGenotype }
