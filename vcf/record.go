// SPDX-License-Identifier: MIT
package vcf

import (
	"strings"

	"github.com/katalvlaran/varigraph/allele"
)

// Missing is the VCF placeholder for an absent value.
const Missing = "."

// GenotypeKey is the FORMAT key of the genotype field.
const GenotypeKey = "GT"

// Record is one VCF data line.
type Record struct {
	Chrom  string
	Pos    int64 // 1-based
	ID     string
	Ref    string
	Alt    []string // empty when the ALT column is "."
	Qual   string
	Filter string
	Info   string
	Format []string

	samples []string // raw per-sample columns, header order
	index   map[string]int
}

// Pos0 returns the 0-based position.
func (r *Record) Pos0() int64 { return r.Pos - 1 }

// End0 returns the 0-based exclusive end of the reference allele.
func (r *Record) End0() int64 { return r.Pos0() + int64(len(r.Ref)) }

// Alleles returns the reference followed by the alternates.
func (r *Record) Alleles() []string {
	out := make([]string, 0, 1+len(r.Alt))
	out = append(out, r.Ref)

	return append(out, r.Alt...)
}

// IsVariable reports whether the record has at least two alleles.
func (r *Record) IsVariable() bool { return 1+len(r.Alt) >= 2 }

// IsSimpleDNA reports whether every allele is spelled with A, C, G and T only.
// Symbolic alleles (<DEL>), breakends, spanning deletions (*), IUPAC codes and
// lower-case bases all fail.
func (r *Record) IsSimpleDNA() bool {
	if !allACGT(r.Ref) {
		return false
	}
	for _, a := range r.Alt {
		if !allACGT(a) {
			return false
		}
	}

	return true
}

// Site returns the fields allele.VariantID derives an id from, with the
// position already converted to 0-based.
func (r *Record) Site() allele.Site {
	return allele.Site{Chrom: r.Chrom, Pos0: r.Pos0(), ID: r.ID, Ref: r.Ref, Alt: r.Alt}
}

// VariantID is shorthand for allele.VariantID(r.Site()).
func (r *Record) VariantID() string { return allele.VariantID(r.Site()) }

// Field returns the value of FORMAT key for the named sample. ok is false when
// the sample is unknown or the key is absent from FORMAT. Trailing fields
// dropped by the writer (as VCF allows) read as Missing.
func (r *Record) Field(sample, key string) (string, bool) {
	i, ok := r.index[sample]
	if !ok || i >= len(r.samples) {
		return "", false
	}
	k := -1
	for j, f := range r.Format {
		if f == key {
			k = j
			break
		}
	}
	if k < 0 {
		return "", false
	}
	col := r.samples[i]
	for j := 0; j < k; j++ {
		cut := strings.IndexByte(col, ':')
		if cut < 0 {
			return Missing, true
		}
		col = col[cut+1:]
	}
	if cut := strings.IndexByte(col, ':'); cut >= 0 {
		col = col[:cut]
	}

	return col, true
}

// Genotype returns the raw GT string of the named sample, for example "0|1",
// "1/1" or "./.". ok is false when the sample or the GT field is absent.
func (r *Record) Genotype(sample string) (string, bool) {
	return r.Field(sample, GenotypeKey)
}

func allACGT(s string) bool {
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case 'A', 'C', 'G', 'T':
		default:
			return false
		}
	}

	return true
}
