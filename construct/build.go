// SPDX-License-Identifier: MIT
package construct

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/katalvlaran/varigraph/core"
	"github.com/katalvlaran/varigraph/streamio"
	"github.com/katalvlaran/varigraph/vcf"
)

// RecordSource yields VCF records until io.EOF. *vcf.Reader implements it.
type RecordSource interface {
	Next() (*vcf.Record, error)
}

// Build lays out every reference sequence of ref, in file order, with the
// records of src on that contig. A nil src builds a linear graph. Records on
// contigs absent from ref are counted as skipped.
func Build(ref io.Reader, src RecordSource, opts ...Option) (*core.Graph, error) {
	seqs, err := ReadFASTA(ref)
	if err != nil {
		return nil, err
	}

	byContig := make(map[string][]*vcf.Record, len(seqs))
	for _, s := range seqs {
		byContig[s.Name] = nil
	}
	cfg := newConfig(opts...)
	if src != nil {
		ctx := context.Background()
		warned := make(map[string]bool)
		for {
			rec, err := src.Next()
			if errors.Is(err, io.EOF) {
				break
			}
			if err != nil {
				return nil, err
			}
			if _, ok := byContig[rec.Chrom]; !ok {
				cfg.stats.RecordsRead++
				cfg.stats.RecordsSkipped++
				if !warned[rec.Chrom] {
					warned[rec.Chrom] = true
					cfg.logger.WarnContext(ctx, "records on a contig missing from the reference are skipped",
						"chrom", rec.Chrom)
				}
				continue
			}
			byContig[rec.Chrom] = append(byContig[rec.Chrom], rec)
		}
	}

	cons := make([]Constructor, 0, len(seqs))
	for _, s := range seqs {
		cons = append(cons, Contig(s.Name, s.Seq, byContig[s.Name]))
	}

	// cfg carries the stats pointer the caller may have supplied.
	opts = append(opts, WithStats(cfg.stats), WithLogger(cfg.logger))

	return BuildGraph(nil, opts, cons...)
}

// BuildFiles is Build over a possibly compressed FASTA file and an optional
// VCF file (empty path for none).
func BuildFiles(fastaPath, vcfPath string, opts ...Option) (*core.Graph, error) {
	ref, err := streamio.Open(fastaPath)
	if err != nil {
		return nil, err
	}
	defer ref.Close()

	var src RecordSource
	if vcfPath != "" {
		rd, err := vcf.Open(vcfPath)
		if err != nil {
			return nil, err
		}
		defer rd.Close()
		src = rd
	}

	g, err := Build(ref, src, opts...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", fastaPath, err)
	}

	return g, nil
}
