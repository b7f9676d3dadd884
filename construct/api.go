// SPDX-License-Identifier: MIT
//
// api.go — public entry points for the construct package.
//
// Contract:
//   - One orchestrator: BuildGraph(gopts, opts, cons...). Creates g, resolves
//     the config, runs cons in order.
//   - Determinism: equal inputs and constructor order give identical graphs,
//     node ids included.

package construct

import (
	"context"
	"fmt"
	"strings"

	"github.com/katalvlaran/varigraph/allele"
	"github.com/katalvlaran/varigraph/core"
	"github.com/katalvlaran/varigraph/vcf"
)

// Constructor applies one deterministic mutation to g using the resolved
// config.
type Constructor func(g *core.Graph, cfg config) error

// BuildGraph creates a graph with gopts, resolves opts and applies every
// constructor in order. The first constructor error is returned wrapped; the
// partial graph is discarded.
func BuildGraph(gopts []core.GraphOption, opts []Option, cons ...Constructor) (*core.Graph, error) {
	g := core.NewGraph(gopts...)
	cfg := newConfig(opts...)
	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("construct: nil constructor at index %d", i)
		}
		if err := fn(g, cfg); err != nil {
			return nil, fmt.Errorf("construct: %w", err)
		}
	}

	return g, nil
}

// Contig lays out one reference sequence with its variant records, which
// must be sorted by position. Records on another chromosome, and unusable
// records, are counted as skipped.
func Contig(name, seq string, recs []*vcf.Record) Constructor {
	return func(g *core.Graph, cfg config) error {
		if name == "" || seq == "" {
			return fmt.Errorf("%w: %q", ErrEmptyContig, name)
		}
		if err := g.AddPath(name); err != nil {
			return err
		}
		l := &layout{g: g, cfg: cfg, ref: name, next: max(g.MaxNodeID()+1, cfg.idStart)}
		if err := l.contig(strings.ToUpper(seq), recs); err != nil {
			return fmt.Errorf("contig %s: %w", name, err)
		}
		cfg.stats.Contigs++
		cfg.stats.ReferenceLength += len(seq)

		return nil
	}
}

// layout walks one contig and allocates its nodes.
type layout struct {
	g     *core.Graph
	cfg   config
	ref   string
	next  int64
	tails []int64 // node ends the next chain attaches to
}

func (l *layout) contig(seq string, recs []*vcf.Record) error {
	ctx := context.Background()
	st := l.cfg.stats
	var cursor int64
	lastPos := int64(-1)

	for _, rec := range recs {
		st.RecordsRead++
		switch {
		case rec.Chrom != l.ref:
			st.RecordsSkipped++
			l.cfg.logger.LogSkippedRecord(ctx, rec.Chrom, rec.Pos, "not on contig "+l.ref)
			continue
		case !rec.IsVariable():
			st.RecordsSkipped++
			l.cfg.logger.LogSkippedRecord(ctx, rec.Chrom, rec.Pos, "fewer than two alleles")
			continue
		case !rec.IsSimpleDNA():
			st.RecordsSkipped++
			l.cfg.logger.LogSkippedRecord(ctx, rec.Chrom, rec.Pos, "allele outside ACGT")
			continue
		}

		p, end := rec.Pos0(), rec.End0()
		if p < lastPos {
			return fmt.Errorf("%w: %s:%d after %d", ErrUnsortedVariants, rec.Chrom, rec.Pos, lastPos+1)
		}
		lastPos = p
		if p < cursor {
			return fmt.Errorf("%w: %s:%d starts before %d", ErrOverlappingVariants, rec.Chrom, rec.Pos, cursor+1)
		}
		if end > int64(len(seq)) || seq[p:end] != rec.Ref {
			return fmt.Errorf("%w: %s:%d REF %s", ErrReferenceMismatch, rec.Chrom, rec.Pos, rec.Ref)
		}

		if p > cursor {
			if err := l.reference(seq[cursor:p]); err != nil {
				return err
			}
		}
		if err := l.bubble(rec); err != nil {
			return err
		}
		cursor = end
		st.Variants++
	}

	if cursor < int64(len(seq)) {
		return l.reference(seq[cursor:])
	}

	return nil
}

// reference appends a reference-only stretch.
func (l *layout) reference(seq string) error {
	ids, err := l.chain(seq)
	if err != nil {
		return err
	}
	if err := l.extendRef(ids); err != nil {
		return err
	}
	l.tails = ids[len(ids)-1:]

	return nil
}

// bubble adds one branch per allele of rec, reference first.
func (l *layout) bubble(rec *vcf.Record) error {
	vid := rec.VariantID()
	var tails []int64
	for i, a := range rec.Alleles() {
		ids, err := l.chain(a)
		if err != nil {
			return err
		}
		if i == 0 {
			if err := l.extendRef(ids); err != nil {
				return err
			}
		}
		if l.cfg.altPaths {
			if err := l.g.AddPath(allele.Name(vid, i), forward(ids)...); err != nil {
				return fmt.Errorf("variant %s: %w", vid, err)
			}
			l.cfg.stats.AllelePaths++
		}
		tails = append(tails, ids[len(ids)-1])
	}
	l.tails = tails

	return nil
}

// chain adds seq as nodes of at most maxNodeLen bases, links them in order
// and attaches the first one to the current tails.
func (l *layout) chain(seq string) ([]int64, error) {
	n := l.cfg.maxNodeLen
	ids := make([]int64, 0, (len(seq)+n-1)/n)
	for off := 0; off < len(seq); off += n {
		id := l.next
		l.next++
		if err := l.g.AddNode(id, seq[off:min(off+n, len(seq))]); err != nil {
			return nil, err
		}
		if len(ids) > 0 {
			if err := l.g.AddEdge(core.Edge{From: ids[len(ids)-1], To: id}); err != nil {
				return nil, err
			}
		}
		ids = append(ids, id)
	}
	for _, t := range l.tails {
		if err := l.g.AddEdge(core.Edge{From: t, To: ids[0]}); err != nil {
			return nil, err
		}
	}

	return ids, nil
}

func (l *layout) extendRef(ids []int64) error {
	for _, id := range ids {
		if err := l.g.AppendStep(l.ref, core.Step{NodeID: id}); err != nil {
			return err
		}
	}

	return nil
}

func forward(ids []int64) []core.Step {
	out := make([]core.Step, len(ids))
	for i, id := range ids {
		out[i] = core.Step{NodeID: id}
	}

	return out
}
