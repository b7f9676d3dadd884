// SPDX-License-Identifier: MIT
package sample

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/katalvlaran/varigraph/allele"
)

// Report summarizes one extraction.
type Report struct {
	RunID  string
	Sample string

	RecordsRead     int
	RecordsSkipped  int
	RecordsResolved int
	Variants        int // distinct variant ids resolved
	AllelePaths     int // allele paths indexed before pruning

	CandidateNodes     int
	NodesRemoved       int
	PathsRemoved       int // paths removed while pruning, any kind
	AllelePathsRetired int // surviving allele paths removed afterwards
}

// Extract reduces g in place to the subgraph supported by one sample's
// genotypes read from src.
//
// The whole source is resolved before g is touched; any error from that phase
// leaves g unmodified. Unless WithKeepAllelePaths is given, allele paths left
// after pruning are removed too.
func Extract(g Graph, src VariantSource, opts ...Option) (*Report, error) {
	o := newOptions(opts)
	rep := &Report{RunID: uuid.NewString()}
	log := o.logger.WithRunID(rep.RunID)
	ctx := context.Background()

	r, err := newResolver(src, o)
	if err != nil {
		log.LogExtraction(ctx, 0, 0, 0, err)
		return nil, err
	}
	rep.Sample = r.Sample()
	log = log.WithSample(rep.Sample)
	r.log = log

	idx, err := BuildIndex(g)
	if err != nil {
		log.LogExtraction(ctx, 0, 0, 0, err)
		return nil, err
	}
	rep.AllelePaths = idx.Len()
	log.DebugContext(ctx, "allele paths indexed",
		"paths", idx.Len(),
		"variants", idx.Variants(),
		"nodes", idx.NodeCount(),
	)

	usage, err := r.Resolve(idx)
	st := r.Stats()
	rep.RecordsRead, rep.RecordsSkipped, rep.RecordsResolved = st.Read, st.Skipped, st.Resolved
	if err != nil {
		log.LogExtraction(ctx, 0, 0, 0, err)
		return nil, err
	}
	rep.Variants = len(usage)

	cs := Candidates(idx, usage)
	rep.CandidateNodes = cs.Len()

	ps, err := Prune(g, cs)
	rep.NodesRemoved, rep.PathsRemoved = ps.Nodes, ps.Paths
	if err != nil {
		log.LogExtraction(ctx, rep.CandidateNodes, ps.Nodes, ps.Paths, err)
		return rep, err
	}

	if !o.keepAllelePaths {
		for _, name := range g.PathNames() {
			if _, ok := allele.Parse(name); !ok {
				continue
			}
			if err := g.RemovePath(name); err != nil {
				return rep, fmt.Errorf("sample: retire %q: %w", name, err)
			}
			rep.AllelePathsRetired++
		}
	}

	log.LogExtraction(ctx, rep.CandidateNodes, rep.NodesRemoved, rep.PathsRemoved, nil)

	return rep, nil
}
