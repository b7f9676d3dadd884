// SPDX-License-Identifier: MIT
package modify

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/varigraph/bfs"
	"github.com/katalvlaran/varigraph/core"
	"github.com/katalvlaran/varigraph/dfs"
	"github.com/katalvlaran/varigraph/logging"
	"github.com/katalvlaran/varigraph/sample"
	"github.com/katalvlaran/varigraph/vcf"
)

// ErrNothingToRetain indicates RetainComplement without any retained path
// names.
var ErrNothingToRetain = errors.New("modify: retain-complement needs at least one retain-path")

// Options selects the operations to apply. The zero value changes nothing.
type Options struct {
	// SampleVCF is the VCF whose sample genotypes drive extraction.
	SampleVCF string
	// Variants, when set, replaces SampleVCF as the genotype source.
	Variants sample.VariantSource
	// Sample selects the sample in a multi-sample source.
	Sample string
	// KeepAllelePaths keeps allele paths that survive extraction.
	KeepAllelePaths bool

	KeepPath         string
	RetainPaths      []string
	RetainComplement bool
	DropPaths        bool
	RemoveNonPath    bool
	Sort             bool
	BreakCycles      bool

	// Subgraph roots; Context is the number of steps around them (at least 1).
	Subgraph []int64
	Context  int

	DestroyNode int64

	Logger *logging.Logger
}

// Result is the outcome of Apply.
type Result struct {
	// Graph is the modified graph: the input graph, or a new one when
	// Subgraph was applied.
	Graph *core.Graph
	// Order is the node order for output, set by Sort.
	Order []int64
	// Extraction is the sample extraction report, set by SampleVCF/Variants.
	Extraction *sample.Report
	// BrokenEdges counts edges removed by BreakCycles.
	BrokenEdges int
}

// Apply runs the selected operations on g in order. On error the graph may
// be partially modified, except that sample extraction failures leave it
// untouched.
func Apply(g *core.Graph, opts Options) (*Result, error) {
	log := opts.Logger
	if log == nil {
		log = logging.Noop()
	}
	ctx := context.Background()
	res := &Result{Graph: g}

	var retain map[string]bool
	if len(opts.RetainPaths) > 0 || opts.RetainComplement {
		if opts.RetainComplement && len(opts.RetainPaths) == 0 {
			return nil, ErrNothingToRetain
		}
		retain = retainSet(g, opts.RetainPaths, opts.RetainComplement)
	}

	if opts.SampleVCF != "" || opts.Variants != nil {
		rep, err := extract(g, opts, log)
		log.LogOperation(ctx, "sample-vcf", nodesRemoved(rep), err)
		if err != nil {
			return nil, err
		}
		res.Extraction = rep
	}

	if opts.KeepPath != "" {
		if !g.HasPath(opts.KeepPath) {
			return nil, fmt.Errorf("modify: keep-path: %w: %q", core.ErrPathNotFound, opts.KeepPath)
		}
		n := g.KeepPaths(map[string]bool{opts.KeepPath: true})
		n += g.RemoveNonPathNodes()
		log.LogOperation(ctx, "keep-path", n, nil)
	}

	if retain != nil {
		log.LogOperation(ctx, "retain-paths", g.KeepPaths(retain), nil)
	}

	if opts.DropPaths {
		log.LogOperation(ctx, "drop-paths", g.ClearPaths(), nil)
	}

	if opts.RemoveNonPath {
		log.LogOperation(ctx, "remove-non-path", g.RemoveNonPathNodes(), nil)
	}

	if opts.Sort {
		order, err := dfs.TopologicalSort(g, dfs.WithAllowCycles())
		log.LogOperation(ctx, "sort", len(order), err)
		if err != nil {
			return nil, err
		}
		res.Order = order
	}

	if opts.BreakCycles {
		n, err := dfs.BreakCycles(g)
		log.LogOperation(ctx, "break-cycles", n, err)
		if err != nil {
			return nil, err
		}
		res.BrokenEdges = n
	}

	if len(opts.Subgraph) > 0 {
		sub, err := bfs.Subgraph(g, opts.Subgraph, max(opts.Context, 1))
		if err != nil {
			log.LogOperation(ctx, "subgraph", 0, err)
			return nil, fmt.Errorf("modify: subgraph: %w", err)
		}
		log.LogOperation(ctx, "subgraph", g.NodeCount()-sub.NodeCount(), nil)
		g = sub
		res.Graph = sub
	}

	if opts.DestroyNode > 0 {
		n, err := destroy(g, opts.DestroyNode)
		log.LogOperation(ctx, "destroy-node", n, err)
		if err != nil {
			return nil, err
		}
	}

	return res, nil
}

func retainSet(g *core.Graph, names []string, complement bool) map[string]bool {
	named := make(map[string]bool, len(names))
	for _, n := range names {
		named[n] = true
	}
	if !complement {
		return named
	}
	out := make(map[string]bool)
	for _, n := range g.PathNames() {
		if !named[n] {
			out[n] = true
		}
	}

	return out
}

func extract(g *core.Graph, opts Options, log *logging.Logger) (*sample.Report, error) {
	src := opts.Variants
	if src == nil {
		rd, err := vcf.Open(opts.SampleVCF)
		if err != nil {
			return nil, err
		}
		defer rd.Close()
		src = rd
	}
	sopts := []sample.Option{sample.WithLogger(log), sample.WithSample(opts.Sample)}
	if opts.KeepAllelePaths {
		sopts = append(sopts, sample.WithKeepAllelePaths())
	}

	return sample.Extract(g, src, sopts...)
}

// destroy removes every path through id, then id itself. It returns the
// number of paths removed.
func destroy(g *core.Graph, id int64) (int, error) {
	if !g.HasNode(id) {
		return 0, fmt.Errorf("modify: destroy-node: %w: %d", core.ErrNodeNotFound, id)
	}
	n := 0
	for _, name := range g.PathsOfNode(id) {
		if err := g.RemovePath(name); err != nil {
			return n, err
		}
		n++
	}

	return n, g.DestroyNode(id)
}

func nodesRemoved(rep *sample.Report) int {
	if rep == nil {
		return 0
	}

	return rep.NodesRemoved
}
