// SPDX-License-Identifier: MIT
package sample

import (
	"fmt"
	"sort"

	"github.com/RoaringBitmap/roaring/v2/roaring64"

	"github.com/katalvlaran/varigraph/allele"
	"github.com/katalvlaran/varigraph/core"
)

// Graph is the part of a variation graph extraction reads and mutates.
// *core.Graph implements it.
type Graph interface {
	PathNames() []string
	Path(name string) ([]core.Step, error)
	RemovePath(name string) error
	PathsOfNode(id int64) []string
	DestroyNode(id int64) error
}

// allelePath is one indexed allele path.
type allelePath struct {
	key   allele.Key
	nodes *roaring64.Bitmap
}

// Index maps allele paths to the nodes they visit.
// It is read-only once built.
type Index struct {
	paths    map[string]allelePath // keyed by exact path name
	all      *roaring64.Bitmap
	variants map[string]struct{}
}

// BuildIndex scans every path of g and indexes those named as allele paths.
// Other paths are ignored.
func BuildIndex(g Graph) (*Index, error) {
	idx := &Index{
		paths:    make(map[string]allelePath),
		all:      roaring64.New(),
		variants: make(map[string]struct{}),
	}
	for _, name := range g.PathNames() {
		key, ok := allele.Parse(name)
		if !ok {
			continue
		}
		steps, err := g.Path(name)
		if err != nil {
			return nil, fmt.Errorf("sample: index %q: %w", name, err)
		}
		nodes := roaring64.New()
		for _, s := range steps {
			nodes.Add(uint64(s.NodeID))
		}
		idx.paths[name] = allelePath{key: key, nodes: nodes}
		idx.all.Or(nodes)
		idx.variants[key.VariantID] = struct{}{}
	}

	return idx, nil
}

// HasReference reports whether the graph has the allele-0 path of variantID.
func (idx *Index) HasReference(variantID string) bool {
	_, ok := idx.paths[allele.Name(variantID, 0)]
	return ok
}

// Nodes returns the ascending node ids of the allele path for variantID and
// allele index a, and whether that path exists.
func (idx *Index) Nodes(variantID string, a int) ([]int64, bool) {
	p, ok := idx.paths[allele.Name(variantID, a)]
	if !ok {
		return nil, false
	}

	return toIDs(p.nodes), true
}

// Paths returns the indexed path names in sorted order.
func (idx *Index) Paths() []string {
	names := make([]string, 0, len(idx.paths))
	for name := range idx.paths {
		names = append(names, name)
	}
	sort.Strings(names)

	return names
}

// Len returns the number of indexed allele paths.
func (idx *Index) Len() int { return len(idx.paths) }

// Variants returns the number of distinct variant ids among indexed paths.
func (idx *Index) Variants() int { return len(idx.variants) }

// NodeCount returns the number of distinct nodes on any allele path.
func (idx *Index) NodeCount() int { return int(idx.all.GetCardinality()) }

func toIDs(b *roaring64.Bitmap) []int64 {
	ids := make([]int64, 0, b.GetCardinality())
	it := b.Iterator()
	for it.HasNext() {
		ids = append(ids, int64(it.Next()))
	}

	return ids
}
