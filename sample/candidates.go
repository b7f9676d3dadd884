// SPDX-License-Identifier: MIT
package sample

import (
	"github.com/RoaringBitmap/roaring/v2/roaring64"

	"github.com/katalvlaran/varigraph/allele"
)

// CandidateSet is the set of node ids considered removable.
type CandidateSet struct {
	bm *roaring64.Bitmap
}

// NewCandidateSet returns an empty set.
func NewCandidateSet() *CandidateSet {
	return &CandidateSet{bm: roaring64.New()}
}

// Seed adds ids to the set.
func (c *CandidateSet) Seed(ids ...int64) {
	for _, id := range ids {
		c.bm.Add(uint64(id))
	}
}

// Release removes ids from the set. Absent ids are ignored.
func (c *CandidateSet) Release(ids ...int64) {
	for _, id := range ids {
		c.bm.Remove(uint64(id))
	}
}

// Contains reports whether id is a candidate.
func (c *CandidateSet) Contains(id int64) bool { return c.bm.Contains(uint64(id)) }

// Len returns the number of candidates.
func (c *CandidateSet) Len() int { return int(c.bm.GetCardinality()) }

// IDs returns the candidates in ascending order.
func (c *CandidateSet) IDs() []int64 { return toIDs(c.bm) }

// Candidates returns every allele-path node of idx that no used allele path
// visits. Used names without a path in idx contribute nothing.
func Candidates(idx *Index, usage Usage) *CandidateSet {
	cs := &CandidateSet{bm: idx.all.Clone()}
	for vid, alleles := range usage {
		for _, a := range alleles {
			if p, ok := idx.paths[allele.Name(vid, a)]; ok {
				cs.bm.AndNot(p.nodes)
			}
		}
	}

	return cs
}
