// SPDX-License-Identifier: MIT
package dfs

import (
	"cmp"
	"slices"

	"github.com/katalvlaran/varigraph/core"
)

// successors returns the distinct heads of arcs leaving id, ascending.
func successors(g *core.Graph, id int64) ([]int64, error) {
	es, err := g.EdgesOf(id)
	if err != nil {
		return nil, err
	}
	out := make([]int64, 0, len(es))
	for _, e := range es {
		if e.From == id {
			out = append(out, e.To)
		}
	}
	slices.Sort(out)

	return slices.Compact(out), nil
}

// arcsFrom returns the stored edges leaving id, ordered by head.
func arcsFrom(g *core.Graph, id int64) ([]core.Edge, error) {
	es, err := g.EdgesOf(id)
	if err != nil {
		return nil, err
	}
	out := es[:0]
	for _, e := range es {
		if e.From == id {
			out = append(out, e)
		}
	}
	slices.SortStableFunc(out, func(a, b core.Edge) int { return cmp.Compare(a.To, b.To) })

	return out, nil
}

// MinimalRotation returns the lexicographically minimal rotation of s using
// Booth's algorithm. Time O(n).
func MinimalRotation[T cmp.Ordered](s []T) []T {
	n := len(s)
	if n == 0 {
		return nil
	}
	doubled := append(slices.Clone(s), s...)
	f := make([]int, 2*n)
	for i := range f {
		f[i] = -1
	}
	k := 0
	for j := 1; j < 2*n; j++ {
		i := f[j-k-1]
		for i != -1 && doubled[j] != doubled[k+i+1] {
			if doubled[j] < doubled[k+i+1] {
				k = j - i - 1
			}
			i = f[i]
		}
		if doubled[j] != doubled[k+i+1] {
			if doubled[j] < doubled[k] {
				k = j
			}
			f[j-k] = -1
		} else {
			f[j-k] = i + 1
		}
	}

	return slices.Clone(doubled[k : k+n])
}
