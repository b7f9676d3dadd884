// SPDX-License-Identifier: MIT
package bfs

import (
	"github.com/katalvlaran/varigraph/core"
)

// Subgraph returns a new graph with the nodes within steps edges of any root,
// every edge among them, and every path of g whose steps all lie inside.
// steps == 0 keeps only the roots. g is not modified.
func Subgraph(g *core.Graph, roots []int64, steps int, opts ...Option) (*core.Graph, error) {
	if steps < 0 {
		return nil, ErrOptionViolation
	}
	if steps == 0 {
		opts = append(opts, WithFilterNeighbor(func(_, _ int64) bool { return false }))
	} else {
		opts = append(opts, WithMaxDepth(steps))
	}
	res, err := BFS(g, roots, opts...)
	if err != nil {
		return nil, err
	}

	keep := make(map[int64]bool, len(res.Order))
	for _, id := range res.Order {
		keep[id] = true
	}
	sub := core.NewGraph(core.WithNodeCapacity(len(keep)))
	for _, id := range g.NodeIDs() {
		if !keep[id] {
			continue
		}
		n, err := g.Node(id)
		if err != nil {
			return nil, err
		}
		if err := sub.AddNode(n.ID, n.Sequence); err != nil {
			return nil, err
		}
	}
	for _, e := range g.Edges() {
		if keep[e.From] && keep[e.To] {
			if err := sub.AddEdge(e); err != nil {
				return nil, err
			}
		}
	}
	for _, name := range g.PathNames() {
		path, err := g.Path(name)
		if err != nil {
			return nil, err
		}
		if inside(path, keep) {
			if err := sub.AddPath(name, path...); err != nil {
				return nil, err
			}
		}
	}

	return sub, nil
}

func inside(path []core.Step, keep map[int64]bool) bool {
	for _, s := range path {
		if !keep[s.NodeID] {
			return false
		}
	}

	return true
}
