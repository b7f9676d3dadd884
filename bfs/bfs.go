// SPDX-License-Identifier: MIT
package bfs

import (
	"context"
	"fmt"
	"slices"

	"github.com/katalvlaran/varigraph/core"
)

// queueItem pairs a node id with its depth.
type queueItem struct {
	id    int64
	depth int
}

// walker encapsulates mutable BFS state.
type walker struct {
	graph   *core.Graph
	opts    BFSOptions
	ctx     context.Context
	queue   []queueItem
	visited map[int64]bool
	res     *BFSResult
}

// BFS runs breadth-first search on g from every root at depth 0.
// Duplicate roots are visited once.
func BFS(g *core.Graph, roots []int64, opts ...Option) (*BFSResult, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if len(roots) == 0 {
		return nil, ErrNoRoots
	}
	for _, r := range roots {
		if !g.HasNode(r) {
			return nil, fmt.Errorf("%w: %d", ErrRootNotFound, r)
		}
	}

	w := &walker{
		graph:   g,
		opts:    o,
		ctx:     o.Ctx,
		visited: make(map[int64]bool),
		res: &BFSResult{
			Depth:  make(map[int64]int),
			Parent: make(map[int64]int64),
		},
	}
	for _, r := range roots {
		if !w.visited[r] {
			w.enqueue(r, 0, 0)
		}
	}

	return w.res, w.loop()
}

// enqueue marks id visited at depth d and queues it. parent 0 means root.
func (w *walker) enqueue(id int64, d int, parent int64) {
	w.visited[id] = true
	w.res.Depth[id] = d
	if parent != 0 {
		w.res.Parent[id] = parent
	}
	w.opts.OnEnqueue(id, d)
	w.queue = append(w.queue, queueItem{id: id, depth: d})
}

func (w *walker) loop() error {
	for len(w.queue) > 0 {
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}

		item := w.queue[0]
		w.queue = w.queue[1:]
		w.opts.OnDequeue(item.id, item.depth)

		w.res.Order = append(w.res.Order, item.id)
		if err := w.opts.OnVisit(item.id, item.depth); err != nil {
			return fmt.Errorf("bfs: OnVisit error at %d: %w", item.id, err)
		}
		if err := w.enqueueNeighbors(item); err != nil {
			return err
		}
	}

	return nil
}

func (w *walker) enqueueNeighbors(item queueItem) error {
	next := item.depth + 1
	if w.opts.MaxDepth > 0 && next > w.opts.MaxDepth {
		return nil
	}
	nbrs, err := neighbors(w.graph, item.id)
	if err != nil {
		return err
	}
	for _, nbr := range nbrs {
		if w.visited[nbr] || !w.opts.FilterNeighbor(item.id, nbr) {
			continue
		}
		w.enqueue(nbr, next, item.id)
	}

	return nil
}

// neighbors returns the distinct nodes sharing an edge with id, ascending.
func neighbors(g *core.Graph, id int64) ([]int64, error) {
	es, err := g.EdgesOf(id)
	if err != nil {
		return nil, fmt.Errorf("bfs: neighbors of %d: %w", id, err)
	}
	out := make([]int64, 0, len(es))
	for _, e := range es {
		other := e.To
		if other == id {
			other = e.From
		}
		if other != id {
			out = append(out, other)
		}
	}
	slices.Sort(out)

	return slices.Compact(out), nil
}
