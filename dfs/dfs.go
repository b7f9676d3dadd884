// SPDX-License-Identifier: MIT
//
// DFS(g, start, opts...): traverse arcs from one root, or the whole graph
// via WithFullTraversal.
//
// Options:
//
//   - WithContext(ctx)          cancellation via context.Context.
//   - WithOnVisit(fn)           pre-order hook; an error aborts traversal.
//   - WithOnExit(fn)            post-order hook; an error aborts traversal.
//   - WithMaxDepth(limit)       stops recursion beyond the given depth.
//   - WithFilterNeighbor(fn)    skips successors for which fn returns false.
//
// Errors:
//
//   - ErrGraphNil, ErrStartNodeNotFound, context errors, hook errors.
package dfs

import (
	"fmt"

	"github.com/katalvlaran/varigraph/core"
)

// dfsWalker holds traversal state.
type dfsWalker struct {
	graph *core.Graph
	opts  DFSOptions
	res   *DFSResult
}

// DFS performs depth-first search on g from start, or over every node when
// WithFullTraversal is set (start is then ignored).
func DFS(g *core.Graph, start int64, opts ...Option) (*DFSResult, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	dopts := DefaultOptions()
	for _, fn := range opts {
		fn(&dopts)
	}
	if !dopts.FullTraversal && !g.HasNode(start) {
		return nil, fmt.Errorf("%w: %d", ErrStartNodeNotFound, start)
	}

	ids := g.NodeIDs()
	res := &DFSResult{
		Order:   make([]int64, 0, len(ids)),
		Depth:   make(map[int64]int, len(ids)),
		Parent:  make(map[int64]int64, len(ids)),
		Visited: make(map[int64]bool, len(ids)),
	}
	w := &dfsWalker{graph: g, opts: dopts, res: res}

	if dopts.FullTraversal {
		for _, v := range ids {
			if !res.Visited[v] {
				if err := w.traverse(v, 0); err != nil {
					return res, err
				}
			}
		}
	} else if err := w.traverse(start, 0); err != nil {
		return res, err
	}
	res.SkippedNeighbors = w.opts.SkippedNeighbors

	return res, nil
}

func (w *dfsWalker) traverse(id int64, depth int) error {
	select {
	case <-w.opts.Ctx.Done():
		return w.opts.Ctx.Err()
	default:
	}
	if w.opts.MaxDepth >= 0 && depth > w.opts.MaxDepth {
		return nil
	}

	w.res.Visited[id] = true
	w.res.Depth[id] = depth
	if w.opts.OnVisit != nil {
		if err := w.opts.OnVisit(id); err != nil {
			w.res.Order = nil
			return fmt.Errorf("dfs: OnVisit hook for %d: %w", id, err)
		}
	}

	next, err := successors(w.graph, id)
	if err != nil {
		w.res.Order = nil
		return fmt.Errorf("dfs: successors of %d: %w", id, err)
	}
	for _, nid := range next {
		if w.opts.FilterNeighbor != nil && !w.opts.FilterNeighbor(nid) {
			w.opts.SkippedNeighbors++
			continue
		}
		if w.res.Visited[nid] {
			continue
		}
		w.res.Parent[nid] = id
		if err := w.traverse(nid, depth+1); err != nil {
			return err
		}
	}

	if w.opts.OnExit != nil {
		if err := w.opts.OnExit(id); err != nil {
			w.res.Order = nil
			return fmt.Errorf("dfs: OnExit hook for %d: %w", id, err)
		}
	}
	w.res.Order = append(w.res.Order, id)

	return nil
}
