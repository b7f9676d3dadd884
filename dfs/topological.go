// SPDX-License-Identifier: MIT
package dfs

import (
	"context"
	"fmt"
	"slices"

	"github.com/katalvlaran/varigraph/core"
)

// TopoOption configures TopologicalSort.
type TopoOption func(*topoOptions)

type topoOptions struct {
	ctx         context.Context
	allowCycles bool
}

func defaultTopoOptions() topoOptions {
	return topoOptions{ctx: context.Background()}
}

// WithCancelContext sets the cancellation context. nil is ignored.
func WithCancelContext(ctx context.Context) TopoOption {
	return func(o *topoOptions) {
		if ctx != nil {
			o.ctx = ctx
		}
	}
}

// WithAllowCycles ignores back arcs instead of failing, so cyclic graphs
// still get an order in which every non-back arc points forward.
func WithAllowCycles() TopoOption {
	return func(o *topoOptions) { o.allowCycles = true }
}

// topoSorter holds state for one sort.
type topoSorter struct {
	graph *core.Graph
	opts  topoOptions
	state map[int64]int
	order []int64
}

// TopologicalSort orders every node of g so that each arc From→To has From
// first, preferring lower ids where arcs leave a choice. A cycle yields ErrCycleDetected
// unless WithAllowCycles is given.
//
// Complexity: Time O(V+E), Memory O(V).
func TopologicalSort(g *core.Graph, options ...TopoOption) ([]int64, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	opts := defaultTopoOptions()
	for _, opt := range options {
		opt(&opts)
	}

	ids := g.NodeIDs()
	t := &topoSorter{
		graph: g,
		opts:  opts,
		state: make(map[int64]int, len(ids)),
		order: make([]int64, 0, len(ids)),
	}
	// Roots and successors are both visited in descending id so the reversed
	// post-order prefers lower ids wherever arcs leave a choice.
	for i := len(ids) - 1; i >= 0; i-- {
		if t.state[ids[i]] == White {
			if err := t.visit(ids[i]); err != nil {
				return nil, err
			}
		}
	}
	slices.Reverse(t.order)

	return t.order, nil
}

func (t *topoSorter) visit(id int64) error {
	select {
	case <-t.opts.ctx.Done():
		return t.opts.ctx.Err()
	default:
	}
	switch t.state[id] {
	case Gray:
		if t.opts.allowCycles {
			return nil
		}
		return fmt.Errorf("%w: at node %d", ErrCycleDetected, id)
	case Black:
		return nil
	}
	t.state[id] = Gray

	next, err := successors(t.graph, id)
	if err != nil {
		return fmt.Errorf("dfs: successors of %d: %w", id, err)
	}
	for i := len(next) - 1; i >= 0; i-- {
		if err := t.visit(next[i]); err != nil {
			return err
		}
	}

	t.state[id] = Black
	t.order = append(t.order, id)

	return nil
}
