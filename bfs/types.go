// SPDX-License-Identifier: MIT
package bfs

import (
	"context"
	"errors"
	"fmt"
	"slices"
)

// Sentinel errors for BFS execution.
var (
	// ErrRootNotFound is returned when a root id is absent.
	ErrRootNotFound = errors.New("bfs: root node not found")

	// ErrNoRoots is returned when BFS is called without roots.
	ErrNoRoots = errors.New("bfs: no root nodes")

	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("bfs: graph is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")
)

// Option configures BFS. An invalid Option is recorded and surfaced as
// ErrOptionViolation when BFS runs.
type Option func(*BFSOptions)

// BFSOptions holds parameters and callbacks for one BFS run.
type BFSOptions struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context

	// OnEnqueue runs when a node is enqueued.
	OnEnqueue func(id int64, depth int)

	// OnDequeue runs immediately before a node is visited.
	OnDequeue func(id int64, depth int)

	// OnVisit runs when a node is visited. An error aborts BFS.
	OnVisit func(id int64, depth int) error

	// MaxDepth, if > 0, stops exploring beyond this depth; 0 means no limit.
	MaxDepth int

	// FilterNeighbor skips the step curr→neighbor when it returns false.
	FilterNeighbor func(curr, neighbor int64) bool

	err error
}

// DefaultOptions returns Background context, no-op hooks, no depth limit and
// no filtering.
func DefaultOptions() BFSOptions {
	return BFSOptions{
		Ctx:            context.Background(),
		OnEnqueue:      func(int64, int) {},
		OnDequeue:      func(int64, int) {},
		OnVisit:        func(int64, int) error { return nil },
		FilterNeighbor: func(_, _ int64) bool { return true },
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *BFSOptions) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnEnqueue registers a callback to run on enqueue.
func WithOnEnqueue(fn func(id int64, depth int)) Option {
	return func(o *BFSOptions) {
		if fn != nil {
			o.OnEnqueue = fn
		}
	}
}

// WithOnDequeue registers a callback to run on dequeue.
func WithOnDequeue(fn func(id int64, depth int)) Option {
	return func(o *BFSOptions) {
		if fn != nil {
			o.OnDequeue = fn
		}
	}
}

// WithOnVisit registers a callback to run on visit; an error stops BFS.
func WithOnVisit(fn func(id int64, depth int) error) Option {
	return func(o *BFSOptions) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithMaxDepth stops the search beyond depth d.
//
//	d > 0: limit to depth d
//	d == 0: explicit no depth limit
//	d < 0: invalid option → ErrOptionViolation
func WithMaxDepth(d int) Option {
	return func(o *BFSOptions) {
		if d < 0 {
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
			return
		}
		o.MaxDepth = d
	}
}

// WithFilterNeighbor skips neighbors when fn returns false.
func WithFilterNeighbor(fn func(curr, neighbor int64) bool) Option {
	return func(o *BFSOptions) {
		if fn != nil {
			o.FilterNeighbor = fn
		}
	}
}

// BFSResult holds the outcome of a BFS traversal.
type BFSResult struct {
	Order  []int64
	Depth  map[int64]int
	Parent map[int64]int64
}

// PathTo reconstructs the node sequence from the nearest root to dest.
func (r *BFSResult) PathTo(dest int64) ([]int64, error) {
	if _, ok := r.Depth[dest]; !ok {
		return nil, fmt.Errorf("bfs: no path to %d", dest)
	}
	path := []int64{dest}
	for cur := dest; ; {
		prev, ok := r.Parent[cur]
		if !ok {
			break
		}
		path = append(path, prev)
		cur = prev
	}
	slices.Reverse(path)

	return path, nil
}
