// SPDX-License-Identifier: MIT
package dfs

import (
	"context"
	"errors"
)

// Visitation states of a node.
const (
	White = iota // not visited yet
	Gray         // on the recursion stack
	Black        // node and all its descendants explored
)

var (
	// ErrGraphNil is returned when a nil *core.Graph is passed in.
	ErrGraphNil = errors.New("dfs: graph is nil")

	// ErrStartNodeNotFound indicates the start node id does not exist.
	ErrStartNodeNotFound = errors.New("dfs: start node not found")

	// ErrCycleDetected indicates TopologicalSort met a cycle.
	ErrCycleDetected = errors.New("dfs: cycle detected")
)

// Option configures DFS.
type Option func(*DFSOptions)

// DFSOptions holds configurable parameters for DFS traversal.
type DFSOptions struct {
	// Ctx allows cancellation; defaults to context.Background().
	Ctx context.Context

	// OnVisit, if non-nil, runs when a node is discovered (pre-order).
	// Returning an error aborts traversal with that error.
	OnVisit func(id int64) error

	// OnExit, if non-nil, runs after a node's descendants are explored,
	// before it is appended to Order. Returning an error aborts traversal.
	OnExit func(id int64) error

	// MaxDepth, if non-negative, limits recursion depth. 0 visits only the
	// start node. Default -1 (no limit).
	MaxDepth int

	// FilterNeighbor, if non-nil, decides whether to descend into a
	// successor. Skipped successors are counted in SkippedNeighbors.
	FilterNeighbor func(id int64) bool

	// FullTraversal restarts DFS from every unvisited node in ascending id
	// order, covering the whole graph.
	FullTraversal bool

	// SkippedNeighbors counts successors rejected by FilterNeighbor.
	SkippedNeighbors int
}

// DefaultOptions returns Background context, no hooks, no depth limit, no
// filter and single-source traversal.
func DefaultOptions() DFSOptions {
	return DFSOptions{Ctx: context.Background(), MaxDepth: -1}
}

// WithContext sets the cancellation context. nil is ignored.
func WithContext(ctx context.Context) Option {
	return func(o *DFSOptions) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnVisit installs a pre-order hook.
func WithOnVisit(fn func(id int64) error) Option {
	return func(o *DFSOptions) { o.OnVisit = fn }
}

// WithOnExit installs a post-order hook.
func WithOnExit(fn func(id int64) error) Option {
	return func(o *DFSOptions) { o.OnExit = fn }
}

// WithMaxDepth limits traversal depth.
func WithMaxDepth(limit int) Option {
	return func(o *DFSOptions) { o.MaxDepth = limit }
}

// WithFilterNeighbor filters successors; fn(id) == false skips id.
func WithFilterNeighbor(fn func(id int64) bool) Option {
	return func(o *DFSOptions) { o.FilterNeighbor = fn }
}

// WithFullTraversal enables forest traversal over every node.
func WithFullTraversal() Option {
	return func(o *DFSOptions) { o.FullTraversal = true }
}

// DFSResult captures the outcome of a depth-first traversal.
type DFSResult struct {
	// Order lists nodes in finishing (post-) order.
	Order []int64

	// Depth maps each visited node to its arc distance from its tree root.
	Depth map[int64]int

	// Parent maps each non-root visited node to its discoverer.
	Parent map[int64]int64

	// Visited flags every node reached.
	Visited map[int64]bool

	// SkippedNeighbors mirrors DFSOptions.SkippedNeighbors.
	SkippedNeighbors int
}
