// SPDX-License-Identifier: MIT

// Package core defines the variation Graph, Node, Edge, Step and Path types,
// sentinel errors, and the NewGraph constructor.
//
// Errors:
//
//	ErrInvalidNodeID  - node id is not positive.
//	ErrNodeExists     - node already present with a different sequence.
//	ErrNodeNotFound   - requested node does not exist.
//	ErrNodeOnPath     - node cannot be destroyed while paths visit it.
//	ErrEdgeNotFound   - requested edge does not exist.
//	ErrEmptyPathName  - path name is the empty string.
//	ErrPathExists     - a path with that name already exists.
//	ErrPathNotFound   - requested path does not exist.
package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrInvalidNodeID indicates a node id <= 0.
	ErrInvalidNodeID = errors.New("core: node id must be positive")

	// ErrNodeExists indicates AddNode was called for an existing id with a different sequence.
	ErrNodeExists = errors.New("core: node already exists")

	// ErrNodeNotFound indicates an operation referenced a non-existent node.
	ErrNodeNotFound = errors.New("core: node not found")

	// ErrNodeOnPath indicates DestroyNode was called on a node still visited by a path.
	ErrNodeOnPath = errors.New("core: node is visited by a path")

	// ErrEdgeNotFound indicates an operation referenced a non-existent edge.
	ErrEdgeNotFound = errors.New("core: edge not found")

	// ErrEmptyPathName indicates a path name of zero length.
	ErrEmptyPathName = errors.New("core: path name is empty")

	// ErrPathExists indicates AddPath was called with a name already in use.
	ErrPathExists = errors.New("core: path already exists")

	// ErrPathNotFound indicates an operation referenced a non-existent path.
	ErrPathNotFound = errors.New("core: path not found")
)

// Node is a sequence-labeled vertex of the variation graph.
type Node struct {
	// ID is the unique, positive identifier of the node.
	ID int64

	// Sequence is the DNA label read on the forward strand.
	Sequence string
}

// Edge joins two node sides.
//
// Reading left to right, the edge leaves From at its end (or at its start when
// FromStart is set) and enters To at its start (or at its end when ToEnd is set).
type Edge struct {
	From      int64
	FromStart bool
	To        int64
	ToEnd     bool
}

// Flip returns the same edge read on the opposite strand.
func (e Edge) Flip() Edge {
	return Edge{From: e.To, FromStart: !e.ToEnd, To: e.From, ToEnd: !e.FromStart}
}

// Canonical returns the stored form of e.
//
// Forward-forward edges keep their orientation so that From→To stays an arc
// in the reading direction; doubly reversing edges are flipped into that form.
// Edges with exactly one reversing side pick the lexically smaller reading.
func (e Edge) Canonical() Edge {
	switch {
	case !e.FromStart && !e.ToEnd:
		return e
	case e.FromStart && e.ToEnd:
		return e.Flip()
	}
	f := e.Flip()
	if edgeLess(f, e) {
		return f
	}

	return e
}

// edgeLess orders edges by (From, To, FromStart, ToEnd).
func edgeLess(a, b Edge) bool {
	if a.From != b.From {
		return a.From < b.From
	}
	if a.To != b.To {
		return a.To < b.To
	}
	if a.FromStart != b.FromStart {
		return !a.FromStart
	}

	return !a.ToEnd && b.ToEnd
}

// Step is one node traversal of a path.
type Step struct {
	// NodeID is the traversed node.
	NodeID int64

	// Reverse reports traversal of the node's reverse complement.
	Reverse bool
}

// Path is a named, ordered walk through the graph.
type Path struct {
	Name  string
	Steps []Step
}

// GraphOption configures a Graph before first use.
type GraphOption func(g *Graph)

// WithNodeCapacity pre-sizes the node catalog for n nodes.
func WithNodeCapacity(n int) GraphOption {
	return func(g *Graph) {
		if n > 0 {
			g.nodes = make(map[int64]*Node, n)
			g.incident = make(map[int64]map[Edge]struct{}, n)
		}
	}
}

// WithPathCapacity pre-sizes the path catalog for n paths.
func WithPathCapacity(n int) GraphOption {
	return func(g *Graph) {
		if n > 0 {
			g.paths = make(map[string]*Path, n)
		}
	}
}

// Graph is the in-memory variation graph.
//
// muNode guards nodes, edges and incident; muPath guards paths and onPath.
type Graph struct {
	muNode sync.RWMutex
	muPath sync.RWMutex

	nodes    map[int64]*Node
	edges    map[Edge]struct{}           // canonical edges
	incident map[int64]map[Edge]struct{} // node id → canonical edges touching it
	paths    map[string]*Path            // path name → path
	onPath   map[int64]map[string]int    // node id → path name → step count
}

// NewGraph creates an empty Graph.
// Complexity: O(1)
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{
		nodes:    make(map[int64]*Node),
		edges:    make(map[Edge]struct{}),
		incident: make(map[int64]map[Edge]struct{}),
		paths:    make(map[string]*Path),
		onPath:   make(map[int64]map[string]int),
	}
	for _, opt := range opts {
		opt(g)
	}

	return g
}
