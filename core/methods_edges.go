// SPDX-License-Identifier: MIT
//
// File: methods_edges.go
// Role: Edge lifecycle & queries: AddEdge/RemoveEdge/HasEdge/Edges/EdgesOf/EdgeCount.
// Determinism:
//   - Edges() and EdgesOf() return canonical edges sorted by (From, To, FromStart, ToEnd).
//
// Concurrency:
//   - Mutations under muNode write lock, queries under muNode read lock.
package core

import (
	"fmt"
	"slices"
)

// AddEdge stores the canonical form of e.
//
// Behavior highlights:
//   - Idempotent: adding an edge, or its flipped reading, twice is a no-op.
//   - Self-loops are allowed; variation graphs use them for tandem repeats.
//
// Errors:
//   - ErrNodeNotFound: either endpoint is absent.
//
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(e Edge) error {
	g.muNode.Lock()
	defer g.muNode.Unlock()

	if _, ok := g.nodes[e.From]; !ok {
		return fmt.Errorf("%w: edge endpoint %d", ErrNodeNotFound, e.From)
	}
	if _, ok := g.nodes[e.To]; !ok {
		return fmt.Errorf("%w: edge endpoint %d", ErrNodeNotFound, e.To)
	}
	c := e.Canonical()
	if _, ok := g.edges[c]; ok {
		return nil
	}
	g.edges[c] = struct{}{}
	g.linkIncident(c.From, c)
	g.linkIncident(c.To, c)

	return nil
}

// RemoveEdge deletes e (in either reading).
//
// Errors:
//   - ErrEdgeNotFound: the edge is absent.
//
// Complexity: O(1).
func (g *Graph) RemoveEdge(e Edge) error {
	g.muNode.Lock()
	defer g.muNode.Unlock()

	c := e.Canonical()
	if _, ok := g.edges[c]; !ok {
		return ErrEdgeNotFound
	}
	g.unlinkEdge(c)

	return nil
}

// HasEdge reports whether e (in either reading) exists.
// Complexity: O(1).
func (g *Graph) HasEdge(e Edge) bool {
	g.muNode.RLock()
	defer g.muNode.RUnlock()
	_, ok := g.edges[e.Canonical()]

	return ok
}

// Edges returns all canonical edges in deterministic order.
// Complexity: O(E log E).
func (g *Graph) Edges() []Edge {
	g.muNode.RLock()
	defer g.muNode.RUnlock()

	out := make([]Edge, 0, len(g.edges))
	for e := range g.edges {
		out = append(out, e)
	}
	sortEdges(out)

	return out
}

// EdgesOf returns the canonical edges incident to node id, sorted.
//
// Errors:
//   - ErrNodeNotFound: id is absent.
//
// Complexity: O(d log d).
func (g *Graph) EdgesOf(id int64) ([]Edge, error) {
	g.muNode.RLock()
	defer g.muNode.RUnlock()

	if _, ok := g.nodes[id]; !ok {
		return nil, fmt.Errorf("%w: %d", ErrNodeNotFound, id)
	}
	out := make([]Edge, 0, len(g.incident[id]))
	for e := range g.incident[id] {
		out = append(out, e)
	}
	sortEdges(out)

	return out, nil
}

// EdgeCount returns the number of canonical edges.
// Complexity: O(1).
func (g *Graph) EdgeCount() int {
	g.muNode.RLock()
	defer g.muNode.RUnlock()

	return len(g.edges)
}

// linkIncident registers e in id's incidence bucket. Caller holds muNode.
func (g *Graph) linkIncident(id int64, e Edge) {
	b, ok := g.incident[id]
	if !ok {
		b = make(map[Edge]struct{})
		g.incident[id] = b
	}
	b[e] = struct{}{}
}

// unlinkEdge removes canonical e from the catalog and both incidence buckets.
// Caller holds muNode.
func (g *Graph) unlinkEdge(e Edge) {
	delete(g.edges, e)
	for _, id := range [2]int64{e.From, e.To} {
		if b, ok := g.incident[id]; ok {
			delete(b, e)
			if len(b) == 0 {
				delete(g.incident, id)
			}
		}
	}
}

func sortEdges(es []Edge) {
	slices.SortFunc(es, func(a, b Edge) int {
		switch {
		case edgeLess(a, b):
			return -1
		case edgeLess(b, a):
			return 1
		default:
			return 0
		}
	})
}
