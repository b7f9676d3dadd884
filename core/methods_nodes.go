// SPDX-License-Identifier: MIT
//
// File: methods_nodes.go
// Role: Node lifecycle & queries.
//
// Determinism:
//   - NodeIDs() returns ids sorted ascending.
//
// Concurrency:
//   - Node catalog, edges and incidence protected by muNode.
//   - DestroyNode reads the path membership index under muPath (lock order muNode -> muPath).
package core

import (
	"fmt"
	"slices"
)

// AddNode inserts a node with the given sequence label.
//
// Behavior highlights:
//   - Idempotent when the node already exists with the same sequence.
//   - Re-adding an id with a different sequence is rejected; labels are immutable.
//
// Errors:
//   - ErrInvalidNodeID: id <= 0.
//   - ErrNodeExists: id present with another sequence.
//
// Complexity:
//   - Time O(1) amortized, Space O(1).
func (g *Graph) AddNode(id int64, seq string) error {
	if id <= 0 {
		return ErrInvalidNodeID
	}

	g.muNode.Lock()
	defer g.muNode.Unlock()

	if n, ok := g.nodes[id]; ok {
		if n.Sequence != seq {
			return fmt.Errorf("%w: %d", ErrNodeExists, id)
		}

		return nil
	}
	g.nodes[id] = &Node{ID: id, Sequence: seq}

	return nil
}

// HasNode reports whether the node id exists.
// Complexity: O(1).
func (g *Graph) HasNode(id int64) bool {
	g.muNode.RLock()
	defer g.muNode.RUnlock()
	_, ok := g.nodes[id]

	return ok
}

// Node returns a copy of the node record.
//
// Errors:
//   - ErrNodeNotFound: id is absent.
//
// Complexity: O(1).
func (g *Graph) Node(id int64) (Node, error) {
	g.muNode.RLock()
	defer g.muNode.RUnlock()
	n, ok := g.nodes[id]
	if !ok {
		return Node{}, fmt.Errorf("%w: %d", ErrNodeNotFound, id)
	}

	return *n, nil
}

// DestroyNode deletes a node and every edge incident to it.
//
// Implementation:
//   - Stage 1: Under muNode write lock, verify presence.
//   - Stage 2: Under muPath read lock, refuse when any path still visits the node.
//   - Stage 3: Drop incident edges from the edge catalog and from the other endpoint's
//     incidence bucket, then drop the node.
//
// Errors:
//   - ErrNodeNotFound: id is absent.
//   - ErrNodeOnPath: at least one path visits the node; remove those paths first.
//
// Complexity:
//   - Time O(deg(v)), Space O(1).
func (g *Graph) DestroyNode(id int64) error {
	g.muNode.Lock()
	defer g.muNode.Unlock()

	if _, ok := g.nodes[id]; !ok {
		return fmt.Errorf("%w: %d", ErrNodeNotFound, id)
	}

	g.muPath.RLock()
	visits := len(g.onPath[id])
	g.muPath.RUnlock()
	if visits > 0 {
		return fmt.Errorf("%w: node %d on %d path(s)", ErrNodeOnPath, id, visits)
	}

	for e := range g.incident[id] {
		g.unlinkEdge(e)
	}
	delete(g.incident, id)
	delete(g.nodes, id)

	return nil
}

// NodeIDs returns all node ids in ascending order.
// Complexity: O(V log V) time, O(V) space.
func (g *Graph) NodeIDs() []int64 {
	g.muNode.RLock()
	defer g.muNode.RUnlock()

	ids := make([]int64, 0, len(g.nodes))
	for id := range g.nodes {
		ids = append(ids, id)
	}
	slices.Sort(ids)

	return ids
}

// NodeCount returns the number of nodes.
// Complexity: O(1).
func (g *Graph) NodeCount() int {
	g.muNode.RLock()
	defer g.muNode.RUnlock()

	return len(g.nodes)
}

// MaxNodeID returns the largest node id, or 0 for an empty graph.
// Complexity: O(V).
func (g *Graph) MaxNodeID() int64 {
	g.muNode.RLock()
	defer g.muNode.RUnlock()

	var hi int64
	for id := range g.nodes {
		if id > hi {
			hi = id
		}
	}

	return hi
}
