// SPDX-License-Identifier: MIT
//
// File: methods_clone.go
// Role: Deep copies and empty copies of a Graph.
// Concurrency:
//   - Read locks for snapshotting; the source graph is never mutated.
package core

import "slices"

// CloneEmpty returns a new Graph holding copies of the nodes only: no edges and
// no paths.
// Complexity: O(V).
func (g *Graph) CloneEmpty() *Graph {
	g.muNode.RLock()
	defer g.muNode.RUnlock()

	clone := NewGraph(WithNodeCapacity(len(g.nodes)))
	for id, n := range g.nodes {
		clone.nodes[id] = &Node{ID: n.ID, Sequence: n.Sequence}
	}

	return clone
}

// Clone returns a deep copy of nodes, edges and paths.
// Complexity: O(V + E + total path steps).
func (g *Graph) Clone() *Graph {
	clone := g.CloneEmpty()

	g.muNode.RLock()
	defer g.muNode.RUnlock()
	for e := range g.edges {
		clone.edges[e] = struct{}{}
		clone.linkIncident(e.From, e)
		clone.linkIncident(e.To, e)
	}

	g.muPath.RLock()
	defer g.muPath.RUnlock()
	for name, p := range g.paths {
		cp := &Path{Name: name, Steps: slices.Clone(p.Steps)}
		clone.paths[name] = cp
		for _, s := range cp.Steps {
			clone.markOnPath(s.NodeID, name)
		}
	}

	return clone
}
