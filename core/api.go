// SPDX-License-Identifier: MIT
//
// File: api.go
// Role: Read-only summaries over a Graph.
// Policy:
//   - No mutation here.
//   - Locks are taken phase by phase, never both at once.
package core

// GraphStats is a point-in-time summary of a Graph.
type GraphStats struct {
	NodeCount      int
	EdgeCount      int
	PathCount      int
	SequenceLength int // total bases over all node labels
	PathSteps      int // total steps over all paths
}

// Stats produces a deterministic snapshot of catalog sizes.
//
// Implementation:
//   - Stage 1: Under muNode read lock, count nodes, edges and bases.
//   - Stage 2: Under muPath read lock, count paths and steps.
//
// Complexity:
//   - Time O(V + P), Space O(1).
func (g *Graph) Stats() GraphStats {
	var st GraphStats

	g.muNode.RLock()
	st.NodeCount = len(g.nodes)
	st.EdgeCount = len(g.edges)
	for _, n := range g.nodes {
		st.SequenceLength += len(n.Sequence)
	}
	g.muNode.RUnlock()

	g.muPath.RLock()
	st.PathCount = len(g.paths)
	for _, p := range g.paths {
		st.PathSteps += len(p.Steps)
	}
	g.muPath.RUnlock()

	return st
}

// RemoveNonPathNodes destroys every node no path visits, with its edges, and
// returns the number of nodes removed.
// Complexity: O(V + E).
func (g *Graph) RemoveNonPathNodes() int {
	g.muNode.Lock()
	defer g.muNode.Unlock()
	g.muPath.RLock()
	defer g.muPath.RUnlock()

	removed := 0
	for id := range g.nodes {
		if len(g.onPath[id]) > 0 {
			continue
		}
		for e := range g.incident[id] {
			g.unlinkEdge(e)
		}
		delete(g.incident, id)
		delete(g.nodes, id)
		removed++
	}

	return removed
}
