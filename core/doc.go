// SPDX-License-Identifier: MIT

// Package core provides a thread-safe in-memory variation graph: sequence-labeled
// nodes, side-aware edges between node ends, and named paths that walk the graph.
//
// The Graph G = (V, E, P) is the shared entity every other varigraph package
// operates on:
//
//   - Nodes carry a positive int64 identifier and a DNA sequence label.
//   - Edges connect node sides. Edge{From, FromStart, To, ToEnd} leaves From
//     (from its start when FromStart) and enters To (at its end when ToEnd).
//     An edge and its reverse-complement reading are the same edge; the graph
//     stores the Canonical() form only.
//   - Paths are ordered Step sequences bound to a unique name. A node→path
//     membership index makes PathsOfNode O(k log k) instead of a full scan.
//
// Invariants:
//
//   - Every path step references an existing node. AddPath and AppendStep reject
//     unknown nodes, and DestroyNode refuses a node that paths still visit
//     (ErrNodeOnPath). Callers that discard a node remove its paths first.
//   - Every edge references existing nodes; DestroyNode removes incident edges.
//
// Core Methods:
//
//	// Node lifecycle
//	AddNode(id int64, seq string) error     // O(1)
//	HasNode(id int64) bool                  // O(1)
//	Node(id int64) (Node, error)            // O(1)
//	DestroyNode(id int64) error             // O(deg(v))
//	NodeIDs() []int64                       // O(V log V), ascending
//
//	// Edge lifecycle
//	AddEdge(e Edge) error                   // O(1)
//	RemoveEdge(e Edge) error                // O(1)
//	HasEdge(e Edge) bool                    // O(1)
//	Edges() []Edge                          // O(E log E)
//	EdgesOf(id int64) ([]Edge, error)       // O(d log d)
//
//	// Paths
//	AddPath(name string, steps ...Step) error
//	AppendStep(name string, s Step) error
//	Path(name string) ([]Step, error)
//	RemovePath(name string) error
//	PathNames() []string                    // sorted
//	PathsOfNode(id int64) []string          // sorted
//	KeepPaths(keep map[string]bool) int
//	ClearPaths() int
//
// Concurrency:
//
// muNode guards nodes, edges and the incidence index; muPath guards paths and
// the membership index. Methods that need both acquire muNode before muPath.
package core
