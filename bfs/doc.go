// SPDX-License-Identifier: MIT

// Package bfs provides breadth-first search over a variation graph and the
// context-expanded subgraph built on it.
//
// What
//
//   - BFS explores nodes in non-decreasing edge distance from one or more
//     roots. Edges are followed from either side, regardless of strand, so
//     distance counts edges between nodes.
//   - BFSResult holds the visit Order, Depth from the nearest root and
//     Parent links of the BFS forest.
//   - Subgraph copies the nodes within a number of steps of the roots, the
//     edges among them and the paths lying entirely inside them.
//
// Determinism
//
//	Roots are seeded in the given order and neighbors are enqueued in
//	ascending id, so the visit sequence is reproducible.
//
// Complexity (V = nodes, E = edges)
//
//   - Time:   O(V + E)
//   - Memory: O(V)
//
// Options
//
//   - WithContext(ctx):        cancellation.
//   - WithMaxDepth(d):         stop exploring beyond depth d (>0); 0 means no limit.
//   - WithFilterNeighbor(fn):  skip neighbors for which fn(curr, nbr) is false.
//   - WithOnEnqueue(fn), WithOnDequeue(fn), WithOnVisit(fn): hooks.
//
// Errors
//
//   - ErrGraphNil          the graph pointer is nil.
//   - ErrNoRoots           no root was given.
//   - ErrRootNotFound      a root does not exist.
//   - ErrOptionViolation   an invalid option, such as a negative depth.
//   - Wrapped hook errors from OnVisit.
package bfs
