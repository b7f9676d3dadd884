// SPDX-License-Identifier: MIT

// Package dfs implements depth-first search, cycle detection, cycle breaking
// and topological ordering on a variation graph.
//
// Direction: core stores every edge in canonical form, and dfs reads each
// stored edge as the arc From→To. For forward-strand edges this is the
// reading direction of the reference; a self-loop is a cycle of length one.
//
// What:
//
//   - DFS: explores as far as possible along each branch before
//     backtracking. Supports pre- and post-order hooks, cancellation via
//     context.Context, depth limiting, neighbor filtering and forest mode.
//   - DetectCycles: reports the cycles closed by DFS back arcs, each in
//     canonical rotation.
//   - BackEdges / BreakCycles: the stored edges whose removal leaves the arc
//     graph acyclic, and their removal (the mod command's break-cycles).
//   - TopologicalSort: a node order in which every arc points forward,
//     returning ErrCycleDetected unless WithAllowCycles is given (the mod
//     command's sort).
//
// Determinism: DFS, DetectCycles and BackEdges try roots and successors in
// ascending node id; TopologicalSort prefers lower ids. Equal graphs give
// equal results.
//
// Complexity:
//
//   - DFS, BackEdges, BreakCycles, TopologicalSort: Time O(V+E), Memory O(V)
//   - DetectCycles: Time O(V+E + C·L), Memory O(V + L_max)
//
// Errors:
//
//   - ErrGraphNil             graph pointer is nil
//   - ErrStartNodeNotFound    start node id not in graph
//   - ErrCycleDetected        cycle found by TopologicalSort
//   - context.Canceled        traversal canceled via context
//   - hook errors             propagated from OnVisit or OnExit
package dfs
