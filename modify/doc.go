// SPDX-License-Identifier: MIT

// Package modify applies the graph operations of the mod command in their
// fixed order.
//
// Order of application:
//
//  1. The retained path set is resolved (its complement with RetainComplement)
//     against the input graph.
//  2. Sample extraction against SampleVCF (package sample).
//  3. KeepPath: keep one path and the nodes it visits.
//  4. Retained paths: remove every other path.
//  5. DropPaths: remove every path.
//  6. RemoveNonPath: remove nodes no path visits.
//  7. Sort: compute a topological node order for output.
//  8. BreakCycles: remove back edges.
//  9. Subgraph: replace the graph with the context around the given roots.
//  10. DestroyNode: remove one node, with every path through it.
package modify
