// SPDX-License-Identifier: MIT
// Package core_test contains test helpers for varigraph/core.
//
// Purpose:
//   - Provide small, deterministic fixtures for core.Graph.
//   - Keep node ids and sequences out of test bodies (no magic numbers).
package core_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/varigraph/core"
)

// Common node ids used across core tests.
const (
	Node1 int64 = 1
	Node2 int64 = 2
	Node3 int64 = 3
	Node4 int64 = 4
)

// Common path names used across core tests.
const (
	PathRef   = "ref"
	PathAltA  = "_alt_v1_0"
	PathAltB  = "_alt_v1_1"
	PathOther = "other"
)

// forward returns forward steps over ids.
func forward(ids ...int64) []core.Step {
	out := make([]core.Step, len(ids))
	for i, id := range ids {
		out[i] = core.Step{NodeID: id}
	}

	return out
}

// newBubble builds the four-node bubble 1 → {2,3} → 4 with a reference path
// through 2 and one allele path per branch.
//
//	    ┌─ 2 ─┐
//	1 ──┤     ├── 4
//	    └─ 3 ─┘
func newBubble(t *testing.T) *core.Graph {
	t.Helper()

	g := core.NewGraph()
	require.NoError(t, g.AddNode(Node1, "ACG"))
	require.NoError(t, g.AddNode(Node2, "T"))
	require.NoError(t, g.AddNode(Node3, "C"))
	require.NoError(t, g.AddNode(Node4, "GGA"))
	for _, e := range []core.Edge{
		{From: Node1, To: Node2},
		{From: Node1, To: Node3},
		{From: Node2, To: Node4},
		{From: Node3, To: Node4},
	} {
		require.NoError(t, g.AddEdge(e))
	}
	require.NoError(t, g.AddPath(PathRef, forward(Node1, Node2, Node4)...))
	require.NoError(t, g.AddPath(PathAltA, forward(Node2)...))
	require.NoError(t, g.AddPath(PathAltB, forward(Node3)...))

	return g
}
