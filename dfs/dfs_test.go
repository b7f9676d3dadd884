// SPDX-License-Identifier: MIT
package dfs_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/varigraph/core"
	"github.com/katalvlaran/varigraph/dfs"
)

// graphOf builds a graph on nodes 1..n with forward edges.
func graphOf(t *testing.T, n int64, arcs ...[2]int64) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	for id := int64(1); id <= n; id++ {
		require.NoError(t, g.AddNode(id, "A"))
	}
	for _, a := range arcs {
		require.NoError(t, g.AddEdge(core.Edge{From: a[0], To: a[1]}))
	}

	return g
}

// bubble is 1 → {2,3} → 4.
func bubble(t *testing.T) *core.Graph {
	return graphOf(t, 4, [2]int64{1, 2}, [2]int64{1, 3}, [2]int64{2, 4}, [2]int64{3, 4})
}

func TestDFS_Bubble(t *testing.T) {
	res, err := dfs.DFS(bubble(t), 1)
	require.NoError(t, err)
	assert.Equal(t, []int64{4, 2, 3, 1}, res.Order)
	assert.Equal(t, map[int64]int{1: 0, 2: 1, 4: 2, 3: 1}, res.Depth)
	assert.Equal(t, map[int64]int64{2: 1, 4: 2, 3: 1}, res.Parent)
}

func TestDFS_Errors(t *testing.T) {
	_, err := dfs.DFS(nil, 1)
	assert.ErrorIs(t, err, dfs.ErrGraphNil)

	_, err = dfs.DFS(bubble(t), 9)
	assert.ErrorIs(t, err, dfs.ErrStartNodeNotFound)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = dfs.DFS(bubble(t), 1, dfs.WithContext(ctx))
	assert.ErrorIs(t, err, context.Canceled)

	boom := errors.New("boom")
	res, err := dfs.DFS(bubble(t), 1, dfs.WithOnExit(func(id int64) error {
		if id == 2 {
			return boom
		}
		return nil
	}))
	assert.ErrorIs(t, err, boom)
	assert.Nil(t, res.Order)
}

func TestDFS_Options(t *testing.T) {
	var pre []int64
	res, err := dfs.DFS(bubble(t), 1,
		dfs.WithMaxDepth(1),
		dfs.WithFilterNeighbor(func(id int64) bool { return id != 3 }),
		dfs.WithOnVisit(func(id int64) error { pre = append(pre, id); return nil }),
	)
	require.NoError(t, err)
	assert.Equal(t, []int64{1, 2}, pre)
	assert.Equal(t, 1, res.SkippedNeighbors)
	assert.False(t, res.Visited[4])
}

func TestDFS_FullTraversal(t *testing.T) {
	g := graphOf(t, 5, [2]int64{2, 1}, [2]int64{4, 5})
	res, err := dfs.DFS(g, 0, dfs.WithFullTraversal())
	require.NoError(t, err)
	assert.Equal(t, []int64{1, 2, 3, 5, 4}, res.Order)
	assert.Len(t, res.Visited, 5)
}

func TestTopologicalSort(t *testing.T) {
	order, err := dfs.TopologicalSort(bubble(t))
	require.NoError(t, err)
	assert.Equal(t, []int64{1, 2, 3, 4}, order)

	g := graphOf(t, 4, [2]int64{4, 2}, [2]int64{2, 1})
	order, err = dfs.TopologicalSort(g)
	require.NoError(t, err)
	assert.Equal(t, []int64{3, 4, 2, 1}, order)
	assertForward(t, g, order)
}

func TestTopologicalSort_Cycles(t *testing.T) {
	g := graphOf(t, 3, [2]int64{1, 2}, [2]int64{2, 3}, [2]int64{3, 1})
	_, err := dfs.TopologicalSort(g)
	assert.ErrorIs(t, err, dfs.ErrCycleDetected)

	order, err := dfs.TopologicalSort(g, dfs.WithAllowCycles())
	require.NoError(t, err)
	assert.ElementsMatch(t, []int64{1, 2, 3}, order)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = dfs.TopologicalSort(bubble(t), dfs.WithCancelContext(ctx))
	assert.ErrorIs(t, err, context.Canceled)

	_, err = dfs.TopologicalSort(nil)
	assert.ErrorIs(t, err, dfs.ErrGraphNil)
}

func TestDetectCycles(t *testing.T) {
	ok, cycles, err := dfs.DetectCycles(bubble(t))
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Nil(t, cycles)

	g := graphOf(t, 4, [2]int64{1, 2}, [2]int64{2, 3}, [2]int64{3, 1}, [2]int64{4, 4})
	ok, cycles, err = dfs.DetectCycles(g)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, [][]int64{{1, 2, 3, 1}, {4, 4}}, cycles)
}

func TestBreakCycles(t *testing.T) {
	g := graphOf(t, 4, [2]int64{1, 2}, [2]int64{2, 3}, [2]int64{3, 1}, [2]int64{3, 4}, [2]int64{4, 4})

	back, err := dfs.BackEdges(g)
	require.NoError(t, err)
	assert.Equal(t, []core.Edge{{From: 3, To: 1}, {From: 4, To: 4}}, back)

	n, err := dfs.BreakCycles(g)
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	assert.Equal(t, 3, g.EdgeCount())

	order, err := dfs.TopologicalSort(g)
	require.NoError(t, err)
	assertForward(t, g, order)
}

func TestMinimalRotation(t *testing.T) {
	assert.Equal(t, []int64{1, 5, 3}, dfs.MinimalRotation([]int64{3, 1, 5}))
	assert.Equal(t, []string{"a", "b", "a", "c"}, dfs.MinimalRotation([]string{"a", "c", "a", "b"}))
	assert.Nil(t, dfs.MinimalRotation[int64](nil))
}

func assertForward(t *testing.T, g *core.Graph, order []int64) {
	t.Helper()
	pos := make(map[int64]int, len(order))
	for i, id := range order {
		pos[id] = i
	}
	for _, e := range g.Edges() {
		assert.Less(t, pos[e.From], pos[e.To], "arc %d→%d", e.From, e.To)
	}
}
