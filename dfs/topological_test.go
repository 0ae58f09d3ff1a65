// Package dfs_test: topological ordering in DFS finish order.
package dfs_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mkravets/grapho/core"
	"github.com/mkravets/grapho/dfs"
)

func TestTopologicalSort_FinishOrderIsDeterministic(t *testing.T) {
	// DAG:  0 → 7        1 → 2 → 4
	//       0 → 1        1 → 3 → 5
	g := core.NewFromArcs([]core.Arc{
		{V1: 0, V2: 7},
		{V1: 0, V2: 1},
		{V1: 1, V2: 2},
		{V1: 2, V2: 4},
		{V1: 1, V2: 3},
		{V1: 3, V2: 5},
	}, core.WithDirected(true))

	order, err := dfs.TopologicalSort(g)
	require.NoError(t, err)

	// Finish order: every sink is emitted before anything pointing at it.
	want := []core.VertexID{"7", "4", "2", "5", "3", "1", "0"}
	if diff := cmp.Diff(want, order); diff != "" {
		t.Errorf("finish order mismatch (-want +got):\n%s", diff)
	}
}

func TestTopologicalSort_EveryEdgeSourceFinishesLater(t *testing.T) {
	// The positional property, checked edge by edge: for u→v, u is
	// emitted after v.
	g := core.New(core.WithDirected(true))
	g.AddEdge("shirt", "tie")
	g.AddEdge("tie", "jacket")
	g.AddEdge("shirt", "belt")
	g.AddEdge("belt", "jacket")
	g.AddEdge("pants", "belt")
	g.AddEdge("pants", "shoes")
	g.AddEdge("socks", "shoes")

	order, err := dfs.TopologicalSort(g)
	require.NoError(t, err)
	require.Len(t, order, g.VertexCount())

	pos := make(map[core.VertexID]int, len(order))
	for i, v := range order {
		pos[v] = i
	}
	for _, e := range g.Edges() {
		assert.Greater(t, pos[e.From()], pos[e.To()],
			"%s→%s: the source must finish after its target", e.From(), e.To())
	}
}

func TestTopologicalSort_CycleRejected(t *testing.T) {
	g := core.New(core.WithDirected(true))
	g.AddEdge("A", "B")
	g.AddEdge("B", "C")
	g.AddEdge("C", "A")

	_, err := dfs.TopologicalSort(g)
	assert.ErrorIs(t, err, dfs.ErrCycleDetected)
}

func TestTopologicalSort_CoversAllComponents(t *testing.T) {
	g := core.New(core.WithDirected(true))
	g.AddEdge("a", "b")
	g.AddEdge("x", "y")
	require.NoError(t, g.AddVertex("lone"))

	order, err := dfs.TopologicalSort(g)
	require.NoError(t, err)
	assert.Len(t, order, 5)
}

func TestTopologicalSort_UndirectedRejected(t *testing.T) {
	g := core.New()
	g.AddEdge("A", "B")
	_, err := dfs.TopologicalSort(g)
	assert.ErrorIs(t, err, core.ErrUndirectedGraph)
}

func TestTopologicalSort_NilGraph(t *testing.T) {
	_, err := dfs.TopologicalSort(nil)
	assert.ErrorIs(t, err, dfs.ErrGraphNil)
}

func TestTopologicalSort_EmptyDirectedGraph(t *testing.T) {
	g := core.New(core.WithDirected(true))
	order, err := dfs.TopologicalSort(g)
	require.NoError(t, err)
	assert.Empty(t, order)
}
