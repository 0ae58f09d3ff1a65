// Package core_test validates the graph substrate: vertex identity,
// insertion-ordered adjacency, the variant-specific degree rules, and the
// incremental vertex/edge counters.
package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mkravets/grapho/core"
)

func TestID_MixedTypesCollide(t *testing.T) {
	// Integer 0 and string "0" must name the same vertex by design.
	assert.Equal(t, core.ID(0), core.ID("0"))
	assert.Equal(t, core.ID(int64(42)), core.ID("42"))
	assert.Equal(t, core.ID(core.VertexID("x")), core.ID("x"))
}

func TestAddVertex_DuplicateFails(t *testing.T) {
	g := core.New()
	require.NoError(t, g.AddVertex("A"))
	assert.ErrorIs(t, g.AddVertex("A"), core.ErrDuplicateVertex)
	assert.Equal(t, 1, g.VertexCount())
}

func TestAddEdge_AutoVivifiesEndpoints(t *testing.T) {
	g := core.New()
	g.AddEdge("A", "B")

	assert.True(t, g.HasVertex("A"))
	assert.True(t, g.HasVertex("B"))
	assert.Equal(t, 2, g.VertexCount())
	assert.Equal(t, 1, g.EdgeCount())

	// Every adjacency target must itself be a key in the mapping.
	for _, e := range g.Edges() {
		assert.True(t, g.HasVertex(e.V1))
		assert.True(t, g.HasVertex(e.V2))
	}
}

func TestAdjacent_UnknownVertexFails(t *testing.T) {
	g := core.New()
	g.AddEdge("A", "B")

	_, err := g.Adjacent("Z")
	assert.ErrorIs(t, err, core.ErrVertexNotFound)
}

func TestAdjacent_InsertionOrderIsTheContract(t *testing.T) {
	g := core.New(core.WithDirected(true))
	g.AddEdge("A", "C")
	g.AddEdge("A", "B")
	g.AddEdge("A", "D")

	edges, err := g.Adjacent("A")
	require.NoError(t, err)

	got := make([]core.VertexID, 0, len(edges))
	for _, e := range edges {
		got = append(got, e.To())
	}
	assert.Equal(t, []core.VertexID{"C", "B", "D"}, got)

	// Vertex iteration follows insertion order too.
	assert.Equal(t, []core.VertexID{"A", "C", "B", "D"}, g.Vertices())
}

func TestAddEdge_ParallelEdgesPreserved(t *testing.T) {
	g := core.New()
	g.AddEdge("A", "B")
	g.AddEdge("A", "B")

	assert.Equal(t, 2, g.EdgeCount())
	edges, err := g.Adjacent("A")
	require.NoError(t, err)
	assert.Len(t, edges, 2)
}

func TestUndirected_SelfLoopRecordedTwice(t *testing.T) {
	g := core.New()
	g.AddEdge("A", "A")

	edges, err := g.Adjacent("A")
	require.NoError(t, err)
	assert.Len(t, edges, 2, "undirected self-loop appends twice to the owner's list")

	d, err := g.Degree("A")
	require.NoError(t, err)
	assert.Equal(t, 2, d)
	assert.Equal(t, 1, g.SelfLoopCount(), "raw entries are halved")
	assert.Equal(t, 1, g.EdgeCount())
}

func TestDirected_SelfLoopRecordedOnce(t *testing.T) {
	g := core.New(core.WithDirected(true))
	g.AddEdge("A", "A")

	edges, err := g.Adjacent("A")
	require.NoError(t, err)
	assert.Len(t, edges, 1)
	assert.Equal(t, 1, g.SelfLoopCount(), "directed count is not halved")
}

func TestUndirected_SharedEdgeIdentity(t *testing.T) {
	g := core.New(core.WithWeighted())
	g.AddWeightedEdge("A", "B", 7)

	fromA, err := g.Adjacent("A")
	require.NoError(t, err)
	fromB, err := g.Adjacent("B")
	require.NoError(t, err)

	require.Len(t, fromA, 1)
	require.Len(t, fromB, 1)
	assert.Same(t, fromA[0], fromB[0], "both endpoints hold the same record")
	assert.Equal(t, core.VertexID("A"), fromB[0].Other("B"))
	assert.Equal(t, core.VertexID("B"), fromA[0].Other("A"))
}

func TestDirected_EdgeOnlyInSourceList(t *testing.T) {
	g := core.New(core.WithDirected(true))
	g.AddEdge("A", "B")

	fromB, err := g.Adjacent("B")
	require.NoError(t, err)
	assert.Empty(t, fromB)
	assert.True(t, g.HasEdge("A", "B"))
	assert.False(t, g.HasEdge("B", "A"))
}

func TestDegreeSumInvariant_Undirected(t *testing.T) {
	// For all undirected graphs: sum(degree) == 2 * edgeCount.
	g := core.New()
	g.AddEdge("A", "B")
	g.AddEdge("B", "C")
	g.AddEdge("C", "A")
	g.AddEdge("C", "C") // self-loop contributes 2 to its owner's degree
	g.AddEdge("A", "B") // parallel edge

	sum := 0
	for _, v := range g.Vertices() {
		d, err := g.Degree(v)
		require.NoError(t, err)
		sum += d
	}
	assert.Equal(t, 2*g.EdgeCount(), sum)
}

func TestDegreeSumInvariant_Directed(t *testing.T) {
	// For all directed graphs: sum(out) == sum(in) == edgeCount.
	g := core.New(core.WithDirected(true))
	g.AddEdge("A", "B")
	g.AddEdge("B", "C")
	g.AddEdge("C", "A")
	g.AddEdge("A", "A")

	outSum, inSum := 0, 0
	for _, v := range g.Vertices() {
		out, err := g.OutDegree(v)
		require.NoError(t, err)
		in, err := g.InDegree(v)
		require.NoError(t, err)
		outSum += out
		inSum += in
	}
	assert.Equal(t, g.EdgeCount(), outSum)
	assert.Equal(t, g.EdgeCount(), inSum)
}

func TestAverageDegree(t *testing.T) {
	undirected := core.New()
	undirected.AddEdge("A", "B")
	undirected.AddEdge("B", "C")
	assert.InDelta(t, 2.0*2/3, undirected.AverageDegree(), 1e-12)

	directed := core.New(core.WithDirected(true))
	directed.AddEdge("A", "B")
	directed.AddEdge("B", "C")
	assert.InDelta(t, 2.0/3, directed.AverageDegree(), 1e-12)
}

func TestEmptyGraph_DerivedQueriesReturnZero(t *testing.T) {
	// Boundary: averageDegree/maxDegree on an empty graph are 0, never an error.
	g := core.New()
	assert.Zero(t, g.AverageDegree())
	assert.Zero(t, g.MaxDegree())
	assert.Zero(t, g.SelfLoopCount())
	assert.Zero(t, g.VertexCount())
	assert.Zero(t, g.EdgeCount())
}

func TestMaxDegree(t *testing.T) {
	g := core.New()
	g.AddEdge("hub", "a")
	g.AddEdge("hub", "b")
	g.AddEdge("hub", "c")
	g.AddEdge("a", "b")

	assert.Equal(t, 3, g.MaxDegree())
}

func TestInDegree_ReverseMakesItCheap(t *testing.T) {
	g := core.New(core.WithDirected(true))
	g.AddEdge("A", "C")
	g.AddEdge("B", "C")
	g.AddEdge("C", "A")

	// Scan path, before any Reverse call.
	in, err := g.InDegree("C")
	require.NoError(t, err)
	assert.Equal(t, 2, in)

	rev, err := g.Reverse()
	require.NoError(t, err)
	out, err := rev.OutDegree("C")
	require.NoError(t, err)
	assert.Equal(t, 2, out, "reversed out-degree is the original in-degree")

	// Memoized path must agree with the scan.
	in, err = g.InDegree("C")
	require.NoError(t, err)
	assert.Equal(t, 2, in)

	_, err = g.InDegree("missing")
	assert.ErrorIs(t, err, core.ErrVertexNotFound)
}

func TestReverse_UndirectedRejected(t *testing.T) {
	g := core.New()
	g.AddEdge("A", "B")
	_, err := g.Reverse()
	assert.ErrorIs(t, err, core.ErrUndirectedGraph)
}

func TestReverse_InvalidatedByMutation(t *testing.T) {
	g := core.New(core.WithDirected(true))
	g.AddEdge("A", "B")

	_, err := g.Reverse()
	require.NoError(t, err)

	g.AddEdge("C", "B")
	in, err := g.InDegree("B")
	require.NoError(t, err)
	assert.Equal(t, 2, in, "memo must not survive mutation")
}

func TestNewFromArcs(t *testing.T) {
	g := core.NewFromArcs([]core.Arc{
		{V1: 0, V2: 1},
		{V1: 1, V2: 2},
	})

	assert.Equal(t, 3, g.VertexCount())
	assert.Equal(t, 2, g.EdgeCount())
	assert.True(t, g.HasEdge(core.ID(0), core.ID(1)))
	assert.Equal(t, []core.VertexID{"0", "1", "2"}, g.Vertices())
}

func TestRemoveEdge_DropsParallels(t *testing.T) {
	g := core.New()
	g.AddEdge("A", "B")
	g.AddEdge("A", "B")
	g.AddEdge("B", "C")

	require.NoError(t, g.RemoveEdge("B", "A"))
	assert.False(t, g.HasEdge("A", "B"))
	assert.Equal(t, 1, g.EdgeCount())

	assert.ErrorIs(t, g.RemoveEdge("A", "missing"), core.ErrVertexNotFound)
}

func TestRemoveVertex_DropsIncidentEdges(t *testing.T) {
	g := core.New()
	g.AddEdge("A", "B")
	g.AddEdge("B", "C")
	g.AddEdge("C", "A")

	require.NoError(t, g.RemoveVertex("B"))
	assert.False(t, g.HasVertex("B"))
	assert.Equal(t, 1, g.EdgeCount())
	assert.Equal(t, []core.VertexID{"A", "C"}, g.Vertices())

	assert.ErrorIs(t, g.RemoveVertex("B"), core.ErrVertexNotFound)
}

func TestClone_IsIndependent(t *testing.T) {
	g := core.New(core.WithWeighted())
	g.AddWeightedEdge("A", "B", 1)
	g.AddWeightedEdge("B", "C", 2)

	clone := g.Clone()
	clone.AddWeightedEdge("C", "D", 3)

	assert.Equal(t, 2, g.EdgeCount())
	assert.Equal(t, 3, clone.EdgeCount())
	assert.Equal(t, g.Vertices(), clone.Vertices()[:3])
	assert.True(t, clone.Weighted())
}

func TestClear_PreservesFlags(t *testing.T) {
	g := core.New(core.WithDirected(true), core.WithWeighted())
	g.AddWeightedEdge("A", "B", 5)

	g.Clear()
	assert.Zero(t, g.VertexCount())
	assert.Zero(t, g.EdgeCount())
	assert.True(t, g.Directed())
	assert.True(t, g.Weighted())
}

func TestQueries_Idempotent(t *testing.T) {
	g := core.New()
	g.AddEdge("A", "B")
	g.AddEdge("A", "A")

	first, err := g.Degree("A")
	require.NoError(t, err)
	second, err := g.Degree("A")
	require.NoError(t, err)
	assert.Equal(t, first, second)
	assert.Equal(t, g.SelfLoopCount(), g.SelfLoopCount())
	assert.Equal(t, g.Vertices(), g.Vertices())
}
