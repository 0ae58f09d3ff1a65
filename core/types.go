// Package core: central type declarations.
//
// This file declares VertexID, Edge, Graph, GraphOption, the sentinel
// errors, and the constructors.
package core

import (
	"errors"
	"fmt"
)

// Sentinel errors for core graph operations. All of them mark
// precondition violations: they propagate immediately and never carry a
// partial result.
var (
	// ErrDuplicateVertex indicates AddVertex was called with an ID that is
	// already present in the graph.
	ErrDuplicateVertex = errors.New("core: vertex already exists")

	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrEmptyGraph indicates a structural operation was invoked on a graph
	// with no vertices, where no result is possible.
	ErrEmptyGraph = errors.New("core: graph has no vertices")

	// ErrDirectedGraph indicates an undirected-only operation received a
	// directed graph.
	ErrDirectedGraph = errors.New("core: operation requires an undirected graph")

	// ErrUndirectedGraph indicates a directed-only operation received an
	// undirected graph.
	ErrUndirectedGraph = errors.New("core: operation requires a directed graph")

	// ErrUnweightedGraph indicates a weighted-only operation received an
	// unweighted graph.
	ErrUnweightedGraph = errors.New("core: operation requires a weighted graph")
)

// VertexID is the canonical vertex identity. Equality and hashing are
// defined once, here: two identifiers are the same vertex iff their
// canonical string forms are equal.
type VertexID string

// ID normalizes an arbitrary identifier to its VertexID. Mixed-type
// inputs with the same string form collide deliberately: ID(7) == ID("7").
func ID(v any) VertexID {
	if s, ok := v.(string); ok {
		return VertexID(s)
	}
	if s, ok := v.(VertexID); ok {
		return s
	}

	return VertexID(fmt.Sprint(v))
}

// Edge is a connection between two vertices.
//
// In an undirected graph the same *Edge is stored in both endpoints'
// adjacency lists (identity, not copy). In a directed graph it is stored
// only in V1's list and reads as V1→V2. No processor mutates Weight after
// construction.
type Edge struct {
	// V1 is the first endpoint (the source, for directed edges).
	V1 VertexID

	// V2 is the second endpoint (the destination, for directed edges).
	V2 VertexID

	// Weight is the cost of the edge. Zero on unweighted graphs.
	Weight float64
}

// Either returns one endpoint of the edge (V1, by convention).
func (e *Edge) Either() VertexID { return e.V1 }

// Other returns the endpoint opposite to v. For a self-loop it returns v
// itself. Calling Other with a vertex that is not an endpoint is a caller
// bug; V1 is returned in that case.
func (e *Edge) Other(v VertexID) VertexID {
	if v == e.V1 {
		return e.V2
	}

	return e.V1
}

// From returns the source endpoint of a directed edge.
func (e *Edge) From() VertexID { return e.V1 }

// To returns the destination endpoint of a directed edge.
func (e *Edge) To() VertexID { return e.V2 }

// GraphOption configures a Graph at construction time.
type GraphOption func(g *Graph)

// WithDirected sets the directedness of the graph
// (true = directed, false = undirected; the default is undirected).
func WithDirected(directed bool) GraphOption {
	return func(g *Graph) { g.directed = directed }
}

// WithWeighted marks edge weights as meaningful. Weighted processors
// (dijkstra, prim) refuse graphs constructed without it.
func WithWeighted() GraphOption {
	return func(g *Graph) { g.weighted = true }
}

// Graph is the core in-memory graph data structure.
//
// Storage is an adjacency list: adj[v] holds v's incident edge records in
// insertion order. order tracks vertex insertion order and is the
// iteration contract for Vertices. edges holds every logical edge exactly
// once, in insertion order, even though undirected storage duplicates
// adjacency entries.
type Graph struct {
	directed bool
	weighted bool

	order []VertexID
	adj   map[VertexID][]*Edge
	edges []*Edge

	// rev memoizes the reversed graph for O(1) InDegree on directed
	// graphs. Invalidated by every mutation.
	rev *Graph
}

// New creates an empty Graph. By default the graph is undirected and
// unweighted. Complexity: O(1).
func New(opts ...GraphOption) *Graph {
	g := &Graph{adj: make(map[VertexID][]*Edge)}
	for _, opt := range opts {
		opt(g)
	}

	return g
}

// Arc describes one edge for the bulk constructor. V1 and V2 accept any
// identifier and are normalized through ID; Weight is ignored by
// unweighted graphs.
type Arc struct {
	V1, V2 any
	Weight float64
}

// NewFromArcs creates a Graph and applies the given arcs via repeated
// AddWeightedEdge, in order. Complexity: O(len(arcs)).
func NewFromArcs(arcs []Arc, opts ...GraphOption) *Graph {
	g := New(opts...)
	for _, a := range arcs {
		g.AddWeightedEdge(ID(a.V1), ID(a.V2), a.Weight)
	}

	return g
}

// Directed reports whether edges are one-way.
func (g *Graph) Directed() bool { return g.directed }

// Weighted reports whether edge weights are meaningful.
func (g *Graph) Weighted() bool { return g.weighted }
