// Package core provides the fundamental in-memory Graph implementation:
// vertex identity, the insertion-ordered adjacency list, and the four
// graph variants (directed / undirected × weighted / unweighted).
//
// What
//
//   - VertexID: canonical string identity. core.ID normalizes any value
//     via its string form, so core.ID(0) == core.ID("0") by design.
//   - Edge: {V1, V2, Weight} record. An undirected edge is a single record
//     shared by both endpoints' adjacency lists; a directed edge lives
//     only in its source's list.
//   - Graph: adjacency list keyed by VertexID. Self-loops and parallel
//     edges are always permitted and preserved (no deduplication).
//
// Determinism
//
//	Vertices() and Adjacent() return insertion order. This is a documented
//	contract, not an accident: every processor in this module derives its
//	traversal order, tie-breaks, and discovery order from it.
//
// Concurrency
//
//	The Graph carries no synchronization. Build it, then hand it to
//	processors; do not mutate it while a processor is running. Finished
//	processor results are immutable and safe for concurrent reads.
//
// Errors
//
//	ErrDuplicateVertex  - AddVertex called with an existing identifier.
//	ErrVertexNotFound   - a query referenced a vertex absent from the graph.
//	ErrEmptyGraph       - a structural operation needs at least one vertex.
//	ErrDirectedGraph    - operation requires an undirected graph.
//	ErrUndirectedGraph  - operation requires a directed graph.
//	ErrUnweightedGraph  - operation requires a weighted graph.
package core
