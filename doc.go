// Package grapho is an in-memory toolbox of adjacency-list graphs and the
// processors that analyze them.
//
// What grapho gives you:
//
//	• Core primitives: directed, undirected, weighted and unweighted graphs
//	  over a uniform insertion-ordered adjacency list
//	• Traversals: BFS and DFS path trees with hooks and filters
//	• Structure: cycle detection, topological sort, connected components
//	• Weighted processors: Dijkstra shortest paths, lazy Prim MST
//	• A small priority-queue collaborator shared by the weighted processors
//
// Why choose grapho?
//
//   - Deterministic by contract – adjacency and vertex iteration follow
//     insertion order, so every traversal and tie-break is reproducible
//   - Minimal API, clear naming – one package per algorithm family
//   - Pure Go – no cgo, no hidden deps
//
// The packages:
//
//	core/       — Graph, Edge, VertexID and the variant-specific queries
//	pqueue/     — min/max priority queue (lazy-deletion friendly)
//	bfs/        — breadth-first path trees and hop distances
//	dfs/        — depth-first path trees, cycles, topological sort
//	components/ — connected components of undirected graphs
//	dijkstra/   — single-source shortest paths on weighted graphs
//	prim/       — minimum spanning trees of weighted undirected graphs
//
// Quick ASCII example:
//
//	    A───B
//	    │   │
//	    C───D
//
//	represents a square with four vertices and four edges.
//
//	go get github.com/mkravets/grapho
package grapho
