// Package bfs provides breadth-first search over a core.Graph,
// returning unweighted shortest-path distances, parent links, and visit
// order as a queryable Result.
//
// What
//
//   - Explore vertices in non-decreasing distance (edge count) from a
//     source vertex; all vertices at distance d are discovered before any
//     vertex at distance d+1.
//   - Result answers HasPathTo, PathTo (destination-first), and
//     DistanceTo for any vertex of the graph.
//   - Optional hooks: OnVisit (may abort with an error), MaxDepth limit,
//     and per-edge neighbor filtering.
//
// Works identically over directed and undirected graphs: only Adjacent is
// read, and directed edges appear only in their source's list.
//
// Determinism
//
//	Neighbors are enqueued in adjacency insertion order, so the visit
//	sequence and every tie-break are fully reproducible.
//
// Complexity (V = |Vertices|, E = |Edges|)
//
//   - Time:   O(V + E)
//   - Memory: O(V) for the frontier queue and result maps
package bfs
