// Package dijkstra implements Dijkstra's shortest-path algorithm on
// weighted graphs.
//
// ShortestPaths computes the minimum-cost path from a single source to
// every reachable vertex of a graph with non-negative edge weights. It is
// the classic lazy-deletion formulation: instead of a decrease-key
// operation, improved distances push duplicate entries onto the priority
// queue, and stale entries are discarded when popped (their vertex is
// already finalized). This trades O(E) queue space for a much simpler
// queue contract — exactly what pqueue provides.
//
// Negative weights are a documented limitation, not a checked error:
// they produce silently wrong results. Directed and undirected weighted
// graphs both work, since undirected adjacency is symmetric.
//
// Complexity:
//
//   - Time:  O((V + E) log V) — V finalizations, up to E pushes, each
//     queue operation O(log n) with n ≤ V + E.
//   - Space: O(V + E) — result maps plus worst-case queue occupancy.
package dijkstra
