// Package prim computes minimum spanning trees of connected, weighted,
// undirected core.Graphs with the lazy variant of Prim's algorithm.
//
// The tree grows from the first-inserted vertex. Marking a vertex in-tree
// pushes all of its incident edges onto a min-queue keyed by weight —
// including edges back into the tree, which are discarded lazily when
// popped with both endpoints already in-tree. The loop ends when the
// in-tree count reaches the vertex count; if the queue drains first, the
// graph is disconnected and ErrDisconnected is returned rather than
// looping forever or silently producing a partial forest.
//
// Complexity: O(E log E) time, O(V + E) memory.
package prim
