// Package dfs provides depth-first traversal over a core.Graph, plus the
// two structural processors built on it: cycle detection and topological
// sort.
//
// What
//
//   - Paths: single-source pre-order traversal producing visit order,
//     discovery depths, parent links, and path queries. Children are
//     explored in adjacency insertion order; a vertex is marked visited
//     and assigned its parent at the moment it is first discovered.
//   - HasCycleDirected: back-edge detection with three-color marking
//     (a revisit of a vertex still on the traversal stack is a cycle;
//     self-loops and 2-cycles count).
//   - HasCycleUndirected: an O(V+E) pre-pass flags self-loops and
//     parallel edges, then DFS with a "came from" parent argument flags
//     any other revisit.
//   - TopologicalSort: DFS finish order of a directed acyclic graph.
//
// All traversals use an explicit frame stack rather than recursion, so
// deep or degenerate graphs (one long path) cannot overflow the call
// stack.
//
// Complexity
//
//   - Time:   O(V + E) for every entry point
//   - Memory: O(V) for the frame stack and result maps
package dfs
