// Package dfs: topological sort of directed acyclic graphs.
//
// TopologicalSort emits DFS finish order: a vertex is appended only after
// all of its descendants are fully processed. The result therefore lists
// sinks first — for every edge u→v, u appears AFTER v. Callers wanting
// the conventional sources-first order should reverse the slice.
//
// Complexity:
//
//   - Time:   O(V + E) (cycle pre-check plus one full DFS)
//   - Memory: O(V)     (frame stack and state map)
package dfs

import (
	"github.com/mkravets/grapho/core"
)

// TopologicalSort computes an ordering of all vertices of the directed
// graph g such that for every edge u→v, u appears after v (finish order).
// Roots are taken in vertex insertion order and children in adjacency
// insertion order, so the result is deterministic.
//
// Returns ErrGraphNil for a nil graph, core.ErrUndirectedGraph when g is
// undirected, and ErrCycleDetected when HasCycleDirected reports a cycle
// (topological order is undefined then).
func TopologicalSort(g *core.Graph) ([]core.VertexID, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if !g.Directed() {
		return nil, core.ErrUndirectedGraph
	}

	// Topological order only exists on acyclic graphs; delegate the check
	// rather than re-deriving back-edge detection here.
	cyclic, err := HasCycleDirected(g)
	if err != nil {
		return nil, err
	}
	if cyclic {
		return nil, ErrCycleDetected
	}

	visited := make(map[core.VertexID]bool, g.VertexCount())
	order := make([]core.VertexID, 0, g.VertexCount())

	for _, root := range g.Vertices() {
		if visited[root] {
			continue
		}
		finishVisit(g, root, visited, &order)
	}

	return order, nil
}

// finishVisit runs an iterative DFS from root, appending each vertex to
// order at the moment its frame is popped (finish time).
func finishVisit(g *core.Graph, root core.VertexID, visited map[core.VertexID]bool, order *[]core.VertexID) {
	visited[root] = true
	stack := []cycleFrame{newFrame(g, root, root)}

	for len(stack) > 0 {
		top := &stack[len(stack)-1]
		if top.next >= len(top.edges) {
			*order = append(*order, top.id)
			stack = stack[:len(stack)-1]
			continue
		}

		e := top.edges[top.next]
		top.next++

		nbr := e.To()
		if visited[nbr] {
			continue
		}
		visited[nbr] = true
		stack = append(stack, newFrame(g, nbr, top.id))
	}
}
