// Package dfs: cycle detection for directed and undirected graphs.
//
// Directed detection is classic back-edge search: a revisit of a Gray
// vertex (still on the traversal stack) closes a cycle, while Black
// vertices only prevent re-exploring finished components. Undirected
// detection cannot use the raw revisit rule, because every undirected
// edge mirrors itself into its target's list and would flag a bogus
// 2-cycle; instead a pre-pass catches self-loops and parallel edges, and
// the DFS then skips only the immediate parent.
package dfs

import (
	"github.com/mkravets/grapho/core"
)

// cycleFrame is a stack level of the iterative cycle search.
type cycleFrame struct {
	id     core.VertexID
	parent core.VertexID
	edges  []*core.Edge
	next   int
}

// HasCycleDirected reports whether the directed graph g contains a cycle.
// Self-loops and 2-cycles count as cycles.
//
// Returns ErrGraphNil for a nil graph and core.ErrUndirectedGraph when g
// is undirected (use HasCycleUndirected there). Complexity: O(V + E).
func HasCycleDirected(g *core.Graph) (bool, error) {
	if g == nil {
		return false, ErrGraphNil
	}
	if !g.Directed() {
		return false, core.ErrUndirectedGraph
	}

	state := make(map[core.VertexID]int, g.VertexCount())
	for _, v := range g.Vertices() {
		if state[v] != White {
			continue
		}
		if directedVisit(g, v, state) {
			return true, nil
		}
	}

	return false, nil
}

// directedVisit runs one iterative DFS pass from root, marking vertices
// Gray while they are on the stack and Black once finished. An edge into
// a Gray vertex is a back edge, i.e. a cycle.
func directedVisit(g *core.Graph, root core.VertexID, state map[core.VertexID]int) bool {
	state[root] = Gray
	stack := []cycleFrame{newFrame(g, root, root)}

	for len(stack) > 0 {
		top := &stack[len(stack)-1]
		if top.next >= len(top.edges) {
			state[top.id] = Black
			stack = stack[:len(stack)-1]
			continue
		}

		e := top.edges[top.next]
		top.next++

		nbr := e.To()
		switch state[nbr] {
		case Gray:
			// Back edge into the current stack; includes self-loops.
			return true
		case White:
			state[nbr] = Gray
			stack = append(stack, newFrame(g, nbr, top.id))
		}
	}

	return false
}

// HasCycleUndirected reports whether the undirected graph g contains a
// cycle. A self-loop or any parallel edge is immediately a cycle; both
// are caught by an O(V+E) pre-pass. Otherwise DFS revisiting any visited
// vertex other than the immediate parent indicates a cycle.
//
// Returns ErrGraphNil for a nil graph and core.ErrDirectedGraph when g is
// directed (use HasCycleDirected there). Complexity: O(V + E).
func HasCycleUndirected(g *core.Graph) (bool, error) {
	if g == nil {
		return false, ErrGraphNil
	}
	if g.Directed() {
		return false, core.ErrDirectedGraph
	}

	if hasTrivialCycle(g) {
		return true, nil
	}

	visited := make(map[core.VertexID]bool, g.VertexCount())
	for _, v := range g.Vertices() {
		if visited[v] {
			continue
		}
		if undirectedVisit(g, v, visited) {
			return true, nil
		}
	}

	return false, nil
}

// hasTrivialCycle scans every adjacency list once for self-loops and
// parallel edges. With those ruled out, the parent-skip rule below is
// sound: at most one edge leads back to the parent.
func hasTrivialCycle(g *core.Graph) bool {
	for _, v := range g.Vertices() {
		edges, _ := g.Adjacent(v)
		seen := make(map[core.VertexID]bool, len(edges))
		for _, e := range edges {
			if e.V1 == e.V2 {
				return true
			}
			nbr := e.Other(v)
			if seen[nbr] {
				return true
			}
			seen[nbr] = true
		}
	}

	return false
}

// undirectedVisit runs one iterative DFS pass from root, carrying the
// "came from" parent in each frame. Meeting a visited vertex that is not
// the immediate parent closes a cycle.
func undirectedVisit(g *core.Graph, root core.VertexID, visited map[core.VertexID]bool) bool {
	visited[root] = true
	stack := []cycleFrame{newFrame(g, root, root)}

	for len(stack) > 0 {
		top := &stack[len(stack)-1]
		if top.next >= len(top.edges) {
			stack = stack[:len(stack)-1]
			continue
		}

		e := top.edges[top.next]
		top.next++

		nbr := e.Other(top.id)
		if nbr == top.parent {
			// Trivial backtrack along the tree edge. Safe to skip by ID:
			// the pre-pass ruled out parallel edges, so only one edge
			// leads back, and roots (parent == self) could only match a
			// self-loop, also ruled out.
			continue
		}
		if visited[nbr] {
			return true
		}
		visited[nbr] = true
		stack = append(stack, newFrame(g, nbr, top.id))
	}

	return false
}

// newFrame builds a stack frame for id with its adjacency records; parent
// is the vertex the traversal arrived from (id itself for roots).
func newFrame(g *core.Graph, id, parent core.VertexID) cycleFrame {
	edges, _ := g.Adjacent(id)

	return cycleFrame{id: id, parent: parent, edges: edges}
}
