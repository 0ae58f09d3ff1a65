// Package core: Graph mutation and query methods.
//
// Adjacency is stored as map[VertexID][]*Edge with a parallel order
// slice, so vertex iteration and per-vertex edge iteration both follow
// insertion order exactly.
package core

// AddVertex inserts a new vertex with the given ID into the Graph.
// Returns ErrDuplicateVertex if the vertex is already present.
// Complexity: O(1) amortized.
func (g *Graph) AddVertex(id VertexID) error {
	if _, exists := g.adj[id]; exists {
		return ErrDuplicateVertex
	}
	g.adj[id] = nil
	g.order = append(g.order, id)
	g.rev = nil

	return nil
}

// ensureVertex inserts id if absent. Used by edge insertion, where
// auto-vivification is the contract rather than an error.
func (g *Graph) ensureVertex(id VertexID) {
	if _, exists := g.adj[id]; !exists {
		g.adj[id] = nil
		g.order = append(g.order, id)
	}
}

// HasVertex reports whether a vertex with the given ID exists.
// Complexity: O(1).
func (g *Graph) HasVertex(id VertexID) bool {
	_, exists := g.adj[id]

	return exists
}

// AddEdge appends an unweighted edge between v1 and v2, auto-adding
// either endpoint if absent. It never fails: self-loops and parallel
// edges are legal and preserved.
//
// Undirected graphs store the same record in both endpoints' lists (a
// self-loop lands twice in its owner's list); directed graphs store it
// only in v1's list. Complexity: O(1) amortized.
func (g *Graph) AddEdge(v1, v2 VertexID) {
	g.AddWeightedEdge(v1, v2, 0)
}

// AddWeightedEdge is AddEdge with an explicit weight.
func (g *Graph) AddWeightedEdge(v1, v2 VertexID, weight float64) {
	g.ensureVertex(v1)
	g.ensureVertex(v2)

	e := &Edge{V1: v1, V2: v2, Weight: weight}
	g.adj[v1] = append(g.adj[v1], e)
	if !g.directed {
		// Mirror entry; for v1 == v2 this appends the same record twice
		// to the same list, which is what the degree rules count on.
		g.adj[v2] = append(g.adj[v2], e)
	}
	g.edges = append(g.edges, e)
	g.rev = nil
}

// Adjacent returns v's adjacency records in insertion order.
// Returns ErrVertexNotFound if v is absent.
// The result is a copy; callers may not mutate the records themselves.
// Complexity: O(deg(v)).
func (g *Graph) Adjacent(v VertexID) ([]*Edge, error) {
	list, exists := g.adj[v]
	if !exists {
		return nil, ErrVertexNotFound
	}
	out := make([]*Edge, len(list))
	copy(out, list)

	return out, nil
}

// HasEdge reports whether at least one edge connects v1 to v2
// (v1→v2 for directed graphs). Complexity: O(deg(v1)).
func (g *Graph) HasEdge(v1, v2 VertexID) bool {
	for _, e := range g.adj[v1] {
		if g.directed {
			if e.V2 == v2 {
				return true
			}
			continue
		}
		if e.Other(v1) == v2 {
			return true
		}
	}

	return false
}

// Vertices returns all vertex IDs in insertion order.
// Complexity: O(V).
func (g *Graph) Vertices() []VertexID {
	out := make([]VertexID, len(g.order))
	copy(out, g.order)

	return out
}

// Edges returns every logical edge exactly once, in insertion order.
// Undirected storage duplicates adjacency entries; this list does not.
// Complexity: O(E).
func (g *Graph) Edges() []*Edge {
	out := make([]*Edge, len(g.edges))
	copy(out, g.edges)

	return out
}

// VertexCount returns the total number of vertices. O(1).
func (g *Graph) VertexCount() int { return len(g.order) }

// EdgeCount returns the number of logical edges. Each undirected edge
// counts once even though it is stored twice. O(1).
func (g *Graph) EdgeCount() int { return len(g.edges) }

// RemoveVertex deletes the vertex and every incident edge.
// Returns ErrVertexNotFound if the vertex does not exist.
// Complexity: O(V + E).
func (g *Graph) RemoveVertex(id VertexID) error {
	if _, exists := g.adj[id]; !exists {
		return ErrVertexNotFound
	}

	kept := g.edges[:0]
	for _, e := range g.edges {
		if e.V1 == id || e.V2 == id {
			continue
		}
		kept = append(kept, e)
	}
	g.edges = kept

	delete(g.adj, id)
	for v, list := range g.adj {
		filtered := list[:0]
		for _, e := range list {
			if e.V1 == id || e.V2 == id {
				continue
			}
			filtered = append(filtered, e)
		}
		g.adj[v] = filtered
	}

	for i, v := range g.order {
		if v == id {
			g.order = append(g.order[:i], g.order[i+1:]...)
			break
		}
	}
	g.rev = nil

	return nil
}

// RemoveEdge deletes every edge between v1 and v2 (v1→v2 only, for
// directed graphs), including parallel edges. Removing a pair with no
// edges is a no-op. Returns ErrVertexNotFound if either endpoint is
// absent. Complexity: O(deg(v1) + deg(v2) + E).
func (g *Graph) RemoveEdge(v1, v2 VertexID) error {
	if !g.HasVertex(v1) || !g.HasVertex(v2) {
		return ErrVertexNotFound
	}

	doomed := func(e *Edge) bool {
		if g.directed {
			return e.V1 == v1 && e.V2 == v2
		}

		return (e.V1 == v1 && e.V2 == v2) || (e.V1 == v2 && e.V2 == v1)
	}

	kept := g.edges[:0]
	for _, e := range g.edges {
		if doomed(e) {
			continue
		}
		kept = append(kept, e)
	}
	g.edges = kept

	for _, v := range []VertexID{v1, v2} {
		filtered := g.adj[v][:0]
		for _, e := range g.adj[v] {
			if doomed(e) {
				continue
			}
			filtered = append(filtered, e)
		}
		g.adj[v] = filtered
	}
	g.rev = nil

	return nil
}

// Clone returns a deep copy of the Graph: flags, vertices, edges, and
// adjacency, preserving insertion order. Shared-record identity of
// undirected edges is preserved within the clone. Complexity: O(V + E).
func (g *Graph) Clone() *Graph {
	clone := New(WithDirected(g.directed))
	if g.weighted {
		WithWeighted()(clone)
	}
	for _, v := range g.order {
		clone.ensureVertex(v)
	}
	for _, e := range g.edges {
		clone.AddWeightedEdge(e.V1, e.V2, e.Weight)
	}

	return clone
}

// Clear resets the graph to the empty state, preserving flags.
func (g *Graph) Clear() {
	g.order = nil
	g.adj = make(map[VertexID][]*Edge)
	g.edges = nil
	g.rev = nil
}

// Reverse returns the directed graph with every edge flipped, preserving
// vertex and edge insertion order. The result is memoized until the next
// mutation, which makes follow-up InDegree calls O(1).
// Returns ErrUndirectedGraph for undirected graphs (reversal is a no-op
// there and almost always a caller bug). Complexity: O(V + E) once.
func (g *Graph) Reverse() (*Graph, error) {
	if !g.directed {
		return nil, ErrUndirectedGraph
	}
	if g.rev != nil {
		return g.rev, nil
	}

	rev := New(WithDirected(true))
	if g.weighted {
		WithWeighted()(rev)
	}
	for _, v := range g.order {
		rev.ensureVertex(v)
	}
	for _, e := range g.edges {
		rev.AddWeightedEdge(e.V2, e.V1, e.Weight)
	}
	g.rev = rev

	return rev, nil
}
