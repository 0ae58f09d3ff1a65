// Package core: derived degree queries.
//
// Each query documents its exact counting rule; the rules differ between
// variants because undirected storage records every edge twice (and a
// self-loop twice in the same list) while directed storage records every
// edge once.
package core

// Degree returns the number of adjacency records of v: the undirected
// degree, where a self-loop contributes 2. On a directed graph this is
// the out-degree. Returns ErrVertexNotFound if v is absent.
// Complexity: O(1).
func (g *Graph) Degree(v VertexID) (int, error) {
	list, exists := g.adj[v]
	if !exists {
		return 0, ErrVertexNotFound
	}

	return len(list), nil
}

// OutDegree returns the number of edges leaving v in a directed graph.
// Provided as the readable alias of Degree for directed call sites.
// Returns ErrVertexNotFound if v is absent. Complexity: O(1).
func (g *Graph) OutDegree(v VertexID) (int, error) {
	return g.Degree(v)
}

// InDegree returns the number of edges entering v. On an undirected graph
// it equals Degree. On a directed graph without a memoized Reverse it
// scans every adjacency list, O(V+E); after Reverse has been called it is
// O(1). Returns ErrVertexNotFound if v is absent.
func (g *Graph) InDegree(v VertexID) (int, error) {
	if !g.HasVertex(v) {
		return 0, ErrVertexNotFound
	}
	if !g.directed {
		return len(g.adj[v]), nil
	}
	if g.rev != nil {
		return len(g.rev.adj[v]), nil
	}

	in := 0
	for _, e := range g.edges {
		if e.V2 == v {
			in++
		}
	}

	return in, nil
}

// AverageDegree returns 2·E/V for undirected graphs and E/V for directed
// graphs (in-degree sum == out-degree sum == E). An empty graph yields 0,
// not an error. Complexity: O(1).
func (g *Graph) AverageDegree() float64 {
	if len(g.order) == 0 {
		return 0
	}
	e := float64(len(g.edges))
	if !g.directed {
		e *= 2
	}

	return e / float64(len(g.order))
}

// MaxDegree returns the largest Degree over all vertices (the largest
// out-degree, on directed graphs). An empty graph yields 0, not an error.
// Complexity: O(V).
func (g *Graph) MaxDegree() int {
	maxDeg := 0
	for _, v := range g.order {
		if d := len(g.adj[v]); d > maxDeg {
			maxDeg = d
		}
	}

	return maxDeg
}

// SelfLoopCount returns the number of self-loop edges. The scan counts
// adjacency records whose endpoints coincide; on undirected graphs the
// raw count is halved because each self-loop is recorded twice.
// Complexity: O(V + E).
func (g *Graph) SelfLoopCount() int {
	count := 0
	for _, v := range g.order {
		for _, e := range g.adj[v] {
			if e.V1 == e.V2 {
				count++
			}
		}
	}
	if !g.directed {
		count /= 2
	}

	return count
}
