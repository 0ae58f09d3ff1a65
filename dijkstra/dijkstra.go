package dijkstra

import (
	"fmt"
	"math"

	"github.com/mkravets/grapho/core"
	"github.com/mkravets/grapho/pqueue"
)

// ShortestPaths computes shortest weighted distances from source to every
// vertex of g, plus the predecessor tree for path reconstruction.
//
// Preconditions (checked in order):
//  1. g must be non-nil (ErrGraphNil).
//  2. g must be weighted (core.ErrUnweightedGraph).
//  3. g must contain source (core.ErrVertexNotFound).
//
// Weights must be non-negative; this is not validated, and negative
// weights yield silently wrong results.
func ShortestPaths(g *core.Graph, source core.VertexID) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if !g.Weighted() {
		return nil, core.ErrUnweightedGraph
	}
	if !g.HasVertex(source) {
		return nil, core.ErrVertexNotFound
	}

	r := newRunner(g, source)
	r.init()
	if err := r.process(); err != nil {
		return nil, err
	}

	return r.res, nil
}

// runner holds the mutable state of a single execution.
type runner struct {
	g   *core.Graph
	res *Result
	pq  *pqueue.Queue[core.VertexID]
}

func newRunner(g *core.Graph, source core.VertexID) *runner {
	n := g.VertexCount()

	return &runner{
		g:  g,
		pq: pqueue.NewMin[core.VertexID](),
		res: &Result{
			graph:   g,
			source:  source,
			Dist:    make(map[core.VertexID]float64, n),
			Parent:  make(map[core.VertexID]core.VertexID, n),
			Visited: make(map[core.VertexID]bool, n),
		},
	}
}

// init sets every tentative distance to +Inf except the source (0) and
// seeds the queue with (0, source).
func (r *runner) init() {
	for _, v := range r.g.Vertices() {
		r.res.Dist[v] = math.Inf(1)
	}
	r.res.Dist[r.res.source] = 0
	r.pq.Insert(0, r.res.source)
}

// process pops the minimum-distance entry, discards it if its vertex is
// already finalized (stale duplicate), otherwise finalizes the vertex and
// relaxes its outgoing edges. Terminates when the queue drains.
func (r *runner) process() error {
	for !r.pq.IsEmpty() {
		item, err := r.pq.DeleteMin()
		if err != nil {
			return fmt.Errorf("dijkstra: DeleteMin: %w", err)
		}

		u := item.Value
		if r.res.Visited[u] {
			continue
		}
		r.res.Visited[u] = true

		if err := r.relax(u); err != nil {
			return err
		}
	}

	return nil
}

// relax attempts to improve the distance of every neighbor of u. On a
// strict improvement it records the new distance and parent and pushes a
// fresh queue entry; superseded entries stay behind and are skipped when
// popped.
func (r *runner) relax(u core.VertexID) error {
	edges, err := r.g.Adjacent(u)
	if err != nil {
		// u was finalized off the queue, so it is a graph vertex;
		// reaching this means the graph was mutated mid-run.
		return fmt.Errorf("dijkstra: Adjacent(%q): %w", u, err)
	}

	for _, e := range edges {
		v := e.Other(u)
		next := r.res.Dist[u] + e.Weight
		if next >= r.res.Dist[v] {
			continue
		}
		r.res.Dist[v] = next
		r.res.Parent[v] = u
		r.pq.Insert(next, v)
	}

	return nil
}
