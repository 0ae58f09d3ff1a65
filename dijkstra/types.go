// Package dijkstra: errors and the Result type.
package dijkstra

import (
	"errors"
	"math"

	"github.com/mkravets/grapho/core"
)

// ErrGraphNil is returned when a nil *core.Graph is passed to
// ShortestPaths.
var ErrGraphNil = errors.New("dijkstra: graph is nil")

// Result holds the shortest-path tree of one ShortestPaths run. It keeps
// a read-only reference to the graph; the graph must outlive the Result
// and must not be mutated afterwards. Query methods are idempotent and
// safe for concurrent reads.
type Result struct {
	graph  *core.Graph
	source core.VertexID

	// Dist maps every vertex to its final distance from the source;
	// +Inf for unreachable vertices.
	Dist map[core.VertexID]float64

	// Parent maps each reached vertex to its predecessor on the
	// shortest-path tree. The source has no entry.
	Parent map[core.VertexID]core.VertexID

	// Visited flags the vertices whose distance was finalized.
	Visited map[core.VertexID]bool
}

// Source returns the source vertex distances are measured from.
func (r *Result) Source() core.VertexID { return r.source }

// HasPathTo reports whether v is reachable from the source.
// Returns core.ErrVertexNotFound if v is not a vertex of the graph.
func (r *Result) HasPathTo(v core.VertexID) (bool, error) {
	if !r.graph.HasVertex(v) {
		return false, core.ErrVertexNotFound
	}

	return !math.IsInf(r.Dist[v], 1), nil
}

// DistanceTo returns the weighted distance of the shortest path from the
// source to v. ok is false when v is unreachable. Returns
// core.ErrVertexNotFound if v is not a vertex of the graph.
func (r *Result) DistanceTo(v core.VertexID) (dist float64, ok bool, err error) {
	reached, err := r.HasPathTo(v)
	if err != nil {
		return 0, false, err
	}
	if !reached {
		return 0, false, nil
	}

	return r.Dist[v], true, nil
}

// PathTo returns the shortest path from v back to the source, destination
// first: [v, ..., source]. Returns nil (and no error) if v is
// unreachable, and core.ErrVertexNotFound if v is not a vertex of the
// graph.
func (r *Result) PathTo(v core.VertexID) ([]core.VertexID, error) {
	reached, err := r.HasPathTo(v)
	if err != nil {
		return nil, err
	}
	if !reached {
		return nil, nil
	}

	path := []core.VertexID{v}
	for cur := v; cur != r.source; {
		cur = r.Parent[cur]
		path = append(path, cur)
	}

	return path, nil
}
