// Package bfs: options, errors, and the Result type for breadth-first
// traversal.
package bfs

import (
	"errors"

	"github.com/mkravets/grapho/core"
)

// ErrGraphNil is returned if a nil graph pointer is passed.
var ErrGraphNil = errors.New("bfs: graph is nil")

// Option configures BFS behavior via functional arguments.
type Option func(*Options)

// Options holds parameters and callbacks to customize BFS execution.
type Options struct {
	// OnVisit is called when a vertex is dequeued and visited, with its
	// hop distance from the source. A non-nil error aborts the traversal
	// and is propagated to the caller.
	OnVisit func(id core.VertexID, depth int) error

	// MaxDepth, if > 0, stops exploring beyond this depth.
	// A value of 0 disables the limit.
	MaxDepth int

	// FilterNeighbor can skip edges by returning false.
	// Called for each edge curr→neighbor.
	FilterNeighbor func(curr, neighbor core.VertexID) bool
}

// DefaultOptions returns Options with no depth limit, no filtering, and a
// no-op visit hook.
func DefaultOptions() Options {
	return Options{
		OnVisit:        func(core.VertexID, int) error { return nil },
		MaxDepth:       0,
		FilterNeighbor: func(_, _ core.VertexID) bool { return true },
	}
}

// WithOnVisit registers a callback to run on each visit; returning an
// error from the callback stops the traversal.
func WithOnVisit(fn func(id core.VertexID, depth int) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithMaxDepth stops the search past the given depth. Zero disables the
// limit; negative values are treated as zero.
func WithMaxDepth(d int) Option {
	return func(o *Options) {
		if d > 0 {
			o.MaxDepth = d
		}
	}
}

// WithFilterNeighbor skips neighbors when fn returns false.
func WithFilterNeighbor(fn func(curr, neighbor core.VertexID) bool) Option {
	return func(o *Options) {
		if fn != nil {
			o.FilterNeighbor = fn
		}
	}
}

// Result holds the outcome of a breadth-first traversal. It keeps a
// read-only reference to the graph it was computed from; the graph must
// outlive the Result and must not be mutated afterwards. All query
// methods are idempotent and safe for concurrent reads.
type Result struct {
	graph  *core.Graph
	source core.VertexID

	// Order lists vertices in visit sequence (layer by layer).
	Order []core.VertexID

	// Visited flags the vertices reachable from the source.
	Visited map[core.VertexID]bool

	// Parent maps each reached vertex to its predecessor on the BFS tree.
	// The source has no entry.
	Parent map[core.VertexID]core.VertexID

	// Depth maps each reached vertex to the number of edges on the
	// shortest unweighted path from the source.
	Depth map[core.VertexID]int
}

// Source returns the source vertex the traversal started from.
func (r *Result) Source() core.VertexID { return r.source }

// HasPathTo reports whether v was reached from the source.
// Returns ErrVertexNotFound if v is not a vertex of the graph.
func (r *Result) HasPathTo(v core.VertexID) (bool, error) {
	if !r.graph.HasVertex(v) {
		return false, core.ErrVertexNotFound
	}

	return r.Visited[v], nil
}

// PathTo returns the path from v back to the source, destination first:
// [v, ..., source]. Returns nil (and no error) if v is unreachable, and
// ErrVertexNotFound if v is not a vertex of the graph.
func (r *Result) PathTo(v core.VertexID) ([]core.VertexID, error) {
	ok, err := r.HasPathTo(v)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, nil
	}

	path := []core.VertexID{v}
	for cur := v; cur != r.source; {
		cur = r.Parent[cur]
		path = append(path, cur)
	}

	return path, nil
}

// DistanceTo returns the hop count of the shortest unweighted path from
// the source to v. ok is false when v is unreachable. Returns
// ErrVertexNotFound if v is not a vertex of the graph.
func (r *Result) DistanceTo(v core.VertexID) (dist int, ok bool, err error) {
	reached, err := r.HasPathTo(v)
	if err != nil {
		return 0, false, err
	}
	if !reached {
		return 0, false, nil
	}

	return r.Depth[v], true, nil
}
