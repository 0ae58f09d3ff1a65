// Package dfs: options, errors, and the Result type for depth-first
// traversal.
package dfs

import (
	"errors"

	"github.com/mkravets/grapho/core"
)

// VertexState represents the DFS visitation state of a vertex.
const (
	// White: the vertex has not been visited yet.
	White = iota
	// Gray: the vertex is on the traversal stack (visiting).
	Gray
	// Black: the vertex and all its descendants are fully explored.
	Black
)

var (
	// ErrGraphNil is returned when a nil *core.Graph is passed to Paths,
	// TopologicalSort, or the cycle detectors.
	ErrGraphNil = errors.New("dfs: graph is nil")

	// ErrCycleDetected indicates TopologicalSort was invoked on a graph
	// containing a cycle; no topological order exists.
	ErrCycleDetected = errors.New("dfs: cycle detected")
)

// Option configures optional behavior of the Paths traversal.
type Option func(*Options)

// Options holds configurable parameters for DFS traversal. Complexity
// stays O(V+E) as long as the hook and filter are O(1).
type Options struct {
	// OnVisit, if non-nil, is invoked when a vertex is first discovered
	// (pre-order). Returning an error aborts the traversal.
	OnVisit func(id core.VertexID, depth int) error

	// MaxDepth, if non-negative, limits the traversal to the given depth.
	// A depth of 0 visits only the source. Default is -1 (no limit).
	MaxDepth int

	// FilterNeighbor, if non-nil, is called for each edge curr→neighbor
	// before descending. Return false to skip that neighbor.
	FilterNeighbor func(curr, neighbor core.VertexID) bool
}

// DefaultOptions returns Options with no hook, no depth limit, and no
// filtering.
func DefaultOptions() Options {
	return Options{
		OnVisit:        nil,
		MaxDepth:       -1,
		FilterNeighbor: nil,
	}
}

// WithOnVisit installs fn as the pre-order discovery hook.
func WithOnVisit(fn func(id core.VertexID, depth int) error) Option {
	return func(o *Options) { o.OnVisit = fn }
}

// WithMaxDepth limits traversal depth to limit; 0 visits only the source.
func WithMaxDepth(limit int) Option {
	return func(o *Options) { o.MaxDepth = limit }
}

// WithFilterNeighbor skips edges whose target fn rejects.
func WithFilterNeighbor(fn func(curr, neighbor core.VertexID) bool) Option {
	return func(o *Options) { o.FilterNeighbor = fn }
}

// Result captures the outcome of a depth-first traversal. It keeps a
// read-only reference to the graph; the graph must outlive the Result and
// must not be mutated afterwards. Query methods are idempotent and safe
// for concurrent reads.
type Result struct {
	graph  *core.Graph
	source core.VertexID

	// Order records vertices in discovery sequence (pre-order).
	Order []core.VertexID

	// Depth maps each reached vertex to its discovery depth from the source.
	Depth map[core.VertexID]int

	// Parent maps each reached vertex to the vertex it was discovered
	// from. The source has no entry.
	Parent map[core.VertexID]core.VertexID

	// Visited flags the vertices reached during the traversal.
	Visited map[core.VertexID]bool
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
