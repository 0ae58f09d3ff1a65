package dfs

import (
	"fmt"

	"github.com/mkravets/grapho/core"
)

// frame is one level of the explicit DFS stack: a vertex, its adjacency
// records, and the index of the next record to explore. Frames replace
// recursion so that a long-path graph cannot overflow the call stack.
type frame struct {
	id    core.VertexID
	depth int
	edges []*core.Edge
	next  int
}

// walker encapsulates state during DFS.
type walker struct {
	graph *core.Graph
	opts  Options
	stack []frame
	res   *Result
}

// Paths performs a depth-first traversal of g from source. Children are
// explored in adjacency insertion order; each vertex is marked visited
// and assigned its parent at first discovery, exactly as the recursive
// formulation would.
//
// Returns ErrGraphNil for a nil graph, core.ErrVertexNotFound if source
// is absent, or any error returned by the OnVisit hook.
func Paths(g *core.Graph, source core.VertexID, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if !g.HasVertex(source) {
		return nil, core.ErrVertexNotFound
	}

	n := g.VertexCount()
	w := &walker{
		graph: g,
		opts:  o,
		stack: make([]frame, 0, n),
		res: &Result{
			graph:   g,
			source:  source,
			Order:   make([]core.VertexID, 0, n),
			Depth:   make(map[core.VertexID]int, n),
			Parent:  make(map[core.VertexID]core.VertexID, n),
			Visited: make(map[core.VertexID]bool, n),
		},
	}

	if err := w.discover(source, 0); err != nil {
		return nil, err
	}
	if err := w.run(); err != nil {
		return nil, err
	}

	return w.res, nil
}

// discover marks id visited at the given depth, records it in pre-order,
// fires the hook, and pushes its frame.
func (w *walker) discover(id core.VertexID, depth int) error {
	w.res.Visited[id] = true
	w.res.Depth[id] = depth
	w.res.Order = append(w.res.Order, id)

	if w.opts.OnVisit != nil {
		if err := w.opts.OnVisit(id, depth); err != nil {
			return fmt.Errorf("dfs: OnVisit hook for %q: %w", id, err)
		}
	}

	edges, err := w.graph.Adjacent(id)
	if err != nil {
		return fmt.Errorf("dfs: Adjacent(%q): %w", id, err)
	}
	w.stack = append(w.stack, frame{id: id, depth: depth, edges: edges})

	return nil
}

// run drives the frame stack until it drains.
func (w *walker) run() error {
	for len(w.stack) > 0 {
		top := &w.stack[len(w.stack)-1]
		if top.next >= len(top.edges) {
			w.stack = w.stack[:len(w.stack)-1]
			continue
		}

		e := top.edges[top.next]
		top.next++

		nbr := e.Other(top.id)
		if w.opts.FilterNeighbor != nil && !w.opts.FilterNeighbor(top.id, nbr) {
			continue
		}
		if w.res.Visited[nbr] {
			continue
		}
		if w.opts.MaxDepth >= 0 && top.depth+1 > w.opts.MaxDepth {
			continue
		}

		w.res.Parent[nbr] = top.id
		// top may be invalidated by the stack growing below; nothing
		// after this point reads it.
		if err := w.discover(nbr, top.depth+1); err != nil {
			return err
		}
	}

	return nil
}
