package bfs

import (
	"fmt"

	"github.com/mkravets/grapho/core"
)

// queueItem pairs a vertex ID with its BFS depth.
type queueItem struct {
	id    core.VertexID
	depth int
}

// walker encapsulates mutable BFS state.
type walker struct {
	graph *core.Graph
	opts  Options
	queue []queueItem
	res   *Result
}

// Paths runs breadth-first search on g starting from source, applying any
// number of functional Options. A vertex is marked visited and assigned
// its parent when first discovered (enqueued), so each vertex enters the
// frontier exactly once.
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
		queue: make([]queueItem, 0, n),
		res: &Result{
			graph:   g,
			source:  source,
			Order:   make([]core.VertexID, 0, n),
			Visited: make(map[core.VertexID]bool, n),
			Parent:  make(map[core.VertexID]core.VertexID, n),
			Depth:   make(map[core.VertexID]int, n),
		},
	}

	// Seed the frontier with the source (no parent entry).
	w.res.Visited[source] = true
	w.res.Depth[source] = 0
	w.queue = append(w.queue, queueItem{id: source, depth: 0})

	if err := w.loop(); err != nil {
		return nil, err
	}

	return w.res, nil
}

// loop processes the frontier until empty or an OnVisit error.
func (w *walker) loop() error {
	for len(w.queue) > 0 {
		item := w.queue[0]
		w.queue = w.queue[1:]

		w.res.Order = append(w.res.Order, item.id)
		if err := w.opts.OnVisit(item.id, item.depth); err != nil {
			return fmt.Errorf("bfs: OnVisit hook for %q: %w", item.id, err)
		}

		if err := w.enqueueNeighbors(item); err != nil {
			return err
		}
	}

	return nil
}

// enqueueNeighbors walks item's adjacency records in insertion order,
// applies filtering and the depth limit, and enqueues each undiscovered
// neighbor with item as its parent.
func (w *walker) enqueueNeighbors(item queueItem) error {
	edges, err := w.graph.Adjacent(item.id)
	if err != nil {
		// item.id came out of the frontier, so it is a graph vertex;
		// reaching this means the graph was mutated mid-traversal.
		return fmt.Errorf("bfs: Adjacent(%q): %w", item.id, err)
	}

	nextDepth := item.depth + 1
	if w.opts.MaxDepth > 0 && nextDepth > w.opts.MaxDepth {
		return nil
	}

	for _, e := range edges {
		nbr := e.Other(item.id)
		if !w.opts.FilterNeighbor(item.id, nbr) {
			continue
		}
		if w.res.Visited[nbr] {
			continue
		}
		w.res.Visited[nbr] = true
		w.res.Depth[nbr] = nextDepth
		w.res.Parent[nbr] = item.id
		w.queue = append(w.queue, queueItem{id: nbr, depth: nextDepth})
	}

	return nil
}
