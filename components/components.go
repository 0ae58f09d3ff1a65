package components

import (
	"errors"

	"github.com/mkravets/grapho/core"
)

// ErrGraphNil is returned if a nil graph pointer is passed to Find.
var ErrGraphNil = errors.New("components: graph is nil")

// Result holds the component partition of a graph. It keeps a read-only
// reference to the graph; query methods are idempotent and safe for
// concurrent reads.
type Result struct {
	graph   *core.Graph
	ids     map[core.VertexID]int
	members [][]core.VertexID
}

// Find computes the connected components of the undirected graph g.
// Returns ErrGraphNil for a nil graph and core.ErrDirectedGraph when g is
// directed (components of a digraph are a different notion entirely).
func Find(g *core.Graph) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if g.Directed() {
		return nil, core.ErrDirectedGraph
	}

	res := &Result{
		graph: g,
		ids:   make(map[core.VertexID]int, g.VertexCount()),
	}

	for _, v := range g.Vertices() {
		if _, seen := res.ids[v]; seen {
			continue
		}
		res.flood(v, len(res.members))
	}

	return res, nil
}

// flood marks every vertex reachable from seed with the given component
// id, collecting members in discovery order. Iterative DFS, so component
// shape cannot overflow the call stack.
func (r *Result) flood(seed core.VertexID, id int) {
	r.ids[seed] = id
	comp := []core.VertexID{seed}
	stack := []core.VertexID{seed}

	for len(stack) > 0 {
		v := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		edges, _ := r.graph.Adjacent(v)
		for _, e := range edges {
			nbr := e.Other(v)
			if _, seen := r.ids[nbr]; seen {
				continue
			}
			r.ids[nbr] = id
			comp = append(comp, nbr)
			stack = append(stack, nbr)
		}
	}

	r.members = append(r.members, comp)
}

// ComponentID returns the 0-based component id of v, assigned in
// discovery order. Returns core.ErrVertexNotFound if v is not a vertex
// of the graph.
func (r *Result) ComponentID(v core.VertexID) (int, error) {
	id, ok := r.ids[v]
	if !ok {
		return 0, core.ErrVertexNotFound
	}

	return id, nil
}

// ComponentCount returns the number of distinct components.
func (r *Result) ComponentCount() int { return len(r.members) }

// Components returns the members of every component, indexed by
// component id, each in discovery order.
func (r *Result) Components() [][]core.VertexID {
	out := make([][]core.VertexID, len(r.members))
	for i, comp := range r.members {
		dup := make([]core.VertexID, len(comp))
		copy(dup, comp)
		out[i] = dup
	}

	return out
}

// Connected reports whether v and w belong to the same component.
// Returns core.ErrVertexNotFound if either is not a vertex of the graph.
func (r *Result) Connected(v, w core.VertexID) (bool, error) {
	iv, err := r.ComponentID(v)
	if err != nil {
		return false, err
	}
	iw, err := r.ComponentID(w)
	if err != nil {
		return false, err
	}

	return iv == iw, nil
}
