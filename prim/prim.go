package prim

import (
	"errors"
	"fmt"

	"github.com/mkravets/grapho/core"
	"github.com/mkravets/grapho/pqueue"
)

var (
	// ErrGraphNil is returned when a nil *core.Graph is passed.
	ErrGraphNil = errors.New("prim: graph is nil")

	// ErrDisconnected indicates the graph has more than one component, so
	// no spanning tree covering every vertex exists.
	ErrDisconnected = errors.New("prim: graph is disconnected")
)

// Result holds the spanning tree of one MinimumSpanningTree run. Query
// methods are idempotent and safe for concurrent reads.
type Result struct {
	edges []*core.Edge
	total float64
}

// Edges returns the tree edges in acceptance order (V-1 of them).
func (r *Result) Edges() []*core.Edge {
	out := make([]*core.Edge, len(r.edges))
	copy(out, r.edges)

	return out
}

// TotalWeight returns the sum of the tree edges' weights.
func (r *Result) TotalWeight() float64 { return r.total }

// MinimumSpanningTree computes the MST of the connected, weighted,
// undirected graph g.
//
// Preconditions (checked in order):
//  1. g must be non-nil (ErrGraphNil).
//  2. g must be undirected (core.ErrDirectedGraph).
//  3. g must be weighted (core.ErrUnweightedGraph).
//  4. g must have at least one vertex (core.ErrEmptyGraph).
//
// A single-vertex graph yields an empty tree. A disconnected graph yields
// ErrDisconnected.
func MinimumSpanningTree(g *core.Graph) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if g.Directed() {
		return nil, core.ErrDirectedGraph
	}
	if !g.Weighted() {
		return nil, core.ErrUnweightedGraph
	}

	vertices := g.Vertices()
	if len(vertices) == 0 {
		return nil, core.ErrEmptyGraph
	}

	n := len(vertices)
	inTree := make(map[core.VertexID]bool, n)
	pq := pqueue.NewMin[*core.Edge]()
	res := &Result{edges: make([]*core.Edge, 0, n-1)}

	// Grow from the first-inserted vertex; any start yields a tree of the
	// same total weight, this one keeps runs deterministic.
	if err := scan(g, vertices[0], inTree, pq); err != nil {
		return nil, err
	}

	for len(inTree) < n && !pq.IsEmpty() {
		item, err := pq.DeleteMin()
		if err != nil {
			return nil, fmt.Errorf("prim: DeleteMin: %w", err)
		}

		e := item.Value
		if inTree[e.V1] && inTree[e.V2] {
			// Stale entry: both endpoints joined the tree since the push.
			continue
		}

		next := e.V1
		if inTree[next] {
			next = e.V2
		}

		res.edges = append(res.edges, e)
		res.total += e.Weight
		if err := scan(g, next, inTree, pq); err != nil {
			return nil, err
		}
	}

	if len(inTree) < n {
		return nil, ErrDisconnected
	}

	return res, nil
}

// scan marks v in-tree and pushes all of its incident edges. Edges whose
// other endpoint is already in-tree are pushed anyway and filtered lazily
// on pop; that is the chosen strategy, and it keeps scan O(deg(v) log E).
func scan(g *core.Graph, v core.VertexID, inTree map[core.VertexID]bool, pq *pqueue.Queue[*core.Edge]) error {
	inTree[v] = true
	edges, err := g.Adjacent(v)
	if err != nil {
		return fmt.Errorf("prim: Adjacent(%q): %w", v, err)
	}
	for _, e := range edges {
		pq.Insert(e.Weight, e)
	}

	return nil
}
