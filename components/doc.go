// Package components finds the connected components of an undirected
// core.Graph by depth-first flood fill.
//
// Vertices are scanned in insertion order; each time an unseen vertex is
// found, a new component is flooded from it and assigned the next 0-based
// id. Component ids are therefore deterministic: they follow discovery
// order.
//
// Complexity: O(V + E) time, O(V) memory.
package components
