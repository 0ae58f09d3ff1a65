// Package pqueue provides the binary-heap priority queue consumed by the
// weighted graph processors (dijkstra, prim).
//
// What
//
//   - Queue[T]: a min- or max-ordered queue of float64-keyed payloads.
//   - Insert(priority, value): amortized O(log n).
//   - DeleteMin / DeleteMax: O(log n); ErrEmptyQueue when empty.
//   - IsEmpty / Len: O(1).
//
// Lazy deletion
//
//	Duplicate priorities and stale (superseded) entries are tolerated by
//	design. The graph algorithms push replacement entries instead of
//	performing decrease-key, and discard stale entries when popped. This
//	trades O(E) queue space for a much simpler contract.
//
// A queue is constructed with one polarity (NewMin or NewMax) and serves
// only the matching delete operation; calling the opposite one returns
// ErrWrongPolarity rather than silently returning the wrong extreme.
package pqueue
