package pqueue

import (
	"container/heap"
	"errors"
)

var (
	// ErrEmptyQueue indicates a delete operation on an empty queue.
	ErrEmptyQueue = errors.New("pqueue: queue is empty")

	// ErrWrongPolarity indicates DeleteMin on a max-queue or DeleteMax on
	// a min-queue.
	ErrWrongPolarity = errors.New("pqueue: delete does not match queue polarity")
)

// Item pairs a payload with the priority it was inserted under.
type Item[T any] struct {
	Priority float64
	Value    T
}

// Queue is a binary-heap priority queue of Items. The zero value is not
// usable; construct with NewMin or NewMax.
type Queue[T any] struct {
	h   itemHeap[T]
	min bool
}

// NewMin returns an empty queue whose DeleteMin yields the smallest
// priority first.
func NewMin[T any]() *Queue[T] {
	return &Queue[T]{min: true}
}

// NewMax returns an empty queue whose DeleteMax yields the largest
// priority first.
func NewMax[T any]() *Queue[T] {
	return &Queue[T]{min: false, h: itemHeap[T]{desc: true}}
}

// Insert adds value under the given priority. Duplicate priorities are
// fine; entries are never coalesced. Complexity: O(log n) amortized.
func (q *Queue[T]) Insert(priority float64, value T) {
	heap.Push(&q.h, Item[T]{Priority: priority, Value: value})
}

// DeleteMin removes and returns the item with the smallest priority.
// Returns ErrEmptyQueue if the queue is empty and ErrWrongPolarity on a
// max-queue. Complexity: O(log n).
func (q *Queue[T]) DeleteMin() (Item[T], error) {
	if !q.min {
		return Item[T]{}, ErrWrongPolarity
	}

	return q.pop()
}

// DeleteMax removes and returns the item with the largest priority.
// Returns ErrEmptyQueue if the queue is empty and ErrWrongPolarity on a
// min-queue. Complexity: O(log n).
func (q *Queue[T]) DeleteMax() (Item[T], error) {
	if q.min {
		return Item[T]{}, ErrWrongPolarity
	}

	return q.pop()
}

func (q *Queue[T]) pop() (Item[T], error) {
	if q.h.Len() == 0 {
		return Item[T]{}, ErrEmptyQueue
	}

	return heap.Pop(&q.h).(Item[T]), nil
}

// IsEmpty reports whether the queue holds no items. O(1).
func (q *Queue[T]) IsEmpty() bool { return q.h.Len() == 0 }

// Len returns the number of items, including stale duplicates. O(1).
func (q *Queue[T]) Len() int { return q.h.Len() }

// itemHeap implements heap.Interface over a slice of Items. desc flips
// the comparison for max-queues.
type itemHeap[T any] struct {
	items []Item[T]
	desc  bool
}

// Len returns the number of buffered items.
func (h itemHeap[T]) Len() int { return len(h.items) }

// Less orders by priority, ascending for min-queues, descending for max.
func (h itemHeap[T]) Less(i, j int) bool {
	if h.desc {
		return h.items[i].Priority > h.items[j].Priority
	}

	return h.items[i].Priority < h.items[j].Priority
}

// Swap swaps two elements in the heap.
func (h itemHeap[T]) Swap(i, j int) { h.items[i], h.items[j] = h.items[j], h.items[i] }

// Push appends a new element; called by heap.Push.
func (h *itemHeap[T]) Push(x any) { h.items = append(h.items, x.(Item[T])) }

// Pop removes and returns the extreme element; called by heap.Pop.
func (h *itemHeap[T]) Pop() any {
	old := h.items
	n := len(old)
	item := old[n-1]
	h.items = old[:n-1]

	return item
}
