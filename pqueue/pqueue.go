// SPDX-License-Identifier: MIT
//
// Package pqueue is a generic min-priority queue over container/heap.
//
// Items are ordered by ascending Priority. Equal priorities pop in insertion
// order (each item carries a monotonically increasing sequence number), so
// every search built on the queue is deterministic for a fixed input.
//
// Complexity:
//
//   - New(items...): O(n) heapify.
//   - Push / Pop:    O(log n).
//   - Peek / Len:    O(1).
package pqueue

import "container/heap"

// Item is a (priority, value) pair.
type Item[T any] struct {
	Priority float64
	Value    T

	seq uint64 // insertion order, tie-break for equal priorities
}

// Queue is a min-heap of Items.
// The zero value is not usable; construct with New.
type Queue[T any] struct {
	h    itemHeap[T]
	next uint64
}

// New heapifies items in one pass. The input slice is copied, never mutated.
// Items keep their argument order as the tie-break among equal priorities.
func New[T any](items ...Item[T]) *Queue[T] {
	q := &Queue[T]{h: make(itemHeap[T], 0, len(items))}
	for _, it := range items {
		it.seq = q.next
		q.next++
		q.h = append(q.h, it)
	}
	heap.Init(&q.h)

	return q
}

// Push inserts value with the given priority.
func (q *Queue[T]) Push(priority float64, value T) {
	heap.Push(&q.h, Item[T]{Priority: priority, Value: value, seq: q.next})
	q.next++
}

// Pop removes and returns the minimum item.
// The boolean is false when the queue is empty.
func (q *Queue[T]) Pop() (Item[T], bool) {
	if len(q.h) == 0 {
		return Item[T]{}, false
	}

	return heap.Pop(&q.h).(Item[T]), true
}

// Peek returns the minimum item without removing it.
func (q *Queue[T]) Peek() (Item[T], bool) {
	if len(q.h) == 0 {
		return Item[T]{}, false
	}

	return q.h[0], true
}

// Len returns the number of queued items.
func (q *Queue[T]) Len() int { return len(q.h) }

// itemHeap implements heap.Interface; smaller Priority, then smaller seq, wins.
type itemHeap[T any] []Item[T]

func (h itemHeap[T]) Len() int { return len(h) }

func (h itemHeap[T]) Less(i, j int) bool {
	if h[i].Priority != h[j].Priority {
		return h[i].Priority < h[j].Priority
	}

	return h[i].seq < h[j].seq
}

func (h itemHeap[T]) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *itemHeap[T]) Push(x any) { *h = append(*h, x.(Item[T])) }

func (h *itemHeap[T]) Pop() any {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]

	return item
}
