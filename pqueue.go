// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package pqueue provides a binary heap based minimum priority queue.
// Values of any type may be stored, each with an integer priority, and
// the value with the numerically smallest priority is always the first
// to be returned. The queue never inspects, copies or frees the values
// it stores; only the priorities are used for ordering.
//
// Calling Peek, PeekPriority or ExtractMin on an empty queue is a
// programming error and results in a panic whose value is an error
// that wraps ErrEmpty; callers should test IsEmpty first. Similarly,
// using a nil or released Queue panics with ErrNilQueue or ErrReleased.
//
// A Queue is not safe for concurrent use.
package pqueue

import (
	"cloudeng.io/pqueue/dynarray"
)

// Queue represents a minimum priority queue implemented as a binary
// heap. The values and priorities are stored in two separate arrays
// that are always the same length and index aligned.
type Queue[V any] struct {
	vals     *dynarray.Array[V]
	prios    *dynarray.Array[int]
	callback func(iv, jv V, i, j int)
	released bool
}

// New creates a new, empty, Queue unless WithData is used to supply
// initial contents.
func New[V any](opts ...Option[V]) *Queue[V] {
	var o options[V]
	for _, fn := range opts {
		fn(&o)
	}
	capacity := o.initialCapacity()
	q := &Queue[V]{
		vals:  dynarray.New[V](capacity),
		prios: dynarray.New[int](capacity),
	}
	for i, p := range o.prios {
		q.vals.Append(o.vals[i])
		q.prios.Append(p)
	}
	q.heapify()
	q.callback = o.onSwap
	return q
}

// Release releases the storage used by the queue. The values stored
// in the queue are not affected in any way. The queue may not be
// used after it has been released.
func (q *Queue[V]) Release() {
	q.check("Release", false)
	q.vals.Release()
	q.prios.Release()
	q.released = true
}

// IsEmpty returns true if the queue contains no entries.
func (q *Queue[V]) IsEmpty() bool {
	q.check("IsEmpty", false)
	return q.vals.Len() == 0
}

// Len returns the number of entries in the queue.
func (q *Queue[V]) Len() int {
	q.check("Len", false)
	return q.vals.Len()
}

// Insert adds v to the queue with the specified priority. Entries
// with equal priorities are not guaranteed to be returned in the
// order in which they were inserted.
func (q *Queue[V]) Insert(v V, priority int) {
	q.check("Insert", false)
	q.vals.Append(v)
	q.prios.Append(priority)
	q.percolateUp(q.vals.Len() - 1)
}

// Peek returns the value with the smallest priority without removing
// it. It panics if the queue is empty.
func (q *Queue[V]) Peek() V {
	q.check("Peek", true)
	return q.vals.Get(0)
}

// PeekPriority returns the smallest priority in the queue. It panics
// if the queue is empty.
func (q *Queue[V]) PeekPriority() int {
	q.check("PeekPriority", true)
	return q.prios.Get(0)
}

// PeekEntry returns the value with the smallest priority and that
// priority. It panics if the queue is empty.
func (q *Queue[V]) PeekEntry() (V, int) {
	q.check("PeekEntry", true)
	return q.vals.Get(0), q.prios.Get(0)
}

// ExtractMin removes and returns the value with the smallest priority.
// It panics if the queue is empty.
func (q *Queue[V]) ExtractMin() V {
	q.check("ExtractMin", true)
	v, _ := q.extractMin()
	return v
}

// ExtractMinEntry is like ExtractMin but also returns the priority of
// the removed value.
func (q *Queue[V]) ExtractMinEntry() (V, int) {
	q.check("ExtractMinEntry", true)
	return q.extractMin()
}

func (q *Queue[V]) extractMin() (V, int) {
	v, p := q.vals.Get(0), q.prios.Get(0)
	last := q.vals.Len() - 1
	if last > 0 {
		q.swap(0, last)
	}
	q.vals.Remove(last)
	q.prios.Remove(last)
	if q.vals.Len() > 0 {
		q.percolateDown(0)
	}
	return v, p
}

func (q *Queue[V]) heapify() {
	for i := q.prios.Len()/2 - 1; i >= 0; i-- {
		q.percolateDown(i)
	}
}

// percolateUp moves the entry at i towards the root for as long as its
// parent has a strictly greater priority.
func (q *Queue[V]) percolateUp(i int) {
	for i > 0 {
		parent := (i - 1) / 2
		if q.prios.Get(parent) <= q.prios.Get(i) {
			return
		}
		q.swap(parent, i)
		i = parent
	}
}

// percolateDown moves the entry at i towards the leaves for as long as
// one of its children has a strictly smaller priority. When both
// children have the same priority the left one is preferred.
func (q *Queue[V]) percolateDown(i int) {
	n := q.prios.Len()
	for {
		left := 2*i + 1
		if left >= n || left < 0 { // left < 0 after int overflow
			return
		}
		child := left
		if right := left + 1; right < n && q.prios.Get(right) < q.prios.Get(left) {
			child = right
		}
		if q.prios.Get(child) >= q.prios.Get(i) {
			return
		}
		q.swap(i, child)
		i = child
	}
}

// swap exchanges the entries at i and j in both arrays.
func (q *Queue[V]) swap(i, j int) {
	iv, jv := q.vals.Get(i), q.vals.Get(j)
	q.vals.Set(i, jv)
	q.vals.Set(j, iv)
	ip, jp := q.prios.Get(i), q.prios.Get(j)
	q.prios.Set(i, jp)
	q.prios.Set(j, ip)
	if q.callback != nil {
		q.callback(jv, iv, i, j)
	}
}
