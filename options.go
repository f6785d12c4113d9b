// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package pqueue

import "fmt"

// Option represents an option to New.
type Option[V any] func(*options[V])

type options[V any] struct {
	capacity int
	prios    []int
	vals     []V
	onSwap   func(iv, jv V, i, j int)
}

// initialCapacity returns the capacity to use for both arrays, which
// is always large enough for any initial data.
func (o *options[V]) initialCapacity() int {
	return max(o.capacity, len(o.prios))
}

// WithSliceCap sets the initial capacity of the arrays that hold the
// values and priorities. The arrays grow as needed regardless.
func WithSliceCap[V any](n int) Option[V] {
	return func(o *options[V]) {
		o.capacity = n
	}
}

// WithData supplies the initial contents of the queue, priorities[i]
// being the priority of values[i]. Both slices are copied and then
// arranged into a heap in linear time, neither is modified. WithData
// panics if the slices differ in length.
func WithData[V any](priorities []int, values []V) Option[V] {
	if len(priorities) != len(values) {
		panic(fmt.Sprintf("pqueue.WithData: %v priorities but %v values", len(priorities), len(values)))
	}
	return func(o *options[V]) {
		o.prios, o.vals = priorities, values
	}
}

// WithSwapCallback arranges for fn to be called whenever two entries
// exchange positions, with iv and jv being the values now at i and j.
// Entries that are inserted without moving, or removed, are not
// reported. fn is installed once New has heapified any data supplied
// via WithData and hence is never called from within New.
func WithSwapCallback[V any](fn func(iv, jv V, i, j int)) Option[V] {
	return func(o *options[V]) {
		o.onSwap = fn
	}
}
