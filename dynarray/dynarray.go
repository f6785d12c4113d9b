// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package dynarray provides a growable, index addressable array.
package dynarray

import (
	"fmt"

	"cloudeng.io/errors"
)

// ErrIndexOutOfRange is wrapped by the value passed to panic when an
// index is outside of the range allowed by an operation.
var ErrIndexOutOfRange = errors.New("index out of range")

// Array is a growable array. Appending to, and removing from, the end
// of the array are amortized O(1); inserting or removing anywhere else
// shifts the elements that follow. Elements are stored by value and
// slots vacated by Remove are zeroed so that the array does not retain
// references to removed elements.
type Array[T any] struct {
	storage []T
}

// New creates a new, empty, Array with the specified initial capacity.
func New[T any](capacity int) *Array[T] {
	if capacity < 0 {
		capacity = 0
	}
	return &Array[T]{
		storage: make([]T, 0, capacity),
	}
}

// Len returns the number of elements in the array.
func (a *Array[T]) Len() int {
	return len(a.storage)
}

// Cap returns the current capacity of the array.
func (a *Array[T]) Cap() int {
	return cap(a.storage)
}

// Get returns the i'th element. It panics if i is not in [0, Len()).
func (a *Array[T]) Get(i int) T {
	a.check(i, len(a.storage))
	return a.storage[i]
}

// Set overwrites the i'th element. It panics if i is not in [0, Len()).
func (a *Array[T]) Set(i int, v T) {
	a.check(i, len(a.storage))
	a.storage[i] = v
}

// Append appends v to the end of the array.
func (a *Array[T]) Append(v T) {
	a.grow(1)
	a.storage = append(a.storage, v)
}

// Insert inserts v at index i, shifting the elements at i and above
// up by one. An index of Len() is equivalent to Append. It panics
// if i is not in [0, Len()].
func (a *Array[T]) Insert(i int, v T) {
	n := len(a.storage)
	a.check(i, n+1)
	a.grow(1)
	a.storage = a.storage[:n+1]
	copy(a.storage[i+1:], a.storage[i:n])
	a.storage[i] = v
}

// Remove removes and returns the i'th element, shifting the elements
// above it down by one. It panics if i is not in [0, Len()).
func (a *Array[T]) Remove(i int) T {
	n := len(a.storage)
	a.check(i, n)
	v := a.storage[i]
	copy(a.storage[i:], a.storage[i+1:])
	var zero T
	a.storage[n-1] = zero
	a.storage = a.storage[:n-1]
	return v
}

// Values returns a copy of the contents of the array.
func (a *Array[T]) Values() []T {
	v := make([]T, len(a.storage))
	copy(v, a.storage)
	return v
}

// Compact reduces the storage used by the array to that needed for
// its current contents.
func (a *Array[T]) Compact() {
	if len(a.storage) == cap(a.storage) {
		return
	}
	n := make([]T, len(a.storage))
	copy(n, a.storage)
	a.storage = n
}

// Release discards the storage used by the array, leaving it empty.
// The elements themselves are not otherwise affected.
func (a *Array[T]) Release() {
	a.storage = nil
}

// grow ensures that there is room for n more elements, doubling
// the capacity as required.
func (a *Array[T]) grow(n int) {
	l, c := len(a.storage), cap(a.storage)
	if l+n <= c {
		return
	}
	nc := c * 2
	if nc < l+n {
		nc = l + n
	}
	ns := make([]T, l, nc)
	copy(ns, a.storage)
	a.storage = ns
}

func (a *Array[T]) check(i, limit int) {
	if i < 0 || i >= limit {
		panic(fmt.Errorf("%w: %d not in [0, %d)", ErrIndexOutOfRange, i, limit))
	}
}
