// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package pqueue

import (
	"slices"
	"testing"
)

// Verify checks that the heap invariant holds across the whole queue
// and that the value and priority arrays are the same length.
func (q *Queue[V]) Verify(t *testing.T) {
	t.Helper()
	if vl, pl := q.vals.Len(), q.prios.Len(); vl != pl {
		t.Errorf("arrays are misaligned: %v values, %v priorities", vl, pl)
		return
	}
	q.verify(t, 0)
}

func (q *Queue[V]) verify(t *testing.T, p int) {
	t.Helper()
	n := q.prios.Len()
	l, r := (2*p)+1, (2*p)+2
	if l < n {
		if q.prios.Get(l) < q.prios.Get(p) {
			t.Errorf("heap inconsistent: left sub tree for %v (%v > [%v]: %v)", p, q.prios.Get(p), l, q.prios.Get(l))
			return
		}
		q.verify(t, l)
	}
	if r < n {
		if q.prios.Get(r) < q.prios.Get(p) {
			t.Errorf("heap inconsistent: right sub tree for %v (%v > [%v]: %v)", p, q.prios.Get(p), r, q.prios.Get(r))
			return
		}
		q.verify(t, r)
	}
}

// Priorities returns a copy of the priorities in heap order.
func (q *Queue[V]) Priorities() []int {
	return q.prios.Values()
}

// Values returns a copy of the values in heap order.
func (q *Queue[V]) Values() []V {
	return q.vals.Values()
}

func TestSwapKeepsAlignment(t *testing.T) {
	type entry struct {
		name string
		prio int
	}
	var q *Queue[entry]
	swaps := 0
	q = New(WithSwapCallback(func(iv, jv entry, i, j int) {
		swaps++
		if got, want := q.vals.Get(i), iv; got != want {
			t.Errorf("[%v]: got %v, want %v", i, got, want)
		}
		if got, want := q.vals.Get(j), jv; got != want {
			t.Errorf("[%v]: got %v, want %v", j, got, want)
		}
	}))
	for i, p := range []int{9, 4, 7, 1, 8, 2, 2, 6, 0, 5} {
		q.Insert(entry{name: string(rune('a' + i)), prio: p}, p)
	}
	for q.Len() > 0 {
		q.Verify(t)
		for i := 0; i < q.Len(); i++ {
			if got, want := q.vals.Get(i).prio, q.prios.Get(i); got != want {
				t.Errorf("[%v]: value and priority are misaligned: %v != %v", i, got, want)
			}
		}
		v, p := q.ExtractMinEntry()
		if got, want := v.prio, p; got != want {
			t.Errorf("got %v, want %v", got, want)
		}
	}
	if swaps == 0 {
		t.Errorf("swap callback was never called")
	}
}

func TestPercolateDownPrefersLeft(t *testing.T) {
	q := New[string]()
	q.Insert("root", 0)
	q.Insert("left", 5)
	q.Insert("right", 5)
	q.Insert("last", 9)
	if got, want := q.Values(), []string{"root", "left", "right", "last"}; !slices.Equal(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	q.ExtractMin()
	// "last" is moved to the root and must be swapped with the left
	// child since both children have the same priority.
	if got, want := q.Values(), []string{"left", "last", "right"}; !slices.Equal(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestHeapify(t *testing.T) {
	prios := []int{5, 3, 8, 1, 9, 2, 7}
	vals := []string{"5", "3", "8", "1", "9", "2", "7"}
	q := New(WithData(prios, vals))
	q.Verify(t)
	if got, want := prios, []int{5, 3, 8, 1, 9, 2, 7}; !slices.Equal(got, want) {
		t.Errorf("WithData modified its argument: got %v, want %v", got, want)
	}
	if got, want := q.Priorities(), []int{1, 3, 2, 5, 9, 8, 7}; !slices.Equal(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}
