// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package pqueue

import (
	"cloudeng.io/errors"
)

// Errors wrapped by the values passed to panic when the queue is used
// incorrectly.
var (
	ErrEmpty    = errors.New("priority queue is empty")
	ErrNilQueue = errors.New("nil priority queue")
	ErrReleased = errors.New("priority queue has been released")
)

// check must be called directly by every exported method so that the
// location reported is that of the method's caller.
func (q *Queue[V]) check(op string, nonEmpty bool) {
	switch {
	case q == nil:
		panic(violation(op, ErrNilQueue))
	case q.released:
		panic(violation(op, ErrReleased))
	case nonEmpty && q.vals.Len() == 0:
		panic(violation(op, ErrEmpty))
	}
}

func violation(op string, err error) error {
	// 0: Caller, 1: violation, 2: check, 3: exported method, 4: its caller.
	return errors.Annotate(errors.Caller(4, 2)+": pqueue."+op, err)
}
