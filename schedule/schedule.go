// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package schedule provides a scheduler that dispatches events in the
// order of the time at which they are due.
package schedule

import (
	"context"
	"iter"
	"time"

	"cloudeng.io/errors"
	"cloudeng.io/logging/ctxlog"
	"cloudeng.io/pqueue"
)

// Event represents a value that is due at a specific time.
type Event[T any] struct {
	When  time.Time
	Value T
}

type options struct {
	resolution time.Duration
	now        func() time.Time
}

// Option represents an option to New.
type Option func(o *options)

// WithResolution sets the resolution with which event times are
// compared, events that fall within the same interval of this duration
// may be dispatched in any order. The default is one millisecond.
func WithResolution(d time.Duration) Option {
	return func(o *options) {
		if d > 0 {
			o.resolution = d
		}
	}
}

// WithClock sets the function used to obtain the current time,
// the default is time.Now.
func WithClock(now func() time.Time) Option {
	return func(o *options) {
		o.now = now
	}
}

// Scheduler orders events by the time at which they are due. It is not
// safe for concurrent use, in particular, Add must not be called whilst
// Run is executing.
type Scheduler[T any] struct {
	opts   options
	origin time.Time
	q      *pqueue.Queue[Event[T]]
}

// New returns a new Scheduler.
func New[T any](opts ...Option) *Scheduler[T] {
	s := &Scheduler[T]{
		opts: options{
			resolution: time.Millisecond,
			now:        time.Now,
		},
		q: pqueue.New[Event[T]](),
	}
	for _, fn := range opts {
		fn(&s.opts)
	}
	s.origin = s.opts.now()
	return s
}

// priority converts a time into an offset from the scheduler's origin
// in units of its resolution, rounding down so that every interval,
// including those before the origin, spans exactly one resolution.
func (s *Scheduler[T]) priority(when time.Time) int {
	d := when.Sub(s.origin)
	p := d / s.opts.resolution
	if d%s.opts.resolution < 0 {
		p--
	}
	return int(p)
}

// Add schedules v to be dispatched at when.
func (s *Scheduler[T]) Add(when time.Time, v T) {
	s.q.Insert(Event[T]{When: when, Value: v}, s.priority(when))
}

// Len returns the number of pending events.
func (s *Scheduler[T]) Len() int {
	return s.q.Len()
}

// Next returns the next event that is due, without removing it, and
// true, or false if there are no pending events.
func (s *Scheduler[T]) Next() (Event[T], bool) {
	if s.q.IsEmpty() {
		return Event[T]{}, false
	}
	return s.q.Peek(), true
}

// Drain returns an iterator that removes and yields all pending events
// in order without waiting for them to become due.
func (s *Scheduler[T]) Drain() iter.Seq[Event[T]] {
	return func(yield func(Event[T]) bool) {
		for !s.q.IsEmpty() {
			if !yield(s.q.ExtractMin()) {
				return
			}
		}
	}
}

// Run dispatches every pending event to fn once it is due. It returns
// when there are no more pending events or the context is canceled.
// Errors returned by fn do not stop Run, they are collected and
// returned once Run completes.
func (s *Scheduler[T]) Run(ctx context.Context, fn func(context.Context, Event[T]) error) error {
	logger := ctxlog.Logger(ctx)
	errs := &errors.M{}
	for !s.q.IsEmpty() {
		ev := s.q.Peek()
		if delay := ev.When.Sub(s.opts.now()); delay > 0 {
			logger.Debug("waiting for event", "when", ev.When, "delay", delay, "pending", s.q.Len())
			timer := time.NewTimer(delay)
			select {
			case <-ctx.Done():
				timer.Stop()
				errs.Append(context.Cause(ctx))
				return errs.Err()
			case <-timer.C:
			}
		}
		s.q.ExtractMin()
		logger.Debug("dispatching event", "when", ev.When, "pending", s.q.Len())
		if err := fn(ctx, ev); err != nil {
			logger.Warn("event failed", "when", ev.When, "error", err)
			errs.Append(err)
		}
		if ctx.Err() != nil {
			errs.Append(context.Cause(ctx))
			return errs.Err()
		}
	}
	return errs.Err()
}
