// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package schedule

import (
	"testing"
	"time"
)

func TestPriority(t *testing.T) {
	origin := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	s := New[int](WithClock(func() time.Time { return origin }))
	for i, tc := range []struct {
		offset time.Duration
		want   int
	}{
		{0, 0},
		{900 * time.Microsecond, 0},
		{time.Millisecond, 1},
		{-time.Nanosecond, -1},
		{-900 * time.Microsecond, -1},
		{-time.Millisecond, -1},
		{-1100 * time.Microsecond, -2},
		{-2 * time.Millisecond, -2},
	} {
		if got := s.priority(origin.Add(tc.offset)); got != tc.want {
			t.Errorf("%v: %v: got %v, want %v", i, tc.offset, got, tc.want)
		}
	}
}
