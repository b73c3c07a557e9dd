// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package clock provides time sources and a deferred-callback queue that is
// drained on the host's update tick, so deferred work runs on the same
// goroutine as everything else.
package clock

import (
	"sort"
	"sync"
	"time"
)

// Clock reports the current time.
type Clock interface {
	Now() time.Time
}

// Real is the wall clock.
type Real struct{}

// Now returns time.Now().
func (Real) Now() time.Time { return time.Now() }

// Manual is a controllable clock for tests and offline rendering.
type Manual struct {
	mu  sync.RWMutex
	now time.Time
}

// NewManual creates a Manual clock starting at start.
func NewManual(start time.Time) *Manual {
	return &Manual{now: start}
}

// Now returns the current manual time.
func (m *Manual) Now() time.Time {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.now
}

// Set moves the clock to t.
func (m *Manual) Set(t time.Time) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.now = t
}

// Advance moves the clock forward by d.
func (m *Manual) Advance(d time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.now = m.now.Add(d)
}

type timer struct {
	due time.Time
	seq uint64
	fn  func()
}

// Timers is a queue of fire-and-forget callbacks. Callbacks never run on
// their own; Run executes the due ones. Scheduled callbacks cannot be
// cancelled.
//
// Timers is NOT safe for concurrent use.
type Timers struct {
	clock   Clock
	pending []timer
	seq     uint64
}

// NewTimers creates a queue that measures delays against c.
// A nil c uses Real.
func NewTimers(c Clock) *Timers {
	if c == nil {
		c = Real{}
	}
	return &Timers{clock: c}
}

// Now returns the queue clock's current time.
func (t *Timers) Now() time.Time { return t.clock.Now() }

// After schedules fn to run once d has elapsed.
func (t *Timers) After(d time.Duration, fn func()) {
	t.seq++
	t.pending = append(t.pending, timer{due: t.clock.Now().Add(d), seq: t.seq, fn: fn})
}

// Run executes every callback due at now, earliest first, and returns how
// many ran. Callbacks scheduled by a running callback wait for the next Run.
func (t *Timers) Run(now time.Time) int {
	var due, rest []timer
	for _, tm := range t.pending {
		if !tm.due.After(now) {
			due = append(due, tm)
		} else {
			rest = append(rest, tm)
		}
	}
	if len(due) == 0 {
		return 0
	}
	t.pending = rest
	sort.Slice(due, func(i, j int) bool {
		if due[i].due.Equal(due[j].due) {
			return due[i].seq < due[j].seq
		}
		return due[i].due.Before(due[j].due)
	})
	for _, tm := range due {
		tm.fn()
	}
	return len(due)
}

// Pending returns the number of callbacks not yet run.
func (t *Timers) Pending() int { return len(t.pending) }
