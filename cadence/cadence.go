// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package cadence picks the render rate: the target rate while the user
// interacts, a lower idle rate once interaction stopped for a while.
package cadence

import (
	"time"

	"github.com/gogpu/ggsketch/config"
)

// Mode is a render cadence state.
type Mode int

// Modes.
const (
	Active Mode = iota
	Idle
)

// String returns "active" or "idle".
func (m Mode) String() string {
	if m == Idle {
		return "idle"
	}
	return "active"
}

// Policy maps the time since the last interaction to a frame rate.
type Policy struct {
	TargetFPS   int
	IdleFPS     int
	IdleTimeout time.Duration
}

// FromConfig builds a Policy from c.
func FromConfig(c config.Config) Policy {
	return Policy{TargetFPS: c.TargetFPS, IdleFPS: c.IdleFPS, IdleTimeout: c.IdleTimeout}
}

// Mode returns Idle once more than IdleTimeout passed since last. A zero
// last means no interaction yet, which counts as idle.
func (p Policy) Mode(now, last time.Time) Mode {
	if last.IsZero() || now.Sub(last) > p.IdleTimeout {
		return Idle
	}
	return Active
}

// FPS returns the frame rate for the mode at now.
func (p Policy) FPS(now, last time.Time) int {
	if p.Mode(now, last) == Idle {
		return p.IdleFPS
	}
	return p.TargetFPS
}

// Interval returns the frame interval for the mode at now.
func (p Policy) Interval(now, last time.Time) time.Duration {
	fps := p.FPS(now, last)
	if fps <= 0 {
		return 0
	}
	return time.Second / time.Duration(fps)
}

// Throttle decides whether a host tick should render a frame.
//
// Throttle is NOT safe for concurrent use.
type Throttle struct {
	policy Policy
	last   time.Time
}

// NewThrottle creates a throttle for p.
func NewThrottle(p Policy) *Throttle {
	return &Throttle{policy: p}
}

// SetPolicy replaces the policy.
func (t *Throttle) SetPolicy(p Policy) { t.policy = p }

// Ready reports whether a frame is due at now, given the last interaction
// time, and records the frame if so.
func (t *Throttle) Ready(now, lastInteraction time.Time) bool {
	if !t.last.IsZero() && now.Sub(t.last) < t.policy.Interval(now, lastInteraction) {
		return false
	}
	t.last = now
	return true
}
