// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package pointer turns raw pointer input into sketch events.
//
// The Controller tracks the last position, whether a button or touch is
// held, and a gate that suppresses interaction while the entry transition
// plays. Moves while held emit stroke samples computed with
// particle.SegmentSamples, the same density rule the particle engine uses.
package pointer

import (
	"image"
	"time"

	"github.com/gogpu/ggsketch/clock"
	"github.com/gogpu/ggsketch/particle"
)

// Interaction tags a magnet interaction event.
type Interaction int

const (
	// Down is a press.
	Down Interaction = iota
	// Up is a release.
	Up
)

// String returns "down" or "up".
func (i Interaction) String() string {
	if i == Up {
		return "up"
	}
	return "down"
}

// Sinks receive controller events. Nil sinks are skipped.
type Sinks struct {
	Cursor    func(x, y float64, clicking bool)
	Magnet    func(kind Interaction, x, y float64)
	Particles func(samples []particle.Point)
}

// Controller translates pointer input.
//
// Controller is NOT safe for concurrent use.
type Controller struct {
	sinks   Sinks
	clock   clock.Clock
	density float64

	last            particle.Point
	clicking        bool
	gated           bool
	lastInteraction time.Time
}

// New creates a controller sampling strokes at density. A nil clock uses
// clock.Real.
func New(density float64, c clock.Clock, sinks Sinks) *Controller {
	if c == nil {
		c = clock.Real{}
	}
	return &Controller{sinks: sinks, clock: c, density: density}
}

// SetDensity changes the stroke density, e.g. after the config was
// resolved again.
func (c *Controller) SetDensity(d float64) { c.density = d }

// SetGated enables or disables the interaction gate.
func (c *Controller) SetGated(gated bool) { c.gated = gated }

// Gated reports whether interaction is suppressed.
func (c *Controller) Gated() bool { return c.gated }

// Clicking reports whether the pointer is held.
func (c *Controller) Clicking() bool { return c.clicking }

// Last returns the last recorded pointer position.
func (c *Controller) Last() particle.Point { return c.last }

// LastInteraction returns the time of the last accepted move or press. It
// is the zero time before any.
func (c *Controller) LastInteraction() time.Time { return c.lastInteraction }

// Move handles pointer motion. The cursor event is emitted before any
// stroke samples.
func (c *Controller) Move(x, y float64) {
	if c.gated {
		return
	}
	c.lastInteraction = c.clock.Now()
	cur := particle.Point{X: x, Y: y}
	c.cursor(x, y)
	if c.clicking && c.sinks.Particles != nil {
		c.sinks.Particles(particle.SegmentSamples(c.last, cur, c.density))
	}
	c.last = cur
}

// Down handles a press.
func (c *Controller) Down(x, y float64) {
	if c.gated {
		return
	}
	c.lastInteraction = c.clock.Now()
	c.clicking = true
	c.last = particle.Point{X: x, Y: y}
	c.magnet(Down, x, y)
	c.cursor(x, y)
}

// Up handles a release. The held state clears even when gated.
func (c *Controller) Up(x, y float64) {
	c.clicking = false
	if c.gated {
		return
	}
	c.magnet(Up, x, y)
	c.cursor(x, y)
}

func (c *Controller) cursor(x, y float64) {
	if c.sinks.Cursor != nil {
		c.sinks.Cursor(x, y, c.clicking)
	}
}

func (c *Controller) magnet(kind Interaction, x, y float64) {
	if c.sinks.Magnet != nil {
		c.sinks.Magnet(kind, x, y)
	}
}

// Position converts window coordinates to canvas coordinates. A nil
// canvas rectangle yields the origin.
func Position(x, y float64, canvas *image.Rectangle) particle.Point {
	if canvas == nil {
		return particle.Point{}
	}
	return particle.Point{X: x - float64(canvas.Min.X), Y: y - float64(canvas.Min.Y)}
}

// Within reports whether p lies inside a w×h canvas.
func Within(p particle.Point, w, h float64) bool {
	return p.X >= 0 && p.X <= w && p.Y >= 0 && p.Y <= h
}
