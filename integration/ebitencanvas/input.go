// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package ebitencanvas

import "github.com/hajimehoshi/ebiten/v2"

// Pointer receives translated pointer events. *ggsketch.Sketch satisfies
// it.
type Pointer interface {
	PointerDown(x, y float64)
	PointerMove(x, y float64)
	PointerUp(x, y float64)
}

// Sample is the pointer state observed in one tick.
type Sample struct {
	X, Y    float64
	Pressed bool
}

// Tracker turns per-tick samples into down, move and up events.
type Tracker struct {
	target  Pointer
	last    Sample
	started bool

	prevTouches []ebiten.TouchID
}

// NewTracker creates a tracker sending events to target.
func NewTracker(target Pointer) *Tracker {
	return &Tracker{target: target}
}

// Feed processes one sample. Motion is reported before a press and after
// a release, so strokes start and end where the pointer is.
func (t *Tracker) Feed(s Sample) {
	if !t.started {
		t.started = true
		t.last = Sample{X: s.X, Y: s.Y}
	}
	moved := s.X != t.last.X || s.Y != t.last.Y
	switch {
	case s.Pressed && !t.last.Pressed:
		if moved {
			t.target.PointerMove(s.X, s.Y)
		}
		t.target.PointerDown(s.X, s.Y)
	case !s.Pressed && t.last.Pressed:
		if moved {
			t.target.PointerMove(s.X, s.Y)
		}
		t.target.PointerUp(s.X, s.Y)
	case moved:
		t.target.PointerMove(s.X, s.Y)
	}
	t.last = s
}

// Poll reads the mouse and the first active touch and feeds the result.
// A touch takes precedence over the mouse; when the touch ends, the last
// touch position is released.
func (t *Tracker) Poll() {
	t.prevTouches = ebiten.AppendTouchIDs(t.prevTouches[:0])
	if len(t.prevTouches) > 0 {
		x, y := ebiten.TouchPosition(t.prevTouches[0])
		t.Feed(Sample{X: float64(x), Y: float64(y), Pressed: true})
		return
	}
	if t.last.Pressed && !ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		t.Feed(Sample{X: t.last.X, Y: t.last.Y})
	}
	mx, my := ebiten.CursorPosition()
	t.Feed(Sample{
		X:       float64(mx),
		Y:       float64(my),
		Pressed: ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft),
	})
}
