// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package pointer

import (
	"image"
	"testing"
	"time"

	"github.com/gogpu/ggsketch/clock"
	"github.com/gogpu/ggsketch/particle"
)

type recorder struct {
	events  []string
	samples [][]particle.Point
	lastClk bool
}

func (r *recorder) sinks() Sinks {
	return Sinks{
		Cursor: func(_, _ float64, clicking bool) {
			r.events = append(r.events, "cursor")
			r.lastClk = clicking
		},
		Magnet: func(kind Interaction, _, _ float64) {
			r.events = append(r.events, "magnet:"+kind.String())
		},
		Particles: func(s []particle.Point) {
			r.events = append(r.events, "particles")
			r.samples = append(r.samples, s)
		},
	}
}

func TestStroke(t *testing.T) {
	rec := &recorder{}
	c := New(0.7, clock.NewManual(time.Unix(10, 0)), rec.sinks())

	c.Down(100, 100)
	c.Move(140, 100)

	want := []string{"magnet:down", "cursor", "cursor", "particles"}
	if len(rec.events) != len(want) {
		t.Fatalf("events = %v, want %v", rec.events, want)
	}
	for i := range want {
		if rec.events[i] != want[i] {
			t.Errorf("events[%d] = %q, want %q", i, rec.events[i], want[i])
		}
	}
	if got := len(rec.samples[0]); got != 28 {
		t.Errorf("samples = %d, want 28", got)
	}
	if c.Last() != (particle.Point{X: 140, Y: 100}) {
		t.Errorf("Last() = %+v", c.Last())
	}
	if !c.LastInteraction().Equal(time.Unix(10, 0)) {
		t.Errorf("LastInteraction() = %v", c.LastInteraction())
	}

	c.Up(140, 100)
	if c.Clicking() || rec.lastClk {
		t.Error("still clicking after Up")
	}
	n := len(rec.samples)
	c.Move(200, 100)
	if len(rec.samples) != n {
		t.Error("Move() without a press emitted samples")
	}
}

func TestDownRecordsInteraction(t *testing.T) {
	clk := clock.NewManual(time.Unix(10, 0))
	c := New(0.7, clk, Sinks{})

	c.SetGated(true)
	c.Down(5, 5)
	if !c.LastInteraction().IsZero() {
		t.Errorf("gated Down() set LastInteraction() = %v", c.LastInteraction())
	}
	c.Up(5, 5)

	c.SetGated(false)
	clk.Advance(time.Second)
	c.Down(5, 5)
	if want := time.Unix(11, 0); !c.LastInteraction().Equal(want) {
		t.Errorf("LastInteraction() = %v, want %v", c.LastInteraction(), want)
	}
}

func TestGate(t *testing.T) {
	rec := &recorder{}
	c := New(0.7, nil, rec.sinks())
	c.SetGated(true)

	c.Down(1, 1)
	c.Move(50, 1)
	if len(rec.events) != 0 || c.Clicking() {
		t.Fatalf("gated controller emitted %v", rec.events)
	}
	if !c.LastInteraction().IsZero() {
		t.Error("gated Move() updated the interaction time")
	}

	c.SetGated(false)
	c.Down(1, 1)
	c.SetGated(true)
	c.Up(1, 1)
	if c.Clicking() {
		t.Error("gated Up() did not clear clicking")
	}
	for _, e := range rec.events {
		if e == "magnet:up" {
			t.Error("gated Up() emitted a magnet event")
		}
	}
}

func TestNilSinks(t *testing.T) {
	c := New(0.7, nil, Sinks{})
	c.Down(0, 0)
	c.Move(10, 10)
	c.Up(10, 10)
}

func TestPosition(t *testing.T) {
	if got := Position(5, 5, nil); got != (particle.Point{}) {
		t.Errorf("Position(nil) = %+v, want origin", got)
	}
	r := image.Rect(10, 20, 110, 120)
	got := Position(15, 25, &r)
	if got != (particle.Point{X: 5, Y: 5}) {
		t.Errorf("Position() = %+v, want (5,5)", got)
	}
	if !Within(got, 100, 100) || Within(particle.Point{X: -1}, 100, 100) {
		t.Error("Within() wrong")
	}
}
