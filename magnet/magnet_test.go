// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package magnet

import (
	"image"
	"testing"
	"time"

	"github.com/gogpu/ggsketch/clock"
)

func square(x, y, size float64) Options {
	return Options{X: x, Y: y, Width: size, Height: size}
}

func TestCreateDefaults(t *testing.T) {
	changes := 0
	mg := NewManager(WithChangeListener(func(*Magnet) { changes++ }))
	a := mg.Create(Options{})
	b := mg.Create(Options{Type: "A", Scale: 2})
	if a.ID != 1 || b.ID != 2 {
		t.Errorf("IDs = %d, %d, want 1, 2", a.ID, b.ID)
	}
	if a.Type != DefaultType || a.Scale != 1 || a.X != 0 || a.Rotation != 0 {
		t.Errorf("defaults = %+v", a)
	}
	if b.Scale != 2 {
		t.Errorf("Scale = %v, want 2", b.Scale)
	}
	if changes != 2 {
		t.Errorf("change notifications = %d, want 2", changes)
	}
}

func TestAt(t *testing.T) {
	mg := NewManager()
	bottom := mg.Create(square(50, 50, 40))
	top := mg.Create(square(60, 50, 40))
	mg.Create(Options{X: 200, Y: 200})

	tests := []struct {
		name string
		x, y float64
		want *Magnet
	}{
		{"overlap picks top", 55, 50, top},
		{"bottom only", 32, 50, bottom},
		{"miss", 150, 150, nil},
		{"zero size never hits", 200, 200, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := mg.At(tt.x, tt.y); got != tt.want {
				t.Errorf("At(%v, %v) = %v, want %v", tt.x, tt.y, got, tt.want)
			}
		})
	}

	t.Run("scaled box", func(t *testing.T) {
		m := mg.Create(Options{X: 500, Y: 500, Width: 10, Height: 10, Scale: 3})
		if mg.At(514, 500) != m {
			t.Error("At() missed a point inside the scaled box")
		}
	})
}

func TestDragPromotesAndStops(t *testing.T) {
	mg := NewManager(WithCanvasSize(400, 300))
	bottom := mg.Create(square(50, 50, 40))
	top := mg.Create(square(60, 50, 40))

	if got := mg.StartDragging(35, 50); got != bottom {
		t.Fatalf("StartDragging() = %v, want bottom", got)
	}
	if got := mg.At(55, 50); got != bottom {
		t.Errorf("after promotion At() = %v, want bottom", got)
	}
	ms := mg.Magnets()
	if ms[len(ms)-1] != bottom {
		t.Error("dragged magnet is not last in z-order")
	}

	mg.MoveDragging(45, 60)
	if bottom.X != 60 || bottom.Y != 60 {
		t.Errorf("position = (%v, %v), want (60, 60)", bottom.X, bottom.Y)
	}

	if got := mg.StopDragging(0, 0); got != bottom {
		t.Errorf("StopDragging() = %v, want bottom", got)
	}
	for _, m := range mg.Magnets() {
		if m.Dragging {
			t.Errorf("magnet %d still dragging after StopDragging", m.ID)
		}
	}
	if mg.StopDragging(0, 0) != nil {
		t.Error("second StopDragging() returned a magnet")
	}
	_ = top
}

func TestSingleDrag(t *testing.T) {
	mg := NewManager()
	a := mg.Create(square(50, 50, 20))
	b := mg.Create(square(150, 50, 20))
	mg.StartDragging(50, 50)
	mg.StartDragging(150, 50)
	if a.Dragging || !b.Dragging {
		t.Errorf("Dragging = %v, %v, want false, true", a.Dragging, b.Dragging)
	}
}

func TestMoveDraggingClamps(t *testing.T) {
	const w, h = 200.0, 100.0
	tests := []struct {
		name  string
		x, y  float64
		wantX float64
		wantY float64
	}{
		{"left top", -50, -50, 20, 10},
		{"right bottom", 500, 500, 180, 90},
		{"inside", 100, 50, 100, 50},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mg := NewManager(WithCanvasSize(w, h))
			m := mg.Create(Options{X: 100, Y: 50, Width: 20, Height: 10, Scale: 2})
			mg.StartDragging(100, 50)
			mg.MoveDragging(tt.x, tt.y)
			if m.X != tt.wantX || m.Y != tt.wantY {
				t.Errorf("position = (%v, %v), want (%v, %v)", m.X, m.Y, tt.wantX, tt.wantY)
			}
			b := m.Bounds()
			if b.Min.X < 0 || b.Min.Y < 0 || float64(b.Max.X) > w || float64(b.Max.Y) > h {
				t.Errorf("Bounds() = %v outside canvas", b)
			}
		})
	}
}

func TestStampCooldown(t *testing.T) {
	m0 := clock.NewManual(time.Unix(0, 0))
	timers := clock.NewTimers(m0)
	stamps := 0
	mg := NewManager(WithScheduler(timers), WithStampListener(func(m *Magnet) {
		if !m.Stamping {
			t.Error("stamp listener called before Stamping was set")
		}
		stamps++
	}))

	m := mg.Create(square(10, 10, 10))
	if mg.Stamp(m) {
		t.Fatal("Stamp() without image succeeded")
	}

	mg.SetImage(DefaultType, image.NewRGBA(image.Rect(0, 0, 4, 4)))
	if !mg.Stamp(m) {
		t.Fatal("Stamp() with image failed")
	}
	if mg.Stamp(m) {
		t.Error("Stamp() during cooldown succeeded")
	}
	if !m.Stamped || !m.Stamping {
		t.Errorf("flags = stamped %v stamping %v, want true true", m.Stamped, m.Stamping)
	}

	m0.Advance(99 * time.Millisecond)
	timers.Run(m0.Now())
	if !m.Stamping {
		t.Error("cooldown ended early")
	}
	m0.Advance(time.Millisecond)
	timers.Run(m0.Now())
	if m.Stamping {
		t.Error("cooldown did not end after 100ms")
	}
	if !mg.Stamp(m) || stamps != 2 {
		t.Errorf("stamps = %d, want 2", stamps)
	}
	if mg.Stamp(nil) {
		t.Error("Stamp(nil) succeeded")
	}
}
