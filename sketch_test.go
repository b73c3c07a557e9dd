// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package ggsketch

import (
	"errors"
	"image"
	"image/color"
	"math/rand/v2"
	"testing"
	"time"

	"github.com/gogpu/gg"
	"github.com/gogpu/ggsketch/clock"
	"github.com/gogpu/ggsketch/config"
	"github.com/gogpu/ggsketch/magnet"
	"github.com/gogpu/ggsketch/particle"
	"github.com/gogpu/ggsketch/transition"
)

func newTestSketch(t *testing.T, w, h int, opts ...Option) (*Sketch, *clock.Manual) {
	t.Helper()
	m := clock.NewManual(time.Unix(1000, 0))
	opts = append([]Option{WithClock(m), WithRandSource(rand.NewPCG(7, 7))}, opts...)
	s, err := New(w, h, opts...)
	if err != nil {
		t.Fatalf("New() = %v", err)
	}
	t.Cleanup(func() { _ = s.Close() })
	s.Start()
	return s, m
}

func redImage() image.Image {
	img := image.NewRGBA(image.Rect(0, 0, 10, 10))
	for y := range 10 {
		for x := range 10 {
			img.SetRGBA(x, y, color.RGBA{R: 255, A: 255})
		}
	}
	return img
}

func TestNewErrors(t *testing.T) {
	if _, err := New(0, 10); !errors.Is(err, ErrInvalidDimensions) {
		t.Errorf("New(0, 10) = %v, want ErrInvalidDimensions", err)
	}
	bad := -1.0
	_, err := New(10, 10, WithOverride(config.Override{LineWidth: &bad}))
	if !errors.Is(err, ErrInvalidConfig) || !errors.Is(err, config.ErrInvalid) {
		t.Errorf("New(bad config) = %v, want ErrInvalidConfig wrapping config.ErrInvalid", err)
	}
}

func TestStrokeEndToEnd(t *testing.T) {
	var created int
	s, _ := newTestSketch(t, 1920, 1080, WithSinks(Sinks{
		ParticlesCreated: func(ps []particle.Particle) { created += len(ps) },
	}))
	if s.AppState() != transition.Initial {
		t.Fatalf("AppState() = %v, want INITIAL", s.AppState())
	}

	s.PointerDown(100, 100)
	s.PointerMove(140, 100)
	s.PointerUp(140, 100)

	if got := s.Particles().Len(); got != 28 {
		t.Errorf("Particles().Len() = %d, want 28", got)
	}
	if created != 28 {
		t.Errorf("ParticlesCreated saw %d, want 28", created)
	}
}

func TestTransitionGatesInput(t *testing.T) {
	s, clk := newTestSketch(t, 1920, 1080)

	s.PointerDown(10, 500)
	s.PointerMove(1900, 500)
	s.PointerUp(1900, 500)
	before := s.Particles().Len()
	if before == 0 {
		t.Fatal("no particles drawn before the transition")
	}

	s.StartTransition()
	if s.AppState() != transition.Transitioning || !s.Pointer().Gated() {
		t.Fatalf("AppState() = %v, gated = %v", s.AppState(), s.Pointer().Gated())
	}
	s.PointerDown(100, 100)
	s.PointerMove(200, 100)
	if s.Particles().Len() != before {
		t.Error("gated stroke added particles")
	}

	total := transition.DefaultTimings().Total()
	for elapsed := time.Duration(0); elapsed <= total; elapsed += 100 * time.Millisecond {
		clk.Advance(100 * time.Millisecond)
		s.Update(clk.Now())
	}
	if s.AppState() != transition.Interactive || s.Pointer().Gated() {
		t.Errorf("after the timeline: AppState() = %v, gated = %v", s.AppState(), s.Pointer().Gated())
	}
	if !s.Transition().State().IsFirstTransitionComplete {
		t.Error("first transition latch not set")
	}
	s.Particles().Each(func(p particle.Particle) bool {
		if p.X > 0 {
			t.Errorf("particle at x=%v survived the wipe", p.X)
			return false
		}
		return true
	})
}

func TestRestartedTransitionKeepsArtwork(t *testing.T) {
	s, clk := newTestSketch(t, 1920, 1080)
	tick := func(d time.Duration) {
		clk.Advance(d)
		s.Update(clk.Now())
	}

	s.StartTransition()
	total := transition.DefaultTimings().Total()
	for elapsed := time.Duration(0); elapsed <= total; elapsed += 100 * time.Millisecond {
		tick(100 * time.Millisecond)
	}
	if s.AppState() != transition.Interactive {
		t.Fatalf("AppState() = %v, want INTERACTIVE", s.AppState())
	}

	s.PointerDown(100, 500)
	s.PointerMove(1800, 500)
	s.PointerUp(1800, 500)
	before := s.Particles().Len()

	s.Transition().Reset()
	s.StartTransition()
	tick(16 * time.Millisecond)

	if got := s.Particles().Len(); got != before {
		t.Errorf("Particles().Len() = %d after one tick, want %d", got, before)
	}
	if s.AppState() != transition.Transitioning || !s.Pointer().Gated() {
		t.Errorf("AppState() = %v, gated = %v; want TRANSITIONING and gated", s.AppState(), s.Pointer().Gated())
	}
}

func TestAutoTransitionOnConstrainedViewport(t *testing.T) {
	s, _ := newTestSketch(t, 600, 800)
	st := s.Transition().State()
	if !st.AutoTransitionTriggered || s.AppState() != transition.Transitioning {
		t.Errorf("State() = %+v, want auto-triggered transition", st)
	}
}

func TestMobileTransitionIsShorter(t *testing.T) {
	s, clk := newTestSketch(t, 600, 800)
	for range 30 {
		clk.Advance(100 * time.Millisecond)
		s.Update(clk.Now())
	}
	if s.AppState() != transition.Interactive {
		t.Errorf("AppState() after 3s on mobile = %v, want INTERACTIVE", s.AppState())
	}
}

func TestMagnetDragAndStamp(t *testing.T) {
	var stamped, changed int
	s, clk := newTestSketch(t, 1920, 1080,
		WithMagnetImage(magnet.DefaultType, redImage()),
		WithSinks(Sinks{
			MagnetStamped: func(*magnet.Magnet) { stamped++ },
			MagnetChanged: func(*magnet.Magnet) { changed++ },
		}),
	)
	m := s.AddMagnet(magnet.Options{X: 400, Y: 300, Width: 100, Height: 100, Scale: 1})

	s.PointerDown(400, 300)
	s.PointerMove(500, 350)
	if m.X != 500 || m.Y != 350 {
		t.Errorf("magnet at (%v, %v), want (500, 350)", m.X, m.Y)
	}
	s.PointerUp(500, 350)

	if stamped != 1 || !m.Stamped || !m.Stamping {
		t.Fatalf("stamped = %d, flags %v/%v", stamped, m.Stamped, m.Stamping)
	}
	if changed < 3 {
		t.Errorf("MagnetChanged calls = %d, want at least 3", changed)
	}
	n := s.Particles().Len()
	if n == 0 {
		t.Fatal("stamp produced no particles")
	}
	s.Particles().Each(func(p particle.Particle) bool {
		if !p.Stamp {
			t.Error("drag painted stroke particles")
			return false
		}
		return true
	})

	clk.Advance(100 * time.Millisecond)
	s.Update(clk.Now())
	if m.Stamping {
		t.Error("stamp cooldown did not end")
	}
}

func TestEmbeddedResolvesConfig(t *testing.T) {
	s, _ := newTestSketch(t, 1920, 1080)
	s.SetEmbedded(true)
	cfg := s.Config()
	if cfg.MaxParticles != 20000 || cfg.ParticleDensity != 0.35 {
		t.Errorf("Config() = density %v max %d, want 0.35 and 20000", cfg.ParticleDensity, cfg.MaxParticles)
	}
	if err := s.Resize(960, 540, 0, 0); err != nil {
		t.Fatal(err)
	}
	if got := s.Config().LineWidth; got != 6 {
		t.Errorf("LineWidth = %v, want 6", got)
	}
}

func TestRender(t *testing.T) {
	s, _ := newTestSketch(t, 200, 200, WithMagnetImage(magnet.DefaultType, redImage()))
	s.StartTransition()
	s.Transition().UpdateProgress(transition.Wipe, 1)
	s.AddMagnet(magnet.Options{X: 100, Y: 100, Width: 40, Height: 40, Scale: 1})

	dc := gg.NewContext(200, 200)
	defer func() { _ = dc.Close() }()
	if err := s.Render(dc); err != nil {
		t.Fatalf("Render() = %v", err)
	}
	r, g, _, _ := dc.Image().At(100, 100).RGBA()
	if r>>8 < 200 || g>>8 > 60 {
		t.Errorf("magnet centre = (%d, %d), want red", r>>8, g>>8)
	}
	if err := s.Render(nil); err != nil {
		t.Errorf("Render(nil) = %v", err)
	}
	_ = s.Close()
	if err := s.Render(dc); !errors.Is(err, ErrClosed) {
		t.Errorf("Render() after Close = %v, want ErrClosed", err)
	}
}
