// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package particle

import (
	"math"
	"math/rand/v2"
	"testing"

	"github.com/gogpu/gg"
	"github.com/gogpu/ggsketch/colors"
	"github.com/gogpu/ggsketch/config"
)

func newTestGenerator(cfg config.Config) *Generator {
	return NewGenerator(cfg, rand.NewPCG(1, 2))
}

func TestGeneratorNew(t *testing.T) {
	cfg := config.Default()
	g := newTestGenerator(cfg)

	tests := []struct {
		name     string
		predrawn bool
		length   float64
		width    float64
		opacity  float64
	}{
		{"drawing", false, cfg.ParticleLength * cfg.LineWidth, cfg.ParticleWidth * cfg.LineWidth, cfg.ParticleOpacity},
		{"predrawn", true, cfg.PreDrawnParticleSize, cfg.PreDrawnParticleSize, cfg.MultitextOpacity},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for range 500 {
				p := g.New(1, 2, tt.predrawn, false)
				if p.Angle < 0 || p.Angle >= 2*math.Pi {
					t.Fatalf("Angle = %v, want [0, 2π)", p.Angle)
				}
				if p.Length != tt.length || p.Width != tt.width {
					t.Fatalf("size = %vx%v, want %vx%v", p.Length, p.Width, tt.length, tt.width)
				}
				if p.Opacity != tt.opacity {
					t.Fatalf("Opacity = %v, want %v", p.Opacity, tt.opacity)
				}
			}
		})
	}
}

func TestGeneratorWhitening(t *testing.T) {
	cfg := config.Default()
	g := newTestGenerator(cfg)
	grey := colors.Parse(cfg.ParticleColor)

	for range 1000 {
		if p := g.New(0, 0, false, false); p.Color != grey {
			t.Fatalf("drawing particle whitened: %+v", p.Color)
		}
	}

	cfg.StampWhiteParticleProbability = 1
	cfg.CursorWhiteParticleProbability = 1
	g.SetConfig(cfg)
	if p := g.New(0, 0, false, true); p.Color != colors.White {
		t.Errorf("stamp particle with probability 1 = %+v, want white", p.Color)
	}
	if p := g.Cursor(0, 0); p.Color != colors.White {
		t.Errorf("cursor particle with probability 1 = %+v, want white", p.Color)
	}
}

func TestAlongPath(t *testing.T) {
	g := newTestGenerator(config.Default())

	t.Run("empty", func(t *testing.T) {
		if got := g.AlongPath(nil, PathOptions{}); len(got) != 0 {
			t.Errorf("AlongPath(nil) = %d particles, want 0", len(got))
		}
	})

	t.Run("single point", func(t *testing.T) {
		got := g.AlongPath([]Point{{5, 6}}, PathOptions{})
		if len(got) != 1 || got[0].X != 5 || got[0].Y != 6 {
			t.Errorf("AlongPath(single) = %+v, want one particle at (5,6)", got)
		}
	})

	t.Run("segment", func(t *testing.T) {
		zero := 0.0
		red := gg.RGBA{R: 1, A: 1}
		half := 0.5
		got := g.AlongPath([]Point{{100, 100}, {140, 100}}, PathOptions{Offset: &zero, Color: &red, Opacity: &half})
		if len(got) != 28 {
			t.Fatalf("AlongPath() = %d particles, want 28", len(got))
		}
		for _, p := range got {
			if p.X < 100 || p.X > 140 || p.Color != red || p.Opacity != 0.5 {
				t.Fatalf("particle = %+v", p)
			}
		}
	})

	t.Run("jitter bounded", func(t *testing.T) {
		off := 4.0
		got := g.AlongPath([]Point{{0, 0}, {100, 0}}, PathOptions{Offset: &off})
		for _, p := range got {
			if math.Abs(p.Y) > off/2 {
				t.Fatalf("jitter %v exceeds %v", p.Y, off/2)
			}
		}
	})

	t.Run("polyline", func(t *testing.T) {
		got := g.AlongPath([]Point{{0, 0}, {40, 0}, {40, 40}}, PathOptions{Density: 0.5})
		if len(got) != 40 {
			t.Errorf("AlongPath(polyline) = %d particles, want 40", len(got))
		}
	})
}
