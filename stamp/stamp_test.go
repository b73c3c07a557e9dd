// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package stamp

import (
	"image"
	"image/color"
	"math/rand/v2"
	"testing"

	"github.com/gogpu/ggsketch/config"
	"github.com/gogpu/ggsketch/magnet"
	"github.com/gogpu/ggsketch/particle"
)

func opaqueSquare(size int) image.Image {
	img := image.NewNRGBA(image.Rect(0, 0, size, size))
	for y := range size {
		for x := range size {
			img.SetNRGBA(x, y, color.NRGBA{A: 255})
		}
	}
	return img
}

func newRasterizer(cfg config.Config) *Rasterizer {
	gen := particle.NewGenerator(cfg, rand.NewPCG(3, 4))
	return New(gen, cfg, rand.NewPCG(5, 6))
}

func TestMask(t *testing.T) {
	m := Mask(opaqueSquare(8), 32, 16)
	if m.Bounds().Dx() != 32 || m.Bounds().Dy() != 16 {
		t.Fatalf("Mask bounds = %v", m.Bounds())
	}
	if m.AlphaAt(16, 8).A != 255 {
		t.Errorf("Mask centre alpha = %d, want 255", m.AlphaAt(16, 8).A)
	}
}

func TestParticles(t *testing.T) {
	cfg := config.Default()
	cfg.InitialStampDensity = config.StampDensity{Edge: 1, Fill: 2}
	cfg.SubsequentStampDensity = config.StampDensity{Edge: 1, Fill: 1}
	r := newRasterizer(cfg)
	r.Spacing = 10

	mg := magnet.NewManager()
	m := mg.Create(magnet.Options{X: 200, Y: 100, Width: 50, Height: 50, Image: opaqueSquare(10)})

	first := r.Particles(m)
	// 5×5 cells: 16 edge cells at density 1, 9 fill cells at density 2.
	if len(first) != 16+18 {
		t.Fatalf("first stamp = %d particles, want 34", len(first))
	}
	for _, p := range first {
		if !p.Stamp || p.Opacity != cfg.InitialStampOpacity {
			t.Fatalf("particle = %+v, want stamp with initial opacity", p)
		}
		if p.X < 170 || p.X > 230 || p.Y < 70 || p.Y > 130 {
			t.Fatalf("particle at (%v, %v) outside the magnet", p.X, p.Y)
		}
	}

	m.Stamped = true
	later := r.Particles(m)
	if len(later) != 25 {
		t.Errorf("subsequent stamp = %d particles, want 25", len(later))
	}
	if later[0].Opacity != cfg.SubsequentStampOpacity {
		t.Errorf("Opacity = %v, want %v", later[0].Opacity, cfg.SubsequentStampOpacity)
	}
}

func TestParticlesWithoutImage(t *testing.T) {
	r := newRasterizer(config.Default())
	if got := r.Particles(&magnet.Magnet{Width: 10, Height: 10, Scale: 1}); got != nil {
		t.Errorf("Particles(no image) = %d particles, want nil", len(got))
	}
	if got := r.Particles(nil); got != nil {
		t.Error("Particles(nil) returned particles")
	}
}
