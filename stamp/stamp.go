// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package stamp rasterizes a magnet's image into particles.
//
// The image is scaled to the magnet's on-screen size with
// golang.org/x/image/draw and reduced to an alpha mask. The mask is
// sampled on a grid; every covered cell is an edge cell when a neighbour
// is uncovered and a fill cell otherwise, and receives particles according
// to the edge or fill density. A magnet's first stamp uses the initial
// opacity and densities, later stamps the subsequent ones.
package stamp

import (
	"image"
	"math"
	"math/rand/v2"

	"github.com/gogpu/ggsketch/config"
	"github.com/gogpu/ggsketch/magnet"
	"github.com/gogpu/ggsketch/particle"
	"golang.org/x/image/draw"
)

// Threshold is the alpha at or above which a mask pixel counts as covered.
const Threshold = 0x80

// Rasterizer turns magnets into stamp particles.
//
// Rasterizer is NOT safe for concurrent use.
type Rasterizer struct {
	gen *particle.Generator
	cfg config.Config
	rng *rand.Rand

	// Spacing is the grid step in pixels. Zero means the particle width.
	Spacing float64
}

// New creates a rasterizer. A nil src seeds a PCG source randomly.
func New(gen *particle.Generator, cfg config.Config, src rand.Source) *Rasterizer {
	if src == nil {
		src = rand.NewPCG(rand.Uint64(), rand.Uint64())
	}
	return &Rasterizer{gen: gen, cfg: cfg, rng: rand.New(src)}
}

// SetConfig replaces the configuration.
func (r *Rasterizer) SetConfig(cfg config.Config) { r.cfg = cfg }

// Mask scales img to w×h and returns its alpha channel.
func Mask(img image.Image, w, h int) *image.Alpha {
	dst := image.NewAlpha(image.Rect(0, 0, w, h))
	draw.ApproxBiLinear.Scale(dst, dst.Bounds(), img, img.Bounds(), draw.Src, nil)
	return dst
}

// Particles returns the stamp particles for m, or nil when m has no image
// or no size.
func (r *Rasterizer) Particles(m *magnet.Magnet) []particle.Particle {
	if m == nil || m.Image == nil {
		return nil
	}
	hw, hh := m.HalfExtents()
	w, h := int(math.Round(2*hw)), int(math.Round(2*hh))
	if w <= 0 || h <= 0 {
		return nil
	}
	mask := Mask(m.Image, w, h)

	opacity := r.cfg.SubsequentStampOpacity
	density := r.cfg.SubsequentStampDensity
	if !m.Stamped {
		opacity = r.cfg.InitialStampOpacity
		density = r.cfg.InitialStampDensity
	}

	step := r.spacing()
	sin, cos := math.Sincos(m.Rotation)
	var samples []particle.Point
	for y := step / 2; y < float64(h); y += step {
		for x := step / 2; x < float64(w); x += step {
			px, py := int(x), int(y)
			if !covered(mask, px, py) {
				continue
			}
			d := density.Fill
			if isEdge(mask, px, py, int(math.Ceil(step))) {
				d = density.Edge
			}
			// Centre-relative, rotated with the magnet.
			lx, ly := x-hw, y-hh
			at := particle.Point{
				X: m.X + lx*cos - ly*sin,
				Y: m.Y + lx*sin + ly*cos,
			}
			for range r.count(d) {
				samples = append(samples, at)
			}
		}
	}
	return r.gen.At(samples, particle.PathOptions{
		Offset:  &step,
		Opacity: &opacity,
		Stamp:   true,
	})
}

func (r *Rasterizer) spacing() float64 {
	if r.Spacing > 0 {
		return r.Spacing
	}
	s := r.cfg.ParticleWidth * r.cfg.LineWidth
	if s < 1 {
		return 1
	}
	return s
}

// count turns a fractional density into a whole number of particles whose
// expected value is d.
func (r *Rasterizer) count(d float64) int {
	n := int(d)
	if r.rng.Float64() < d-float64(n) {
		n++
	}
	return n
}

func covered(mask *image.Alpha, x, y int) bool {
	if !(image.Point{X: x, Y: y}).In(mask.Rect) {
		return false
	}
	return mask.AlphaAt(x, y).A >= Threshold
}

func isEdge(mask *image.Alpha, x, y, reach int) bool {
	return !covered(mask, x-reach, y) || !covered(mask, x+reach, y) ||
		!covered(mask, x, y-reach) || !covered(mask, x, y+reach)
}
