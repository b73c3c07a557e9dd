// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package particle

import (
	"math"
	"math/rand/v2"

	"github.com/gogpu/gg"
	"github.com/gogpu/ggsketch/colors"
	"github.com/gogpu/ggsketch/config"
)

// Particle is an immutable rotated rectangle.
type Particle struct {
	X, Y     float64
	Angle    float64 // radians in [0, 2π)
	Length   float64
	Width    float64
	Color    gg.RGBA
	Opacity  float64
	Predrawn bool
	Stamp    bool
}

// Extent returns the larger of Length and Width.
func (p Particle) Extent() float64 {
	return math.Max(p.Length, p.Width)
}

// Generator creates particles from a configuration.
//
// Generator is NOT safe for concurrent use.
type Generator struct {
	cfg      config.Config
	rng      *rand.Rand
	base     gg.RGBA
	predrawn gg.RGBA
}

// NewGenerator creates a generator. A nil src seeds a PCG source randomly.
func NewGenerator(cfg config.Config, src rand.Source) *Generator {
	if src == nil {
		src = rand.NewPCG(rand.Uint64(), rand.Uint64())
	}
	g := &Generator{rng: rand.New(src)}
	g.SetConfig(cfg)
	return g
}

// SetConfig replaces the configuration, e.g. after the environment changed.
func (g *Generator) SetConfig(cfg config.Config) {
	g.cfg = cfg
	g.base = colors.Parse(cfg.ParticleColor)
	g.predrawn = colors.Parse(cfg.PreDrawnColor)
}

// Config returns the active configuration.
func (g *Generator) Config() config.Config { return g.cfg }

// New creates a drawing, pre-drawn or stamp particle at (x, y).
// Drawing particles never whiten.
func (g *Generator) New(x, y float64, predrawn, stamp bool) Particle {
	white := 0.0
	switch {
	case stamp:
		white = g.cfg.StampWhiteParticleProbability
	case predrawn:
		white = g.cfg.MultitextWhiteProb
	}
	return g.create(x, y, predrawn, stamp, white)
}

// Cursor creates a particle for interactive cursor trails.
func (g *Generator) Cursor(x, y float64) Particle {
	return g.create(x, y, false, false, g.cfg.CursorWhiteParticleProbability)
}

func (g *Generator) create(x, y float64, predrawn, stamp bool, white float64) Particle {
	p := Particle{
		X:        x,
		Y:        y,
		Angle:    g.rng.Float64() * 2 * math.Pi,
		Predrawn: predrawn,
		Stamp:    stamp,
	}
	if predrawn {
		p.Length = g.cfg.PreDrawnParticleSize
		p.Width = g.cfg.PreDrawnParticleSize
		p.Color = g.predrawn
		p.Opacity = g.cfg.MultitextOpacity
	} else {
		p.Length = g.cfg.ParticleLength * g.cfg.LineWidth
		p.Width = g.cfg.ParticleWidth * g.cfg.LineWidth
		p.Color = g.base
		p.Opacity = g.cfg.ParticleOpacity
	}
	if white > 0 && g.rng.Float64() < white {
		p.Color = colors.White
	}
	return p
}

// PathOptions tune AlongPath and At.
type PathOptions struct {
	// Density overrides ParticleDensity when positive.
	Density float64
	// Offset is the jitter magnitude. Nil means LineWidth×0.3.
	Offset *float64
	// Color and Opacity override the generated values when non-nil.
	Color   *gg.RGBA
	Opacity *float64

	Predrawn bool
	Stamp    bool
}

// AlongPath creates particles along the polyline points. A single point
// yields exactly one particle at that point, without jitter.
func (g *Generator) AlongPath(points []Point, opts PathOptions) []Particle {
	switch len(points) {
	case 0:
		return nil
	case 1:
		return []Particle{g.decorate(g.New(points[0].X, points[0].Y, opts.Predrawn, opts.Stamp), opts)}
	}
	density := opts.Density
	if density <= 0 {
		density = g.cfg.ParticleDensity
	}
	var samples []Point
	for i := 1; i < len(points); i++ {
		samples = append(samples, SegmentSamples(points[i-1], points[i], density)...)
	}
	return g.At(samples, opts)
}

// At creates one jittered particle per sample point.
func (g *Generator) At(samples []Point, opts PathOptions) []Particle {
	offset := g.cfg.LineWidth * 0.3
	if opts.Offset != nil {
		offset = *opts.Offset
	}
	out := make([]Particle, 0, len(samples))
	for _, s := range samples {
		x := s.X + (g.rng.Float64()-0.5)*offset
		y := s.Y + (g.rng.Float64()-0.5)*offset
		out = append(out, g.decorate(g.New(x, y, opts.Predrawn, opts.Stamp), opts))
	}
	return out
}

func (g *Generator) decorate(p Particle, opts PathOptions) Particle {
	if opts.Color != nil {
		p.Color = *opts.Color
	}
	if opts.Opacity != nil {
		p.Opacity = *opts.Opacity
	}
	return p
}
