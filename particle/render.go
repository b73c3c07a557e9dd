// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package particle

import (
	"fmt"

	"github.com/gogpu/gg"
)

// signature groups particles that share fill state.
type signature struct {
	color    gg.RGBA
	opacity  float64
	predrawn bool
	stamp    bool
}

// Visible reports whether p, padded by twice its extent, intersects the
// w×h canvas.
func Visible(p Particle, w, h int) bool {
	pad := p.Extent() * 2
	return p.X+pad >= 0 && p.X-pad <= float64(w) &&
		p.Y+pad >= 0 && p.Y-pad <= float64(h)
}

// Render draws every visible particle into the off-screen buffer and
// composites it onto s in one DrawImage call. A nil or empty surface is
// ignored.
func (b *Batch) Render(s Surface) error {
	if s == nil {
		return nil
	}
	w, h := s.Width(), s.Height()
	if w <= 0 || h <= 0 {
		return nil
	}
	if err := b.ensureOffscreen(w, h); err != nil {
		return err
	}
	dc := b.offscreen
	dc.Identity()
	dc.Clear()

	groups, order, culled := b.group(w, h)
	for _, sig := range order {
		if sig.opacity <= 0 {
			continue
		}
		c := sig.color
		c.A = sig.opacity
		dc.SetRGBA(c.R, c.G, c.B, c.A)
		for _, p := range groups[sig] {
			dc.Identity()
			dc.Translate(p.X, p.Y)
			dc.Rotate(p.Angle)
			dc.DrawRectangle(-p.Length/2, -p.Width/2, p.Length, p.Width)
		}
		dc.Identity()
		if err := dc.Fill(); err != nil {
			return fmt.Errorf("particle: fill group: %w", err)
		}
	}

	s.DrawImage(gg.ImageBufFromImage(dc.Image()), 0, 0)

	b.stats = Stats{Total: b.n, Drawn: b.n - culled, Culled: culled, Groups: len(order)}
	b.logger.Debug("particle: rendered",
		"total", b.stats.Total, "culled", culled, "groups", len(order))
	return nil
}

// ensureOffscreen allocates the buffer once and resizes it only when the
// surface size changed.
func (b *Batch) ensureOffscreen(w, h int) error {
	if b.offscreen == nil {
		b.offscreen = gg.NewContext(w, h)
		return nil
	}
	if err := b.offscreen.Resize(w, h); err != nil {
		return fmt.Errorf("particle: resize offscreen: %w", err)
	}
	return nil
}

func (b *Batch) group(w, h int) (map[signature][]Particle, []signature, int) {
	groups := make(map[signature][]Particle)
	var order []signature
	culled := 0
	b.Each(func(p Particle) bool {
		if !Visible(p, w, h) {
			culled++
			return true
		}
		sig := signature{color: p.Color, opacity: p.Opacity, predrawn: p.Predrawn, stamp: p.Stamp}
		if _, ok := groups[sig]; !ok {
			order = append(order, sig)
		}
		groups[sig] = append(groups[sig], p)
		return true
	})
	return groups, order, culled
}

// Offscreen returns the off-screen buffer, or nil before the first Render.
func (b *Batch) Offscreen() *gg.Context { return b.offscreen }

// Close releases the off-screen buffer.
func (b *Batch) Close() error {
	if b.offscreen == nil {
		return nil
	}
	err := b.offscreen.Close()
	b.offscreen = nil
	return err
}
