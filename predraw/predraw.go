// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package predraw fills the canvas with pre-drawn "multitext" particles:
// lines of text rendered to an alpha mask and scattered as small,
// square particles before the user draws anything.
package predraw

import (
	"errors"
	"fmt"
	"image"
	"math"
	"math/rand/v2"

	"github.com/gogpu/ggsketch/config"
	"github.com/gogpu/ggsketch/particle"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

// ErrInvalidSize is returned for a non-positive font size.
var ErrInvalidSize = errors.New("predraw: invalid font size")

// Layout renders text lines to alpha masks.
type Layout struct {
	face       font.Face
	lineHeight int
}

// NewLayout parses ttf and creates a face of the given pixel size. A nil
// ttf uses Go Regular.
func NewLayout(ttf []byte, size float64) (*Layout, error) {
	if size <= 0 {
		return nil, fmt.Errorf("%w: %v", ErrInvalidSize, size)
	}
	if ttf == nil {
		ttf = goregular.TTF
	}
	f, err := opentype.Parse(ttf)
	if err != nil {
		return nil, fmt.Errorf("predraw: parse font: %w", err)
	}
	face, err := opentype.NewFace(f, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingNone,
	})
	if err != nil {
		return nil, fmt.Errorf("predraw: create face: %w", err)
	}
	return &Layout{face: face, lineHeight: face.Metrics().Height.Ceil()}, nil
}

// Close releases the face.
func (l *Layout) Close() error {
	return l.face.Close()
}

// Mask renders lines, left aligned, into a tightly sized alpha mask.
func (l *Layout) Mask(lines []string) *image.Alpha {
	width := 0
	for _, line := range lines {
		width = max(width, font.MeasureString(l.face, line).Ceil())
	}
	mask := image.NewAlpha(image.Rect(0, 0, width, l.lineHeight*len(lines)))
	ascent := l.face.Metrics().Ascent
	d := &font.Drawer{
		Dst:  mask,
		Src:  image.Opaque,
		Face: l.face,
	}
	for i, line := range lines {
		d.Dot = fixed.Point26_6{X: 0, Y: fixed.I(i*l.lineHeight) + ascent}
		d.DrawString(line)
	}
	return mask
}

// Scatter turns covered mask pixels into pre-drawn particles placed with
// the mask's top-left corner at origin. Every pixel with alpha at least
// half emits one particle with probability
// min(1, MultitextDensity×PreDrawnDensity/10).
func Scatter(gen *particle.Generator, cfg config.Config, mask *image.Alpha, origin particle.Point, src rand.Source) []particle.Particle {
	if src == nil {
		src = rand.NewPCG(rand.Uint64(), rand.Uint64())
	}
	rng := rand.New(src)
	prob := math.Min(1, cfg.MultitextDensity*cfg.PreDrawnDensity/10)
	zero := 0.0

	var samples []particle.Point
	b := mask.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if mask.AlphaAt(x, y).A < 0x80 {
				continue
			}
			if rng.Float64() >= prob {
				continue
			}
			samples = append(samples, particle.Point{
				X: origin.X + float64(x-b.Min.X) + rng.Float64(),
				Y: origin.Y + float64(y-b.Min.Y) + rng.Float64(),
			})
		}
	}
	return gen.At(samples, particle.PathOptions{Offset: &zero, Predrawn: true})
}
