// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package ggsketch

import (
	"fmt"
	"image"
	"math"

	"github.com/gogpu/gg"
	"github.com/gogpu/ggsketch/colors"
)

// hexagonUnit converts Config.HexagonSize to a hexagon radius in pixels.
const hexagonUnit = 4.0

// layers caches the static parts of a frame.
type layers struct {
	grid          *gg.ImageBuf
	gridW, gridH  int
	gridSignature string
	magnets       map[image.Image]*gg.ImageBuf
}

func (l *layers) reset() {
	l.grid = nil
	l.magnets = nil
}

// Render draws a full frame into dc: background, hexagon grid, particles,
// then magnets bottom to top.
func (s *Sketch) Render(dc *gg.Context) error {
	if s.closed {
		return ErrClosed
	}
	if dc == nil {
		return nil
	}
	dc.Identity()
	dc.ClearWithColor(colors.Parse(s.cfg.BackgroundColor))
	if grid := s.gridLayer(dc.Width(), dc.Height()); grid != nil {
		dc.DrawImage(grid, 0, 0)
	}
	if err := s.batch.Render(dc); err != nil {
		return fmt.Errorf("ggsketch: render particles: %w", err)
	}
	s.drawMagnets(dc)
	return nil
}

// gridLayer returns the cached grid, rebuilding it when the size or the
// grid parameters changed.
func (s *Sketch) gridLayer(w, h int) *gg.ImageBuf {
	if w <= 0 || h <= 0 || s.cfg.HexagonSize <= 0 {
		return nil
	}
	sig := fmt.Sprintf("%s/%g/%g", s.cfg.GridColor, s.cfg.HexagonSize, s.cfg.HexagonLineWidth)
	if s.layers.grid != nil && s.layers.gridW == w && s.layers.gridH == h && s.layers.gridSignature == sig {
		return s.layers.grid
	}

	dc := gg.NewContext(w, h)
	defer func() { _ = dc.Close() }()
	drawHexGrid(dc, s.cfg.HexagonSize*hexagonUnit)
	dc.SetColor(colors.Parse(s.cfg.GridColor).Color())
	dc.SetLineWidth(s.cfg.HexagonLineWidth)
	if err := dc.Stroke(); err != nil {
		s.logger.Warn("ggsketch: grid stroke failed", "err", err)
		return nil
	}

	s.layers.grid = gg.ImageBufFromImage(dc.Image())
	s.layers.gridW, s.layers.gridH = w, h
	s.layers.gridSignature = sig
	return s.layers.grid
}

// drawHexGrid adds a flat-topped hexagon tiling of radius r to the path.
func drawHexGrid(dc *gg.Context, r float64) {
	w, h := float64(dc.Width()), float64(dc.Height())
	dx := 1.5 * r
	dy := math.Sqrt(3) * r
	col := 0
	for x := 0.0; x <= w+r; x += dx {
		y0 := 0.0
		if col%2 == 1 {
			y0 = dy / 2
		}
		for y := y0; y <= h+r; y += dy {
			dc.DrawRegularPolygon(6, x, y, r, 0)
		}
		col++
	}
}

func (s *Sketch) drawMagnets(dc *gg.Context) {
	for _, m := range s.magnets.Magnets() {
		if m.Image == nil {
			continue
		}
		hw, hh := m.HalfExtents()
		if hw <= 0 || hh <= 0 {
			continue
		}
		dc.Push()
		dc.RotateAbout(m.Rotation, m.X, m.Y)
		dc.DrawImageEx(s.magnetBuf(m.Image), gg.DrawImageOptions{
			X:         m.X - hw,
			Y:         m.Y - hh,
			DstWidth:  2 * hw,
			DstHeight: 2 * hh,
		})
		dc.Pop()
	}
}

func (s *Sketch) magnetBuf(img image.Image) *gg.ImageBuf {
	if s.layers.magnets == nil {
		s.layers.magnets = make(map[image.Image]*gg.ImageBuf)
	}
	buf, ok := s.layers.magnets[img]
	if !ok {
		buf = gg.ImageBufFromImage(img)
		s.layers.magnets[img] = buf
	}
	return buf
}
