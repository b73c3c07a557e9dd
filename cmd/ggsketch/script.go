// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"strconv"
	"strings"

	"github.com/gogpu/gg"
	"github.com/gogpu/ggsketch/particle"
)

var errBadPoint = errors.New("invalid point")

// parsePoint parses "x,y".
func parsePoint(s string) (particle.Point, error) {
	xs, ys, ok := strings.Cut(strings.TrimSpace(s), ",")
	if !ok {
		return particle.Point{}, fmt.Errorf("%w: %q", errBadPoint, s)
	}
	x, err := strconv.ParseFloat(strings.TrimSpace(xs), 64)
	if err != nil {
		return particle.Point{}, fmt.Errorf("%w: %q", errBadPoint, s)
	}
	y, err := strconv.ParseFloat(strings.TrimSpace(ys), 64)
	if err != nil {
		return particle.Point{}, fmt.Errorf("%w: %q", errBadPoint, s)
	}
	return particle.Point{X: x, Y: y}, nil
}

// parsePath parses a whitespace separated list of points, e.g.
// "100,100 300,120 500,400". A path needs at least two points.
func parsePath(s string) ([]particle.Point, error) {
	fields := strings.Fields(s)
	if len(fields) < 2 {
		return nil, fmt.Errorf("path %q: need at least two points", s)
	}
	pts := make([]particle.Point, 0, len(fields))
	for _, f := range fields {
		p, err := parsePoint(f)
		if err != nil {
			return nil, fmt.Errorf("path %q: %w", s, err)
		}
		pts = append(pts, p)
	}
	return pts, nil
}

// loadImage decodes a PNG or JPEG file.
func loadImage(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = f.Close() }()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	return img, nil
}

// defaultMagnetImage draws the built-in magnet: a dark ring with a
// filled core.
func defaultMagnetImage(size int) image.Image {
	dc := gg.NewContext(size, size)
	defer func() { _ = dc.Close() }()

	c := float64(size) / 2
	dc.SetHexColor("#333333")
	dc.DrawCircle(c, c, c*0.9)
	_ = dc.Fill()
	dc.SetHexColor("#f2f2f2")
	dc.DrawCircle(c, c, c*0.6)
	_ = dc.Fill()
	dc.SetHexColor("#333333")
	dc.DrawCircle(c, c, c*0.35)
	_ = dc.Fill()

	return dc.Image()
}
