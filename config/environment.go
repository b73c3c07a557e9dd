// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package config

import "math"

// DesignWidth is the container width at which ScaleFactor reaches 1.
const DesignWidth = 1920

// EmbeddedFactor scales density fields and the particle cap when the sketch
// runs inside a foreign frame.
const EmbeddedFactor = 0.5

// Environment describes where the sketch is hosted. The zero value is an
// uninitialized environment, for which Resolve returns the base unchanged.
type Environment struct {
	Embedded         bool    `json:"embedded"`
	DevicePixelRatio float64 `json:"devicePixelRatio"`
	CanvasWidth      int     `json:"canvasWidth"`
	CanvasHeight     int     `json:"canvasHeight"`
	ContainerWidth   int     `json:"containerWidth"`
	ContainerHeight  int     `json:"containerHeight"`
	ScaleFactor      float64 `json:"scaleFactor"`
	Initialized      bool    `json:"initialized"`
}

// Host is the raw input for NewEnvironment. Container dimensions of zero
// mean no container was found; the window size is used instead.
type Host struct {
	Embedded         bool
	DevicePixelRatio float64
	ContainerWidth   int
	ContainerHeight  int
	WindowWidth      int
	WindowHeight     int
}

// NewEnvironment derives an initialized Environment from h.
func NewEnvironment(h Host) Environment {
	cw, ch := h.ContainerWidth, h.ContainerHeight
	if cw <= 0 || ch <= 0 {
		cw, ch = h.WindowWidth, h.WindowHeight
	}
	dpr := h.DevicePixelRatio
	if dpr <= 0 {
		dpr = 1
	}
	return Environment{
		Embedded:         h.Embedded,
		DevicePixelRatio: dpr,
		CanvasWidth:      cw,
		CanvasHeight:     ch,
		ContainerWidth:   cw,
		ContainerHeight:  ch,
		ScaleFactor:      ScaleFactor(cw),
		Initialized:      true,
	}
}

// ScaleFactor returns min(containerWidth/DesignWidth, 1). A non-positive
// width yields 1.
func ScaleFactor(containerWidth int) float64 {
	if containerWidth <= 0 {
		return 1
	}
	return math.Min(float64(containerWidth)/DesignWidth, 1)
}

// Resolve adapts c to env.
func Resolve(c Config, env Environment) Config {
	if !env.Initialized {
		return c
	}
	if env.Embedded {
		c.ParticleDensity *= EmbeddedFactor
		c.PreDrawnDensity *= EmbeddedFactor
		c.MultitextDensity *= EmbeddedFactor
		c.InitialStampDensity = scaleDensity(c.InitialStampDensity, EmbeddedFactor)
		c.SubsequentStampDensity = scaleDensity(c.SubsequentStampDensity, EmbeddedFactor)
		c.MaxParticles = int(math.Floor(float64(c.MaxParticles) * EmbeddedFactor))
	}
	c.LineWidth *= env.ScaleFactor
	return c
}

func scaleDensity(d StampDensity, f float64) StampDensity {
	return StampDensity{Edge: d.Edge * f, Fill: d.Fill * f}
}
