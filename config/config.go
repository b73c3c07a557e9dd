// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package config

import (
	"errors"
	"fmt"
	"math"
	"time"
)

// ErrInvalid is wrapped by every error returned from Validate.
var ErrInvalid = errors.New("config: invalid value")

// StampDensity is the particle density used when rasterizing a magnet image.
// Edge applies to outline pixels, Fill to interior pixels.
type StampDensity struct {
	Edge float64 `json:"edge" mapstructure:"edge"`
	Fill float64 `json:"fill" mapstructure:"fill"`
}

// Config is the complete set of sketch parameters.
type Config struct {
	LineWidth       float64 `json:"lineWidth" mapstructure:"lineWidth"`
	ParticleSize    float64 `json:"particleSize" mapstructure:"particleSize"`
	ParticleLength  float64 `json:"particleLength" mapstructure:"particleLength"`
	ParticleWidth   float64 `json:"particleWidth" mapstructure:"particleWidth"`
	ParticleDensity float64 `json:"particleDensity" mapstructure:"particleDensity"`
	ParticleColor   string  `json:"particleColor" mapstructure:"particleColor"`
	ParticleOpacity float64 `json:"particleOpacity" mapstructure:"particleOpacity"`

	BackgroundColor  string  `json:"backgroundColor" mapstructure:"backgroundColor"`
	GridColor        string  `json:"gridColor" mapstructure:"gridColor"`
	HexagonSize      float64 `json:"hexagonSize" mapstructure:"hexagonSize"`
	HexagonLineWidth float64 `json:"hexagonLineWidth" mapstructure:"hexagonLineWidth"`

	PreDrawnParticleSize float64 `json:"preDrawnParticleSize" mapstructure:"preDrawnParticleSize"`
	PreDrawnDensity      float64 `json:"preDrawnDensity" mapstructure:"preDrawnDensity"`
	PreDrawnColor        string  `json:"preDrawnColor" mapstructure:"preDrawnColor"`

	MultitextDensity   float64 `json:"multitextDensity" mapstructure:"multitextDensity"`
	MultitextOpacity   float64 `json:"multitextOpacity" mapstructure:"multitextOpacity"`
	MultitextWhiteProb float64 `json:"multitextWhiteProb" mapstructure:"multitextWhiteProb"`

	CursorWhiteParticleProbability float64 `json:"cursorWhiteParticleProbability" mapstructure:"cursorWhiteParticleProbability"`
	StampWhiteParticleProbability  float64 `json:"stampWhiteParticleProbability" mapstructure:"stampWhiteParticleProbability"`

	TargetFPS   int           `json:"targetFPS" mapstructure:"targetFPS"`
	IdleFPS     int           `json:"idleFPS" mapstructure:"idleFPS"`
	IdleTimeout time.Duration `json:"idleTimeout" mapstructure:"idleTimeout"`

	InitialStampOpacity    float64      `json:"initialStampOpacity" mapstructure:"initialStampOpacity"`
	SubsequentStampOpacity float64      `json:"subsequentStampOpacity" mapstructure:"subsequentStampOpacity"`
	InitialStampDensity    StampDensity `json:"initialStampDensity" mapstructure:"initialStampDensity"`
	SubsequentStampDensity StampDensity `json:"subsequentStampDensity" mapstructure:"subsequentStampDensity"`

	// MaxParticles caps the particle batch. Zero or less means unlimited.
	MaxParticles int `json:"maxParticles" mapstructure:"maxParticles"`
}

// Default returns the base configuration.
func Default() Config {
	return Config{
		LineWidth:       12,
		ParticleSize:    0.75,
		ParticleLength:  0.5,
		ParticleWidth:   0.6,
		ParticleDensity: 0.7,
		ParticleColor:   "#666666",
		ParticleOpacity: 1,

		BackgroundColor:  "#f2f2f2",
		GridColor:        "#C8C8C8",
		HexagonSize:      3,
		HexagonLineWidth: 0.3,

		PreDrawnParticleSize: 1,
		PreDrawnDensity:      0.9,
		PreDrawnColor:        "#333333",

		MultitextDensity:   9,
		MultitextOpacity:   1,
		MultitextWhiteProb: 0,

		CursorWhiteParticleProbability: 0.1,
		StampWhiteParticleProbability:  0.2,

		TargetFPS:   60,
		IdleFPS:     30,
		IdleTimeout: time.Second,

		InitialStampOpacity:    0.9,
		SubsequentStampOpacity: 0.65,
		InitialStampDensity:    StampDensity{Edge: 1.4, Fill: 1.9},
		SubsequentStampDensity: StampDensity{Edge: 1.2, Fill: 1.3},

		MaxParticles: 40000,
	}
}

// Validate reports the first field outside its allowed range.
func (c Config) Validate() error {
	checks := []struct {
		name string
		ok   bool
	}{
		{"lineWidth", c.LineWidth > 0},
		{"particleLength", c.ParticleLength >= 0},
		{"particleWidth", c.ParticleWidth >= 0},
		{"particleDensity", c.ParticleDensity >= 0},
		{"particleOpacity", unit(c.ParticleOpacity)},
		{"preDrawnParticleSize", c.PreDrawnParticleSize >= 0},
		{"preDrawnDensity", c.PreDrawnDensity >= 0},
		{"multitextDensity", c.MultitextDensity >= 0},
		{"multitextOpacity", unit(c.MultitextOpacity)},
		{"multitextWhiteProb", unit(c.MultitextWhiteProb)},
		{"cursorWhiteParticleProbability", unit(c.CursorWhiteParticleProbability)},
		{"stampWhiteParticleProbability", unit(c.StampWhiteParticleProbability)},
		{"targetFPS", c.TargetFPS > 0},
		{"idleFPS", c.IdleFPS > 0},
		{"idleTimeout", c.IdleTimeout >= 0},
		{"initialStampOpacity", unit(c.InitialStampOpacity)},
		{"subsequentStampOpacity", unit(c.SubsequentStampOpacity)},
		{"initialStampDensity", c.InitialStampDensity.Edge >= 0 && c.InitialStampDensity.Fill >= 0},
		{"subsequentStampDensity", c.SubsequentStampDensity.Edge >= 0 && c.SubsequentStampDensity.Fill >= 0},
	}
	for _, ch := range checks {
		if !ch.ok {
			return fmt.Errorf("%w: %s", ErrInvalid, ch.name)
		}
	}
	return nil
}

func unit(f float64) bool { return f >= 0 && f <= 1 && !math.IsNaN(f) }
