// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package config

import "time"

// StampDensityOverride overrides individual stamp density fields.
type StampDensityOverride struct {
	Edge *float64 `json:"edge,omitempty" mapstructure:"edge"`
	Fill *float64 `json:"fill,omitempty" mapstructure:"fill"`
}

// Override is a partial Config. Nil fields keep the base value.
type Override struct {
	LineWidth       *float64 `json:"lineWidth,omitempty" mapstructure:"lineWidth"`
	ParticleSize    *float64 `json:"particleSize,omitempty" mapstructure:"particleSize"`
	ParticleLength  *float64 `json:"particleLength,omitempty" mapstructure:"particleLength"`
	ParticleWidth   *float64 `json:"particleWidth,omitempty" mapstructure:"particleWidth"`
	ParticleDensity *float64 `json:"particleDensity,omitempty" mapstructure:"particleDensity"`
	ParticleColor   *string  `json:"particleColor,omitempty" mapstructure:"particleColor"`
	ParticleOpacity *float64 `json:"particleOpacity,omitempty" mapstructure:"particleOpacity"`

	BackgroundColor  *string  `json:"backgroundColor,omitempty" mapstructure:"backgroundColor"`
	GridColor        *string  `json:"gridColor,omitempty" mapstructure:"gridColor"`
	HexagonSize      *float64 `json:"hexagonSize,omitempty" mapstructure:"hexagonSize"`
	HexagonLineWidth *float64 `json:"hexagonLineWidth,omitempty" mapstructure:"hexagonLineWidth"`

	PreDrawnParticleSize *float64 `json:"preDrawnParticleSize,omitempty" mapstructure:"preDrawnParticleSize"`
	PreDrawnDensity      *float64 `json:"preDrawnDensity,omitempty" mapstructure:"preDrawnDensity"`
	PreDrawnColor        *string  `json:"preDrawnColor,omitempty" mapstructure:"preDrawnColor"`

	MultitextDensity   *float64 `json:"multitextDensity,omitempty" mapstructure:"multitextDensity"`
	MultitextOpacity   *float64 `json:"multitextOpacity,omitempty" mapstructure:"multitextOpacity"`
	MultitextWhiteProb *float64 `json:"multitextWhiteProb,omitempty" mapstructure:"multitextWhiteProb"`

	CursorWhiteParticleProbability *float64 `json:"cursorWhiteParticleProbability,omitempty" mapstructure:"cursorWhiteParticleProbability"`
	StampWhiteParticleProbability  *float64 `json:"stampWhiteParticleProbability,omitempty" mapstructure:"stampWhiteParticleProbability"`

	TargetFPS   *int           `json:"targetFPS,omitempty" mapstructure:"targetFPS"`
	IdleFPS     *int           `json:"idleFPS,omitempty" mapstructure:"idleFPS"`
	IdleTimeout *time.Duration `json:"idleTimeout,omitempty" mapstructure:"idleTimeout"`

	InitialStampOpacity    *float64              `json:"initialStampOpacity,omitempty" mapstructure:"initialStampOpacity"`
	SubsequentStampOpacity *float64              `json:"subsequentStampOpacity,omitempty" mapstructure:"subsequentStampOpacity"`
	InitialStampDensity    *StampDensityOverride `json:"initialStampDensity,omitempty" mapstructure:"initialStampDensity"`
	SubsequentStampDensity *StampDensityOverride `json:"subsequentStampDensity,omitempty" mapstructure:"subsequentStampDensity"`

	MaxParticles *int `json:"maxParticles,omitempty" mapstructure:"maxParticles"`
}

// Merge applies o on top of base and returns the result. base is not
// modified.
func Merge(base Config, o Override) Config {
	c := base
	set(&c.LineWidth, o.LineWidth)
	set(&c.ParticleSize, o.ParticleSize)
	set(&c.ParticleLength, o.ParticleLength)
	set(&c.ParticleWidth, o.ParticleWidth)
	set(&c.ParticleDensity, o.ParticleDensity)
	set(&c.ParticleColor, o.ParticleColor)
	set(&c.ParticleOpacity, o.ParticleOpacity)

	set(&c.BackgroundColor, o.BackgroundColor)
	set(&c.GridColor, o.GridColor)
	set(&c.HexagonSize, o.HexagonSize)
	set(&c.HexagonLineWidth, o.HexagonLineWidth)

	set(&c.PreDrawnParticleSize, o.PreDrawnParticleSize)
	set(&c.PreDrawnDensity, o.PreDrawnDensity)
	set(&c.PreDrawnColor, o.PreDrawnColor)

	set(&c.MultitextDensity, o.MultitextDensity)
	set(&c.MultitextOpacity, o.MultitextOpacity)
	set(&c.MultitextWhiteProb, o.MultitextWhiteProb)

	set(&c.CursorWhiteParticleProbability, o.CursorWhiteParticleProbability)
	set(&c.StampWhiteParticleProbability, o.StampWhiteParticleProbability)

	set(&c.TargetFPS, o.TargetFPS)
	set(&c.IdleFPS, o.IdleFPS)
	set(&c.IdleTimeout, o.IdleTimeout)

	set(&c.InitialStampOpacity, o.InitialStampOpacity)
	set(&c.SubsequentStampOpacity, o.SubsequentStampOpacity)
	c.InitialStampDensity = mergeDensity(base.InitialStampDensity, o.InitialStampDensity)
	c.SubsequentStampDensity = mergeDensity(base.SubsequentStampDensity, o.SubsequentStampDensity)

	set(&c.MaxParticles, o.MaxParticles)
	return c
}

func mergeDensity(base StampDensity, o *StampDensityOverride) StampDensity {
	if o == nil {
		return base
	}
	set(&base.Edge, o.Edge)
	set(&base.Fill, o.Fill)
	return base
}

func set[T any](dst *T, src *T) {
	if src != nil {
		*dst = *src
	}
}
