// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package ggsketch

import (
	"image"
	"log/slog"
	"math/rand/v2"

	"github.com/gogpu/ggsketch/clock"
	"github.com/gogpu/ggsketch/config"
	"github.com/gogpu/ggsketch/magnet"
	"github.com/gogpu/ggsketch/particle"
	"github.com/gogpu/ggsketch/pointer"
	"github.com/gogpu/ggsketch/transition"
)

// Sinks receive sketch events. Every field is optional.
type Sinks struct {
	ParticlesCreated  func(ps []particle.Particle)
	MagnetChanged     func(m *magnet.Magnet)
	MagnetStamped     func(m *magnet.Magnet)
	CursorUpdated     func(x, y float64, clicking bool)
	MagnetInteraction func(kind pointer.Interaction, x, y float64)
}

// Option configures a Sketch during creation.
//
// Example:
//
//	s, err := ggsketch.New(1280, 720,
//	    ggsketch.WithOverride(config.Override{LineWidth: &width}),
//	    ggsketch.WithHost(config.Host{Embedded: true}),
//	)
type Option func(*options)

type options struct {
	override config.Override
	host     config.Host
	clock    clock.Clock
	rand     rand.Source
	sinks    Sinks
	timings  transition.Timings
	images   map[string]image.Image
	logger   *slog.Logger
}

func defaultOptions() options {
	return options{
		clock:  clock.Real{},
		images: make(map[string]image.Image),
	}
}

// WithOverride applies o on top of the default configuration.
func WithOverride(o config.Override) Option {
	return func(opts *options) { opts.override = o }
}

// WithHost describes the embedding. Window dimensions default to the
// sketch size.
func WithHost(h config.Host) Option {
	return func(opts *options) { opts.host = h }
}

// WithClock sets the time source for interaction times, cooldowns and the
// transition timeline.
func WithClock(c clock.Clock) Option {
	return func(opts *options) { opts.clock = c }
}

// WithRandSource makes particle generation deterministic.
func WithRandSource(src rand.Source) Option {
	return func(opts *options) { opts.rand = src }
}

// WithSinks sets the event sinks.
func WithSinks(s Sinks) Option {
	return func(opts *options) { opts.sinks = s }
}

// WithTimings overrides the entry animation durations. Without it the
// default timings are shortened on mobile and tablet widths.
func WithTimings(t transition.Timings) Option {
	return func(opts *options) { opts.timings = t }
}

// WithMagnetImage registers the decoded image for a magnet type.
func WithMagnetImage(typ string, img image.Image) Option {
	return func(opts *options) { opts.images[typ] = img }
}

// WithLogger sets the logger for this sketch instead of [Logger].
func WithLogger(l *slog.Logger) Option {
	return func(opts *options) { opts.logger = l }
}
