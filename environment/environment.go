// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package environment observes the host viewport and derives layout
// parameters from it: the config.Environment, breakpoints, and device
// scale factors.
//
// Nothing happens at import time. The host creates an [Observer], starts
// it, feeds it size changes, and stops it on shutdown.
package environment

import (
	"log/slog"
	"time"

	"github.com/gogpu/ggsketch/config"
	"github.com/gogpu/ggsketch/transition"
)

// Breakpoint classifies a viewport width.
type Breakpoint int

// Breakpoints.
const (
	Mobile Breakpoint = iota
	Tablet
	Desktop
)

// Breakpoint widths.
const (
	MobileMax = 768  // widths below are Mobile
	TabletMax = 1024 // widths below are Tablet
)

// String returns the breakpoint name.
func (b Breakpoint) String() string {
	switch b {
	case Mobile:
		return "mobile"
	case Tablet:
		return "tablet"
	}
	return "desktop"
}

// Classify returns the breakpoint for width.
func Classify(width int) Breakpoint {
	switch {
	case width < MobileMax:
		return Mobile
	case width < TabletMax:
		return Tablet
	}
	return Desktop
}

// Constrained reports whether width belongs to a mobile or tablet
// viewport, where the entry animation starts automatically.
func Constrained(width int) bool {
	return Classify(width) != Desktop
}

// Magnet scale factors.
const (
	MagnetBaseScale    = 1.5
	MagnetMobileScale  = 1.2
	MagnetDesktopScale = 1.0
)

// Animation speed-ups by breakpoint.
const (
	MobileDurationScale = 0.8
	TabletDurationScale = 0.9
)

// AdjustTimings shortens the entry animation on small viewports.
func AdjustTimings(width int, t transition.Timings) transition.Timings {
	var f float64
	switch Classify(width) {
	case Mobile:
		f = MobileDurationScale
	case Tablet:
		f = TabletDurationScale
	default:
		return t
	}
	scale := func(d time.Duration) time.Duration { return time.Duration(float64(d) * f) }
	return transition.Timings{
		Delay:  scale(t.Delay),
		Scale:  scale(t.Scale),
		Rotate: scale(t.Rotate),
		Wipe:   scale(t.Wipe),
	}
}

// MagnetScale returns the on-screen magnet scale for width.
func MagnetScale(width int) float64 {
	if Classify(width) == Mobile {
		return MagnetBaseScale * MagnetMobileScale
	}
	return MagnetBaseScale * MagnetDesktopScale
}

// MultitextOffset returns the anchor of the pre-drawn text as fractions
// of the canvas size.
func MultitextOffset(width int) (fx, fy float64) {
	fx = 0.4
	if width < 1450 {
		fx = 0.33
	}
	fy = 0.3
	if Classify(width) == Mobile {
		fy = 0.45
	}
	return fx, fy
}

// BaseScale returns width relative to the design width.
func BaseScale(width int) float64 {
	return float64(width) / config.DesignWidth
}

// Observer tracks the host and notifies listeners of environment changes
// between Start and Stop.
//
// Observer is NOT safe for concurrent use.
type Observer struct {
	host      config.Host
	env       config.Environment
	running   bool
	listeners []func(config.Environment)
	logger    *slog.Logger
}

// NewObserver creates a stopped observer for host. A nil logger discards.
func NewObserver(host config.Host, logger *slog.Logger) *Observer {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Observer{host: host, logger: logger}
}

// OnChange registers fn. It is called on Start and on every later change.
func (o *Observer) OnChange(fn func(config.Environment)) {
	o.listeners = append(o.listeners, fn)
}

// Start initializes the environment and begins notifying listeners.
func (o *Observer) Start() {
	if o.running {
		return
	}
	o.running = true
	o.recompute()
}

// Stop ends notifications. The last environment stays readable.
func (o *Observer) Stop() { o.running = false }

// Running reports whether the observer is started.
func (o *Observer) Running() bool { return o.running }

// Environment returns the last computed environment. It is uninitialized
// before Start.
func (o *Observer) Environment() config.Environment { return o.env }

// Resize records a new window and container size. Zero container
// dimensions fall back to the window.
func (o *Observer) Resize(windowW, windowH, containerW, containerH int) {
	o.host.WindowWidth, o.host.WindowHeight = windowW, windowH
	o.host.ContainerWidth, o.host.ContainerHeight = containerW, containerH
	if o.running {
		o.recompute()
	}
}

// SetEmbedded records whether the sketch runs inside a foreign frame.
func (o *Observer) SetEmbedded(embedded bool) {
	o.host.Embedded = embedded
	if o.running {
		o.recompute()
	}
}

// Breakpoint returns the breakpoint of the current container.
func (o *Observer) Breakpoint() Breakpoint {
	return Classify(o.width())
}

// Constrained reports whether the current viewport is mobile or tablet.
func (o *Observer) Constrained() bool {
	return Constrained(o.width())
}

func (o *Observer) width() int {
	if o.env.Initialized {
		return o.env.ContainerWidth
	}
	if o.host.ContainerWidth > 0 {
		return o.host.ContainerWidth
	}
	return o.host.WindowWidth
}

func (o *Observer) recompute() {
	env := config.NewEnvironment(o.host)
	if env == o.env {
		return
	}
	o.env = env
	o.logger.Info("environment: changed",
		"width", env.ContainerWidth, "height", env.ContainerHeight,
		"scale", env.ScaleFactor, "embedded", env.Embedded)
	for _, fn := range o.listeners {
		fn(env)
	}
}
