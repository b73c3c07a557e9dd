// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package ggsketch is an interactive magnetic sketch canvas rendered with
// gg.
//
// Pointer strokes paint thousands of small rotated particles; magnets can
// be dragged around and dropped to stamp their image into particles. An
// entry animation (scale, rotate, wipe) plays first and blocks input until
// it completes.
//
// # Quick Start
//
//	s, err := ggsketch.New(1280, 720)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer s.Close()
//	s.Start()
//
//	s.PointerDown(100, 100)
//	s.PointerMove(140, 100)
//	s.PointerUp(140, 100)
//
//	dc := gg.NewContext(1280, 720)
//	_ = s.Render(dc)
//	_ = dc.SavePNG("sketch.png")
//
// # Architecture
//
// The sketch wires these packages together:
//   - config: defaults, overrides, environment-aware resolution
//   - particle: particle creation, the shared stroke density rule, the batch
//   - magnet: magnets, hit testing, drags, stamp cooldowns
//   - pointer: raw input to cursor, magnet and stroke events
//   - transition: entry animation phases and the derived app state
//   - environment: viewport observer, breakpoints, scale factors
//   - stamp and predraw: image and text rasterization into particles
//   - cadence: active and idle frame rates
//   - colors: hex and rgba() parsing shared by config and rendering
//   - clock: time sources and the deferred-callback queue
//
// # Threading
//
// A Sketch is single-threaded. Call every method from the host's update
// goroutine and call Update once per tick; deferred callbacks such as the
// stamp cooldown run inside Update.
//
// # Logging
//
// ggsketch is silent by default. Use [SetLogger] or [WithLogger] to
// receive log/slog records.
//
// The ebitencanvas integration hosts a Sketch in an ebiten window, and
// cmd/ggsketch wraps both in a command line tool.
package ggsketch
