// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package ebitencanvas presents gg drawings in an Ebitengine window and
// feeds Ebitengine pointer input back to a sketch.
//
// The data flow is:
//
//	gg.Context (draw) -> Pixmap (CPU) -> ebiten.Image -> screen
//
// # Usage
//
//	canvas, err := ebitencanvas.New(800, 600)
//	if err != nil {
//	    return err
//	}
//	defer canvas.Close()
//
//	// in Game.Draw:
//	_ = canvas.Draw(func(dc *gg.Context) { _ = sketch.Render(dc) })
//	_ = canvas.Present(screen)
//
// # Thread Safety
//
// Canvas and Tracker are NOT safe for concurrent use. Use them from the
// Ebitengine game loop only.
package ebitencanvas
