// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"image"
	"time"

	"github.com/gogpu/gg"
	"github.com/gogpu/ggsketch"
	"github.com/gogpu/ggsketch/config"
	"github.com/gogpu/ggsketch/integration/ebitencanvas"
	"github.com/gogpu/ggsketch/magnet"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/spf13/cobra"
)

// game hosts a Sketch in an ebiten window.
//
// Keys: M drops a magnet at the cursor, T starts the entry transition,
// C clears the particles, Escape quits.
type game struct {
	sketch  *ggsketch.Sketch
	canvas  *ebitencanvas.Canvas
	tracker *ebitencanvas.Tracker
	magnet  image.Image

	pendingW, pendingH int
	renderErr          error
}

var errQuit = errors.New("quit")

func newGame(s *ggsketch.Sketch, img image.Image) (*game, error) {
	w, h := s.Size()
	canvas, err := ebitencanvas.New(w, h)
	if err != nil {
		return nil, err
	}
	return &game{
		sketch:  s,
		canvas:  canvas,
		tracker: ebitencanvas.NewTracker(s),
		magnet:  img,
	}, nil
}

func (g *game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return errQuit
	}
	if g.pendingW > 0 {
		if err := g.resize(g.pendingW, g.pendingH); err != nil {
			return err
		}
		g.pendingW, g.pendingH = 0, 0
	}

	g.handleKeys()
	g.tracker.Poll()

	now := time.Now()
	g.sketch.Update(now)
	if !g.sketch.FrameDue(now) {
		return nil
	}
	if err := g.canvas.Draw(func(dc *gg.Context) {
		g.renderErr = g.sketch.Render(dc)
	}); err != nil {
		return err
	}
	return g.renderErr
}

func (g *game) handleKeys() {
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyM):
		x, y := ebiten.CursorPosition()
		b := g.magnet.Bounds()
		g.sketch.AddMagnet(magnet.Options{
			X:      float64(x),
			Y:      float64(y),
			Width:  float64(b.Dx()),
			Height: float64(b.Dy()),
		})
	case inpututil.IsKeyJustPressed(ebiten.KeyT):
		g.sketch.StartTransition()
	case inpututil.IsKeyJustPressed(ebiten.KeyC):
		g.sketch.Particles().Clear()
	}
}

func (g *game) Draw(screen *ebiten.Image) {
	_ = g.canvas.Present(screen)
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if w, h := g.canvas.Size(); w != outsideWidth || h != outsideHeight {
		g.pendingW, g.pendingH = outsideWidth, outsideHeight
	}
	return outsideWidth, outsideHeight
}

func (g *game) resize(w, h int) error {
	if err := g.sketch.Resize(w, h, 0, 0); err != nil {
		return err
	}
	return g.canvas.Resize(w, h)
}

func (g *game) Close() error {
	return errors.Join(g.canvas.Close(), g.sketch.Close())
}

func newRunCmd() *cobra.Command {
	var (
		width, height int
		text          []string
		textSize      float64
		imagePath     string
	)

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Open an interactive sketch window",
		RunE: func(_ *cobra.Command, _ []string) error {
			o, err := loadOverride(configPath)
			if err != nil {
				return err
			}
			img := defaultMagnetImage(160)
			if imagePath != "" {
				if img, err = loadImage(imagePath); err != nil {
					return err
				}
			}

			s, err := ggsketch.New(width, height,
				ggsketch.WithOverride(o),
				ggsketch.WithHost(config.Host{
					Embedded:         embedded,
					DevicePixelRatio: ebiten.Monitor().DeviceScaleFactor(),
					WindowWidth:      width,
					WindowHeight:     height,
				}),
				ggsketch.WithMagnetImage(magnet.DefaultType, img),
			)
			if err != nil {
				return err
			}
			if len(text) > 0 {
				if _, err := s.Predraw(text, nil, textSize); err != nil {
					_ = s.Close()
					return err
				}
			}
			s.Start()

			g, err := newGame(s, img)
			if err != nil {
				_ = s.Close()
				return err
			}
			defer func() { _ = g.Close() }()

			ebiten.SetWindowTitle("ggsketch")
			ebiten.SetWindowSize(width, height)
			ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
			ebiten.SetTPS(s.Config().TargetFPS)
			if err := ebiten.RunGame(g); err != nil && !errors.Is(err, errQuit) {
				return err
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&width, "width", 1280, "Window width in pixels")
	cmd.Flags().IntVar(&height, "height", 800, "Window height in pixels")
	cmd.Flags().StringArrayVar(&text, "text", nil, "Pre-drawn text line, repeatable")
	cmd.Flags().Float64Var(&textSize, "text-size", 96, "Pre-drawn text size in points")
	cmd.Flags().StringVar(&imagePath, "magnet-image", "", "PNG or JPEG magnet image")
	return cmd
}
