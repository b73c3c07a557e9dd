// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"image"
	"math/rand/v2"
	"time"

	"github.com/gogpu/gg"
	"github.com/gogpu/ggsketch"
	"github.com/gogpu/ggsketch/clock"
	"github.com/gogpu/ggsketch/config"
	"github.com/gogpu/ggsketch/magnet"
	"github.com/gogpu/ggsketch/particle"
	"github.com/gogpu/ggsketch/transition"
	"github.com/spf13/cobra"
)

// frame is the simulated frame interval of a scripted render.
const frame = 16 * time.Millisecond

// script describes a headless sketch session.
type script struct {
	Width, Height int
	Seed          uint64
	Text          []string
	TextSize      float64
	Strokes       [][]particle.Point
	Magnet        *particle.Point
	Drop          *particle.Point
	MagnetImage   image.Image
}

func newRenderCmd() *cobra.Command {
	var (
		sc        = script{Width: 1280, Height: 800, Seed: 1, TextSize: 96}
		out       string
		strokes   []string
		magnetAt  string
		dropAt    string
		imagePath string
	)

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render a scripted sketch to a PNG file",
		Example: `  ggsketch render -o out.png --stroke "100,100 400,300 700,120" \
      --magnet 600,400 --drop 900,500 --text "hello"`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			for _, s := range strokes {
				pts, err := parsePath(s)
				if err != nil {
					return err
				}
				sc.Strokes = append(sc.Strokes, pts)
			}
			if magnetAt != "" {
				p, err := parsePoint(magnetAt)
				if err != nil {
					return err
				}
				sc.Magnet = &p
			}
			if dropAt != "" {
				p, err := parsePoint(dropAt)
				if err != nil {
					return err
				}
				sc.Drop = &p
			}
			if imagePath != "" {
				img, err := loadImage(imagePath)
				if err != nil {
					return err
				}
				sc.MagnetImage = img
			}

			o, err := loadOverride(configPath)
			if err != nil {
				return err
			}
			dc, err := renderScript(sc, o)
			if err != nil {
				return err
			}
			defer func() { _ = dc.Close() }()

			if err := dc.SavePNG(out); err != nil {
				return fmt.Errorf("save %s: %w", out, err)
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", out)
			return err
		},
	}

	cmd.Flags().StringVarP(&out, "output", "o", "sketch.png", "Output PNG path")
	cmd.Flags().IntVar(&sc.Width, "width", sc.Width, "Canvas width in pixels")
	cmd.Flags().IntVar(&sc.Height, "height", sc.Height, "Canvas height in pixels")
	cmd.Flags().Uint64Var(&sc.Seed, "seed", sc.Seed, "Random seed")
	cmd.Flags().StringArrayVar(&strokes, "stroke", nil, `Stroke path "x,y x,y ...", repeatable`)
	cmd.Flags().StringArrayVar(&sc.Text, "text", nil, "Pre-drawn text line, repeatable")
	cmd.Flags().Float64Var(&sc.TextSize, "text-size", sc.TextSize, "Pre-drawn text size in points")
	cmd.Flags().StringVar(&magnetAt, "magnet", "", `Place a magnet at "x,y"`)
	cmd.Flags().StringVar(&dropAt, "drop", "", `Drag the magnet to "x,y" and drop it`)
	cmd.Flags().StringVar(&imagePath, "magnet-image", "", "PNG or JPEG magnet image")
	return cmd
}

// renderScript plays sc on a sketch driven by a manual clock and returns
// the rendered context. The caller closes it.
func renderScript(sc script, o config.Override) (*gg.Context, error) {
	clk := clock.NewManual(time.Unix(0, 0))
	img := sc.MagnetImage
	if img == nil {
		img = defaultMagnetImage(160)
	}

	s, err := ggsketch.New(sc.Width, sc.Height,
		ggsketch.WithOverride(o),
		ggsketch.WithHost(config.Host{
			Embedded:     embedded,
			WindowWidth:  sc.Width,
			WindowHeight: sc.Height,
		}),
		ggsketch.WithClock(clk),
		ggsketch.WithRandSource(rand.NewPCG(sc.Seed, sc.Seed^0x9e3779b97f4a7c15)),
		ggsketch.WithMagnetImage(magnet.DefaultType, img),
	)
	if err != nil {
		return nil, err
	}
	defer func() { _ = s.Close() }()

	s.Start()
	defer s.Stop()

	tick := func(d time.Duration) {
		clk.Advance(d)
		s.Update(clk.Now())
	}
	for s.AppState() == transition.Transitioning {
		tick(frame)
	}

	if len(sc.Text) > 0 {
		if _, err := s.Predraw(sc.Text, nil, sc.TextSize); err != nil {
			return nil, err
		}
	}

	for _, pts := range sc.Strokes {
		s.PointerDown(pts[0].X, pts[0].Y)
		for _, p := range pts[1:] {
			tick(frame)
			s.PointerMove(p.X, p.Y)
		}
		last := pts[len(pts)-1]
		s.PointerUp(last.X, last.Y)
		tick(frame)
	}

	if sc.Magnet != nil {
		b := img.Bounds()
		m := s.AddMagnet(magnet.Options{
			X:      sc.Magnet.X,
			Y:      sc.Magnet.Y,
			Width:  float64(b.Dx()),
			Height: float64(b.Dy()),
		})
		if sc.Drop != nil {
			s.PointerDown(m.X, m.Y)
			tick(frame)
			s.PointerMove(sc.Drop.X, sc.Drop.Y)
			s.PointerUp(sc.Drop.X, sc.Drop.Y)
		} else {
			s.Stamp(m)
		}
		tick(magnet.StampCooldown + frame)
	}

	dc := gg.NewContext(sc.Width, sc.Height)
	if err := s.Render(dc); err != nil {
		_ = dc.Close()
		return nil, err
	}
	return dc, nil
}
