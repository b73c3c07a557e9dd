// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package ebitencanvas

import (
	"errors"
	"fmt"

	"github.com/gogpu/gg"
	"github.com/hajimehoshi/ebiten/v2"
)

// Common errors returned by Canvas operations.
var (
	// ErrCanvasClosed is returned when operations are attempted on a closed canvas.
	ErrCanvasClosed = errors.New("ebitencanvas: canvas is closed")

	// ErrInvalidDimensions is returned when width or height is invalid.
	ErrInvalidDimensions = errors.New("ebitencanvas: invalid dimensions")
)

// Canvas wraps a gg.Context and uploads it to an ebiten.Image when it
// changed.
type Canvas struct {
	ctx         *gg.Context
	image       *ebiten.Image // lazily created
	dirty       bool
	sizeChanged bool
	width       int
	height      int
	closed      bool
}

// New creates a Canvas of the given size.
func New(width, height int) (*Canvas, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: width=%d, height=%d", ErrInvalidDimensions, width, height)
	}
	return &Canvas{
		ctx:    gg.NewContext(width, height),
		width:  width,
		height: height,
		dirty:  true,
	}, nil
}

// Context returns the drawing context, or nil after Close.
func (c *Canvas) Context() *gg.Context {
	if c.closed {
		return nil
	}
	return c.ctx
}

// Size returns the canvas size.
func (c *Canvas) Size() (width, height int) {
	return c.width, c.height
}

// IsDirty reports whether the pixels changed since the last Flush.
func (c *Canvas) IsDirty() bool {
	return c.dirty
}

// Draw runs fn on the context and marks the canvas dirty.
func (c *Canvas) Draw(fn func(*gg.Context)) error {
	if c.closed {
		return ErrCanvasClosed
	}
	fn(c.ctx)
	c.dirty = true
	return nil
}

// Resize changes the canvas size. Same-size calls are no-ops.
func (c *Canvas) Resize(width, height int) error {
	if c.closed {
		return ErrCanvasClosed
	}
	if width <= 0 || height <= 0 {
		return fmt.Errorf("%w: width=%d, height=%d", ErrInvalidDimensions, width, height)
	}
	if c.width == width && c.height == height {
		return nil
	}
	if err := c.ctx.Resize(width, height); err != nil {
		return fmt.Errorf("ebitencanvas: context resize failed: %w", err)
	}
	c.width = width
	c.height = height
	c.sizeChanged = true
	c.dirty = true
	return nil
}

// Flush uploads the pixels if they changed and returns the image.
func (c *Canvas) Flush() (*ebiten.Image, error) {
	if c.closed {
		return nil, ErrCanvasClosed
	}
	if c.sizeChanged && c.image != nil {
		c.image.Deallocate()
		c.image = nil
	}
	c.sizeChanged = false
	if c.image == nil {
		c.image = ebiten.NewImage(c.width, c.height)
		c.dirty = true
	}
	if c.dirty {
		c.image.WritePixels(c.ctx.ResizeTarget().Data())
		c.dirty = false
	}
	return c.image, nil
}

// Present flushes and draws the canvas onto screen at the origin.
func (c *Canvas) Present(screen *ebiten.Image) error {
	img, err := c.Flush()
	if err != nil {
		return err
	}
	screen.DrawImage(img, nil)
	return nil
}

// Close releases the image and the context.
func (c *Canvas) Close() error {
	if c.closed {
		return nil
	}
	c.closed = true
	if c.image != nil {
		c.image.Deallocate()
		c.image = nil
	}
	if c.ctx != nil {
		_ = c.ctx.Close()
		c.ctx = nil
	}
	return nil
}
