// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package magnet manages the draggable, stampable magnets of a sketch.
//
// A magnet moves through idle → dragging → idle → stamping → stamped.
// [Manager] owns every magnet and keeps them in z-order: the last element
// is drawn on top and wins hit tests. Starting a drag promotes the magnet
// to the top immediately.
//
// At most one magnet drags at a time. StartDragging releases a previous
// drag before starting a new one.
package magnet

import (
	"image"
	"log/slog"
	"time"

	"github.com/gogpu/ggsketch/clock"
)

// DefaultType is the magnet type used when Options.Type is empty.
const DefaultType = "F"

// StampCooldown is how long a magnet refuses new stamps after one started.
const StampCooldown = 100 * time.Millisecond

// Magnet is a draggable entity centred on (X, Y).
//
// Fields are owned by the Manager. Read them freely; mutate only through
// Manager methods.
type Magnet struct {
	ID       int
	X, Y     float64
	Type     string
	Image    image.Image // nil until the asset is loaded
	Width    float64
	Height   float64
	Rotation float64
	Scale    float64

	Dragging bool
	Stamping bool
	Stamped  bool

	offsetX, offsetY float64
}

// HalfExtents returns the scaled half width and half height.
func (m *Magnet) HalfExtents() (hw, hh float64) {
	return m.Width * m.Scale / 2, m.Height * m.Scale / 2
}

// Contains reports whether (x, y) lies in the scaled axis-aligned box.
// A magnet without a size contains nothing.
func (m *Magnet) Contains(x, y float64) bool {
	if m.Width == 0 || m.Height == 0 {
		return false
	}
	hw, hh := m.HalfExtents()
	return x >= m.X-hw && x <= m.X+hw && y >= m.Y-hh && y <= m.Y+hh
}

// Bounds returns the scaled box as an image.Rectangle, rounded outwards.
func (m *Magnet) Bounds() image.Rectangle {
	hw, hh := m.HalfExtents()
	return image.Rect(int(m.X-hw), int(m.Y-hh), int(m.X+hw+0.5), int(m.Y+hh+0.5))
}

// Options configure a new magnet. Zero Scale means 1.
type Options struct {
	X, Y     float64
	Type     string
	Image    image.Image
	Width    float64
	Height   float64
	Rotation float64
	Scale    float64
}

// Scheduler runs fn after d. *clock.Timers satisfies it.
type Scheduler interface {
	After(d time.Duration, fn func())
}

// Option configures a Manager.
type Option func(*managerOptions)

type managerOptions struct {
	scheduler Scheduler
	onChange  func(*Magnet)
	onStamp   func(*Magnet)
	logger    *slog.Logger
	width     float64
	height    float64
}

// WithScheduler sets where stamp cooldowns are scheduled.
func WithScheduler(s Scheduler) Option {
	return func(o *managerOptions) { o.scheduler = s }
}

// WithChangeListener sets the callback for creation and position changes.
func WithChangeListener(fn func(*Magnet)) Option {
	return func(o *managerOptions) { o.onChange = fn }
}

// WithStampListener sets the callback that rasterizes a stamped magnet.
func WithStampListener(fn func(*Magnet)) Option {
	return func(o *managerOptions) { o.onStamp = fn }
}

// WithLogger sets the logger.
func WithLogger(l *slog.Logger) Option {
	return func(o *managerOptions) { o.logger = l }
}

// WithCanvasSize sets the canvas size used to clamp drags.
func WithCanvasSize(w, h float64) Option {
	return func(o *managerOptions) { o.width, o.height = w, h }
}

// Manager owns the magnets.
//
// Manager is NOT safe for concurrent use.
type Manager struct {
	magnets []*Magnet
	images  map[string]image.Image
	nextID  int
	opts    managerOptions
}

// NewManager creates an empty manager. Without WithScheduler, cooldowns
// are queued on a private clock.Timers that nothing drains, so a stamped
// magnet stays in its cooldown.
func NewManager(opts ...Option) *Manager {
	o := managerOptions{}
	for _, opt := range opts {
		opt(&o)
	}
	if o.scheduler == nil {
		o.scheduler = clock.NewTimers(nil)
	}
	if o.logger == nil {
		o.logger = slog.New(slog.DiscardHandler)
	}
	return &Manager{
		images: make(map[string]image.Image),
		nextID: 1,
		opts:   o,
	}
}

// SetCanvasSize updates the clamp rectangle. Non-positive sizes disable
// clamping.
func (mg *Manager) SetCanvasSize(w, h float64) {
	mg.opts.width, mg.opts.height = w, h
}

// SetImage registers the loaded image for a magnet type and attaches it
// to existing magnets of that type.
func (mg *Manager) SetImage(typ string, img image.Image) {
	mg.images[typ] = img
	for _, m := range mg.magnets {
		if m.Type == typ {
			m.Image = img
		}
	}
}

// Create allocates a magnet with the next ID and places it on top.
func (mg *Manager) Create(o Options) *Magnet {
	m := &Magnet{
		ID:       mg.nextID,
		X:        o.X,
		Y:        o.Y,
		Type:     o.Type,
		Image:    o.Image,
		Width:    o.Width,
		Height:   o.Height,
		Rotation: o.Rotation,
		Scale:    o.Scale,
	}
	mg.nextID++
	if m.Type == "" {
		m.Type = DefaultType
	}
	if m.Scale == 0 {
		m.Scale = 1
	}
	if m.Image == nil {
		m.Image = mg.images[m.Type]
	}
	mg.magnets = append(mg.magnets, m)
	mg.opts.logger.Debug("magnet: created", "id", m.ID, "type", m.Type)
	mg.notifyChange(m)
	return m
}

// Magnets returns the magnets bottom to top. The slice is a copy.
func (mg *Manager) Magnets() []*Magnet {
	out := make([]*Magnet, len(mg.magnets))
	copy(out, mg.magnets)
	return out
}

// ByID returns the magnet with id, or nil.
func (mg *Manager) ByID(id int) *Magnet {
	for _, m := range mg.magnets {
		if m.ID == id {
			return m
		}
	}
	return nil
}

// At returns the top-most magnet containing (x, y), or nil.
func (mg *Manager) At(x, y float64) *Magnet {
	for i := len(mg.magnets) - 1; i >= 0; i-- {
		if mg.magnets[i].Contains(x, y) {
			return mg.magnets[i]
		}
	}
	return nil
}

// Dragging returns the magnet being dragged, or nil.
func (mg *Manager) Dragging() *Magnet {
	for _, m := range mg.magnets {
		if m.Dragging {
			return m
		}
	}
	return nil
}

func (mg *Manager) notifyChange(m *Magnet) {
	if mg.opts.onChange != nil {
		mg.opts.onChange(m)
	}
}
