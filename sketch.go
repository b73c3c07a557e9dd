// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package ggsketch

import (
	"errors"
	"fmt"
	"image"
	"log/slog"
	"math/rand/v2"
	"time"

	"github.com/gogpu/ggsketch/cadence"
	"github.com/gogpu/ggsketch/clock"
	"github.com/gogpu/ggsketch/config"
	"github.com/gogpu/ggsketch/environment"
	"github.com/gogpu/ggsketch/magnet"
	"github.com/gogpu/ggsketch/particle"
	"github.com/gogpu/ggsketch/pointer"
	"github.com/gogpu/ggsketch/predraw"
	"github.com/gogpu/ggsketch/stamp"
	"github.com/gogpu/ggsketch/transition"
)

// Common errors returned by Sketch operations.
var (
	// ErrInvalidDimensions is returned when width or height is not positive.
	ErrInvalidDimensions = errors.New("ggsketch: invalid dimensions")

	// ErrInvalidConfig is returned when the merged configuration fails
	// validation.
	ErrInvalidConfig = errors.New("ggsketch: invalid configuration")

	// ErrClosed is returned when rendering a closed sketch.
	ErrClosed = errors.New("ggsketch: sketch is closed")
)

// Sketch is a magnetic sketch canvas: it owns the particles, the magnets,
// the pointer controller and the entry transition, and wires them
// together.
//
// All methods must be called from one goroutine, normally the host's
// update loop.
type Sketch struct {
	width, height int

	base config.Config
	cfg  config.Config

	clock    clock.Clock
	timers   *clock.Timers
	env      *environment.Observer
	gen      *particle.Generator
	batch    *particle.Batch
	magnets  *magnet.Manager
	pointer  *pointer.Controller
	store    *transition.Store
	timeline *transition.Timeline
	raster   *stamp.Rasterizer
	throttle *cadence.Throttle
	rng      *rand.Rand

	sinks    Sinks
	logger   *slog.Logger
	layers   layers
	lastTick time.Time
	closed   bool
}

// New creates a sketch for a width×height canvas. The environment observer
// is not started until Start.
func New(width, height int, opts ...Option) (*Sketch, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: width=%d, height=%d", ErrInvalidDimensions, width, height)
	}
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.logger == nil {
		o.logger = Logger()
	}
	if o.clock == nil {
		o.clock = clock.Real{}
	}

	base := config.Merge(config.Default(), o.override)
	if err := base.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	src := o.rand
	if src == nil {
		src = rand.NewPCG(rand.Uint64(), rand.Uint64())
	}
	rng := rand.New(src)
	fork := func() rand.Source { return rand.NewPCG(rng.Uint64(), rng.Uint64()) }

	host := o.host
	if host.WindowWidth <= 0 || host.WindowHeight <= 0 {
		host.WindowWidth, host.WindowHeight = width, height
	}

	s := &Sketch{
		width:  width,
		height: height,
		base:   base,
		cfg:    base,
		clock:  o.clock,
		timers: clock.NewTimers(o.clock),
		sinks:  o.sinks,
		logger: o.logger,
		rng:    rand.New(fork()),
	}
	s.gen = particle.NewGenerator(base, fork())
	s.raster = stamp.New(s.gen, base, fork())
	s.batch = particle.NewBatch(base.MaxParticles, particle.WithLogger(o.logger))
	s.magnets = magnet.NewManager(
		magnet.WithScheduler(s.timers),
		magnet.WithCanvasSize(float64(width), float64(height)),
		magnet.WithChangeListener(s.magnetChanged),
		magnet.WithStampListener(s.magnetStamped),
		magnet.WithLogger(o.logger),
	)
	for typ, img := range o.images {
		s.magnets.SetImage(typ, img)
	}
	s.pointer = pointer.New(base.ParticleDensity, o.clock, pointer.Sinks{
		Cursor:    s.cursorMoved,
		Magnet:    s.magnetInteraction,
		Particles: s.strokeSampled,
	})
	s.env = environment.NewObserver(host, o.logger)
	s.env.OnChange(s.applyEnvironment)
	s.store = transition.NewStore(
		transition.WithConstrained(s.env.Constrained),
		transition.WithLogger(o.logger),
	)
	s.store.Subscribe(func(transition.State) { s.syncGate() })
	timings := o.timings
	if timings == (transition.Timings{}) {
		timings = environment.AdjustTimings(width, transition.DefaultTimings())
	}
	s.timeline = transition.NewTimeline(s.store, timings)
	s.timeline.OnWipe = s.wipe
	s.throttle = cadence.NewThrottle(cadence.FromConfig(base))
	s.syncGate()
	return s, nil
}

// Start starts the environment observer and, on constrained viewports,
// the entry transition.
func (s *Sketch) Start() {
	s.env.Start()
	s.store.TriggerAutoTransitionIfNeeded()
	s.lastTick = s.clock.Now()
}

// Stop stops the environment observer.
func (s *Sketch) Stop() { s.env.Stop() }

// Close stops the sketch and releases its buffers.
func (s *Sketch) Close() error {
	if s.closed {
		return nil
	}
	s.closed = true
	s.env.Stop()
	s.layers.reset()
	return s.batch.Close()
}

// Resize records a new canvas size. Container dimensions of zero fall
// back to the canvas size.
func (s *Sketch) Resize(width, height, containerW, containerH int) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("%w: width=%d, height=%d", ErrInvalidDimensions, width, height)
	}
	s.width, s.height = width, height
	s.magnets.SetCanvasSize(float64(width), float64(height))
	s.env.Resize(width, height, containerW, containerH)
	return nil
}

// SetEmbedded records whether the sketch runs inside a foreign frame.
func (s *Sketch) SetEmbedded(embedded bool) { s.env.SetEmbedded(embedded) }

// Size returns the canvas size.
func (s *Sketch) Size() (width, height int) { return s.width, s.height }

// Config returns the resolved configuration.
func (s *Sketch) Config() config.Config { return s.cfg }

// Environment returns the current environment.
func (s *Sketch) Environment() config.Environment { return s.env.Environment() }

// Particles returns the particle batch.
func (s *Sketch) Particles() *particle.Batch { return s.batch }

// Magnets returns the magnet manager.
func (s *Sketch) Magnets() *magnet.Manager { return s.magnets }

// Pointer returns the pointer controller.
func (s *Sketch) Pointer() *pointer.Controller { return s.pointer }

// Transition returns the transition store.
func (s *Sketch) Transition() *transition.Store { return s.store }

// AppState returns the derived app state.
func (s *Sketch) AppState() transition.AppState { return s.store.AppState() }

// StartTransition begins the entry animation. It is idempotent.
func (s *Sketch) StartTransition() { s.store.Start() }

// PointerMove forwards pointer motion.
func (s *Sketch) PointerMove(x, y float64) { s.pointer.Move(x, y) }

// PointerDown forwards a press.
func (s *Sketch) PointerDown(x, y float64) { s.pointer.Down(x, y) }

// PointerUp forwards a release.
func (s *Sketch) PointerUp(x, y float64) { s.pointer.Up(x, y) }

// AddMagnet creates a magnet. A zero Scale uses the device magnet scale.
func (s *Sketch) AddMagnet(o magnet.Options) *magnet.Magnet {
	if o.Scale == 0 {
		o.Scale = environment.MagnetScale(s.width)
	}
	return s.magnets.Create(o)
}

// SetMagnetImage registers the decoded image for a magnet type.
func (s *Sketch) SetMagnetImage(typ string, img image.Image) {
	s.magnets.SetImage(typ, img)
}

// Stamp stamps m into particles. See magnet.Manager.Stamp.
func (s *Sketch) Stamp(m *magnet.Magnet) bool { return s.magnets.Stamp(m) }

// Predraw scatters pre-drawn text particles, anchored at the multitext
// offset for the current width. A nil ttf uses Go Regular.
func (s *Sketch) Predraw(lines []string, ttf []byte, size float64) (int, error) {
	layout, err := predraw.NewLayout(ttf, size)
	if err != nil {
		return 0, err
	}
	defer func() { _ = layout.Close() }()

	fx, fy := environment.MultitextOffset(s.width)
	origin := particle.Point{X: float64(s.width) * fx, Y: float64(s.height) * fy}
	ps := predraw.Scatter(s.gen, s.cfg, layout.Mask(lines), origin, rand.NewPCG(s.rng.Uint64(), s.rng.Uint64()))
	return s.add(ps), nil
}

// Update advances time-driven state to now: the transition timeline and
// deferred callbacks such as stamp cooldowns.
func (s *Sketch) Update(now time.Time) {
	if s.lastTick.IsZero() {
		s.lastTick = now
	}
	dt := now.Sub(s.lastTick)
	s.lastTick = now
	if dt > 0 {
		s.timeline.Advance(dt)
	}
	s.timers.Run(now)
}

// FrameDue reports whether the render cadence asks for a frame at now.
func (s *Sketch) FrameDue(now time.Time) bool {
	return s.throttle.Ready(now, s.pointer.LastInteraction())
}

// Mode returns the current render cadence mode.
func (s *Sketch) Mode(now time.Time) cadence.Mode {
	return cadence.FromConfig(s.cfg).Mode(now, s.pointer.LastInteraction())
}

func (s *Sketch) applyEnvironment(env config.Environment) {
	s.cfg = config.Resolve(s.base, env)
	s.gen.SetConfig(s.cfg)
	s.raster.SetConfig(s.cfg)
	s.batch.SetMax(s.cfg.MaxParticles)
	s.pointer.SetDensity(s.cfg.ParticleDensity)
	s.throttle.SetPolicy(cadence.FromConfig(s.cfg))
}

func (s *Sketch) syncGate() {
	s.pointer.SetGated(s.store.AppState() == transition.Transitioning)
}

func (s *Sketch) wipe(progress float64) {
	s.batch.ClearToX(float64(s.width) * (1 - progress))
}

func (s *Sketch) add(ps []particle.Particle) int {
	n := s.batch.Add(ps...)
	if n > 0 && s.sinks.ParticlesCreated != nil {
		s.sinks.ParticlesCreated(ps[:n])
	}
	return n
}

func (s *Sketch) cursorMoved(x, y float64, clicking bool) {
	if clicking {
		s.magnets.MoveDragging(x, y)
	}
	if s.sinks.CursorUpdated != nil {
		s.sinks.CursorUpdated(x, y, clicking)
	}
}

func (s *Sketch) magnetInteraction(kind pointer.Interaction, x, y float64) {
	switch kind {
	case pointer.Down:
		s.magnets.StartDragging(x, y)
	case pointer.Up:
		if m := s.magnets.StopDragging(x, y); m != nil {
			s.magnets.Stamp(m)
		}
	}
	if s.sinks.MagnetInteraction != nil {
		s.sinks.MagnetInteraction(kind, x, y)
	}
}

// strokeSampled paints a stroke unless the press grabbed a magnet.
func (s *Sketch) strokeSampled(samples []particle.Point) {
	if s.magnets.Dragging() != nil {
		return
	}
	s.add(s.gen.At(samples, particle.PathOptions{}))
}

func (s *Sketch) magnetChanged(m *magnet.Magnet) {
	if s.sinks.MagnetChanged != nil {
		s.sinks.MagnetChanged(m)
	}
}

func (s *Sketch) magnetStamped(m *magnet.Magnet) {
	s.add(s.raster.Particles(m))
	if s.sinks.MagnetStamped != nil {
		s.sinks.MagnetStamped(m)
	}
}
