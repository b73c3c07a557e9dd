// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package particle

import (
	"log/slog"

	"github.com/gogpu/gg"
)

// Surface is a render target with a known pixel size.
// *gg.Context satisfies Surface.
type Surface interface {
	Width() int
	Height() int
	DrawImage(img *gg.ImageBuf, x, y float64)
}

// BatchOption configures a Batch.
type BatchOption func(*batchOptions)

type batchOptions struct {
	logger *slog.Logger
}

// WithLogger sets the logger used for cap and render diagnostics.
func WithLogger(l *slog.Logger) BatchOption {
	return func(o *batchOptions) {
		o.logger = l
	}
}

// Stats describes the outcome of the last Render.
type Stats struct {
	Total  int
	Drawn  int
	Culled int
	Groups int
}

// Batch owns particles bucketed by opacity.
//
// Once the configured cap is reached, Add rejects new particles and counts
// them as dropped; existing particles are never evicted.
//
// Batch is NOT safe for concurrent use.
type Batch struct {
	buckets map[float64][]Particle
	order   []float64
	n       int
	max     int
	dropped int

	offscreen *gg.Context
	stats     Stats
	logger    *slog.Logger
}

// NewBatch creates a batch holding at most maxParticles particles.
// Zero or a negative value means unlimited.
func NewBatch(maxParticles int, opts ...BatchOption) *Batch {
	o := batchOptions{}
	for _, opt := range opts {
		opt(&o)
	}
	if o.logger == nil {
		o.logger = slog.New(slog.DiscardHandler)
	}
	return &Batch{
		buckets: make(map[float64][]Particle),
		max:     maxParticles,
		logger:  o.logger,
	}
}

// SetMax changes the cap. Particles already held are kept.
func (b *Batch) SetMax(maxParticles int) { b.max = maxParticles }

// Add appends particles and returns how many were accepted.
func (b *Batch) Add(ps ...Particle) int {
	accepted := 0
	for _, p := range ps {
		if b.max > 0 && b.n >= b.max {
			rejected := len(ps) - accepted
			b.dropped += rejected
			b.logger.Warn("particle: cap reached", "max", b.max, "rejected", rejected)
			return accepted
		}
		key := bucketKey(p.Opacity)
		if _, ok := b.buckets[key]; !ok {
			b.order = append(b.order, key)
		}
		b.buckets[key] = append(b.buckets[key], p)
		b.n++
		accepted++
	}
	return accepted
}

// bucketKey treats a zero opacity as fully opaque.
func bucketKey(opacity float64) float64 {
	if opacity == 0 {
		return 1
	}
	return opacity
}

// Len returns the number of particles held.
func (b *Batch) Len() int { return b.n }

// Dropped returns how many particles were rejected at the cap.
func (b *Batch) Dropped() int { return b.dropped }

// Stats returns the statistics of the last Render.
func (b *Batch) Stats() Stats { return b.stats }

// Each calls fn for every particle, bucket by bucket in insertion order,
// until fn returns false.
func (b *Batch) Each(fn func(Particle) bool) {
	for _, key := range b.order {
		for _, p := range b.buckets[key] {
			if !fn(p) {
				return
			}
		}
	}
}

// Clear removes every particle.
func (b *Batch) Clear() {
	clear(b.buckets)
	b.order = b.order[:0]
	b.n = 0
}

// ClearToX keeps only particles with X <= x.
func (b *Batch) ClearToX(x float64) {
	n := 0
	for _, key := range b.order {
		kept := b.buckets[key][:0]
		for _, p := range b.buckets[key] {
			if p.X <= x {
				kept = append(kept, p)
			}
		}
		b.buckets[key] = kept
		n += len(kept)
	}
	b.n = n
}
