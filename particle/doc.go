// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package particle creates, stores and renders sketch particles.
//
// A particle is a small rotated rectangle. [Generator] creates particles
// from configuration, [Batch] owns them and draws them onto any [Surface]
// (a *gg.Context satisfies it) through an off-screen gg buffer.
//
// # Density
//
// Stroke sampling uses a single rule, shared with the pointer controller:
// a segment of length d at density ρ yields max(1, floor(d·ρeff))
// samples, where ρeff = ρ·(1+(20−d)/20) for d < 20 and ρ otherwise. Short
// segments are boosted so slow strokes do not look sparse. See
// [EffectiveDensity], [SegmentCount] and [SegmentSamples].
package particle
