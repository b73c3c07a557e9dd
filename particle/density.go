// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package particle

import "math"

// BoostDistance is the segment length below which density is boosted.
const BoostDistance = 20.0

// Point is a position in canvas pixels.
type Point struct {
	X, Y float64
}

// Dist returns the euclidean distance between p and q.
func (p Point) Dist(q Point) float64 {
	return math.Hypot(q.X-p.X, q.Y-p.Y)
}

// Lerp returns the point at parameter t on the segment from p to q.
func (p Point) Lerp(q Point, t float64) Point {
	return Point{X: p.X + (q.X-p.X)*t, Y: p.Y + (q.Y-p.Y)*t}
}

// EffectiveDensity returns the density for a segment of length d.
func EffectiveDensity(d, density float64) float64 {
	if d < BoostDistance {
		return density * (1 + (BoostDistance-d)/BoostDistance)
	}
	return density
}

// SegmentCount returns the number of samples for a segment of length d.
// It is never less than one.
func SegmentCount(d, density float64) int {
	n := int(math.Floor(d * EffectiveDensity(d, density)))
	if n < 1 {
		return 1
	}
	return n
}

// SegmentSamples returns SegmentCount evenly spaced points on the segment
// from a to b, at t = j/count for j in [0, count). b itself is not
// included; it is the first sample of the next segment.
func SegmentSamples(a, b Point, density float64) []Point {
	n := SegmentCount(a.Dist(b), density)
	out := make([]Point, n)
	for j := range n {
		out[j] = a.Lerp(b, float64(j)/float64(n))
	}
	return out
}
