// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package transition

import "time"

// Timings are the phase durations of the entry animation.
type Timings struct {
	Delay  time.Duration // before Scale progresses
	Scale  time.Duration
	Rotate time.Duration
	Wipe   time.Duration
}

// DefaultTimings returns a two second scale-and-rotate after a half second
// delay, followed by a 1.2 second wipe.
func DefaultTimings() Timings {
	return Timings{
		Delay:  500 * time.Millisecond,
		Scale:  time.Second,
		Rotate: time.Second,
		Wipe:   1200 * time.Millisecond,
	}
}

// Total returns the full animation length.
func (t Timings) Total() time.Duration {
	return t.Delay + t.Scale + t.Rotate + t.Wipe
}

// Timeline advances a Store through the phases. It idles until the store
// has been started, by Start or by an auto trigger.
//
// Timeline is NOT safe for concurrent use.
type Timeline struct {
	store   *Store
	timings Timings
	elapsed time.Duration

	// OnWipe, if set, receives the wipe progress on every step of the
	// Wipe phase.
	OnWipe func(progress float64)
}

// NewTimeline creates a timeline for store. The timeline rewinds whenever
// the store is reset.
func NewTimeline(store *Store, t Timings) *Timeline {
	tl := &Timeline{store: store, timings: t}
	store.Subscribe(func(st State) {
		if !st.HasTriggeredTransition {
			tl.elapsed = 0
		}
	})
	return tl
}

// Done reports whether the animation has finished.
func (tl *Timeline) Done() bool {
	return tl.store.AppState() == Interactive
}

// Elapsed returns the time spent since the store was started.
func (tl *Timeline) Elapsed() time.Duration { return tl.elapsed }

// Advance moves the animation forward by dt.
func (tl *Timeline) Advance(dt time.Duration) {
	st := tl.store.State()
	if !st.HasTriggeredTransition {
		tl.elapsed = 0
		return
	}
	if tl.Done() {
		return
	}
	tl.elapsed += dt
	phase, progress := tl.at(tl.elapsed)
	if phase >= Wipe {
		tl.store.CompleteFirstTransition()
	}
	tl.store.UpdateProgress(phase, progress)
	if phase == Wipe && tl.OnWipe != nil {
		tl.OnWipe(progress)
	}
}

// at maps elapsed time to a phase and its progress.
func (tl *Timeline) at(e time.Duration) (Phase, float64) {
	t := tl.timings
	if e < t.Delay {
		return Scale, 0
	}
	e -= t.Delay
	if e < t.Scale {
		return Scale, fraction(e, t.Scale)
	}
	e -= t.Scale
	if e < t.Rotate {
		return Rotate, fraction(e, t.Rotate)
	}
	e -= t.Rotate
	return Wipe, fraction(e, t.Wipe)
}

func fraction(e, d time.Duration) float64 {
	if d <= 0 {
		return 1
	}
	return min(float64(e)/float64(d), 1)
}
