// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package transition

import (
	"testing"
	"time"
)

func TestTimelineWaitsForStart(t *testing.T) {
	s := NewStore()
	tl := NewTimeline(s, DefaultTimings())
	tl.Advance(time.Second)
	if s.State().Phase != NotStarted || tl.Elapsed() != 0 {
		t.Errorf("timeline advanced before Start: %+v", s.State())
	}
}

func TestTimelineRewindsOnReset(t *testing.T) {
	s := NewStore()
	tl := NewTimeline(s, DefaultTimings())
	s.Start()
	tl.Advance(DefaultTimings().Total())
	if !tl.Done() {
		t.Fatalf("AppState() = %v after Total, want INTERACTIVE", s.AppState())
	}

	var wipes []float64
	tl.OnWipe = func(p float64) { wipes = append(wipes, p) }
	s.Reset()
	s.Start()
	tl.Advance(16 * time.Millisecond)

	if got := s.State(); got.Phase != Scale || got.Progress != 0 {
		t.Errorf("State() after restart = %+v, want Scale at 0", got)
	}
	if s.AppState() != Transitioning {
		t.Errorf("AppState() = %v, want TRANSITIONING", s.AppState())
	}
	if tl.Elapsed() != 16*time.Millisecond {
		t.Errorf("Elapsed() = %v, want 16ms", tl.Elapsed())
	}
	if len(wipes) != 0 {
		t.Errorf("wipe callbacks after restart = %v, want none", wipes)
	}
}

func TestTimelinePhases(t *testing.T) {
	s := NewStore()
	tl := NewTimeline(s, DefaultTimings())
	var wipes []float64
	tl.OnWipe = func(p float64) { wipes = append(wipes, p) }
	s.Start()

	steps := []struct {
		dt       time.Duration
		phase    Phase
		progress float64
		first    bool
	}{
		{250 * time.Millisecond, Scale, 0, false},
		{750 * time.Millisecond, Scale, 0.5, false},
		{time.Second, Rotate, 0.5, false},
		{1100 * time.Millisecond, Wipe, 0.5, true},
		{600 * time.Millisecond, Wipe, 1, true},
	}
	for i, st := range steps {
		tl.Advance(st.dt)
		got := s.State()
		if got.Phase != st.phase || got.Progress != st.progress || got.IsFirstTransitionComplete != st.first {
			t.Fatalf("step %d: State() = %+v, want phase %v progress %v first %v", i, got, st.phase, st.progress, st.first)
		}
	}
	if !tl.Done() || s.AppState() != Interactive {
		t.Errorf("AppState() = %v, want INTERACTIVE", s.AppState())
	}
	if len(wipes) != 2 || wipes[1] != 1 {
		t.Errorf("wipe callbacks = %v", wipes)
	}
}
