// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package transition

import "log/slog"

// Option configures a Store.
type Option func(*Store)

// WithConstrained sets the predicate that reports a constrained viewport,
// where the entry animation starts without a user gesture.
func WithConstrained(fn func() bool) Option {
	return func(s *Store) { s.constrained = fn }
}

// WithLogger sets the logger for phase changes.
func WithLogger(l *slog.Logger) Option {
	return func(s *Store) { s.logger = l }
}

// Store holds the transition state and notifies subscribers on change.
//
// Store is NOT safe for concurrent use.
type Store struct {
	state       State
	constrained func() bool
	logger      *slog.Logger

	subs   map[int]func(State)
	nextID int
}

// NewStore creates a store in the initial state.
func NewStore(opts ...Option) *Store {
	s := &Store{subs: make(map[int]func(State))}
	for _, opt := range opts {
		opt(s)
	}
	if s.logger == nil {
		s.logger = slog.New(slog.DiscardHandler)
	}
	if s.constrained == nil {
		s.constrained = func() bool { return false }
	}
	return s
}

// State returns the current state.
func (s *Store) State() State { return s.state }

// AppState returns the projection of the current state.
func (s *Store) AppState() AppState { return Project(s.state) }

// Snapshot returns the exported form of the current state.
func (s *Store) Snapshot() Snapshot { return NewSnapshot(s.state) }

// Subscribe registers fn for state changes and returns a function that
// removes it.
func (s *Store) Subscribe(fn func(State)) (cancel func()) {
	id := s.nextID
	s.nextID++
	s.subs[id] = fn
	return func() { delete(s.subs, id) }
}

// Start enters the Scale phase once. Later calls do nothing.
func (s *Store) Start() {
	if s.state.HasTriggeredTransition {
		return
	}
	s.state.HasTriggeredTransition = true
	s.state.Phase = Scale
	s.logger.Info("transition: started")
	s.publish()
}

// UpdateProgress sets the phase and its progress. Progress is clamped to
// [0, 1]; phase order is not enforced.
func (s *Store) UpdateProgress(phase Phase, progress float64) {
	progress = min(max(progress, 0), 1)
	if s.state.Phase == phase && s.state.Progress == progress {
		return
	}
	if s.state.Phase != phase {
		s.logger.Info("transition: phase", "phase", phase.String())
	}
	s.state.Phase = phase
	s.state.Progress = progress
	s.publish()
}

// CompleteFirstTransition sets the first-transition latch.
func (s *Store) CompleteFirstTransition() {
	if s.state.IsFirstTransitionComplete {
		return
	}
	s.state.IsFirstTransitionComplete = true
	s.publish()
}

// TriggerAutoTransitionIfNeeded starts the transition on a constrained
// viewport, at most once. It reports whether it did.
func (s *Store) TriggerAutoTransitionIfNeeded() bool {
	if !s.constrained() || s.state.AutoTransitionTriggered {
		return false
	}
	s.state.AutoTransitionTriggered = true
	s.state.HasTriggeredTransition = true
	s.state.Phase = Scale
	s.logger.Info("transition: auto-triggered")
	s.publish()
	return true
}

// Reset restores the initial state.
func (s *Store) Reset() {
	s.state = State{}
	s.publish()
}

func (s *Store) publish() {
	for _, fn := range s.subs {
		fn(s.state)
	}
}
