// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package transition

// Phase is an entry animation stage.
type Phase int

// Phases in order.
const (
	NotStarted Phase = iota
	Scale
	Rotate
	Wipe
)

var phaseNames = [...]string{"NOT_STARTED", "SCALE", "ROTATE", "WIPE"}

// String returns the phase name.
func (p Phase) String() string {
	if p < 0 || int(p) >= len(phaseNames) {
		return "UNKNOWN"
	}
	return phaseNames[p]
}

// AppState is the interaction state derived from a State.
type AppState int

// App states.
const (
	Initial AppState = iota
	Transitioning
	Interactive
)

// String returns the app state name.
func (a AppState) String() string {
	switch a {
	case Initial:
		return "INITIAL"
	case Transitioning:
		return "TRANSITIONING"
	case Interactive:
		return "INTERACTIVE"
	}
	return "UNKNOWN"
}

// State is the raw transition state.
type State struct {
	Phase                     Phase
	Progress                  float64
	HasTriggeredTransition    bool
	AutoTransitionTriggered   bool
	IsFirstTransitionComplete bool
}

// Project derives the app state from s.
func Project(s State) AppState {
	if !s.HasTriggeredTransition {
		return Initial
	}
	if s.Phase == Wipe && s.Progress >= 1 {
		return Interactive
	}
	return Transitioning
}

// Snapshot is State together with its projection, shaped for export.
type Snapshot struct {
	CurrentState              string  `json:"currentState"`
	TransitionPhase           int     `json:"transitionPhase"`
	TransitionProgress        float64 `json:"transitionProgress"`
	IsFirstTransitionComplete bool    `json:"isFirstTransitionComplete"`
	AutoTransitionTriggered   bool    `json:"autoTransitionTriggered"`
	HasTriggeredTransition    bool    `json:"hasTriggeredTransition"`
}

// NewSnapshot builds a Snapshot of s.
func NewSnapshot(s State) Snapshot {
	return Snapshot{
		CurrentState:              Project(s).String(),
		TransitionPhase:           int(s.Phase),
		TransitionProgress:        s.Progress,
		IsFirstTransitionComplete: s.IsFirstTransitionComplete,
		AutoTransitionTriggered:   s.AutoTransitionTriggered,
		HasTriggeredTransition:    s.HasTriggeredTransition,
	}
}
