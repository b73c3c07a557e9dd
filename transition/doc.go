// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package transition implements the entry animation state machine.
//
// The animation runs through four ordered phases: NotStarted, Scale,
// Rotate and Wipe. [Store] holds the phase, its progress and three
// latches. The app state (Initial, Transitioning, Interactive) is never
// stored; [Project] derives it from a [State] on every read.
//
// [Timeline] drives a Store over time with fixed phase durations. Hosts
// that animate the phases themselves can call Store.UpdateProgress
// directly; the store does not enforce phase order.
package transition
