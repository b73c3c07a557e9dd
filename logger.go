// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package ggsketch

import (
	"context"
	"log/slog"
	"sync/atomic"
)

// nopHandler is a slog.Handler that silently discards all log records.
// Enabled returns false so callers skip message formatting entirely.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

func newNopLogger() *slog.Logger { return slog.New(nopHandler{}) }

// loggerPtr stores the package logger.
var loggerPtr atomic.Pointer[slog.Logger]

func init() {
	loggerPtr.Store(newNopLogger())
}

// SetLogger configures the default logger for sketches created afterwards.
// By default ggsketch produces no log output. Pass nil to restore the
// silent default.
//
// Each sketch hands its logger to the particle batch, magnet manager,
// transition store and environment observer when it is created, so a
// sketch keeps the logger it started with. Use [WithLogger] to choose a
// logger per sketch.
//
// Log levels used by ggsketch:
//   - [slog.LevelDebug]: per-frame diagnostics (render groups, culling, drags)
//   - [slog.LevelInfo]: lifecycle (environment changes, transition phases)
//   - [slog.LevelWarn]: particles rejected at the particle cap
//
// Example:
//
//	ggsketch.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
//	    Level: slog.LevelDebug,
//	})))
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = newNopLogger()
	}
	loggerPtr.Store(l)
}

// Logger returns the current package logger.
//
// Logger is safe for concurrent use.
func Logger() *slog.Logger {
	return loggerPtr.Load()
}
