// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package main

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/hashicorp/go-hclog"
)

// newLogger creates the command's hclog logger.
func newLogger(name, level string, jsonFormat bool, output io.Writer) hclog.Logger {
	return hclog.New(&hclog.LoggerOptions{
		Name:       name,
		Level:      hclog.LevelFromString(level),
		JSONFormat: jsonFormat,
		Output:     output,
		TimeFormat: "2006-01-02T15:04:05Z",
		TimeFn: func() time.Time {
			return time.Now().UTC()
		},
	})
}

// newSlogLogger routes log/slog records from the library into l.
func newSlogLogger(l hclog.Logger) *slog.Logger {
	return slog.New(&hclogHandler{logger: l})
}

// hclogHandler is a slog.Handler writing to an hclog.Logger.
type hclogHandler struct {
	logger hclog.Logger
	attrs  []any
	group  string
}

func (h *hclogHandler) Enabled(_ context.Context, level slog.Level) bool {
	return toHclogLevel(level) >= h.logger.GetLevel()
}

func (h *hclogHandler) Handle(_ context.Context, r slog.Record) error {
	args := make([]any, 0, len(h.attrs)+2*r.NumAttrs())
	args = append(args, h.attrs...)
	r.Attrs(func(a slog.Attr) bool {
		args = append(args, h.key(a.Key), a.Value.Resolve().Any())
		return true
	})
	h.logger.Log(toHclogLevel(r.Level), r.Message, args...)
	return nil
}

func (h *hclogHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	next := &hclogHandler{logger: h.logger, group: h.group}
	next.attrs = append(append([]any{}, h.attrs...), flatten(h, attrs)...)
	return next
}

func (h *hclogHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	return &hclogHandler{logger: h.logger, attrs: h.attrs, group: h.key(name)}
}

func (h *hclogHandler) key(k string) string {
	if h.group == "" {
		return k
	}
	return h.group + "." + k
}

func flatten(h *hclogHandler, attrs []slog.Attr) []any {
	out := make([]any, 0, 2*len(attrs))
	for _, a := range attrs {
		out = append(out, h.key(a.Key), a.Value.Resolve().Any())
	}
	return out
}

func toHclogLevel(l slog.Level) hclog.Level {
	switch {
	case l < slog.LevelDebug:
		return hclog.Trace
	case l < slog.LevelInfo:
		return hclog.Debug
	case l < slog.LevelWarn:
		return hclog.Info
	case l < slog.LevelError:
		return hclog.Warn
	}
	return hclog.Error
}
