// Filmgraph - Social Film Rating and Recommendation Backend
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/filmgraph

package logging

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
)

func newBufferedHandler(buf *bytes.Buffer) *SlogHandler {
	return &SlogHandler{logger: zerolog.New(buf)}
}

func TestSlogHandler_Enabled(t *testing.T) {
	h := &SlogHandler{logger: zerolog.New(nil).Level(zerolog.WarnLevel)}

	if h.Enabled(context.Background(), slog.LevelInfo) {
		t.Error("info must be disabled at warn level")
	}
	if !h.Enabled(context.Background(), slog.LevelError) {
		t.Error("error must be enabled at warn level")
	}
}

func TestSlogHandler_Handle(t *testing.T) {
	tests := []struct {
		name  string
		level slog.Level
		want  string
	}{
		{"debug", slog.LevelDebug, `"level":"debug"`},
		{"info", slog.LevelInfo, `"level":"info"`},
		{"warn", slog.LevelWarn, `"level":"warn"`},
		{"error", slog.LevelError, `"level":"error"`},
	}

	captureGlobal(t)

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			logger := slog.New(newBufferedHandler(&buf))
			logger.Log(context.Background(), tt.level, "service restarted", "service", "http")

			out := buf.String()
			if !strings.Contains(out, tt.want) {
				t.Errorf("missing %s in %s", tt.want, out)
			}
			if !strings.Contains(out, `"service":"http"`) || !strings.Contains(out, "service restarted") {
				t.Errorf("record content missing: %s", out)
			}
		})
	}
}

func TestSlogHandler_AttrsAndGroups(t *testing.T) {
	var buf bytes.Buffer
	slog.New(newBufferedHandler(&buf)).With("supervisor", "filmgraph").Info("started")
	if !strings.Contains(buf.String(), `"supervisor":"filmgraph"`) {
		t.Errorf("pre-configured attribute missing: %s", buf.String())
	}

	buf.Reset()
	slog.New(newBufferedHandler(&buf)).WithGroup("event").Info("backoff",
		"failures", 3,
		"restarting", true,
		"wait", 2*time.Second,
		slog.Group("service", "name", "api"))

	out := buf.String()
	for _, want := range []string{
		`"event.failures":3`,
		`"event.restarting":true`,
		`"event.service.name":"api"`,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("missing %s in %s", want, out)
		}
	}
}

func TestSlogHandler_EmptyGroupIsIdentity(t *testing.T) {
	h := NewSlogHandler()
	if h.WithGroup("") != h {
		t.Error("WithGroup(\"\") must return the same handler")
	}
}

func TestSlogToZerologLevel(t *testing.T) {
	tests := []struct {
		in   slog.Level
		want zerolog.Level
	}{
		{slog.LevelDebug - 4, zerolog.TraceLevel},
		{slog.LevelDebug, zerolog.DebugLevel},
		{slog.LevelInfo, zerolog.InfoLevel},
		{slog.LevelWarn, zerolog.WarnLevel},
		{slog.LevelError, zerolog.ErrorLevel},
		{slog.LevelError + 4, zerolog.ErrorLevel},
	}
	for _, tt := range tests {
		if got := slogToZerologLevel(tt.in); got != tt.want {
			t.Errorf("slogToZerologLevel(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestNewSlogLogger(t *testing.T) {
	buf := captureGlobal(t)

	NewSlogLogger().Info("through slog", "k", "v")

	if !strings.Contains(buf.String(), `"k":"v"`) {
		t.Errorf("slog logger did not reach zerolog: %s", buf.String())
	}
}
