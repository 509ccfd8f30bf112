// Filmgraph - Social Film Rating and Recommendation Backend
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/filmgraph

package logging

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

// captureGlobal points the global logger at a buffer for one test.
func captureGlobal(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	previous := Logger()
	previousLevel := zerolog.GlobalLevel()
	SetLogger(NewTestLogger(&buf))
	zerolog.SetGlobalLevel(zerolog.TraceLevel)
	t.Cleanup(func() {
		SetLogger(previous)
		zerolog.SetGlobalLevel(previousLevel)
	})
	return &buf
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.Level != "info" || cfg.Format != "json" || cfg.Caller {
		t.Errorf("unexpected defaults: %+v", cfg)
	}
	if cfg.Output == nil {
		t.Error("default output must not be nil")
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want zerolog.Level
	}{
		{"trace", zerolog.TraceLevel},
		{"DEBUG", zerolog.DebugLevel},
		{"info", zerolog.InfoLevel},
		{"warning", zerolog.WarnLevel},
		{"error", zerolog.ErrorLevel},
		{"disabled", zerolog.Disabled},
		{"nonsense", zerolog.InfoLevel},
	}
	for _, tt := range tests {
		if got := parseLevel(tt.in); got != tt.want {
			t.Errorf("parseLevel(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestInit_JSONAndConsole(t *testing.T) {
	previous := Logger()
	previousLevel := zerolog.GlobalLevel()
	t.Cleanup(func() {
		SetLogger(previous)
		zerolog.SetGlobalLevel(previousLevel)
	})

	var jsonBuf bytes.Buffer
	Init(Config{Level: "debug", Format: "json", Output: &jsonBuf})
	Debug().Str("driver", "duckdb").Msg("opened")
	if !strings.Contains(jsonBuf.String(), `"driver":"duckdb"`) {
		t.Errorf("json output missing field: %s", jsonBuf.String())
	}

	var consoleBuf bytes.Buffer
	Init(Config{Level: "info", Format: "console", Output: &consoleBuf})
	Debug().Msg("hidden")
	Info().Msg("visible")
	out := consoleBuf.String()
	if strings.Contains(out, "hidden") || !strings.Contains(out, "visible") {
		t.Errorf("console output wrong: %q", out)
	}
	if strings.HasPrefix(strings.TrimSpace(out), "{") {
		t.Errorf("console format produced JSON: %q", out)
	}
}

func TestLevelsAndErr(t *testing.T) {
	buf := captureGlobal(t)

	Info().Msg("info line")
	Warn().Msg("warn line")
	Error().Msg("error line")
	Err(errors.New("boom")).Msg("err line")

	out := buf.String()
	for _, want := range []string{`"level":"info"`, `"level":"warn"`, `"level":"error"`, `"error":"boom"`} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %s:\n%s", want, out)
		}
	}
}
