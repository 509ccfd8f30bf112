// Filmgraph - Social Film Rating and Recommendation Backend
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/filmgraph

package api

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/goccy/go-json"

	"github.com/tomtom215/filmgraph/internal/store"
	"github.com/tomtom215/filmgraph/internal/validation"
)

func TestRespondErrMapping(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		err      error
		wantCode int
		wantErr  string
	}{
		{"validation", validation.NewError("count", "gt", 0, "count must be greater than 0"), http.StatusBadRequest, "VALIDATION_ERROR"},
		{"wrapped validation", fmt.Errorf("popular: %w", validation.NewError("count", "gt", 0, "bad")), http.StatusBadRequest, "VALIDATION_ERROR"},
		{"not found", store.NotFoundf("film %d", 3), http.StatusNotFound, ErrCodeNotFound},
		{"conflict", fmt.Errorf("like: %w", store.Conflictf("duplicate")), http.StatusConflict, ErrCodeConflict},
		{"unexpected", errors.New("driver: bad connection"), http.StatusInternalServerError, ErrCodeInternalError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			rec := httptest.NewRecorder()
			respondErr(rec, httptest.NewRequest(http.MethodGet, "/", nil), tt.err)

			if rec.Code != tt.wantCode {
				t.Errorf("status = %d, want %d", rec.Code, tt.wantCode)
			}
			var resp APIResponse
			if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
				t.Fatalf("decode: %v", err)
			}
			if resp.Status != "error" || resp.Error == nil || resp.Error.Code != tt.wantErr {
				t.Errorf("unexpected envelope %+v", resp)
			}
		})
	}
}

func TestInternalErrorHidesDetails(t *testing.T) {
	t.Parallel()
	rec := httptest.NewRecorder()
	respondErr(rec, httptest.NewRequest(http.MethodGet, "/", nil), errors.New("password=hunter2"))

	var resp APIResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Error.Message != "internal server error" {
		t.Errorf("leaked error text: %q", resp.Error.Message)
	}
}

func TestParseCommaSeparated(t *testing.T) {
	t.Parallel()
	got := parseCommaSeparated(" Title, ,director ")
	if len(got) != 2 || got[0] != "title" || got[1] != "director" {
		t.Errorf("parseCommaSeparated = %v", got)
	}
	if parseCommaSeparated("") != nil {
		t.Error("expected nil for empty input")
	}
}

func TestClampLimit(t *testing.T) {
	t.Parallel()
	if got := clampLimit(500, 100); got != 100 {
		t.Errorf("clampLimit(500, 100) = %d", got)
	}
	if got := clampLimit(5, 0); got != 5 {
		t.Errorf("clampLimit(5, 0) = %d", got)
	}
}
