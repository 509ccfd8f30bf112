// Filmgraph - Social Film Rating and Recommendation Backend
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/filmgraph

package store

import (
	"errors"
	"fmt"
)

// Error kinds reported by every backend. Validation errors come from
// internal/validation; everything else is an unexpected failure.
var (
	// ErrNotFound means a referenced user, film, review, director, genre or
	// MPA rating does not exist.
	ErrNotFound = errors.New("not found")

	// ErrConflict means a uniqueness or referential constraint rejected
	// the write, for example a duplicate like.
	ErrConflict = errors.New("integrity conflict")
)

// NotFoundf returns an error wrapping ErrNotFound.
func NotFoundf(format string, args ...interface{}) error {
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), ErrNotFound)
}

// Conflictf returns an error wrapping ErrConflict.
func Conflictf(format string, args ...interface{}) error {
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), ErrConflict)
}

// IsNotFound reports whether err is a not-found error.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsConflict reports whether err is an integrity conflict.
func IsConflict(err error) bool {
	return errors.Is(err, ErrConflict)
}
