// Filmgraph - Social Film Rating and Recommendation Backend
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/filmgraph

package validation

import (
	"strings"
	"time"
	"unicode"

	"github.com/go-playground/validator/v10"
)

// EarliestReleaseDate is the first public film screening. No film may be
// released before it.
var EarliestReleaseDate = time.Date(1895, time.December, 28, 0, 0, 0, 0, time.UTC)

// now is the clock used by notfuture.
var now = time.Now

func registerDomainValidators(v *validator.Validate) {
	// Registration only fails on empty tags or nil functions.
	_ = v.RegisterValidation("notblank", validateNotBlank)
	_ = v.RegisterValidation("nowhitespace", validateNoWhitespace)
	_ = v.RegisterValidation("notfuture", validateNotFuture)
	_ = v.RegisterValidation("releasedate", validateReleaseDate)
}

func validateNotBlank(fl validator.FieldLevel) bool {
	return strings.TrimSpace(fl.Field().String()) != ""
}

func validateNoWhitespace(fl validator.FieldLevel) bool {
	return strings.IndexFunc(fl.Field().String(), unicode.IsSpace) < 0
}

// validateNotFuture accepts zero times so the field stays optional.
func validateNotFuture(fl validator.FieldLevel) bool {
	t, ok := fl.Field().Interface().(time.Time)
	if !ok {
		return false
	}
	return t.IsZero() || !t.After(now())
}

func validateReleaseDate(fl validator.FieldLevel) bool {
	t, ok := fl.Field().Interface().(time.Time)
	if !ok || t.IsZero() {
		return false
	}
	return !t.Before(EarliestReleaseDate)
}
