// Filmgraph - Social Film Rating and Recommendation Backend
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/filmgraph

package models

import "strings"

// User is a registered account.
type User struct {
	ID       int64  `json:"id" yaml:"id"`
	Email    string `json:"email" yaml:"email" validate:"required,email"`
	Login    string `json:"login" yaml:"login" validate:"required,nowhitespace"`
	Name     string `json:"name" yaml:"name"`
	Birthday Date   `json:"birthday" yaml:"birthday" validate:"notfuture"`
}

// Normalize applies the display-name default: a blank name becomes the login.
func (u *User) Normalize() {
	if strings.TrimSpace(u.Name) == "" {
		u.Name = u.Login
	}
}
