// Filmgraph - Social Film Rating and Recommendation Backend
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/filmgraph

package models

// Review is a user's written opinion of a film.
//
// Useful is always the number of helpful reactions minus the number of
// unhelpful ones. It is maintained by the store on every reaction change and
// never taken from input.
type Review struct {
	ID         int64  `json:"reviewId" yaml:"id"`
	Content    string `json:"content" yaml:"content" validate:"required,notblank"`
	IsPositive *bool  `json:"isPositive" yaml:"is_positive" validate:"required"`
	UserID     int64  `json:"userId" yaml:"user_id" validate:"gt=0"`
	FilmID     int64  `json:"filmId" yaml:"film_id" validate:"gt=0"`
	Useful     int    `json:"useful" yaml:"-"`
}

// Positive reports the review polarity, treating an unset flag as negative.
func (r *Review) Positive() bool {
	return r.IsPositive != nil && *r.IsPositive
}

// ReactionOutcome is the result of changing a reaction.
type ReactionOutcome struct {
	// Useful is the recomputed usefulness of the review.
	Useful int `json:"useful"`

	// Previous is the reaction that existed before the change, nil if none.
	Previous *bool `json:"-"`
}
