// Filmgraph - Social Film Rating and Recommendation Backend
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/filmgraph

package models

// EventCategory identifies the kind of entity an event is about.
type EventCategory string

// EventOperation identifies what happened to the entity.
type EventOperation string

// Event categories.
const (
	EventLike     EventCategory = "LIKE"
	EventReview   EventCategory = "REVIEW"
	EventFriend   EventCategory = "FRIEND"
	EventReaction EventCategory = "REACTION"
)

// Event operations.
const (
	OperationAdd    EventOperation = "ADD"
	OperationUpdate EventOperation = "UPDATE"
	OperationRemove EventOperation = "REMOVE"
)

// Valid reports whether c is a known category.
func (c EventCategory) Valid() bool {
	switch c {
	case EventLike, EventReview, EventFriend, EventReaction:
		return true
	}
	return false
}

// Valid reports whether o is a known operation.
func (o EventOperation) Valid() bool {
	switch o {
	case OperationAdd, OperationUpdate, OperationRemove:
		return true
	}
	return false
}

// Event is an immutable activity log entry. Timestamp is in epoch milliseconds.
type Event struct {
	ID        int64          `json:"eventId"`
	Timestamp int64          `json:"timestamp"`
	UserID    int64          `json:"userId"`
	Category  EventCategory  `json:"eventType"`
	Operation EventOperation `json:"operation"`
	EntityID  int64          `json:"entityId"`
}
