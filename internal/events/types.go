// Package events implements the in-process change notification hub
// that feeds the live-update stream.
package events

import "time"

// EventType indicates which entity changed
type EventType string

const (
	EventBoardChanged  EventType = "board_changed"
	EventColumnChanged EventType = "column_changed"
	EventCardChanged   EventType = "card_changed"
)

// Action describes what happened to the entity
type Action string

const (
	ActionCreated  Action = "created"
	ActionUpdated  Action = "updated"
	ActionDeleted  Action = "deleted"
	ActionMoved    Action = "moved"
	ActionArchived Action = "archived"
	ActionRestored Action = "restored"
)

// Event represents a change notification pushed to stream subscribers
type Event struct {
	Type       EventType `json:"type"`
	Action     Action    `json:"action"`
	BoardID    int       `json:"board_id"`           // For filtering - which board was modified
	EntityID   int       `json:"entity_id"`          // ID of the changed board/column/card
	Timestamp  time.Time `json:"timestamp"`          // When the event occurred
	SequenceID int64     `json:"sequence_id"`        // Monotonically increasing, for ordering
}
