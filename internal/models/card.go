package models

import "time"

// Card represents a single card on the kanban board
// Description and Color are optional; ArchivedAt is non-nil for
// soft-deleted cards, which are hidden from board and search views
type Card struct {
	ID          int        `json:"id"`
	ColumnID    int        `json:"column_id"`
	Title       string     `json:"title"`
	Description *string    `json:"description,omitempty"`
	Color       *string    `json:"color,omitempty"`
	Position    int        `json:"position"`
	ArchivedAt  *time.Time `json:"archived_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// Archived reports whether the card has been soft-deleted
func (c *Card) Archived() bool {
	return c.ArchivedAt != nil
}
