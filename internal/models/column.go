package models

import "time"

// Column represents a kanban board column (e.g., "Todo", "In Progress", "Done")
// Siblings are ordered by their Position value, ascending
type Column struct {
	ID        int       `json:"id"`
	BoardID   int       `json:"board_id"`
	Name      string    `json:"name"`
	Position  int       `json:"position"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ColumnWithCards is a DTO pairing a column with its visible cards
type ColumnWithCards struct {
	Column
	Cards []*Card `json:"cards"`
}
