package models

import "time"

// Board represents a container for kanban columns and cards
// Boards are the top-level organizational unit in Tablero
type Board struct {
	ID        int       `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// BoardSummary is a DTO for the board listing view
// Carries aggregate counts so the list view needs a single query
type BoardSummary struct {
	ID          int       `json:"id"`
	Name        string    `json:"name"`
	ColumnCount int       `json:"column_count"`
	CardCount   int       `json:"card_count"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// BoardDetail is a DTO for the full board view: columns in order,
// each with its visible (non-archived) cards in order
type BoardDetail struct {
	Board
	Columns []*ColumnWithCards `json:"columns"`
}
