package column

import "errors"

// Column-related errors
var (
	// Validation errors
	ErrEmptyName       = errors.New("column name cannot be empty")
	ErrNameTooLong     = errors.New("column name cannot exceed 50 characters")
	ErrInvalidColumnID = errors.New("invalid column ID")
	ErrInvalidBoardID  = errors.New("invalid board ID")
	ErrInvalidIndex    = errors.New("invalid position index")

	// Business logic errors
	ErrColumnNotFound = errors.New("column not found")
	ErrBoardNotFound  = errors.New("board not found")
)
