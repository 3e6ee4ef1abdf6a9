package card

import "errors"

// Card-related errors
var (
	// Validation errors
	ErrEmptyTitle         = errors.New("card title cannot be empty")
	ErrTitleTooLong       = errors.New("card title cannot exceed 255 characters")
	ErrDescriptionTooLong = errors.New("card description cannot exceed 10000 characters")
	ErrInvalidCardID      = errors.New("invalid card ID")
	ErrInvalidColumnID    = errors.New("invalid column ID")
	ErrInvalidBoardID     = errors.New("invalid board ID")
	ErrInvalidColor       = errors.New("invalid card color")
	ErrInvalidIndex       = errors.New("invalid position index")

	// Business logic errors
	ErrCardNotFound   = errors.New("card not found")
	ErrColumnNotFound = errors.New("column not found")
	ErrBoardNotFound  = errors.New("board not found")

	// Archive lifecycle errors
	ErrNotArchived     = errors.New("card must be archived before permanent deletion")
	ErrAlreadyArchived = errors.New("card is already archived")
	ErrCardArchived    = errors.New("card is archived")
)
