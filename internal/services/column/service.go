package column

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/luishram/tablero/internal/database"
	"github.com/luishram/tablero/internal/events"
	"github.com/luishram/tablero/internal/models"
)

// MaxNameLength is the longest permitted column name
const MaxNameLength = 50

// Service defines all column-related business operations
type Service interface {
	// Read operations
	GetColumnsByBoard(ctx context.Context, boardID int) ([]*models.Column, error)
	GetColumnByID(ctx context.Context, id int) (*models.Column, error)

	// Write operations
	CreateColumn(ctx context.Context, req CreateColumnRequest) (*models.Column, error)
	RenameColumn(ctx context.Context, id int, name string) error
	ReorderColumn(ctx context.Context, id, index int) error
	DeleteColumn(ctx context.Context, id int) error
}

// CreateColumnRequest encapsulates data for creating a column
type CreateColumnRequest struct {
	BoardID int
	Name    string
}

// service implements Service interface
type service struct {
	repo      database.DataStore
	publisher events.Publisher
}

// NewService creates a new column service
func NewService(repo database.DataStore, publisher events.Publisher) Service {
	return &service{
		repo:      repo,
		publisher: publisher,
	}
}

// GetColumnsByBoard retrieves all columns for a board in position order
func (s *service) GetColumnsByBoard(ctx context.Context, boardID int) ([]*models.Column, error) {
	if boardID <= 0 {
		return nil, ErrInvalidBoardID
	}
	return s.repo.GetColumnsByBoard(ctx, boardID)
}

// GetColumnByID retrieves a specific column
func (s *service) GetColumnByID(ctx context.Context, id int) (*models.Column, error) {
	if id <= 0 {
		return nil, ErrInvalidColumnID
	}
	col, err := s.repo.GetColumnByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrColumnNotFound
		}
		return nil, err
	}
	return col, nil
}

// CreateColumn appends a new column to the board after validation
func (s *service) CreateColumn(ctx context.Context, req CreateColumnRequest) (*models.Column, error) {
	if req.BoardID <= 0 {
		return nil, ErrInvalidBoardID
	}
	req.Name = strings.TrimSpace(req.Name)
	if err := validateName(req.Name); err != nil {
		return nil, err
	}

	// Check the board up front so an unknown id surfaces as not-found
	// instead of a foreign key failure
	if _, err := s.repo.GetBoardByID(ctx, req.BoardID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrBoardNotFound
		}
		return nil, err
	}

	col, err := s.repo.CreateColumn(ctx, req.BoardID, req.Name)
	if err != nil {
		return nil, err
	}

	events.Publish(s.publisher, events.Event{
		Type:     events.EventColumnChanged,
		Action:   events.ActionCreated,
		BoardID:  col.BoardID,
		EntityID: col.ID,
	})
	return col, nil
}

// RenameColumn updates a column's name
func (s *service) RenameColumn(ctx context.Context, id int, name string) error {
	if id <= 0 {
		return ErrInvalidColumnID
	}
	name = strings.TrimSpace(name)
	if err := validateName(name); err != nil {
		return err
	}

	if err := s.repo.RenameColumn(ctx, id, name); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrColumnNotFound
		}
		return err
	}

	s.publishChange(ctx, id, events.ActionUpdated)
	return nil
}

// ReorderColumn moves a column to the given index among its siblings
func (s *service) ReorderColumn(ctx context.Context, id, index int) error {
	if id <= 0 {
		return ErrInvalidColumnID
	}
	if index < 0 {
		return ErrInvalidIndex
	}

	if err := s.repo.ReorderColumn(ctx, id, index); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrColumnNotFound
		}
		return err
	}

	s.publishChange(ctx, id, events.ActionMoved)
	return nil
}

// DeleteColumn removes a column and all its cards
func (s *service) DeleteColumn(ctx context.Context, id int) error {
	if id <= 0 {
		return ErrInvalidColumnID
	}

	// Resolve the board before the row disappears
	boardID, err := s.repo.GetBoardIDForColumn(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrColumnNotFound
		}
		return err
	}

	if err := s.repo.DeleteColumn(ctx, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrColumnNotFound
		}
		return err
	}

	events.Publish(s.publisher, events.Event{
		Type:     events.EventColumnChanged,
		Action:   events.ActionDeleted,
		BoardID:  boardID,
		EntityID: id,
	})
	return nil
}

// publishChange emits a column event, resolving the board id first.
// Lookup failures are swallowed: notification is best-effort.
func (s *service) publishChange(ctx context.Context, columnID int, action events.Action) {
	boardID, err := s.repo.GetBoardIDForColumn(ctx, columnID)
	if err != nil {
		return
	}
	events.Publish(s.publisher, events.Event{
		Type:     events.EventColumnChanged,
		Action:   action,
		BoardID:  boardID,
		EntityID: columnID,
	})
}

func validateName(name string) error {
	if name == "" {
		return ErrEmptyName
	}
	if len(name) > MaxNameLength {
		return ErrNameTooLong
	}
	return nil
}
