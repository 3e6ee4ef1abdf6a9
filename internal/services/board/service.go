package board

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/luishram/tablero/internal/database"
	"github.com/luishram/tablero/internal/events"
	"github.com/luishram/tablero/internal/models"
)

// MaxNameLength is the longest permitted board name
const MaxNameLength = 100

// Service defines all board-related business operations
type Service interface {
	// Read operations
	ListBoards(ctx context.Context) ([]*models.BoardSummary, error)
	GetBoard(ctx context.Context, id int) (*models.BoardDetail, error)

	// Write operations
	CreateBoard(ctx context.Context, name string) (*models.Board, error)
	RenameBoard(ctx context.Context, id int, name string) error
	DeleteBoard(ctx context.Context, id int) error
}

// service implements Service interface
type service struct {
	repo      database.DataStore
	publisher events.Publisher
}

// NewService creates a new board service
func NewService(repo database.DataStore, publisher events.Publisher) Service {
	return &service{
		repo:      repo,
		publisher: publisher,
	}
}

// ListBoards returns summaries for every board
func (s *service) ListBoards(ctx context.Context) ([]*models.BoardSummary, error) {
	return s.repo.GetAllBoards(ctx)
}

// GetBoard assembles the full board view: columns in position order,
// each carrying its visible cards in position order.
func (s *service) GetBoard(ctx context.Context, id int) (*models.BoardDetail, error) {
	if id <= 0 {
		return nil, ErrInvalidBoardID
	}

	b, err := s.repo.GetBoardByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrBoardNotFound
		}
		return nil, err
	}

	columns, err := s.repo.GetColumnsByBoard(ctx, id)
	if err != nil {
		return nil, err
	}

	cardsByColumn, err := s.repo.GetVisibleCardsByBoard(ctx, id)
	if err != nil {
		return nil, err
	}

	detail := &models.BoardDetail{
		Board:   *b,
		Columns: make([]*models.ColumnWithCards, 0, len(columns)),
	}
	for _, col := range columns {
		cards := cardsByColumn[col.ID]
		if cards == nil {
			cards = []*models.Card{}
		}
		detail.Columns = append(detail.Columns, &models.ColumnWithCards{
			Column: *col,
			Cards:  cards,
		})
	}

	return detail, nil
}

// CreateBoard creates a board after validating its name
func (s *service) CreateBoard(ctx context.Context, name string) (*models.Board, error) {
	name = strings.TrimSpace(name)
	if err := validateName(name); err != nil {
		return nil, err
	}

	b, err := s.repo.CreateBoard(ctx, name)
	if err != nil {
		return nil, err
	}

	events.Publish(s.publisher, events.Event{
		Type:     events.EventBoardChanged,
		Action:   events.ActionCreated,
		BoardID:  b.ID,
		EntityID: b.ID,
	})
	return b, nil
}

// RenameBoard updates a board's name
func (s *service) RenameBoard(ctx context.Context, id int, name string) error {
	if id <= 0 {
		return ErrInvalidBoardID
	}
	name = strings.TrimSpace(name)
	if err := validateName(name); err != nil {
		return err
	}

	if err := s.repo.RenameBoard(ctx, id, name); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrBoardNotFound
		}
		return err
	}

	events.Publish(s.publisher, events.Event{
		Type:     events.EventBoardChanged,
		Action:   events.ActionUpdated,
		BoardID:  id,
		EntityID: id,
	})
	return nil
}

// DeleteBoard removes a board and everything on it
func (s *service) DeleteBoard(ctx context.Context, id int) error {
	if id <= 0 {
		return ErrInvalidBoardID
	}

	if err := s.repo.DeleteBoard(ctx, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrBoardNotFound
		}
		return err
	}

	events.Publish(s.publisher, events.Event{
		Type:     events.EventBoardChanged,
		Action:   events.ActionDeleted,
		BoardID:  id,
		EntityID: id,
	})
	return nil
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
