package card

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/luishram/tablero/internal/database"
	"github.com/luishram/tablero/internal/events"
	"github.com/luishram/tablero/internal/models"
)

// Field length limits
const (
	MaxTitleLength       = 255
	MaxDescriptionLength = 10000
)

// Service defines all card-related business operations
type Service interface {
	// Read operations
	GetCard(ctx context.Context, id int) (*models.Card, error)
	SearchCards(ctx context.Context, req SearchRequest) ([]*models.Card, error)
	ArchivedCards(ctx context.Context, boardID int) ([]*models.Card, error)

	// Write operations
	CreateCard(ctx context.Context, req CreateCardRequest) (*models.Card, error)
	UpdateCard(ctx context.Context, req UpdateCardRequest) (*models.Card, error)
	DeleteCard(ctx context.Context, id int) error

	// Card movement
	MoveCard(ctx context.Context, req MoveCardRequest) error

	// Archive lifecycle
	ArchiveCard(ctx context.Context, id int) error
	RestoreCard(ctx context.Context, id int) error
}

// CreateCardRequest encapsulates all data needed to create a card
type CreateCardRequest struct {
	ColumnID    int
	Title       string
	Description *string
	Color       *string
}

// UpdateCardRequest encapsulates a partial card update.
// Pointer fields are optional - nil means don't update; an empty
// string clears description or color back to unset.
type UpdateCardRequest struct {
	CardID      int
	Title       *string
	Description *string
	Color       *string
}

// MoveCardRequest targets a card at an index within a column
type MoveCardRequest struct {
	CardID   int
	ColumnID int
	Index    int
}

// SearchRequest filters the visible cards of a board
type SearchRequest struct {
	BoardID int
	Query   string
	Color   string
}

// service implements Service interface
type service struct {
	repo      database.DataStore
	publisher events.Publisher
}

// NewService creates a new card service
func NewService(repo database.DataStore, publisher events.Publisher) Service {
	return &service{
		repo:      repo,
		publisher: publisher,
	}
}

// GetCard retrieves a single card, archived or not
func (s *service) GetCard(ctx context.Context, id int) (*models.Card, error) {
	if id <= 0 {
		return nil, ErrInvalidCardID
	}
	c, err := s.repo.GetCardByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrCardNotFound
		}
		return nil, err
	}
	return c, nil
}

// SearchCards finds visible cards matching the query and color filter
func (s *service) SearchCards(ctx context.Context, req SearchRequest) ([]*models.Card, error) {
	if req.BoardID <= 0 {
		return nil, ErrInvalidBoardID
	}
	if req.Color != "" && !models.ValidCardColor(req.Color) {
		return nil, ErrInvalidColor
	}

	if _, err := s.repo.GetBoardByID(ctx, req.BoardID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrBoardNotFound
		}
		return nil, err
	}

	cards, err := s.repo.SearchCards(ctx, req.BoardID, strings.TrimSpace(req.Query), req.Color)
	if err != nil {
		return nil, err
	}
	if cards == nil {
		cards = []*models.Card{}
	}
	return cards, nil
}

// ArchivedCards lists a board's archived cards, newest first
func (s *service) ArchivedCards(ctx context.Context, boardID int) ([]*models.Card, error) {
	if boardID <= 0 {
		return nil, ErrInvalidBoardID
	}
	if _, err := s.repo.GetBoardByID(ctx, boardID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrBoardNotFound
		}
		return nil, err
	}

	cards, err := s.repo.GetArchivedCardsByBoard(ctx, boardID)
	if err != nil {
		return nil, err
	}
	if cards == nil {
		cards = []*models.Card{}
	}
	return cards, nil
}

// CreateCard handles card creation with validation
func (s *service) CreateCard(ctx context.Context, req CreateCardRequest) (*models.Card, error) {
	if req.ColumnID <= 0 {
		return nil, ErrInvalidColumnID
	}
	req.Title = strings.TrimSpace(req.Title)
	if err := validateTitle(req.Title); err != nil {
		return nil, err
	}
	if req.Description != nil && len(*req.Description) > MaxDescriptionLength {
		return nil, ErrDescriptionTooLong
	}
	description := normalizeOptional(req.Description)
	color, err := normalizeColor(req.Color)
	if err != nil {
		return nil, err
	}

	if _, err := s.repo.GetColumnByID(ctx, req.ColumnID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrColumnNotFound
		}
		return nil, err
	}

	c, err := s.repo.CreateCard(ctx, req.ColumnID, req.Title, description, color)
	if err != nil {
		return nil, err
	}

	s.publishChange(ctx, c.ID, events.ActionCreated)
	return c, nil
}

// UpdateCard applies a partial update and returns the updated card
func (s *service) UpdateCard(ctx context.Context, req UpdateCardRequest) (*models.Card, error) {
	if req.CardID <= 0 {
		return nil, ErrInvalidCardID
	}

	current, err := s.repo.GetCardByID(ctx, req.CardID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrCardNotFound
		}
		return nil, err
	}

	title := current.Title
	if req.Title != nil {
		title = strings.TrimSpace(*req.Title)
		if err := validateTitle(title); err != nil {
			return nil, err
		}
	}

	description := current.Description
	if req.Description != nil {
		if len(*req.Description) > MaxDescriptionLength {
			return nil, ErrDescriptionTooLong
		}
		description = normalizeOptional(req.Description)
	}

	color := current.Color
	if req.Color != nil {
		color, err = normalizeColor(req.Color)
		if err != nil {
			return nil, err
		}
	}

	if err := s.repo.UpdateCard(ctx, req.CardID, title, description, color); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrCardNotFound
		}
		return nil, err
	}

	s.publishChange(ctx, req.CardID, events.ActionUpdated)
	return s.repo.GetCardByID(ctx, req.CardID)
}

// MoveCard places a card at an index within a column, rebalancing
// sibling positions when the neighboring integer gap is exhausted
func (s *service) MoveCard(ctx context.Context, req MoveCardRequest) error {
	if req.CardID <= 0 {
		return ErrInvalidCardID
	}
	if req.ColumnID <= 0 {
		return ErrInvalidColumnID
	}
	if req.Index < 0 {
		return ErrInvalidIndex
	}

	current, err := s.repo.GetCardByID(ctx, req.CardID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrCardNotFound
		}
		return err
	}
	if current.Archived() {
		return ErrCardArchived
	}

	if _, err := s.repo.GetColumnByID(ctx, req.ColumnID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrColumnNotFound
		}
		return err
	}

	if err := s.repo.MoveCard(ctx, req.CardID, req.ColumnID, req.Index); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrCardNotFound
		}
		return err
	}

	s.publishChange(ctx, req.CardID, events.ActionMoved)
	return nil
}

// ArchiveCard soft-deletes a card
func (s *service) ArchiveCard(ctx context.Context, id int) error {
	if id <= 0 {
		return ErrInvalidCardID
	}

	current, err := s.repo.GetCardByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrCardNotFound
		}
		return err
	}
	if current.Archived() {
		return ErrAlreadyArchived
	}

	if err := s.repo.ArchiveCard(ctx, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrCardNotFound
		}
		return err
	}

	s.publishChange(ctx, id, events.ActionArchived)
	return nil
}

// RestoreCard brings an archived card back at the bottom of its column
func (s *service) RestoreCard(ctx context.Context, id int) error {
	if id <= 0 {
		return ErrInvalidCardID
	}

	current, err := s.repo.GetCardByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrCardNotFound
		}
		return err
	}
	if !current.Archived() {
		return ErrNotArchived
	}

	if err := s.repo.RestoreCard(ctx, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrCardNotFound
		}
		return err
	}

	s.publishChange(ctx, id, events.ActionRestored)
	return nil
}

// DeleteCard permanently removes a card. Only archived cards can be
// hard-deleted; everything else must go through the archive first.
func (s *service) DeleteCard(ctx context.Context, id int) error {
	if id <= 0 {
		return ErrInvalidCardID
	}

	current, err := s.repo.GetCardByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrCardNotFound
		}
		return err
	}
	if !current.Archived() {
		return ErrNotArchived
	}

	boardID, err := s.repo.GetBoardIDForCard(ctx, id)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return err
	}

	if err := s.repo.DeleteCard(ctx, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrCardNotFound
		}
		return err
	}

	events.Publish(s.publisher, events.Event{
		Type:     events.EventCardChanged,
		Action:   events.ActionDeleted,
		BoardID:  boardID,
		EntityID: id,
	})
	return nil
}

// publishChange emits a card event, resolving the board id first.
// Lookup failures are swallowed: notification is best-effort.
func (s *service) publishChange(ctx context.Context, cardID int, action events.Action) {
	boardID, err := s.repo.GetBoardIDForCard(ctx, cardID)
	if err != nil {
		return
	}
	events.Publish(s.publisher, events.Event{
		Type:     events.EventCardChanged,
		Action:   action,
		BoardID:  boardID,
		EntityID: cardID,
	})
}

func validateTitle(title string) error {
	if title == "" {
		return ErrEmptyTitle
	}
	if len(title) > MaxTitleLength {
		return ErrTitleTooLong
	}
	return nil
}

// normalizeOptional trims an optional field; an empty result becomes
// nil so the column stores NULL rather than an empty string.
func normalizeOptional(s *string) *string {
	if s == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*s)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}

// normalizeColor validates an optional color against the palette.
// An empty string clears the color.
func normalizeColor(color *string) (*string, error) {
	if color == nil {
		return nil, nil
	}
	c := strings.ToLower(strings.TrimSpace(*color))
	if c == "" {
		return nil, nil
	}
	if !models.ValidCardColor(c) {
		return nil, ErrInvalidColor
	}
	return &c, nil
}
