package database

import (
	"context"
	"database/sql"

	"github.com/luishram/tablero/internal/models"
)

// Repository provides a unified interface to all data operations.
// It composes domain-specific repositories using struct embedding.
type Repository struct {
	*BoardRepo
	*ColumnRepo
	*CardRepo
}

// NewRepository creates a new Repository instance wrapping the given database connection.
func NewRepository(db *sql.DB) *Repository {
	return &Repository{
		BoardRepo:  &BoardRepo{db: db},
		ColumnRepo: &ColumnRepo{db: db},
		CardRepo:   &CardRepo{db: db},
	}
}

// Wrapper methods for BoardRepo to satisfy the BoardRepository interface
func (r *Repository) CreateBoard(ctx context.Context, name string) (*models.Board, error) {
	return r.BoardRepo.Create(ctx, name)
}

func (r *Repository) GetAllBoards(ctx context.Context) ([]*models.BoardSummary, error) {
	return r.BoardRepo.GetAll(ctx)
}

func (r *Repository) GetBoardByID(ctx context.Context, id int) (*models.Board, error) {
	return r.BoardRepo.GetByID(ctx, id)
}

func (r *Repository) RenameBoard(ctx context.Context, id int, name string) error {
	return r.BoardRepo.Rename(ctx, id, name)
}

func (r *Repository) DeleteBoard(ctx context.Context, id int) error {
	return r.BoardRepo.Delete(ctx, id)
}

// Wrapper methods for ColumnRepo to satisfy the ColumnRepository interface
func (r *Repository) CreateColumn(ctx context.Context, boardID int, name string) (*models.Column, error) {
	return r.ColumnRepo.Create(ctx, boardID, name)
}

func (r *Repository) GetColumnsByBoard(ctx context.Context, boardID int) ([]*models.Column, error) {
	return r.ColumnRepo.GetByBoard(ctx, boardID)
}

func (r *Repository) GetColumnByID(ctx context.Context, id int) (*models.Column, error) {
	return r.ColumnRepo.GetByID(ctx, id)
}

func (r *Repository) RenameColumn(ctx context.Context, id int, name string) error {
	return r.ColumnRepo.Rename(ctx, id, name)
}

func (r *Repository) GetBoardIDForColumn(ctx context.Context, columnID int) (int, error) {
	return r.ColumnRepo.GetBoardID(ctx, columnID)
}

func (r *Repository) ReorderColumn(ctx context.Context, id, index int) error {
	return r.ColumnRepo.Reorder(ctx, id, index)
}

func (r *Repository) DeleteColumn(ctx context.Context, id int) error {
	return r.ColumnRepo.Delete(ctx, id)
}

// Wrapper methods for CardRepo to satisfy the CardRepository interface
func (r *Repository) CreateCard(ctx context.Context, columnID int, title string, description, color *string) (*models.Card, error) {
	return r.CardRepo.Create(ctx, columnID, title, description, color)
}

func (r *Repository) GetCardByID(ctx context.Context, id int) (*models.Card, error) {
	return r.CardRepo.GetByID(ctx, id)
}

func (r *Repository) GetCardsByColumn(ctx context.Context, columnID int) ([]*models.Card, error) {
	return r.CardRepo.GetByColumn(ctx, columnID)
}

func (r *Repository) GetVisibleCardsByBoard(ctx context.Context, boardID int) (map[int][]*models.Card, error) {
	return r.CardRepo.GetVisibleByBoard(ctx, boardID)
}

func (r *Repository) SearchCards(ctx context.Context, boardID int, query, color string) ([]*models.Card, error) {
	return r.CardRepo.Search(ctx, boardID, query, color)
}

func (r *Repository) GetArchivedCardsByBoard(ctx context.Context, boardID int) ([]*models.Card, error) {
	return r.CardRepo.GetArchivedByBoard(ctx, boardID)
}

func (r *Repository) GetCardCountByColumn(ctx context.Context, columnID int) (int, error) {
	return r.CardRepo.CountByColumn(ctx, columnID)
}

func (r *Repository) GetBoardIDForCard(ctx context.Context, cardID int) (int, error) {
	return r.CardRepo.GetBoardID(ctx, cardID)
}

func (r *Repository) UpdateCard(ctx context.Context, id int, title string, description, color *string) error {
	return r.CardRepo.Update(ctx, id, title, description, color)
}

func (r *Repository) MoveCard(ctx context.Context, id, toColumnID, index int) error {
	return r.CardRepo.Move(ctx, id, toColumnID, index)
}

func (r *Repository) ArchiveCard(ctx context.Context, id int) error {
	return r.CardRepo.Archive(ctx, id)
}

func (r *Repository) RestoreCard(ctx context.Context, id int) error {
	return r.CardRepo.Restore(ctx, id)
}

func (r *Repository) DeleteCard(ctx context.Context, id int) error {
	return r.CardRepo.Delete(ctx, id)
}
