package database

import (
	"context"

	"github.com/luishram/tablero/internal/models"
)

// BoardReader defines read operations for boards.
type BoardReader interface {
	GetAllBoards(ctx context.Context) ([]*models.BoardSummary, error)
	GetBoardByID(ctx context.Context, id int) (*models.Board, error)
}

// BoardWriter defines write operations for boards.
type BoardWriter interface {
	CreateBoard(ctx context.Context, name string) (*models.Board, error)
	RenameBoard(ctx context.Context, id int, name string) error
	DeleteBoard(ctx context.Context, id int) error
}

// BoardRepository combines all board-related operations.
type BoardRepository interface {
	BoardReader
	BoardWriter
}

// ColumnReader defines read operations for columns.
type ColumnReader interface {
	GetColumnsByBoard(ctx context.Context, boardID int) ([]*models.Column, error)
	GetColumnByID(ctx context.Context, id int) (*models.Column, error)
	GetBoardIDForColumn(ctx context.Context, columnID int) (int, error)
}

// ColumnWriter defines write operations for columns.
type ColumnWriter interface {
	CreateColumn(ctx context.Context, boardID int, name string) (*models.Column, error)
	RenameColumn(ctx context.Context, id int, name string) error
	ReorderColumn(ctx context.Context, id, index int) error
	DeleteColumn(ctx context.Context, id int) error
}

// ColumnRepository combines all column-related operations.
type ColumnRepository interface {
	ColumnReader
	ColumnWriter
}

// CardReader defines read operations for cards.
type CardReader interface {
	GetCardByID(ctx context.Context, id int) (*models.Card, error)
	GetCardsByColumn(ctx context.Context, columnID int) ([]*models.Card, error)
	GetVisibleCardsByBoard(ctx context.Context, boardID int) (map[int][]*models.Card, error)
	SearchCards(ctx context.Context, boardID int, query, color string) ([]*models.Card, error)
	GetArchivedCardsByBoard(ctx context.Context, boardID int) ([]*models.Card, error)
	GetCardCountByColumn(ctx context.Context, columnID int) (int, error)
	GetBoardIDForCard(ctx context.Context, cardID int) (int, error)
}

// CardWriter defines write operations for cards.
type CardWriter interface {
	CreateCard(ctx context.Context, columnID int, title string, description, color *string) (*models.Card, error)
	UpdateCard(ctx context.Context, id int, title string, description, color *string) error
	MoveCard(ctx context.Context, id, toColumnID, index int) error
	ArchiveCard(ctx context.Context, id int) error
	RestoreCard(ctx context.Context, id int) error
	DeleteCard(ctx context.Context, id int) error
}

// CardRepository combines all card-related operations.
type CardRepository interface {
	CardReader
	CardWriter
}
