package database

import (
	"context"
	"database/sql"

	"github.com/luishram/tablero/internal/models"
)

// BoardRepo handles all board-related database operations.
type BoardRepo struct {
	db *sql.DB
}

// Create inserts a new board and returns it with its generated
// id and timestamps.
func (r *BoardRepo) Create(ctx context.Context, name string) (*models.Board, error) {
	result, err := r.db.ExecContext(ctx,
		`INSERT INTO boards (name) VALUES (?)`, name)
	if err != nil {
		return nil, err
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, err
	}

	return r.GetByID(ctx, int(id))
}

// GetAll retrieves summaries for every board, ordered by creation.
// Column and card counts come from correlated subqueries so the board
// list needs a single round trip; archived cards are not counted.
func (r *BoardRepo) GetAll(ctx context.Context) ([]*models.BoardSummary, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT
			b.id,
			b.name,
			(SELECT COUNT(*) FROM columns c WHERE c.board_id = b.id),
			(SELECT COUNT(*)
			   FROM cards k
			   JOIN columns c ON k.column_id = c.id
			  WHERE c.board_id = b.id AND k.archived_at IS NULL),
			b.created_at,
			b.updated_at
		FROM boards b
		ORDER BY b.created_at, b.id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var boards []*models.BoardSummary
	for rows.Next() {
		board := &models.BoardSummary{}
		if err := rows.Scan(
			&board.ID, &board.Name,
			&board.ColumnCount, &board.CardCount,
			&board.CreatedAt, &board.UpdatedAt,
		); err != nil {
			return nil, err
		}
		boards = append(boards, board)
	}

	return boards, rows.Err()
}

// GetByID retrieves a board by its ID
func (r *BoardRepo) GetByID(ctx context.Context, id int) (*models.Board, error) {
	board := &models.Board{}
	err := r.db.QueryRowContext(ctx,
		`SELECT id, name, created_at, updated_at FROM boards WHERE id = ?`,
		id,
	).Scan(&board.ID, &board.Name, &board.CreatedAt, &board.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return board, nil
}

// Rename updates the name of an existing board
func (r *BoardRepo) Rename(ctx context.Context, id int, name string) error {
	result, err := r.db.ExecContext(ctx,
		`UPDATE boards
		 SET name = ?, updated_at = CURRENT_TIMESTAMP
		 WHERE id = ?`,
		name, id,
	)
	if err != nil {
		return err
	}
	return requireRowAffected(result)
}

// Delete removes a board; its columns and their cards go with it
// through the CASCADE foreign keys.
func (r *BoardRepo) Delete(ctx context.Context, id int) error {
	result, err := r.db.ExecContext(ctx, "DELETE FROM boards WHERE id = ?", id)
	if err != nil {
		return err
	}
	return requireRowAffected(result)
}

// requireRowAffected maps a zero-row update or delete to sql.ErrNoRows
// so callers can distinguish "unknown id" from success.
func requireRowAffected(result sql.Result) error {
	n, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return sql.ErrNoRows
	}
	return nil
}
