package database

import (
	"context"
	"database/sql"

	"github.com/luishram/tablero/internal/models"
)

// ColumnRepo handles all column-related database operations.
type ColumnRepo struct {
	db *sql.DB
}

// Create inserts a new column at the end of the board's column list.
// The position is assigned in the same statement so concurrent creates
// cannot race on MAX(position).
func (r *ColumnRepo) Create(ctx context.Context, boardID int, name string) (*models.Column, error) {
	result, err := r.db.ExecContext(ctx,
		`INSERT INTO columns (board_id, name, position)
		 VALUES (?, ?, (SELECT COALESCE(MAX(position), 0) + ? FROM columns WHERE board_id = ?))`,
		boardID, name, models.PositionSpacing, boardID,
	)
	if err != nil {
		return nil, err
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, err
	}

	return r.GetByID(ctx, int(id))
}

// GetByBoard retrieves all columns for a board, ordered by position
func (r *ColumnRepo) GetByBoard(ctx context.Context, boardID int) ([]*models.Column, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, board_id, name, position, created_at, updated_at
		 FROM columns
		 WHERE board_id = ?
		 ORDER BY position`,
		boardID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var columns []*models.Column
	for rows.Next() {
		col := &models.Column{}
		if err := rows.Scan(
			&col.ID, &col.BoardID, &col.Name, &col.Position,
			&col.CreatedAt, &col.UpdatedAt,
		); err != nil {
			return nil, err
		}
		columns = append(columns, col)
	}

	return columns, rows.Err()
}

// GetByID retrieves a column by its ID
func (r *ColumnRepo) GetByID(ctx context.Context, id int) (*models.Column, error) {
	col := &models.Column{}
	err := r.db.QueryRowContext(ctx,
		`SELECT id, board_id, name, position, created_at, updated_at
		 FROM columns WHERE id = ?`,
		id,
	).Scan(&col.ID, &col.BoardID, &col.Name, &col.Position, &col.CreatedAt, &col.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return col, nil
}

// GetBoardID returns the board a column belongs to.
// Common pattern before publishing change notifications.
func (r *ColumnRepo) GetBoardID(ctx context.Context, columnID int) (int, error) {
	var boardID int
	err := r.db.QueryRowContext(ctx,
		`SELECT board_id FROM columns WHERE id = ?`, columnID,
	).Scan(&boardID)
	return boardID, err
}

// Rename updates the name of an existing column
func (r *ColumnRepo) Rename(ctx context.Context, id int, name string) error {
	result, err := r.db.ExecContext(ctx,
		`UPDATE columns
		 SET name = ?, updated_at = CURRENT_TIMESTAMP
		 WHERE id = ?`,
		name, id,
	)
	if err != nil {
		return err
	}
	return requireRowAffected(result)
}

// Reorder moves a column to the given index among its board's columns.
// The column gets a position strictly between its new neighbors; when
// no integer gap remains, every sibling is renumbered at multiples of
// the position spacing inside the same transaction.
func (r *ColumnRepo) Reorder(ctx context.Context, id, index int) error {
	return withTx(ctx, r.db, func(tx *sql.Tx) error {
		var boardID int
		err := tx.QueryRowContext(ctx,
			`SELECT board_id FROM columns WHERE id = ?`, id,
		).Scan(&boardID)
		if err != nil {
			return err
		}

		siblings, err := siblingColumns(ctx, tx, boardID, id)
		if err != nil {
			return err
		}

		index = clampIndex(index, len(siblings))
		pos, ok := slotFor(siblings, index)
		if !ok {
			return renumberColumns(ctx, tx, siblings, id, index)
		}

		_, err = tx.ExecContext(ctx,
			`UPDATE columns
			 SET position = ?, updated_at = CURRENT_TIMESTAMP
			 WHERE id = ?`,
			pos, id,
		)
		return err
	})
}

// Delete removes a column; its cards go with it through the CASCADE
// foreign key.
func (r *ColumnRepo) Delete(ctx context.Context, id int) error {
	result, err := r.db.ExecContext(ctx, "DELETE FROM columns WHERE id = ?", id)
	if err != nil {
		return err
	}
	return requireRowAffected(result)
}

// siblingColumns lists a board's columns in order, excluding the moved one
func siblingColumns(ctx context.Context, tx *sql.Tx, boardID, movedID int) ([]posRow, error) {
	rows, err := tx.QueryContext(ctx,
		`SELECT id, position FROM columns
		 WHERE board_id = ? AND id != ?
		 ORDER BY position`,
		boardID, movedID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var siblings []posRow
	for rows.Next() {
		var row posRow
		if err := rows.Scan(&row.id, &row.position); err != nil {
			return nil, err
		}
		siblings = append(siblings, row)
	}
	return siblings, rows.Err()
}

// renumberColumns rewrites every column position at fixed spacing with
// the moved column spliced in at index.
func renumberColumns(ctx context.Context, tx *sql.Tx, siblings []posRow, movedID, index int) error {
	ordered := make([]int, 0, len(siblings)+1)
	for _, s := range siblings {
		ordered = append(ordered, s.id)
	}
	ordered = append(ordered[:index], append([]int{movedID}, ordered[index:]...)...)

	for i, colID := range ordered {
		_, err := tx.ExecContext(ctx,
			`UPDATE columns
			 SET position = ?, updated_at = CURRENT_TIMESTAMP
			 WHERE id = ?`,
			(i+1)*models.PositionSpacing, colID,
		)
		if err != nil {
			return err
		}
	}
	return nil
}
