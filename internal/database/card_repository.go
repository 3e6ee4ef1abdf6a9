package database

import (
	"context"
	"database/sql"

	"github.com/luishram/tablero/internal/models"
)

// CardRepo handles all card-related database operations.
//
// Position values are unique among the visible (non-archived) cards of
// a column and define their order. An archived card keeps its old
// position as a dead value; Restore assigns a fresh one at the bottom.
type CardRepo struct {
	db *sql.DB
}

const cardColumns = `id, column_id, title, description, color, position, archived_at, created_at, updated_at`

func scanCard(scanner interface{ Scan(...any) error }) (*models.Card, error) {
	card := &models.Card{}
	var description, color sql.NullString
	var archivedAt sql.NullTime

	err := scanner.Scan(
		&card.ID, &card.ColumnID, &card.Title,
		&description, &color, &card.Position,
		&archivedAt, &card.CreatedAt, &card.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	card.Description = nullStringToPtr(description)
	card.Color = nullStringToPtr(color)
	if archivedAt.Valid {
		t := archivedAt.Time
		card.ArchivedAt = &t
	}
	return card, nil
}

// Create inserts a new card at the bottom of the column
func (r *CardRepo) Create(ctx context.Context, columnID int, title string, description, color *string) (*models.Card, error) {
	result, err := r.db.ExecContext(ctx,
		`INSERT INTO cards (column_id, title, description, color, position)
		 VALUES (?, ?, ?, ?,
			(SELECT COALESCE(MAX(position), 0) + ? FROM cards WHERE column_id = ? AND archived_at IS NULL))`,
		columnID, title, ptrToNullString(description), ptrToNullString(color),
		models.PositionSpacing, columnID,
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

// GetByID retrieves a card by its ID, archived or not
func (r *CardRepo) GetByID(ctx context.Context, id int) (*models.Card, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+cardColumns+` FROM cards WHERE id = ?`, id)
	return scanCard(row)
}

// GetBoardID returns the board a card belongs to, through its column
func (r *CardRepo) GetBoardID(ctx context.Context, cardID int) (int, error) {
	var boardID int
	err := r.db.QueryRowContext(ctx,
		`SELECT c.board_id
		 FROM cards k
		 JOIN columns c ON k.column_id = c.id
		 WHERE k.id = ?`,
		cardID,
	).Scan(&boardID)
	return boardID, err
}

// GetByColumn retrieves the visible cards of a column, ordered by position
func (r *CardRepo) GetByColumn(ctx context.Context, columnID int) ([]*models.Card, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+cardColumns+`
		 FROM cards
		 WHERE column_id = ? AND archived_at IS NULL
		 ORDER BY position`,
		columnID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectCards(rows)
}

// GetVisibleByBoard retrieves every visible card on a board in a single
// query, keyed by column id and ordered by position within each column
func (r *CardRepo) GetVisibleByBoard(ctx context.Context, boardID int) (map[int][]*models.Card, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT k.`+joinCardColumns()+`
		 FROM cards k
		 JOIN columns c ON k.column_id = c.id
		 WHERE c.board_id = ? AND k.archived_at IS NULL
		 ORDER BY k.column_id, k.position`,
		boardID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	byColumn := make(map[int][]*models.Card)
	for rows.Next() {
		card, err := scanCard(rows)
		if err != nil {
			return nil, err
		}
		byColumn[card.ColumnID] = append(byColumn[card.ColumnID], card)
	}
	return byColumn, rows.Err()
}

// Update replaces a card's title, description and color
func (r *CardRepo) Update(ctx context.Context, id int, title string, description, color *string) error {
	result, err := r.db.ExecContext(ctx,
		`UPDATE cards
		 SET title = ?, description = ?, color = ?, updated_at = CURRENT_TIMESTAMP
		 WHERE id = ?`,
		title, ptrToNullString(description), ptrToNullString(color), id,
	)
	if err != nil {
		return err
	}
	return requireRowAffected(result)
}

// Move places a card at the given index among the visible cards of the
// target column. The card gets a position strictly between its new
// neighbors; when no integer gap remains, the column's visible cards
// are renumbered at multiples of the position spacing inside the same
// transaction.
func (r *CardRepo) Move(ctx context.Context, id, toColumnID, index int) error {
	return withTx(ctx, r.db, func(tx *sql.Tx) error {
		var exists int
		err := tx.QueryRowContext(ctx,
			`SELECT 1 FROM cards WHERE id = ?`, id).Scan(&exists)
		if err != nil {
			return err
		}

		siblings, err := siblingCards(ctx, tx, toColumnID, id)
		if err != nil {
			return err
		}

		index = clampIndex(index, len(siblings))
		pos, ok := slotFor(siblings, index)
		if !ok {
			return renumberCards(ctx, tx, siblings, id, toColumnID, index)
		}

		_, err = tx.ExecContext(ctx,
			`UPDATE cards
			 SET column_id = ?, position = ?, updated_at = CURRENT_TIMESTAMP
			 WHERE id = ?`,
			toColumnID, pos, id,
		)
		return err
	})
}

// Archive soft-deletes a card, hiding it from board and search views
func (r *CardRepo) Archive(ctx context.Context, id int) error {
	result, err := r.db.ExecContext(ctx,
		`UPDATE cards
		 SET archived_at = CURRENT_TIMESTAMP, updated_at = CURRENT_TIMESTAMP
		 WHERE id = ? AND archived_at IS NULL`,
		id,
	)
	if err != nil {
		return err
	}
	return requireRowAffected(result)
}

// Restore clears a card's archived marker and places it at the bottom
// of its column.
func (r *CardRepo) Restore(ctx context.Context, id int) error {
	result, err := r.db.ExecContext(ctx,
		`UPDATE cards
		 SET archived_at = NULL,
		     position = (SELECT COALESCE(MAX(position), 0) + ?
		                 FROM cards
		                 WHERE column_id = (SELECT column_id FROM cards WHERE id = ?)
		                   AND archived_at IS NULL),
		     updated_at = CURRENT_TIMESTAMP
		 WHERE id = ? AND archived_at IS NOT NULL`,
		models.PositionSpacing, id, id,
	)
	if err != nil {
		return err
	}
	return requireRowAffected(result)
}

// Delete permanently removes a card from the database
func (r *CardRepo) Delete(ctx context.Context, id int) error {
	result, err := r.db.ExecContext(ctx, "DELETE FROM cards WHERE id = ?", id)
	if err != nil {
		return err
	}
	return requireRowAffected(result)
}

// Search finds visible cards on a board whose title or description
// contains the query substring, optionally restricted to one color.
// An empty query matches every visible card.
func (r *CardRepo) Search(ctx context.Context, boardID int, query, color string) ([]*models.Card, error) {
	sqlQuery := `
		SELECT k.` + joinCardColumns() + `
		FROM cards k
		JOIN columns c ON k.column_id = c.id
		WHERE c.board_id = ? AND k.archived_at IS NULL`
	args := []any{boardID}

	if query != "" {
		sqlQuery += ` AND (k.title LIKE ? ESCAPE '\' OR k.description LIKE ? ESCAPE '\')`
		pattern := "%" + escapeLike(query) + "%"
		args = append(args, pattern, pattern)
	}
	if color != "" {
		sqlQuery += ` AND k.color = ?`
		args = append(args, color)
	}
	sqlQuery += ` ORDER BY k.column_id, k.position`

	rows, err := r.db.QueryContext(ctx, sqlQuery, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectCards(rows)
}

// GetArchivedByBoard lists a board's archived cards, newest first
func (r *CardRepo) GetArchivedByBoard(ctx context.Context, boardID int) ([]*models.Card, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT k.`+joinCardColumns()+`
		 FROM cards k
		 JOIN columns c ON k.column_id = c.id
		 WHERE c.board_id = ? AND k.archived_at IS NOT NULL
		 ORDER BY k.archived_at DESC, k.id DESC`,
		boardID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectCards(rows)
}

// CountByColumn returns the number of visible cards in a column
func (r *CardRepo) CountByColumn(ctx context.Context, columnID int) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM cards WHERE column_id = ? AND archived_at IS NULL`,
		columnID,
	).Scan(&count)
	return count, err
}

func collectCards(rows *sql.Rows) ([]*models.Card, error) {
	var cards []*models.Card
	for rows.Next() {
		card, err := scanCard(rows)
		if err != nil {
			return nil, err
		}
		cards = append(cards, card)
	}
	return cards, rows.Err()
}

// joinCardColumns qualifies the card column list with the k alias used
// by the board-wide queries.
func joinCardColumns() string {
	return `id, k.column_id, k.title, k.description, k.color, k.position, k.archived_at, k.created_at, k.updated_at`
}

// siblingCards lists a column's visible cards in order, excluding the moved one
func siblingCards(ctx context.Context, tx *sql.Tx, columnID, movedID int) ([]posRow, error) {
	rows, err := tx.QueryContext(ctx,
		`SELECT id, position FROM cards
		 WHERE column_id = ? AND archived_at IS NULL AND id != ?
		 ORDER BY position`,
		columnID, movedID,
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

// renumberCards rewrites the visible card positions of a column at
// fixed spacing with the moved card spliced in at index.
func renumberCards(ctx context.Context, tx *sql.Tx, siblings []posRow, movedID, toColumnID, index int) error {
	ordered := make([]int, 0, len(siblings)+1)
	for _, s := range siblings {
		ordered = append(ordered, s.id)
	}
	ordered = append(ordered[:index], append([]int{movedID}, ordered[index:]...)...)

	for i, cardID := range ordered {
		_, err := tx.ExecContext(ctx,
			`UPDATE cards
			 SET column_id = CASE WHEN id = ? THEN ? ELSE column_id END,
			     position = ?, updated_at = CURRENT_TIMESTAMP
			 WHERE id = ?`,
			movedID, toColumnID, (i+1)*models.PositionSpacing, cardID,
		)
		if err != nil {
			return err
		}
	}
	return nil
}
