package database

import (
	"context"
	"database/sql"
	"log"
	"os"
	"testing"

	"github.com/luishram/tablero/internal/models"
	_ "modernc.org/sqlite"
)

// setupTestDB creates an in-memory database and runs migrations
// This is the unified test database setup used by all tests
func setupTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("Failed to create test database: %v", err)
	}

	// Enable foreign key constraints
	_, err = db.Exec("PRAGMA foreign_keys = ON")
	if err != nil {
		t.Fatalf("Failed to enable foreign keys: %v", err)
	}

	if err := RunMigrations(context.Background(), db); err != nil {
		t.Fatalf("Failed to run migrations: %v", err)
	}

	return db
}

// setupTestDBFile creates a file-based database for testing persistence across restarts
func setupTestDBFile(t *testing.T) (*sql.DB, string) {
	t.Helper()
	tmpfile, err := os.CreateTemp("", "tablero-test-*.db")
	if err != nil {
		t.Fatalf("Failed to create temp file: %v", err)
	}
	tmpfile.Close()

	db, err := sql.Open("sqlite", tmpfile.Name())
	if err != nil {
		os.Remove(tmpfile.Name())
		t.Fatalf("Failed to open test database: %v", err)
	}

	// Enable foreign key constraints
	_, err = db.Exec("PRAGMA foreign_keys = ON")
	if err != nil {
		db.Close()
		os.Remove(tmpfile.Name())
		t.Fatalf("Failed to enable foreign keys: %v", err)
	}

	if err := RunMigrations(context.Background(), db); err != nil {
		db.Close()
		os.Remove(tmpfile.Name())
		t.Fatalf("Failed to run migrations: %v", err)
	}

	return db, tmpfile.Name()
}

// closeAndReopenDB simulates app restart by closing and reopening the database
func closeAndReopenDB(t *testing.T, db *sql.DB, dbPath string) *sql.DB {
	t.Helper()
	if err := db.Close(); err != nil {
		t.Fatalf("Failed to close database: %v", err)
	}

	newDB, err := sql.Open("sqlite", dbPath)
	if err != nil {
		t.Fatalf("Failed to reopen database: %v", err)
	}

	// Enable foreign key constraints
	_, err = newDB.Exec("PRAGMA foreign_keys = ON")
	if err != nil {
		t.Fatalf("Failed to enable foreign keys: %v", err)
	}

	return newDB
}

// closeTestDB closes the database, logging rather than failing on error
func closeTestDB(db *sql.DB) {
	if err := db.Close(); err != nil {
		log.Printf("failed to close database: %v", err)
	}
}

// seedBoard creates a board with one column and returns both
func seedBoard(t *testing.T, repo *Repository) (*models.Board, *models.Column) {
	t.Helper()
	board, err := repo.CreateBoard(context.Background(), "Test Board")
	if err != nil {
		t.Fatalf("Failed to create board: %v", err)
	}
	col, err := repo.CreateColumn(context.Background(), board.ID, "Todo")
	if err != nil {
		t.Fatalf("Failed to create column: %v", err)
	}
	return board, col
}

// strPtr is a convenience for building optional card fields
func strPtr(s string) *string {
	return &s
}

// cardIDs extracts the ids of a card slice in order
func cardIDs(cards []*models.Card) []int {
	ids := make([]int, 0, len(cards))
	for _, c := range cards {
		ids = append(ids, c.ID)
	}
	return ids
}

// verifyPositionOrder checks that a column's visible cards carry strictly
// increasing, unique positions
func verifyPositionOrder(t *testing.T, repo *Repository, columnID int) {
	t.Helper()
	cards, err := repo.GetCardsByColumn(context.Background(), columnID)
	if err != nil {
		t.Fatalf("Failed to get cards: %v", err)
	}
	for i := 1; i < len(cards); i++ {
		if cards[i].Position <= cards[i-1].Position {
			t.Errorf("Positions not strictly increasing at index %d: %d then %d",
				i, cards[i-1].Position, cards[i].Position)
		}
	}
}
