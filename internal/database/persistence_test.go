package database

import (
	"context"
	"os"
	"testing"

	"github.com/luishram/tablero/internal/models"
	_ "modernc.org/sqlite"
)

// TestPersistenceAcrossRestart tests that boards, columns, cards and
// archive markers survive closing and reopening the database file
func TestPersistenceAcrossRestart(t *testing.T) {
	db, dbPath := setupTestDBFile(t)
	defer os.Remove(dbPath)

	repo := NewRepository(db)

	board, err := repo.CreateBoard(context.Background(), "Persistent Board")
	if err != nil {
		t.Fatalf("Failed to create board: %v", err)
	}
	col, err := repo.CreateColumn(context.Background(), board.ID, "Todo")
	if err != nil {
		t.Fatalf("Failed to create column: %v", err)
	}
	card, err := repo.CreateCard(context.Background(), col.ID,
		"Survives restarts", strPtr("with its description"), strPtr(models.ColorGreen))
	if err != nil {
		t.Fatalf("Failed to create card: %v", err)
	}
	archived, err := repo.CreateCard(context.Background(), col.ID, "Archived one", nil, nil)
	if err != nil {
		t.Fatalf("Failed to create card: %v", err)
	}
	if err := repo.ArchiveCard(context.Background(), archived.ID); err != nil {
		t.Fatalf("Failed to archive card: %v", err)
	}

	// Simulate restart
	db = closeAndReopenDB(t, db, dbPath)
	defer closeTestDB(db)
	repo = NewRepository(db)

	got, err := repo.GetCardByID(context.Background(), card.ID)
	if err != nil {
		t.Fatalf("Failed to get card after restart: %v", err)
	}
	if got.Title != "Survives restarts" {
		t.Errorf("Expected title preserved, got %s", got.Title)
	}
	if got.Description == nil || *got.Description != "with its description" {
		t.Error("Description should survive the restart")
	}
	if got.Color == nil || *got.Color != models.ColorGreen {
		t.Error("Color should survive the restart")
	}

	visible, err := repo.GetCardsByColumn(context.Background(), col.ID)
	if err != nil {
		t.Fatalf("Failed to get cards after restart: %v", err)
	}
	if len(visible) != 1 {
		t.Errorf("Expected 1 visible card after restart, got %d", len(visible))
	}

	archive, err := repo.GetArchivedCardsByBoard(context.Background(), board.ID)
	if err != nil {
		t.Fatalf("Failed to list archive after restart: %v", err)
	}
	if len(archive) != 1 || archive[0].ID != archived.ID {
		t.Error("Archive marker should survive the restart")
	}
}

// TestMigrationsIdempotent tests that running migrations twice is a no-op
func TestMigrationsIdempotent(t *testing.T) {
	db := setupTestDB(t)
	defer closeTestDB(db)

	if err := RunMigrations(context.Background(), db); err != nil {
		t.Fatalf("Second migration run should be a no-op, got: %v", err)
	}

	var count int
	err := db.QueryRow(`SELECT COUNT(*) FROM schema_migrations`).Scan(&count)
	if err != nil {
		t.Fatalf("Failed to count migrations: %v", err)
	}
	if count == 0 {
		t.Error("Expected at least one recorded migration")
	}
}
