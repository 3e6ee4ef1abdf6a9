package database

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	_ "modernc.org/sqlite"
)

// TestCreateAndGetBoard tests creating a board and reading it back
func TestCreateAndGetBoard(t *testing.T) {
	db := setupTestDB(t)
	defer closeTestDB(db)
	repo := NewRepository(db)

	board, err := repo.CreateBoard(context.Background(), "Roadmap")
	if err != nil {
		t.Fatalf("Failed to create board: %v", err)
	}
	if board.ID == 0 {
		t.Error("Created board should have a non-zero id")
	}
	if board.Name != "Roadmap" {
		t.Errorf("Expected name Roadmap, got %s", board.Name)
	}

	got, err := repo.GetBoardByID(context.Background(), board.ID)
	if err != nil {
		t.Fatalf("Failed to get board: %v", err)
	}
	if got.Name != "Roadmap" {
		t.Errorf("Expected name Roadmap, got %s", got.Name)
	}
}

// TestGetAllBoardsCounts tests that board summaries carry correct column
// and card counts, excluding archived cards
func TestGetAllBoardsCounts(t *testing.T) {
	db := setupTestDB(t)
	defer closeTestDB(db)
	repo := NewRepository(db)

	board, col := seedBoard(t, repo)
	_, err := repo.CreateColumn(context.Background(), board.ID, "Done")
	if err != nil {
		t.Fatalf("Failed to create column: %v", err)
	}

	card1, _ := repo.CreateCard(context.Background(), col.ID, "Task one", nil, nil)
	_, _ = repo.CreateCard(context.Background(), col.ID, "Task two", nil, nil)

	// Archive one card; it should not count
	if err := repo.ArchiveCard(context.Background(), card1.ID); err != nil {
		t.Fatalf("Failed to archive card: %v", err)
	}

	boards, err := repo.GetAllBoards(context.Background())
	if err != nil {
		t.Fatalf("Failed to get boards: %v", err)
	}
	if len(boards) != 1 {
		t.Fatalf("Expected 1 board, got %d", len(boards))
	}

	if boards[0].ColumnCount != 2 {
		t.Errorf("Expected 2 columns, got %d", boards[0].ColumnCount)
	}
	if boards[0].CardCount != 1 {
		t.Errorf("Expected 1 visible card, got %d", boards[0].CardCount)
	}
}

// TestRenameBoard tests renaming a board and the unknown-id case
func TestRenameBoard(t *testing.T) {
	db := setupTestDB(t)
	defer closeTestDB(db)
	repo := NewRepository(db)

	board, _ := seedBoard(t, repo)

	if err := repo.RenameBoard(context.Background(), board.ID, "Renamed"); err != nil {
		t.Fatalf("Failed to rename board: %v", err)
	}

	got, err := repo.GetBoardByID(context.Background(), board.ID)
	if err != nil {
		t.Fatalf("Failed to get board: %v", err)
	}
	if got.Name != "Renamed" {
		t.Errorf("Expected name Renamed, got %s", got.Name)
	}

	err = repo.RenameBoard(context.Background(), 9999, "Nope")
	if !errors.Is(err, sql.ErrNoRows) {
		t.Errorf("Expected sql.ErrNoRows for unknown board, got %v", err)
	}
}

// TestDeleteBoardCascades tests that deleting a board removes its columns
// and cards through the CASCADE foreign keys
func TestDeleteBoardCascades(t *testing.T) {
	db := setupTestDB(t)
	defer closeTestDB(db)
	repo := NewRepository(db)

	board, col := seedBoard(t, repo)
	card, err := repo.CreateCard(context.Background(), col.ID, "Doomed", nil, nil)
	if err != nil {
		t.Fatalf("Failed to create card: %v", err)
	}

	if err := repo.DeleteBoard(context.Background(), board.ID); err != nil {
		t.Fatalf("Failed to delete board: %v", err)
	}

	if _, err := repo.GetBoardByID(context.Background(), board.ID); !errors.Is(err, sql.ErrNoRows) {
		t.Errorf("Expected sql.ErrNoRows for deleted board, got %v", err)
	}
	if _, err := repo.GetColumnByID(context.Background(), col.ID); !errors.Is(err, sql.ErrNoRows) {
		t.Errorf("Expected sql.ErrNoRows for cascaded column, got %v", err)
	}
	if _, err := repo.GetCardByID(context.Background(), card.ID); !errors.Is(err, sql.ErrNoRows) {
		t.Errorf("Expected sql.ErrNoRows for cascaded card, got %v", err)
	}
}

// TestDeleteUnknownBoard tests deleting a board that does not exist
func TestDeleteUnknownBoard(t *testing.T) {
	db := setupTestDB(t)
	defer closeTestDB(db)
	repo := NewRepository(db)

	err := repo.DeleteBoard(context.Background(), 42)
	if !errors.Is(err, sql.ErrNoRows) {
		t.Errorf("Expected sql.ErrNoRows, got %v", err)
	}
}
