package column

import (
	"context"
	"strings"
	"testing"

	"github.com/luishram/tablero/internal/database"
	_ "modernc.org/sqlite"
)

// setupTestRepo creates an in-memory database wrapped in a Repository
func setupTestRepo(t *testing.T) *database.Repository {
	t.Helper()
	db, err := database.InitDB(context.Background(), ":memory:")
	if err != nil {
		t.Fatalf("Failed to create test database: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	return database.NewRepository(db)
}

// createTestBoard creates a board and returns its ID
func createTestBoard(t *testing.T, repo *database.Repository) int {
	t.Helper()
	board, err := repo.CreateBoard(context.Background(), "Test Board")
	if err != nil {
		t.Fatalf("Failed to create test board: %v", err)
	}
	return board.ID
}

func TestCreateColumn(t *testing.T) {
	t.Parallel()

	repo := setupTestRepo(t)
	boardID := createTestBoard(t, repo)
	svc := NewService(repo, nil)

	result, err := svc.CreateColumn(context.Background(), CreateColumnRequest{
		BoardID: boardID,
		Name:    "  To Do  ",
	})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if result.Name != "To Do" {
		t.Errorf("Expected trimmed name 'To Do', got '%s'", result.Name)
	}
	if result.BoardID != boardID {
		t.Errorf("Expected board ID %d, got %d", boardID, result.BoardID)
	}
	if result.ID == 0 {
		t.Error("Expected column ID to be set")
	}
}

func TestCreateColumn_EmptyName(t *testing.T) {
	t.Parallel()

	repo := setupTestRepo(t)
	boardID := createTestBoard(t, repo)
	svc := NewService(repo, nil)

	_, err := svc.CreateColumn(context.Background(), CreateColumnRequest{
		BoardID: boardID,
		Name:    "",
	})
	if err != ErrEmptyName {
		t.Errorf("Expected ErrEmptyName, got %v", err)
	}
}

func TestCreateColumn_NameTooLong(t *testing.T) {
	t.Parallel()

	repo := setupTestRepo(t)
	boardID := createTestBoard(t, repo)
	svc := NewService(repo, nil)

	_, err := svc.CreateColumn(context.Background(), CreateColumnRequest{
		BoardID: boardID,
		Name:    strings.Repeat("a", MaxNameLength+1),
	})
	if err != ErrNameTooLong {
		t.Errorf("Expected ErrNameTooLong, got %v", err)
	}
}

func TestCreateColumn_UnknownBoard(t *testing.T) {
	t.Parallel()

	repo := setupTestRepo(t)
	svc := NewService(repo, nil)

	_, err := svc.CreateColumn(context.Background(), CreateColumnRequest{
		BoardID: 9999,
		Name:    "Orphan",
	})
	if err != ErrBoardNotFound {
		t.Errorf("Expected ErrBoardNotFound, got %v", err)
	}
}

func TestRenameColumn(t *testing.T) {
	t.Parallel()

	repo := setupTestRepo(t)
	boardID := createTestBoard(t, repo)
	svc := NewService(repo, nil)

	created, _ := svc.CreateColumn(context.Background(), CreateColumnRequest{
		BoardID: boardID,
		Name:    "Before",
	})

	if err := svc.RenameColumn(context.Background(), created.ID, "After"); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	got, err := svc.GetColumnByID(context.Background(), created.ID)
	if err != nil {
		t.Fatalf("Failed to get column: %v", err)
	}
	if got.Name != "After" {
		t.Errorf("Expected name After, got '%s'", got.Name)
	}

	if err := svc.RenameColumn(context.Background(), 9999, "Ghost"); err != ErrColumnNotFound {
		t.Errorf("Expected ErrColumnNotFound, got %v", err)
	}
}

func TestReorderColumn(t *testing.T) {
	t.Parallel()

	repo := setupTestRepo(t)
	boardID := createTestBoard(t, repo)
	svc := NewService(repo, nil)

	first, _ := svc.CreateColumn(context.Background(), CreateColumnRequest{BoardID: boardID, Name: "First"})
	second, _ := svc.CreateColumn(context.Background(), CreateColumnRequest{BoardID: boardID, Name: "Second"})

	if err := svc.ReorderColumn(context.Background(), second.ID, 0); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	columns, err := svc.GetColumnsByBoard(context.Background(), boardID)
	if err != nil {
		t.Fatalf("Failed to get columns: %v", err)
	}
	if columns[0].ID != second.ID || columns[1].ID != first.ID {
		t.Error("Second column should now be first")
	}
}

func TestReorderColumn_NegativeIndex(t *testing.T) {
	t.Parallel()

	repo := setupTestRepo(t)
	boardID := createTestBoard(t, repo)
	svc := NewService(repo, nil)

	created, _ := svc.CreateColumn(context.Background(), CreateColumnRequest{BoardID: boardID, Name: "Only"})

	if err := svc.ReorderColumn(context.Background(), created.ID, -1); err != ErrInvalidIndex {
		t.Errorf("Expected ErrInvalidIndex, got %v", err)
	}
}

func TestDeleteColumn(t *testing.T) {
	t.Parallel()

	repo := setupTestRepo(t)
	boardID := createTestBoard(t, repo)
	svc := NewService(repo, nil)

	created, _ := svc.CreateColumn(context.Background(), CreateColumnRequest{BoardID: boardID, Name: "Doomed"})

	if err := svc.DeleteColumn(context.Background(), created.ID); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if _, err := svc.GetColumnByID(context.Background(), created.ID); err != ErrColumnNotFound {
		t.Errorf("Expected ErrColumnNotFound after delete, got %v", err)
	}

	if err := svc.DeleteColumn(context.Background(), created.ID); err != ErrColumnNotFound {
		t.Errorf("Expected ErrColumnNotFound deleting twice, got %v", err)
	}
}
