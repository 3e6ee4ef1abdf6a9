// Seeds a database with demo boards for local development.
// Run with: go run ./cmd/seed
package main

import (
	"context"
	"log"

	"github.com/luishram/tablero/internal/config"
	"github.com/luishram/tablero/internal/database"
	"github.com/luishram/tablero/internal/models"
	"github.com/luishram/tablero/internal/services/board"
	"github.com/luishram/tablero/internal/services/card"
	"github.com/luishram/tablero/internal/services/column"
)

type seedCard struct {
	title       string
	description string
	color       string
}

var seedColumns = []struct {
	name  string
	cards []seedCard
}{
	{"Todo", []seedCard{
		{"Fix auth bug", "Login fails when the session cookie is stale.", models.ColorRed},
		{"Update deps", "", ""},
		{"Write onboarding doc", "Cover local setup and the seed command.", models.ColorBlue},
	}},
	{"In Progress", []seedCard{
		{"Refactor board view", "Split the column component before it grows further.", models.ColorYellow},
	}},
	{"Done", []seedCard{
		{"Set up CI", "", models.ColorGreen},
	}},
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	ctx := context.Background()
	db, err := database.InitDB(ctx, cfg.DBPath)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.Close()

	repo := database.NewRepository(db)
	boards := board.NewService(repo, nil)
	columns := column.NewService(repo, nil)
	cards := card.NewService(repo, nil)

	b, err := boards.CreateBoard(ctx, "Demo Board")
	if err != nil {
		log.Fatalf("Failed to create board: %v", err)
	}
	log.Printf("Created board: %s (id=%d)", b.Name, b.ID)

	for _, sc := range seedColumns {
		col, err := columns.CreateColumn(ctx, column.CreateColumnRequest{
			BoardID: b.ID,
			Name:    sc.name,
		})
		if err != nil {
			log.Fatalf("Failed to create column %q: %v", sc.name, err)
		}

		for _, k := range sc.cards {
			req := card.CreateCardRequest{ColumnID: col.ID, Title: k.title}
			if k.description != "" {
				desc := k.description
				req.Description = &desc
			}
			if k.color != "" {
				color := k.color
				req.Color = &color
			}
			if _, err := cards.CreateCard(ctx, req); err != nil {
				log.Printf("Error creating card %q: %v", k.title, err)
			} else {
				log.Printf("Created card: %s", k.title)
			}
		}
	}
}
