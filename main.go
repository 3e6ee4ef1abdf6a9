package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"

	"github.com/luishram/tablero/internal/config"
	"github.com/luishram/tablero/internal/database"
	"github.com/luishram/tablero/internal/events"
	"github.com/luishram/tablero/internal/logging"
	"github.com/luishram/tablero/internal/server"
	"github.com/luishram/tablero/internal/services/board"
	"github.com/luishram/tablero/internal/services/card"
	"github.com/luishram/tablero/internal/services/column"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	if err := logging.Init(cfg.LogLevel, cfg.LogFile); err != nil {
		log.Fatalf("Failed to initialize logging: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Initialize database
	db, err := database.InitDB(ctx, cfg.DBPath)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.Close()

	// Create repository wrapping the database
	repo := database.NewRepository(db)

	// Event hub feeding the live-update stream
	hub := events.NewHub()

	srv := server.New(cfg,
		board.NewService(repo, hub),
		column.NewService(repo, hub),
		card.NewService(repo, hub),
		hub,
	)

	if err := srv.Run(ctx); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}
