// Package server exposes the kanban API over HTTP.
package server

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/luishram/tablero/internal/config"
	"github.com/luishram/tablero/internal/events"
	"github.com/luishram/tablero/internal/services/board"
	"github.com/luishram/tablero/internal/services/card"
	"github.com/luishram/tablero/internal/services/column"
)

// Server wires the services into a gin router
type Server struct {
	cfg     *config.Config
	router  *gin.Engine
	boards  board.Service
	columns column.Service
	cards   card.Service
	hub     *events.Hub
}

// New assembles the HTTP server around the given services and hub
func New(cfg *config.Config, boards board.Service, columns column.Service, cards card.Service, hub *events.Hub) *Server {
	if cfg.Release {
		gin.SetMode(gin.ReleaseMode)
	}

	s := &Server{
		cfg:     cfg,
		boards:  boards,
		columns: columns,
		cards:   cards,
		hub:     hub,
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(requestID())
	router.Use(requestLogger())
	router.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORSOrigins,
		AllowMethods:     []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	s.router = router
	s.registerRoutes()
	return s
}

// Handler returns the underlying http.Handler, mainly for tests
func (s *Server) Handler() http.Handler {
	return s.router
}

// Run serves the API until ctx is cancelled, then shuts down
// gracefully with a short drain window.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.cfg.Addr,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("server listening", "addr", s.cfg.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	slog.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
