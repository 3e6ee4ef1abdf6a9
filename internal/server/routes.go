package server

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// registerRoutes declares the full REST surface
func (s *Server) registerRoutes() {
	s.router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "timestamp": time.Now()})
	})

	api := s.router.Group("/api")

	// ----------------------
	// Board routes
	// ----------------------
	api.GET("/boards", s.listBoards)
	api.POST("/boards", s.createBoard)
	api.GET("/boards/:id", s.getBoard)
	api.PATCH("/boards/:id", s.renameBoard)
	api.DELETE("/boards/:id", s.deleteBoard)

	// Board-scoped card views
	api.GET("/boards/:id/cards", s.searchCards)
	api.GET("/boards/:id/archive", s.listArchivedCards)

	// ----------------------
	// Column routes
	// ----------------------
	api.POST("/boards/:id/columns", s.createColumn)
	api.PATCH("/columns/:id", s.renameColumn)
	api.PATCH("/columns/:id/position", s.reorderColumn)
	api.DELETE("/columns/:id", s.deleteColumn)

	// ----------------------
	// Card routes
	// ----------------------
	api.POST("/columns/:id/cards", s.createCard)
	api.GET("/cards/:id", s.getCard)
	api.PATCH("/cards/:id", s.updateCard)
	api.PATCH("/cards/:id/move", s.moveCard)
	api.POST("/cards/:id/archive", s.archiveCard)
	api.POST("/cards/:id/restore", s.restoreCard)
	api.DELETE("/cards/:id", s.deleteCard)

	// ----------------------
	// Live updates
	// ----------------------
	api.GET("/events", s.streamEvents)
	api.GET("/stats", s.stats)
}
