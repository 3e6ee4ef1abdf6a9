package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/luishram/tablero/internal/models"
)

type boardRequest struct {
	Name string `json:"name"`
}

// listBoards returns summaries for every board
func (s *Server) listBoards(c *gin.Context) {
	boards, err := s.boards.ListBoards(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	if boards == nil {
		boards = []*models.BoardSummary{}
	}
	c.JSON(http.StatusOK, boards)
}

// createBoard creates a new board
func (s *Server) createBoard(c *gin.Context) {
	var req boardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "malformed JSON body")
		return
	}

	b, err := s.boards.CreateBoard(c.Request.Context(), req.Name)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, b)
}

// getBoard returns the full board with columns and visible cards
func (s *Server) getBoard(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	detail, err := s.boards.GetBoard(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, detail)
}

// renameBoard updates a board's name
func (s *Server) renameBoard(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req boardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "malformed JSON body")
		return
	}

	if err := s.boards.RenameBoard(c.Request.Context(), id, req.Name); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// deleteBoard removes a board and everything on it
func (s *Server) deleteBoard(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := s.boards.DeleteBoard(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
