package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/luishram/tablero/internal/services/column"
)

type columnRequest struct {
	Name string `json:"name"`
}

type reorderRequest struct {
	Index *int `json:"index"`
}

// createColumn appends a new column to a board
func (s *Server) createColumn(c *gin.Context) {
	boardID, ok := pathID(c)
	if !ok {
		return
	}

	var req columnRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "malformed JSON body")
		return
	}

	col, err := s.columns.CreateColumn(c.Request.Context(), column.CreateColumnRequest{
		BoardID: boardID,
		Name:    req.Name,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, col)
}

// renameColumn updates a column's name
func (s *Server) renameColumn(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req columnRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "malformed JSON body")
		return
	}

	if err := s.columns.RenameColumn(c.Request.Context(), id, req.Name); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// reorderColumn moves a column to a new index among its siblings
func (s *Server) reorderColumn(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req reorderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "malformed JSON body")
		return
	}
	if req.Index == nil {
		badRequest(c, "index is required")
		return
	}

	if err := s.columns.ReorderColumn(c.Request.Context(), id, *req.Index); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// deleteColumn removes a column and its cards
func (s *Server) deleteColumn(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := s.columns.DeleteColumn(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
