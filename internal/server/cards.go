package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/luishram/tablero/internal/services/card"
)

type createCardRequest struct {
	Title       string  `json:"title"`
	Description *string `json:"description"`
	Color       *string `json:"color"`
}

type updateCardRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Color       *string `json:"color"`
}

type moveCardRequest struct {
	ColumnID *int `json:"column_id"`
	Index    *int `json:"index"`
}

// createCard adds a card at the bottom of a column
func (s *Server) createCard(c *gin.Context) {
	columnID, ok := pathID(c)
	if !ok {
		return
	}

	var req createCardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "malformed JSON body")
		return
	}

	created, err := s.cards.CreateCard(c.Request.Context(), card.CreateCardRequest{
		ColumnID:    columnID,
		Title:       req.Title,
		Description: req.Description,
		Color:       req.Color,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

// getCard returns a single card, archived or not
func (s *Server) getCard(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	found, err := s.cards.GetCard(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, found)
}

// updateCard applies a partial update to title, description or color
func (s *Server) updateCard(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req updateCardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "malformed JSON body")
		return
	}

	updated, err := s.cards.UpdateCard(c.Request.Context(), card.UpdateCardRequest{
		CardID:      id,
		Title:       req.Title,
		Description: req.Description,
		Color:       req.Color,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

// moveCard drops a card at an index within a column
func (s *Server) moveCard(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req moveCardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "malformed JSON body")
		return
	}
	if req.ColumnID == nil {
		badRequest(c, "column_id is required")
		return
	}
	if req.Index == nil {
		badRequest(c, "index is required")
		return
	}

	err := s.cards.MoveCard(c.Request.Context(), card.MoveCardRequest{
		CardID:   id,
		ColumnID: *req.ColumnID,
		Index:    *req.Index,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// archiveCard soft-deletes a card
func (s *Server) archiveCard(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := s.cards.ArchiveCard(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// restoreCard brings an archived card back to its column
func (s *Server) restoreCard(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := s.cards.RestoreCard(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// deleteCard permanently removes an archived card
func (s *Server) deleteCard(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := s.cards.DeleteCard(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// searchCards filters a board's visible cards by substring and color
func (s *Server) searchCards(c *gin.Context) {
	boardID, ok := pathID(c)
	if !ok {
		return
	}

	cards, err := s.cards.SearchCards(c.Request.Context(), card.SearchRequest{
		BoardID: boardID,
		Query:   c.Query("q"),
		Color:   c.Query("color"),
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, cards)
}

// listArchivedCards returns a board's archived cards
func (s *Server) listArchivedCards(c *gin.Context) {
	boardID, ok := pathID(c)
	if !ok {
		return
	}

	cards, err := s.cards.ArchivedCards(c.Request.Context(), boardID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, cards)
}
