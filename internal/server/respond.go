package server

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/luishram/tablero/internal/services/board"
	"github.com/luishram/tablero/internal/services/card"
	"github.com/luishram/tablero/internal/services/column"
)

// notFoundErrs map to 404
var notFoundErrs = []error{
	board.ErrBoardNotFound,
	column.ErrColumnNotFound,
	column.ErrBoardNotFound,
	card.ErrCardNotFound,
	card.ErrColumnNotFound,
	card.ErrBoardNotFound,
}

// conflictErrs map to 409: the request is well-formed but the card is
// in the wrong lifecycle state for it
var conflictErrs = []error{
	card.ErrNotArchived,
	card.ErrAlreadyArchived,
	card.ErrCardArchived,
}

// validationErrs map to 400
var validationErrs = []error{
	board.ErrEmptyName,
	board.ErrNameTooLong,
	board.ErrInvalidBoardID,
	column.ErrEmptyName,
	column.ErrNameTooLong,
	column.ErrInvalidColumnID,
	column.ErrInvalidBoardID,
	column.ErrInvalidIndex,
	card.ErrEmptyTitle,
	card.ErrTitleTooLong,
	card.ErrDescriptionTooLong,
	card.ErrInvalidCardID,
	card.ErrInvalidColumnID,
	card.ErrInvalidBoardID,
	card.ErrInvalidColor,
	card.ErrInvalidIndex,
}

// respondError maps a service error onto the HTTP status taxonomy and
// writes the { "error": ... } body.
func respondError(c *gin.Context, err error) {
	for _, target := range notFoundErrs {
		if errors.Is(err, target) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
	}
	for _, target := range conflictErrs {
		if errors.Is(err, target) {
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
			return
		}
	}
	for _, target := range validationErrs {
		if errors.Is(err, target) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
	}

	slog.Error("request failed", "path", c.FullPath(), "error", err)
	c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
}

// pathID parses the :id route parameter. A non-numeric id responds 400
// and reports false.
func pathID(c *gin.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return 0, false
	}
	return id, true
}

// badRequest writes a 400 with the standard error body
func badRequest(c *gin.Context, msg string) {
	c.JSON(http.StatusBadRequest, gin.H{"error": msg})
}
