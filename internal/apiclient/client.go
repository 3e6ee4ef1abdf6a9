// Package apiclient is the HTTP client used by the terminal client to
// talk to a tablero server.
package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/luishram/tablero/internal/models"
)

// Client talks to the tablero REST API
type Client struct {
	baseURL string
	http    *http.Client
}

// New creates a client for the server at baseURL
func New(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: 10 * time.Second},
	}
}

// apiError is the { "error": ... } failure body
type apiError struct {
	Error string `json:"error"`
}

// StatusError carries the HTTP status of a failed API call
type StatusError struct {
	Status  int
	Message string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("server returned %d: %s", e.Status, e.Message)
}

// ListBoards fetches summaries for every board
func (c *Client) ListBoards(ctx context.Context) ([]*models.BoardSummary, error) {
	var boards []*models.BoardSummary
	err := c.do(ctx, http.MethodGet, "/api/boards", nil, &boards)
	return boards, err
}

// GetBoard fetches the full board view
func (c *Client) GetBoard(ctx context.Context, id int) (*models.BoardDetail, error) {
	detail := &models.BoardDetail{}
	err := c.do(ctx, http.MethodGet, fmt.Sprintf("/api/boards/%d", id), nil, detail)
	return detail, err
}

// GetCard fetches a single card
func (c *Client) GetCard(ctx context.Context, id int) (*models.Card, error) {
	card := &models.Card{}
	err := c.do(ctx, http.MethodGet, fmt.Sprintf("/api/cards/%d", id), nil, card)
	return card, err
}

// SearchCards filters a board's visible cards
func (c *Client) SearchCards(ctx context.Context, boardID int, query, color string) ([]*models.Card, error) {
	params := url.Values{}
	if query != "" {
		params.Set("q", query)
	}
	if color != "" {
		params.Set("color", color)
	}
	path := fmt.Sprintf("/api/boards/%d/cards", boardID)
	if encoded := params.Encode(); encoded != "" {
		path += "?" + encoded
	}

	var cards []*models.Card
	err := c.do(ctx, http.MethodGet, path, nil, &cards)
	return cards, err
}

// MoveCard drops a card at an index within a column
func (c *Client) MoveCard(ctx context.Context, cardID, columnID, index int) error {
	body := map[string]int{"column_id": columnID, "index": index}
	return c.do(ctx, http.MethodPatch, fmt.Sprintf("/api/cards/%d/move", cardID), body, nil)
}

// ArchiveCard soft-deletes a card
func (c *Client) ArchiveCard(ctx context.Context, cardID int) error {
	return c.do(ctx, http.MethodPost, fmt.Sprintf("/api/cards/%d/archive", cardID), nil, nil)
}

// do performs one API call, encoding body and decoding the response
// into out when non-nil.
func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		var apiErr apiError
		msg := resp.Status
		if json.NewDecoder(resp.Body).Decode(&apiErr) == nil && apiErr.Error != "" {
			msg = apiErr.Error
		}
		return &StatusError{Status: resp.StatusCode, Message: msg}
	}

	if out != nil {
		return json.NewDecoder(resp.Body).Decode(out)
	}
	return nil
}
