package server

import (
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
)

// keepaliveInterval paces comment pings so proxies keep the SSE
// connection open during quiet periods
const keepaliveInterval = 25 * time.Second

// streamEvents serves change notifications as server-sent events.
// An optional board_id query parameter restricts the stream to one
// board; events carry sequence ids so clients can spot gaps after a
// dropped event and reload.
func (s *Server) streamEvents(c *gin.Context) {
	boardID := 0
	if raw := c.Query("board_id"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 {
			badRequest(c, "invalid board_id")
			return
		}
		boardID = parsed
	}

	ch, cancel := s.hub.Subscribe(boardID)
	defer cancel()

	c.Writer.Header().Set("Content-Type", "text/event-stream")
	c.Writer.Header().Set("Cache-Control", "no-cache")
	c.Writer.Header().Set("Connection", "keep-alive")

	keepalive := time.NewTicker(keepaliveInterval)
	defer keepalive.Stop()

	c.Stream(func(w io.Writer) bool {
		select {
		case event, ok := <-ch:
			if !ok {
				return false
			}
			c.SSEvent("change", event)
			return true
		case <-keepalive.C:
			c.SSEvent("ping", time.Now().Unix())
			return true
		case <-c.Request.Context().Done():
			return false
		}
	})
}

// stats reports the hub counters
func (s *Server) stats(c *gin.Context) {
	c.JSON(http.StatusOK, s.hub.Metrics().Snapshot())
}
