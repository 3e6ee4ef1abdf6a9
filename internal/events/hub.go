package events

import (
	"log/slog"
	"sync"
	"sync/atomic"
	"time"
)

// defaultSubscriberBuffer is the per-subscriber send queue size.
// A subscriber that falls this far behind starts losing events; the
// stream carries sequence ids so clients can detect the gap and reload.
const defaultSubscriberBuffer = 16

// subscriber is one registered event stream consumer
type subscriber struct {
	ch      chan Event
	boardID int // 0 = all boards, >0 = specific board
}

// Hub fans change notifications out to stream subscribers.
// Publishing never blocks: events to slow subscribers are dropped and
// counted rather than stalling the request that produced them.
type Hub struct {
	mu              sync.RWMutex
	subscribers     map[*subscriber]bool
	bufferSize      int
	sequenceCounter atomic.Int64
	metrics         *Metrics
}

// NewHub creates a hub with the default subscriber buffer size
func NewHub() *Hub {
	return &Hub{
		subscribers: make(map[*subscriber]bool),
		bufferSize:  defaultSubscriberBuffer,
		metrics:     NewMetrics(),
	}
}

// Subscribe registers a consumer for events on the given board
// (0 subscribes to every board). The returned cancel function must be
// called when the consumer goes away; it closes the event channel.
func (h *Hub) Subscribe(boardID int) (<-chan Event, func()) {
	sub := &subscriber{
		ch:      make(chan Event, h.bufferSize),
		boardID: boardID,
	}

	h.mu.Lock()
	h.subscribers[sub] = true
	count := len(h.subscribers)
	h.mu.Unlock()

	h.metrics.SetSubscribers(int32(count))

	var once sync.Once
	cancel := func() {
		once.Do(func() {
			h.mu.Lock()
			delete(h.subscribers, sub)
			count := len(h.subscribers)
			h.mu.Unlock()

			h.metrics.SetSubscribers(int32(count))
			close(sub.ch)
		})
	}
	return sub.ch, cancel
}

// Publish stamps the event with a sequence id and timestamp and fans
// it out to every matching subscriber.
func (h *Hub) Publish(event Event) {
	event.SequenceID = h.sequenceCounter.Add(1)
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now()
	}

	h.metrics.IncPublished()

	h.mu.RLock()
	defer h.mu.RUnlock()

	for sub := range h.subscribers {
		if sub.boardID != 0 && sub.boardID != event.BoardID {
			continue
		}
		select {
		case sub.ch <- event:
		default:
			// Subscriber queue full; drop rather than block the writer
			h.metrics.IncDropped()
			slog.Debug("dropped event for slow subscriber",
				"sequence_id", event.SequenceID, "board_id", event.BoardID)
		}
	}
}

// Metrics exposes the hub's counters
func (h *Hub) Metrics() *Metrics {
	return h.metrics
}
